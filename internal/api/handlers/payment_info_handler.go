// filepath: internal/api/handlers/payment_info_handler.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"payinfo/internal/logging"
	"payinfo/internal/models"
	"payinfo/internal/services"
	"payinfo/internal/services/auth"

	"github.com/gorilla/mux"
)

// maxPaymentInfoBody bounds the size of a stored document.
const maxPaymentInfoBody = 64 << 10

// @Summary Get payment info
// @Description Returns the payment info stored for a reference id exactly as it was stored. Unknown or expired ids yield 404 with an empty body.
// @Tags payments
// @Produce  json
// @Param   referenceId  path  string  true  "Payment reference id"
// @Success 200 {object} models.PaymentInfo
// @Failure 404 "Payment info not found (empty body)"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /payments/{referenceId} [get]
func (h *Handlers) GetPaymentInfo(w http.ResponseWriter, r *http.Request) {
	referenceID := mux.Vars(r)["referenceId"]

	info, err := h.PaymentInfo.GetPaymentInfo(r.Context(), referenceID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		logging.Log.Errorf("GetPaymentInfo: Unhandled error from PaymentInfoService: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve payment info.")
		return
	}

	respondWithRawJSON(w, http.StatusOK, info.Document)
}

// @Summary Create payment info
// @Description Stores a new payment info. A ULID reference id is assigned when the body has none. Use PUT to replace an existing one.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   paymentInfo  body  models.PaymentInfo  true  "Payment info"
// @Success 201 {object} models.PaymentInfo
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 409 {object} ErrorResponse "Reference id already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/payments [post]
func (h *Handlers) CreatePaymentInfo(w http.ResponseWriter, r *http.Request) {
	info, ok := decodePaymentInfo(w, r)
	if !ok {
		return
	}
	h.storePaymentInfo(w, r, info, http.StatusCreated, h.PaymentInfo.CreatePaymentInfo)
}

// @Summary Store payment info
// @Description Creates or replaces the payment info for a reference id. The id in the path overrides the one in the body.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   referenceId  path  string              true  "Payment reference id"
// @Param   paymentInfo  body  models.PaymentInfo  true  "Payment info"
// @Success 200 {object} models.PaymentInfo
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/payments/{referenceId} [put]
func (h *Handlers) PutPaymentInfo(w http.ResponseWriter, r *http.Request) {
	info, ok := decodePaymentInfo(w, r)
	if !ok {
		return
	}
	info.ReferenceID = mux.Vars(r)["referenceId"]
	h.storePaymentInfo(w, r, info, http.StatusOK, h.PaymentInfo.StorePaymentInfo)
}

// @Summary Delete payment info
// @Description Removes the payment info for a reference id.
// @Tags payments
// @Param   referenceId  path  string  true  "Payment reference id"
// @Success 204 "Deleted"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 404 {object} ErrorResponse "Payment info not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /api/payments/{referenceId} [delete]
func (h *Handlers) DeletePaymentInfo(w http.ResponseWriter, r *http.Request) {
	referenceID := mux.Vars(r)["referenceId"]

	if err := h.PaymentInfo.DeletePaymentInfo(r.Context(), referenceID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Payment info not found.")
		} else {
			logging.Log.Errorf("DeletePaymentInfo: Unhandled error from PaymentInfoService: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to delete payment info.")
		}
		return
	}

	h.Auditor.Log(r.Context(), "payment_info.delete", auth.SubjectFromContext(r.Context()), "payment_info:"+referenceID, nil)
	w.WriteHeader(http.StatusNoContent)
}

func decodePaymentInfo(w http.ResponseWriter, r *http.Request) (models.PaymentInfo, bool) {
	var info models.PaymentInfo
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPaymentInfoBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&info); err != nil {
		respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
		return info, false
	}
	return info, true
}

// storeFunc is either the create or the upsert operation of the PaymentInfoService.
type storeFunc func(ctx context.Context, info models.PaymentInfo) (*models.StoredPaymentInfo, error)

func (h *Handlers) storePaymentInfo(w http.ResponseWriter, r *http.Request, info models.PaymentInfo, status int, store storeFunc) {
	stored, err := store(r.Context(), info)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			respondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrConflict):
			respondWithError(w, http.StatusConflict, "Payment info already exists, use PUT to replace it.")
		default:
			logging.Log.Errorf("StorePaymentInfo: Unhandled error from PaymentInfoService: %v", err)
			respondWithError(w, http.StatusInternalServerError, "Failed to store payment info.")
		}
		return
	}

	h.Auditor.Log(r.Context(), "payment_info.store", auth.SubjectFromContext(r.Context()), "payment_info:"+stored.ReferenceID, map[string]interface{}{
		"amount":   info.Action.Amount,
		"currency": info.Action.Currency,
	})

	respondWithRawJSON(w, status, stored.Document)
}
