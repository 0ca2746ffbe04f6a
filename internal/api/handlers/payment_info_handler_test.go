// filepath: internal/api/handlers/payment_info_handler_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"payinfo/internal/models"
	"payinfo/internal/services"
	"payinfo/internal/services/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupPaymentInfoTestAPI creates a new test server for payment info handlers.
func setupPaymentInfoTestAPI(t *testing.T) (*httptest.Server, *mocks.MockPaymentInfoService, *mocks.MockAuditor) {
	t.Helper()

	svc := new(mocks.MockPaymentInfoService)
	auditor := new(mocks.MockAuditor)
	h := NewHandlers(nil, svc, nil, auditor)

	r := mux.NewRouter()
	r.HandleFunc("/payments/{referenceId}", h.GetPaymentInfo).Methods("GET")
	r.HandleFunc("/api/payments", h.CreatePaymentInfo).Methods("POST")
	r.HandleFunc("/api/payments/{referenceId}", h.PutPaymentInfo).Methods("PUT")
	r.HandleFunc("/api/payments/{referenceId}", h.DeletePaymentInfo).Methods("DELETE")

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return server, svc, auditor
}

func samplePaymentInfo(id string) models.PaymentInfo {
	return models.PaymentInfo{
		ReferenceID: id,
		Receiver: models.Receiver{
			AccountAddress: "0x1234567890abcdef1234567890abcdef12345678",
			BusinessData:   models.BusinessData{Name: "Coffee Shop"},
		},
		Action: models.PaymentAction{Amount: "7.20", Currency: models.CurrencyCUSD, Action: models.ActionCharge, Timestamp: 1700000000},
	}
}

func doRequest(t *testing.T, method, url string, body []byte) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, bytes.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return b
}

func TestGetPaymentInfo_Found(t *testing.T) {
	server, svc, _ := setupPaymentInfoTestAPI(t)

	// Field order and spacing deliberately differ from json.Marshal output:
	// the handler must return the stored bytes as-is.
	document := []byte(`{"referenceId":"order-42",  "action":{"amount":"7.20","currency":"cUSD","action":"charge","timestamp":1}}`)
	svc.On("GetPaymentInfo", mock.Anything, "order-42").
		Return(&models.StoredPaymentInfo{ReferenceID: "order-42", Document: document}, nil)

	resp := doRequest(t, "GET", server.URL+"/payments/order-42", nil)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, document, readBody(t, resp))
	svc.AssertExpectations(t)
}

func TestGetPaymentInfo_NotFound(t *testing.T) {
	server, svc, _ := setupPaymentInfoTestAPI(t)
	svc.On("GetPaymentInfo", mock.Anything, "missing").Return(nil, services.ErrNotFound)

	resp := doRequest(t, "GET", server.URL+"/payments/missing", nil)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, readBody(t, resp), "404 must carry an empty body")
}

func TestGetPaymentInfo_StoreFailure(t *testing.T) {
	server, svc, _ := setupPaymentInfoTestAPI(t)
	svc.On("GetPaymentInfo", mock.Anything, "order-42").Return(nil, errors.New("disk I/O error"))

	resp := doRequest(t, "GET", server.URL+"/payments/order-42", nil)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "Failed to retrieve payment info.", body.Error)
}

func TestCreatePaymentInfo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, svc, auditor := setupPaymentInfoTestAPI(t)
		info := samplePaymentInfo("")
		stored := samplePaymentInfo("01HF7Z5N3B8X5Q2W9K4M6R1T0V")
		doc, _ := json.Marshal(stored)

		svc.On("CreatePaymentInfo", mock.Anything, info).
			Return(&models.StoredPaymentInfo{ReferenceID: stored.ReferenceID, Document: doc}, nil)
		auditor.On("Log", mock.Anything, "payment_info.store", "unknown", "payment_info:"+stored.ReferenceID, mock.Anything).Return()

		body, _ := json.Marshal(info)
		resp := doRequest(t, "POST", server.URL+"/api/payments", body)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.JSONEq(t, string(doc), string(readBody(t, resp)))
		svc.AssertExpectations(t)
		auditor.AssertExpectations(t)
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		server, svc, _ := setupPaymentInfoTestAPI(t)
		resp := doRequest(t, "POST", server.URL+"/api/payments", []byte(`{"referenceId":`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "CreatePaymentInfo", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Field", func(t *testing.T) {
		server, _, _ := setupPaymentInfoTestAPI(t)
		resp := doRequest(t, "POST", server.URL+"/api/payments", []byte(`{"referenceId":"a","surprise":1}`))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(readBody(t, resp)), "surprise")
	})

	t.Run("Validation Error", func(t *testing.T) {
		server, svc, _ := setupPaymentInfoTestAPI(t)
		svc.On("CreatePaymentInfo", mock.Anything, mock.Anything).
			Return(nil, errors.Join(services.ErrValidation, errors.New("currency: must be a valid value")))

		body, _ := json.Marshal(samplePaymentInfo("order-42"))
		resp := doRequest(t, "POST", server.URL+"/api/payments", body)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(readBody(t, resp)), "currency")
	})

	t.Run("Existing Reference Id", func(t *testing.T) {
		server, svc, auditor := setupPaymentInfoTestAPI(t)
		svc.On("CreatePaymentInfo", mock.Anything, mock.Anything).
			Return(nil, fmt.Errorf("%w: payment info 'order-42' already exists", services.ErrConflict))

		body, _ := json.Marshal(samplePaymentInfo("order-42"))
		resp := doRequest(t, "POST", server.URL+"/api/payments", body)

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, string(readBody(t, resp)), "use PUT")
		svc.AssertNotCalled(t, "StorePaymentInfo", mock.Anything, mock.Anything)
		auditor.AssertNotCalled(t, "Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestPutPaymentInfo_PathWins(t *testing.T) {
	server, svc, auditor := setupPaymentInfoTestAPI(t)

	expected := samplePaymentInfo("from-path")
	doc, _ := json.Marshal(expected)
	svc.On("StorePaymentInfo", mock.Anything, expected).
		Return(&models.StoredPaymentInfo{ReferenceID: "from-path", Document: doc}, nil)
	auditor.On("Log", mock.Anything, "payment_info.store", mock.Anything, "payment_info:from-path", mock.Anything).Return()

	body, _ := json.Marshal(samplePaymentInfo("from-body"))
	resp := doRequest(t, "PUT", server.URL+"/api/payments/from-path", body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestDeletePaymentInfo(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server, svc, auditor := setupPaymentInfoTestAPI(t)
		svc.On("DeletePaymentInfo", mock.Anything, "order-42").Return(nil)
		auditor.On("Log", mock.Anything, "payment_info.delete", mock.Anything, "payment_info:order-42", mock.Anything).Return()

		resp := doRequest(t, "DELETE", server.URL+"/api/payments/order-42", nil)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		auditor.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		server, svc, _ := setupPaymentInfoTestAPI(t)
		svc.On("DeletePaymentInfo", mock.Anything, "missing").Return(services.ErrNotFound)

		resp := doRequest(t, "DELETE", server.URL+"/api/payments/missing", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, string(readBody(t, resp)), "Payment info not found.")
	})
}
