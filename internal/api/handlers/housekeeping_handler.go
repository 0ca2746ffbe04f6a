// filepath: internal/api/handlers/housekeeping_handler.go
package handlers

import (
	"net/http"

	"payinfo/internal/logging"
	"payinfo/internal/services/auth"
)

// @Summary Trigger housekeeping
// @Description Purges expired payment infos immediately instead of waiting for the next scheduled run.
// @Tags housekeeping
// @Produce  json
// @Success 200 {object} models.HousekeepingReport
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Housekeeping failed"
// @Security BearerAuth
// @Router /api/housekeeping [post]
func (h *Handlers) TriggerHousekeeping(w http.ResponseWriter, r *http.Request) {
	report, err := h.Housekeeping.Trigger(r.Context())
	if err != nil {
		logging.Log.Errorf("TriggerHousekeeping: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Housekeeping failed.")
		return
	}

	h.Auditor.Log(r.Context(), "housekeeping.trigger", auth.SubjectFromContext(r.Context()), "payment_infos", map[string]interface{}{
		"deleted": report.Deleted,
	})

	respondWithJSON(w, http.StatusOK, report)
}
