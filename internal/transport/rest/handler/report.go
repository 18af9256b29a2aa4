package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"ailiteracy/internal/service"
	"ailiteracy/internal/store"
)

// ReportHandler serves completed assessment reports
type ReportHandler struct {
	sessionSvc *service.SessionService
	persistSvc *service.PersistService
}

// NewReportHandler creates a new report handler
func NewReportHandler(sessionSvc *service.SessionService, persistSvc *service.PersistService) *ReportHandler {
	return &ReportHandler{sessionSvc: sessionSvc, persistSvc: persistSvc}
}

// Get handles GET /v1/reports/{sessionId}. The in-memory session wins;
// sessions from a previous process fall back to the persistence sinks.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	report, err := h.sessionSvc.Report(sessionID)
	if err != nil && !errors.Is(err, store.ErrSessionNotFound) {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if report == nil && h.persistSvc != nil {
		report, err = h.persistSvc.LookupReport(r.Context(), sessionID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	if report == nil {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}

	writeJSON(w, http.StatusOK, report)
}
