package http

import (
	"net/http"

	"sunlight-vm-backend/internal/service"
)

type ReportHandler struct {
	reportSvc service.ReportService
}

func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// period pulls the from/to query parameters; both are yyyy-mm-dd and the
// range is half-open.
func period(r *http.Request) (string, string) {
	q := r.URL.Query()
	return q.Get("from"), q.Get("to")
}

func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	from, to := period(r)
	report, err := h.reportSvc.Financial(StoreFrom(r), from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	from, to := period(r)
	report, err := h.reportSvc.Occupancy(StoreFrom(r), from, to)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	writeJSON(w, http.StatusOK, report)
}
