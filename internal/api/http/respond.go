package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/logger"
	"sunlight-vm-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeServiceError maps the coordinator's error taxonomy onto HTTP. The
// message is machine-readable; the dashboard localizes what the user sees.
func writeServiceError(w http.ResponseWriter, err error) {
	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		writeError(w, http.StatusConflict, err.Error(), "booking_conflict")
		return
	}
	var cascadeErr *domain.PartialCascadeError
	if errors.As(err, &cascadeErr) {
		writeError(w, http.StatusBadGateway, err.Error(), "partial_cascade_failure")
		return
	}
	var persistErr *domain.PersistenceError
	if errors.As(err, &persistErr) {
		writeError(w, http.StatusBadGateway, err.Error(), "persistence_failure")
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error(), "not_found")
		return
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, err.Error(), "invalid_credentials")
		return
	}
	writeError(w, http.StatusBadRequest, err.Error(), "")
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body", "")
		return false
	}
	return true
}
