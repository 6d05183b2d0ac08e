package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/service"
)

type UnitHandler struct {
	unitSvc service.UnitService
}

func NewUnitHandler(unitSvc service.UnitService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc}
}

type unitRequest struct {
	Name     string              `json:"name" validate:"required"`
	Category domain.UnitCategory `json:"category" validate:"required"`
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.unitSvc.List(StoreFrom(r)))
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req unitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	unit := &domain.Unit{Name: req.Name, Category: req.Category}
	if err := h.unitSvc.Create(r.Context(), StoreFrom(r), unit); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req unitRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	unit := &domain.Unit{ID: mux.Vars(r)["id"], Name: req.Name, Category: req.Category}
	if err := h.unitSvc.Update(r.Context(), StoreFrom(r), unit); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.unitSvc.Delete(r.Context(), StoreFrom(r), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
