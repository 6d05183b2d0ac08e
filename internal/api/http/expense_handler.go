package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/service"
)

type ExpenseHandler struct {
	expenseSvc service.ExpenseService
}

func NewExpenseHandler(expenseSvc service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseSvc: expenseSvc}
}

type expenseRequest struct {
	UnitID   string `json:"unit_id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Category string `json:"category"`
	Amount   int64  `json:"amount" validate:"gt=0"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

func (req *expenseRequest) toDomain(id string) *domain.Expense {
	category := req.Category
	if category == "" {
		category = domain.ExpenseCategoryOther
	}
	return &domain.Expense{
		ID:       id,
		UnitID:   req.UnitID,
		Title:    req.Title,
		Category: category,
		Amount:   req.Amount,
		Date:     req.Date,
	}
}

func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.expenseSvc.List(StoreFrom(r)))
}

func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	expense := req.toDomain("")
	if err := h.expenseSvc.Create(r.Context(), StoreFrom(r), expense); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req expenseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	expense := req.toDomain(mux.Vars(r)["id"])
	if err := h.expenseSvc.Update(r.Context(), StoreFrom(r), expense); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, expense)
}

func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.expenseSvc.Delete(r.Context(), StoreFrom(r), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
