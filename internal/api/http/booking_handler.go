package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/service"
	"sunlight-vm-backend/internal/utils"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type bookingRequest struct {
	UnitID              string               `json:"unit_id" validate:"required"`
	TenantName          string               `json:"tenant_name" validate:"required"`
	TenantPhone         string               `json:"tenant_phone"`
	StartDate           string               `json:"start_date" validate:"required,datetime=2006-01-02"`
	Nights              int32                `json:"nights" validate:"required,gt=0"`
	NightlyRate         int64                `json:"nightly_rate" validate:"gte=0"`
	VillageFee          int64                `json:"village_fee" validate:"gte=0"`
	HousekeepingEnabled bool                 `json:"housekeeping_enabled"`
	HousekeepingPrice   int64                `json:"housekeeping_price" validate:"gte=0"`
	DepositEnabled      bool                 `json:"deposit_enabled"`
	DepositAmount       int64                `json:"deposit_amount" validate:"gte=0"`
	Status              domain.BookingStatus `json:"status" validate:"required"`
	PaymentStatus       domain.PaymentStatus `json:"payment_status" validate:"required"`
	Notes               string               `json:"notes"`
	TenantWelcome       bool                 `json:"tenant_welcome"`
}

// toDomain builds the booking and recomputes the derived end date and grand
// total: the coordinator trusts these values, so the submission path is
// where they must be refreshed.
func (req *bookingRequest) toDomain(id string) (*domain.Booking, error) {
	b := &domain.Booking{
		ID:                  id,
		UnitID:              req.UnitID,
		TenantName:          req.TenantName,
		TenantPhone:         req.TenantPhone,
		StartDate:           req.StartDate,
		Nights:              req.Nights,
		NightlyRate:         req.NightlyRate,
		VillageFee:          req.VillageFee,
		HousekeepingEnabled: req.HousekeepingEnabled,
		HousekeepingPrice:   req.HousekeepingPrice,
		DepositEnabled:      req.DepositEnabled,
		DepositAmount:       req.DepositAmount,
		Status:              req.Status,
		PaymentStatus:       req.PaymentStatus,
		Notes:               req.Notes,
		TenantWelcome:       req.TenantWelcome,
	}
	if err := utils.RecomputeDerived(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.bookingSvc.List(StoreFrom(r)))
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	booking, err := req.toDomain("")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	if err := h.bookingSvc.Create(r.Context(), StoreFrom(r), booking); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	booking, err := req.toDomain(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	if err := h.bookingSvc.Update(r.Context(), StoreFrom(r), booking); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.bookingSvc.Delete(r.Context(), StoreFrom(r), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
