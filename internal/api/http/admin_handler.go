package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/service"
)

// AdminHandler serves the admin-only surface: subscription management,
// session log review, and user creation.
type AdminHandler struct {
	subscriptionSvc service.SubscriptionService
	sessionLogSvc   service.SessionLogService
	authSvc         service.AuthService
}

func NewAdminHandler(subscriptionSvc service.SubscriptionService, sessionLogSvc service.SessionLogService, authSvc service.AuthService) *AdminHandler {
	return &AdminHandler{
		subscriptionSvc: subscriptionSvc,
		sessionLogSvc:   sessionLogSvc,
		authSvc:         authSvc,
	}
}

type subscriptionRequest struct {
	UserID       string `json:"user_id" validate:"required"`
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	DurationDays int32  `json:"duration_days" validate:"gt=0"`
	Price        int64  `json:"price" validate:"gte=0"`
	Status       string `json:"status" validate:"required,oneof=ACTIVE PAUSED"`
}

func (req *subscriptionRequest) toDomain(id string) *domain.Subscription {
	return &domain.Subscription{
		ID:           id,
		UserID:       req.UserID,
		StartDate:    req.StartDate,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		Status:       domain.SubscriptionStatus(req.Status),
	}
}

// subscriptionView decorates a subscription with its derived fields for
// the dashboard.
type subscriptionView struct {
	domain.Subscription
	EndDate         string                    `json:"end_date"`
	EffectiveStatus domain.SubscriptionStatus `json:"effective_status"`
}

func (h *AdminHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs := h.subscriptionSvc.List(StoreFrom(r))
	today := time.Now().Format("2006-01-02")
	views := make([]subscriptionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, subscriptionView{
			Subscription:    s,
			EndDate:         s.EndDate(),
			EffectiveStatus: s.EffectiveStatus(today),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *AdminHandler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	sub := req.toDomain("")
	if err := h.subscriptionSvc.Create(r.Context(), StoreFrom(r), sub); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

func (h *AdminHandler) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	var req subscriptionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	sub := req.toDomain(mux.Vars(r)["id"])
	if err := h.subscriptionSvc.Update(r.Context(), StoreFrom(r), sub); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func (h *AdminHandler) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	if err := h.subscriptionSvc.Delete(r.Context(), StoreFrom(r), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *AdminHandler) ListSessionLogs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sessionLogSvc.List(StoreFrom(r)))
}

func (h *AdminHandler) DeleteSessionLog(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionLogSvc.Delete(r.Context(), StoreFrom(r), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=ADMIN OWNER"`
}

func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}
	user, err := h.authSvc.CreateUser(r.Context(), req.Name, req.Email, req.Password, domain.UserRole(req.Role))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}
