package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth    *AuthHandler
	Unit    *UnitHandler
	Booking *BookingHandler
	Expense *ExpenseHandler
	Report  *ReportHandler
	Admin   *AdminHandler
}

// NewRouter wires the REST surface under /api/v1. Everything past the
// auth endpoints requires a valid access token; the admin subtree
// additionally requires the ADMIN role.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	v1 := r.PathPrefix("/api/v1").Subrouter()

	v1.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	v1.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)

	authed := v1.NewRoute().Subrouter()
	authed.Use(auth.Authenticate)

	authed.HandleFunc("/auth/logout", h.Auth.Logout).Methods(http.MethodPost)

	authed.HandleFunc("/units", h.Unit.List).Methods(http.MethodGet)
	authed.HandleFunc("/units", h.Unit.Create).Methods(http.MethodPost)
	authed.HandleFunc("/units/{id}", h.Unit.Update).Methods(http.MethodPut)
	authed.HandleFunc("/units/{id}", h.Unit.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/bookings", h.Booking.List).Methods(http.MethodGet)
	authed.HandleFunc("/bookings", h.Booking.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id}", h.Booking.Update).Methods(http.MethodPut)
	authed.HandleFunc("/bookings/{id}", h.Booking.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/expenses", h.Expense.List).Methods(http.MethodGet)
	authed.HandleFunc("/expenses", h.Expense.Create).Methods(http.MethodPost)
	authed.HandleFunc("/expenses/{id}", h.Expense.Update).Methods(http.MethodPut)
	authed.HandleFunc("/expenses/{id}", h.Expense.Delete).Methods(http.MethodDelete)

	authed.HandleFunc("/reports/financial", h.Report.Financial).Methods(http.MethodGet)
	authed.HandleFunc("/reports/occupancy", h.Report.Occupancy).Methods(http.MethodGet)

	admin := authed.PathPrefix("/admin").Subrouter()
	admin.Use(auth.RequireAdmin)

	admin.HandleFunc("/subscriptions", h.Admin.ListSubscriptions).Methods(http.MethodGet)
	admin.HandleFunc("/subscriptions", h.Admin.CreateSubscription).Methods(http.MethodPost)
	admin.HandleFunc("/subscriptions/{id}", h.Admin.UpdateSubscription).Methods(http.MethodPut)
	admin.HandleFunc("/subscriptions/{id}", h.Admin.DeleteSubscription).Methods(http.MethodDelete)

	admin.HandleFunc("/session-logs", h.Admin.ListSessionLogs).Methods(http.MethodGet)
	admin.HandleFunc("/session-logs/{id}", h.Admin.DeleteSessionLog).Methods(http.MethodDelete)

	admin.HandleFunc("/users", h.Admin.CreateUser).Methods(http.MethodPost)

	return r
}
