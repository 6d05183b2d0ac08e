package service

import (
	"context"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/state"
)

// The entity services implement the optimistic mutation pattern: domain
// guards run first, the session store is mutated assuming success, the
// mutation is forwarded to the persistence collaborator, and the local
// change is reverted if the remote call fails. List reads serve from the
// session store, not the remote backend.

type UnitService interface {
	Create(ctx context.Context, st *state.Store, u *domain.Unit) error
	Update(ctx context.Context, st *state.Store, u *domain.Unit) error
	// Delete cascades: dependent expenses and bookings are removed with the
	// unit, locally and remotely.
	Delete(ctx context.Context, st *state.Store, id string) error
	List(st *state.Store) []domain.Unit
}

type BookingService interface {
	Create(ctx context.Context, st *state.Store, b *domain.Booking) error
	Update(ctx context.Context, st *state.Store, b *domain.Booking) error
	Delete(ctx context.Context, st *state.Store, id string) error
	List(st *state.Store) []domain.Booking
}

type ExpenseService interface {
	Create(ctx context.Context, st *state.Store, e *domain.Expense) error
	Update(ctx context.Context, st *state.Store, e *domain.Expense) error
	Delete(ctx context.Context, st *state.Store, id string) error
	List(st *state.Store) []domain.Expense
}

type SubscriptionService interface {
	Create(ctx context.Context, st *state.Store, s *domain.Subscription) error
	Update(ctx context.Context, st *state.Store, s *domain.Subscription) error
	Delete(ctx context.Context, st *state.Store, id string) error
	List(st *state.Store) []domain.Subscription
}

// SessionLogService only reads and deletes; rows are created by the auth
// layer at login.
type SessionLogService interface {
	Delete(ctx context.Context, st *state.Store, id string) error
	List(st *state.Store) []domain.SessionLog
}

type AuthService interface {
	Login(ctx context.Context, email, password string, device DeviceInfo) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	Logout(ctx context.Context, sessionID string) error
	CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error)
	TouchSession(ctx context.Context, sessionID string)
}

type ReportService interface {
	Financial(st *state.Store, from, to string) (*domain.FinancialReport, error)
	Occupancy(st *state.Store, from, to string) (*domain.OccupancyReport, error)
}

type EmailService interface {
	SendSubscriptionExpiryReminder(ctx context.Context, email, name, endDate string, daysLeft int) error
}

// DeviceInfo is what the auth layer records into the session log.
type DeviceInfo struct {
	DeviceID  string
	UserAgent string
	IPAddress string
}

type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
	SessionID    string
}
