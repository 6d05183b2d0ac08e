// Package repository defines the persistence collaborator the mutation
// coordinator forwards to. Implementations live in postgres/ (the real
// backend) and memory/ (fixture-backed, for development and tests); the
// variant is chosen once at startup from configuration.
package repository

import (
	"context"

	"sunlight-vm-backend/internal/domain"
)

type UnitRepository interface {
	Insert(ctx context.Context, u *domain.Unit) error
	Update(ctx context.Context, u *domain.Unit) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Unit, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) error
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Booking, error)
}

type ExpenseRepository interface {
	Insert(ctx context.Context, e *domain.Expense) error
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Expense, error)
}

type SubscriptionRepository interface {
	Insert(ctx context.Context, s *domain.Subscription) error
	Update(ctx context.Context, s *domain.Subscription) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]domain.Subscription, error)
	// ListEndingBetween returns active subscriptions whose end date falls in
	// [from, to), for the expiry-reminder job.
	ListEndingBetween(ctx context.Context, from, to string) ([]domain.Subscription, error)
}

// SessionLogRepository is written only by the auth layer (Insert/Touch);
// the admin surface reads and deletes.
type SessionLogRepository interface {
	Insert(ctx context.Context, l *domain.SessionLog) error
	Touch(ctx context.Context, id, lastActiveAt string) error
	Delete(ctx context.Context, id string) error
	DeleteIdleBefore(ctx context.Context, cutoff string) (int64, error)
	ListAll(ctx context.Context) ([]domain.SessionLog, error)
}

type UserRepository interface {
	Insert(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListAll(ctx context.Context) ([]domain.User, error)
}
