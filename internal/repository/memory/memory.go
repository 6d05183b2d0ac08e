// Package memory is the fixture-backed persistence variant. It keeps every
// table in process memory with the same contracts as the postgres package,
// so the server can run without a database for demos and development.
package memory

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
)

// table stores rows newest-first, matching the ORDER BY created_on DESC
// reads of the postgres variant.
type table[T any] struct {
	mu   sync.RWMutex
	rows []T
	id   func(*T) string
}

func newTable[T any](id func(*T) string) *table[T] {
	return &table[T]{id: id}
}

func (t *table[T]) insert(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	rid := t.id(&row)
	for i := range t.rows {
		if t.id(&t.rows[i]) == rid {
			return fmt.Errorf("duplicate id %s", rid)
		}
	}
	t.rows = append([]T{row}, t.rows...)
	return nil
}

func (t *table[T]) update(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	rid := t.id(&row)
	for i := range t.rows {
		if t.id(&t.rows[i]) == rid {
			t.rows[i] = row
			return nil
		}
	}
	return sql.ErrNoRows
}

func (t *table[T]) delete(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.rows {
		if t.id(&t.rows[i]) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (t *table[T]) get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i := range t.rows {
		if t.id(&t.rows[i]) == id {
			return t.rows[i], true
		}
	}
	var zero T
	return zero, false
}

func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) filter(pred func(*T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var out []T
	for i := range t.rows {
		if pred(&t.rows[i]) {
			out = append(out, t.rows[i])
		}
	}
	return out
}

func (t *table[T]) deleteWhere(pred func(*T) bool) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	var n int64
	kept := t.rows[:0]
	for i := range t.rows {
		if pred(&t.rows[i]) {
			n++
		} else {
			kept = append(kept, t.rows[i])
		}
	}
	t.rows = kept
	return n
}

// Store aggregates the in-memory repositories, mirroring postgres.Store.
type Store struct {
	repository.UnitRepository
	repository.BookingRepository
	repository.ExpenseRepository
	repository.SubscriptionRepository
	repository.SessionLogRepository
	repository.UserRepository
}

func NewStore() *Store {
	return &Store{
		UnitRepository:         NewUnitRepository(),
		BookingRepository:      NewBookingRepository(),
		ExpenseRepository:      NewExpenseRepository(),
		SubscriptionRepository: NewSubscriptionRepository(),
		SessionLogRepository:   NewSessionLogRepository(),
		UserRepository:         NewUserRepository(),
	}
}

type unitRepository struct {
	t *table[domain.Unit]
}

func NewUnitRepository() repository.UnitRepository {
	return &unitRepository{t: newTable(func(u *domain.Unit) string { return u.ID })}
}

func (r *unitRepository) Insert(ctx context.Context, u *domain.Unit) error { return r.t.insert(*u) }
func (r *unitRepository) Update(ctx context.Context, u *domain.Unit) error { return r.t.update(*u) }
func (r *unitRepository) Delete(ctx context.Context, id string) error      { return r.t.delete(id) }
func (r *unitRepository) ListAll(ctx context.Context) ([]domain.Unit, error) {
	return r.t.list(), nil
}

type bookingRepository struct {
	t *table[domain.Booking]
}

func NewBookingRepository() repository.BookingRepository {
	return &bookingRepository{t: newTable(func(b *domain.Booking) string { return b.ID })}
}

func (r *bookingRepository) Insert(ctx context.Context, b *domain.Booking) error { return r.t.insert(*b) }
func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error { return r.t.update(*b) }
func (r *bookingRepository) Delete(ctx context.Context, id string) error         { return r.t.delete(id) }
func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.t.list(), nil
}

type expenseRepository struct {
	t *table[domain.Expense]
}

func NewExpenseRepository() repository.ExpenseRepository {
	return &expenseRepository{t: newTable(func(e *domain.Expense) string { return e.ID })}
}

func (r *expenseRepository) Insert(ctx context.Context, e *domain.Expense) error { return r.t.insert(*e) }
func (r *expenseRepository) Update(ctx context.Context, e *domain.Expense) error { return r.t.update(*e) }
func (r *expenseRepository) Delete(ctx context.Context, id string) error         { return r.t.delete(id) }
func (r *expenseRepository) ListAll(ctx context.Context) ([]domain.Expense, error) {
	return r.t.list(), nil
}

type subscriptionRepository struct {
	t *table[domain.Subscription]
}

func NewSubscriptionRepository() repository.SubscriptionRepository {
	return &subscriptionRepository{t: newTable(func(s *domain.Subscription) string { return s.ID })}
}

func (r *subscriptionRepository) Insert(ctx context.Context, s *domain.Subscription) error {
	return r.t.insert(*s)
}
func (r *subscriptionRepository) Update(ctx context.Context, s *domain.Subscription) error {
	return r.t.update(*s)
}
func (r *subscriptionRepository) Delete(ctx context.Context, id string) error { return r.t.delete(id) }
func (r *subscriptionRepository) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	return r.t.list(), nil
}

func (r *subscriptionRepository) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Subscription, error) {
	return r.t.filter(func(s *domain.Subscription) bool {
		if s.Status != domain.SubscriptionStatusActive {
			return false
		}
		end := s.EndDate()
		return end != "" && end >= from && end < to
	}), nil
}

type sessionLogRepository struct {
	t *table[domain.SessionLog]
}

func NewSessionLogRepository() repository.SessionLogRepository {
	return &sessionLogRepository{t: newTable(func(l *domain.SessionLog) string { return l.ID })}
}

func (r *sessionLogRepository) Insert(ctx context.Context, l *domain.SessionLog) error {
	return r.t.insert(*l)
}

func (r *sessionLogRepository) Touch(ctx context.Context, id, lastActiveAt string) error {
	l, ok := r.t.get(id)
	if !ok {
		return nil
	}
	l.LastActiveAt = lastActiveAt
	return r.t.update(l)
}

func (r *sessionLogRepository) Delete(ctx context.Context, id string) error { return r.t.delete(id) }

func (r *sessionLogRepository) DeleteIdleBefore(ctx context.Context, cutoff string) (int64, error) {
	n := r.t.deleteWhere(func(l *domain.SessionLog) bool { return l.LastActiveAt < cutoff })
	return n, nil
}

func (r *sessionLogRepository) ListAll(ctx context.Context) ([]domain.SessionLog, error) {
	return r.t.list(), nil
}

type userRepository struct {
	t *table[domain.User]
}

func NewUserRepository() repository.UserRepository {
	return &userRepository{t: newTable(func(u *domain.User) string { return u.ID })}
}

func (r *userRepository) Insert(ctx context.Context, u *domain.User) error { return r.t.insert(*u) }

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := r.t.get(id)
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.t.list() {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	return r.t.list(), nil
}
