package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/state"
)

type bookingService struct {
	repo repository.BookingRepository
}

func NewBookingService(repo repository.BookingRepository) BookingService {
	return &bookingService{repo: repo}
}

// Create checks availability against the session's full booking list, then
// inserts optimistically. A conflict aborts before any state mutation, so
// no rollback is ever needed for it.
func (s *bookingService) Create(ctx context.Context, st *state.Store, b *domain.Booking) error {
	col := &st.Bookings
	col.BeginMutation()
	defer col.EndMutation()

	if err := validateBooking(st, b); err != nil {
		return err
	}
	if err := domain.CheckAvailability(b, col.Snapshot()); err != nil {
		return err
	}

	b.ID = uuid.NewString()
	b.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	col.InsertHead(*b)
	return persist("booking", "insert",
		func() { col.Remove(b.ID) },
		func() error { return s.repo.Insert(ctx, b) })
}

// Update runs the guard with the booking's own prior record excluded by
// identity, replaces the local entity, and restores the pre-update snapshot
// if the remote update fails.
func (s *bookingService) Update(ctx context.Context, st *state.Store, b *domain.Booking) error {
	col := &st.Bookings
	col.BeginMutation()
	defer col.EndMutation()

	if err := validateBooking(st, b); err != nil {
		return err
	}
	if err := domain.CheckAvailability(b, col.Snapshot()); err != nil {
		return err
	}

	prev, ok := col.Replace(*b)
	if !ok {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, b.ID)
	}
	// Identity is immutable; carry the original creation timestamp forward.
	b.CreatedOn = prev.CreatedOn
	col.Replace(*b)
	return persist("booking", "update",
		func() { col.Replace(prev) },
		func() error { return s.repo.Update(ctx, b) })
}

func (s *bookingService) Delete(ctx context.Context, st *state.Store, id string) error {
	col := &st.Bookings
	col.BeginMutation()
	defer col.EndMutation()

	prev, idx, ok := col.Remove(id)
	if !ok {
		return fmt.Errorf("%w: booking %s", domain.ErrNotFound, id)
	}
	return persist("booking", "delete",
		func() { col.InsertAt(idx, prev) },
		func() error { return s.repo.Delete(ctx, id) })
}

func (s *bookingService) List(st *state.Store) []domain.Booking {
	return st.Bookings.Snapshot()
}

func validateBooking(st *state.Store, b *domain.Booking) error {
	if b.Nights <= 0 {
		return fmt.Errorf("booking nights must be positive, got %d", b.Nights)
	}
	if !domain.ValidBookingStatus(b.Status) {
		return fmt.Errorf("invalid booking status %q", b.Status)
	}
	if !domain.ValidPaymentStatus(b.PaymentStatus) {
		return fmt.Errorf("invalid payment status %q", b.PaymentStatus)
	}
	if _, ok := st.Units.Get(b.UnitID); !ok {
		return fmt.Errorf("%w: unit %s", domain.ErrNotFound, b.UnitID)
	}
	return nil
}
