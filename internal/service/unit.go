package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/logger"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/state"
)

type unitService struct {
	unitRepo    repository.UnitRepository
	bookingRepo repository.BookingRepository
	expenseRepo repository.ExpenseRepository
}

func NewUnitService(unitRepo repository.UnitRepository, bookingRepo repository.BookingRepository, expenseRepo repository.ExpenseRepository) UnitService {
	return &unitService{unitRepo: unitRepo, bookingRepo: bookingRepo, expenseRepo: expenseRepo}
}

func (s *unitService) Create(ctx context.Context, st *state.Store, u *domain.Unit) error {
	col := &st.Units
	col.BeginMutation()
	defer col.EndMutation()

	if !domain.ValidUnitCategory(u.Category) {
		return fmt.Errorf("invalid unit category %q", u.Category)
	}
	u.ID = uuid.NewString()
	u.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	col.InsertHead(*u)
	return persist("unit", "insert",
		func() { col.Remove(u.ID) },
		func() error { return s.unitRepo.Insert(ctx, u) })
}

func (s *unitService) Update(ctx context.Context, st *state.Store, u *domain.Unit) error {
	col := &st.Units
	col.BeginMutation()
	defer col.EndMutation()

	if !domain.ValidUnitCategory(u.Category) {
		return fmt.Errorf("invalid unit category %q", u.Category)
	}
	prev, ok := col.Replace(*u)
	if !ok {
		return fmt.Errorf("%w: unit %s", domain.ErrNotFound, u.ID)
	}
	// Identity is immutable; carry the original creation timestamp forward.
	u.CreatedOn = prev.CreatedOn
	col.Replace(*u)
	return persist("unit", "update",
		func() { col.Replace(prev) },
		func() error { return s.unitRepo.Update(ctx, u) })
}

// Delete cascades over the unit's dependents. Remote deletes run in the
// order expenses, bookings, unit. A failure after some remote deletes have
// succeeded restores the whole local state (unit plus dependents) and
// surfaces a PartialCascadeError: the remote store may then hold fewer
// records than the restored local view, an accepted inconsistency window
// that is logged rather than hidden.
func (s *unitService) Delete(ctx context.Context, st *state.Store, id string) error {
	// Consistent lock order with the other coordinators: units, bookings,
	// expenses.
	st.Units.BeginMutation()
	defer st.Units.EndMutation()
	st.Bookings.BeginMutation()
	defer st.Bookings.EndMutation()
	st.Expenses.BeginMutation()
	defer st.Expenses.EndMutation()

	if _, ok := st.Units.Get(id); !ok {
		return fmt.Errorf("%w: unit %s", domain.ErrNotFound, id)
	}

	unitsSnap := st.Units.Snapshot()
	bookingsSnap := st.Bookings.Snapshot()
	expensesSnap := st.Expenses.Snapshot()
	restore := func() {
		st.Units.Reset(unitsSnap)
		st.Bookings.Reset(bookingsSnap)
		st.Expenses.Reset(expensesSnap)
	}

	removedExpenses := st.Expenses.RemoveWhere(func(e domain.Expense) bool { return e.UnitID == id })
	removedBookings := st.Bookings.RemoveWhere(func(b domain.Booking) bool { return b.UnitID == id })
	st.Units.Remove(id)

	deletedExpenses, deletedBookings := 0, 0
	fail := func(stage domain.CascadeStage, err error) error {
		restore()
		if deletedExpenses == 0 && deletedBookings == 0 {
			return &domain.PersistenceError{Kind: "unit", Op: "delete", Err: err}
		}
		cascadeErr := &domain.PartialCascadeError{
			UnitID:          id,
			FailedStage:     stage,
			DeletedExpenses: deletedExpenses,
			DeletedBookings: deletedBookings,
			Err:             err,
		}
		logger.Error("Unit cascade delete left remote store ahead of local view",
			"unit_id", id, "failed_stage", string(stage),
			"deleted_expenses", deletedExpenses, "deleted_bookings", deletedBookings,
			"error", err)
		return cascadeErr
	}

	for i := range removedExpenses {
		if err := s.expenseRepo.Delete(ctx, removedExpenses[i].ID); err != nil {
			return fail(domain.CascadeStageExpenses, err)
		}
		deletedExpenses++
	}
	for i := range removedBookings {
		if err := s.bookingRepo.Delete(ctx, removedBookings[i].ID); err != nil {
			return fail(domain.CascadeStageBookings, err)
		}
		deletedBookings++
	}
	if err := s.unitRepo.Delete(ctx, id); err != nil {
		return fail(domain.CascadeStageUnit, err)
	}
	return nil
}

func (s *unitService) List(st *state.Store) []domain.Unit {
	return st.Units.Snapshot()
}
