package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups of entities absent from the session store.
var ErrNotFound = errors.New("not found")

// ConflictError is returned by CheckAvailability when a candidate booking's
// date range intersects an existing non-cancelled booking on the same unit.
// It is raised before any state mutation, so no rollback follows it.
type ConflictError struct {
	UnitID        string
	StartDate     string
	EndDate       string
	ConflictingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("unit %s is unavailable from %s to %s (conflicts with booking %s)",
		e.UnitID, e.StartDate, e.EndDate, e.ConflictingID)
}

// PersistenceError wraps a failed remote call after the local rollback has
// already been applied. The caller may retry; the local view is back to its
// pre-operation state.
type PersistenceError struct {
	Kind string // entity kind, e.g. "booking"
	Op   string // "insert", "update" or "delete"
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence %s of %s failed: %v", e.Op, e.Kind, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

type CascadeStage string

const (
	CascadeStageExpenses CascadeStage = "expenses"
	CascadeStageBookings CascadeStage = "bookings"
	CascadeStageUnit     CascadeStage = "unit"
)

// PartialCascadeError reports a unit-delete cascade that removed some
// dependents remotely before a later stage failed. Local state has been
// restored wholesale, so the remote store may hold fewer records than the
// local view shows. Callers must log it, never swallow it.
type PartialCascadeError struct {
	UnitID          string
	FailedStage     CascadeStage
	DeletedExpenses int // dependents already removed remotely
	DeletedBookings int
	Err             error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("cascade delete of unit %s failed at %s stage (removed remotely: %d expenses, %d bookings): %v",
		e.UnitID, e.FailedStage, e.DeletedExpenses, e.DeletedBookings, e.Err)
}

func (e *PartialCascadeError) Unwrap() error { return e.Err }
