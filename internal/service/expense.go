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

type expenseService struct {
	repo repository.ExpenseRepository
}

func NewExpenseService(repo repository.ExpenseRepository) ExpenseService {
	return &expenseService{repo: repo}
}

func (s *expenseService) Create(ctx context.Context, st *state.Store, e *domain.Expense) error {
	col := &st.Expenses
	col.BeginMutation()
	defer col.EndMutation()

	if _, ok := st.Units.Get(e.UnitID); !ok {
		return fmt.Errorf("%w: unit %s", domain.ErrNotFound, e.UnitID)
	}
	e.ID = uuid.NewString()
	e.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	col.InsertHead(*e)
	return persist("expense", "insert",
		func() { col.Remove(e.ID) },
		func() error { return s.repo.Insert(ctx, e) })
}

func (s *expenseService) Update(ctx context.Context, st *state.Store, e *domain.Expense) error {
	col := &st.Expenses
	col.BeginMutation()
	defer col.EndMutation()

	if _, ok := st.Units.Get(e.UnitID); !ok {
		return fmt.Errorf("%w: unit %s", domain.ErrNotFound, e.UnitID)
	}
	prev, ok := col.Replace(*e)
	if !ok {
		return fmt.Errorf("%w: expense %s", domain.ErrNotFound, e.ID)
	}
	// Identity is immutable; carry the original creation timestamp forward.
	e.CreatedOn = prev.CreatedOn
	col.Replace(*e)
	return persist("expense", "update",
		func() { col.Replace(prev) },
		func() error { return s.repo.Update(ctx, e) })
}

func (s *expenseService) Delete(ctx context.Context, st *state.Store, id string) error {
	col := &st.Expenses
	col.BeginMutation()
	defer col.EndMutation()

	prev, idx, ok := col.Remove(id)
	if !ok {
		return fmt.Errorf("%w: expense %s", domain.ErrNotFound, id)
	}
	return persist("expense", "delete",
		func() { col.InsertAt(idx, prev) },
		func() error { return s.repo.Delete(ctx, id) })
}

func (s *expenseService) List(st *state.Store) []domain.Expense {
	return st.Expenses.Snapshot()
}
