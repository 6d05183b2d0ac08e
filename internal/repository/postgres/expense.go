package postgres

import (
	"context"
	"database/sql"
	"time"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Insert(ctx context.Context, e *domain.Expense) error {
	query := `INSERT INTO expenses (id, unit_id, title, category, amount, expense_date, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.UnitID, e.Title, e.Category, e.Amount, e.Date, e.CreatedOn)
	return err
}

func (r *expenseRepository) Update(ctx context.Context, e *domain.Expense) error {
	query := `UPDATE expenses SET unit_id = $1, title = $2, category = $3, amount = $4, expense_date = $5 WHERE id = $6`
	res, err := r.db.ExecContext(ctx, query, e.UnitID, e.Title, e.Category, e.Amount, e.Date, e.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM expenses WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *expenseRepository) ListAll(ctx context.Context) ([]domain.Expense, error) {
	query := `SELECT id, unit_id, title, category, amount, expense_date, created_on FROM expenses ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var e domain.Expense
		var date, createdOn time.Time
		if err := rows.Scan(&e.ID, &e.UnitID, &e.Title, &e.Category, &e.Amount, &date, &createdOn); err != nil {
			return nil, err
		}
		e.Date = date.Format("2006-01-02")
		e.CreatedOn = createdOn.Format(time.RFC3339)
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}
