package postgres

import (
	"context"
	"database/sql"
	"time"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
)

type unitRepository struct {
	db *sql.DB
}

func NewUnitRepository(db *sql.DB) repository.UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) Insert(ctx context.Context, u *domain.Unit) error {
	query := `INSERT INTO units (id, name, category, created_on) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Name, u.Category, u.CreatedOn)
	return err
}

func (r *unitRepository) Update(ctx context.Context, u *domain.Unit) error {
	query := `UPDATE units SET name = $1, category = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, u.Name, u.Category, u.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *unitRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM units WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *unitRepository) ListAll(ctx context.Context) ([]domain.Unit, error) {
	query := `SELECT id, name, category, created_on FROM units ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		var u domain.Unit
		var createdOn time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Category, &createdOn); err != nil {
			return nil, err
		}
		u.CreatedOn = createdOn.Format(time.RFC3339)
		units = append(units, u)
	}
	return units, rows.Err()
}
