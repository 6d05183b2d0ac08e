package postgres

import (
	"context"
	"database/sql"
	"time"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
)

type subscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Insert(ctx context.Context, s *domain.Subscription) error {
	query := `INSERT INTO subscriptions (id, user_id, start_date, duration_days, price, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.UserID, s.StartDate, s.DurationDays, s.Price, s.Status, s.CreatedOn)
	return err
}

func (r *subscriptionRepository) Update(ctx context.Context, s *domain.Subscription) error {
	query := `UPDATE subscriptions SET start_date = $1, duration_days = $2, price = $3, status = $4 WHERE id = $5`
	res, err := r.db.ExecContext(ctx, query, s.StartDate, s.DurationDays, s.Price, s.Status, s.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM subscriptions WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *subscriptionRepository) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	query := `SELECT id, user_id, start_date, duration_days, price, status, created_on
	          FROM subscriptions ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func (r *subscriptionRepository) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Subscription, error) {
	// DATE + integer arithmetic; PAUSED subscriptions are skipped because
	// their stored status overrides the date-derived expiry.
	query := `SELECT id, user_id, start_date, duration_days, price, status, created_on
	          FROM subscriptions
	          WHERE status = 'ACTIVE' AND start_date + duration_days >= $1::date AND start_date + duration_days < $2::date
	          ORDER BY start_date`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSubscriptions(rows)
}

func collectSubscriptions(rows *sql.Rows) ([]domain.Subscription, error) {
	var subs []domain.Subscription
	for rows.Next() {
		var s domain.Subscription
		var startDate, createdOn time.Time
		if err := rows.Scan(&s.ID, &s.UserID, &startDate, &s.DurationDays, &s.Price, &s.Status, &createdOn); err != nil {
			return nil, err
		}
		s.StartDate = startDate.Format("2006-01-02")
		s.CreatedOn = createdOn.Format(time.RFC3339)
		subs = append(subs, s)
	}
	return subs, rows.Err()
}
