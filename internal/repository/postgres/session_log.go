package postgres

import (
	"context"
	"database/sql"
	"time"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
)

type sessionLogRepository struct {
	db *sql.DB
}

func NewSessionLogRepository(db *sql.DB) repository.SessionLogRepository {
	return &sessionLogRepository{db: db}
}

func (r *sessionLogRepository) Insert(ctx context.Context, l *domain.SessionLog) error {
	query := `INSERT INTO session_logs (id, user_id, device_id, user_agent, ip_address, login_at, last_active_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, l.ID, l.UserID, l.DeviceID, l.UserAgent, l.IPAddress, l.LoginAt, l.LastActiveAt)
	return err
}

func (r *sessionLogRepository) Touch(ctx context.Context, id, lastActiveAt string) error {
	query := `UPDATE session_logs SET last_active_at = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, lastActiveAt, id)
	return err
}

func (r *sessionLogRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM session_logs WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *sessionLogRepository) DeleteIdleBefore(ctx context.Context, cutoff string) (int64, error) {
	query := `DELETE FROM session_logs WHERE last_active_at < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *sessionLogRepository) ListAll(ctx context.Context) ([]domain.SessionLog, error) {
	query := `SELECT id, user_id, COALESCE(device_id, ''), COALESCE(user_agent, ''), COALESCE(ip_address, ''), login_at, last_active_at
	          FROM session_logs ORDER BY login_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []domain.SessionLog
	for rows.Next() {
		var l domain.SessionLog
		var loginAt, lastActiveAt time.Time
		if err := rows.Scan(&l.ID, &l.UserID, &l.DeviceID, &l.UserAgent, &l.IPAddress, &loginAt, &lastActiveAt); err != nil {
			return nil, err
		}
		l.LoginAt = loginAt.Format(time.RFC3339)
		l.LastActiveAt = lastActiveAt.Format(time.RFC3339)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
