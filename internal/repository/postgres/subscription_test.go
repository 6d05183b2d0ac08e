package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"sunlight-vm-backend/internal/domain"
)

func TestSubscriptionRepository_ListEndingBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSubscriptionRepository(db)
	ctx := context.Background()

	start := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "user_id", "start_date", "duration_days", "price", "status", "created_on"}).
		AddRow("s1", "user-1", start, 30, 1200, "ACTIVE", created)

	mock.ExpectQuery("SELECT (.+) FROM subscriptions").
		WithArgs("2026-09-01", "2026-09-08").
		WillReturnRows(rows)

	subs, err := repo.ListEndingBetween(ctx, "2026-09-01", "2026-09-08")
	assert.NoError(t, err)
	assert.Len(t, subs, 1)
	assert.Equal(t, "2026-08-10", subs[0].StartDate)
	assert.Equal(t, domain.SubscriptionStatusActive, subs[0].Status)
	assert.Equal(t, "2026-09-09", subs[0].EndDate())
}

func TestSessionLogRepository_DeleteIdleBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewSessionLogRepository(db)

	mock.ExpectExec("DELETE FROM session_logs WHERE last_active_at").
		WithArgs("2026-05-31T00:00:00Z").
		WillReturnResult(sqlmock.NewResult(0, 4))

	deleted, err := repo.DeleteIdleBefore(context.Background(), "2026-05-31T00:00:00Z")
	assert.NoError(t, err)
	assert.Equal(t, int64(4), deleted)
}
