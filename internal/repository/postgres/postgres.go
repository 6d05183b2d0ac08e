package postgres

import (
	"database/sql"

	"sunlight-vm-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UnitRepository
	repository.BookingRepository
	repository.ExpenseRepository
	repository.SubscriptionRepository
	repository.SessionLogRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UnitRepository:         NewUnitRepository(db),
		BookingRepository:      NewBookingRepository(db),
		ExpenseRepository:      NewExpenseRepository(db),
		SubscriptionRepository: NewSubscriptionRepository(db),
		SessionLogRepository:   NewSessionLogRepository(db),
		UserRepository:         NewUserRepository(db),
	}
}
