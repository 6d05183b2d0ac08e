package postgres

import (
	"context"
	"database/sql"
	"time"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) Insert(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (id, unit_id, tenant_name, tenant_phone, start_date, nights, end_date,
	          nightly_rate, village_fee, housekeeping_enabled, housekeeping_price, deposit_enabled, deposit_amount,
	          total_rental_price, status, payment_status, notes, tenant_welcome, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.UnitID, b.TenantName, b.TenantPhone, b.StartDate, b.Nights, b.EndDate,
		b.NightlyRate, b.VillageFee, b.HousekeepingEnabled, b.HousekeepingPrice, b.DepositEnabled, b.DepositAmount,
		b.TotalRentalPrice, b.Status, b.PaymentStatus, b.Notes, b.TenantWelcome, b.CreatedOn)
	return err
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET unit_id = $1, tenant_name = $2, tenant_phone = $3, start_date = $4, nights = $5,
	          end_date = $6, nightly_rate = $7, village_fee = $8, housekeeping_enabled = $9, housekeeping_price = $10,
	          deposit_enabled = $11, deposit_amount = $12, total_rental_price = $13, status = $14, payment_status = $15,
	          notes = $16, tenant_welcome = $17 WHERE id = $18`
	res, err := r.db.ExecContext(ctx, query,
		b.UnitID, b.TenantName, b.TenantPhone, b.StartDate, b.Nights,
		b.EndDate, b.NightlyRate, b.VillageFee, b.HousekeepingEnabled, b.HousekeepingPrice,
		b.DepositEnabled, b.DepositAmount, b.TotalRentalPrice, b.Status, b.PaymentStatus,
		b.Notes, b.TenantWelcome, b.ID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *bookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT id, unit_id, tenant_name, tenant_phone, start_date, nights, end_date,
	          nightly_rate, village_fee, housekeeping_enabled, housekeeping_price, deposit_enabled, deposit_amount,
	          total_rental_price, status, payment_status, COALESCE(notes, ''), tenant_welcome, created_on
	          FROM bookings ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func scanBooking(rows *sql.Rows) (*domain.Booking, error) {
	b := &domain.Booking{}
	var startDate, endDate, createdOn time.Time
	err := rows.Scan(&b.ID, &b.UnitID, &b.TenantName, &b.TenantPhone, &startDate, &b.Nights, &endDate,
		&b.NightlyRate, &b.VillageFee, &b.HousekeepingEnabled, &b.HousekeepingPrice, &b.DepositEnabled, &b.DepositAmount,
		&b.TotalRentalPrice, &b.Status, &b.PaymentStatus, &b.Notes, &b.TenantWelcome, &createdOn)
	if err != nil {
		return nil, err
	}
	b.StartDate = startDate.Format("2006-01-02")
	b.EndDate = endDate.Format("2006-01-02")
	b.CreatedOn = createdOn.Format(time.RFC3339)
	return b, nil
}
