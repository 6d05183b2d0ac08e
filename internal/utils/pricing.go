package utils

import (
	"fmt"
	"time"

	"sunlight-vm-backend/internal/domain"
)

// ParseDate converts a yyyy-mm-dd formatted string into a time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-mm-dd", dateStr)
	}
	return d, nil
}

// AddDays returns the yyyy-mm-dd date that lies days after dateStr.
func AddDays(dateStr string, days int) (string, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, days).Format("2006-01-02"), nil
}

// ComputeEndDate derives a booking's checkout date from its start date and
// night count.
func ComputeEndDate(startDate string, nights int32) (string, error) {
	if nights <= 0 {
		return "", fmt.Errorf("nights must be positive, got %d", nights)
	}
	return AddDays(startDate, int(nights))
}

// ComputeTotalRentalPrice computes the grand total:
// (nightly rate + village fee) * nights, plus the housekeeping price when
// housekeeping is enabled. The deposit is a separate hold and is not part
// of the total.
func ComputeTotalRentalPrice(b *domain.Booking) int64 {
	total := (b.NightlyRate + b.VillageFee) * int64(b.Nights)
	if b.HousekeepingEnabled {
		total += b.HousekeepingPrice
	}
	return total
}

// RecomputeDerived refreshes a booking's derived fields in place. Callers
// must invoke it whenever the start date, nights or any price input changed,
// before the booking reaches the conflict guard or the coordinator: both
// treat EndDate and TotalRentalPrice as ordinary stored values and never
// recompute them internally.
func RecomputeDerived(b *domain.Booking) error {
	end, err := ComputeEndDate(b.StartDate, b.Nights)
	if err != nil {
		return err
	}
	b.EndDate = end
	b.TotalRentalPrice = ComputeTotalRentalPrice(b)
	return nil
}
