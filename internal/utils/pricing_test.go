package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sunlight-vm-backend/internal/domain"
)

func TestComputeEndDate(t *testing.T) {
	end, err := ComputeEndDate("2026-03-10", 5)
	assert.NoError(t, err)
	assert.Equal(t, "2026-03-15", end)

	t.Run("MonthBoundary", func(t *testing.T) {
		end, err := ComputeEndDate("2026-01-30", 3)
		assert.NoError(t, err)
		assert.Equal(t, "2026-02-02", end)
	})

	t.Run("LeapDay", func(t *testing.T) {
		end, err := ComputeEndDate("2028-02-28", 2)
		assert.NoError(t, err)
		assert.Equal(t, "2028-03-01", end)
	})

	t.Run("ZeroNights", func(t *testing.T) {
		_, err := ComputeEndDate("2026-03-10", 0)
		assert.Error(t, err)
	})

	t.Run("NegativeNights", func(t *testing.T) {
		_, err := ComputeEndDate("2026-03-10", -2)
		assert.Error(t, err)
	})

	t.Run("BadDate", func(t *testing.T) {
		_, err := ComputeEndDate("10/03/2026", 2)
		assert.Error(t, err)
	})
}

func TestComputeTotalRentalPrice(t *testing.T) {
	b := &domain.Booking{
		Nights:      3,
		NightlyRate: 500,
		VillageFee:  50,
	}
	assert.Equal(t, int64(1650), ComputeTotalRentalPrice(b))

	t.Run("HousekeepingAddedOnceWhenEnabled", func(t *testing.T) {
		b := &domain.Booking{
			Nights:              3,
			NightlyRate:         500,
			VillageFee:          50,
			HousekeepingEnabled: true,
			HousekeepingPrice:   200,
		}
		assert.Equal(t, int64(1850), ComputeTotalRentalPrice(b))
	})

	t.Run("HousekeepingIgnoredWhenDisabled", func(t *testing.T) {
		b := &domain.Booking{
			Nights:            3,
			NightlyRate:       500,
			VillageFee:        50,
			HousekeepingPrice: 200,
		}
		assert.Equal(t, int64(1650), ComputeTotalRentalPrice(b))
	})

	t.Run("DepositExcluded", func(t *testing.T) {
		b := &domain.Booking{
			Nights:         2,
			NightlyRate:    100,
			DepositEnabled: true,
			DepositAmount:  1000,
		}
		assert.Equal(t, int64(200), ComputeTotalRentalPrice(b))
	})
}

func TestRecomputeDerived(t *testing.T) {
	b := &domain.Booking{
		StartDate:           "2026-03-10",
		Nights:              3,
		NightlyRate:         500,
		VillageFee:          50,
		HousekeepingEnabled: true,
		HousekeepingPrice:   200,
		// Stale values that must be overwritten.
		EndDate:          "2025-01-01",
		TotalRentalPrice: 1,
	}

	assert.NoError(t, RecomputeDerived(b))
	assert.Equal(t, "2026-03-13", b.EndDate)
	assert.Equal(t, int64(1850), b.TotalRentalPrice)
}
