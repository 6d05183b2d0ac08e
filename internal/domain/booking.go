package domain

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "PAID"
	PaymentStatusUnpaid PaymentStatus = "UNPAID"
)

// Booking reserves a unit for a tenant over [StartDate, EndDate).
// EndDate and TotalRentalPrice are derived fields: callers must have run
// utils.RecomputeDerived before handing a booking to the coordinator,
// which persists them as ordinary stored values.
type Booking struct {
	ID                  string        `json:"id"`
	UnitID              string        `json:"unit_id"`
	TenantName          string        `json:"tenant_name"`
	TenantPhone         string        `json:"tenant_phone"`
	StartDate           string        `json:"start_date"` // yyyy-mm-dd
	Nights              int32         `json:"nights"`
	EndDate             string        `json:"end_date"` // start + nights
	NightlyRate         int64         `json:"nightly_rate"`
	VillageFee          int64         `json:"village_fee"`
	HousekeepingEnabled bool          `json:"housekeeping_enabled"`
	HousekeepingPrice   int64         `json:"housekeeping_price"`
	DepositEnabled      bool          `json:"deposit_enabled"`
	DepositAmount       int64         `json:"deposit_amount"`
	TotalRentalPrice    int64         `json:"total_rental_price"`
	Status              BookingStatus `json:"status"`
	PaymentStatus       PaymentStatus `json:"payment_status"`
	Notes               string        `json:"notes"`
	TenantWelcome       bool          `json:"tenant_welcome"`
	CreatedOn           string        `json:"created_on"`
}

func (b Booking) EntityID() string { return b.ID }

func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusConfirmed, BookingStatusPending, BookingStatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s PaymentStatus) bool {
	return s == PaymentStatusPaid || s == PaymentStatusUnpaid
}

// CheckAvailability decides whether the candidate booking may occupy its
// date range. It scans the given bookings for a non-cancelled booking on
// the same unit whose [start, end) interval intersects the candidate's,
// skipping the candidate's own prior record when updating.
//
// Intervals are half-open: a booking ending on a date does not conflict
// with one starting that same date, so back-to-back stays are allowed.
// Dates are yyyy-mm-dd strings, which order lexicographically.
//
// The function is pure; it performs no I/O.
func CheckAvailability(candidate *Booking, existing []Booking) error {
	// Cancelled bookings never conflict and never block others.
	if candidate.Status == BookingStatusCancelled {
		return nil
	}
	for i := range existing {
		e := &existing[i]
		if e.ID == candidate.ID {
			continue
		}
		if e.Status == BookingStatusCancelled {
			continue
		}
		if e.UnitID != candidate.UnitID {
			continue
		}
		if candidate.StartDate < e.EndDate && candidate.EndDate > e.StartDate {
			return &ConflictError{
				UnitID:        candidate.UnitID,
				StartDate:     candidate.StartDate,
				EndDate:       candidate.EndDate,
				ConflictingID: e.ID,
			}
		}
	}
	return nil
}
