package domain

import "time"

type SubscriptionStatus string

const (
	SubscriptionStatusActive SubscriptionStatus = "ACTIVE"
	SubscriptionStatusPaused SubscriptionStatus = "PAUSED"
	// SubscriptionStatusExpired is derived, never stored.
	SubscriptionStatusExpired SubscriptionStatus = "EXPIRED"
)

// Subscription is a client account's access period. Only ACTIVE and PAUSED
// are stored; EXPIRED is computed from the dates unless PAUSED overrides it.
type Subscription struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	StartDate    string             `json:"start_date"` // yyyy-mm-dd
	DurationDays int32              `json:"duration_days"`
	Price        int64              `json:"price"`
	Status       SubscriptionStatus `json:"status"`
	CreatedOn    string             `json:"created_on"`
}

func (s Subscription) EntityID() string { return s.ID }

// EndDate returns start + duration as a yyyy-mm-dd string, or "" when the
// start date does not parse.
func (s Subscription) EndDate() string {
	start, err := time.Parse("2006-01-02", s.StartDate)
	if err != nil {
		return ""
	}
	return start.AddDate(0, 0, int(s.DurationDays)).Format("2006-01-02")
}

// EffectiveStatus resolves the subscription's state as of the given date.
// PAUSED wins over the date computation; otherwise a subscription whose
// end date has passed reads as EXPIRED.
func (s Subscription) EffectiveStatus(today string) SubscriptionStatus {
	if s.Status == SubscriptionStatusPaused {
		return SubscriptionStatusPaused
	}
	if end := s.EndDate(); end != "" && end <= today {
		return SubscriptionStatusExpired
	}
	return SubscriptionStatusActive
}

func ValidStoredSubscriptionStatus(st SubscriptionStatus) bool {
	return st == SubscriptionStatusActive || st == SubscriptionStatusPaused
}
