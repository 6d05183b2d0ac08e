package jobs

import (
	"context"
	"time"

	"sunlight-vm-backend/internal/logger"
)

// SendSubscriptionExpiryReminders emails every client whose active
// subscription ends within the configured lead window.
func (jr *JobRunner) SendSubscriptionExpiryReminders() {
	jr.runWithRecovery("SendSubscriptionExpiryReminders", func() {
		ctx := context.Background()

		now := time.Now().UTC()
		from := now.Format("2006-01-02")
		to := now.AddDate(0, 0, jr.config.Retention.ExpiryReminderLeadDays).Format("2006-01-02")

		subs, err := jr.subscriptions.ListEndingBetween(ctx, from, to)
		if err != nil {
			logger.Error("Failed to query expiring subscriptions", "error", err)
			return
		}

		count := 0
		for _, sub := range subs {
			user, err := jr.users.GetByID(ctx, sub.UserID)
			if err != nil {
				logger.Error("Failed to load subscription owner",
					"subscription_id", sub.ID,
					"user_id", sub.UserID,
					"error", err)
				continue
			}

			endDate := sub.EndDate()
			daysLeft := 0
			if end, perr := time.Parse("2006-01-02", endDate); perr == nil {
				daysLeft = int(end.Sub(now).Hours() / 24)
				if daysLeft < 0 {
					daysLeft = 0
				}
			}

			if err := jr.email.SendSubscriptionExpiryReminder(ctx, user.Email, user.Name, endDate, daysLeft); err != nil {
				logger.Error("Failed to send expiry reminder",
					"subscription_id", sub.ID,
					"email", user.Email,
					"error", err)
				continue
			}

			count++
			logger.Debug("Sent expiry reminder",
				"subscription_id", sub.ID,
				"user_id", sub.UserID,
				"end_date", endDate)
		}

		logger.Info("Subscription expiry reminders sent", "count", count, "window_from", from, "window_to", to)
	})
}
