package jobs

import (
	"context"
	"time"

	"sunlight-vm-backend/internal/logger"
)

// PruneStaleSessionLogs deletes login records whose last activity is older
// than the retention window.
func (jr *JobRunner) PruneStaleSessionLogs() {
	jr.runWithRecovery("PruneStaleSessionLogs", func() {
		ctx := context.Background()

		cutoff := time.Now().UTC().
			AddDate(0, 0, -jr.config.Retention.SessionLogIdleDays).
			Format(time.RFC3339)

		deleted, err := jr.sessionLogs.DeleteIdleBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to prune stale session logs", "cutoff", cutoff, "error", err)
			return
		}

		logger.Info("Stale session logs pruned", "deleted", deleted, "cutoff", cutoff)
	})
}
