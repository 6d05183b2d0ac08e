package jobs

import (
	"sunlight-vm-backend/internal/config"
	"sunlight-vm-backend/internal/logger"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/service"
)

// JobRunner coordinates the scheduled maintenance jobs. Jobs work against
// the persistence backend directly, not against any session's working set.
type JobRunner struct {
	subscriptions repository.SubscriptionRepository
	sessionLogs   repository.SessionLogRepository
	users         repository.UserRepository
	email         service.EmailService
	config        *config.Config
}

func NewJobRunner(
	subscriptions repository.SubscriptionRepository,
	sessionLogs repository.SessionLogRepository,
	users repository.UserRepository,
	email service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		subscriptions: subscriptions,
		sessionLogs:   sessionLogs,
		users:         users,
		email:         email,
		config:        cfg,
	}
}

// Config exposes the runner's configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllJobs runs every maintenance job once (for manual execution)
func (jr *JobRunner) RunAllJobs() {
	jr.SendSubscriptionExpiryReminders()
	jr.PruneStaleSessionLogs()
}
