package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"

	"petty-shelter.backend/internal/infrastructure/repositories"
	"petty-shelter.backend/pkg/logger"
)

// CredentialCleanupJob prunes expired reset tokens, confirmation codes,
// invites and stale sign-in audit rows on a fixed interval.
type CredentialCleanupJob struct {
	credentials *repositories.CredentialRepository
	invites     *repositories.InviteRepository
	interval    time.Duration
	stop        chan struct{}
}

func NewCredentialCleanupJob(credentials *repositories.CredentialRepository, invites *repositories.InviteRepository) *CredentialCleanupJob {
	return &CredentialCleanupJob{
		credentials: credentials,
		invites:     invites,
		interval:    24 * time.Hour,
		stop:        make(chan struct{}),
	}
}

func (j *CredentialCleanupJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting credential cleanup job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// Run once at startup so a long-stopped server catches up immediately.
	j.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "credential cleanup job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "credential cleanup job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *CredentialCleanupJob) Stop() {
	close(j.stop)
}

func (j *CredentialCleanupJob) sweep(ctx context.Context) {
	credentials, err := j.credentials.DeleteExpired(ctx)
	if err != nil {
		logger.Error(ctx, "credential cleanup failed", zap.Error(err))
	}

	invites, err := j.invites.DeleteExpired(ctx)
	if err != nil {
		logger.Error(ctx, "invite cleanup failed", zap.Error(err))
	}

	if credentials+invites > 0 {
		logger.Info(ctx, "pruned expired credentials",
			zap.Int64("credentials", credentials),
			zap.Int64("invites", invites))
	}
}
