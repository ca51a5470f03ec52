package commands

import (
	"context"
	"fmt"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
)

// PollUntilTerminal waits interval, fetches the job status and repeats until the job
// finishes, fails, or maxAttempts fetches were made. Cancelling ctx stops the loop early.
func PollUntilTerminal(
	ctx context.Context,
	repository repositories.PurgeRepository,
	jobID string,
	interval time.Duration,
	maxAttempts int,
) (*entities.PurgeJob, error) {
	timer := time.NewTimer(interval)
	defer timer.Stop()

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w after %d attempt(s): %w", entities.ErrPurgeTimeout, attempt-1, ctx.Err())
		case <-timer.C:
		}

		logger.Infof("Checking purge status (attempt %d/%d)...", attempt, maxAttempts)
		job, err := repository.Status(ctx, jobID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("%w after %d attempt(s): %w", entities.ErrPurgeTimeout, attempt, ctx.Err())
			}
			return nil, err
		}
		logger.Infof("Status: %s", job.Status)

		switch job.Status {
		case entities.PurgeStatusFinished:
			return job, nil
		case entities.PurgeStatusFailed:
			return nil, fmt.Errorf("%w: job %s", entities.ErrPurgeFailed, jobID)
		case entities.PurgeStatusPending:
		default:
			logger.Debugf("Treating status %q of job %s as pending", job.Status, jobID)
		}

		timer.Reset(interval)
	}

	return nil, fmt.Errorf("%w: job %s not finished after %d attempts", entities.ErrPurgeTimeout, jobID, maxAttempts)
}
