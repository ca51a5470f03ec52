package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
)

// Status is the interface for the status command.
type Status interface {
	Execute(ctx context.Context, settings *entities.Settings, jobID string) (*entities.PurgeJob, error)
}

// StatusCommand fetches the state of an already submitted purge job once.
type StatusCommand struct {
	purgeFactory repositories.PurgeRepositoryFactory
}

// NewStatusCommand creates a new StatusCommand.
func NewStatusCommand(purgeFactory repositories.PurgeRepositoryFactory) *StatusCommand {
	return &StatusCommand{purgeFactory: purgeFactory}
}

// Execute fetches the job. A failed job is returned together with ErrPurgeFailed, and a
// finished job with failed paths together with ErrPurgeResult.
func (it *StatusCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	jobID string,
) (*entities.PurgeJob, error) {
	job, err := it.purgeFactory(settings.Endpoint, settings.HTTPTimeout).Status(ctx, jobID)
	if err != nil {
		return nil, err
	}
	logger.Infof("Purge %s status: %s", jobID, job.Status)

	switch job.Status {
	case entities.PurgeStatusFailed:
		return job, fmt.Errorf("%w: job %s", entities.ErrPurgeFailed, jobID)
	case entities.PurgeStatusFinished:
		logDetails(job)
		report := ClassifyResults(job)
		logReport(report)
		return job, report.Err()
	default:
		return job, nil
	}
}
