package repositories

import (
	"context"
	"time"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// PurgeRepository abstracts the CDN purge service.
type PurgeRepository interface {
	// Submit sends a purge request and returns the freshly created job.
	Submit(ctx context.Context, request entities.PurgeRequest) (*entities.PurgeJob, error)

	// Status fetches the current state of a previously submitted job.
	Status(ctx context.Context, jobID string) (*entities.PurgeJob, error)
}

// PurgeRepositoryFactory builds a PurgeRepository for the given endpoint.
// The endpoint and timeout are only known once the settings are loaded.
type PurgeRepositoryFactory func(endpoint string, timeout time.Duration) PurgeRepository
