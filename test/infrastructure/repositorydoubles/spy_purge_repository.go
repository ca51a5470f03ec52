//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"time"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
)

// SpyPurgeRepository implements repositories.PurgeRepository as a configurable spy.
type SpyPurgeRepository struct {
	// --- Submit ---
	SubmittedJob *entities.PurgeJob
	SubmitErr    error
	// spy: requests received
	SubmitRequests []entities.PurgeRequest

	// --- Status ---
	// Statuses are returned in order, the last one is repeated once exhausted
	Statuses  []*entities.PurgeJob
	StatusErr error
	// OnStatus runs at the start of every Status call, before any result is returned
	OnStatus func()
	// spy: job IDs requested
	StatusJobIDs []string

	// --- Factory ---
	// spy: endpoints the factory was called with
	FactoryEndpoints []string
}

var _ repositories.PurgeRepository = (*SpyPurgeRepository)(nil)

func (p *SpyPurgeRepository) Submit(
	_ context.Context, request entities.PurgeRequest,
) (*entities.PurgeJob, error) {
	p.SubmitRequests = append(p.SubmitRequests, request)
	if p.SubmitErr != nil {
		return nil, p.SubmitErr
	}
	if p.SubmittedJob != nil {
		return p.SubmittedJob, nil
	}
	return &entities.PurgeJob{ID: "purge-1", Status: entities.PurgeStatusPending}, nil
}

func (p *SpyPurgeRepository) Status(
	_ context.Context, jobID string,
) (*entities.PurgeJob, error) {
	p.StatusJobIDs = append(p.StatusJobIDs, jobID)
	if p.OnStatus != nil {
		p.OnStatus()
	}
	if p.StatusErr != nil {
		return nil, p.StatusErr
	}
	if len(p.Statuses) == 0 {
		return &entities.PurgeJob{ID: jobID, Status: entities.PurgeStatusPending}, nil
	}

	index := len(p.StatusJobIDs) - 1
	if index >= len(p.Statuses) {
		index = len(p.Statuses) - 1
	}
	return p.Statuses[index], nil
}

// StatusCallCount returns how many times Status was called.
func (p *SpyPurgeRepository) StatusCallCount() int {
	return len(p.StatusJobIDs)
}

// Factory returns a PurgeRepositoryFactory that always yields this spy.
func (p *SpyPurgeRepository) Factory() repositories.PurgeRepositoryFactory {
	return func(endpoint string, _ time.Duration) repositories.PurgeRepository {
		p.FactoryEndpoints = append(p.FactoryEndpoints, endpoint)
		return p
	}
}
