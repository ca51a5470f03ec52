//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/cdnpurge/internal/domain/commands"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// StubPurgeCommand is a stub implementation of commands.Purge.
type StubPurgeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Report           *entities.PurgeReport
	LastSettings     *entities.Settings
}

var _ commands.Purge = (*StubPurgeCommand)(nil)

func (s *StubPurgeCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
) (*entities.PurgeReport, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	if s.Report == nil {
		return &entities.PurgeReport{}, s.ExecuteErr
	}
	return s.Report, s.ExecuteErr
}

// StubPathsCommand is a stub implementation of commands.Paths.
type StubPathsCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Paths            []string
	LastSettings     *entities.Settings
}

var _ commands.Paths = (*StubPathsCommand)(nil)

func (s *StubPathsCommand) Execute(settings *entities.Settings) ([]string, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	return s.Paths, s.ExecuteErr
}

// StubStatusCommand is a stub implementation of commands.Status.
type StubStatusCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Job              *entities.PurgeJob
	LastJobID        string
	LastSettings     *entities.Settings
}

var _ commands.Status = (*StubStatusCommand)(nil)

func (s *StubStatusCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	jobID string,
) (*entities.PurgeJob, error) {
	s.ExecuteCallCount++
	s.LastSettings = settings
	s.LastJobID = jobID
	return s.Job, s.ExecuteErr
}
