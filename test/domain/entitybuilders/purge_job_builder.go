//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PurgeJobBuilder helps create test purge jobs with a fluent interface.
type PurgeJobBuilder struct {
	*testkit.BaseBuilder
	id     string
	status entities.PurgeStatus
	paths  map[string]entities.PathResult
}

// NewPurgeJobBuilder creates a new purge job builder with sensible defaults.
func NewPurgeJobBuilder() *PurgeJobBuilder {
	return &PurgeJobBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		id:          "purge-1",
		status:      entities.PurgeStatusPending,
	}
}

// WithID sets the job ID.
func (b *PurgeJobBuilder) WithID(id string) *PurgeJobBuilder {
	b.id = id
	return b
}

// WithStatus sets the job status.
func (b *PurgeJobBuilder) WithStatus(status entities.PurgeStatus) *PurgeJobBuilder {
	b.status = status
	return b
}

// WithPurgedPath adds a path that every given provider purged successfully.
func (b *PurgeJobBuilder) WithPurgedPath(path string, providers ...string) *PurgeJobBuilder {
	result := entities.PathResult{Providers: make(map[string]bool, len(providers))}
	for _, provider := range providers {
		result.Providers[provider] = true
	}
	return b.withPath(path, result)
}

// WithThrottledPath adds a throttled path.
func (b *PurgeJobBuilder) WithThrottledPath(path string) *PurgeJobBuilder {
	return b.withPath(path, entities.PathResult{Throttled: true})
}

// WithPathResult adds a path with an explicit result.
func (b *PurgeJobBuilder) WithPathResult(path string, result entities.PathResult) *PurgeJobBuilder {
	return b.withPath(path, result)
}

func (b *PurgeJobBuilder) withPath(path string, result entities.PathResult) *PurgeJobBuilder {
	if b.paths == nil {
		b.paths = make(map[string]entities.PathResult)
	}
	b.paths[path] = result
	return b
}

// Build creates the purge job (satisfies testkit.Builder interface).
func (b *PurgeJobBuilder) Build() interface{} {
	return b.BuildPurgeJob()
}

// BuildPurgeJob creates the purge job with a concrete return type.
func (b *PurgeJobBuilder) BuildPurgeJob() *entities.PurgeJob {
	job := &entities.PurgeJob{
		ID:     b.id,
		Status: b.status,
	}
	if b.paths != nil {
		job.Paths = make(map[string]entities.PathResult, len(b.paths))
		for path, result := range b.paths {
			job.Paths[path] = result
		}
	}
	return job
}

// Reset clears the builder state, allowing it to be reused.
func (b *PurgeJobBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "purge-1"
	b.status = entities.PurgeStatusPending
	b.paths = nil
	return b
}

// Clone creates a deep copy of the PurgeJobBuilder.
func (b *PurgeJobBuilder) Clone() testkit.Builder {
	clone := &PurgeJobBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:          b.id,
		status:      b.status,
	}
	for path, result := range b.paths {
		clone.withPath(path, result)
	}
	return clone
}
