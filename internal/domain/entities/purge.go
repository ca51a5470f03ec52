package entities

import "fmt"

// MarkerFile is the file that identifies a directory as a theme.
const MarkerFile = "theme.css"

// PurgeStatus is the job status reported by the purge service, kept verbatim.
type PurgeStatus string

const (
	PurgeStatusPending  PurgeStatus = "pending"
	PurgeStatusFinished PurgeStatus = "finished"
	PurgeStatusFailed   PurgeStatus = "failed"
)

// ThemeSet holds the theme directory names discovered at the start of a run.
type ThemeSet []string

// PurgeRequest is the ordered list of CDN paths to invalidate.
type PurgeRequest struct {
	Paths []string
}

// Validate rejects requests that would make the purge service do nothing.
func (it PurgeRequest) Validate() error {
	if len(it.Paths) == 0 {
		return fmt.Errorf("%w: purge request must contain at least one path", ErrConfig)
	}
	for i, path := range it.Paths {
		if path == "" {
			return fmt.Errorf("%w: purge request path[%d] is empty", ErrConfig, i)
		}
	}
	return nil
}

// PathResult is the outcome of a purge for a single path.
type PathResult struct {
	Throttled bool
	Providers map[string]bool // provider name -> purge succeeded
}

// PurgeJob is a purge submitted to the CDN. Paths is only populated once the job is finished.
type PurgeJob struct {
	ID     string
	Status PurgeStatus
	Paths  map[string]PathResult
}

// IsTerminal reports whether the job will not change status anymore.
func (it *PurgeJob) IsTerminal() bool {
	return it.Status == PurgeStatusFinished || it.Status == PurgeStatusFailed
}

// PurgeReport is the classified outcome of a finished purge.
type PurgeReport struct {
	JobID          string
	Paths          []string
	ThrottledPaths []string
	FailedPaths    []string // "{path} ({provider})"
}

// HasFailures reports whether any provider failed to purge a path.
func (it *PurgeReport) HasFailures() bool {
	return len(it.FailedPaths) > 0
}

// Err returns ErrPurgeResult describing the failed paths, or nil when everything was purged.
func (it *PurgeReport) Err() error {
	if !it.HasFailures() {
		return nil
	}
	return fmt.Errorf("%w: %d path(s) failed to purge", ErrPurgeResult, len(it.FailedPaths))
}
