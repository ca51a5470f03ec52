package commands

import (
	"fmt"
	"slices"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// ClassifyResults splits the per-path results of a finished job into throttled paths and
// failed "{path} ({provider})" labels. A throttled path is not inspected for provider
// failures. Paths and providers are visited in lexical order.
func ClassifyResults(job *entities.PurgeJob) *entities.PurgeReport {
	report := &entities.PurgeReport{JobID: job.ID}

	paths := make([]string, 0, len(job.Paths))
	for path := range job.Paths {
		paths = append(paths, path)
	}
	slices.Sort(paths)

	for _, path := range paths {
		result := job.Paths[path]
		if result.Throttled {
			report.ThrottledPaths = append(report.ThrottledPaths, path)
			continue
		}

		providers := make([]string, 0, len(result.Providers))
		for provider := range result.Providers {
			providers = append(providers, provider)
		}
		slices.Sort(providers)

		for _, provider := range providers {
			if !result.Providers[provider] {
				report.FailedPaths = append(report.FailedPaths, fmt.Sprintf("%s (%s)", path, provider))
			}
		}
	}

	return report
}
