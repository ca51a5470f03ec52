package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
)

// Purge is the interface for the purge command.
type Purge interface {
	Execute(ctx context.Context, settings *entities.Settings) (*entities.PurgeReport, error)
}

// PurgeCommand orchestrates a full purge:
// discover themes -> build paths -> submit -> poll -> classify.
type PurgeCommand struct {
	themeRepository repositories.ThemeRepository
	purgeFactory    repositories.PurgeRepositoryFactory
}

// NewPurgeCommand creates a new PurgeCommand.
func NewPurgeCommand(
	themeRepository repositories.ThemeRepository,
	purgeFactory repositories.PurgeRepositoryFactory,
) *PurgeCommand {
	return &PurgeCommand{
		themeRepository: themeRepository,
		purgeFactory:    purgeFactory,
	}
}

// Execute runs the purge and returns the classified report. When some paths failed at the
// provider level, the report is returned together with an ErrPurgeResult error.
func (it *PurgeCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
) (*entities.PurgeReport, error) {
	logger.Infof("Repository: %s", settings.Repository)
	logger.Infof("Version: %s", settings.Ref)
	warnIfNotRelease(settings.Ref)

	paths, err := discoverPaths(it.themeRepository, settings)
	if err != nil {
		return nil, err
	}

	if settings.DryRun {
		logger.Info("Dry run: skipping purge request")
		return &entities.PurgeReport{Paths: paths}, nil
	}

	purgeRepository := it.purgeFactory(settings.Endpoint, settings.HTTPTimeout)

	logger.Info("Sending purge request...")
	job, err := purgeRepository.Submit(ctx, entities.PurgeRequest{Paths: paths})
	if err != nil {
		return nil, err
	}
	logger.Infof("Purge initiated with ID: %s", job.ID)
	logger.Infof("Initial status: %s", job.Status)

	logger.Info("Waiting for purge to complete...")
	final, err := PollUntilTerminal(ctx, purgeRepository, job.ID, settings.PollInterval, settings.MaxAttempts)
	if err != nil {
		return nil, err
	}
	logger.Info("Purge completed successfully")
	logDetails(final)

	report := ClassifyResults(final)
	report.Paths = paths
	logReport(report)

	return report, report.Err()
}

// discoverPaths scans the theme root and builds the purge paths, failing when nothing
// would be purged.
func discoverPaths(
	themeRepository repositories.ThemeRepository,
	settings *entities.Settings,
) ([]string, error) {
	themes, err := themeRepository.Discover(settings.RootDir)
	if err != nil {
		return nil, err
	}
	logger.Infof("Discovered themes: %s", strings.Join(themes, ", "))

	if len(themes) == 0 {
		return nil, fmt.Errorf("%w in %q", entities.ErrNoThemes, settings.RootDir)
	}

	paths := BuildPurgePaths(settings.Repository, settings.Ref, themes)
	logger.Info("Paths to purge:")
	for _, path := range paths {
		logger.Infof("  %s", path)
	}
	return paths, nil
}

// warnIfNotRelease warns when the ref does not look like a release tag, because the
// "@latest" alias only ever resolves to releases.
func warnIfNotRelease(ref string) {
	if _, err := semver.NewVersion(ref); err != nil {
		logger.Warnf("Ref %q is not a semantic version; the @latest alias may not point to it", ref)
	}
}

func logDetails(job *entities.PurgeJob) {
	for path, result := range job.Paths {
		logger.WithFields(logger.Fields{
			"path":      path,
			"throttled": result.Throttled,
			"providers": result.Providers,
		}).Debug("Purge result")
	}
}

func logReport(report *entities.PurgeReport) {
	if len(report.ThrottledPaths) > 0 {
		logger.Warn("Some paths were throttled:")
		for _, path := range report.ThrottledPaths {
			logger.Warnf("  %s", path)
		}
	}

	if report.HasFailures() {
		logger.Error("Some paths failed to purge:")
		for _, path := range report.FailedPaths {
			logger.Errorf("  %s", path)
		}
	}
}
