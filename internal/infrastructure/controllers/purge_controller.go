package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cdnpurge/config"
	"github.com/rios0rios0/cdnpurge/internal/domain/commands"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// PurgeController handles the "purge" subcommand, which is also the root command's default.
type PurgeController struct {
	command commands.Purge
	loader  *config.Loader
}

// NewPurgeController creates a new PurgeController.
func NewPurgeController(command commands.Purge, loader *config.Loader) *PurgeController {
	return &PurgeController{command: command, loader: loader}
}

// GetBind returns the Cobra command metadata for the purge controller.
func (it *PurgeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "purge",
		Short: "Purge the jsDelivr cache of every theme",
		Long: `Discover every theme directory (a folder holding a theme.css), purge the
versioned, @latest and default-branch URLs of its stylesheet on jsDelivr,
and wait until the purge is confirmed.

The repository and version are read from GITHUB_REPOSITORY and GITHUB_REF_NAME,
as set by GitHub Actions, unless given as flags.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds no purge-specific flags, the global ones are enough.
func (it *PurgeController) AddFlags(_ *cobra.Command) {}

// Execute loads the settings and runs the purge.
func (it *PurgeController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.loader, false)
	if err != nil {
		return err
	}

	report, err := it.command.Execute(commandContext(cmd), settings)
	if err != nil {
		return err
	}

	if settings.DryRun {
		logger.Infof("Dry run complete: %d path(s) would be purged", len(report.Paths))
		return nil
	}
	logger.Infof("Purge %s complete: %d path(s) purged, %d throttled",
		report.JobID, len(report.Paths), len(report.ThrottledPaths))
	return nil
}
