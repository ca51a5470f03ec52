package controllers

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/cdnpurge/config"
	"github.com/rios0rios0/cdnpurge/internal/domain/commands"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// PathsController handles the "paths" subcommand.
type PathsController struct {
	command commands.Paths
	loader  *config.Loader
}

// NewPathsController creates a new PathsController.
func NewPathsController(command commands.Paths, loader *config.Loader) *PathsController {
	return &PathsController{command: command, loader: loader}
}

// GetBind returns the Cobra command metadata for the paths controller.
func (it *PathsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "paths",
		Short: "List the paths a purge would invalidate",
		Long: `Discover the theme directories and print, one per line, the jsDelivr paths
that "purge" would send. No request is made to the CDN.`,
		Args: cobra.NoArgs,
	}
}

// AddFlags adds no paths-specific flags.
func (it *PathsController) AddFlags(_ *cobra.Command) {}

// Execute prints the paths to the command output.
func (it *PathsController) Execute(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings(cmd, it.loader, false)
	if err != nil {
		return err
	}

	paths, err := it.command.Execute(settings)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if _, err = fmt.Fprintln(cmd.OutOrStdout(), path); err != nil {
			return err
		}
	}
	return nil
}
