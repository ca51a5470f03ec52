package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cdnpurge/config"
	"github.com/rios0rios0/cdnpurge/internal/domain/commands"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// StatusController handles the "status" subcommand.
type StatusController struct {
	command commands.Status
	loader  *config.Loader
}

// NewStatusController creates a new StatusController.
func NewStatusController(command commands.Status, loader *config.Loader) *StatusController {
	return &StatusController{command: command, loader: loader}
}

// GetBind returns the Cobra command metadata for the status controller.
func (it *StatusController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "status <purge-id>",
		Short: "Show the status of a submitted purge",
		Long: `Fetch the status of a purge job once. Exits with an error when the
job failed or when some paths could not be purged.`,
		Args: cobra.ExactArgs(1),
	}
}

// AddFlags adds no status-specific flags.
func (it *StatusController) AddFlags(_ *cobra.Command) {}

// Execute fetches and reports the job status.
func (it *StatusController) Execute(cmd *cobra.Command, arguments []string) error {
	settings, err := loadSettings(cmd, it.loader, true)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(commandContext(cmd), settings, arguments[0])
	return err
}
