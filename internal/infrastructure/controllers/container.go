package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/cdnpurge/config"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Settings are loaded per run, so controllers share one loader
	if err := container.Provide(config.NewLoader); err != nil {
		return err
	}

	// Register controller constructors
	if err := container.Provide(NewPurgeController); err != nil {
		return err
	}
	if err := container.Provide(NewPathsController); err != nil {
		return err
	}
	if err := container.Provide(NewStatusController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	purgeController *PurgeController,
	pathsController *PathsController,
	statusController *StatusController,
) *[]entities.Controller {
	return &[]entities.Controller{
		purgeController,
		pathsController,
		statusController,
	}
}
