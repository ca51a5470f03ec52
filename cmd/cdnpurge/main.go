package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cdnpurge/internal"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/infrastructure/controllers"
)

// version is injected at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // set by the linker

func buildRootCommand(appContext *internal.AppInternal) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "cdnpurge",
		Short: "Purge the jsDelivr cache of theme stylesheets after a release",
		Long: `Purges the jsDelivr cache for every theme stylesheet of a repository and
waits until jsDelivr confirms the purge. Meant to run in CI right after a release.

Usage modes:
  cdnpurge             Same as "cdnpurge purge"
  cdnpurge paths       Print the paths that would be purged
  cdnpurge status ID   Check a purge that was already submitted`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	controllers.AddGlobalFlags(cmd)

	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  bind.Args,
			RunE:  ctrl.Execute,
		}
		ctrl.AddFlags(subCmd)
		cmd.AddCommand(subCmd)

		// The bare root command runs a purge
		if _, ok := ctrl.(*controllers.PurgeController); ok {
			cmd.Args = bind.Args
			cmd.RunE = ctrl.Execute
		}
	}

	return cmd
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cobraRoot := buildRootCommand(injectAppContext())
	if err := cobraRoot.ExecuteContext(ctx); err != nil {
		stop()
		logFailure(err)
		os.Exit(1)
	}
}

// logFailure prints the error that aborted the run, with a hint for configuration problems.
func logFailure(err error) {
	logger.Errorf("Error: %s", err)
	if errors.Is(err, entities.ErrConfig) {
		logger.Error("Set GITHUB_REPOSITORY and GITHUB_REF_NAME or pass --repository and --ref")
	}
}
