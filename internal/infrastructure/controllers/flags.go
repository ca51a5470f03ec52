package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/cdnpurge/config"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// AddGlobalFlags adds the flags shared by every subcommand to the root command.
func AddGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("repository", "",
		"Repository in owner/name form (overrides GITHUB_REPOSITORY)")
	cmd.PersistentFlags().String("ref", "",
		"Released version or ref (overrides GITHUB_REF_NAME)")
	cmd.PersistentFlags().String("root", "",
		"Directory containing the theme folders (default: current directory)")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show the paths that would be purged without sending the request")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// loadSettings builds the run settings from the config file, environment and flags,
// and raises the log level when verbose output is asked for.
func loadSettings(cmd *cobra.Command, loader *config.Loader, transportOnly bool) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	repository, _ := cmd.Flags().GetString("repository")
	ref, _ := cmd.Flags().GetString("ref")
	rootDir, _ := cmd.Flags().GetString("root")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	settings, err := loader.Load(config.Options{
		Path:          configPath,
		Repository:    repository,
		Ref:           ref,
		RootDir:       rootDir,
		DryRun:        dryRun,
		Verbose:       verbose,
		TransportOnly: transportOnly,
	})
	if err != nil {
		return nil, err
	}

	if settings.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	return settings, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
