package repositories

import (
	"github.com/spf13/afero"
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/cdnpurge/internal/domain/repositories"
	fsRepo "github.com/rios0rios0/cdnpurge/internal/infrastructure/repositories/filesystem"
	jsdRepo "github.com/rios0rios0/cdnpurge/internal/infrastructure/repositories/jsdelivr"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Themes and config files are read from the real filesystem
	if err := container.Provide(afero.NewOsFs); err != nil {
		return err
	}
	if err := container.Provide(func(fs afero.Fs) domainRepos.ThemeRepository {
		return fsRepo.NewThemeRepository(fs)
	}); err != nil {
		return err
	}

	// The purge endpoint is only known once settings are loaded, so a factory is provided
	if err := container.Provide(func() domainRepos.PurgeRepositoryFactory {
		return jsdRepo.NewPurgeRepository
	}); err != nil {
		return err
	}

	return nil
}
