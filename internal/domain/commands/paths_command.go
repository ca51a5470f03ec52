package commands

import (
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
)

// Paths is the interface for the paths command.
type Paths interface {
	Execute(settings *entities.Settings) ([]string, error)
}

// PathsCommand lists the paths a purge would invalidate without contacting the CDN.
type PathsCommand struct {
	themeRepository repositories.ThemeRepository
}

// NewPathsCommand creates a new PathsCommand.
func NewPathsCommand(themeRepository repositories.ThemeRepository) *PathsCommand {
	return &PathsCommand{themeRepository: themeRepository}
}

// Execute discovers the themes and returns the paths that would be purged.
func (it *PathsCommand) Execute(settings *entities.Settings) ([]string, error) {
	return discoverPaths(it.themeRepository, settings)
}
