package repositories

import "github.com/rios0rios0/cdnpurge/internal/domain/entities"

// ThemeRepository finds the theme directories subject to purge.
type ThemeRepository interface {
	// Discover returns the immediate, non-hidden subdirectories of rootDir that contain
	// the theme marker file, sorted by name.
	Discover(rootDir string) (entities.ThemeSet, error)
}
