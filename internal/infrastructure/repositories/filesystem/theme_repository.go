package filesystem

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// ThemeRepository discovers theme directories on a filesystem.
type ThemeRepository struct {
	fs afero.Fs
}

// NewThemeRepository creates a ThemeRepository reading from fs.
func NewThemeRepository(fs afero.Fs) *ThemeRepository {
	return &ThemeRepository{fs: fs}
}

// Discover returns the sorted names of the non-hidden directories directly under rootDir
// that contain the theme marker file.
func (it *ThemeRepository) Discover(rootDir string) (entities.ThemeSet, error) {
	entries, err := afero.ReadDir(it.fs, rootDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrDiscovery, err)
	}

	themes := entities.ThemeSet{}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		exists, statErr := afero.Exists(it.fs, filepath.Join(rootDir, entry.Name(), entities.MarkerFile))
		if statErr != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrDiscovery, statErr)
		}
		if exists {
			themes = append(themes, entry.Name())
		}
	}

	slices.Sort(themes)
	return themes, nil
}
