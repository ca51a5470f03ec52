//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
)

// StubThemeRepository implements repositories.ThemeRepository with canned results.
type StubThemeRepository struct {
	Themes      entities.ThemeSet
	DiscoverErr error
	// spy: root directories scanned
	DiscoveredRoots []string
}

var _ repositories.ThemeRepository = (*StubThemeRepository)(nil)

func (s *StubThemeRepository) Discover(rootDir string) (entities.ThemeSet, error) {
	s.DiscoveredRoots = append(s.DiscoveredRoots, rootDir)
	return s.Themes, s.DiscoverErr
}
