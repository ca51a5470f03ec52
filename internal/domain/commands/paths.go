package commands

import (
	"fmt"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// latestRef is the jsDelivr alias that resolves to the most recent release.
const latestRef = "latest"

// BuildPurgePaths returns, for each theme in order, the versioned, "@latest" and
// default-branch URLs of its stylesheet on jsDelivr.
func BuildPurgePaths(repository, version string, themes []string) []string {
	paths := make([]string, 0, len(themes)*3) //nolint:mnd // three ref variants per theme
	for _, theme := range themes {
		paths = append(paths,
			fmt.Sprintf("/gh/%s@%s/%s/%s", repository, version, theme, entities.MarkerFile),
			fmt.Sprintf("/gh/%s@%s/%s/%s", repository, latestRef, theme, entities.MarkerFile),
			fmt.Sprintf("/gh/%s/%s/%s", repository, theme, entities.MarkerFile),
		)
	}
	return paths
}
