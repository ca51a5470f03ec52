//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cdnpurge/internal/domain/commands"
	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/cdnpurge/test/infrastructure/repositorydoubles"
)

func newSettings() *entities.Settings {
	return &entities.Settings{
		Repository:   "owner/themes",
		Ref:          "v1.0.0",
		RootDir:      "/repo",
		Endpoint:     "https://purge.example.com/",
		PollInterval: 0,
		MaxAttempts:  60,
	}
}

func TestPurgeCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should submit every path and return the classified report", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{"dark"}}
		purge := &doubles.SpyPurgeRepository{
			SubmittedJob: &entities.PurgeJob{ID: "job-1", Status: entities.PurgeStatusPending},
			Statuses: []*entities.PurgeJob{
				entitybuilders.NewPurgeJobBuilder().WithID("job-1").BuildPurgeJob(),
				entitybuilders.NewPurgeJobBuilder().
					WithID("job-1").
					WithStatus(entities.PurgeStatusFinished).
					WithPurgedPath("/gh/owner/themes@v1.0.0/dark/theme.css", "cdn1").
					WithThrottledPath("/gh/owner/themes/dark/theme.css").
					BuildPurgeJob(),
			},
		}
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		report, err := cmd.Execute(context.Background(), newSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"/repo"}, themes.DiscoveredRoots)
		assert.Equal(t, []string{"https://purge.example.com/"}, purge.FactoryEndpoints)
		require.Len(t, purge.SubmitRequests, 1)
		assert.Equal(t, []string{
			"/gh/owner/themes@v1.0.0/dark/theme.css",
			"/gh/owner/themes@latest/dark/theme.css",
			"/gh/owner/themes/dark/theme.css",
		}, purge.SubmitRequests[0].Paths)
		assert.Equal(t, 2, purge.StatusCallCount())
		assert.Equal(t, "job-1", report.JobID)
		assert.Len(t, report.Paths, 3)
		assert.Equal(t, []string{"/gh/owner/themes/dark/theme.css"}, report.ThrottledPaths)
		assert.Empty(t, report.FailedPaths)
	})

	t.Run("should fail without submitting when no theme is found", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{}}
		purge := &doubles.SpyPurgeRepository{}
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		report, err := cmd.Execute(context.Background(), newSettings())

		// then
		require.ErrorIs(t, err, entities.ErrNoThemes)
		assert.Nil(t, report)
		assert.Empty(t, purge.SubmitRequests)
	})

	t.Run("should stop when discovery fails", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{DiscoverErr: entities.ErrDiscovery}
		purge := &doubles.SpyPurgeRepository{}
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		_, err := cmd.Execute(context.Background(), newSettings())

		// then
		require.ErrorIs(t, err, entities.ErrDiscovery)
		assert.Empty(t, purge.FactoryEndpoints)
	})

	t.Run("should not poll when submission fails", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{"dark"}}
		purge := &doubles.SpyPurgeRepository{SubmitErr: entities.ErrResponseParse}
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		_, err := cmd.Execute(context.Background(), newSettings())

		// then
		require.ErrorIs(t, err, entities.ErrResponseParse)
		assert.Zero(t, purge.StatusCallCount())
	})

	t.Run("should return the report with an error when a provider failed", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{"dark"}}
		purge := &doubles.SpyPurgeRepository{
			Statuses: []*entities.PurgeJob{
				entitybuilders.NewPurgeJobBuilder().
					WithStatus(entities.PurgeStatusFinished).
					WithPathResult("/gh/owner/themes/dark/theme.css", entities.PathResult{
						Providers: map[string]bool{"fastly": false},
					}).
					BuildPurgeJob(),
			},
		}
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		report, err := cmd.Execute(context.Background(), newSettings())

		// then
		require.ErrorIs(t, err, entities.ErrPurgeResult)
		require.NotNil(t, report)
		assert.Equal(t, []string{"/gh/owner/themes/dark/theme.css (fastly)"}, report.FailedPaths)
	})

	t.Run("should time out after the configured attempts", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{"dark"}}
		purge := &doubles.SpyPurgeRepository{}
		settings := newSettings()
		settings.MaxAttempts = 5
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		_, err := cmd.Execute(context.Background(), settings)

		// then
		require.ErrorIs(t, err, entities.ErrPurgeTimeout)
		assert.Equal(t, 5, purge.StatusCallCount())
	})

	t.Run("should not contact the CDN in dry-run mode", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{"dark", "light"}}
		purge := &doubles.SpyPurgeRepository{}
		settings := newSettings()
		settings.DryRun = true
		cmd := commands.NewPurgeCommand(themes, purge.Factory())

		// when
		report, err := cmd.Execute(context.Background(), settings)

		// then
		require.NoError(t, err)
		assert.Len(t, report.Paths, 6)
		assert.Empty(t, purge.FactoryEndpoints)
		assert.Empty(t, purge.SubmitRequests)
	})
}

func TestPathsCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should return the paths of every discovered theme", func(t *testing.T) {
		t.Parallel()

		// given
		themes := &doubles.StubThemeRepository{Themes: entities.ThemeSet{"dark"}}
		cmd := commands.NewPathsCommand(themes)

		// when
		paths, err := cmd.Execute(newSettings())

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"/gh/owner/themes@v1.0.0/dark/theme.css",
			"/gh/owner/themes@latest/dark/theme.css",
			"/gh/owner/themes/dark/theme.css",
		}, paths)
	})

	t.Run("should fail when no theme is found", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewPathsCommand(&doubles.StubThemeRepository{})

		// when
		_, err := cmd.Execute(newSettings())

		// then
		require.ErrorIs(t, err, entities.ErrNoThemes)
	})
}
