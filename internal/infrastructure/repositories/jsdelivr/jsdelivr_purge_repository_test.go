//go:build unit

package jsdelivr_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/infrastructure/repositories/jsdelivr"
)

func TestPurgeRepositorySubmit(t *testing.T) {
	t.Parallel()

	t.Run("should post the paths and return the created job", func(t *testing.T) {
		t.Parallel()

		// given
		var received map[string][]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/", r.URL.Path)
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write([]byte(`{"id":"job-1","status":"pending","timestamp":"2024-01-01T00:00:00Z"}`))
		}))
		defer server.Close()
		repo := jsdelivr.NewPurgeRepository(server.URL+"/", 5*time.Second)

		// when
		job, err := repo.Submit(context.Background(), entities.PurgeRequest{Paths: []string{"/a", "/b"}})

		// then
		require.NoError(t, err)
		assert.Equal(t, map[string][]string{"path": {"/a", "/b"}}, received)
		assert.Equal(t, "job-1", job.ID)
		assert.Equal(t, entities.PurgeStatusPending, job.Status)
		assert.False(t, job.IsTerminal())
	})

	t.Run("should reject a response without an id", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"pending"}`))
		}))
		defer server.Close()
		repo := jsdelivr.NewPurgeRepository(server.URL+"/", 5*time.Second)

		// when
		_, err := repo.Submit(context.Background(), entities.PurgeRequest{Paths: []string{"/a"}})

		// then
		require.ErrorIs(t, err, entities.ErrResponseParse)
	})

	t.Run("should reject an empty request without calling the service", func(t *testing.T) {
		t.Parallel()

		// given
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
			called = true
		}))
		defer server.Close()
		repo := jsdelivr.NewPurgeRepository(server.URL+"/", 5*time.Second)

		// when
		_, err := repo.Submit(context.Background(), entities.PurgeRequest{})

		// then
		require.ErrorIs(t, err, entities.ErrConfig)
		assert.False(t, called)
	})
}

func TestPurgeRepositoryStatus(t *testing.T) {
	t.Parallel()

	t.Run("should map the per-path results of a finished job", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/status/job-1", r.URL.Path)
			_, _ = w.Write([]byte(`{
				"id": "job-1",
				"status": "finished",
				"paths": {
					"/a": {"throttled": true, "providers": {}},
					"/b": {"throttled": false, "providers": {"cloudflare": true, "fastly": false}}
				}
			}`))
		}))
		defer server.Close()
		repo := jsdelivr.NewPurgeRepository(server.URL+"/", 5*time.Second)

		// when
		job, err := repo.Status(context.Background(), "job-1")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.PurgeStatusFinished, job.Status)
		assert.True(t, job.IsTerminal())
		assert.True(t, job.Paths["/a"].Throttled)
		assert.Equal(t, map[string]bool{"cloudflare": true, "fastly": false}, job.Paths["/b"].Providers)
	})

	t.Run("should keep unknown statuses verbatim", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"in-progress"}`))
		}))
		defer server.Close()
		repo := jsdelivr.NewPurgeRepository(server.URL, 5*time.Second)

		// when
		job, err := repo.Status(context.Background(), "job-2")

		// then
		require.NoError(t, err)
		assert.Equal(t, "job-2", job.ID)
		assert.Equal(t, entities.PurgeStatus("in-progress"), job.Status)
		assert.Nil(t, job.Paths)
	})

	t.Run("should fail with a parse error on a malformed body", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()
		repo := jsdelivr.NewPurgeRepository(server.URL+"/", 5*time.Second)

		// when
		_, err := repo.Status(context.Background(), "job-1")

		// then
		require.ErrorIs(t, err, entities.ErrResponseParse)
	})
}
