package jsdelivr

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
	"github.com/rios0rios0/cdnpurge/internal/domain/repositories"
	"github.com/rios0rios0/cdnpurge/internal/infrastructure/httpclient"
)

const userAgent = "cdnpurge"

type purgeRequestBody struct {
	Path []string `json:"path"`
}

type pathResultBody struct {
	Throttled bool            `json:"throttled"`
	Providers map[string]bool `json:"providers"`
}

type jobBody struct {
	ID     string                    `json:"id"`
	Status string                    `json:"status"`
	Paths  map[string]pathResultBody `json:"paths"`
}

// PurgeRepository talks to the jsDelivr purge API.
type PurgeRepository struct {
	client   *httpclient.Client
	endpoint string
}

// NewPurgeRepository creates a PurgeRepository against endpoint (e.g. https://purge.jsdelivr.net/).
func NewPurgeRepository(endpoint string, timeout time.Duration) repositories.PurgeRepository {
	return &PurgeRepository{
		client:   httpclient.NewClient(timeout, userAgent),
		endpoint: endpoint,
	}
}

// Submit posts the paths to purge and returns the created job.
func (it *PurgeRepository) Submit(
	ctx context.Context,
	request entities.PurgeRequest,
) (*entities.PurgeJob, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	var body jobBody
	if err := it.client.PostJSON(ctx, it.endpoint, purgeRequestBody{Path: request.Paths}, &body); err != nil {
		return nil, err
	}
	if body.ID == "" {
		return nil, fmt.Errorf("%w: purge response has no id", entities.ErrResponseParse)
	}

	return toEntity(body), nil
}

// Status fetches the current state of the job.
func (it *PurgeRepository) Status(ctx context.Context, jobID string) (*entities.PurgeJob, error) {
	statusURL, err := url.JoinPath(it.endpoint, "status", jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to build status URL: %w", err)
	}

	var body jobBody
	if err = it.client.GetJSON(ctx, statusURL, &body); err != nil {
		return nil, err
	}
	if body.ID == "" {
		body.ID = jobID
	}

	return toEntity(body), nil
}

func toEntity(body jobBody) *entities.PurgeJob {
	job := &entities.PurgeJob{
		ID:     body.ID,
		Status: entities.PurgeStatus(body.Status),
	}
	if body.Paths != nil {
		job.Paths = make(map[string]entities.PathResult, len(body.Paths))
		for path, result := range body.Paths {
			job.Paths[path] = entities.PathResult{
				Throttled: result.Throttled,
				Providers: result.Providers,
			}
		}
	}
	return job
}
