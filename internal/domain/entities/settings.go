package entities

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultRootDir      = "."
	DefaultEndpoint     = "https://purge.jsdelivr.net/"
	DefaultPollInterval = time.Second
	DefaultMaxAttempts  = 60
	DefaultHTTPTimeout  = 30 * time.Second
)

// Settings is the configuration of a single purge run. It is built once at startup
// and never modified afterwards.
type Settings struct {
	Repository   string        `yaml:"repository"    envconfig:"GITHUB_REPOSITORY"`
	Ref          string        `yaml:"ref"           envconfig:"GITHUB_REF_NAME"`
	RootDir      string        `yaml:"root_dir"      envconfig:"CDNPURGE_ROOT_DIR"`
	Endpoint     string        `yaml:"endpoint"      envconfig:"CDNPURGE_ENDPOINT"`
	PollInterval time.Duration `yaml:"poll_interval" envconfig:"CDNPURGE_POLL_INTERVAL"`
	MaxAttempts  int           `yaml:"max_attempts"  envconfig:"CDNPURGE_MAX_ATTEMPTS"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"  envconfig:"CDNPURGE_HTTP_TIMEOUT"`
	DryRun       bool          `yaml:"dry_run"       envconfig:"CDNPURGE_DRY_RUN"`
	Verbose      bool          `yaml:"verbose"       envconfig:"CDNPURGE_VERBOSE"`
}

// ApplyDefaults fills every unset optional field with its default value.
func (it *Settings) ApplyDefaults() {
	if it.RootDir == "" {
		it.RootDir = DefaultRootDir
	}
	if it.Endpoint == "" {
		it.Endpoint = DefaultEndpoint
	}
	if it.PollInterval == 0 {
		it.PollInterval = DefaultPollInterval
	}
	if it.MaxAttempts == 0 {
		it.MaxAttempts = DefaultMaxAttempts
	}
	if it.HTTPTimeout == 0 {
		it.HTTPTimeout = DefaultHTTPTimeout
	}
}

// Validate checks every field and reports all problems at once.
func (it *Settings) Validate() error {
	return joinConfigErrors(append(it.targetErrors(), it.transportErrors()...))
}

// ValidateTransport checks only the fields needed to talk to the purge service.
func (it *Settings) ValidateTransport() error {
	return joinConfigErrors(it.transportErrors())
}

func (it *Settings) targetErrors() []error {
	var errs []error
	if strings.TrimSpace(it.Repository) == "" {
		errs = append(errs, errors.New("repository is required (GITHUB_REPOSITORY)"))
	} else if !strings.Contains(it.Repository, "/") {
		errs = append(errs, fmt.Errorf("repository %q must have the form owner/name", it.Repository))
	}
	if strings.TrimSpace(it.Ref) == "" {
		errs = append(errs, errors.New("ref is required (GITHUB_REF_NAME)"))
	}
	if it.RootDir == "" {
		errs = append(errs, errors.New("root directory is required"))
	}
	return errs
}

func (it *Settings) transportErrors() []error {
	var errs []error
	if u, err := url.Parse(it.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("endpoint %q must be an absolute URL", it.Endpoint))
	}
	if it.PollInterval < 0 {
		errs = append(errs, fmt.Errorf("poll interval must not be negative, got %s", it.PollInterval))
	}
	if it.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("max attempts must be positive, got %d", it.MaxAttempts))
	}
	if it.HTTPTimeout <= 0 {
		errs = append(errs, fmt.Errorf("http timeout must be positive, got %s", it.HTTPTimeout))
	}
	return errs
}

func joinConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrConfig, errors.Join(errs...))
}
