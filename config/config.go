package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"

	"github.com/kelseyhightower/envconfig"
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/cdnpurge/internal/domain/entities"
)

// Options carries the command-line overrides applied on top of the file and environment.
type Options struct {
	Path       string // explicit config file, auto-detected when empty
	Repository string
	Ref        string
	RootDir    string
	DryRun     bool
	Verbose    bool

	// TransportOnly skips the repository and ref checks, for commands that only query a job.
	TransportOnly bool
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// Loader reads the run settings, looking for config files on fs.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader reading config files from fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// Load builds the run settings from, in increasing precedence: the config file, the
// environment and the command-line options. Unset optional fields get their defaults and
// the result is validated as a whole.
func (it *Loader) Load(opts Options) (*entities.Settings, error) {
	settings := &entities.Settings{}

	path := opts.Path
	if path == "" {
		if found, err := it.FindConfigFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		logger.Infof("Using config file: %s", path)
		if err := it.loadFile(path, settings); err != nil {
			return nil, err
		}
	}

	if err := unsetEmptyEnv(settings); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrConfig, err)
	}
	if err := envconfig.Process("", settings); err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrConfig, err)
	}

	applyOptions(settings, opts)
	settings.ApplyDefaults()

	validate := settings.Validate
	if opts.TransportOnly {
		validate = settings.ValidateTransport
	}
	if err := validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func (it *Loader) FindConfigFile() (string, error) {
	locations := []string{
		".",
		".config",
		".github",
	}

	patterns := []string{
		".cdnpurge.yaml",
		".cdnpurge.yml",
		"cdnpurge.yaml",
		"cdnpurge.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if exists, _ := afero.Exists(it.fs, p); exists {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func (it *Loader) loadFile(path string, settings *entities.Settings) error {
	data, err := afero.ReadFile(it.fs, path)
	if err != nil {
		return fmt.Errorf("%w: failed to read config file %q: %w", entities.ErrConfig, path, err)
	}

	if unmarshalErr := yaml.Unmarshal([]byte(expandEnv(string(data))), settings); unmarshalErr != nil {
		return fmt.Errorf("%w: failed to parse config file: %w", entities.ErrConfig, unmarshalErr)
	}
	return nil
}

// unsetEmptyEnv drops the settings variables that are set to a blank value, so that
// CI expressions expanding to "" fall back to the config file or the defaults.
func unsetEmptyEnv(settings *entities.Settings) error {
	fields := reflect.TypeOf(*settings)
	for i := 0; i < fields.NumField(); i++ {
		key := fields.Field(i).Tag.Get("envconfig")
		if key == "" {
			continue
		}
		if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) == "" {
			if err := os.Unsetenv(key); err != nil {
				return fmt.Errorf("failed to unset empty %s: %w", key, err)
			}
		}
	}
	return nil
}

// expandEnv replaces ${ENV_VAR} references with their values, warning about unset ones.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func applyOptions(settings *entities.Settings, opts Options) {
	if opts.Repository != "" {
		settings.Repository = opts.Repository
	}
	if opts.Ref != "" {
		settings.Ref = opts.Ref
	}
	if opts.RootDir != "" {
		settings.RootDir = opts.RootDir
	}
	if opts.DryRun {
		settings.DryRun = true
	}
	if opts.Verbose {
		settings.Verbose = true
	}
}
