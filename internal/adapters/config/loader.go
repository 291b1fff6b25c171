// Package config provides the settings loader for hop.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.trai.ch/hop/internal/core/domain"
	"go.trai.ch/hop/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath names a configuration file to use instead of hop.yaml.
	EnvConfigPath = "HOP_CONFIG"
	// EnvAPIKey overrides the API key of the configuration file.
	EnvAPIKey = "HOP_API_KEY"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	validate *validator.Validate
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Loader{Logger: logger, validate: v}
}

// Load reads hop.yaml from cwd, or the file named by HOP_CONFIG, and merges it
// over the defaults. HOP_API_KEY takes precedence over the file's key.
func (l *Loader) Load(cwd string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	configPath, explicit := l.configPath(cwd)
	hopfile, err := l.readHopfile(configPath)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		l.Logger.Debug("no " + domain.ConfigFileName + " found, using defaults")
	case err != nil:
		return domain.Settings{}, err
	default:
		if err := l.validate.Struct(hopfile); err != nil {
			return domain.Settings{}, invalidConfig(err, configPath)
		}
		merge(&settings, hopfile.API)
	}

	if key := os.Getenv(EnvAPIKey); key != "" {
		settings.APIKey = key
	}

	return settings, nil
}

func (l *Loader) configPath(cwd string) (string, bool) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		if !filepath.IsAbs(p) {
			p = filepath.Join(cwd, p)
		}
		return p, true
	}
	return filepath.Join(cwd, domain.ConfigFileName), false
}

// readHopfile keeps fs.ErrNotExist in the chain of the returned error.
func (l *Loader) readHopfile(configPath string) (*Hopfile, error) {
	// #nosec G304 -- configPath is the user's own configuration file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var hopfile Hopfile
	if err := yaml.Unmarshal(data, &hopfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return &hopfile, nil
}

func invalidConfig(err error, configPath string) error {
	invalid := zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "path", configPath)
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		invalid = zerr.With(invalid, "field", fieldErrs[0].Field())
	}
	return invalid
}

func merge(settings *domain.Settings, api APIConfig) {
	if api.BaseURL != "" {
		settings.APIBaseURL = api.BaseURL
	}
	if api.Key != "" {
		settings.APIKey = api.Key
	}
	if len(api.RouteTypes) > 0 {
		settings.RouteTypes = api.RouteTypes
	}
	if api.Timeout > 0 {
		settings.Timeout = api.Timeout
	}
	if api.Retries != nil {
		settings.Retries = *api.Retries
	}
	if api.Concurrency != nil {
		settings.Concurrency = *api.Concurrency
	}
}
