package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/shini4i/ccinput/internal/helpers"
	"github.com/shini4i/ccinput/internal/models"
)

const (
	envTempDir = "CCINPUT_TMPDIR"
	envEditor  = "CCINPUT_EDITOR"
)

// Config captures runtime parameters for a ccinput run.
type Config struct {
	TempDirBase string
	Editor      string
	Output      string
	Debug       bool
	Version     string
}

// ConfigOption mutates a Config during construction.
type ConfigOption func(*Config)

// NewConfig creates a Config with environment defaults and applies provided options.
func NewConfig(opts ...ConfigOption) (Config, error) {
	cfg := Config{
		TempDirBase: helpers.FirstEnv(os.TempDir(), envTempDir),
		Editor:      helpers.FirstEnv("", envEditor),
		Output:      models.OutputPath,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if !helpers.Contains(models.Outputs, cfg.Output) {
		return Config{}, fmt.Errorf("%w %q (expected one of: %s)", models.ErrUnsupportedOutput, cfg.Output, strings.Join(models.Outputs, ", "))
	}

	return cfg, nil
}

// WithTempDirBase overrides the root under which buffer directories are created.
func WithTempDirBase(path string) ConfigOption {
	return func(cfg *Config) {
		if path != "" {
			cfg.TempDirBase = path
		}
	}
}

// WithEditor overrides the editor command used by edit.
func WithEditor(editor string) ConfigOption {
	return func(cfg *Config) {
		if editor != "" {
			cfg.Editor = editor
		}
	}
}

// WithOutput selects how buffers are printed.
func WithOutput(format string) ConfigOption {
	return func(cfg *Config) {
		if format != "" {
			cfg.Output = strings.ToLower(strings.TrimSpace(format))
		}
	}
}

// WithDebug toggles verbose logging.
func WithDebug(enabled bool) ConfigOption {
	return func(cfg *Config) {
		cfg.Debug = enabled
	}
}

// WithVersion sets the application version used in log output.
func WithVersion(version string) ConfigOption {
	return func(cfg *Config) {
		cfg.Version = version
	}
}
