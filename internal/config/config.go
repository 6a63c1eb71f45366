// Package config provides configuration loading for omplot.
// It supports loading from a YAML file and environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ukaji3/omplot-go/pkg/omplot"
	"github.com/ukaji3/omplot-go/pkg/omplot/render"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file read from the working directory when present.
const DefaultFile = "omplot.yaml"

// Config contains all omplot settings.
type Config struct {
	// Input is the result file to read.
	Input string `yaml:"input"`

	// OutputDir is the directory charts are written to.
	OutputDir string `yaml:"output_dir"`

	// Render contains chart rendering settings.
	Render RenderConfig `yaml:"render"`

	// Logging contains logger settings.
	Logging LoggingConfig `yaml:"logging"`
}

// RenderConfig configures chart rendering.
type RenderConfig struct {
	// Backend is "gonum" (default) or "gochart".
	Backend string `yaml:"backend"`

	// DPI is the output resolution.
	DPI int `yaml:"dpi"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is "debug", "info" (default), "warn" or "error".
	Level string `yaml:"level"`
}

// Default returns a Config with the built-in report locations.
func Default() *Config {
	return &Config{
		Input:     omplot.DefaultInputPath,
		OutputDir: omplot.DefaultOutputDir,
		Render: RenderConfig{
			Backend: string(render.BackendGonum),
			DPI:     render.DefaultStyle().DPI,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load returns the configuration from path, or from DefaultFile when path is
// empty and that file exists, with environment overrides applied.
// Order: defaults -> config file -> environment variables.
func Load(path string) (*Config, error) {
	config := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file. Fields the file
// leaves out keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("input must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if _, err := render.ParseBackend(c.Render.Backend); err != nil {
		return err
	}
	if c.Render.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %d", c.Render.DPI)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error, or empty for default)", c.Logging.Level)
	}
	return nil
}

// Options converts the configuration to library options.
func (c *Config) Options() (omplot.Options, error) {
	opts := omplot.DefaultOptions()
	backend, err := render.ParseBackend(c.Render.Backend)
	if err != nil {
		return opts, err
	}
	opts.OutputDir = c.OutputDir
	opts.Backend = backend
	opts.Style.DPI = c.Render.DPI
	return opts, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("OMPLOT_INPUT"); v != "" {
		config.Input = v
	}
	if v := os.Getenv("OMPLOT_OUTPUT_DIR"); v != "" {
		config.OutputDir = v
	}
	if v := os.Getenv("OMPLOT_BACKEND"); v != "" {
		config.Render.Backend = v
	}
	if v := os.Getenv("OMPLOT_DPI"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Render.DPI = n
		}
	}
	if v := os.Getenv("OMPLOT_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
}
