package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/omplot-go/pkg/omplot"
	"github.com/ukaji3/omplot-go/pkg/omplot/render"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Input != omplot.DefaultInputPath {
		t.Errorf("Input = %q, expected %q", c.Input, omplot.DefaultInputPath)
	}
	if c.OutputDir != omplot.DefaultOutputDir {
		t.Errorf("OutputDir = %q, expected %q", c.OutputDir, omplot.DefaultOutputDir)
	}
	if c.Render.DPI != 300 {
		t.Errorf("DPI = %d, expected 300", c.Render.DPI)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omplot.yaml")
	content := "input: run/res.mat\nrender:\n  backend: gochart\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if c.Input != "run/res.mat" {
		t.Errorf("Input = %q", c.Input)
	}
	if c.Render.Backend != "gochart" {
		t.Errorf("Backend = %q", c.Render.Backend)
	}
	// Unset fields keep their defaults.
	if c.Render.DPI != 300 || c.OutputDir != omplot.DefaultOutputDir {
		t.Errorf("defaults lost: dpi=%d output=%q", c.Render.DPI, c.OutputDir)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("render: [unclosed"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Errorf("expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OMPLOT_INPUT", "env.mat")
	t.Setenv("OMPLOT_OUTPUT_DIR", "env-plots")
	t.Setenv("OMPLOT_BACKEND", "gochart")
	t.Setenv("OMPLOT_DPI", "150")
	t.Setenv("OMPLOT_LOG_LEVEL", "debug")

	c, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	if err == nil {
		t.Fatalf("expected error for explicit missing config file, got %+v", c)
	}

	c, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Input != "env.mat" || c.OutputDir != "env-plots" {
		t.Errorf("paths not overridden: %q %q", c.Input, c.OutputDir)
	}
	if c.Render.Backend != "gochart" || c.Render.DPI != 150 || c.Logging.Level != "debug" {
		t.Errorf("render/logging not overridden: %+v %+v", c.Render, c.Logging)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"empty output", func(c *Config) { c.OutputDir = "" }},
		{"bad backend", func(c *Config) { c.Render.Backend = "svg" }},
		{"zero dpi", func(c *Config) { c.Render.DPI = 0 }},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }},
	}
	for _, tt := range tests {
		c := Default()
		tt.mutate(c)
		if err := c.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestOptions(t *testing.T) {
	c := Default()
	c.OutputDir = "out"
	c.Render.Backend = "gochart"
	c.Render.DPI = 96

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.OutputDir != "out" || opts.Backend != render.BackendGoChart || opts.Style.DPI != 96 {
		t.Errorf("Options = %+v", opts)
	}
}
