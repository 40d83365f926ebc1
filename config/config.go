package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Package config provides the runtime configuration for Shrink. Values come from
// built-in defaults and may be overridden through SHRINK_* environment variables.
// Nothing is ever written back.

// Config holds all runtime configuration.
type Config struct {
	DefaultSize   int    // Size shown in the size entry on startup
	OutputDirName string // Name of the output folder created inside the source folder
	Filter        string // Resample filter name, see resize.FilterByName
	JPEGQuality   int    // Quality used when a resized image is written as JPEG
	OpenOutput    bool   // Open the output folder in the file manager after a batch
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		DefaultSize:   DefaultSize,
		OutputDirName: DefaultOutputDirName,
		Filter:        DefaultFilter,
		JPEGQuality:   DefaultJPEGQuality,
		OpenOutput:    true,
	}
}

// Load returns the default configuration with environment overrides applied.
func Load() (*Config, error) {
	c := Default()

	if v, ok := lookup(EnvDefaultSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvDefaultSize, err)
		}
		c.DefaultSize = n
	}

	if v, ok := lookup(EnvOutputDirName); ok {
		c.OutputDirName = v
	}

	if v, ok := lookup(EnvFilter); ok {
		c.Filter = strings.ToLower(v)
	}

	if v, ok := lookup(EnvJPEGQuality); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvJPEGQuality, err)
		}
		c.JPEGQuality = n
	}

	if v, ok := lookup(EnvOpenOutput); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvOpenOutput, err)
		}
		c.OpenOutput = b
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration for values the application cannot work with.
func (c *Config) Validate() error {
	if c.DefaultSize <= 0 {
		return fmt.Errorf("default size must be positive, got %d", c.DefaultSize)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	if c.Filter == "" {
		return errors.New("filter must not be empty")
	}
	return validateDirName(c.OutputDirName)
}

// validateDirName makes sure the output folder is a direct child of the source folder.
func validateDirName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("invalid output directory name %q", name)
	case strings.ContainsAny(name, `/\`), filepath.Base(name) != name:
		return fmt.Errorf("output directory name %q must not contain path separators", name)
	}
	return nil
}

// lookup returns the trimmed value of an environment variable, ignoring blank values.
func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
