// Package config loads the optional leetcli settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the settings file looked up in the working directory.
const DefaultPath = ".leetcli.yaml"

// Config holds CLI defaults. Command-line flags take precedence.
type Config struct {
	// Color enables coloured PASS/FAIL output.
	Color bool `yaml:"color"`
	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
	// TestsFile is the case table name used when --tests names a directory.
	TestsFile string `yaml:"tests_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Color:     true,
		TestsFile: "tests.csv",
	}
}

// Load reads path over the defaults. A missing file at DefaultPath is not
// an error; a missing file anywhere else is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.TestsFile == "" {
		cfg.TestsFile = Default().TestsFile
	}
	return cfg, nil
}
