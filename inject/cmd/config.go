package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the settings a run may take from a file.
// Flags given on the command line take precedence.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

func defaultConfig() Config {
	return Config{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// loadConfig reads a YAML config file over the defaults.
// Keys the file does not set keep their default value;
// unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	const errCtx = "loading config"

	cfg := defaultConfig()

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if err := yaml.UnmarshalWithOptions(
		content, &cfg, yaml.DisallowUnknownField(),
	); err != nil {
		return Config{}, fmt.Errorf(
			"%s: %s: %w", errCtx, path, err,
		)
	}

	return cfg, nil
}
