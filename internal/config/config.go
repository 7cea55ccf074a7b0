// Package config loads application and per-version configuration from
// YAML files with environment-variable overrides.
package config

import (
	"fmt"
	"slices"
)

// Config is the root application configuration.
type Config struct {
	Version       string    `yaml:"version"         env:"BIBLE_VERSION"   env-default:"niv"`
	Log           LogConfig `yaml:"log"`
	ConfigsDir    string    `yaml:"configs_dir"     env:"CONFIGS_DIR"     env-default:"configs"`
	SourceDataDir string    `yaml:"source_data_dir" env:"SOURCE_DATA_DIR" env-default:"source_data"`
	DataDir       string    `yaml:"data_dir"        env:"DATA_DIR"        env-default:"data"`
	OutputDir     string    `yaml:"output_dir"      env:"OUTPUT_DIR"      env-default:"output"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Version == "" {
		return fmt.Errorf("version must not be empty")
	}
	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}
	return nil
}
