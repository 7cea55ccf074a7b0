package enricher

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds enrichment settings.
type Config struct {
	BatchSize      int           `yaml:"batch_size"      env:"ENRICH_BATCH_SIZE"      env-default:"50"`
	MaxWorkers     int           `yaml:"max_workers"     env:"ENRICH_MAX_WORKERS"     env-default:"5"`
	LLMModel       string        `yaml:"llm_model"       env:"ENRICH_LLM_MODEL"       env-default:"claude-sonnet-4-5"`
	LLMAPIKey      string        `yaml:"llm_api_key"     env:"ANTHROPIC_API_KEY"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"ENRICH_REQUEST_TIMEOUT" env-default:"120s"`
	MaxTokens      int           `yaml:"max_tokens"      env:"ENRICH_MAX_TOKENS"      env-default:"4096"`
}

// LoadConfig reads enrichment config from YAML or environment variables.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("enrich config: %w", err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("enrich config: file %s not found", path)
	}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("enrich config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings that would make every batch fail.
func (c *Config) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size must be >= 1 (got %d)", c.BatchSize)
	}
	if c.MaxWorkers < 1 {
		return fmt.Errorf("max_workers must be >= 1 (got %d)", c.MaxWorkers)
	}
	if c.LLMAPIKey == "" {
		return fmt.Errorf("llm_api_key must be set (ANTHROPIC_API_KEY)")
	}
	return nil
}
