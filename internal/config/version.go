package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// VersionConfig describes one Bible version: where its corpus and word
// lists live and the thresholds applied when finalizing its vocabulary.
type VersionConfig struct {
	Name               string `yaml:"name"`
	Language           string `yaml:"language"             env-default:"en"`
	DataDir            string `yaml:"data_dir"`
	SourceFile         string `yaml:"source_file"`
	StopwordsFile      string `yaml:"stopwords_file"       env-default:"stopwords.txt"`
	ProtectedWordsFile string `yaml:"protected_words_file" env-default:"protected_words.txt"`
	ProperNounsFile    string `yaml:"proper_nouns_file"    env-default:"proper_nouns.txt"`
	MinWordLength      int    `yaml:"min_word_length"      env-default:"2"`
	MinFrequency       int    `yaml:"min_frequency"        env-default:"1"`
}

// LoadVersion reads configs/<version>.yaml relative to c.ConfigsDir.
// A missing file is not an error: every field falls back to its
// file-name convention, so a version works with zero configuration.
func (c *Config) LoadVersion(version string) (*VersionConfig, error) {
	var vc VersionConfig

	path := filepath.Join(c.ConfigsDir, version+".yaml")
	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &vc); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(&vc); err != nil {
			return nil, fmt.Errorf("config: version defaults: %w", err)
		}
	}

	vc.applyDefaults(c, version)

	if err := vc.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate %s: %w", version, err)
	}
	return &vc, nil
}

func (vc *VersionConfig) applyDefaults(c *Config, version string) {
	if vc.Name == "" {
		vc.Name = version
	}
	if vc.DataDir == "" {
		vc.DataDir = filepath.Join(c.DataDir, version)
	}
	if vc.SourceFile == "" {
		vc.SourceFile = version + "_Bible.json"
	}
}

// Validate checks the thresholds of a loaded version configuration.
func (vc *VersionConfig) Validate() error {
	if vc.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be >= 1 (got %d)", vc.MinWordLength)
	}
	if vc.MinFrequency < 1 {
		return fmt.Errorf("min_frequency must be >= 1 (got %d)", vc.MinFrequency)
	}
	if vc.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	return nil
}
