package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches to dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Version != "niv" {
		t.Errorf("Version = %q, want niv", cfg.Version)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want info/json", cfg.Log)
	}
	if cfg.DataDir != "data" || cfg.OutputDir != "output" {
		t.Errorf("dirs = %q/%q, want data/output", cfg.DataDir, cfg.OutputDir)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BIBLE_VERSION", "kjv")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Version != "kjv" {
		t.Errorf("Version = %q, want kjv", cfg.Version)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_ExplicitMissingPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("Load() with missing explicit CONFIG_PATH succeeded, want error")
	}
}

func TestLoad_InvalidLevel(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LOG_LEVEL", "loud")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "log.level") {
		t.Fatalf("Load() error = %v, want log.level validation failure", err)
	}
}

func TestLoadVersion_FileAndDefaults(t *testing.T) {
	dir := t.TempDir()
	configs := filepath.Join(dir, "configs")
	if err := os.MkdirAll(configs, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "name: niv\nsource_file: NIV_Bible.json\nmin_word_length: 3\n"
	if err := os.WriteFile(filepath.Join(configs, "niv.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := &Config{Version: "niv", ConfigsDir: configs, DataDir: filepath.Join(dir, "data")}

	vc, err := cfg.LoadVersion("niv")
	if err != nil {
		t.Fatalf("LoadVersion error: %v", err)
	}
	if vc.SourceFile != "NIV_Bible.json" {
		t.Errorf("SourceFile = %q, want NIV_Bible.json", vc.SourceFile)
	}
	if vc.MinWordLength != 3 {
		t.Errorf("MinWordLength = %d, want 3 (from file)", vc.MinWordLength)
	}
	if vc.MinFrequency != 1 {
		t.Errorf("MinFrequency = %d, want default 1", vc.MinFrequency)
	}
	if vc.Language != "en" {
		t.Errorf("Language = %q, want default en", vc.Language)
	}
	if vc.StopwordsFile != "stopwords.txt" {
		t.Errorf("StopwordsFile = %q, want default", vc.StopwordsFile)
	}
	if want := filepath.Join(dir, "data", "niv"); vc.DataDir != want {
		t.Errorf("DataDir = %q, want %q", vc.DataDir, want)
	}
}

func TestLoadVersion_MissingFileUsesConventions(t *testing.T) {
	cfg := &Config{Version: "web", ConfigsDir: t.TempDir(), DataDir: "data"}

	vc, err := cfg.LoadVersion("web")
	if err != nil {
		t.Fatalf("LoadVersion error: %v", err)
	}
	if vc.Name != "web" {
		t.Errorf("Name = %q, want web", vc.Name)
	}
	if vc.SourceFile != "web_Bible.json" {
		t.Errorf("SourceFile = %q, want web_Bible.json", vc.SourceFile)
	}
}

func TestPaths(t *testing.T) {
	cfg := &Config{SourceDataDir: "source_data", DataDir: "data", OutputDir: "output"}
	vc := &VersionConfig{
		Name:               "niv",
		DataDir:            "data/niv",
		SourceFile:         "NIV_Bible.json",
		StopwordsFile:      "stopwords.txt",
		ProtectedWordsFile: "protected_words.txt",
		ProperNounsFile:    "proper_nouns.txt",
	}

	p := cfg.Paths(vc)

	want := map[string]string{
		"Source":          filepath.Join("source_data", "NIV_Bible.json"),
		"Stopwords":       filepath.Join("data", "niv", "stopwords.txt"),
		"Step1RawWords":   filepath.Join("output", "niv", "step1_raw_words.json"),
		"Step4Vocabulary": filepath.Join("output", "niv", "step4_vocabulary.json"),
		"FinalVocabulary": filepath.Join("output", "niv", "final_vocabulary_niv.json"),
		"FinalSentences":  filepath.Join("output", "niv", "final_sentences_niv.json"),
	}
	got := map[string]string{
		"Source":          p.Source,
		"Stopwords":       p.Stopwords,
		"Step1RawWords":   p.Step1RawWords,
		"Step4Vocabulary": p.Step4Vocabulary,
		"FinalVocabulary": p.FinalVocabulary,
		"FinalSentences":  p.FinalSentences,
	}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("%s = %q, want %q", k, got[k], w)
		}
	}
}
