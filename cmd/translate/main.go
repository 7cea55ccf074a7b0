// Command translate attaches Korean verse texts to the selected example
// sentences by resolving each sentence's reference against a Korean
// corpus. Sentences whose reference cannot be resolved keep an empty
// korean field.
//
// Flags:
//
//	--korean  path to the Korean corpus JSON (default:
//	          <source_data_dir>/korean_Bible.json)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/zzoony/logos-app/internal/app"
	"github.com/zzoony/logos-app/internal/app/enricher"
	"github.com/zzoony/logos-app/internal/config"
	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
	"github.com/zzoony/logos-app/pkg/jsonio"
)

func main() {
	koreanFlag := flag.String("korean", "", "path to the Korean corpus JSON")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	vc, err := cfg.LoadVersion(cfg.Version)
	if err != nil {
		logger.Error("load version config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	paths := cfg.Paths(vc)

	koreanPath := *koreanFlag
	if koreanPath == "" {
		koreanPath = filepath.Join(cfg.SourceDataDir, "korean_Bible.json")
	}

	korean, err := corpus.Load(koreanPath)
	if err != nil {
		logger.Error("load korean corpus", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("korean corpus loaded",
		slog.String("path", koreanPath),
		slog.Int("verses", korean.Len()),
	)

	var sents domain.SentencesFile
	if err := jsonio.Read(paths.Step5Sentences, &sents); err != nil {
		logger.Error("load sentences", slog.String("error", err.Error()))
		os.Exit(1)
	}

	translated, stats := enricher.NewTranslator(logger, korean).Translate(sents.Sentences)
	logger.Info("translation finished",
		slog.Int("translated", stats.Translated),
		slog.Int("unresolved", stats.Unresolved),
	)

	meta := sents.Metadata
	meta.KoreanTranslationsAdded = true
	meta.TranslationsCount = stats.Translated
	meta.TranslationSource = filepath.Base(koreanPath)
	meta.ProcessingDate = time.Now().Format("2006-01-02")

	out := domain.TranslatedSentencesFile{Metadata: meta, Sentences: translated}
	if err := jsonio.Write(paths.FinalSentences, out); err != nil {
		logger.Error("write final sentences", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("final sentences written", slog.String("path", paths.FinalSentences))
}
