// Command pipeline runs the vocabulary extraction stages over a Bible
// corpus: raw word extraction, stopword filtering, proper-noun filtering,
// finalization and (optionally) example-sentence selection. It is an
// offline batch tool; each stage writes a step JSON file consumed by the
// next.
//
// Flags:
//
//	--phase           comma-separated list of phases to run (default: all)
//	--dry-run         compute all stages without writing files
//	--with-sentences  include the sentences phase in a default run
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zzoony/logos-app/internal/app"
	"github.com/zzoony/logos-app/internal/app/pipeline"
	"github.com/zzoony/logos-app/internal/config"
	"github.com/zzoony/logos-app/pkg/ctxutil"
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "compute all stages without writing files")
	withSentencesFlag := flag.Bool("with-sentences", false, "include the sentences phase")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting pipeline",
		slog.String("version", app.BuildVersion()),
		slog.String("bible_version", cfg.Version),
	)

	vc, err := cfg.LoadVersion(cfg.Version)
	if err != nil {
		logger.Error("load version config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, ctxutil.NewRunID())

	p := pipeline.New(logger, cfg, vc, pipeline.Options{
		DryRun:        *dryRunFlag,
		WithSentences: *withSentencesFlag,
	})
	if err := p.Run(ctx, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
