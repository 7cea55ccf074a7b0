// Command enrich adds LLM-generated definitions to the extracted
// vocabulary: IPA pronunciation, Korean pronunciation and a Korean
// definition per word. Words are sent in batches over a bounded worker
// pool; words that fail after one retry round are written to
// failed_words.json.
//
// Flags:
//
//	--enrich-config  path to enrich YAML config (default: env only)
//	--test N         enrich only the first N words, writing a _test output
//	--retry          re-enrich only words with an empty definition in the
//	                 existing final vocabulary
//	--progress       render a batch progress bar
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gosuri/uiprogress"

	"github.com/zzoony/logos-app/internal/app"
	"github.com/zzoony/logos-app/internal/app/enricher"
	"github.com/zzoony/logos-app/internal/config"
	"github.com/zzoony/logos-app/internal/domain"
	"github.com/zzoony/logos-app/pkg/jsonio"
)

func main() {
	enrichConfigFlag := flag.String("enrich-config", "", "path to enrich YAML config")
	testFlag := flag.Int("test", 0, "enrich only the first N words")
	retryFlag := flag.Bool("retry", false, "re-enrich words with empty definitions")
	progressFlag := flag.Bool("progress", false, "render a batch progress bar")
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

	ecfg, err := enricher.LoadConfig(*enrichConfigFlag)
	if err != nil {
		logger.Error("load enrich config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := ecfg.Validate(); err != nil {
		logger.Error("invalid enrich config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	e := enricher.New(logger, enricher.NewAnthropicClient(ecfg), ecfg)

	if *retryFlag {
		if err := runRetry(ctx, logger, e, paths); err != nil {
			logger.Error("retry enrichment failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	if err := run(ctx, logger, e, ecfg, paths, *testFlag, *progressFlag); err != nil {
		logger.Error("enrichment failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run enriches the full (or first N) vocabulary and writes the final file.
func run(ctx context.Context, logger *slog.Logger, e *enricher.Enricher, ecfg *enricher.Config,
	paths config.Paths, testN int, progress bool) error {

	words, meta, err := loadVocabulary(paths)
	if err != nil {
		return err
	}

	outPath := paths.FinalVocabulary
	if testN > 0 && testN < len(words) {
		words = words[:testN]
		outPath = strings.TrimSuffix(outPath, ".json") + "_test.json"
		logger.Info("test mode", slog.Int("words", testN))
	}

	names := make([]string, len(words))
	for i, w := range words {
		names[i] = w.Word
	}

	if progress {
		totalBatches := (len(names) + ecfg.BatchSize - 1) / ecfg.BatchSize
		uiprogress.Start()
		bar := uiprogress.AddBar(totalBatches).AppendCompleted().PrependElapsed()
		e.OnBatch = func(done, total int) {
			if done <= totalBatches {
				bar.Set(done)
			}
		}
		defer uiprogress.Stop()
	}

	res := e.EnrichWords(ctx, names)
	logger.Info("enrichment finished",
		slog.Int("defined", len(res.Defined)),
		slog.Int("failed", len(res.Failed)),
	)

	meta.Step = "final_with_definitions"
	meta.DefinitionsAdded = true
	meta.DefinitionsCount = len(res.Defined)
	meta.HasID = true
	meta.ProcessingDate = time.Now().Format("2006-01-02")

	out := domain.FinalVocabularyFile{
		Metadata: meta,
		Words:    enricher.Merge(words, res.Defined),
	}
	if err := jsonio.Write(outPath, out); err != nil {
		return err
	}
	logger.Info("final vocabulary written", slog.String("path", outPath))

	return writeFailed(logger, paths, res.Failed)
}

// runRetry re-enriches only the words whose definition is still empty in
// the existing final vocabulary, updating the file in place.
func runRetry(ctx context.Context, logger *slog.Logger, e *enricher.Enricher, paths config.Paths) error {
	var final domain.FinalVocabularyFile
	if err := jsonio.Read(paths.FinalVocabulary, &final); err != nil {
		return fmt.Errorf("retry needs an existing final vocabulary: %w", err)
	}

	var names []string
	for _, w := range final.Words {
		if w.DefinitionKorean == "" {
			names = append(names, w.Word)
		}
	}
	if len(names) == 0 {
		logger.Info("nothing to retry: every word has a definition")
		return nil
	}
	logger.Info("retrying undefined words", slog.Int("count", len(names)))

	res := e.EnrichWords(ctx, names)

	for i, w := range final.Words {
		if d, ok := res.Defined[w.Word]; ok && w.DefinitionKorean == "" {
			final.Words[i].IPAPronunciation = d.IPAPronunciation
			final.Words[i].KoreanPronunciation = d.KoreanPronunciation
			final.Words[i].DefinitionKorean = d.DefinitionKorean
		}
	}
	final.Metadata.DefinitionsCount += len(res.Defined)
	final.Metadata.ProcessingDate = time.Now().Format("2006-01-02")

	if err := jsonio.Write(paths.FinalVocabulary, final); err != nil {
		return err
	}
	logger.Info("final vocabulary updated",
		slog.Int("recovered", len(res.Defined)),
		slog.Int("still_failed", len(res.Failed)),
	)

	return writeFailed(logger, paths, res.Failed)
}

// loadVocabulary reads the step-5 vocabulary, falling back to step 4
// (with empty sentence id lists) when sentences were never extracted.
func loadVocabulary(paths config.Paths) ([]domain.SentencedWord, domain.Metadata, error) {
	if jsonio.Exists(paths.Step5Vocabulary) {
		var f domain.VocabularyFile
		if err := jsonio.Read(paths.Step5Vocabulary, &f); err != nil {
			return nil, domain.Metadata{}, err
		}
		return f.Words, f.Metadata, nil
	}

	var f domain.WordListFile
	if err := jsonio.Read(paths.Step4Vocabulary, &f); err != nil {
		return nil, domain.Metadata{}, err
	}
	words := make([]domain.SentencedWord, len(f.Words))
	for i, w := range f.Words {
		words[i] = domain.SentencedWord{Word: w.Word, Count: w.Count, Rank: w.Rank, SentenceIDs: []string{}}
	}
	return words, f.Metadata, nil
}

func writeFailed(logger *slog.Logger, paths config.Paths, failed []string) error {
	if len(failed) == 0 {
		return nil
	}
	f := domain.FailedWordsFile{FailedWords: failed, Count: len(failed)}
	if err := jsonio.Write(paths.FailedWords, f); err != nil {
		return err
	}
	logger.Warn("failed words written",
		slog.String("path", paths.FailedWords),
		slog.Int("count", len(failed)),
	)
	return nil
}
