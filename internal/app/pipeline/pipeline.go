// Package pipeline orchestrates the vocabulary extraction stages: raw
// word extraction, stopword and proper-noun filtering, finalization and
// example-sentence selection. Stages hand off through step JSON files so
// any stage can be re-run in isolation.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/zzoony/logos-app/internal/config"
	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
	"github.com/zzoony/logos-app/internal/morph"
	"github.com/zzoony/logos-app/internal/sentences"
	"github.com/zzoony/logos-app/internal/vocab"
	"github.com/zzoony/logos-app/pkg/ctxutil"
	"github.com/zzoony/logos-app/pkg/jsonio"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"extract", "stopwords", "propernouns", "finalize", "sentences"}

// Options tune a single pipeline run.
type Options struct {
	// DryRun computes every stage but writes no files.
	DryRun bool
	// WithSentences enables the sentences phase in a default run.
	WithSentences bool
	// Sentences overrides the selection bounds; zero value means defaults.
	Sentences sentences.Config
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	WordsIn  int
	WordsOut int
	Removed  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the extraction stages for one Bible version.
type Pipeline struct {
	log     *slog.Logger
	cfg     *config.Config
	vc      *config.VersionConfig
	paths   config.Paths
	opts    Options
	results map[string]PhaseResult

	// In-memory handoff between phases in the same run. When a phase
	// runs in isolation these stay nil and the step file is read instead.
	words []domain.Word
	meta  domain.Metadata

	corpus *corpus.Corpus
	engine *morph.Engine
}

// New creates a Pipeline for the given version.
func New(log *slog.Logger, cfg *config.Config, vc *config.VersionConfig, opts Options) *Pipeline {
	if opts.Sentences == (sentences.Config{}) {
		opts.Sentences = sentences.DefaultConfig()
	}
	return &Pipeline{
		log:     log,
		cfg:     cfg,
		vc:      vc,
		paths:   cfg.Paths(vc),
		opts:    opts,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run executes the pipeline. If phases is non-empty, only the listed
// phases run (in canonical order); otherwise every phase runs, with
// sentences included only when Options.WithSentences is set. A phase
// error stops the run, since stages feed each other.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := p.phasesToRun(phases)
	if err != nil {
		return err
	}

	p.log.Info("starting pipeline",
		slog.String("version", p.vc.Name),
		slog.String("run_id", ctxutil.RunIDFromCtx(ctx)),
		slog.Bool("dry_run", p.opts.DryRun),
		slog.Int("phases", len(toRun)),
	)

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "extract":
			result = p.runExtract(ctx)
		case "stopwords":
			result = p.runStopwords()
		case "propernouns":
			result = p.runProperNouns()
		case "finalize":
			result = p.runFinalize()
		case "sentences":
			result = p.runSentences()
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}

		p.log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("words_in", result.WordsIn),
			slog.Int("words_out", result.WordsOut),
			slog.Int("removed", result.Removed),
			slog.Duration("duration", result.Duration),
		)
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) phasesToRun(phases []string) ([]string, error) {
	if len(phases) == 0 {
		if p.opts.WithSentences {
			return allPhases, nil
		}
		return allPhases[:len(allPhases)-1], nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		filter[ph] = true
	}
	for ph := range filter {
		known := false
		for _, k := range allPhases {
			if ph == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown phase %q (valid: %v)", ph, allPhases)
		}
	}

	var toRun []string
	for _, ph := range allPhases {
		if filter[ph] {
			toRun = append(toRun, ph)
		}
	}
	return toRun, nil
}

// ensureCorpus loads the corpus and builds the morphology engine once.
// The lemmatizer's lexicon is the corpus's own surface-token set.
func (p *Pipeline) ensureCorpus() (*corpus.Corpus, *morph.Engine, error) {
	if p.corpus != nil {
		return p.corpus, p.engine, nil
	}

	c, err := corpus.Load(p.paths.Source)
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}
	lexicon := vocab.BuildLexicon(c)

	p.corpus = c
	p.engine = morph.NewEngine(morph.LemmatizerFor(p.vc.Language, func(w string) bool {
		return lexicon[w]
	}))

	p.log.Info("corpus loaded",
		slog.String("source", p.paths.Source),
		slog.Int("verses", c.Len()),
		slog.Int("books", len(p.corpus.Books)),
	)
	return p.corpus, p.engine, nil
}

/// stepInput returns the word list feeding a phase: the previous phase's
// in-memory output when it ran in this process, the step file otherwise.
// A missing step file wraps domain.ErrNotFound; the earlier phases have
// not produced it yet.
func (p *Pipeline) stepInput(path string) ([]domain.Word, domain.Metadata, error) {
	if p.words != nil {
		return p.words, p.meta, nil
	}
	var f domain.WordListFile
	if err := jsonio.Read(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.Metadata{}, fmt.Errorf("%w: step file %s", domain.ErrNotFound, path)
		}
		return nil, domain.Metadata{}, err
	}
	return f.Words, f.Metadata, nil
}

// stepOutput caches a phase's output for the next phase and writes the
// step file unless this is a dry run.
func (p *Pipeline) stepOutput(path string, meta domain.Metadata, words []domain.Word) error {
	p.words = words
	p.meta = meta
	if p.opts.DryRun {
		return nil
	}
	return jsonio.Write(path, domain.WordListFile{Metadata: meta, Words: words})
}

func (p *Pipeline) runExtract(ctx context.Context) PhaseResult {
	c, eng, err := p.ensureCorpus()
	if err != nil {
		return PhaseResult{Err: err}
	}

	res := vocab.Count(c, eng)

	meta := domain.Metadata{
		Step:             "raw_extraction",
		Source:           p.vc.SourceFile,
		RunID:            ctxutil.RunIDFromCtx(ctx),
		ExtractionDate:   time.Now().Format("2006-01-02"),
		TotalUniqueWords: len(res.Words),
		TotalOccurrences: res.TotalOccurrences,
	}
	if err := p.stepOutput(p.paths.Step1RawWords, meta, res.Words); err != nil {
		return PhaseResult{Err: err}
	}

	return PhaseResult{
		WordsIn:  res.TotalOccurrences,
		WordsOut: len(res.Words),
		Removed:  res.NumericSkipped,
	}
}

func (p *Pipeline) runStopwords() PhaseResult {
	words, meta, err := p.stepInput(p.paths.Step1RawWords)
	if err != nil {
		return PhaseResult{Err: err}
	}

	stopwords, err := vocab.LoadWordList(p.paths.Stopwords)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load stopwords: %w", err)}
	}

	filtered, removed := vocab.FilterWords(words, stopwords)

	meta.Step = "filtered_stopwords"
	meta.StopwordsRemoved = removed
	meta.TotalUniqueWords = len(filtered)
	meta.FiltersApplied = append(meta.FiltersApplied, "stopwords")
	if err := p.stepOutput(p.paths.Step2FilteredStopwords, meta, filtered); err != nil {
		return PhaseResult{Err: err}
	}

	return PhaseResult{WordsIn: len(words), WordsOut: len(filtered), Removed: removed}
}

func (p *Pipeline) runProperNouns() PhaseResult {
	words, meta, err := p.stepInput(p.paths.Step2FilteredStopwords)
	if err != nil {
		return PhaseResult{Err: err}
	}

	c, _, err := p.ensureCorpus()
	if err != nil {
		return PhaseResult{Err: err}
	}

	curated, err := vocab.LoadOptionalWordList(p.paths.ProperNouns)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load proper nouns: %w", err)}
	}
	protected, err := vocab.LoadOptionalWordList(p.paths.ProtectedWords)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("load protected words: %w", err)}
	}

	properNouns := vocab.ProperNounSet(vocab.DetectProperNouns(c), curated, protected)
	filtered, removed := vocab.FilterWords(words, properNouns)

	occurrences := 0
	for _, w := range filtered {
		occurrences += w.Count
	}

	meta.Step = "filtered_proper_nouns"
	meta.ProperNounsRemoved = removed
	meta.TotalUniqueWords = len(filtered)
	meta.TotalOccurrences = occurrences
	meta.FiltersApplied = append(meta.FiltersApplied, "proper_nouns")
	if err := p.stepOutput(p.paths.Step3FilteredProperNouns, meta, filtered); err != nil {
		return PhaseResult{Err: err}
	}

	return PhaseResult{WordsIn: len(words), WordsOut: len(filtered), Removed: removed}
}

func (p *Pipeline) runFinalize() PhaseResult {
	words, meta, err := p.stepInput(p.paths.Step3FilteredProperNouns)
	if err != nil {
		return PhaseResult{Err: err}
	}

	ranked, stats := vocab.Finalize(words, p.vc.MinWordLength, p.vc.MinFrequency)

	occurrences := 0
	for _, w := range ranked {
		occurrences += w.Count
	}

	meta.Step = "final_vocabulary"
	meta.TotalUniqueWords = len(ranked)
	meta.TotalOccurrences = occurrences
	meta.FiltersApplied = append(meta.FiltersApplied,
		"numeric",
		fmt.Sprintf("min_length_%d", p.vc.MinWordLength),
		fmt.Sprintf("min_frequency_%d", p.vc.MinFrequency),
	)
	if err := p.stepOutput(p.paths.Step4Vocabulary, meta, ranked); err != nil {
		return PhaseResult{Err: err}
	}

	removed := stats.RemovedNumeric + stats.RemovedShort + stats.RemovedLowFreq
	return PhaseResult{WordsIn: len(words), WordsOut: len(ranked), Removed: removed}
}

func (p *Pipeline) runSentences() PhaseResult {
	words, meta, err := p.stepInput(p.paths.Step4Vocabulary)
	if err != nil {
		return PhaseResult{Err: err}
	}

	c, eng, err := p.ensureCorpus()
	if err != nil {
		return PhaseResult{Err: err}
	}

	index := sentences.BuildIndex(c, words, eng, p.opts.Sentences)
	p.log.Info("sentence index built",
		slog.Int("eligible_verses", index.VerseCount()),
		slog.Int("matched_words", index.MatchedWords()),
		slog.Int("variants", index.VariantCount),
	)

	res := sentences.NewAssembler(p.log, index, p.opts.Sentences).Assemble(words)

	meta.Step = "vocabulary_with_sentences"
	meta.SentencesExtracted = true
	meta.TotalSentences = len(res.Sentences)

	p.words = nil // sentence output is not a plain word list
	if !p.opts.DryRun {
		vocabFile := domain.VocabularyFile{Metadata: meta, Words: res.Words}
		if err := jsonio.Write(p.paths.Step5Vocabulary, vocabFile); err != nil {
			return PhaseResult{Err: err}
		}
		sentFile := domain.SentencesFile{
			Metadata: domain.Metadata{
				Source:         meta.Source,
				TotalSentences: len(res.Sentences),
			},
			Sentences: res.Sentences,
		}
		if err := jsonio.Write(p.paths.Step5Sentences, sentFile); err != nil {
			return PhaseResult{Err: err}
		}
	}

	return PhaseResult{
		WordsIn:  len(words),
		WordsOut: res.WordsWithSentences,
		Removed:  res.WordsWithoutSentences,
	}
}
