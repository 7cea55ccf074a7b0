//go:build e2e

package e2e_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zzoony/logos-app/internal/app/enricher"
	"github.com/zzoony/logos-app/internal/app/pipeline"
	"github.com/zzoony/logos-app/internal/config"
	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
	"github.com/zzoony/logos-app/internal/sentences"
	"github.com/zzoony/logos-app/pkg/ctxutil"
	"github.com/zzoony/logos-app/pkg/jsonio"
)

const englishCorpus = `{
	"Genesis": {
		"1": {
			"1": "In the beginning God created the heavens and the earth",
			"2": "The earth was formless and empty and darkness covered the deep waters"
		}
	},
	"Psalms": {
		"23": {
			"1": "The Lord is my shepherd and I lack nothing in my whole life"
		}
	}
}`

const koreanCorpus = `{
	"Genesis": {
		"1": {
			"1": "태초에 하나님이 천지를 창조하시니라",
			"2": "땅이 혼돈하고 공허하며 흑암이 깊음 위에 있고"
		}
	},
	"Psalms": {
		"23": {
			"1": "여호와는 나의 목자시니 내게 부족함이 없으리로다"
		}
	}
}`

const stopwords = "the\nand\nin\nof\nwas\nis\nmy\ni\nto\na\n"

// fakeDefiner defines every word except those in skip.
type fakeDefiner struct {
	skip map[string]bool
}

func (f *fakeDefiner) Define(_ context.Context, words []string) ([]enricher.Definition, error) {
	var defs []enricher.Definition
	for _, w := range words {
		if f.skip[w] {
			continue
		}
		defs = append(defs, enricher.Definition{
			Word:                w,
			IPAPronunciation:    "/" + w + "/",
			KoreanPronunciation: w + "-발음",
			DefinitionKorean:    w + "의 뜻",
		})
	}
	return defs, nil
}

func setupFixture(t *testing.T) (*config.Config, *config.VersionConfig, config.Paths) {
	t.Helper()
	dir := t.TempDir()

	write := func(path, content string) {
		t.Helper()
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	write(filepath.Join(dir, "source_data", "test_Bible.json"), englishCorpus)
	write(filepath.Join(dir, "source_data", "korean_Bible.json"), koreanCorpus)
	write(filepath.Join(dir, "data", "test", "stopwords.txt"), stopwords)
	write(filepath.Join(dir, "data", "test", "protected_words.txt"), "lord\nshepherd\n")
	write(filepath.Join(dir, "data", "test", "proper_nouns.txt"), "")

	cfg := &config.Config{
		Version:       "test",
		ConfigsDir:    filepath.Join(dir, "configs"),
		SourceDataDir: filepath.Join(dir, "source_data"),
		DataDir:       filepath.Join(dir, "data"),
		OutputDir:     filepath.Join(dir, "output"),
	}
	vc, err := cfg.LoadVersion("test")
	require.NoError(t, err)
	return cfg, vc, cfg.Paths(vc)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestE2E_FullFlow runs extraction, enrichment and translation back to
// back over a small corpus and checks the final artifacts.
func TestE2E_FullFlow(t *testing.T) {
	cfg, vc, paths := setupFixture(t)
	logger := quietLogger()

	// Extraction pipeline, sentences included.
	opts := pipeline.Options{
		WithSentences: true,
		Sentences:     sentences.Config{MinLength: 20, MaxLength: 200, MinPerWord: 1, MaxPerWord: 3},
	}
	ctx := ctxutil.WithRunID(context.Background(), ctxutil.NewRunID())
	require.NoError(t, pipeline.New(logger, cfg, vc, opts).Run(ctx, nil))

	var step5 domain.VocabularyFile
	require.NoError(t, jsonio.Read(paths.Step5Vocabulary, &step5))
	require.NotEmpty(t, step5.Words)
	assert.True(t, step5.Metadata.SentencesExtracted)
	assert.NotEmpty(t, step5.Metadata.RunID)

	byWord := make(map[string]domain.SentencedWord)
	for _, w := range step5.Words {
		byWord[w.Word] = w
	}
	// Stopwords and detected proper nouns are gone, protected words stay.
	assert.NotContains(t, byWord, "the")
	assert.NotContains(t, byWord, "god")
	assert.Contains(t, byWord, "lord")
	assert.Contains(t, byWord, "shepherd")
	assert.NotEmpty(t, byWord["earth"].SentenceIDs, "earth appears in two indexed verses")

	// Enrichment over a fake LLM; "formless" never comes back.
	ecfg := &enricher.Config{BatchSize: 3, MaxWorkers: 2, RequestTimeout: time.Minute}
	e := enricher.New(logger, &fakeDefiner{skip: map[string]bool{"formless": true}}, ecfg)

	names := make([]string, len(step5.Words))
	for i, w := range step5.Words {
		names[i] = w.Word
	}
	res := e.EnrichWords(ctx, names)
	assert.Equal(t, []string{"formless"}, res.Failed)

	final := domain.FinalVocabularyFile{
		Metadata: step5.Metadata,
		Words:    enricher.Merge(step5.Words, res.Defined),
	}
	final.Metadata.DefinitionsAdded = true
	final.Metadata.DefinitionsCount = len(res.Defined)
	final.Metadata.HasID = true
	require.NoError(t, jsonio.Write(paths.FinalVocabulary, final))

	var reread domain.FinalVocabularyFile
	require.NoError(t, jsonio.Read(paths.FinalVocabulary, &reread))
	require.Len(t, reread.Words, len(step5.Words))
	for i, w := range reread.Words {
		assert.Equal(t, i, w.ID, "ids are sequential")
		if w.Word == "formless" {
			assert.Empty(t, w.DefinitionKorean)
		} else {
			assert.NotEmpty(t, w.DefinitionKorean)
			assert.NotEmpty(t, w.IPAPronunciation)
		}
	}

	// Translation against the Korean corpus.
	korean, err := corpus.Parse([]byte(koreanCorpus))
	require.NoError(t, err)

	var sentFile domain.SentencesFile
	require.NoError(t, jsonio.Read(paths.Step5Sentences, &sentFile))
	require.NotEmpty(t, sentFile.Sentences)

	translated, stats := enricher.NewTranslator(logger, korean).Translate(sentFile.Sentences)
	assert.Equal(t, len(sentFile.Sentences), stats.Translated)
	assert.Zero(t, stats.Unresolved)

	for id, s := range translated {
		assert.NotEmpty(t, s.Korean, "sentence %s must resolve", id)
		require.NotNil(t, s.Chapter)
		require.NotNil(t, s.Verse)
	}

	out := domain.TranslatedSentencesFile{Metadata: sentFile.Metadata, Sentences: translated}
	out.Metadata.KoreanTranslationsAdded = true
	out.Metadata.TranslationsCount = stats.Translated
	require.NoError(t, jsonio.Write(paths.FinalSentences, out))
	assert.True(t, jsonio.Exists(paths.FinalSentences))
}

// TestE2E_RerunFromStepFiles re-runs later phases in a fresh process
// using only the step files written by an earlier run.
func TestE2E_RerunFromStepFiles(t *testing.T) {
	cfg, vc, paths := setupFixture(t)
	logger := quietLogger()

	require.NoError(t, pipeline.New(logger, cfg, vc, pipeline.Options{}).
		Run(context.Background(), []string{"extract", "stopwords"}))

	fresh := pipeline.New(logger, cfg, vc, pipeline.Options{})
	require.NoError(t, fresh.Run(context.Background(), []string{"propernouns", "finalize"}))

	var step4 domain.WordListFile
	require.NoError(t, jsonio.Read(paths.Step4Vocabulary, &step4))
	require.NotEmpty(t, step4.Words)
	for i, w := range step4.Words {
		assert.Equal(t, i+1, w.Rank)
	}
}
