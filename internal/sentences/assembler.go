package sentences

import (
	"log/slog"

	"github.com/zzoony/logos-app/internal/domain"
)

// AssembleResult is the joined output of the sentence-extraction stage.
type AssembleResult struct {
	Words     []domain.SentencedWord
	Sentences map[string]domain.Sentence

	WordsWithSentences    int
	WordsWithoutSentences int
}

// Assembler walks the ranked vocabulary, runs the selector per word and
// collects the deduplicated store of sentences actually selected.
type Assembler struct {
	log      *slog.Logger
	index    *Index
	selector *Selector
}

// NewAssembler wires an assembler over a built index.
func NewAssembler(log *slog.Logger, index *Index, cfg Config) *Assembler {
	return &Assembler{
		log:      log,
		index:    index,
		selector: NewSelector(cfg),
	}
}

// Assemble processes words strictly in the given order, which callers
// must keep as rank order: the selector's shared used-sentence set makes
// selection path-dependent, biasing high-rank words toward the shortest
// unclaimed verses.
func (a *Assembler) Assemble(words []domain.Word) AssembleResult {
	res := AssembleResult{
		Words:     make([]domain.SentencedWord, 0, len(words)),
		Sentences: make(map[string]domain.Sentence),
	}

	for i, w := range words {
		selected := a.selector.Select(a.index.Candidates(w.Word))

		ids := make([]string, 0, len(selected))
		for _, c := range selected {
			ids = append(ids, c.ID)
			if _, ok := res.Sentences[c.ID]; !ok {
				v := a.index.Verse(c.Ordinal)
				res.Sentences[c.ID] = domain.Sentence{Text: v.Text, Ref: v.Ref, Book: v.Book}
			}
		}

		if len(ids) > 0 {
			res.WordsWithSentences++
		} else {
			res.WordsWithoutSentences++
		}

		res.Words = append(res.Words, domain.SentencedWord{
			Word:        w.Word,
			Count:       w.Count,
			Rank:        w.Rank,
			SentenceIDs: ids,
		})

		if (i+1)%1000 == 0 {
			a.log.Info("selecting sentences",
				slog.Int("processed", i+1),
				slog.Int("total", len(words)),
			)
		}
	}

	return res
}
