// Package sentences implements example-sentence extraction: an inverted
// index from word variants to verse locations, a diversity-aware greedy
// selector, and the assembler that joins selections back onto the ranked
// vocabulary.
package sentences

import (
	"regexp"
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
	"github.com/zzoony/logos-app/internal/morph"
)

// Config bounds sentence eligibility and per-word selection counts.
type Config struct {
	MinLength  int // shortest verse (in characters) worth indexing
	MaxLength  int // longest verse worth indexing
	MinPerWord int // below this many selections a word gets none at all
	MaxPerWord int
}

// DefaultConfig returns the production bounds: verses of 30-200 characters,
// two to five example sentences per word.
func DefaultConfig() Config {
	return Config{MinLength: 30, MaxLength: 200, MinPerWord: 2, MaxPerWord: 5}
}

// StoredVerse is one length-eligible verse in the index's verse store.
type StoredVerse struct {
	ID     string
	Ref    string
	Book   string
	Text   string
	Length int
}

// Candidate is one verse considered as an example sentence for a word.
type Candidate struct {
	Ordinal uint32 // dense verse ordinal in corpus scan order
	ID      string
	Length  int
	Book    string
}

// Index maps each vocabulary word to the set of eligible verses containing
// any of its surface-form variants. Built once per run and read-only
// afterwards; posting lists are roaring bitmaps over dense verse ordinals,
// so candidates materialize in corpus order.
type Index struct {
	postings map[string]*roaring.Bitmap
	store    []StoredVerse

	VariantCount int // number of distinct surface forms searched
}

var verseWordRe = regexp.MustCompile(`\b[a-zA-Z]+\b`)

// BuildIndex scans the corpus once. For every vocabulary word (in rank
// order) the engine's variants are registered in a reverse mapping; a
// variant claimed by several words resolves to the first writer, except
// that a variant equal to its own word always wins (identity precedence
// over generated ambiguity). Verses outside the length bounds never enter
// the index.
func BuildIndex(c *corpus.Corpus, words []domain.Word, eng *morph.Engine, cfg Config) *Index {
	variantToWord := make(map[string]string)
	for _, w := range words {
		for _, variant := range eng.Variants(w.Word) {
			if _, claimed := variantToWord[variant]; !claimed || variant == w.Word {
				variantToWord[variant] = w.Word
			}
		}
	}

	ix := &Index{
		postings:     make(map[string]*roaring.Bitmap, len(words)),
		VariantCount: len(variantToWord),
	}

	for _, verse := range c.Verses {
		if verse.Length < cfg.MinLength || verse.Length > cfg.MaxLength {
			continue
		}
		ordinal := uint32(len(ix.store))
		ix.store = append(ix.store, StoredVerse{
			ID:     verse.Location.ID(),
			Ref:    verse.Location.Ref(),
			Book:   verse.Location.Book,
			Text:   verse.Text,
			Length: verse.Length,
		})

		for _, token := range verseWordRe.FindAllString(strings.ToLower(verse.Text), -1) {
			word, ok := variantToWord[token]
			if !ok {
				continue
			}
			bm := ix.postings[word]
			if bm == nil {
				bm = roaring.New()
				ix.postings[word] = bm
			}
			bm.Add(ordinal)
		}
	}

	return ix
}

// Candidates returns the candidate verses for a word in corpus order.
// Unknown words yield nil.
func (ix *Index) Candidates(word string) []Candidate {
	bm := ix.postings[word]
	if bm == nil {
		return nil
	}

	candidates := make([]Candidate, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		ordinal := it.Next()
		v := ix.store[ordinal]
		candidates = append(candidates, Candidate{
			Ordinal: ordinal,
			ID:      v.ID,
			Length:  v.Length,
			Book:    v.Book,
		})
	}
	return candidates
}

// Verse returns the stored verse for an ordinal.
func (ix *Index) Verse(ordinal uint32) StoredVerse {
	return ix.store[ordinal]
}

// VerseCount returns the number of indexed (length-eligible) verses.
func (ix *Index) VerseCount() int { return len(ix.store) }

// MatchedWords returns how many words have at least one candidate.
func (ix *Index) MatchedWords() int { return len(ix.postings) }
