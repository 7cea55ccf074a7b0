// Package vocab implements the word-extraction side of the pipeline:
// corpus-wide lemma frequency counting and the stopword, proper-noun and
// finalize filters that turn raw counts into a ranked vocabulary.
package vocab

import (
	"sort"

	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
	"github.com/zzoony/logos-app/internal/morph"
)

// CountResult holds the frequency table plus scan statistics.
type CountResult struct {
	Words            []domain.Word
	Verses           int
	NumericSkipped   int
	TotalOccurrences int
}

// BuildLexicon collects every normalized surface token in the corpus. The
// set backs the lemmatizer's base-form validation: a candidate stem counts
// as a dictionary word only if it occurs somewhere in the corpus itself.
func BuildLexicon(c *corpus.Corpus) map[string]bool {
	lexicon := make(map[string]bool)
	for _, v := range c.Verses {
		for _, tok := range morph.Normalize(v.Text) {
			lexicon[tok] = true
		}
	}
	return lexicon
}

// Count scans the whole corpus, normalizes and lemmatizes every token, and
// accumulates lemma occurrence counts. Numeric/ordinal tokens are skipped
// and tallied. The result is ordered by count descending with first-seen
// order breaking ties, so output is deterministic for a given corpus.
func Count(c *corpus.Corpus, eng *morph.Engine) CountResult {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	var res CountResult
	for _, v := range c.Verses {
		res.Verses++
		for _, tok := range morph.Normalize(v.Text) {
			if morph.IsNumericToken(tok) {
				res.NumericSkipped++
				continue
			}
			lemma := eng.Lemmatize(tok)
			if _, ok := counts[lemma]; !ok {
				firstSeen[lemma] = len(firstSeen)
			}
			counts[lemma]++
			res.TotalOccurrences++
		}
	}

	res.Words = make([]domain.Word, 0, len(counts))
	for lemma, count := range counts {
		res.Words = append(res.Words, domain.Word{Word: lemma, Count: count})
	}
	sort.Slice(res.Words, func(i, j int) bool {
		if res.Words[i].Count != res.Words[j].Count {
			return res.Words[i].Count > res.Words[j].Count
		}
		return firstSeen[res.Words[i].Word] < firstSeen[res.Words[j].Word]
	})

	return res
}
