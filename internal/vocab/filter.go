package vocab

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
)

// FilterWords removes every word present in the given set, preserving
// order. Returns the survivors and the number removed. Used by both the
// stopword and the proper-noun stage.
func FilterWords(words []domain.Word, remove map[string]bool) ([]domain.Word, int) {
	kept := make([]domain.Word, 0, len(words))
	removed := 0
	for _, w := range words {
		if remove[w.Word] {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	return kept, removed
}

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]`)
	wordCharsRe     = regexp.MustCompile(`[^\w']`)
)

// DetectProperNouns scans the corpus for words capitalized mid-sentence.
// Verse text is split on sentence punctuation, each fragment's first word
// is skipped (always capitalized), and every remaining capitalized word is
// collected lowercased.
func DetectProperNouns(c *corpus.Corpus) map[string]bool {
	candidates := make(map[string]bool)

	for _, v := range c.Verses {
		for _, fragment := range sentenceSplitRe.Split(v.Text, -1) {
			words := strings.Fields(fragment)
			if len(words) < 2 {
				continue
			}
			for _, word := range words[1:] {
				clean := wordCharsRe.ReplaceAllString(word, "")
				if clean == "" {
					continue
				}
				if unicode.IsUpper([]rune(clean)[0]) {
					candidates[strings.ToLower(clean)] = true
				}
			}
		}
	}
	return candidates
}

// ProperNounSet combines capitalization-detected and curated proper nouns,
// then subtracts protected words that are common vocabulary despite
// appearing capitalized.
func ProperNounSet(detected, curated, protected map[string]bool) map[string]bool {
	combined := make(map[string]bool, len(detected)+len(curated))
	for w := range detected {
		combined[w] = true
	}
	for w := range curated {
		combined[w] = true
	}
	for w := range protected {
		delete(combined, w)
	}
	return combined
}
