package morph

import (
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/kljensen/snowball"
)

// PartOfSpeech is the coarse POS hint passed to a Lemmatizer.
type PartOfSpeech string

const (
	Noun PartOfSpeech = "n"
	Verb PartOfSpeech = "v"
)

// Lemmatizer resolves a word to its dictionary base form given a coarse
// part-of-speech guess, returning the word unchanged when no base form is
// found. Implementations must be total and deterministic.
type Lemmatizer interface {
	Lemma(word string, pos PartOfSpeech) string
}

// EnglishLemmatizer resolves nouns via dictionary-grade singularization and
// verbs via ordered suffix detachment. Known validates candidate base
// forms: a candidate that Known rejects leaves the word unchanged, so a
// base form like "king" never loses its -ing. With a nil Known the first
// candidate stem of two or more characters wins, which mis-lemmatizes
// short base forms; callers should supply a lexicon.
type EnglishLemmatizer struct {
	Known func(word string) bool
}

func (l EnglishLemmatizer) Lemma(word string, pos PartOfSpeech) string {
	if pos == Verb {
		return l.detachVerbSuffix(word)
	}
	singular := inflection.Singular(word)
	if singular == word {
		return word
	}
	if l.Known != nil && !l.Known(singular) {
		return word
	}
	return singular
}

// verbSuffixRules are tried in order; the first rule producing an accepted
// stem wins.
var verbSuffixRules = []struct {
	suffix  string
	replace string
}{
	{"ies", "y"},
	{"es", "e"},
	{"es", ""},
	{"s", ""},
	{"ed", "e"},
	{"ed", ""},
	{"ing", "e"},
	{"ing", ""},
}

func (l EnglishLemmatizer) detachVerbSuffix(word string) string {
	for _, rule := range verbSuffixRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		stem := word[:len(word)-len(rule.suffix)] + rule.replace
		if len(stem) < 2 {
			continue
		}
		if l.Known != nil {
			if l.Known(stem) {
				return stem
			}
			continue
		}
		return stem
	}
	return word
}

// SnowballLemmatizer approximates lemmas with a snowball stem. Used for
// non-English corpora where no dictionary-based lemmatizer is wired.
type SnowballLemmatizer struct {
	Language string
}

func (s SnowballLemmatizer) Lemma(word string, _ PartOfSpeech) string {
	stem, err := snowball.Stem(word, s.Language, false)
	if err != nil || stem == "" {
		return word
	}
	return stem
}

// identityLemmatizer leaves every word unchanged.
type identityLemmatizer struct{}

func (identityLemmatizer) Lemma(word string, _ PartOfSpeech) string { return word }

// snowballLanguages maps corpus language codes to snowball language names.
var snowballLanguages = map[string]string{
	"es": "spanish",
	"fr": "french",
	"ru": "russian",
	"sv": "swedish",
	"no": "norwegian",
	"hu": "hungarian",
}

// LemmatizerFor returns the lemmatizer for a corpus language code. English
// gets the dictionary-backed lemmatizer validated against known (may be
// nil), snowball-supported languages get a stemmer, everything else falls
// back to identity.
func LemmatizerFor(language string, known func(string) bool) Lemmatizer {
	if language == "en" {
		return EnglishLemmatizer{Known: known}
	}
	if name, ok := snowballLanguages[language]; ok {
		return SnowballLemmatizer{Language: name}
	}
	return identityLemmatizer{}
}
