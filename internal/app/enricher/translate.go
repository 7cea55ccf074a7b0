package enricher

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/zzoony/logos-app/internal/corpus"
	"github.com/zzoony/logos-app/internal/domain"
)

// bookAliases maps English book names whose Korean corpus counterpart is
// spelled differently.
var bookAliases = map[string]string{
	"Psalm":           "Psalms",
	"Song of Solomon": "Song of Songs",
}

// ParseReference splits a sentence ref like "1 Samuel 1:1" into book,
// chapter and verse. The book name is everything before the last space,
// so numbered books parse correctly.
func ParseReference(ref string) (book string, chapter, verse int, err error) {
	i := strings.LastIndex(ref, " ")
	if i < 0 {
		return "", 0, 0, fmt.Errorf("reference %q has no chapter:verse part", ref)
	}
	book = ref[:i]

	cv := ref[i+1:]
	colon := strings.Index(cv, ":")
	if colon < 0 {
		return "", 0, 0, fmt.Errorf("reference %q has no verse separator", ref)
	}
	chapter, err = strconv.Atoi(cv[:colon])
	if err != nil {
		return "", 0, 0, fmt.Errorf("reference %q: bad chapter: %w", ref, err)
	}
	verse, err = strconv.Atoi(cv[colon+1:])
	if err != nil {
		return "", 0, 0, fmt.Errorf("reference %q: bad verse: %w", ref, err)
	}
	return book, chapter, verse, nil
}

func normalizeBookName(book string) string {
	if alias, ok := bookAliases[book]; ok {
		return alias
	}
	return book
}

// TranslateStats summarizes one translation pass.
type TranslateStats struct {
	Translated int
	Unresolved int
}

// Translator maps selected sentences onto a Korean corpus by reference.
type Translator struct {
	log    *slog.Logger
	korean *corpus.Corpus
}

// NewTranslator creates a Translator over a loaded Korean corpus.
func NewTranslator(log *slog.Logger, korean *corpus.Corpus) *Translator {
	return &Translator{log: log, korean: korean}
}

// Translate resolves each sentence's ref against the Korean corpus.
// Sentences whose ref cannot be parsed or looked up keep an empty korean
// text. Unresolved refs are listed when there are at most ten of them,
// otherwise only counted.
func (t *Translator) Translate(sents map[string]domain.Sentence) (map[string]domain.TranslatedSentence, TranslateStats) {
	out := make(map[string]domain.TranslatedSentence, len(sents))
	var stats TranslateStats
	var unresolved []string

	for id, s := range sents {
		ts := domain.TranslatedSentence{Text: s.Text, Ref: s.Ref, Book: s.Book}

		book, chapter, verse, err := ParseReference(s.Ref)
		if err == nil {
			ts.Chapter = &chapter
			ts.Verse = &verse
			korean, ok := t.korean.Text(normalizeBookName(book),
				strconv.Itoa(chapter), strconv.Itoa(verse))
			if ok {
				ts.Korean = korean
				stats.Translated++
			} else {
				unresolved = append(unresolved, s.Ref)
			}
		} else {
			unresolved = append(unresolved, s.Ref)
		}

		out[id] = ts
	}

	stats.Unresolved = len(unresolved)
	if len(unresolved) > 0 && len(unresolved) <= 10 {
		for _, ref := range unresolved {
			t.log.Warn("unresolved reference", slog.String("ref", ref))
		}
	} else if len(unresolved) > 10 {
		t.log.Warn("unresolved references", slog.Int("count", len(unresolved)))
	}

	return out, stats
}
