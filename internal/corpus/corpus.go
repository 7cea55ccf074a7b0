// Package corpus loads verse corpora from book → chapter → verse JSON
// files. Traversal preserves document order so downstream location IDs and
// candidate lists are deterministic across runs.
package corpus

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
	"github.com/ulikunitz/xz"

	"github.com/zzoony/logos-app/internal/domain"
)

// Verse is one corpus sentence with its pre-computed character length.
type Verse struct {
	Location Location
	Text     string
	Length   int
}

// Corpus holds all verses in document order plus a lookup by location.
type Corpus struct {
	Verses []Verse
	Books  []string

	lookup map[string]map[string]map[string]string
}

// Load reads a corpus JSON file. Files ending in .xz are decompressed
// transparently. Invalid JSON, non-object nesting, or a non-string verse
// value wraps domain.ErrMalformedCorpus.
func Load(path string) (*Corpus, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a Corpus from raw corpus JSON.
func Parse(data []byte) (*Corpus, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", domain.ErrMalformedCorpus)
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", domain.ErrMalformedCorpus)
	}

	c := &Corpus{lookup: make(map[string]map[string]map[string]string)}
	var walkErr error

	root.ForEach(func(book, chapters gjson.Result) bool {
		if !chapters.IsObject() {
			walkErr = fmt.Errorf("%w: book %q is not an object", domain.ErrMalformedCorpus, book.String())
			return false
		}
		bookName := book.String()
		c.Books = append(c.Books, bookName)
		byChapter := make(map[string]map[string]string)
		c.lookup[bookName] = byChapter

		chapters.ForEach(func(chapter, verses gjson.Result) bool {
			if !verses.IsObject() {
				walkErr = fmt.Errorf("%w: %s chapter %q is not an object",
					domain.ErrMalformedCorpus, bookName, chapter.String())
				return false
			}
			byVerse := make(map[string]string)
			byChapter[chapter.String()] = byVerse

			verses.ForEach(func(verse, text gjson.Result) bool {
				if text.Type != gjson.String {
					walkErr = fmt.Errorf("%w: %s %s:%s is not a string",
						domain.ErrMalformedCorpus, bookName, chapter.String(), verse.String())
					return false
				}
				t := text.String()
				byVerse[verse.String()] = t
				c.Verses = append(c.Verses, Verse{
					Location: Location{Book: bookName, Chapter: chapter.String(), Verse: verse.String()},
					Text:     t,
					Length:   utf8.RuneCountInString(t),
				})
				return true
			})
			return walkErr == nil
		})
		return walkErr == nil
	})

	if walkErr != nil {
		return nil, walkErr
	}
	return c, nil
}

// Text looks up one verse by book, chapter and verse identifiers.
func (c *Corpus) Text(book, chapter, verse string) (string, bool) {
	chapters, ok := c.lookup[book]
	if !ok {
		return "", false
	}
	verses, ok := chapters[chapter]
	if !ok {
		return "", false
	}
	text, ok := verses[verse]
	return text, ok
}

// Len returns the number of verses.
func (c *Corpus) Len() int { return len(c.Verses) }

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open xz corpus %s: %w", path, err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read corpus %s: %w", path, err)
	}
	return data, nil
}
