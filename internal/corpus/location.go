package corpus

import (
	"fmt"
	"strings"
)

// Location identifies one verse in the corpus.
type Location struct {
	Book    string
	Chapter string
	Verse   string
}

// ID returns the stable location identifier: book-chapter-verse with the
// book lowercased and spaces replaced by hyphens ("1 Samuel", "2", "3"
// becomes "1-samuel-2-3").
func (l Location) ID() string {
	book := strings.ReplaceAll(strings.ToLower(l.Book), " ", "-")
	return fmt.Sprintf("%s-%s-%s", book, l.Chapter, l.Verse)
}

// Ref returns the human-readable reference, e.g. "Genesis 1:1".
func (l Location) Ref() string {
	return fmt.Sprintf("%s %s:%s", l.Book, l.Chapter, l.Verse)
}
