package sentences

import (
	"slices"
	"sort"

	"github.com/RoaringBitmap/roaring"
)

// Selector greedily picks a bounded, diverse subset of candidate verses
// per word. It owns the run-wide used-sentence set, so earlier words bias
// later ones toward unclaimed verses; callers must therefore process words
// in rank order, sequentially.
type Selector struct {
	used       *roaring.Bitmap
	minPerWord int
	maxPerWord int
}

// NewSelector creates a Selector with an empty used-sentence set.
func NewSelector(cfg Config) *Selector {
	return &Selector{
		used:       roaring.New(),
		minPerWord: cfg.MinPerWord,
		maxPerWord: cfg.MaxPerWord,
	}
}

// Select picks up to MaxPerWord candidates in two passes over the
// candidates sorted by (already used, verse length) with corpus order as
// the stable tie-break: the first pass takes at most one verse per book,
// the second fills remaining slots. Fewer than MinPerWord picks means the
// word gets nothing at all, and the used set is left untouched. On success
// the picks are added to the used set before returning.
func (s *Selector) Select(candidates []Candidate) []Candidate {
	if len(candidates) == 0 {
		return nil
	}

	sorted := slices.Clone(candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		ui, uj := s.used.Contains(sorted[i].Ordinal), s.used.Contains(sorted[j].Ordinal)
		if ui != uj {
			return !ui
		}
		return sorted[i].Length < sorted[j].Length
	})

	selected := make([]Candidate, 0, s.maxPerWord)
	picked := make(map[uint32]bool, s.maxPerWord)
	books := make(map[string]bool)

	// Diversity pass: at most one verse per book.
	for _, c := range sorted {
		if len(selected) >= s.maxPerWord {
			break
		}
		if !books[c.Book] {
			selected = append(selected, c)
			picked[c.Ordinal] = true
			books[c.Book] = true
		}
	}

	// Fill pass.
	for _, c := range sorted {
		if len(selected) >= s.maxPerWord {
			break
		}
		if !picked[c.Ordinal] {
			selected = append(selected, c)
			picked[c.Ordinal] = true
		}
	}

	if len(selected) < s.minPerWord {
		return nil
	}

	for _, c := range selected {
		s.used.Add(c.Ordinal)
	}
	return selected
}

// UsedCount returns how many distinct verses have been claimed so far.
func (s *Selector) UsedCount() int {
	return int(s.used.GetCardinality())
}
