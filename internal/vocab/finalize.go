package vocab

import (
	"regexp"

	"github.com/zzoony/logos-app/internal/domain"
)

// FinalizeStats breaks down what the final filter pass removed.
type FinalizeStats struct {
	RemovedNumeric int
	RemovedShort   int
	RemovedLowFreq int
}

var allDigitsRe = regexp.MustCompile(`^\d+$`)

// Finalize applies the last filters (all-digit words, minimum length,
// minimum frequency) and assigns dense 1-based ranks to the survivors in
// order. Ranks exist only after filtering: earlier steps carry none.
func Finalize(words []domain.Word, minLength, minFrequency int) ([]domain.Word, FinalizeStats) {
	var stats FinalizeStats
	final := make([]domain.Word, 0, len(words))

	for _, w := range words {
		switch {
		case allDigitsRe.MatchString(w.Word):
			stats.RemovedNumeric++
		case len(w.Word) < minLength:
			stats.RemovedShort++
		case w.Count < minFrequency:
			stats.RemovedLowFreq++
		default:
			w.Rank = len(final) + 1
			final = append(final, w)
		}
	}
	return final, stats
}
