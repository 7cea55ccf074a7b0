package morph

import "regexp"

var (
	digitsRe   = regexp.MustCompile(`^\d+$`)
	ordinalRe  = regexp.MustCompile(`^\d+(st|nd|rd|th)$`)
	fractionRe = regexp.MustCompile(`^\d*[½¼¾⅓⅔⅛⅜⅝⅞]$`)

	// Roman-numeral check is two-step: a loose character-class match
	// followed by a strict pattern. The loose class also covers ordinary
	// words like "did" or "liv"; the strict pattern rejects most of them,
	// except single letters ("i", "x", ...) which stay excluded.
	romanLooseRe  = regexp.MustCompile(`^[ivxlcdm]+$`)
	romanStrictRe = regexp.MustCompile(`^(i{1,3}|iv|v|vi{0,3}|ix|x{1,3}|xl|l|lx{0,3}|xc|c{1,3}|cd|d|dc{0,3}|cm|m{1,3})$`)
)

// IsNumericToken reports whether a normalized token is a number, ordinal,
// fraction, or short Roman numeral. Such tokens are excluded from word
// counting and tallied separately for diagnostics.
func IsNumericToken(word string) bool {
	if word == "" {
		return false
	}
	if digitsRe.MatchString(word) {
		return true
	}
	if ordinalRe.MatchString(word) {
		return true
	}
	if fractionRe.MatchString(word) {
		return true
	}
	if len(word) <= 4 && romanLooseRe.MatchString(word) && romanStrictRe.MatchString(word) {
		return true
	}
	return false
}
