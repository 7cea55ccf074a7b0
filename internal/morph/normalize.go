// Package morph contains the text normalizer and the morphology engine:
// surface-form cleanup, lemmatization with an irregular-verb override, and
// variant expansion for inverted-index matching.
package morph

import (
	"regexp"
	"strings"
)

var unicodeReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`, // curly double quotes
	"‘", "'", "’", "'", // curly single quotes
	"—", " ", "–", " ", // em dash, en dash
)

var (
	possessiveRe       = regexp.MustCompile(`'s\b`)
	pluralPossessiveRe = regexp.MustCompile(`s'\b`)
	// \w is ASCII here; fraction glyphs are kept so IsNumericToken can
	// classify tokens like "12½" before the glyph would be lost.
	punctuationRe = regexp.MustCompile(`[^\w\s½¼¾⅓⅔⅛⅜⅝⅞]`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// CleanText normalizes raw verse text: curly quotes and dashes become
// ASCII, possessive markers are stripped (king's → king, kings' → kings),
// remaining apostrophes collapse contractions (don't → dont), all other
// punctuation becomes a space, and whitespace runs are compressed. The
// result is lowercase and trimmed, possibly empty. Total: never fails.
func CleanText(text string) string {
	text = unicodeReplacer.Replace(text)
	text = possessiveRe.ReplaceAllString(text, "")
	text = pluralPossessiveRe.ReplaceAllString(text, "s")
	text = strings.ReplaceAll(text, "'", "")
	text = punctuationRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.ToLower(strings.TrimSpace(text))
}

// Normalize cleans raw text and splits it into tokens.
func Normalize(text string) []string {
	cleaned := CleanText(text)
	if cleaned == "" {
		return nil
	}
	return strings.Split(cleaned, " ")
}
