package morph

import "strings"

// Engine combines the irregular-verb table with an injected Lemmatizer.
// It answers both directions: surface form → lemma (Lemmatize) and
// lemma → plausible surface forms (Variants).
type Engine struct {
	lem Lemmatizer
}

// NewEngine creates an Engine around the given Lemmatizer.
func NewEngine(lem Lemmatizer) *Engine {
	return &Engine{lem: lem}
}

// Lemmatize maps a surface word form to its canonical lemma. The irregular
// table takes precedence over the rule-based lemmatizer because rule-based
// paths mis-lemmatize several high-frequency irregular forms. Otherwise
// the verb lemma wins when it changed the word and the noun lemma is
// unchanged or degenerately short (was → be, has → have); the noun lemma
// wins for plain plurals (sons → son).
func (e *Engine) Lemmatize(word string) string {
	if base, ok := irregularBase(word); ok {
		return base
	}

	nounLemma := e.lem.Lemma(word, Noun)
	verbLemma := e.lem.Lemma(word, Verb)

	if verbLemma != word && len(verbLemma) > 1 {
		if nounLemma == word || len(nounLemma) <= 2 {
			return verbLemma
		}
	}

	if nounLemma != word {
		return nounLemma
	}

	return verbLemma
}

// Variants expands a lemma into the surface forms to search for: the lemma
// itself, its known irregular inflections, and generated plural, past and
// progressive forms. Single-character lemmas return only the identity set
// to avoid explosive false-positive matching on function words. Order is
// deterministic: identity, irregulars, plural, past, progressive.
func (e *Engine) Variants(word string) []string {
	variants := []string{word}
	if len(word) < 2 {
		return variants
	}

	seen := map[string]bool{word: true}
	add := func(v string) {
		if !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	for _, form := range irregularForms(word) {
		add(form)
	}

	// Regular plural.
	if !strings.HasSuffix(word, "s") {
		switch {
		case hasAnySuffix(word, "s", "x", "z", "ch", "sh"):
			add(word + "es")
		case endsConsonantY(word):
			add(word[:len(word)-1] + "ies")
		default:
			add(word + "s")
		}
	}

	// Regular past tense.
	if !strings.HasSuffix(word, "ed") {
		switch {
		case strings.HasSuffix(word, "e"):
			add(word + "d")
		case endsConsonantY(word):
			add(word[:len(word)-1] + "ied")
		default:
			add(word + "ed")
		}
	}

	// Progressive. The e-branch is checked before the ie-branch.
	switch {
	case strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "ee"):
		add(word[:len(word)-1] + "ing")
	case strings.HasSuffix(word, "ie"):
		add(word[:len(word)-2] + "ying")
	case !strings.HasSuffix(word, "ing"):
		add(word + "ing")
	}

	return variants
}

func hasAnySuffix(word string, suffixes ...string) bool {
	for _, s := range suffixes {
		if strings.HasSuffix(word, s) {
			return true
		}
	}
	return false
}

func endsConsonantY(word string) bool {
	if len(word) < 2 || !strings.HasSuffix(word, "y") {
		return false
	}
	return !strings.ContainsRune("aeiou", rune(word[len(word)-2]))
}
