package domain

// Word is a vocabulary entry as produced by the extraction and filtering
// steps. Rank is zero until finalize assigns dense 1-based ranks to the
// surviving words.
type Word struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Rank  int    `json:"rank,omitempty"`
}

// SentencedWord is a ranked word with its selected example sentence IDs.
// SentenceIDs is always present in output, as an empty array when the word
// did not reach the minimum sentence threshold.
type SentencedWord struct {
	Word        string   `json:"word"`
	Count       int      `json:"count"`
	Rank        int      `json:"rank"`
	SentenceIDs []string `json:"sentence_ids"`
}

// EnrichedWord is the final record: a sentenced word plus LLM-generated
// pronunciation and Korean definition fields. The enrichment fields are
// explicit empty strings for words the LLM failed to cover.
type EnrichedWord struct {
	ID                  int      `json:"id"`
	Word                string   `json:"word"`
	Count               int      `json:"count"`
	Rank                int      `json:"rank"`
	SentenceIDs         []string `json:"sentence_ids"`
	IPAPronunciation    string   `json:"ipa_pronunciation"`
	KoreanPronunciation string   `json:"korean_pronunciation"`
	DefinitionKorean    string   `json:"definition_korean"`
}
