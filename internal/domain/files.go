package domain

// Metadata accretes across pipeline steps: each step copies the previous
// step's metadata and sets its own fields. Zero-valued fields are omitted
// so early step files stay minimal.
type Metadata struct {
	Step                    string   `json:"step,omitempty"`
	Source                  string   `json:"source,omitempty"`
	RunID                   string   `json:"run_id,omitempty"`
	ExtractionDate          string   `json:"extraction_date,omitempty"`
	TotalUniqueWords        int      `json:"total_unique_words,omitempty"`
	TotalOccurrences        int      `json:"total_occurrences,omitempty"`
	StopwordsRemoved        int      `json:"stopwords_removed,omitempty"`
	ProperNounsRemoved      int      `json:"proper_nouns_removed,omitempty"`
	FiltersApplied          []string `json:"filters_applied,omitempty"`
	SentencesExtracted      bool     `json:"sentences_extracted,omitempty"`
	TotalSentences          int      `json:"total_sentences,omitempty"`
	DefinitionsAdded        bool     `json:"definitions_added,omitempty"`
	DefinitionsCount        int      `json:"definitions_count,omitempty"`
	HasID                   bool     `json:"has_id,omitempty"`
	KoreanTranslationsAdded bool     `json:"korean_translations_added,omitempty"`
	TranslationsCount       int      `json:"translations_count,omitempty"`
	TranslationSource       string   `json:"translation_source,omitempty"`
	ProcessingDate          string   `json:"processing_date,omitempty"`
}

// WordListFile is the format of the step 1-4 output files.
type WordListFile struct {
	Metadata Metadata `json:"metadata"`
	Words    []Word   `json:"words"`
}

// VocabularyFile is the step 5 vocabulary-with-sentences output.
type VocabularyFile struct {
	Metadata Metadata        `json:"metadata"`
	Words    []SentencedWord `json:"words"`
}

// FinalVocabularyFile is the enriched final vocabulary output.
type FinalVocabularyFile struct {
	Metadata Metadata       `json:"metadata"`
	Words    []EnrichedWord `json:"words"`
}

// SentencesFile is the step 5 sentence store output.
type SentencesFile struct {
	Metadata  Metadata            `json:"metadata"`
	Sentences map[string]Sentence `json:"sentences"`
}

// TranslatedSentencesFile is the final sentence store with Korean verses.
type TranslatedSentencesFile struct {
	Metadata  Metadata                      `json:"metadata"`
	Sentences map[string]TranslatedSentence `json:"sentences"`
}

// FailedWordsFile records words the enrichment stage could not cover
// after its retry round.
type FailedWordsFile struct {
	FailedWords []string `json:"failed_words"`
	Count       int      `json:"count"`
}
