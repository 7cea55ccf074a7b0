package config

import "path/filepath"

// Paths holds every file the pipeline reads or writes for one version.
type Paths struct {
	Source         string
	Stopwords      string
	ProtectedWords string
	ProperNouns    string

	Step1RawWords            string
	Step2FilteredStopwords   string
	Step3FilteredProperNouns string
	Step4Vocabulary          string
	Step5Vocabulary          string
	Step5Sentences           string

	FinalVocabulary string
	FinalSentences  string
	FailedWords     string
}

// Paths derives the file layout for a version: inputs in the version's
// data directory, intermediate and final outputs under OutputDir/<version>.
func (c *Config) Paths(vc *VersionConfig) Paths {
	out := filepath.Join(c.OutputDir, vc.Name)
	return Paths{
		Source:         filepath.Join(c.SourceDataDir, vc.SourceFile),
		Stopwords:      filepath.Join(vc.DataDir, vc.StopwordsFile),
		ProtectedWords: filepath.Join(vc.DataDir, vc.ProtectedWordsFile),
		ProperNouns:    filepath.Join(vc.DataDir, vc.ProperNounsFile),

		Step1RawWords:            filepath.Join(out, "step1_raw_words.json"),
		Step2FilteredStopwords:   filepath.Join(out, "step2_filtered_stopwords.json"),
		Step3FilteredProperNouns: filepath.Join(out, "step3_filtered_proper_nouns.json"),
		Step4Vocabulary:          filepath.Join(out, "step4_vocabulary.json"),
		Step5Vocabulary:          filepath.Join(out, "step5_vocabulary_with_sentences.json"),
		Step5Sentences:           filepath.Join(out, "step5_sentences.json"),

		FinalVocabulary: filepath.Join(out, "final_vocabulary_"+vc.Name+".json"),
		FinalSentences:  filepath.Join(out, "final_sentences_"+vc.Name+".json"),
		FailedWords:     filepath.Join(out, "failed_words.json"),
	}
}
