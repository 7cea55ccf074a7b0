package domain

// Sentence is one selected example verse as stored in the shared sentence
// store, keyed by its location ID.
type Sentence struct {
	Text string `json:"text"`
	Ref  string `json:"ref"`
	Book string `json:"book"`
}

// TranslatedSentence is a sentence joined with its Korean corpus verse.
// Chapter and Verse are nil when the reference could not be parsed;
// Korean is an empty string when the verse has no Korean counterpart.
type TranslatedSentence struct {
	Text    string `json:"text"`
	Ref     string `json:"ref"`
	Book    string `json:"book"`
	Chapter *int   `json:"chapter"`
	Verse   *int   `json:"verse"`
	Korean  string `json:"korean"`
}
