package history

import "time"

// Sentence is one recorded, analyzed sentence.
type Sentence struct {
	ID         int64
	Text       string
	AnalyzedAt time.Time
}

// VocabularyHit is one distinct base-form word recovered from a sentence,
// with the number of times it occurred in that sentence.
type VocabularyHit struct {
	ID         int64
	SentenceID int64
	BaseForm   string
	Reading    string
	Meaning    string
	Count      int
}
