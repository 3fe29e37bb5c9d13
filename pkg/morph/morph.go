// Package morph defines the Morpheme interface that decouples the
// conjugation, grouping, and pipeline packages from any one tokenizer
// implementation. pkg/segmenter is the production implementation, backed by
// kagome; tests use a plain struct implementation.
package morph

// Morpheme is a single segmented unit of text as produced by an external
// tokenizer. Implementations are not required to fill every field for every
// morpheme (e.g. punctuation has no reading); callers must tolerate zero
// values.
type Morpheme interface {
	// Surface is the text exactly as it appears in the input.
	Surface() string
	// DictionaryForm is the lemma/base form the tokenizer recovered, or
	// Surface() if none is known.
	DictionaryForm() string
	// Reading is the katakana pronunciation, or "" if unknown.
	Reading() string
	// PartOfSpeech returns the tokenizer's part-of-speech tag hierarchy,
	// e.g. ["動詞", "自立", "*", "*"].
	PartOfSpeech() []string
	// InflectionType and InflectionForm surface the tokenizer's own
	// conjugation-type/form tags (e.g. "五段・カ行イ音便", "基本形"), used as a
	// hint by the conjugation engine but never trusted blindly.
	InflectionType() string
	InflectionForm() string
}

// Plain is a simple concrete Morpheme used by tests and by any collaborator
// that already has the six fields in hand.
type Plain struct {
	Surf        string
	Dict        string
	Read        string
	POS         []string
	InflType    string
	InflForm    string
}

func (p Plain) Surface() string          { return p.Surf }
func (p Plain) DictionaryForm() string {
	if p.Dict == "" {
		return p.Surf
	}
	return p.Dict
}
func (p Plain) Reading() string          { return p.Read }
func (p Plain) PartOfSpeech() []string   { return p.POS }
func (p Plain) InflectionType() string   { return p.InflType }
func (p Plain) InflectionForm() string   { return p.InflForm }

// Primary returns the first part-of-speech tag, or "" if none.
func Primary(m Morpheme) string {
	pos := m.PartOfSpeech()
	if len(pos) == 0 {
		return ""
	}
	return pos[0]
}
