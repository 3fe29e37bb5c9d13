package pipeline

import (
	"github.com/japanalyze/japanalyze/pkg/conj"
	"github.com/japanalyze/japanalyze/pkg/hint"
	"github.com/japanalyze/japanalyze/pkg/morph"
	"github.com/japanalyze/japanalyze/pkg/segmenter"
)

// DeepResult is the response shape for a single word's full grammatical
// breakdown, grounded on analysis.py's deconjugate_word.
type DeepResult struct {
	Token       Token
	Deconjugation *hint.ConjugationInfo
	Found       bool
}

// DeconjugateVerbWord explains how surface was derived from baseForm as a
// verb, looking up baseForm's dictionary meaning along the way.
func (p *Pipeline) DeconjugateVerbWord(surface, baseForm, reading string, type2 bool) DeepResult {
	meaning, tags := p.lookupMeaning(baseForm, surface, reading)
	base := Token{Surface: surface, Base: baseForm, Reading: reading, POS: "Verb", Meaning: meaning, Tags: tags}
	info, ok := hint.TryDeconjugateVerb(surface, baseForm, type2, meaning)
	return DeepResult{Token: base, Deconjugation: info, Found: ok}
}

// DeconjugateAdjectiveWord explains how surface was derived from baseForm as
// an adjective.
func (p *Pipeline) DeconjugateAdjectiveWord(surface, baseForm, reading string) DeepResult {
	meaning, tags := p.lookupMeaning(baseForm, surface, reading)
	base := Token{Surface: surface, Base: baseForm, Reading: reading, POS: "Adjective", Meaning: meaning, Tags: tags}
	info, ok := hint.TryDeconjugateAdjective(surface, baseForm, meaning)
	return DeepResult{Token: base, Deconjugation: info, Found: ok}
}

// ConjugateVerbForward generates the surface form(s) of verb with the given
// auxiliary chain and terminal conjugation applied, grounded on
// analysis.py's conjugate_word (the verb branch).
func (p *Pipeline) ConjugateVerbForward(verb string, auxiliaries []conj.Auxiliary, final conj.Conjugation, type2 bool) ([]string, error) {
	if len(auxiliaries) == 0 {
		return conj.ConjugateVerb(verb, final, type2)
	}
	return conj.ConjugateAuxiliaries(verb, auxiliaries, final, type2)
}

// ConjugateAdjectiveForward generates the surface form(s) of adjective with
// the given terminal conjugation applied, grounded on analysis.py's
// conjugate_word (the adjective branch).
func (p *Pipeline) ConjugateAdjectiveForward(adjective string, c conj.AdjConjugation, class conj.AdjectiveClass) ([]string, error) {
	return conj.ConjugateAdjectiveTyped(adjective, c, class)
}

// TokenizeRaw exposes the unsegmented morpheme stream for text, with no
// predicate grouping applied, for debugging tooling — grounded on
// analysis.py's tokenize_raw.
func (p *Pipeline) TokenizeRaw(text string, mode segmenter.SplitMode) []morph.Morpheme {
	return p.seg.Tokenize(text, mode)
}
