package hint

import (
	"strings"

	"github.com/japanalyze/japanalyze/pkg/conj"
	"github.com/japanalyze/japanalyze/pkg/phrase"
)

// ConjugationLayer describes a single auxiliary or terminal conjugation
// applied to a word, one entry per layer in the chain that produced the
// surface form.
type ConjugationLayer struct {
	Form    string
	Type    string
	English string
	Meaning string
	// Polite marks a layer that shifts the word into polite register (only
	// the Masu auxiliary sets it; Desu-hosted forms are not marked), resolving the
	// politeness-register open question by surfacing it per layer rather
	// than inventing a separate register enum.
	Polite bool
}

// ConjugationInfo is the full grammatical breakdown of a conjugated word: the
// chain of layers that were applied, a short human summary, and a natural
// English translation hint.
type ConjugationInfo struct {
	Chain          []ConjugationLayer
	Summary        string
	TranslationHint string
	// Polite is true if any layer in Chain is a politeness marker.
	Polite bool
}

// BuildConjugationInfo assembles a ConjugationInfo from a deconjugation
// result's auxiliary chain and terminal conjugation, grounded on
// build_conjugation_info.
func BuildConjugationInfo(auxiliaries []conj.Auxiliary, conjugation conj.Conjugation) ConjugationInfo {
	var layers []ConjugationLayer
	var summaryParts []string
	polite := false

	for _, aux := range auxiliaries {
		info := GetAuxiliaryInfo(aux)
		isPolite := aux == conj.Masu
		polite = polite || isPolite
		layers = append(layers, ConjugationLayer{
			Type:    aux.String(),
			English: info.ShortName,
			Meaning: info.Meaning,
			Polite:  isPolite,
		})
		summaryParts = append(summaryParts, info.ShortName)
	}

	if conjugation != conj.Dictionary {
		info := GetConjugationInfo(conjugation)
		layers = append(layers, ConjugationLayer{
			Type:    conjugation.String(),
			English: info.ShortName,
			Meaning: info.Meaning,
		})
		summaryParts = append(summaryParts, info.ShortName)
	}

	summary := "dictionary form"
	if len(summaryParts) > 0 {
		summary = strings.Join(summaryParts, " + ")
	}

	return ConjugationInfo{
		Chain:   layers,
		Summary: summary,
		Polite:  polite,
	}
}

// TryDeconjugateVerb attempts to explain how surface was derived from
// baseForm: first checking the phrase catalogue for a compound ending
// (なければならない and friends), then falling back to the brute-force
// auxiliary/conjugation search in pkg/conj. Returns (nil, false) when
// surface equals baseForm (nothing to explain) or no explanation is found,
// grounded on try_deconjugate_verb.
func TryDeconjugateVerb(surface, baseForm string, type2 bool, meaning string) (*ConjugationInfo, bool) {
	if surface == baseForm {
		return nil, false
	}

	if entry, _, ok := phrase.MatchSuffix(surface); ok {
		h := PhraseHint(entry, meaning)
		info := ConjugationInfo{
			Chain: []ConjugationLayer{{
				Type:    "phrase",
				English: entry.Gloss,
				Meaning: entry.Gloss,
			}},
			Summary:         entry.Gloss,
			TranslationHint: h,
		}
		return &info, true
	}

	results := conj.DeconjugateVerb(surface, baseForm, type2, 2)
	if len(results) == 0 {
		return nil, false
	}
	r := results[0]
	info := BuildConjugationInfo(r.Auxiliaries, r.Conjugation)
	info.TranslationHint = GenerateTranslationHint(meaning, r.Auxiliaries, r.Conjugation, type2)
	return &info, true
}

// TryDeconjugateAdjective attempts to explain how surface was derived from
// baseForm for an i-adjective or na-adjective, grounded on
// try_deconjugate_adjective. It guesses the adjective's class via
// conj.IdentifyAdjectiveType when the caller doesn't already know it.
func TryDeconjugateAdjective(surface, baseForm string, meaning string) (*ConjugationInfo, bool) {
	if surface == baseForm {
		return nil, false
	}

	class, known := conj.IdentifyAdjectiveType(baseForm)
	if !known {
		class = conj.IAdjective
	}

	results := conj.DeconjugateAdjective(surface, baseForm, class)
	if len(results) == 0 {
		return nil, false
	}
	best := results[0]
	layer := ConjugationLayer{
		Type:    best.Conjugation.String(),
		English: strings.ReplaceAll(best.Conjugation.String(), "_", " "),
	}
	info := ConjugationInfo{
		Chain:           []ConjugationLayer{layer},
		Summary:         layer.English,
		TranslationHint: GenerateAdjectiveHint(meaning, best.Conjugation),
	}
	return &info, true
}
