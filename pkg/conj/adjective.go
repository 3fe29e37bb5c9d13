package conj

import (
	"fmt"
	"strings"
)

// AdjConjugation is an adjective conjugation form, grounded on adjective.py's
// AdjConjugation enum.
type AdjConjugation int

const (
	AdjPresent AdjConjugation = iota
	AdjPrenominal
	AdjNegative
	AdjPast
	AdjNegativePast
	AdjTe
	AdjAdverbial
	AdjConditional
	AdjTaraConditional
	AdjTari
	AdjNoun
	AdjStemSou
	AdjStemNegativeSou
	// AdjPlain is used internally where a verb-hosted adjective-like
	// auxiliary (やすい/にくい) needs a present-tense form and the verb side
	// has no equivalent conjugation to map from.
	AdjPlain = AdjPresent
)

var adjConjugationNames = map[AdjConjugation]string{
	AdjPresent:         "present",
	AdjPrenominal:      "prenominal",
	AdjNegative:        "negative",
	AdjPast:            "past",
	AdjNegativePast:    "negative_past",
	AdjTe:              "conjunctive_te",
	AdjAdverbial:       "adverbial",
	AdjConditional:     "conditional",
	AdjTaraConditional: "tara_conditional",
	AdjTari:            "tari",
	AdjNoun:            "noun",
	AdjStemSou:         "stem_sou",
	AdjStemNegativeSou: "stem_negative_sou",
}

func (c AdjConjugation) String() string {
	if n, ok := adjConjugationNames[c]; ok {
		return n
	}
	return "unknown"
}

// AllAdjConjugations lists every AdjConjugation value, used by deconjugation
// to brute-force match a surface form against each candidate form.
var AllAdjConjugations = []AdjConjugation{
	AdjPresent, AdjPrenominal, AdjNegative, AdjPast, AdjNegativePast,
	AdjTe, AdjAdverbial, AdjConditional, AdjTaraConditional, AdjTari,
	AdjNoun, AdjStemSou, AdjStemNegativeSou,
}

// AdjectiveClass distinguishes i-adjectives (形容詞) from na-adjectives
// (形容動詞).
type AdjectiveClass int

const (
	IAdjective AdjectiveClass = iota
	NaAdjective
)

func conjugateIAdjective(stem string, c AdjConjugation, addSa bool) ([]string, error) {
	switch c {
	case AdjPresent, AdjPrenominal:
		return []string{stem + "い"}, nil
	case AdjNegative:
		return []string{stem + "くない"}, nil
	case AdjPast:
		return []string{stem + "かった"}, nil
	case AdjNegativePast:
		return []string{stem + "くなかった"}, nil
	case AdjTe:
		return []string{stem + "く", stem + "くて"}, nil
	case AdjAdverbial:
		return []string{stem + "く"}, nil
	case AdjConditional:
		return []string{stem + "ければ"}, nil
	case AdjTaraConditional:
		return []string{stem + "かったら"}, nil
	case AdjTari:
		return []string{stem + "かったり"}, nil
	case AdjNoun:
		return []string{stem + "さ"}, nil
	case AdjStemSou:
		if addSa {
			return []string{stem + "さそう"}, nil
		}
		return []string{stem + "そう"}, nil
	case AdjStemNegativeSou:
		return []string{stem + "くなさそう"}, nil
	default:
		return nil, fmt.Errorf("%w: i-adjective %s", ErrUnknownConjugation, c)
	}
}

// ConjugateAdjective conjugates a dictionary-form adjective to the given
// form, direct port of adjective.py's conjugate_adjective, including the
// いい/良い/よい irregular stem and the -ない-ending さ-insertion rule.
func ConjugateAdjective(adjective string, c AdjConjugation) ([]string, error) {
	return conjugateAdjectiveTyped(adjective, c, IAdjective)
}

// ConjugateAdjectiveTyped conjugates with an explicit adjective class.
func ConjugateAdjectiveTyped(adjective string, c AdjConjugation, class AdjectiveClass) ([]string, error) {
	return conjugateAdjectiveTyped(adjective, c, class)
}

func conjugateAdjectiveTyped(adjective string, c AdjConjugation, class AdjectiveClass) ([]string, error) {
	if class == NaAdjective {
		return naAdjectiveForms(adjective, c)
	}

	var stem string
	addSa := false

	switch adjective {
	case "いい", "良い", "よい":
		if strings.HasPrefix(adjective, "良") {
			stem = "良"
		} else {
			stem = "よ"
		}
		addSa = true
	default:
		runes := []rune(adjective)
		if strings.HasSuffix(adjective, "ない") {
			stem = string(runes[:len(runes)-1])
			addSa = true
		} else {
			stem = string(runes[:len(runes)-1])
		}
	}

	return conjugateIAdjective(stem, c, addSa)
}

func naAdjectiveForms(base string, c AdjConjugation) ([]string, error) {
	switch c {
	case AdjPrenominal:
		return []string{base + "な"}, nil
	case AdjPresent:
		return []string{base + "だ", base + "です", base + "でございます"}, nil
	case AdjNegative:
		return []string{base + "ではない", base + "でない", base + "じゃない", base + "ではありません"}, nil
	case AdjPast:
		return []string{base + "だった", base + "でした"}, nil
	case AdjNegativePast:
		return []string{base + "ではなかった", base + "でなかった", base + "じゃなかった", base + "ではありませんでした"}, nil
	case AdjTe:
		return []string{base + "で"}, nil
	case AdjAdverbial:
		return []string{base + "に"}, nil
	case AdjConditional:
		return []string{base + "なら", base + "ならば"}, nil
	case AdjTaraConditional:
		return []string{base + "だったら"}, nil
	case AdjTari:
		return []string{base + "だったり", base + "でしたり"}, nil
	case AdjNoun:
		return []string{base + "さ"}, nil
	case AdjStemSou:
		return []string{base + "そう"}, nil
	case AdjStemNegativeSou:
		return []string{base + "じゃなさそう"}, nil
	default:
		return nil, fmt.Errorf("%w: na-adjective %s", ErrUnknownConjugation, c)
	}
}

// AdjDeconjugated is a single matching candidate conjugation found by
// DeconjugateAdjective.
type AdjDeconjugated struct {
	Conjugation AdjConjugation
	Result      []string
}

// DeconjugateAdjective brute-force matches conjugated against every
// conjugation of dictionaryForm, returning every form whose output set
// contains the surface string, grounded on adjective.py's
// deconjugate_adjective.
func DeconjugateAdjective(conjugated, dictionaryForm string, class AdjectiveClass) []AdjDeconjugated {
	var hits []AdjDeconjugated
	for _, c := range AllAdjConjugations {
		forms, err := conjugateAdjectiveTyped(dictionaryForm, c, class)
		if err != nil {
			continue
		}
		for _, f := range forms {
			if f == conjugated {
				hits = append(hits, AdjDeconjugated{Conjugation: c, Result: forms})
				break
			}
		}
	}
	return hits
}

// GetAdjectiveStem returns the adjective's bare stem (高 from 高い, 静か
// unchanged for na-adjectives), grounded on adjective.py's
// get_adjective_stem.
func GetAdjectiveStem(adjective string, class AdjectiveClass) string {
	if class == NaAdjective {
		return adjective
	}
	switch adjective {
	case "いい", "良い", "よい":
		if strings.HasPrefix(adjective, "良") {
			return "良"
		}
		return "よ"
	default:
		runes := []rune(adjective)
		if len(runes) == 0 {
			return adjective
		}
		return string(runes[:len(runes)-1])
	}
}

// naAdjectiveExceptions lists common na-adjectives that end in い, which
// would otherwise be misidentified as i-adjectives by the suffix heuristic,
// grounded on adjective.py's identify_adjective_type na_adj_ending_i set.
var naAdjectiveExceptions = map[string]bool{
	"きれい": true, "綺麗": true, "嫌い": true, "きらい": true,
	"有名": true, "ゆうめい": true,
}

// IdentifyAdjectiveType heuristically classifies an adjective's dictionary
// form. It is a heuristic only — spec.md and adjective.py both note that
// JMdict's own part-of-speech tags are the authoritative source when
// available; this is a fallback for dictionary misses.
func IdentifyAdjectiveType(adjective string) (AdjectiveClass, bool) {
	if naAdjectiveExceptions[adjective] {
		return NaAdjective, true
	}
	if strings.HasSuffix(adjective, "い") {
		return IAdjective, true
	}
	if strings.HasSuffix(adjective, "的") || strings.HasSuffix(adjective, "な") {
		return NaAdjective, true
	}
	return IAdjective, false
}
