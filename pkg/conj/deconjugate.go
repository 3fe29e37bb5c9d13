package conj

// AllConjugations lists every terminal Conjugation, used to brute-force
// search for a matching conjugation at each auxiliary-chain depth.
var AllConjugations = []Conjugation{
	Negative, Conjunctive, Dictionary, Conditional, Imperative,
	Volitional, Te, Ta, Tara, Tari, Zu, Nu,
}

// AllAuxiliaries lists every Auxiliary value.
var AllAuxiliaries = []Auxiliary{
	Potential, Masu, Nai, Tai, Tagaru, Hoshii, Rashii, SoudaHearsay,
	SoudaConjecture, SeruSaseru, ShortenedCausative, ReruRareru,
	CausativePassive, ShortenedCausativePassive, Ageru, Sashiageru, Yaru,
	Morau, Itadaku, Kureru, Kudasaru, TeIru, TeAru, Miru, Iku, Kuru, Oku,
	Shimau, TeOru, Sugiru, Yasui, Nikui, Hajimeru, Owaru, Tsuzukeru, Dasu,
	Garu, SouAppearance,
}

// penultimateAuxiliaries are auxiliaries that can host a further
// (depth2FinalAuxiliaries) auxiliary after them in a depth-2 chain, grounded on verb.py's
// deconjugate_verb's `penultimates` list.
var penultimateAuxiliaries = []Auxiliary{
	Ageru, Sashiageru, Yaru, Morau, Itadaku, Kureru, Kudasaru, Miru, Iku,
	Kuru, Oku, Shimau, TeIru, TeAru, TeOru, Potential, ReruRareru, SeruSaseru,
}

// depth2FinalAuxiliaries are the auxiliaries allowed as the final slot of a
// two-auxiliary chain, grounded on verb.py's `depth2_finals` list.
var depth2FinalAuxiliaries = []Auxiliary{
	Masu, SoudaConjecture, SoudaHearsay, TeIru, Tai, Nai, Yaru, Miru, Oku, Shimau,
}

// antepenultimateAuxiliaries are auxiliaries allowed in the first slot of a
// three-auxiliary chain, grounded on verb.py's `antepenultimates` list.
var antepenultimateAuxiliaries = []Auxiliary{SeruSaseru, ReruRareru, Itadaku}

// depth3FinalAuxiliaries are the auxiliaries allowed as the final slot of a
// three-auxiliary chain, grounded on verb.py's `depth3_finals` list.
var depth3FinalAuxiliaries = []Auxiliary{Masu}

// VerbDeconjugated is one candidate reconstruction of how conjugated was
// derived from dictionaryForm.
type VerbDeconjugated struct {
	Auxiliaries []Auxiliary
	Conjugation Conjugation
	Result      []string
}

func containsSurface(forms []string, surface string) bool {
	for _, f := range forms {
		if f == surface {
			return true
		}
	}
	return false
}

// DeconjugateVerb searches, in increasing auxiliary-chain depth up to
// maxAuxDepth (clamped to [0,3]), for every (auxiliary chain, terminal
// conjugation) pair whose generated surface set contains conjugated. This is
// a direct structural port of verb.py's deconjugate_verb.
func DeconjugateVerb(conjugated, dictionaryForm string, type2 bool, maxAuxDepth int) []VerbDeconjugated {
	var hits []VerbDeconjugated

	// Depth 0: direct conjugations, no auxiliary.
	for _, c := range AllConjugations {
		result, err := ConjugateVerb(dictionaryForm, c, type2)
		if err != nil {
			continue
		}
		if containsSurface(result, conjugated) {
			hits = append(hits, VerbDeconjugated{Conjugation: c, Result: result})
		}
	}
	if maxAuxDepth < 1 {
		return hits
	}

	// Depth 1: single auxiliary.
	for _, aux := range AllAuxiliaries {
		for _, c := range AllConjugations {
			result, err := ConjugateAuxiliary(dictionaryForm, aux, c, type2)
			if err != nil {
				continue
			}
			if containsSurface(result, conjugated) {
				hits = append(hits, VerbDeconjugated{
					Auxiliaries: []Auxiliary{aux},
					Conjugation: c,
					Result:      result,
				})
			}
		}
	}
	if maxAuxDepth < 2 {
		return hits
	}

	// Depth 2: penultimate + depth-2 final-slot auxiliary.
	for _, penultimate := range penultimateAuxiliaries {
		for _, final := range depth2FinalAuxiliaries {
			for _, c := range AllConjugations {
				auxs := []Auxiliary{penultimate, final}
				result, err := ConjugateAuxiliaries(dictionaryForm, auxs, c, type2)
				if err != nil {
					continue
				}
				if containsSurface(result, conjugated) {
					hits = append(hits, VerbDeconjugated{
						Auxiliaries: auxs,
						Conjugation: c,
						Result:      result,
					})
				}
			}
		}
	}
	if maxAuxDepth < 3 {
		return hits
	}

	// Depth 3: antepenultimate + penultimate + final-only auxiliary.
	for _, ante := range antepenultimateAuxiliaries {
		for _, penultimate := range penultimateAuxiliaries {
			for _, final := range depth3FinalAuxiliaries {
				for _, c := range AllConjugations {
					auxs := []Auxiliary{ante, penultimate, final}
					result, err := ConjugateAuxiliaries(dictionaryForm, auxs, c, type2)
					if err != nil {
						continue
					}
					if containsSurface(result, conjugated) {
						hits = append(hits, VerbDeconjugated{
							Auxiliaries: auxs,
							Conjugation: c,
							Result:      result,
						})
					}
				}
			}
		}
	}

	return hits
}

// IdentifyVerbType heuristically guesses whether verb is ichidan (Type II),
// grounded on verb.py's identify_verb_type. Like its Python counterpart this
// is a fallback for when JMdict's own part-of-speech tags are unavailable.
func IdentifyVerbType(verb string) bool {
	runes := []rune(verb)
	if len(runes) == 0 || runes[len(runes)-1] != 'る' {
		return false
	}
	if len(runes) < 2 {
		return false
	}
	preRu := runes[len(runes)-2]
	const ichidanPrecedents = "いきしちにひみりぎじびぴえけせてねへめれげぜべぺ"
	for _, r := range ichidanPrecedents {
		if r == preRu {
			return true
		}
	}
	return false
}
