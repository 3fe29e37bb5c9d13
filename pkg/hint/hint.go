// Package hint generates short natural-English translation hints from a
// dictionary meaning plus an auxiliary chain and terminal conjugation, for
// language learners who want a rough gloss of what a conjugated form means
// without a full grammatical breakdown.
//
// Grounded on original_source/src/services/conjugation/helpers.py's
// generate_translation_hint / generate_adjective_hint / make_past_tense.
// The AUXILIARY_DESCRIPTIONS / CONJUGATION_DESCRIPTIONS tables that
// accompanied helpers.py in conjugation/data.py were not present in the
// retrieval pack, so the short-name/meaning tables below are authored fresh
// from the Auxiliary/Conjugation enum semantics already ported into pkg/conj
// (see DESIGN.md).
package hint

import (
	"strings"

	"github.com/japanalyze/japanalyze/pkg/conj"
	"github.com/japanalyze/japanalyze/pkg/phrase"

	inflect "github.com/cv/go-inflect/v2"
)

// AuxiliaryInfo is a (short name, meaning) pair describing one auxiliary.
type AuxiliaryInfo struct {
	ShortName string
	Meaning   string
}

var auxiliaryDescriptions = map[conj.Auxiliary]AuxiliaryInfo{
	conj.Potential:                 {"potential", "can do"},
	conj.Masu:                      {"masu", "polite form"},
	conj.Nai:                       {"nai", "negative"},
	conj.Tai:                       {"tai", "want to"},
	conj.Tagaru:                    {"tagaru", "shows signs of wanting to"},
	conj.Hoshii:                    {"hoshii", "want (something to happen)"},
	conj.Rashii:                    {"rashii", "seems/apparently"},
	conj.SoudaHearsay:              {"souda (hearsay)", "I hear that"},
	conj.SoudaConjecture:           {"souda (conjecture)", "looks like"},
	conj.SeruSaseru:                {"seru/saseru", "make/let (causative)"},
	conj.ShortenedCausative:        {"shortened causative", "make/let (causative)"},
	conj.ReruRareru:                {"reru/rareru", "passive/potential"},
	conj.CausativePassive:          {"causative passive", "be made to"},
	conj.ShortenedCausativePassive: {"shortened causative passive", "be made to"},
	conj.Ageru:                     {"ageru", "do for (someone)"},
	conj.Sashiageru:                {"sashiageru", "do for (someone, humble)"},
	conj.Yaru:                      {"yaru", "do for (someone lower)"},
	conj.Morau:                     {"morau", "have done for me"},
	conj.Itadaku:                   {"itadaku", "have done for me (humble)"},
	conj.Kureru:                    {"kureru", "do for me"},
	conj.Kudasaru:                  {"kudasaru", "do for me (polite)"},
	conj.TeIru:                     {"te iru", "is doing / ongoing state"},
	conj.TeAru:                     {"te aru", "has been done"},
	conj.Miru:                      {"miru", "try doing"},
	conj.Iku:                       {"iku", "go on doing"},
	conj.Kuru:                      {"kuru", "come to do / start doing"},
	conj.Oku:                       {"oku", "do in advance"},
	conj.Shimau:                    {"shimau", "end up doing"},
	conj.TeOru:                     {"te oru", "is doing (humble)"},
	conj.Sugiru:                    {"sugiru", "too much"},
	conj.Yasui:                     {"yasui", "easy to"},
	conj.Nikui:                     {"nikui", "hard to"},
	conj.Hajimeru:                  {"hajimeru", "start doing"},
	conj.Owaru:                     {"owaru", "finish doing"},
	conj.Tsuzukeru:                 {"tsuzukeru", "keep doing"},
	conj.Dasu:                      {"dasu", "suddenly start doing"},
	conj.Garu:                      {"garu", "shows signs of"},
	conj.SouAppearance:             {"sou (appearance)", "looks like it will"},
}

// conjugationDescriptions gives a (short name, meaning) pair describing each
// terminal conjugation.
var conjugationDescriptions = map[conj.Conjugation]AuxiliaryInfo{
	conj.Negative:    {"negative", "not"},
	conj.Conjunctive: {"conjunctive", "stem form"},
	conj.Dictionary:  {"dictionary", "dictionary form"},
	conj.Conditional: {"conditional", "if/when"},
	conj.Imperative:  {"imperative", "command"},
	conj.Volitional:  {"volitional", "let's/shall"},
	conj.Te:          {"te", "connective"},
	conj.Ta:          {"ta", "past"},
	conj.Tara:        {"tara", "if/when (past conditional)"},
	conj.Tari:        {"tari", "doing things like"},
	conj.Zu:          {"zu", "without doing (negative)"},
	conj.Nu:          {"nu", "without doing (archaic negative)"},
}

// GetAuxiliaryInfo returns the (short name, meaning) pair for aux, falling
// back to its lowercase enum name with an empty meaning if undescribed.
func GetAuxiliaryInfo(aux conj.Auxiliary) AuxiliaryInfo {
	if info, ok := auxiliaryDescriptions[aux]; ok {
		return info
	}
	return AuxiliaryInfo{ShortName: aux.String()}
}

// GetConjugationInfo returns the (short name, meaning) pair for c.
func GetConjugationInfo(c conj.Conjugation) AuxiliaryInfo {
	if info, ok := conjugationDescriptions[c]; ok {
		return info
	}
	return AuxiliaryInfo{ShortName: c.String()}
}

// firstMeaning extracts the first "; " or ", " separated gloss from a
// dictionary meaning string and strips a leading "to ".
func firstMeaning(meaning string) string {
	m := meaning
	if i := strings.IndexAny(m, ";,"); i >= 0 {
		m = m[:i]
	}
	m = strings.TrimSpace(m)
	return strings.TrimPrefix(m, "to ")
}

// MakePastTense converts an English verb or verb phrase to simple past
// tense, delegating the irregular-verb heavy lifting to go-inflect and
// falling back to the regular -ed suffix rule when that call can't produce
// a confident result (mirrors make_past_tense/_inflect_past/
// _make_regular_past in the original).
func MakePastTense(verb string) string {
	v := strings.ToLower(strings.TrimSpace(verb))
	if v == "" {
		return v
	}

	if strings.HasPrefix(v, "to ") {
		base := firstWord(v[3:])
		return inflectPast(base)
	}
	if strings.HasPrefix(v, "not ") {
		base := firstWord(v[4:])
		return "didn't " + base
	}

	return inflectPast(firstWord(v))
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

// inflectPast calls go-inflect's past-tense inflector, recovering from any
// panic the third-party engine might raise on unexpected input, and falls
// back to the regular suffix rule whenever the library can't help.
func inflectPast(verb string) (result string) {
	result = regularPast(verb)
	if verb == "" {
		return result
	}
	defer func() {
		if r := recover(); r != nil {
			result = regularPast(verb)
		}
	}()
	if got := inflect.PastTense(verb); got != "" {
		return got
	}
	return regularPast(verb)
}

func regularPast(verb string) string {
	switch {
	case strings.HasSuffix(verb, "e"):
		return verb + "d"
	case strings.HasSuffix(verb, "y") && len(verb) > 1 && !isVowel(rune(verb[len(verb)-2])):
		return verb[:len(verb)-1] + "ied"
	default:
		return verb + "ed"
	}
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// GenerateTranslationHint builds a natural English hint for a verb's
// conjugated form, walking the auxiliary chain then applying the terminal
// conjugation, exactly mirroring generate_translation_hint's match/case
// ladder. type2 disambiguates ReruRareru: ichidan verbs read it as
// potential-or-passive (defaults to potential here), godan verbs read it as
// passive only.
func GenerateTranslationHint(baseMeaning string, auxiliaries []conj.Auxiliary, conjugation conj.Conjugation, type2 bool) string {
	if baseMeaning == "" {
		return ""
	}

	hintText := firstMeaning(baseMeaning)
	for _, aux := range auxiliaries {
		switch aux {
		case conj.Potential:
			hintText = "can " + hintText
		case conj.ReruRareru:
			if type2 {
				hintText = "can " + hintText
			} else {
				hintText = "is " + hintText
			}
		case conj.Nai:
			hintText = "not " + hintText
		case conj.Tai:
			hintText = "want to " + hintText
		case conj.TeIru:
			hintText = "is " + hintText + "ing"
		case conj.SeruSaseru, conj.ShortenedCausative:
			hintText = "make/let " + hintText
		case conj.Miru:
			hintText = "try to " + hintText
		case conj.Shimau:
			hintText = "end up " + hintText + "ing"
		case conj.Masu:
			// polite register only, no hint change
		}
	}

	switch conjugation {
	case conj.Negative, conj.Zu, conj.Nu:
		if strings.HasPrefix(hintText, "can ") {
			hintText = strings.Replace(hintText, "can ", "cannot ", 1)
		} else {
			hintText = "not " + hintText
		}
	case conj.Ta:
		switch {
		case strings.HasSuffix(hintText, "ing"):
			// leave -ing form alone
		case strings.Contains(hintText, "can ") && strings.Contains(hintText, "not"):
			verb := strings.Replace(strings.Replace(hintText, "not ", "", 1), "can ", "", 1)
			hintText = "couldn't " + verb
		case strings.Contains(hintText, "not"):
			verb := strings.Replace(strings.Replace(hintText, "not ", "", 1), "can ", "", 1)
			hintText = "didn't " + verb
		case strings.Contains(hintText, "can "):
			hintText = "could " + strings.Replace(hintText, "can ", "", 1)
		default:
			hintText = MakePastTense(hintText)
		}
	case conj.Te:
		hintText = hintText + " and..."
	case conj.Conditional:
		hintText = "if " + hintText
	case conj.Tara:
		if strings.Contains(hintText, "not") {
			hintText = "if not " + strings.Replace(hintText, "not ", "", 1)
		} else {
			hintText = "when/if " + MakePastTense(hintText)
		}
	case conj.Volitional:
		hintText = "let's " + hintText
	case conj.Imperative:
		hintText = hintText + "!"
	}

	return hintText
}

// GenerateAdjectiveHint builds a natural English hint for an adjective's
// conjugated form, mirroring generate_adjective_hint.
func GenerateAdjectiveHint(baseMeaning string, conjugation conj.AdjConjugation) string {
	if baseMeaning == "" {
		return ""
	}
	hintText := firstMeaning(baseMeaning)

	switch conjugation {
	case conj.AdjPresent:
		hintText = "is " + hintText
	case conj.AdjPrenominal:
		// attributive, unchanged
	case conj.AdjNegative:
		hintText = "is not " + hintText
	case conj.AdjPast:
		hintText = "was " + hintText
	case conj.AdjNegativePast:
		hintText = "was not " + hintText
	case conj.AdjTe:
		hintText = "is " + hintText + " and..."
	case conj.AdjAdverbial:
		hintText = hintText + "ly"
	case conj.AdjConditional:
		hintText = "if " + hintText
	case conj.AdjTaraConditional:
		hintText = "if was " + hintText
	case conj.AdjTari:
		hintText = "was " + hintText + " and..."
	case conj.AdjNoun:
		hintText = hintText + "ness"
	case conj.AdjStemSou:
		hintText = "looks " + hintText
	case conj.AdjStemNegativeSou:
		hintText = "doesn't look " + hintText
	}

	return hintText
}

// PhraseHint formats a catalogue entry's gloss together with a verb's
// meaning into a short hint, e.g. "must eat", mirroring the heuristic
// phrase-translation construction in try_deconjugate_verb.
func PhraseHint(entry phrase.Entry, baseMeaning string) string {
	mainMeaning := firstMeaning(baseMeaning)
	cleanPhrase := entry.Gloss
	if i := strings.IndexAny(cleanPhrase, ";"); i >= 0 {
		cleanPhrase = strings.TrimSpace(cleanPhrase[:i])
	}
	if mainMeaning == "" {
		return cleanPhrase
	}
	return cleanPhrase + " " + mainMeaning
}
