// Package conj implements the verb and adjective conjugation/deconjugation
// engine: closed-form generation of a surface form from a dictionary form
// plus an auxiliary chain and terminal conjugation, and the reverse
// brute-force search that recovers candidate chains from a surface form.
package conj

import (
	"errors"
	"fmt"
	"strings"

	"github.com/japanalyze/japanalyze/pkg/kana"
)

// Conjugation is a terminal verb/adjective conjugation form (活用形).
type Conjugation int

const (
	Negative Conjugation = iota
	Conjunctive
	Dictionary
	Conditional
	Imperative
	Volitional
	Te
	Ta
	Tara
	Tari
	Zu
	Nu
)

func (c Conjugation) String() string {
	switch c {
	case Negative:
		return "negative"
	case Conjunctive:
		return "conjunctive"
	case Dictionary:
		return "dictionary"
	case Conditional:
		return "conditional"
	case Imperative:
		return "imperative"
	case Volitional:
		return "volitional"
	case Te:
		return "te"
	case Ta:
		return "ta"
	case Tara:
		return "tara"
	case Tari:
		return "tari"
	case Zu:
		return "zu"
	case Nu:
		return "nu"
	default:
		return "unknown"
	}
}

// Auxiliary is an auxiliary verb construction (助動詞) that can be chained
// onto a verb before the terminal conjugation is applied.
type Auxiliary int

const (
	Potential Auxiliary = iota
	Masu
	Nai
	Tai
	Tagaru
	Hoshii
	Rashii
	SoudaHearsay
	SoudaConjecture
	SeruSaseru
	ShortenedCausative
	ReruRareru
	CausativePassive
	ShortenedCausativePassive
	Ageru
	Sashiageru
	Yaru
	Morau
	Itadaku
	Kureru
	Kudasaru
	TeIru
	TeAru
	Miru
	Iku
	Kuru
	Oku
	Shimau
	TeOru
	Sugiru
	Yasui
	Nikui
	Hajimeru
	Owaru
	Tsuzukeru
	Dasu
	Garu
	SouAppearance
)

var auxiliaryNames = map[Auxiliary]string{
	Potential:                 "potential",
	Masu:                      "masu",
	Nai:                       "nai",
	Tai:                       "tai",
	Tagaru:                    "tagaru",
	Hoshii:                    "hoshii",
	Rashii:                    "rashii",
	SoudaHearsay:              "souda_hearsay",
	SoudaConjecture:           "souda_conjecture",
	SeruSaseru:                "seru_saseru",
	ShortenedCausative:        "shortened_causative",
	ReruRareru:                "reru_rareru",
	CausativePassive:          "causative_passive",
	ShortenedCausativePassive: "shortened_causative_passive",
	Ageru:                     "ageru",
	Sashiageru:                "sashiageru",
	Yaru:                      "yaru",
	Morau:                     "morau",
	Itadaku:                   "itadaku",
	Kureru:                    "kureru",
	Kudasaru:                  "kudasaru",
	TeIru:                     "te_iru",
	TeAru:                     "te_aru",
	Miru:                      "miru",
	Iku:                       "iku",
	Kuru:                      "kuru",
	Oku:                       "oku",
	Shimau:                    "shimau",
	TeOru:                     "te_oru",
	Sugiru:                    "sugiru",
	Yasui:                     "yasui",
	Nikui:                     "nikui",
	Hajimeru:                  "hajimeru",
	Owaru:                     "owaru",
	Tsuzukeru:                 "tsuzukeru",
	Dasu:                      "dasu",
	Garu:                      "garu",
	SouAppearance:             "sou_appearance",
}

func (a Auxiliary) String() string {
	if n, ok := auxiliaryNames[a]; ok {
		return n
	}
	return "unknown"
}

// Errors returned by the conjugation engine. Per the error-handling policy,
// these are ordinary values for callers to degrade gracefully on, never
// panics.
var (
	ErrUnknownConjugation     = errors.New("conj: unhandled conjugation for this verb/auxiliary")
	ErrInvalidAuxiliaryChain  = errors.New("conj: invalid auxiliary chain")
	ErrUnknownHiraganaBase    = errors.New("conj: unknown hiragana base")
)

func lookupRow(base string) (kana.GodanRow, error) {
	row, ok := kana.GodanRows[base]
	if !ok {
		return kana.GodanRow{}, fmt.Errorf("%w: %q", ErrUnknownHiraganaBase, base)
	}
	return row, nil
}

// specialCases overrides isolated irregular forms, grounded on verb.py's
// _SPECIAL_CASES table.
var specialCases = map[string]map[Conjugation]string{
	"ある": {Negative: ""},
	"ござる": {Conjunctive: "ござい"},
	"いらっしゃる": {
		Conjunctive: "いらっしゃい",
		Conditional: "いらっしゃい",
		Imperative:  "いらっしゃい",
	},
}

// conjToRowIndex maps a terminal conjugation to its godan row column, for
// the conjugations that are a single-vowel-row lookup away from the
// dictionary form's final kana.
var conjToRowIndex = map[Conjugation]int{
	Negative:    0,
	Zu:          0,
	Nu:          0,
	Conjunctive: 1,
	Dictionary:  2,
	Conditional: 3,
	Volitional:  4,
}

// ConjugateType1 conjugates a godan (Type I) verb's strict stem, without
// adding the grammatical suffix (ない/ます/ば/う) that ConjugateVerb adds.
func ConjugateType1(verb string, c Conjugation) ([]string, error) {
	switch verb {
	case "する":
		return conjugateSuru(c)
	case "くる", "来る":
		return conjugateKuru(verb, c)
	case "だ":
		return conjugateDa(c)
	case "です":
		return conjugateDesu(c)
	}
	if strings.HasSuffix(verb, "くださる") {
		switch c {
		case Dictionary:
			return []string{verb}, nil
		case Conjunctive:
			return []string{strings.TrimSuffix(verb, "さる") + "さい"}, nil
		default:
			return nil, fmt.Errorf("%w: -kudasaru %s", ErrUnknownConjugation, c)
		}
	}
	if overrides, ok := specialCases[verb]; ok {
		if form, ok := overrides[c]; ok {
			return []string{form}, nil
		}
	}

	runes := []rune(verb)
	head := string(runes[:len(runes)-1])
	tail := string(runes[len(runes)-1:])

	if idx, ok := conjToRowIndex[c]; ok {
		if tail == "う" && idx == 0 {
			return []string{head + "わ"}, nil
		}
		row, err := lookupRow(tail)
		if err != nil {
			return nil, err
		}
		return []string{head + rowColumn(row, idx)}, nil
	}

	if c == Imperative {
		row, err := lookupRow(tail)
		if err != nil {
			return nil, err
		}
		return []string{head + rowColumn(row, 3)}, nil
	}

	if idx, ok := teTaIndex(c); ok {
		lookupKey := tail
		if verb == "行く" || verb == "いく" {
			lookupKey = "つ"
		}
		form, ok := kana.TeTaForms[lookupKey]
		if !ok {
			return nil, fmt.Errorf("%w: te/ta ending %q", ErrUnknownHiraganaBase, tail)
		}
		return []string{head + teTaColumn(form, idx)}, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownConjugation, c)
}

func rowColumn(r kana.GodanRow, idx int) string {
	switch idx {
	case 0:
		return r.A
	case 1:
		return r.I
	case 2:
		return r.U
	case 3:
		return r.E
	default:
		return r.O
	}
}

func teTaIndex(c Conjugation) (int, bool) {
	switch c {
	case Te:
		return 0, true
	case Ta:
		return 1, true
	case Tara:
		return 2, true
	case Tari:
		return 3, true
	default:
		return 0, false
	}
}

func teTaColumn(f kana.TeTaForm, idx int) string {
	switch idx {
	case 0:
		return f.Te
	case 1:
		return f.Ta
	case 2:
		return f.Ta + "ら"
	default:
		return f.Ta + "り"
	}
}

// ConjugateType2 conjugates an ichidan (Type II) verb's strict stem.
func ConjugateType2(verb string, c Conjugation) ([]string, error) {
	switch verb {
	case "する":
		return conjugateSuru(c)
	case "くる", "来る":
		return conjugateKuru(verb, c)
	case "だ":
		return conjugateDa(c)
	case "です":
		return conjugateDesu(c)
	}

	runes := []rune(verb)
	head := string(runes[:len(runes)-1])

	switch c {
	case Negative, Zu, Nu, Conjunctive:
		return []string{head}, nil
	case Dictionary:
		return []string{verb}, nil
	case Conditional:
		return []string{head + "れ"}, nil
	case Imperative:
		return []string{head + "ろ", head + "よ"}, nil
	case Volitional:
		return []string{head + "よう"}, nil
	case Te:
		return []string{head + "て"}, nil
	case Ta:
		return []string{head + "た"}, nil
	case Tara:
		return []string{head + "たら"}, nil
	case Tari:
		return []string{head + "たり"}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownConjugation, c)
	}
}

func conjugateKuru(verb string, c Conjugation) ([]string, error) {
	if strings.HasPrefix(verb, "来") {
		forms, err := conjugateKuru("くる", c)
		if err != nil {
			return nil, err
		}
		for i, f := range forms {
			forms[i] = "来" + string([]rune(f)[1:])
		}
		return forms, nil
	}
	prefix := ""
	switch c {
	case Negative, Zu, Nu:
		return []string{prefix + "こ"}, nil
	case Conjunctive:
		return []string{prefix + "き"}, nil
	case Dictionary:
		return []string{prefix + "くる"}, nil
	case Conditional:
		return []string{prefix + "くれ"}, nil
	case Imperative:
		return []string{prefix + "こい"}, nil
	case Volitional:
		return []string{prefix + "こよう"}, nil
	case Te:
		return []string{prefix + "きて"}, nil
	case Ta:
		return []string{prefix + "きた"}, nil
	case Tara:
		return []string{prefix + "きたら"}, nil
	case Tari:
		return []string{prefix + "きたり"}, nil
	default:
		return nil, fmt.Errorf("%w: kuru %s", ErrUnknownConjugation, c)
	}
}

func conjugateSuru(c Conjugation) ([]string, error) {
	switch c {
	case Negative, Conjunctive:
		return []string{"し"}, nil
	case Dictionary:
		return []string{"する"}, nil
	case Conditional:
		return []string{"すれ"}, nil
	case Imperative:
		return []string{"しろ", "せよ"}, nil
	case Volitional:
		return []string{"しよう"}, nil
	case Te:
		return []string{"して"}, nil
	case Ta:
		return []string{"した"}, nil
	case Tara:
		return []string{"したら"}, nil
	case Tari:
		return []string{"したり"}, nil
	case Zu:
		return []string{"せ"}, nil
	case Nu:
		return []string{"せ"}, nil
	default:
		return nil, fmt.Errorf("%w: suru %s", ErrUnknownConjugation, c)
	}
}

func conjugateDa(c Conjugation) ([]string, error) {
	switch c {
	case Negative:
		return []string{"でない", "ではない", "じゃない"}, nil
	case Dictionary:
		return []string{"だ"}, nil
	case Conditional:
		return []string{"なら"}, nil
	case Te:
		return []string{"で"}, nil
	case Ta:
		return []string{"だった"}, nil
	case Tara:
		return []string{"だったら"}, nil
	case Tari:
		return []string{"だったり"}, nil
	default:
		return nil, fmt.Errorf("%w: da %s", ErrUnknownConjugation, c)
	}
}

func conjugateDesu(c Conjugation) ([]string, error) {
	switch c {
	case Negative:
		return []string{"でありません", "ではありません"}, nil
	case Dictionary:
		return []string{"です"}, nil
	case Te:
		return []string{"でして"}, nil
	case Ta:
		return []string{"でした"}, nil
	case Tara:
		return []string{"でしたら"}, nil
	case Tari:
		return []string{"でしたり"}, nil
	default:
		return nil, fmt.Errorf("%w: desu %s", ErrUnknownConjugation, c)
	}
}

// conjugateStrict dispatches to the Type I/II strict conjugator.
func conjugateStrict(verb string, c Conjugation, type2 bool) ([]string, error) {
	runes := []rune(verb)
	if len(runes) > 0 && runes[len(runes)-1] == 'る' && type2 {
		return ConjugateType2(verb, c)
	}
	return ConjugateType1(verb, c)
}

// ConjugateVerb conjugates a dictionary-form verb to the given terminal
// conjugation, returning the strict stem plus (where applicable) the fully
// suffixed surface form, e.g. ConjugateVerb("食べる", Negative, true) returns
// ["食べ", "食べない"].
func ConjugateVerb(verb string, c Conjugation, type2 bool) ([]string, error) {
	result, err := conjugateStrict(verb, c, type2)
	if err != nil {
		return nil, err
	}

	switch {
	case (c == Negative || c == Zu || c == Nu) && verb != "だ" && verb != "です":
		suffix := map[Conjugation]string{Negative: "ない", Zu: "ず", Nu: "ぬ"}[c]
		result = append(result, result[0]+suffix)
	case c == Conjunctive:
		result = append(result, result[0]+"ます")
	case c == Conditional:
		result = append(result, result[0]+"ば")
	case c == Volitional:
		result = append(result, result[0]+"う")
	}
	return result, nil
}

// finalOnlyAuxiliaries must be the last auxiliary in a chain; they cannot be
// followed by another auxiliary, grounded on conjugate_auxiliaries' validation.
var finalOnlyAuxiliaries = map[Auxiliary]bool{
	Masu: true, Nai: true, Tai: true, Hoshii: true, Rashii: true,
	SoudaConjecture: true, SoudaHearsay: true,
}

// becomesType2After reports whether, after applying aux, the resulting verb
// behaves as an ichidan verb for any subsequent auxiliary/conjugation.
func becomesType2After(aux Auxiliary) bool {
	switch aux {
	case Potential, SeruSaseru, ReruRareru, CausativePassive, ShortenedCausativePassive,
		Ageru, Sashiageru, Kureru, TeIru, Miru, Kuru:
		return true
	default:
		return false
	}
}

// ConjugateAuxiliary applies a single auxiliary to verb, producing all
// surface realizations for the given terminal conjugation. This is a direct
// structural port of verb.py's _conjugate_auxiliary.
func ConjugateAuxiliary(verb string, aux Auxiliary, c Conjugation, type2 bool) ([]string, error) {
	switch aux {
	case Potential:
		stem, err := conjugateStrict(verb, Conditional, type2)
		if err != nil {
			return nil, err
		}
		newVerb := stem[0] + "る"
		return ConjugateVerb(newVerb, c, true)

	case Masu:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		b := base[0]
		switch c {
		case Negative:
			return []string{b + "ません", b + "ませんでした"}, nil
		case Dictionary:
			return []string{b + "ます"}, nil
		case Conditional:
			return []string{b + "ますれば"}, nil
		case Imperative:
			return []string{b + "ませ", b + "まし"}, nil
		case Volitional:
			return []string{b + "ましょう"}, nil
		case Te:
			return []string{b + "まして"}, nil
		case Ta:
			return []string{b + "ました"}, nil
		case Tara:
			return []string{b + "ましたら"}, nil
		default:
			return nil, fmt.Errorf("%w: masu %s", ErrUnknownConjugation, c)
		}

	case Nai:
		base, err := ConjugateVerb(verb, Negative, type2)
		if err != nil {
			return nil, err
		}
		b := base[0]
		switch c {
		case Negative:
			return []string{b + "なくはない"}, nil
		case Conjunctive:
			return []string{b + "なく"}, nil
		case Dictionary:
			return []string{b + "ない"}, nil
		case Conditional:
			return []string{b + "なければ"}, nil
		case Te:
			return []string{b + "なくて", b + "ないで"}, nil
		case Ta:
			return []string{b + "なかった"}, nil
		case Tara:
			return []string{b + "なかったら"}, nil
		default:
			return nil, fmt.Errorf("%w: nai %s", ErrUnknownConjugation, c)
		}

	case Tai:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		b := base[0]
		switch c {
		case Negative:
			return []string{b + "たくない"}, nil
		case Conjunctive:
			return []string{b + "たく"}, nil
		case Dictionary:
			return []string{b + "たい"}, nil
		case Conditional:
			return []string{b + "たければ"}, nil
		case Te:
			return []string{b + "たくて"}, nil
		case Ta:
			return []string{b + "たかった"}, nil
		case Tara:
			return []string{b + "たかったら"}, nil
		default:
			return nil, fmt.Errorf("%w: tai %s", ErrUnknownConjugation, c)
		}

	case Tagaru:
		if c == Conditional || c == Imperative || c == Volitional || c == Tari {
			return nil, fmt.Errorf("%w: tagaru %s", ErrUnknownConjugation, c)
		}
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		tagaru, err := ConjugateVerb("たがる", c, false)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, suf := range tagaru {
			out = append(out, base[0]+suf)
		}
		return out, nil

	case Hoshii:
		base, err := ConjugateVerb(verb, Te, type2)
		if err != nil {
			return nil, err
		}
		b := base[0]
		switch c {
		case Negative:
			return []string{b + "ほしくない"}, nil
		case Conjunctive:
			return []string{b + "ほしく"}, nil
		case Dictionary:
			return []string{b + "ほしい"}, nil
		case Conditional:
			return []string{b + "ほしければ"}, nil
		case Te:
			return []string{b + "ほしくて"}, nil
		case Ta:
			return []string{b + "ほしかった"}, nil
		case Tara:
			return []string{b + "ほしかったら"}, nil
		default:
			return nil, fmt.Errorf("%w: hoshii %s", ErrUnknownConjugation, c)
		}

	case Rashii:
		taForm, err := ConjugateVerb(verb, Ta, type2)
		if err != nil {
			return nil, err
		}
		bases := []string{taForm[0], verb}
		switch c {
		case Negative:
			neg, err := ConjugateAuxiliary(verb, Nai, Dictionary, type2)
			if err != nil {
				return nil, err
			}
			return []string{neg[0] + "らしい"}, nil
		case Conjunctive:
			return suffixAll(bases, "らしく"), nil
		case Dictionary:
			return suffixAll(bases, "らしい"), nil
		case Te:
			return suffixAll(bases, "らしくて"), nil
		default:
			return nil, fmt.Errorf("%w: rashii %s", ErrUnknownConjugation, c)
		}

	case SoudaHearsay:
		taForm, err := ConjugateVerb(verb, Ta, type2)
		if err != nil {
			return nil, err
		}
		if c != Dictionary {
			return nil, fmt.Errorf("%w: souda-hearsay %s", ErrUnknownConjugation, c)
		}
		return []string{taForm[0] + "そうだ", verb + "そうだ"}, nil

	case SoudaConjecture:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		b := base[0]
		switch c {
		case Dictionary:
			return []string{b + "そうだ", b + "そうです"}, nil
		case Conditional:
			return []string{b + "そうなら"}, nil
		case Ta:
			return []string{b + "そうだった", b + "そうでした"}, nil
		default:
			return nil, fmt.Errorf("%w: souda-conjecture %s", ErrUnknownConjugation, c)
		}

	case SeruSaseru, ShortenedCausative:
		if c == Tara || c == Tari {
			return nil, fmt.Errorf("%w: causative %s", ErrUnknownConjugation, c)
		}
		var newVerb string
		switch {
		case verb == "来る" || verb == "くる":
			prefix := "こ"
			if strings.HasPrefix(verb, "来") {
				prefix = "来"
			}
			newVerb = prefix + "させる"
		case verb == "する":
			newVerb = "させる"
		case type2:
			stem, err := ConjugateType2(verb, Negative)
			if err != nil {
				return nil, err
			}
			newVerb = stem[0] + "させる"
		default:
			stem, err := ConjugateType1(verb, Negative)
			if err != nil {
				return nil, err
			}
			newVerb = stem[0] + "せる"
		}
		if aux == ShortenedCausative {
			newVerb = string([]rune(newVerb)[:len([]rune(newVerb))-2]) + "す"
			return ConjugateVerb(newVerb, c, false)
		}
		return ConjugateVerb(newVerb, c, true)

	case ReruRareru:
		if c == Imperative || c == Volitional || c == Tara || c == Tari {
			return nil, fmt.Errorf("%w: passive/potential %s", ErrUnknownConjugation, c)
		}
		var newVerb string
		switch {
		case verb == "来る" || verb == "くる":
			prefix := "こ"
			if strings.HasPrefix(verb, "来") {
				prefix = "来"
			}
			newVerb = prefix + "られる"
		case verb == "する":
			newVerb = "される"
		case type2:
			stem, err := ConjugateType2(verb, Negative)
			if err != nil {
				return nil, err
			}
			newVerb = stem[0] + "られる"
		default:
			stem, err := ConjugateType1(verb, Negative)
			if err != nil {
				return nil, err
			}
			newVerb = stem[0] + "れる"
		}
		return ConjugateVerb(newVerb, c, true)

	case CausativePassive:
		causative, err := ConjugateAuxiliary(verb, SeruSaseru, Negative, type2)
		if err != nil {
			return nil, err
		}
		return ConjugateVerb(causative[0]+"られる", c, true)

	case ShortenedCausativePassive:
		causative, err := ConjugateAuxiliary(verb, ShortenedCausative, Negative, type2)
		if err != nil {
			return nil, err
		}
		return ConjugateVerb(causative[0]+"れる", c, true)

	case Ageru, Sashiageru, Yaru, Morau, Itadaku, Kureru, Kudasaru,
		TeIru, TeAru, Miru, Iku, Kuru, Oku, TeOru:
		return conjugateTeAuxiliary(verb, aux, c, type2)

	case Shimau:
		return conjugateShimau(verb, c, type2)

	case Sugiru:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		return ConjugateVerb(base[0]+"すぎる", c, true)

	case Yasui:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		return ConjugateAdjective(base[0]+"やすい", adjConjugationFromVerb(c))

	case Nikui:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		return ConjugateAdjective(base[0]+"にくい", adjConjugationFromVerb(c))

	case Hajimeru, Owaru, Tsuzukeru, Dasu:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		endings := map[Auxiliary]struct {
			suffix string
			type2  bool
		}{
			Hajimeru:  {"始める", true},
			Owaru:     {"終わる", false},
			Tsuzukeru: {"続ける", true},
			Dasu:      {"出す", false},
		}[aux]
		return ConjugateVerb(base[0]+endings.suffix, c, endings.type2)

	case Garu:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		return ConjugateVerb(base[0]+"がる", c, false)

	case SouAppearance:
		base, err := ConjugateVerb(verb, Conjunctive, type2)
		if err != nil {
			return nil, err
		}
		if c != Dictionary {
			return nil, fmt.Errorf("%w: sou-appearance %s", ErrUnknownConjugation, c)
		}
		return []string{base[0] + "そう"}, nil

	default:
		return nil, fmt.Errorf("%w: unhandled auxiliary %s", ErrInvalidAuxiliaryChain, aux)
	}
}

func suffixAll(bases []string, suffix string) []string {
	out := make([]string, len(bases))
	for i, b := range bases {
		out[i] = b + suffix
	}
	return out
}

func conjugateTeAuxiliary(verb string, aux Auxiliary, c Conjugation, type2 bool) ([]string, error) {
	vteForm, err := ConjugateVerb(verb, Te, type2)
	if err != nil {
		return nil, err
	}
	vte := vteForm[0]

	if aux == Kuru {
		tails, err := ConjugateVerb("くる", c, false)
		if err != nil {
			return nil, err
		}
		var out []string
		for _, tail := range tails {
			out = append(out, vte+tail)
		}
		return out, nil
	}

	endings := map[Auxiliary][]string{
		Ageru:      {"あげる"},
		Sashiageru: {"差し上げる", "さしあげる"},
		Yaru:       {"やる"},
		Morau:      {"もらう"},
		Itadaku:    {"いただく"},
		Kureru:     {"くれる"},
		Kudasaru:   {"くださる"},
		TeIru:      {"いる", "る"},
		TeAru:      {"ある"},
		Miru:       {"みる"},
		Iku:        {"いく"},
		Oku:        {"おく"},
		TeOru:      {"おる"},
	}[aux]

	endingType2 := aux == Ageru || aux == Sashiageru || aux == Kureru || aux == TeIru || aux == Miru

	var newVerbs []string
	for _, ending := range endings {
		newVerbs = append(newVerbs, vte+ending)
	}
	runes := []rune(vte)
	last := ""
	if len(runes) > 0 {
		last = string(runes[len(runes)-1])
	}
	head := ""
	if len(runes) > 0 {
		head = string(runes[:len(runes)-1])
	}
	switch aux {
	case Oku:
		if last == "で" {
			newVerbs = append(newVerbs, head+"どく")
		} else {
			newVerbs = append(newVerbs, head+"とく")
		}
	case Iku:
		newVerbs = append(newVerbs, vte+"く")
	}

	var results []string
	for _, v := range newVerbs {
		conjugated, err := ConjugateVerb(v, c, endingType2)
		if err != nil {
			continue
		}
		results = append(results, conjugated...)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrUnknownConjugation, aux, c)
	}
	return results, nil
}

func conjugateShimau(verb string, c Conjugation, type2 bool) ([]string, error) {
	vteForm, err := ConjugateVerb(verb, Te, type2)
	if err != nil {
		return nil, err
	}
	vte := vteForm[0]

	shimau, err := ConjugateVerb(vte+"しまう", c, false)
	if err != nil {
		return nil, err
	}

	runes := []rune(vte)
	noTe := string(runes[:len(runes)-1])

	var variants []string
	if strings.HasSuffix(vte, "て") {
		chau, _ := ConjugateVerb(noTe+"ちゃう", c, false)
		chimau, _ := ConjugateVerb(noTe+"ちまう", c, false)
		variants = append(variants, chau...)
		variants = append(variants, chimau...)
	} else {
		jimau, _ := ConjugateVerb(noTe+"じまう", c, false)
		dimau, _ := ConjugateVerb(noTe+"ぢまう", c, false)
		variants = append(variants, jimau...)
		variants = append(variants, dimau...)
	}
	return append(shimau, variants...), nil
}

// ConjugateAuxiliaries applies a left-to-right chain of auxiliaries and a
// final terminal conjugation, a direct port of verb.py's
// conjugate_auxiliaries left-fold.
func ConjugateAuxiliaries(verb string, auxiliaries []Auxiliary, final Conjugation, type2 bool) ([]string, error) {
	if len(auxiliaries) == 0 {
		return ConjugateVerb(verb, final, type2)
	}

	if verb == "だ" || verb == "です" {
		if len(auxiliaries) == 1 && auxiliaries[0] == Nai {
			switch {
			case final == Ta && verb == "だ":
				return []string{"ではなかった", "じゃなかった"}, nil
			case final == Ta:
				return []string{"ではありませんでした", "でありませんでした"}, nil
			case final == Te && verb == "だ":
				return []string{"じゃなくて"}, nil
			case final == Conjunctive && verb == "だ":
				return []string{"じゃなく"}, nil
			}
		}
		return nil, fmt.Errorf("%w: copula auxiliary chain", ErrInvalidAuxiliaryChain)
	}

	verbs := []string{verb}
	currentType2 := type2

	for i, aux := range auxiliaries {
		c := Dictionary
		if i == len(auxiliaries)-1 {
			c = final
		}
		var prevAux *Auxiliary
		if i > 0 {
			prevAux = &auxiliaries[i-1]
		}

		if i != len(auxiliaries)-1 && finalOnlyAuxiliaries[aux] {
			return nil, fmt.Errorf("%w: %s must be the final auxiliary", ErrInvalidAuxiliaryChain, aux)
		}

		var newVerbs []string
		if prevAux != nil && *prevAux == Kuru {
			tails, err := ConjugateAuxiliary("くる", aux, c, false)
			if err != nil {
				return nil, err
			}
			for _, v := range verbs {
				runes := []rune(v)
				head := string(runes[:len(runes)-2])
				for _, t := range tails {
					newVerbs = append(newVerbs, head+t)
				}
			}
		} else {
			for _, v := range verbs {
				out, err := ConjugateAuxiliary(v, aux, c, currentType2)
				if err != nil {
					return nil, err
				}
				newVerbs = append(newVerbs, out...)
			}
		}
		verbs = newVerbs
		currentType2 = becomesType2After(aux)
	}

	return verbs, nil
}

// adjConjugationFromVerb maps a verb Conjugation onto the analogous
// AdjConjugation for auxiliaries (すぎる excepted, which stays a verb) that
// attach an i-adjective ending like やすい/にくい.
func adjConjugationFromVerb(c Conjugation) AdjConjugation {
	switch c {
	case Negative:
		return AdjNegative
	case Ta:
		return AdjPast
	case Te:
		return AdjTe
	case Conditional:
		return AdjConditional
	default:
		return AdjPlain
	}
}
