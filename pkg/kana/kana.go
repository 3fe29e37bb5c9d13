// Package kana provides kana conversion tables and voicing-normalized
// comparison used by the conjugation engine and the dictionary index.
package kana

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// hiraganaToKatakanaOffset is the fixed codepoint distance between the
// hiragana and katakana blocks for the common kana range.
const hiraganaToKatakanaOffset = 0x60

// ToHiragana converts any katakana runes in s to hiragana, leaving
// everything else (kanji, romaji, punctuation) untouched.
func ToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - hiraganaToKatakanaOffset
		}
	}
	return string(runes)
}

// ToKatakana converts any hiragana runes in s to katakana.
func ToKatakana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x3041 && r <= 0x3096 {
			runes[i] = r + hiraganaToKatakanaOffset
		}
	}
	return string(runes)
}

// NormalizeReading folds a reading down to a voicing-insensitive,
// script-insensitive comparison key: katakana is folded to hiragana, then
// the string is NFD-decomposed so that dakuten/handakuten marks (U+3099,
// U+309A) become separate combining codepoints, which are then stripped.
// This lets readings that differ only by voicing (e.g. は/ば/ぱ) compare
// equal where the spec calls for a voicing-normalized tie-break.
func NormalizeReading(s string) string {
	folded := ToHiragana(s)
	decomposed := norm.NFD.String(folded)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if r == 0x3099 || r == 0x309A {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// IsHiragana reports whether r falls in the hiragana block.
func IsHiragana(r rune) bool {
	return r >= 0x3041 && r <= 0x309F
}

// IsKatakana reports whether r falls in the katakana block.
func IsKatakana(r rune) bool {
	return r >= 0x30A0 && r <= 0x30FF
}

// KatakanaRatio returns the fraction of runes in s that are katakana. Every
// rune counts toward the total, and the prolonged sound mark ー counts as
// katakana.
func KatakanaRatio(s string) float64 {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	var kata int
	for _, r := range runes {
		if IsKatakana(r) {
			kata++
		}
	}
	return float64(kata) / float64(len(runes))
}

// GodanRow describes the five-vowel conjugation row for a single godan
// (Type I) verb ending consonant, keyed by the dictionary-form final kana.
type GodanRow struct {
	A, I, U, E, O string // -anai, -imasu, dictionary, -eba, -ou stems
}

// GodanRows maps each possible godan dictionary-ending kana to its row.
// Grounded on verb.py's _HIRAGANA_TABLE.
var GodanRows = map[string]GodanRow{
	"う": {"わ", "い", "う", "え", "お"},
	"く": {"か", "き", "く", "け", "こ"},
	"ぐ": {"が", "ぎ", "ぐ", "げ", "ご"},
	"す": {"さ", "し", "す", "せ", "そ"},
	"つ": {"た", "ち", "つ", "て", "と"},
	"ぬ": {"な", "に", "ぬ", "ね", "の"},
	"ぶ": {"ば", "び", "ぶ", "べ", "ぼ"},
	"む": {"ま", "み", "む", "め", "も"},
	"る": {"ら", "り", "る", "れ", "ろ"},
}

// TeTaForm is the te/ta-form onbin (sound change) realization for a godan
// verb ending, e.g. 書く -> 書いて/書いた.
type TeTaForm struct {
	Te, Ta string
}

// TeTaForms maps each godan dictionary-ending kana to its te/ta suffix,
// grounded on verb.py's _TE_TA_FORMS.
var TeTaForms = map[string]TeTaForm{
	"う": {"って", "った"},
	"つ": {"って", "った"},
	"る": {"って", "った"},
	"く": {"いて", "いた"},
	"ぐ": {"いで", "いだ"},
	"す": {"して", "した"},
	"ぬ": {"んで", "んだ"},
	"ぶ": {"んで", "んだ"},
	"む": {"んで", "んだ"},
}

// IkuStem is the stem of 行く, the single irregular te/ta onbin exception:
// 行く -> 行って/行った rather than the regular く -> いて/いた pattern.
const IkuStem = "行"
