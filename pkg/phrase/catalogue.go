// Package phrase implements the compound-ending phrase catalogue: a
// longest-match recognizer for multi-morpheme grammatical endings that the
// conjugation engine alone cannot explain term-by-term (なければならない,
// 〜てはいけない, 〜べきだ, and the masu-stem aspectual compounds すぎる/
// やすい/にくい).
//
// The catalogue's concrete pattern list is authored from spec.md's
// description of the phrase catalogue's construction rules (base endings ×
// paradigm suffix sets), since the backing data file in original_source was
// not recoverable from the retrieval pack (see DESIGN.md).
package phrase

import "sort"

// Entry is a single recognizable compound ending.
type Entry struct {
	// Surface is the compound ending's text, e.g. "なければならない".
	Surface string
	// Gloss is a short English gloss used by the hint generator when no
	// auxiliary-chain decomposition applies.
	Gloss string
	// RequiresConjunctiveStem marks endings that attach to a verb's masu
	// stem (conjunctive form) rather than its negative/te stem.
	RequiresConjunctiveStem bool
}

// base×paradigm construction: each base ending (なければ, なくては, ないと,
// ては, では) combines with a small paradigm of plain/polite endings
// (ならない, なりません, だめだ, いけない); the remaining patterns are listed
// as standalone entries.
var entries = buildCatalogue()

func buildCatalogue() []Entry {
	type baseEntry struct {
		base                    string
		gloss                   string
		paradigm                []string
		requiresConjunctiveStem bool
	}

	bases := []baseEntry{
		{"なければ", "must", []string{"ならない", "なりません", "だめだ", "いけない"}, false},
		{"なくては", "must", []string{"ならない", "なりません", "いけない"}, false},
		{"ないと", "must (colloquial)", []string{"いけない", "だめだ"}, false},
		{"ては", "must not / cannot", []string{"いけない", "だめだ", "ならない"}, false},
		{"では", "must not (negative copula)", []string{"いけない", "だめだ"}, false},
	}

	var out []Entry
	for _, b := range bases {
		for _, ending := range b.paradigm {
			out = append(out, Entry{
				Surface:                 b.base + ending,
				Gloss:                   b.gloss,
				RequiresConjunctiveStem: b.requiresConjunctiveStem,
			})
		}
	}

	// Standalone compound endings not built from the base×paradigm product.
	out = append(out,
		Entry{Surface: "べきだ", Gloss: "should", RequiresConjunctiveStem: false},
		Entry{Surface: "べきです", Gloss: "should (polite)", RequiresConjunctiveStem: false},
		Entry{Surface: "かもしれない", Gloss: "might", RequiresConjunctiveStem: false},
		Entry{Surface: "かもしれません", Gloss: "might (polite)", RequiresConjunctiveStem: false},
		Entry{Surface: "に違いない", Gloss: "must be", RequiresConjunctiveStem: false},
		Entry{Surface: "はずだ", Gloss: "should/expected to", RequiresConjunctiveStem: false},
		Entry{Surface: "つもりだ", Gloss: "intend to", RequiresConjunctiveStem: true},
		Entry{Surface: "ことができる", Gloss: "can (do)", RequiresConjunctiveStem: false},
		Entry{Surface: "すぎる", Gloss: "too much", RequiresConjunctiveStem: true},
		Entry{Surface: "すぎた", Gloss: "too much (past)", RequiresConjunctiveStem: true},
		Entry{Surface: "やすい", Gloss: "easy to", RequiresConjunctiveStem: true},
		Entry{Surface: "にくい", Gloss: "hard to", RequiresConjunctiveStem: true},
	)

	// Bucketed by first rune and sorted longest-first within each bucket so
	// that matching always commits to the longest candidate it finds,
	// per spec.md's longest-match-commitment invariant.
	sort.SliceStable(out, func(i, j int) bool {
		return len([]rune(out[i].Surface)) > len([]rune(out[j].Surface))
	})
	return out
}

// byFirstRune buckets the catalogue for fast candidate lookup.
var byFirstRune = func() map[rune][]Entry {
	m := make(map[rune][]Entry)
	for _, e := range entries {
		r := []rune(e.Surface)[0]
		m[r] = append(m[r], e)
	}
	return m
}()

// Match attempts the longest catalogue entry that text (a morpheme
// concatenation starting at some offset) starts with. It returns the
// matched Entry and true, or the zero Entry and false if nothing matches.
// Because the catalogue is pre-sorted longest-first within each bucket, the
// first match found is the longest possible match — the catalogue commits
// to it rather than continuing to search for a shorter alternative.
func Match(text string) (Entry, bool) {
	runes := []rune(text)
	if len(runes) == 0 {
		return Entry{}, false
	}
	candidates, ok := byFirstRune[runes[0]]
	if !ok {
		return Entry{}, false
	}
	for _, c := range candidates {
		cr := []rune(c.Surface)
		if len(cr) > len(runes) {
			continue
		}
		if string(runes[:len(cr)]) == c.Surface {
			return c, true
		}
	}
	return Entry{}, false
}

// MatchSuffix looks for a catalogue entry that exactly matches a trailing
// portion of text, trying the longest possible stem-consuming split first
// (offset 0, the whole text as a phrase) and growing the stem outward until
// a full match is found. It returns the matched Entry and the leading stem
// text the entry attaches to, mirroring match_phrase_suffix's (suffix,
// meaning, stem) result.
func MatchSuffix(text string) (Entry, string, bool) {
	runes := []rune(text)
	for offset := 0; offset < len(runes); offset++ {
		e, ok := Match(string(runes[offset:]))
		if ok && len([]rune(e.Surface)) == len(runes)-offset {
			return e, string(runes[:offset]), true
		}
	}
	return Entry{}, "", false
}

// All returns every catalogue entry, longest-first.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
