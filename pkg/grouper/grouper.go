// Package grouper agglomerates a predicate head morpheme with its trailing
// auxiliaries, suffixes, and a small whitelist of connective particles into
// a single predicate group, so that e.g. 食べ+させ+られ+なかっ+た surfaces as
// one Group rather than five disconnected morphemes.
//
// Grounded on original_source/src/services/analyzer.py's analyze() buffer/
// flush state machine.
package grouper

import (
	"strings"

	"github.com/japanalyze/japanalyze/pkg/kana"
	"github.com/japanalyze/japanalyze/pkg/morph"
	"github.com/japanalyze/japanalyze/pkg/phrase"
)

// phraseWindow bounds how many morphemes ahead a compound-phrase match scans
// from a candidate start position, matching the catalogue's longest entries.
const phraseWindow = 10

// skipPOS are part-of-speech categories that carry no grammatical content
// and always flush/break the current group (punctuation, symbols, spaces).
var skipPOS = map[string]bool{
	"補助記号": true, "記号": true, "空白": true,
}

// attachableParticles is the whitelist of connective-particle surfaces that
// may extend a predicate group; particles like から/ので/けど are excluded
// since they start a new clause rather than continue the predicate.
var attachableParticles = map[string]bool{
	"て": true, "で": true, "ば": true, "たり": true, "だら": true,
	"たら": true, "なら": true, "ながら": true, "つつ": true,
}

var predicateHeadPOS = map[string]bool{
	"動詞": true, "形容詞": true, "形状詞": true,
}

// isTailCandidate reports whether m could extend a group as a non-head
// member: an auxiliary, suffix, non-independent verb/adjective stem (ている
// のいる component, etc.), or a connective particle.
func isTailCandidate(m morph.Morpheme) bool {
	pos := m.PartOfSpeech()
	main := posAt(pos, 0)
	sub1 := posAt(pos, 1)

	if main == "助動詞" || main == "接尾辞" {
		return true
	}
	if sub1 == "非自立可能" {
		return true
	}
	if main == "助詞" && sub1 == "接続助詞" {
		return true
	}
	return false
}

func posAt(pos []string, i int) string {
	if i < len(pos) {
		return pos[i]
	}
	return ""
}

// Group is one predicate (or single morpheme) recovered from a token
// stream: Head is the first morpheme, Tail holds any attached
// auxiliaries/suffixes/particles in order. Phrase is set instead when the
// group was recognized as a single catalogue compound-phrase match rather
// than a predicate agglomeration.
type Group struct {
	Head   morph.Morpheme
	Tail   []morph.Morpheme
	Phrase *phrase.Entry
}

// Surface concatenates every morpheme's surface text in the group.
func (g Group) Surface() string {
	var b strings.Builder
	b.WriteString(g.Head.Surface())
	for _, m := range g.Tail {
		b.WriteString(m.Surface())
	}
	return b.String()
}

// Reading concatenates every morpheme's hiragana-normalized reading.
func (g Group) Reading() string {
	var b strings.Builder
	b.WriteString(kana.ToHiragana(g.Head.Reading()))
	for _, m := range g.Tail {
		b.WriteString(kana.ToHiragana(m.Reading()))
	}
	return b.String()
}

// IsKatakanaOnly reports whether the group's full surface is more than half
// katakana, the heuristic original_source uses to filter loanword/proper
// noun tokens that have no dictionary meaning.
func (g Group) IsKatakanaOnly() bool {
	return kana.KatakanaRatio(g.Surface()) > 0.5
}

// tryPhraseMatch attempts a catalogue compound-phrase match starting at
// position i, concatenating up to phraseWindow morpheme surfaces and asking
// the catalogue for its longest prefix match, then walking forward to find
// the smallest morpheme count whose cumulative surface length covers the
// matched phrase, grounded on spec.md §4.3's construction rules.
func tryPhraseMatch(morphemes []morph.Morpheme, i int) (phrase.Entry, int, bool) {
	end := i + phraseWindow
	if end > len(morphemes) {
		end = len(morphemes)
	}
	var sb strings.Builder
	for k := i; k < end; k++ {
		sb.WriteString(morphemes[k].Surface())
	}
	e, ok := phrase.Match(sb.String())
	if !ok {
		return phrase.Entry{}, 0, false
	}

	phraseLen := len([]rune(e.Surface))
	consumedLen := 0
	for k := i; k < end; k++ {
		consumedLen += len([]rune(morphemes[k].Surface()))
		if consumedLen >= phraseLen {
			return e, k - i + 1, true
		}
	}
	return phrase.Entry{}, 0, false
}

// GroupMorphemes segments a morpheme stream into predicate groups, direct
// port of analyzer.py's analyze() buffer/flush loop, with a compound-phrase
// catalogue check committed at every position before predicate
// agglomeration is attempted — both at a fresh group-start position and as a
// pre-emptive stop while extending an already-started predicate's tail, per
// spec.md §3's "compound-phrase matching is committed before predicate
// grouping at the same position" invariant.
func GroupMorphemes(morphemes []morph.Morpheme) []Group {
	var groups []Group
	i := 0
	for i < len(morphemes) {
		main := posAt(morphemes[i].PartOfSpeech(), 0)
		if skipPOS[main] {
			i++
			continue
		}

		if e, k, ok := tryPhraseMatch(morphemes, i); ok {
			groups = append(groups, Group{
				Head:   morphemes[i],
				Tail:   append([]morph.Morpheme(nil), morphemes[i+1:i+k]...),
				Phrase: &e,
			})
			i += k
			continue
		}

		isPredicateHead := predicateHeadPOS[main]
		j := i + 1
		for j < len(morphemes) {
			nMain := posAt(morphemes[j].PartOfSpeech(), 0)
			if skipPOS[nMain] {
				break
			}
			if _, _, ok := tryPhraseMatch(morphemes, j); ok {
				break
			}

			attach := false
			if isPredicateHead && isTailCandidate(morphemes[j]) {
				if nMain == "助詞" {
					attach = attachableParticles[morphemes[j].Surface()]
				} else {
					attach = true
				}
			}
			if !attach {
				break
			}
			j++
		}

		groups = append(groups, Group{Head: morphemes[i], Tail: append([]morph.Morpheme(nil), morphemes[i+1:j]...)})
		i = j
	}

	return groups
}
