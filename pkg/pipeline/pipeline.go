// Package pipeline wires the segmenter, predicate grouper, dictionary
// index, and English hint generator into the end-to-end analytic pipeline,
// and shapes the result into the response views a caller actually wants:
// vocabulary-only, full grammar breakdown, a single word's deep conjugation
// explanation, or a forward conjugation request.
//
// Grounded on original_source/src/services/analysis.py's five entry points
// (analyze_text, analyze_simple, analyze_full, deconjugate_word,
// conjugate_word) and services/analyzer.py's POS_MAPPING/GRAMMAR_MAP tables.
package pipeline

import (
	"strings"

	"github.com/japanalyze/japanalyze/pkg/conj"
	"github.com/japanalyze/japanalyze/pkg/dictionary"
	"github.com/japanalyze/japanalyze/pkg/grouper"
	"github.com/japanalyze/japanalyze/pkg/hint"
	"github.com/japanalyze/japanalyze/pkg/kana"
	"github.com/japanalyze/japanalyze/pkg/morph"
	"github.com/japanalyze/japanalyze/pkg/segmenter"
)

// posMapping maps a tokenizer's main part-of-speech category to a friendly
// English name, grounded on analyzer.py's POS_MAPPING.
var posMapping = map[string]string{
	"名詞":  "Noun",
	"動詞":  "Verb",
	"形容詞": "Adjective",
	"副詞":  "Adverb",
	"連体詞": "Determiner",
	"接続詞": "Conjunction",
	"感動詞": "Interjection",
	"助動詞": "Auxiliary",
	"助詞":  "Particle",
	"接頭辞": "Prefix",
	"接尾辞": "Suffix",
	"代名詞": "Pronoun",
}

// grammarMap gives a short English explanation for closed-class grammar
// words (particles, auxiliaries, pronouns) that a general dictionary lookup
// wouldn't gloss usefully, grounded on analyzer.py's GRAMMAR_MAP.
var grammarMap = map[string]string{
	"は": "topic marker", "が": "subject marker", "を": "object marker",
	"に": "direction/time/target", "で": "location/means", "の": "possessive/of",
	"と": "and/with/quote", "も": "also/too", "から": "from/because",
	"まで": "until/to", "へ": "toward", "より": "than/from", "か": "question/or",
	"ね": "isn't it?", "よ": "emphasis", "な": "don't!/attributive",
	"わ": "feminine emphasis", "ぞ": "strong emphasis", "さ": "filler/emphasis",
	"て": "connection/request", "けど": "but/although", "けれど": "but/although",
	"のに": "despite/although", "ので": "because/so", "たり": "doing things like",
	"ながら": "while doing", "ばかり": "only/just", "だけ": "only/just",
	"しか": "only (with neg)", "ほど": "extent/degree", "くらい": "about/approximately",
	"など": "etc./and so on", "こそ": "emphasis (this very)", "さえ": "even",
	"でも": "but/even", "なら": "if/as for", "たら": "if/when", "ば": "if/when",
	"って": "quotation (casual)",
	"ます": "polite form", "です": "copula (polite)", "だ": "copula (plain)",
	"た": "past tense", "ない": "negation", "ぬ": "negation (archaic)",
	"れる": "passive/potential", "られる": "passive/potential", "せる": "causative",
	"させる": "causative", "たい": "want to", "たがる": "seems to want",
	"そう": "seems like", "よう": "manner/let's", "らしい": "seems/apparently",
	"べき": "should", "はず": "expected to",
	"私": "I/me", "僕": "I (male)", "俺": "I (rough male)", "あなた": "you",
	"君": "you (familiar)", "彼": "he/him", "彼女": "she/her", "これ": "this",
	"それ": "that", "あれ": "that (over there)", "ここ": "here", "そこ": "there",
	"あそこ": "over there", "誰": "who", "何": "what", "どこ": "where",
	"いつ": "when", "どう": "how", "なぜ": "why", "どれ": "which",
}

// Token is a single analyzed unit of text: a predicate group or a plain
// word, with its surface, dictionary form, reading, mapped part of speech,
// English meaning, and (if it is a multi-morpheme predicate) its component
// breakdown and grammatical conjugation explanation.
type Token struct {
	Surface     string
	Base        string
	Reading     string
	POS         string
	Meaning     string
	Tags        []string
	Components  []Token
	Conjugation *hint.ConjugationInfo
}

// Pipeline holds the shared, read-only collaborators needed to analyze
// text: a tokenizer and a dictionary index. Both are safe for concurrent
// use, so a single Pipeline can serve many requests concurrently; each
// Analyze* call is itself single-threaded CPU-bound work.
type Pipeline struct {
	seg *segmenter.Segmenter
	idx *dictionary.Index
}

// New builds a Pipeline from an already-constructed segmenter and
// dictionary index.
func New(seg *segmenter.Segmenter, idx *dictionary.Index) *Pipeline {
	return &Pipeline{seg: seg, idx: idx}
}

func isType2(infl string) bool {
	return strings.Contains(infl, "一段")
}

// mapPOS returns the friendly English name for a tokenizer POS category,
// falling back to the Japanese tag itself if unmapped.
func mapPOS(main string) string {
	if v, ok := posMapping[main]; ok {
		return v
	}
	return main
}

// lookupMeaning checks the grammar map first (by base form, then surface),
// then falls back to the dictionary index, grounded on analyzer.py's
// _lookup_meaning. It never errors: a dictionary miss just yields "". A
// grammar-map hit carries no tags, since it never went through JMdict's
// sense classification.
func (p *Pipeline) lookupMeaning(base, surface, reading string) (string, []string) {
	if m, ok := grammarMap[base]; ok {
		return m, nil
	}
	if surface != "" {
		if m, ok := grammarMap[surface]; ok {
			return m, nil
		}
	}
	if p.idx == nil {
		return "", nil
	}
	m, tags, _ := p.idx.Lookup(base, reading, false)
	return m, tags
}

func (p *Pipeline) makeToken(m morph.Morpheme) Token {
	surface := m.Surface()
	base := m.DictionaryForm()
	reading := kana.ToHiragana(m.Reading())
	pos := mapPOS(morph.Primary(m))
	meaning, tags := p.lookupMeaning(base, surface, reading)
	return Token{Surface: surface, Base: base, Reading: reading, POS: pos, Meaning: meaning, Tags: tags}
}

// tokenFromGroup builds a full Token (with components and a conjugation
// explanation when the group has a tail) from one grouper.Group.
func (p *Pipeline) tokenFromGroup(g grouper.Group) Token {
	if g.Phrase != nil {
		return Token{
			Surface: g.Surface(),
			Base:    g.Surface(),
			Reading: g.Reading(),
			POS:     "Phrase",
			Meaning: g.Phrase.Gloss,
			Tags:    []string{"Phrase"},
		}
	}

	headToken := p.makeToken(g.Head)
	if len(g.Tail) == 0 {
		return headToken
	}

	components := make([]Token, 0, len(g.Tail)+1)
	components = append(components, headToken)
	var readingBuilder strings.Builder
	readingBuilder.WriteString(headToken.Reading)
	for _, m := range g.Tail {
		t := p.makeToken(m)
		components = append(components, t)
		readingBuilder.WriteString(t.Reading)
	}

	compound := Token{
		Surface:    g.Surface(),
		Base:       headToken.Base,
		Reading:    readingBuilder.String(),
		POS:        headToken.POS,
		Meaning:    headToken.Meaning,
		Tags:       headToken.Tags,
		Components: components,
	}

	type2 := isType2(g.Head.InflectionType())
	if headToken.POS == "Verb" {
		if info, ok := hint.TryDeconjugateVerb(compound.Surface, compound.Base, type2, compound.Meaning); ok {
			compound.Conjugation = info
		}
	} else if headToken.POS == "Adjective" {
		if info, ok := hint.TryDeconjugateAdjective(compound.Surface, compound.Base, compound.Meaning); ok {
			compound.Conjugation = info
		}
	}
	return compound
}

// groups runs the segmenter then the predicate grouper over text.
func (p *Pipeline) groups(text string, mode segmenter.SplitMode) []grouper.Group {
	morphemes := p.seg.Tokenize(text, mode)
	return grouper.GroupMorphemes(morphemes)
}

// AnalyzeFull returns every predicate group and standalone word found in
// text, including grammar words, in reading order, grounded on
// analyze_text/analyze_full.
func (p *Pipeline) AnalyzeFull(text string, mode segmenter.SplitMode) []Token {
	groups := p.groups(text, mode)
	tokens := make([]Token, 0, len(groups))
	for _, g := range groups {
		tokens = append(tokens, p.tokenFromGroup(g))
	}
	return tokens
}

// AnalyzeVocabulary returns only content-bearing tokens, deduplicated by
// base form and with unglossed katakana-only tokens (likely proper nouns or
// loanwords with no dictionary hit) filtered out, grounded on
// analyze_simple.
func (p *Pipeline) AnalyzeVocabulary(text string, mode segmenter.SplitMode) []Token {
	groups := p.groups(text, mode)
	seen := make(map[string]bool)
	var out []Token
	for _, g := range groups {
		t := p.tokenFromGroup(g)
		if t.POS == "Particle" || t.POS == "Auxiliary" {
			// Grammar words, not content-bearing vocabulary.
			continue
		}
		if t.Meaning == "" && g.IsKatakanaOnly() {
			// Likely a proper noun or loanword with no dictionary hit.
			continue
		}
		if seen[t.Base] {
			continue
		}
		seen[t.Base] = true
		out = append(out, t)
	}
	return out
}
