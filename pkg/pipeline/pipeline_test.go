package pipeline

import (
	"testing"

	"github.com/japanalyze/japanalyze/pkg/dictionary"
	"github.com/japanalyze/japanalyze/pkg/grouper"
	"github.com/japanalyze/japanalyze/pkg/morph"
	"github.com/japanalyze/japanalyze/pkg/phrase"
)

func plainTok(surf, base, reading, infl string, pos ...string) morph.Plain {
	return morph.Plain{Surf: surf, Dict: base, Read: reading, POS: pos, InflType: infl}
}

func testIndex() *dictionary.Index {
	entries := []dictionary.Entry{
		{
			ID:    "1",
			Kanji: []dictionary.Element{{Text: "食べる", Common: true}},
			Kana:  []dictionary.Element{{Text: "たべる", Common: true}},
			Sense: []dictionary.Sense{{Gloss: []dictionary.Gloss{{Text: "to eat"}}}},
		},
	}
	return dictionary.NewIndex(entries, nil, "test")
}

func TestTokenFromGroupSingleMorpheme(t *testing.T) {
	p := New(nil, testIndex())
	g := grouper.Group{Head: plainTok("犬", "犬", "イヌ", "", "名詞")}
	tok := p.tokenFromGroup(g)
	if tok.Surface != "犬" || tok.POS != "Noun" {
		t.Fatalf("unexpected token: %+v", tok)
	}
}

func TestTokenFromGroupPredicateWithConjugation(t *testing.T) {
	p := New(nil, testIndex())
	g := grouper.Group{
		Head: plainTok("食べ", "食べる", "タベ", "一段", "動詞"),
		Tail: []morph.Morpheme{
			plainTok("なかっ", "ない", "ナカッ", "", "助動詞"),
			plainTok("た", "た", "タ", "", "助動詞"),
		},
	}
	tok := p.tokenFromGroup(g)
	if tok.Surface != "食べなかった" {
		t.Fatalf("got surface %q", tok.Surface)
	}
	if tok.Meaning != "to eat" {
		t.Fatalf("expected dictionary meaning via head base form, got %q", tok.Meaning)
	}
	if tok.Conjugation == nil {
		t.Fatal("expected a conjugation explanation for a multi-morpheme predicate")
	}
	if tok.Conjugation.TranslationHint == "" {
		t.Error("expected a non-empty translation hint")
	}
}

func TestLookupMeaningPrefersGrammarMap(t *testing.T) {
	p := New(nil, testIndex())
	m, tags := p.lookupMeaning("は", "は", "")
	if m != "topic marker" {
		t.Errorf("got %q, want topic marker", m)
	}
	if tags != nil {
		t.Errorf("got tags=%v, want nil for a grammar-map hit", tags)
	}
}

// AnalyzeVocabulary needs a segmenter, so this replays its seen-by-Base
// dedup loop over tokenFromGroup output instead of calling it.
func TestVocabularyDedupByBaseForm(t *testing.T) {
	p := New(nil, testIndex())
	groups := []grouper.Group{
		{Head: plainTok("食べる", "食べる", "タベル", "一段", "動詞")},
		{Head: plainTok("食べた", "食べる", "タベタ", "一段", "動詞")},
	}
	seen := make(map[string]bool)
	var out []Token
	for _, g := range groups {
		tok := p.tokenFromGroup(g)
		if seen[tok.Base] {
			continue
		}
		seen[tok.Base] = true
		out = append(out, tok)
	}
	if len(out) != 1 {
		t.Fatalf("expected dedup down to 1 token, got %d", len(out))
	}
}

func TestTokenFromGroupPhraseMatch(t *testing.T) {
	p := New(nil, testIndex())
	entry := phrase.Entry{Surface: "なければならない", Gloss: "must"}
	g := grouper.Group{
		Head:   plainTok("なけれ", "なければ", "ナケレ", "", "助動詞"),
		Tail:   []morph.Morpheme{plainTok("ば", "ば", "バ", "", "助詞"), plainTok("ならない", "ならない", "ナラナイ", "", "動詞")},
		Phrase: &entry,
	}
	tok := p.tokenFromGroup(g)
	if tok.POS != "Phrase" {
		t.Fatalf("got POS %q, want Phrase", tok.POS)
	}
	if tok.Meaning != "must" {
		t.Fatalf("got meaning %q, want must", tok.Meaning)
	}
	if tok.Surface != "なければならない" {
		t.Fatalf("got surface %q", tok.Surface)
	}
}

func TestKatakanaOnlyUnglossedGroupIsFilterable(t *testing.T) {
	g := grouper.Group{Head: plainTok("ピカチュウ", "ピカチュウ", "", "", "名詞")}
	if !g.IsKatakanaOnly() {
		t.Fatal("expected a fully-katakana proper noun to be flagged")
	}
}
