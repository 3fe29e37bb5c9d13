package grouper

import (
	"testing"

	"github.com/japanalyze/japanalyze/pkg/morph"
)

func tok(surf, base, reading string, pos ...string) morph.Plain {
	return morph.Plain{Surf: surf, Dict: base, Read: reading, POS: pos}
}

func TestGroupAttachesAuxiliaryChain(t *testing.T) {
	morphemes := []morph.Morpheme{
		tok("食べ", "食べる", "タベ", "動詞", "一般"),
		tok("させ", "させる", "サセ", "助動詞"),
		tok("られ", "られる", "ラレ", "助動詞"),
		tok("なかっ", "ない", "ナカッ", "助動詞"),
		tok("た", "た", "タ", "助動詞"),
	}
	groups := GroupMorphemes(morphemes)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %+v", len(groups), groups)
	}
	if groups[0].Surface() != "食べさせられなかった" {
		t.Errorf("got surface %q", groups[0].Surface())
	}
}

func TestGroupBreaksOnNonAttachableParticle(t *testing.T) {
	morphemes := []morph.Morpheme{
		tok("食べた", "食べる", "タベタ", "動詞", "一般"),
		tok("から", "から", "カラ", "助詞", "接続助詞"),
	}
	groups := GroupMorphemes(morphemes)
	if len(groups) != 2 {
		t.Fatalf("expected から to break the group, got %d groups: %+v", len(groups), groups)
	}
}

func TestGroupAttachesWhitelistedParticle(t *testing.T) {
	morphemes := []morph.Morpheme{
		tok("食べ", "食べる", "タベ", "動詞", "一般"),
		tok("て", "て", "テ", "助詞", "接続助詞"),
	}
	groups := GroupMorphemes(morphemes)
	if len(groups) != 1 {
		t.Fatalf("expected て to attach, got %d groups", len(groups))
	}
	if groups[0].Surface() != "食べて" {
		t.Errorf("got surface %q", groups[0].Surface())
	}
}

func TestGroupFlushesOnPunctuation(t *testing.T) {
	morphemes := []morph.Morpheme{
		tok("食べた", "食べる", "タベタ", "動詞", "一般"),
		tok("。", "。", "", "補助記号"),
		tok("飲んだ", "飲む", "ノンダ", "動詞", "一般"),
	}
	groups := GroupMorphemes(morphemes)
	if len(groups) != 2 {
		t.Fatalf("expected punctuation to flush the group without starting a new one, got %d: %+v", len(groups), groups)
	}
}

func TestGroupCommitsPhraseMatchBeforeAgglomeration(t *testing.T) {
	morphemes := []morph.Morpheme{
		tok("し", "する", "シ", "動詞", "非自立可能"),
		tok("なけれ", "なければ", "ナケレ", "助動詞"),
		tok("ば", "ば", "バ", "助詞", "接続助詞"),
		tok("ならない", "ならない", "ナラナイ", "動詞", "非自立可能"),
	}
	groups := GroupMorphemes(morphemes)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups (し on its own, then the なければならない phrase), got %d: %+v", len(groups), groups)
	}
	if groups[0].Surface() != "し" {
		t.Errorf("expected the predicate head to stop growing once a phrase match starts at the next position, got surface %q", groups[0].Surface())
	}
	if groups[0].Phrase != nil {
		t.Error("did not expect the first group itself to be a phrase match")
	}
	if groups[1].Phrase == nil {
		t.Fatal("expected the second group to be recognized as a catalogue phrase match")
	}
	if got := groups[1].Surface(); got != "なければならない" {
		t.Errorf("got phrase surface %q, want なければならない", got)
	}
	if groups[1].Phrase.Surface != "なければならない" {
		t.Errorf("got matched catalogue entry %q, want なければならない", groups[1].Phrase.Surface)
	}
}

func TestIsKatakanaOnly(t *testing.T) {
	g := Group{Head: tok("コンピューター", "コンピューター", "", "名詞")}
	if !g.IsKatakanaOnly() {
		t.Error("expected a fully-katakana surface to be detected")
	}
	g2 := Group{Head: tok("食べる", "食べる", "", "動詞")}
	if g2.IsKatakanaOnly() {
		t.Error("did not expect a kanji/hiragana surface to be detected as katakana")
	}
}
