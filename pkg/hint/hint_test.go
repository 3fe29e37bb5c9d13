package hint

import (
	"strings"
	"testing"

	"github.com/japanalyze/japanalyze/pkg/conj"
)

func TestGenerateTranslationHintPotential(t *testing.T) {
	got := GenerateTranslationHint("to eat", []conj.Auxiliary{conj.Potential}, conj.Dictionary, true)
	if got != "can eat" {
		t.Errorf("got %q, want %q", got, "can eat")
	}
}

func TestGenerateTranslationHintNaiPast(t *testing.T) {
	got := GenerateTranslationHint("to eat", []conj.Auxiliary{conj.Nai}, conj.Ta, true)
	if !strings.Contains(got, "eat") {
		t.Errorf("got %q, want it to mention the verb meaning", got)
	}
}

func TestGenerateTranslationHintTeIru(t *testing.T) {
	got := GenerateTranslationHint("to eat", []conj.Auxiliary{conj.TeIru}, conj.Dictionary, true)
	if got != "is eating" {
		t.Errorf("got %q, want %q", got, "is eating")
	}
}

func TestGenerateTranslationHintVolitional(t *testing.T) {
	got := GenerateTranslationHint("to eat", nil, conj.Volitional, true)
	if got != "let's eat" {
		t.Errorf("got %q, want %q", got, "let's eat")
	}
}

func TestGenerateAdjectiveHintPast(t *testing.T) {
	got := GenerateAdjectiveHint("tall", conj.AdjPast)
	if got != "was tall" {
		t.Errorf("got %q, want %q", got, "was tall")
	}
}

func TestGenerateAdjectiveHintEmptyMeaning(t *testing.T) {
	if got := GenerateAdjectiveHint("", conj.AdjPast); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
}

func TestMakePastTenseRegularVerb(t *testing.T) {
	got := MakePastTense("to walk")
	if got != "walked" {
		t.Errorf("got %q, want %q", got, "walked")
	}
}

func TestMakePastTenseStripsNotPrefix(t *testing.T) {
	got := MakePastTense("not eat")
	if !strings.Contains(got, "eat") {
		t.Errorf("got %q, want it to retain the verb", got)
	}
}

func TestFirstMeaningStripsToPrefixAndExtras(t *testing.T) {
	got := firstMeaning("to eat; to consume")
	if got != "eat" {
		t.Errorf("got %q, want %q", got, "eat")
	}
}

func TestGetAuxiliaryInfoPotentialShortName(t *testing.T) {
	info := GetAuxiliaryInfo(conj.Potential)
	if info.ShortName != "potential" {
		t.Errorf("got %q, want %q", info.ShortName, "potential")
	}
}
