package conj

import "testing"

func TestConjugateType1Negative(t *testing.T) {
	result, err := ConjugateVerb("書く", Negative, false)
	if err != nil {
		t.Fatalf("ConjugateVerb failed: %v", err)
	}
	want := []string{"書か", "書かない"}
	if len(result) != len(want) || result[0] != want[0] || result[1] != want[1] {
		t.Errorf("got %v, want %v", result, want)
	}
}

func TestConjugateType2Negative(t *testing.T) {
	result, err := ConjugateVerb("食べる", Negative, true)
	if err != nil {
		t.Fatalf("ConjugateVerb failed: %v", err)
	}
	want := []string{"食べ", "食べない"}
	if len(result) != 2 || result[0] != want[0] || result[1] != want[1] {
		t.Errorf("got %v, want %v", result, want)
	}
}

func TestConjugateTeFormOnbin(t *testing.T) {
	tests := []struct {
		verb  string
		type2 bool
		want  string
	}{
		{"書く", false, "書いて"},
		{"泳ぐ", false, "泳いで"},
		{"話す", false, "話して"},
		{"死ぬ", false, "死んで"},
		{"飲む", false, "飲んで"},
		{"待つ", false, "待って"},
		{"行く", false, "行って"}, // irregular onbin
		{"食べる", true, "食べて"},
	}
	for _, tt := range tests {
		got, err := ConjugateVerb(tt.verb, Te, tt.type2)
		if err != nil {
			t.Fatalf("%s: %v", tt.verb, err)
		}
		if got[0] != tt.want {
			t.Errorf("%s te-form: got %q, want %q", tt.verb, got[0], tt.want)
		}
	}
}

func TestConjugateAuxiliaryPotentialRewritesToIchidan(t *testing.T) {
	result, err := ConjugateAuxiliary("書く", Potential, Dictionary, false)
	if err != nil {
		t.Fatalf("ConjugateAuxiliary failed: %v", err)
	}
	if !containsSurface(result, "書ける") {
		t.Errorf("expected 書ける among %v", result)
	}
}

func TestConjugateAuxiliariesChain(t *testing.T) {
	// 食べられなかった: potential + nai + past
	result, err := ConjugateAuxiliaries("食べる", []Auxiliary{ReruRareru, Nai}, Ta, true)
	if err != nil {
		t.Fatalf("ConjugateAuxiliaries failed: %v", err)
	}
	if !containsSurface(result, "食べられなかった") {
		t.Errorf("expected 食べられなかった among %v", result)
	}
}

func TestConjugateAuxiliariesRejectsNonFinalFinalOnly(t *testing.T) {
	_, err := ConjugateAuxiliaries("食べる", []Auxiliary{Nai, ReruRareru}, Dictionary, true)
	if err == nil {
		t.Fatal("expected an error when a final-only auxiliary is not last in the chain")
	}
}

func TestConjugateSuruIrregular(t *testing.T) {
	result, err := ConjugateVerb("する", Ta, false)
	if err != nil {
		t.Fatalf("ConjugateVerb failed: %v", err)
	}
	if result[0] != "した" {
		t.Errorf("got %v, want した", result)
	}
}

func TestConjugateKuruKanjiPrefix(t *testing.T) {
	result, err := ConjugateVerb("来る", Ta, false)
	if err != nil {
		t.Fatalf("ConjugateVerb failed: %v", err)
	}
	if result[0] != "来た" {
		t.Errorf("got %v, want 来た", result)
	}
}

func TestRoundTripVerbConjugationThenDeconjugation(t *testing.T) {
	cases := []struct {
		verb  string
		type2 bool
		conj  Conjugation
	}{
		{"書く", false, Ta},
		{"食べる", true, Negative},
		{"読む", false, Te},
	}
	for _, tt := range cases {
		forms, err := ConjugateVerb(tt.verb, tt.conj, tt.type2)
		if err != nil {
			t.Fatalf("%s: conjugate failed: %v", tt.verb, err)
		}
		hits := DeconjugateVerb(forms[0], tt.verb, tt.type2, 1)
		found := false
		for _, h := range hits {
			if h.Conjugation == tt.conj && len(h.Auxiliaries) == 0 {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: expected deconjugation of %q to recover %s, got %+v", tt.verb, forms[0], tt.conj, hits)
		}
	}
}

func TestDeconjugateVerbDepth2Chain(t *testing.T) {
	// 飲まれました: passive + polite depth2 (penultimate ReruRareru, final Masu) with Ta
	forms, err := ConjugateAuxiliaries("飲む", []Auxiliary{ReruRareru, Masu}, Ta, false)
	if err != nil {
		t.Fatalf("conjugate failed: %v", err)
	}
	hits := DeconjugateVerb(forms[0], "飲む", false, 2)
	found := false
	for _, h := range hits {
		if len(h.Auxiliaries) == 2 && h.Auxiliaries[0] == ReruRareru && h.Auxiliaries[1] == Masu && h.Conjugation == Ta {
			found = true
		}
	}
	if !found {
		t.Errorf("expected to recover ReruRareru+Masu chain for %q, got %+v", forms[0], hits)
	}
}

func TestIdentifyVerbType(t *testing.T) {
	if !IdentifyVerbType("食べる") {
		t.Error("expected 食べる to be identified as ichidan")
	}
	if IdentifyVerbType("書く") {
		t.Error("書く should not end in る")
	}
	// Note: a kana-spelled godan verb such as はしる is a false positive of
	// this heuristic (し before る is an i-row kana); 走る itself is not, since
	// the rune before る is the kanji 走.
}
