package conj

import "testing"

func TestConjugateIAdjectiveNegative(t *testing.T) {
	result, err := ConjugateAdjective("高い", AdjNegative)
	if err != nil {
		t.Fatalf("ConjugateAdjective failed: %v", err)
	}
	if result[0] != "高くない" {
		t.Errorf("got %v, want 高くない", result)
	}
}

func TestConjugateNaAdjectivePrenominal(t *testing.T) {
	result, err := ConjugateAdjectiveTyped("静か", AdjPrenominal, NaAdjective)
	if err != nil {
		t.Fatalf("ConjugateAdjectiveTyped failed: %v", err)
	}
	if result[0] != "静かな" {
		t.Errorf("got %v, want 静かな", result)
	}
}

func TestConjugateIiIrregular(t *testing.T) {
	result, err := ConjugateAdjective("いい", AdjNegative)
	if err != nil {
		t.Fatalf("ConjugateAdjective failed: %v", err)
	}
	if result[0] != "よくない" {
		t.Errorf("got %v, want よくない", result)
	}
}

func TestConjugateNaiEndingAddsSaBeforeSou(t *testing.T) {
	// つまらない -> stem つまらな, add_sa true -> つまらなさそう
	result, err := ConjugateAdjective("つまらない", AdjStemSou)
	if err != nil {
		t.Fatalf("ConjugateAdjective failed: %v", err)
	}
	if result[0] != "つまらなさそう" {
		t.Errorf("got %v, want つまらなさそう", result)
	}
}

func TestDeconjugateAdjectiveRoundTrip(t *testing.T) {
	forms, err := ConjugateAdjective("高い", AdjNegativePast)
	if err != nil {
		t.Fatalf("conjugate failed: %v", err)
	}
	hits := DeconjugateAdjective(forms[0], "高い", IAdjective)
	found := false
	for _, h := range hits {
		if h.Conjugation == AdjNegativePast {
			found = true
		}
	}
	if !found {
		t.Errorf("expected to recover AdjNegativePast from %q, got %+v", forms[0], hits)
	}
}

func TestIdentifyAdjectiveTypeException(t *testing.T) {
	class, ok := IdentifyAdjectiveType("きれい")
	if !ok || class != NaAdjective {
		t.Errorf("expected きれい to be identified as na-adjective exception, got class=%v ok=%v", class, ok)
	}
	class, ok = IdentifyAdjectiveType("高い")
	if !ok || class != IAdjective {
		t.Errorf("expected 高い to be identified as i-adjective, got class=%v ok=%v", class, ok)
	}
}
