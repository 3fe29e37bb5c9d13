package phrase

import "testing"

func TestMatchLongestCommitment(t *testing.T) {
	e, ok := Match("なければなりませんでした")
	if !ok {
		t.Fatal("expected a match")
	}
	if e.Surface != "なければなりません" {
		t.Errorf("got %q, want the longest catalogue entry なければなりません", e.Surface)
	}
}

func TestMatchNoCandidate(t *testing.T) {
	_, ok := Match("食べました")
	if ok {
		t.Error("expected no catalogue match for a plain conjugated verb")
	}
}

func TestMatchShorterTextThanAnyEntry(t *testing.T) {
	_, ok := Match("べ")
	if ok {
		t.Error("expected no match when text is shorter than every candidate entry")
	}
}

func TestAllSortedLongestFirst(t *testing.T) {
	all := All()
	for i := 1; i < len(all); i++ {
		if len([]rune(all[i-1].Surface)) < len([]rune(all[i].Surface)) {
			t.Fatalf("catalogue not sorted longest-first at index %d: %q before %q", i, all[i-1].Surface, all[i].Surface)
		}
	}
}
