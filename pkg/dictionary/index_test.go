package dictionary

import "testing"

func sampleEntries() []Entry {
	return []Entry{
		{
			ID:    "1",
			Kanji: []Element{{Text: "橋", Common: true}},
			Kana:  []Element{{Text: "はし", Common: true}},
			Sense: []Sense{{PartOfSpeech: []string{"n"}, Gloss: []Gloss{{Text: "bridge"}}}},
		},
		{
			ID:    "2",
			Kanji: []Element{{Text: "箸"}},
			Kana:  []Element{{Text: "はし"}},
			Sense: []Sense{{PartOfSpeech: []string{"n"}, Gloss: []Gloss{{Text: "chopsticks"}}}},
		},
	}
}

func TestFindBestEntryPrefersCommonKanjiMatch(t *testing.T) {
	idx := NewIndex(sampleEntries(), nil, "test")
	entry, _, ok := idx.FindBestEntry("橋", "", false, false)
	if !ok {
		t.Fatal("expected a match")
	}
	if entry.ID != "1" {
		t.Errorf("expected entry 1 (common kanji match), got %s", entry.ID)
	}
}

func TestLookupReturnsGloss(t *testing.T) {
	idx := NewIndex(sampleEntries(), nil, "test")
	meaning, tags, ok := idx.Lookup("橋", "はし", false)
	if !ok || meaning != "bridge" {
		t.Errorf("got meaning=%q ok=%v, want bridge/true", meaning, ok)
	}
	if len(tags) != 0 {
		t.Errorf("got tags=%v, want none for a plain noun sense", tags)
	}
}

func TestLookupSurfacesSenseTags(t *testing.T) {
	entries := []Entry{
		{
			ID:    "t1",
			Kanji: []Element{{Text: "食べる", Common: true}},
			Kana:  []Element{{Text: "たべる", Common: true}},
			Sense: []Sense{{PartOfSpeech: []string{"v1", "vt"}, Misc: []string{"uk"}, Gloss: []Gloss{{Text: "to eat"}}}},
		},
	}
	idx := NewIndex(entries, nil, "test")
	_, tags, ok := idx.Lookup("食べる", "たべる", false)
	if !ok {
		t.Fatal("expected a match")
	}
	if len(tags) != 2 || tags[0] != "Transitive" || tags[1] != "Usually Kana" {
		t.Errorf("got tags=%v, want [Transitive, Usually Kana]", tags)
	}
}

func TestLookupNameSuffixFallback(t *testing.T) {
	names := []NameEntry{
		{
			ID:    "n1",
			Kanji: []Element{{Text: "田中"}},
			Kana:  []Element{{Text: "たなか"}},
			Translations: []NameTranslation{
				{Type: []string{"surname"}, Translation: []Gloss{{Text: "Tanaka"}}},
			},
		},
	}
	idx := NewIndex(nil, names, "test")
	meaning, tags, ok := idx.Lookup("田中さん", "", false)
	if !ok || meaning != "Tanaka" {
		t.Errorf("got meaning=%q ok=%v, want Tanaka/true via suffix fallback", meaning, ok)
	}
	if len(tags) != 1 || tags[0] != "Surname" {
		t.Errorf("got tags=%v, want [Surname]", tags)
	}
}

func TestLookupNameSuffixFallbackPrefersNameOverCoincidentalWordHit(t *testing.T) {
	// The suffix-stripped base happens to also be an ordinary dictionary
	// word. The fallback exists specifically to resolve names, so it must
	// not settle for that coincidental word hit — it should still surface
	// the name entry and its name tags.
	entries := []Entry{
		{
			ID:    "w1",
			Kanji: []Element{{Text: "田中", Common: true}},
			Kana:  []Element{{Text: "たなか", Common: true}},
			Sense: []Sense{{Gloss: []Gloss{{Text: "rice field (ordinary use)"}}}},
		},
	}
	names := []NameEntry{
		{
			ID:    "n2",
			Kanji: []Element{{Text: "田中"}},
			Kana:  []Element{{Text: "たなか"}},
			Translations: []NameTranslation{
				{Type: []string{"surname"}, Translation: []Gloss{{Text: "Tanaka"}}},
			},
		},
	}
	idx := NewIndex(entries, names, "test")
	meaning, tags, ok := idx.Lookup("田中様", "", false)
	if !ok || meaning != "Tanaka" {
		t.Errorf("got meaning=%q ok=%v, want Tanaka/true (must not settle for the word entry)", meaning, ok)
	}
	if len(tags) != 1 || tags[0] != "Surname" {
		t.Errorf("got tags=%v, want [Surname]", tags)
	}
}

func TestLookupVoicingNormalizedTieBreak(t *testing.T) {
	entries := []Entry{
		{
			ID:    "v1",
			Kanji: []Element{{Text: "場所"}},
			Kana:  []Element{{Text: "ばしょ"}},
			Sense: []Sense{{Gloss: []Gloss{{Text: "place"}}}},
		},
	}
	idx := NewIndex(entries, nil, "test")
	// はしょ (unvoiced) should still phonetically tie-break match ばしょ's entry.
	_, _, ok := idx.FindBestEntry("場所", "はしょ", false, false)
	if !ok {
		t.Fatal("expected a match via voicing-normalized reading comparison")
	}
}

func TestLookupMissReturnsFalse(t *testing.T) {
	idx := NewIndex(sampleEntries(), nil, "test")
	_, _, ok := idx.Lookup("存在しない単語", "", false)
	if ok {
		t.Error("expected no match for an unindexed word")
	}
}
