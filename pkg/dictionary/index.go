package dictionary

import (
	"strings"
	"sync"

	"github.com/japanalyze/japanalyze/pkg/kana"
)

// nameSuffixes are common honorific/name suffixes to strip when a plain
// lookup misses, so a name like 田中さん can still resolve to 田中,
// grounded on jmdict.py's _NAME_SUFFIXES fallback.
var nameSuffixes = []string{"さん", "先生", "様", "君", "ちゃん", "殿", "氏", "さま"}

// posTagLabels maps a JMdict sense part-of-speech code to the learner-facing
// label spec.md §4.5 names, grounded on jmdict.py's POS_TAGS table.
var posTagLabels = map[string]string{
	"vt":     "Transitive",
	"vi":     "Intransitive",
	"adj-i":  "Adjective",
	"adj-na": "Adjective",
	"adj-ix": "Adjective",
	"adj-no": "Adjective",
	"ctr":    "Counter",
}

// miscTagLabels maps a JMdict sense misc/field code to its learner-facing
// label, grounded on jmdict.py's MISC_TAGS table.
var miscTagLabels = map[string]string{
	"uk":   "Usually Kana",
	"sl":   "Slang",
	"col":  "Colloquial",
	"hon":  "Honorific",
	"hum":  "Humble",
	"abbr": "Abbreviation",
}

// nameTypeLabels maps a JMnedict translation "type" code to the learner-facing
// label, falling back to the generic "Name" label for any unrecognized code.
var nameTypeLabels = map[string]string{
	"surname":      "Surname",
	"given":        "Given",
	"fem":          "Given",
	"masc":         "Given",
	"person":       "Name",
	"place":        "Place Name",
	"company":      "Company Name",
	"organization": "Organization Name",
	"product":      "Product Name",
	"station":      "Station Name",
	"work":         "Title Of Work",
	"unclass":      "Name",
}

// candidate is the common scoring surface for both word entries and name
// entries, so FindBestEntry can rank them with one scoring function.
type candidate struct {
	entry    *Entry
	name     *NameEntry
	kanji    []Element
	kanaElem []Element
}

func (c candidate) isName() bool { return c.name != nil }

// Index is an in-memory, read-only kanji/kana lookup index built once at
// startup. It is safe for concurrent reads from multiple goroutines, since
// nothing mutates it after NewIndex returns — the embedded mutex exists only
// to guard against a future caller adding post-construction mutation,
// mirroring the teacher's own defensive-locking comment in importer.go.
type Index struct {
	mu          sync.RWMutex
	kanji       map[string][]*Entry
	kanaIdx     map[string][]*Entry
	namesKanji  map[string][]*NameEntry
	namesKana   map[string][]*NameEntry
	version     string
}

// NewIndex builds an Index from a loaded JMdict word list and an optional
// JMnedict name list.
func NewIndex(entries []Entry, names []NameEntry, version string) *Index {
	idx := &Index{
		kanji:      make(map[string][]*Entry),
		kanaIdx:    make(map[string][]*Entry),
		namesKanji: make(map[string][]*NameEntry),
		namesKana:  make(map[string][]*NameEntry),
		version:    version,
	}
	for i := range entries {
		e := &entries[i]
		for _, k := range e.Kanji {
			idx.kanji[k.Text] = append(idx.kanji[k.Text], e)
		}
		for _, k := range e.Kana {
			idx.kanaIdx[k.Text] = append(idx.kanaIdx[k.Text], e)
		}
	}
	for i := range names {
		n := &names[i]
		for _, k := range n.Kanji {
			idx.namesKanji[k.Text] = append(idx.namesKanji[k.Text], n)
		}
		for _, k := range n.Kana {
			idx.namesKana[k.Text] = append(idx.namesKana[k.Text], n)
		}
	}
	return idx
}

// Version reports the dictionary release version the index was built from,
// or "" if unknown.
func (idx *Index) Version() string { return idx.version }

func (idx *Index) candidatesFor(word string, includeNames bool) []candidate {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []candidate
	seen := make(map[string]bool)
	add := func(e *Entry) {
		if seen[e.ID] {
			return
		}
		seen[e.ID] = true
		out = append(out, candidate{entry: e, kanji: e.Kanji, kanaElem: e.Kana})
	}
	for _, e := range idx.kanji[word] {
		add(e)
	}
	for _, e := range idx.kanaIdx[word] {
		add(e)
	}
	if len(out) > 0 || !includeNames {
		return out
	}

	seenNames := make(map[string]bool)
	addName := func(n *NameEntry) {
		if seenNames[n.ID] {
			return
		}
		seenNames[n.ID] = true
		out = append(out, candidate{name: n, kanji: n.Kanji, kanaElem: n.Kana})
	}
	for _, n := range idx.namesKanji[word] {
		addName(n)
	}
	for _, n := range idx.namesKana[word] {
		addName(n)
	}
	return out
}

func isHiragana(word string) bool {
	for _, r := range word {
		if !kana.IsHiragana(r) {
			return false
		}
	}
	return len(word) > 0
}

// scoreCandidate implements the exact weighting scheme of jmdict.py's
// _find_best_entry: +10 for a common kanji match, +5 per common kana
// element, +20 for an exact reading match, +18 for a voicing-normalized
// near match, +15 for a usually-kana ('uk') sense when the input itself is
// pure hiragana, and +50 when a counter sense is requested and present.
func scoreCandidate(c candidate, word, reading string, isCounter bool) int {
	score := 0
	for _, k := range c.kanji {
		if k.Text == word && k.Common {
			score += 10
		}
	}

	normReading := ""
	if reading != "" {
		normReading = kana.NormalizeReading(reading)
	}
	for _, k := range c.kanaElem {
		if k.Common {
			score += 5
		}
		if reading != "" && k.Text == reading {
			score += 20
		} else if normReading != "" && kana.NormalizeReading(k.Text) == normReading {
			score += 18
		}
	}

	if !c.isName() {
		if isHiragana(word) && len(c.entry.Sense) > 0 && containsTag(c.entry.Sense[0].Misc, "uk") {
			score += 15
		}
		if isCounter {
			for _, s := range c.entry.Sense {
				if containsTag(s.PartOfSpeech, "ctr") {
					score += 50
					break
				}
			}
		}
	}
	return score
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}

// FindBestEntry finds the single highest-scoring candidate for word,
// optionally biased by a known reading or counter usage, and optionally
// including proper-name entries when no word entry matches. It returns
// (nil, nil, false) if nothing matched at all.
func (idx *Index) FindBestEntry(word, reading string, isCounter, includeNames bool) (*Entry, *NameEntry, bool) {
	candidates := idx.candidatesFor(word, includeNames)
	if len(candidates) == 0 {
		return nil, nil, false
	}

	bestScore := -1
	var best candidate
	for _, c := range candidates {
		s := scoreCandidate(c, word, reading, isCounter)
		if s > bestScore {
			bestScore = s
			best = c
		}
	}
	return best.entry, best.name, true
}

// Lookup returns a short English meaning string and a set of learner-facing
// tags for word, trying a plain dictionary lookup first and falling back to
// JMnedict name lookup with honorific-suffix stripping, grounded on
// jmdict.py's lookup/lookup_details.
func (idx *Index) Lookup(word, reading string, isCounter bool) (string, []string, bool) {
	entry, name, ok := idx.FindBestEntry(word, reading, isCounter, true)
	if ok {
		if name != nil {
			return nameMeaning(name), nameTags(name), true
		}
		return entryMeaning(entry, isCounter), entryTags(entry, isCounter), true
	}

	// Name-suffix fallback: keep stripping honorifics and searching the
	// names index specifically until an actual name entry is found, rather
	// than stopping at the first suffix that happens to strip to anything
	// (a word entry included) — per spec.md §4.5's "if that hits a name
	// entry, return it with its name tags."
	for _, suffix := range nameSuffixes {
		if !strings.HasSuffix(word, suffix) || len([]rune(word)) <= len([]rune(suffix)) {
			continue
		}
		base := strings.TrimSuffix(word, suffix)
		if n, ok2 := idx.bestNameMatch(base); ok2 {
			return nameMeaning(n), nameTags(n), true
		}
	}
	return "", nil, false
}

// bestNameMatch finds the single highest-scoring JMnedict entry for word,
// searching only the names index (never falling back to a regular word
// entry), used by the honorific-suffix fallback in Lookup.
func (idx *Index) bestNameMatch(word string) (*NameEntry, bool) {
	idx.mu.RLock()
	seen := make(map[string]bool)
	var candidates []candidate
	add := func(n *NameEntry) {
		if seen[n.ID] {
			return
		}
		seen[n.ID] = true
		candidates = append(candidates, candidate{name: n, kanji: n.Kanji, kanaElem: n.Kana})
	}
	for _, n := range idx.namesKanji[word] {
		add(n)
	}
	for _, n := range idx.namesKana[word] {
		add(n)
	}
	idx.mu.RUnlock()

	if len(candidates) == 0 {
		return nil, false
	}
	bestScore := -1
	var best candidate
	for _, c := range candidates {
		s := scoreCandidate(c, word, "", false)
		if s > bestScore {
			bestScore = s
			best = c
		}
	}
	return best.name, true
}

// entryTags derives the learner-facing tag set for the sense entryMeaning
// would have picked (the counter sense if isCounter and present, else the
// first sense), from its part-of-speech and misc codes.
func entryTags(e *Entry, isCounter bool) []string {
	if e == nil || len(e.Sense) == 0 {
		return nil
	}
	sense := e.Sense[0]
	if isCounter {
		for _, s := range e.Sense {
			if containsTag(s.PartOfSpeech, "ctr") {
				sense = s
				break
			}
		}
	}

	var tags []string
	seen := make(map[string]bool)
	add := func(label string) {
		if label == "" || seen[label] {
			return
		}
		seen[label] = true
		tags = append(tags, label)
	}
	for _, p := range sense.PartOfSpeech {
		add(posTagLabels[p])
	}
	for _, m := range sense.Misc {
		add(miscTagLabels[m])
	}
	return tags
}

// nameTags derives the learner-facing tag set from a JMnedict entry's first
// translation group's type codes (surname, given, place, …).
func nameTags(n *NameEntry) []string {
	if n == nil || len(n.Translations) == 0 {
		return []string{"Name"}
	}
	var tags []string
	seen := make(map[string]bool)
	for _, code := range n.Translations[0].Type {
		label, ok := nameTypeLabels[code]
		if !ok {
			label = "Name"
		}
		if seen[label] {
			continue
		}
		seen[label] = true
		tags = append(tags, label)
	}
	if len(tags) == 0 {
		tags = []string{"Name"}
	}
	return tags
}

func nameMeaning(n *NameEntry) string {
	if len(n.Translations) == 0 {
		return ""
	}
	t := n.Translations[0]
	var texts []string
	for _, g := range t.Translation {
		if g.Text != "" {
			texts = append(texts, g.Text)
			if len(texts) == 3 {
				break
			}
		}
	}
	return strings.Join(texts, "; ")
}

func entryMeaning(e *Entry, isCounter bool) string {
	if e == nil || len(e.Sense) == 0 {
		return ""
	}
	target := e.Sense
	if isCounter {
		var counters []Sense
		for _, s := range e.Sense {
			if containsTag(s.PartOfSpeech, "ctr") {
				counters = append(counters, s)
			}
		}
		if len(counters) > 0 {
			target = counters
		}
	}
	var glosses []string
	for _, g := range target[0].Gloss {
		if g.Text != "" {
			glosses = append(glosses, g.Text)
			if len(glosses) == 3 {
				break
			}
		}
	}
	return strings.Join(glosses, "; ")
}
