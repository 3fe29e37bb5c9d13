// Package dictionary indexes jmdict-simplified (JMdict) and JMnedict (proper
// names) JSON exports for scored kanji/kana/reading lookup, with a
// name-suffix-stripping fallback for proper nouns.
package dictionary

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnavailable names the state in which the dictionary index could not be
// built (e.g. the backing file failed to load). No function in this package
// returns it; cmd/japanalyze falls back to an empty index instead, so lookups
// degrade to an empty meaning rather than failing outright.
var ErrUnavailable = errors.New("dictionary: index unavailable")

// Element is a single kanji or kana reading/spelling within an entry.
type Element struct {
	Text   string   `json:"text"`
	Common bool     `json:"common"`
	Tags   []string `json:"tags"`
}

// Gloss is one English definition string.
type Gloss struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Sense is one grouped meaning of an Entry, with its part-of-speech tags
// and glosses.
type Sense struct {
	PartOfSpeech []string `json:"partOfSpeech"`
	Gloss        []Gloss  `json:"gloss"`
	Misc         []string `json:"misc"`
}

// Entry mirrors a jmdict-simplified dictionary entry.
type Entry struct {
	ID    string    `json:"id"`
	Kanji []Element `json:"kanji"`
	Kana  []Element `json:"kana"`
	Sense []Sense   `json:"sense"`
}

// NameTranslation is one JMnedict translation group (a gloss plus the kind
// of name it is — surname, given name, place, etc).
type NameTranslation struct {
	Type        []string `json:"type"`
	Translation []Gloss  `json:"translation"`
}

// NameEntry mirrors a JMnedict (proper name) entry.
type NameEntry struct {
	ID           string            `json:"id"`
	Kanji        []Element         `json:"kanji"`
	Kana         []Element         `json:"kana"`
	Translations []NameTranslation `json:"translation"`
}

// DefinitionEntry is a flattened view of an Entry's senses, suitable for
// storing in pkg/history or returning in a response view.
type DefinitionEntry struct {
	Senses []string `json:"senses"`
	POS    []string `json:"pos"`
}

// LoadJMdictSimplified reads a jmdict-simplified JSON file (either the bare
// array form or the `{"words": [...]}` wrapper form) and returns its
// entries.
func LoadJMdictSimplified(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapped struct {
		Words []Entry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapped); err == nil && len(wrapped.Words) > 0 {
		return wrapped.Words, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []Entry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("dictionary: parse jmdict json: %w", err)
	}
	return entries, nil
}

// LoadJMnedict reads a JMnedict-simplified JSON file in the same two shapes
// as LoadJMdictSimplified.
func LoadJMnedict(path string) ([]NameEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var wrapped struct {
		Words []NameEntry `json:"words"`
	}
	dec := json.NewDecoder(f)
	if err := dec.Decode(&wrapped); err == nil && len(wrapped.Words) > 0 {
		return wrapped.Words, nil
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	var entries []NameEntry
	dec = json.NewDecoder(f)
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("dictionary: parse jmnedict json: %w", err)
	}
	return entries, nil
}

// FormatDefinitions flattens entries' senses into a JSON array of
// DefinitionEntry values.
func FormatDefinitions(entries []Entry) (string, error) {
	var defs []DefinitionEntry
	for _, e := range entries {
		var senses []string
		var poses []string
		for _, s := range e.Sense {
			for _, g := range s.Gloss {
				senses = append(senses, g.Text)
			}
			poses = append(poses, s.PartOfSpeech...)
		}
		defs = append(defs, DefinitionEntry{Senses: senses, POS: poses})
	}
	b, err := json.Marshal(defs)
	return string(b), err
}
