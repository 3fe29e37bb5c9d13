// Package segmenter adapts github.com/ikawaha/kagome/v2's IPA tokenizer to
// the pkg/morph.Morpheme interface used by the rest of the analyzer.
package segmenter

import (
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"github.com/japanalyze/japanalyze/pkg/morph"
)

// SplitMode controls how aggressively kagome splits compound words,
// mirroring spec.md §6's {Short, Mid, Long} modes.
type SplitMode int

const (
	// Short favors deep decomposition of compounds into their smallest
	// meaningful parts.
	Short SplitMode = iota
	// Mid is kagome's normal segmentation.
	Mid
	// Long favors preserving compound nouns as single units.
	Long
)

func (m SplitMode) kagomeMode() tokenizer.TokenizeMode {
	switch m {
	case Short:
		return tokenizer.Search
	case Long:
		return tokenizer.Extended
	default:
		return tokenizer.Normal
	}
}

// token is the concrete morph.Morpheme backed by a kagome tokenizer.Token.
type token struct {
	surface  string
	base     string
	reading  string
	pos      []string
	inflType string
	inflForm string
}

func (t token) Surface() string        { return t.surface }
func (t token) DictionaryForm() string {
	if t.base == "" {
		return t.surface
	}
	return t.base
}
func (t token) Reading() string          { return t.reading }
func (t token) PartOfSpeech() []string   { return t.pos }
func (t token) InflectionType() string   { return t.inflType }
func (t token) InflectionForm() string   { return t.inflForm }

// Sentence is one sentence's worth of morphemes plus its original text.
type Sentence struct {
	Text   string
	Tokens []morph.Morpheme
}

// Segmenter wraps a kagome tokenizer built from the IPA dictionary.
type Segmenter struct {
	t *tokenizer.Tokenizer
}

// New builds a Segmenter. It loads the IPA dictionary once; callers should
// keep a single Segmenter for the process lifetime and share it across
// goroutines, since kagome's tokenizer is safe for concurrent read-only use.
func New() (*Segmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("segmenter: build tokenizer: %w", err)
	}
	return &Segmenter{t: t}, nil
}

// Tokenize splits text into morphemes using the given split mode.
func (s *Segmenter) Tokenize(text string, mode SplitMode) []morph.Morpheme {
	kagomeTokens := s.t.Analyze(text, mode.kagomeMode())

	var result []morph.Morpheme
	for _, kt := range kagomeTokens {
		if kt.Class == tokenizer.DUMMY {
			continue
		}
		if strings.TrimSpace(kt.Surface) == "" {
			continue
		}
		result = append(result, tokenFromKagome(kt))
	}
	return result
}

func tokenFromKagome(kt tokenizer.Token) token {
	features := kt.Features()

	// IPA feature layout:
	// 0: POS, 1-3: sub-POS, 4: conjugation type, 5: conjugation form,
	// 6: base form, 7: reading, 8: pronunciation.
	base := kt.Surface
	if len(features) > 6 && features[6] != "*" {
		base = features[6]
	}
	reading := ""
	if len(features) > 7 && features[7] != "*" {
		reading = features[7]
	}
	inflType, inflForm := "", ""
	if len(features) > 4 {
		inflType = features[4]
	}
	if len(features) > 5 {
		inflForm = features[5]
	}

	pos := features
	if len(pos) > 4 {
		pos = pos[:4]
	}

	return token{
		surface:  kt.Surface,
		base:     base,
		reading:  reading,
		pos:      pos,
		inflType: inflType,
		inflForm: inflForm,
	}
}

// TokenizeDocument splits text into sentences on common Japanese sentence
// delimiters and newlines, then tokenizes each sentence independently.
func (s *Segmenter) TokenizeDocument(text string, mode SplitMode) []Sentence {
	var result []Sentence
	for _, raw := range splitSentences(text) {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		result = append(result, Sentence{Text: raw, Tokens: s.Tokenize(raw, mode)})
	}
	return result
}

func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range text {
		current.WriteRune(r)
		if r == '。' || r == '！' || r == '？' || r == '\n' {
			sentences = append(sentences, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		sentences = append(sentences, current.String())
	}
	return sentences
}
