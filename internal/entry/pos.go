package entry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedPartOfSpeech is returned when a raw dictionary label does not
// map to a PartOfSpeech.
var ErrUnrecognizedPartOfSpeech = errors.New("unrecognized part of speech")

// PartOfSpeech is the grammatical class of a Detail.
type PartOfSpeech int

const (
	Noun PartOfSpeech = iota
	Pronoun
	Adjective
	Numeral
	Verb
	Adverb
	Preposition
	Conjunction
	Interjection
	Article
)

// canonicalNames are the strings the note template expects. Every variant has
// exactly one.
var canonicalNames = [...]string{
	Noun:         "nouns",
	Pronoun:      "pronouns",
	Adjective:    "adjective",
	Numeral:      "num",
	Verb:         "verb",
	Adverb:       "adverb",
	Preposition:  "preposition",
	Conjunction:  "conjunction",
	Interjection: "interjection",
	Article:      "article",
}

// rawLabels are the LDOCE ".POS" labels we recognize. Pronoun, Interjection
// and Article never appear here.
var rawLabels = map[string]PartOfSpeech{
	"noun":        Noun,
	"adjective":   Adjective,
	"verb":        Verb,
	"adverb":      Adverb,
	"number":      Numeral,
	"conjunction": Conjunction,
	"preposition": Preposition,
}

// ParsePartOfSpeech converts a raw dictionary label. Matching is exact and
// case-sensitive after trimming surrounding whitespace.
func ParsePartOfSpeech(raw string) (PartOfSpeech, error) {
	if p, ok := rawLabels[strings.TrimSpace(raw)]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedPartOfSpeech, raw)
}

// PartOfSpeechByName is the inverse of String over the canonical names.
func PartOfSpeechByName(name string) (PartOfSpeech, error) {
	for i, n := range canonicalNames {
		if n == name {
			return PartOfSpeech(i), nil
		}
	}
	return 0, fmt.Errorf("%w: canonical name %q", ErrUnrecognizedPartOfSpeech, name)
}

// String returns the canonical note-template name.
func (p PartOfSpeech) String() string {
	if p < 0 || int(p) >= len(canonicalNames) {
		return fmt.Sprintf("PartOfSpeech(%d)", int(p))
	}
	return canonicalNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p PartOfSpeech) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(canonicalNames) {
		return nil, fmt.Errorf("invalid part of speech %d", int(p))
	}
	return []byte(canonicalNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PartOfSpeech) UnmarshalText(text []byte) error {
	v, err := PartOfSpeechByName(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
