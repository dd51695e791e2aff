// Package anki encodes dictionary entries as AnkiWeb notes and submits them.
package anki

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/autoanki/internal/entry"
)

// ErrMissingExampleSentence is returned when an encoded detail has no example
// sentence to put on the card.
var ErrMissingExampleSentence = errors.New("missing example sentence")

// The note type has a word field, a count field and three detail slots.
const (
	slotCount     = 3
	fieldsPerSlot = 4
	FieldCount    = 2 + slotCount*fieldsPerSlot
)

// lineBreak joins two values inside one note field.
const lineBreak = "<br/>"

// Fields flattens e into the positional note fields:
//
//	word, detail count,
//	then per slot: part of speech, example, "phrase<br/>phrase example",
//	"phonetic<br/>definition".
//
// Only the first three details are used. A missing detail, or one without
// explanations, leaves its slot empty.
func Fields(e entry.Entry) ([]string, error) {
	fields := make([]string, 0, FieldCount)
	fields = append(fields, e.Word, strconv.Itoa(len(e.Details)))

	for i := 0; i < slotCount; i++ {
		slot, err := slotFields(e, i)
		if err != nil {
			return nil, err
		}
		fields = append(fields, slot...)
	}

	return fields, nil
}

func slotFields(e entry.Entry, i int) ([]string, error) {
	empty := make([]string, fieldsPerSlot)
	if i >= len(e.Details) {
		return empty, nil
	}

	d := e.Details[i]
	exp, ok := d.FirstExplanation()
	if !ok {
		return empty, nil
	}
	if len(exp.Examples) == 0 {
		return nil, fmt.Errorf("encoding %q detail %d (%s): %w", e.Word, i, d.PartOfSpeech, ErrMissingExampleSentence)
	}

	phrase := ""
	if p, ok := exp.FirstPhrase(); ok {
		example := ""
		if len(p.Examples) > 0 {
			example = p.Examples[0]
		}
		phrase = p.Phrase + lineBreak + example
	}

	return []string{
		d.PartOfSpeech.String(),
		exp.Examples[0],
		phrase,
		d.Phonetic + lineBreak + exp.Text,
	}, nil
}

// Encode renders e as the value of the note editor's "data" form field:
// [<JSON field array>,""].
func Encode(e entry.Entry) (string, error) {
	fields, err := Fields(e)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Fields carry literal <br/> markup.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(fields); err != nil {
		return "", fmt.Errorf("encoding fields: %w", err)
	}

	return fmt.Sprintf(`[%s,""]`, strings.TrimSuffix(buf.String(), "\n")), nil
}
