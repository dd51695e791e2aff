// Package entry provides the dictionary entry model shared by the extractor
// and the note encoder.
package entry

// Entry is everything extracted for one looked-up word.
type Entry struct {
	Word    string   `yaml:"word" json:"word"`       // The normalized query word, never read from markup
	Details []Detail `yaml:"details" json:"details"` // One per recognized dictionary entry block, document order
}

// Detail is a single dictionary entry block (one part of speech).
type Detail struct {
	Phonetic     string        `yaml:"phonetic" json:"phonetic"` // IPA text, may be empty
	PartOfSpeech PartOfSpeech  `yaml:"part_of_speech" json:"part_of_speech"`
	Explanations []Explanation `yaml:"explanations" json:"explanations"` // Senses with a non-empty definition
}

// Explanation is one sense of a Detail.
type Explanation struct {
	Text     string   `yaml:"text" json:"text"`                             // Definition, "[signpost] definition" when signposted
	Examples []string `yaml:"examples,omitempty" json:"examples,omitempty"` // Sentences outside any phrase block
	Phrases  []Phrase `yaml:"phrases,omitempty" json:"phrases,omitempty"`
}

// Phrase is a grammar or collocation pattern listed under a sense.
type Phrase struct {
	Phrase   string   `yaml:"phrase" json:"phrase"`
	Examples []string `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// FirstExplanation returns the highest priority explanation of d.
func (d Detail) FirstExplanation() (Explanation, bool) {
	if len(d.Explanations) == 0 {
		return Explanation{}, false
	}
	return d.Explanations[0], true
}

// FirstPhrase returns the first phrase listed under e.
func (e Explanation) FirstPhrase() (Phrase, bool) {
	if len(e.Phrases) == 0 {
		return Phrase{}, false
	}
	return e.Phrases[0], true
}
