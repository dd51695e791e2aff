// Package ldoce fetches Longman Dictionary of Contemporary English pages and
// extracts entries from them.
package ldoce

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/f3rmion/autoanki/internal/entry"
)

// LDOCE markup selectors.
const (
	selDictionary    = "div.dictionary"
	selEntry         = ".dictentry"
	selPronunciation = ".PronCodes"
	selPartOfSpeech  = ".POS"
	selSense         = ".Sense"
	selDefinition    = ".DEF"
	selSignpost      = ".SIGNPOST"
	selExample       = ".EXAMPLE"
	selPhraseBlock   = ".GramExa, .ColloExa"
	selPhraseHead    = ".PROPFORMPREP, .PROPFORM"
)

// Extract builds the entry for word from a parsed LDOCE page. It never fails:
// anything missing or malformed is left out.
func Extract(word string, doc *goquery.Document) entry.Entry {
	e := entry.Entry{Word: word}

	doc.Find(selDictionary).First().Find(selEntry).Each(func(_ int, s *goquery.Selection) {
		if d, ok := extractDetail(s); ok {
			e.Details = append(e.Details, d)
		}
	})

	return e
}

// extractDetail reads one entry block. Blocks with an unknown part of speech
// or without a usable sense are dropped.
func extractDetail(s *goquery.Selection) (entry.Detail, bool) {
	pos, err := entry.ParsePartOfSpeech(firstText(s, selPartOfSpeech))
	if err != nil {
		return entry.Detail{}, false
	}

	d := entry.Detail{
		Phonetic:     firstText(s, selPronunciation),
		PartOfSpeech: pos,
	}

	s.Find(selSense).Each(func(_ int, sense *goquery.Selection) {
		if exp, ok := extractExplanation(sense); ok {
			d.Explanations = append(d.Explanations, exp)
		}
	})

	if len(d.Explanations) == 0 {
		return entry.Detail{}, false
	}
	return d, true
}

func extractExplanation(sense *goquery.Selection) (entry.Explanation, bool) {
	def := text(sense.Find(selDefinition))
	if def == "" {
		return entry.Explanation{}, false
	}

	exp := entry.Explanation{Text: def}
	if signpost := text(sense.Find(selSignpost)); signpost != "" {
		exp.Text = fmt.Sprintf("[%s] %s", signpost, def)
	}

	// Sentences belonging to a phrase block are collected with the phrase.
	sense.Find(selExample).Each(func(_ int, ex *goquery.Selection) {
		if ex.ParentsFilteredUntilSelection(selPhraseBlock, sense).Length() > 0 {
			return
		}
		exp.Examples = append(exp.Examples, text(ex))
	})

	sense.Find(selPhraseBlock).Each(func(_ int, block *goquery.Selection) {
		if p, ok := extractPhrase(block); ok {
			exp.Phrases = append(exp.Phrases, p)
		}
	})

	return exp, true
}

func extractPhrase(block *goquery.Selection) (entry.Phrase, bool) {
	head := firstText(block, selPhraseHead)
	if head == "" {
		return entry.Phrase{}, false
	}
	return entry.Phrase{Phrase: head, Examples: texts(block.Find(selExample))}, true
}

// firstText returns the trimmed text of the first match of selector under s.
func firstText(s *goquery.Selection, selector string) string {
	return text(s.Find(selector).First())
}

func text(s *goquery.Selection) string {
	return strings.TrimSpace(s.Text())
}

func texts(s *goquery.Selection) []string {
	if s.Length() == 0 {
		return nil
	}
	return s.Map(func(_ int, n *goquery.Selection) string {
		return text(n)
	})
}
