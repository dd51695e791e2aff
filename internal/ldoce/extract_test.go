package ldoce

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/f3rmion/autoanki/internal/entry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func page(entries ...string) string {
	return `<html><body><div class="dictionary">` + strings.Join(entries, "\n") + `</div></body></html>`
}

const abandonVerb = `
<span class="dictentry">
  <span class="Head">
    <span class="HWD">abandon</span>
    <span class="PronCodes"> /əˈbæn.dən/ </span>
    <span class="POS"> verb </span>
  </span>
  <span class="Sense">
    <span class="DEF">to leave someone</span>
    <span class="EXAMPLE"> She abandoned it. </span>
  </span>
</span>`

func TestExtract_SingleSense(t *testing.T) {
	e := Extract("abandon", parseDoc(t, page(abandonVerb)))

	assert.Equal(t, entry.Entry{
		Word: "abandon",
		Details: []entry.Detail{{
			Phonetic:     "/əˈbæn.dən/",
			PartOfSpeech: entry.Verb,
			Explanations: []entry.Explanation{{
				Text:     "to leave someone",
				Examples: []string{"She abandoned it."},
			}},
		}},
	}, e)
}

func TestExtract_Signpost(t *testing.T) {
	html := page(`
<span class="dictentry">
  <span class="POS">verb</span>
  <span class="Sense">
    <span class="SIGNPOST">formal</span>
    <span class="DEF">to give up</span>
    <span class="EXAMPLE">They abandoned the attempt.</span>
  </span>
  <span class="Sense">
    <span class="SIGNPOST">  </span>
    <span class="DEF">to stop</span>
  </span>
</span>`)

	e := Extract("abandon", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	require.Len(t, e.Details[0].Explanations, 2)
	assert.Equal(t, "[formal] to give up", e.Details[0].Explanations[0].Text)
	assert.Equal(t, "to stop", e.Details[0].Explanations[1].Text)
	assert.Empty(t, e.Details[0].Explanations[1].Examples)
}

func TestExtract_NoMatchingNodes(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"empty document", ``},
		{"no dictionary container", `<html><body><span class="dictentry"><span class="POS">verb</span><span class="Sense"><span class="DEF">x</span></span></span></body></html>`},
		{"empty container", page()},
		{"entry without senses", page(`<span class="dictentry"><span class="POS">noun</span></span>`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Extract("word", parseDoc(t, tt.html))
			assert.Equal(t, "word", e.Word)
			assert.Empty(t, e.Details)
		})
	}
}

func TestExtract_DropsUnrecognizedPartOfSpeech(t *testing.T) {
	html := page(
		`<span class="dictentry"><span class="POS">phrasal verb</span><span class="Sense"><span class="DEF">a</span></span></span>`,
		`<span class="dictentry"><span class="Sense"><span class="DEF">b</span></span></span>`,
		`<span class="dictentry"><span class="POS">Noun</span><span class="Sense"><span class="DEF">c</span></span></span>`,
		`<span class="dictentry"><span class="POS">noun</span><span class="Sense"><span class="DEF">d</span></span></span>`,
	)

	e := Extract("word", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	assert.Equal(t, entry.Noun, e.Details[0].PartOfSpeech)
	assert.Equal(t, "d", e.Details[0].Explanations[0].Text)
}

func TestExtract_WhitespaceDefinitionExcluded(t *testing.T) {
	html := page(`
<span class="dictentry">
  <span class="POS">adjective</span>
  <span class="Sense"><span class="DEF">   </span><span class="EXAMPLE">lost</span></span>
  <span class="Sense"><span class="EXAMPLE">no definition at all</span></span>
  <span class="Sense"><span class="DEF">feeling pleasure</span><span class="EXAMPLE">a happy child</span></span>
</span>`)

	e := Extract("happy", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	require.Len(t, e.Details[0].Explanations, 1)
	assert.Equal(t, "feeling pleasure", e.Details[0].Explanations[0].Text)
	assert.Equal(t, []string{"a happy child"}, e.Details[0].Explanations[0].Examples)
}

func TestExtract_EntryWithOnlyEmptySensesDropped(t *testing.T) {
	html := page(
		`<span class="dictentry"><span class="POS">verb</span><span class="Sense"><span class="DEF"> </span></span></span>`,
		abandonVerb,
	)

	e := Extract("abandon", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	assert.Equal(t, "/əˈbæn.dən/", e.Details[0].Phonetic)
}

func TestExtract_Phrases(t *testing.T) {
	html := page(`
<span class="dictentry">
  <span class="POS">verb</span>
  <span class="Sense">
    <span class="DEF">to stop doing something</span>
    <span class="EXAMPLE">The company abandoned its bid.</span>
    <span class="GramExa">
      <span class="PROPFORMPREP">abandon somebody to something</span>
      <span class="EXAMPLE">They abandoned him to his fate.</span>
      <span class="EXAMPLE"> He was abandoned to the mob. </span>
    </span>
    <span class="ColloExa">
      <span class="COLLO PROPFORM">abandon hope</span>
      <span class="EXAMPLE">Don't abandon hope.</span>
    </span>
    <span class="GramExa">
      <span class="PROPFORM">   </span>
      <span class="EXAMPLE">skipped</span>
    </span>
    <span class="ColloExa">
      <span class="PROPFORM">abandon ship</span>
    </span>
    <span class="EXAMPLE">The match was abandoned.</span>
  </span>
</span>`)

	e := Extract("abandon", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	exp := e.Details[0].Explanations[0]
	assert.Equal(t, []string{"The company abandoned its bid.", "The match was abandoned."}, exp.Examples)
	assert.Equal(t, []entry.Phrase{
		{Phrase: "abandon somebody to something", Examples: []string{"They abandoned him to his fate.", "He was abandoned to the mob."}},
		{Phrase: "abandon hope", Examples: []string{"Don't abandon hope."}},
		{Phrase: "abandon ship"},
	}, exp.Phrases)
}

func TestExtract_PhraseHeadwordFirstMatch(t *testing.T) {
	html := page(`
<span class="dictentry">
  <span class="POS">verb</span>
  <span class="Sense">
    <span class="DEF">x</span>
    <span class="GramExa">
      <span class="PROPFORM">first form</span>
      <span class="PROPFORMPREP">second form</span>
    </span>
  </span>
</span>`)

	e := Extract("x", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	assert.Equal(t, "first form", e.Details[0].Explanations[0].Phrases[0].Phrase)
}

func TestExtract_FirstPronunciationAndPartOfSpeechWin(t *testing.T) {
	html := page(`
<span class="dictentry">
  <span class="PronCodes">/ˈrek.ɔːd/</span>
  <span class="POS">noun</span>
  <span class="PronCodes">/rɪˈkɔːd/</span>
  <span class="POS">verb</span>
  <span class="Sense"><span class="DEF">information stored</span><span class="EXAMPLE">medical records</span></span>
</span>`)

	e := Extract("record", parseDoc(t, html))

	require.Len(t, e.Details, 1)
	assert.Equal(t, "/ˈrek.ɔːd/", e.Details[0].Phonetic)
	assert.Equal(t, entry.Noun, e.Details[0].PartOfSpeech)
}

func TestExtract_DocumentOrder(t *testing.T) {
	html := page(
		`<span class="dictentry"><span class="POS">noun</span><span class="Sense"><span class="DEF">n1</span></span><span class="Sense"><span class="DEF">n2</span></span></span>`,
		`<span class="dictentry"><span class="POS">verb</span><span class="Sense"><span class="DEF">v1</span></span></span>`,
		`<span class="dictentry"><span class="POS">adverb</span><span class="Sense"><span class="DEF">a1</span></span></span>`,
	)

	e := Extract("w", parseDoc(t, html))

	require.Len(t, e.Details, 3)
	assert.Equal(t, entry.Noun, e.Details[0].PartOfSpeech)
	assert.Equal(t, entry.Verb, e.Details[1].PartOfSpeech)
	assert.Equal(t, entry.Adverb, e.Details[2].PartOfSpeech)
	assert.Equal(t, "n1", e.Details[0].Explanations[0].Text)
	assert.Equal(t, "n2", e.Details[0].Explanations[1].Text)
}

func TestExtract_WordComesFromInput(t *testing.T) {
	e := Extract("Abandon", parseDoc(t, page(abandonVerb)))
	assert.Equal(t, "Abandon", e.Word)
}
