package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/f3rmion/autoanki/internal/job"
	"github.com/mattn/go-runewidth"
)

const (
	successMark = "✓"
	failureMark = "✗"
)

// FormatOutcome renders one outcome line. The word is padded to width
// terminal cells so that failure details line up.
func FormatOutcome(o job.Outcome, width int) string {
	if o.OK() {
		return fmt.Sprintf("[%s] %s", SuccessMarkStyle.Render(successMark), WordStyle.Render(o.Word))
	}
	return fmt.Sprintf("[%s] %s %s",
		FailureMarkStyle.Render(failureMark),
		FailedWordStyle.Render(runewidth.FillRight(o.Word, width)),
		DetailStyle.Render("detail: "+o.Err.Error()),
	)
}

// WordWidth returns the widest normalized word in terminal cells.
func WordWidth(words []string) int {
	width := 0
	for _, w := range words {
		if n := runewidth.StringWidth(job.NormalizeWord(w)); n > width {
			width = n
		}
	}
	return width
}

// Reporter prints outcome lines as jobs finish. Report satisfies
// job.Observer.
type Reporter struct {
	mu    sync.Mutex
	w     io.Writer
	width int
}

// NewReporter creates a Reporter sized for words.
func NewReporter(w io.Writer, words []string) *Reporter {
	return &Reporter{w: w, width: WordWidth(words)}
}

// Report writes the line for o.
func (r *Reporter) Report(o job.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, FormatOutcome(o, r.width))
}
