package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/autoanki/internal/job"
	"github.com/mattn/go-runewidth"
)

// OutcomeMsg delivers a finished job to the progress view.
type OutcomeMsg job.Outcome

type row struct {
	word    string
	done    bool
	outcome job.Outcome
}

// ProgressModel shows a spinner for every pending word and its outcome once
// the job finishes. It quits when every word is done.
type ProgressModel struct {
	rows        []row
	remaining   int
	width       int
	spinner     spinner.Model
	interrupted bool
}

// NewProgress creates the view for words, in request order.
func NewProgress(words []string) ProgressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	rows := make([]row, len(words))
	for i, w := range words {
		rows[i] = row{word: job.NormalizeWord(w)}
	}

	return ProgressModel{
		rows:      rows,
		remaining: len(words),
		width:     WordWidth(words),
		spinner:   s,
	}
}

// Init starts the spinner.
func (m ProgressModel) Init() tea.Cmd {
	if m.remaining == 0 {
		return tea.Quit
	}
	return m.spinner.Tick
}

// Update handles messages.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case OutcomeMsg:
		if msg.Index < 0 || msg.Index >= len(m.rows) || m.rows[msg.Index].done {
			return m, nil
		}
		m.rows[msg.Index].done = true
		m.rows[msg.Index].outcome = job.Outcome(msg)
		m.remaining--
		if m.remaining == 0 {
			return m, tea.Quit
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			// Jobs keep running; only the view stops.
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the view.
func (m ProgressModel) View() string {
	var b strings.Builder

	done := len(m.rows) - m.remaining
	b.WriteString(TitleStyle.Render(fmt.Sprintf("Saving %d word(s) to Anki", len(m.rows))))
	b.WriteString(HelpStyle.Render(fmt.Sprintf("  %d/%d", done, len(m.rows))))
	b.WriteString("\n\n")

	for _, r := range m.rows {
		if r.done {
			b.WriteString(FormatOutcome(r.outcome, m.width))
		} else {
			b.WriteString(fmt.Sprintf("[%s] %s", m.spinner.View(), WordStyle.Render(runewidth.FillRight(r.word, m.width))))
		}
		b.WriteString("\n")
	}

	if m.remaining > 0 {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("q: hide progress (jobs keep running)"))
		b.WriteString("\n")
	}

	return b.String()
}

// Done reports whether every word has an outcome.
func (m ProgressModel) Done() bool {
	return m.remaining == 0
}

// Interrupted reports whether the view was closed before all words finished.
func (m ProgressModel) Interrupted() bool {
	return m.interrupted
}

// RunProgress shows the progress view while run executes. run receives the
// observer that feeds the view. It always waits for run to return.
func RunProgress(words []string, run func(job.Observer) []job.Outcome, opts ...tea.ProgramOption) ([]job.Outcome, ProgressModel, error) {
	p := tea.NewProgram(NewProgress(words), opts...)

	results := make(chan []job.Outcome, 1)
	go func() {
		results <- run(func(o job.Outcome) {
			p.Send(OutcomeMsg(o))
		})
	}()

	final, err := p.Run()
	outcomes := <-results

	model, _ := final.(ProgressModel)
	if err != nil {
		return outcomes, model, fmt.Errorf("running progress view: %w", err)
	}
	return outcomes, model, nil
}
