package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/autoanki/internal/job"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestProgress_QuitsWhenAllDone(t *testing.T) {
	var m tea.Model = NewProgress([]string{"alpha", "beta"})

	m, cmd := m.Update(OutcomeMsg{Index: 1, Word: "beta"})
	assert.False(t, isQuit(cmd))
	assert.Contains(t, m.View(), "[✓] beta")
	assert.Contains(t, m.View(), "1/2")

	// A repeated outcome for the same row is ignored.
	m, cmd = m.Update(OutcomeMsg{Index: 1, Word: "beta"})
	assert.False(t, isQuit(cmd))

	m, cmd = m.Update(OutcomeMsg{Index: 0, Word: "alpha", Err: errors.New("not found")})
	assert.True(t, isQuit(cmd))

	pm, ok := m.(ProgressModel)
	require.True(t, ok)
	assert.True(t, pm.Done())
	assert.False(t, pm.Interrupted())
	assert.Contains(t, pm.View(), "[✗] alpha detail: not found")
	assert.NotContains(t, pm.View(), "q: hide progress")
}

func TestProgress_Interrupt(t *testing.T) {
	var m tea.Model = NewProgress([]string{"alpha"})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, isQuit(cmd))

	pm := m.(ProgressModel)
	assert.True(t, pm.Interrupted())
	assert.False(t, pm.Done())
}

func TestProgress_OutOfRangeIgnored(t *testing.T) {
	var m tea.Model = NewProgress([]string{"alpha"})
	m, cmd := m.Update(OutcomeMsg{Index: 3, Word: "x"})
	assert.Nil(t, cmd)
	assert.False(t, m.(ProgressModel).Done())
}

func TestProgress_NoWords(t *testing.T) {
	assert.True(t, isQuit(NewProgress(nil).Init()))
}

func TestOutcomeMsgMatchesRunnerOutcome(t *testing.T) {
	o := job.Outcome{Index: 2, Word: "w"}
	assert.Equal(t, o, job.Outcome(OutcomeMsg(o)))
}
