package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentdeck"
	"github.com/hupe1980/agentdeck/internal/testutil"
)

func newTestModel(t *testing.T) (*Model, *testutil.ManualScheduler) {
	t.Helper()
	sched := testutil.NewManualScheduler()
	deck := agentdeck.New(func(o *agentdeck.Options) { o.Scheduler = sched })
	return New(deck), sched
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (m *Model) press(msgs ...tea.KeyMsg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestModel_SpaceKeyInsertsSpace(t *testing.T) {
	m, _ := newTestModel(t)

	m.press(keyRunes("build"), tea.KeyMsg{Type: tea.KeySpace}, keyRunes("it"))

	assert.Equal(t, "build it", m.composer.Text())
}

func TestModel_SpaceEndsDismissedTriggerRun(t *testing.T) {
	m, _ := newTestModel(t)

	m.press(keyRunes("@Fo"))
	require.True(t, m.composer.Suggesting())

	// Esc dismisses the popup; further typing in the same run stays quiet.
	m.press(tea.KeyMsg{Type: tea.KeyEsc}, keyRunes("r"))
	assert.False(t, m.composer.Suggesting())

	// A space ends the run, so the next trigger opens a fresh suggestion.
	m.press(tea.KeyMsg{Type: tea.KeySpace}, keyRunes("@"))
	assert.True(t, m.composer.Suggesting())
	assert.Equal(t, "@For @", m.composer.Text())
}

func TestModel_EnterConfirmsThenSubmits(t *testing.T) {
	m, _ := newTestModel(t)

	m.press(keyRunes("@Fo"))
	require.True(t, m.composer.Suggesting())

	m.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "@Forge ", m.composer.Text())

	m.press(keyRunes("build"), tea.KeyMsg{Type: tea.KeySpace}, keyRunes("a"), tea.KeyMsg{Type: tea.KeySpace}, keyRunes("landing page"))
	m.press(tea.KeyMsg{Type: tea.KeyEnter})

	artifacts := m.deck.Artifacts()
	require.Len(t, artifacts, 1)
	assert.Equal(t, "build a landing page", artifacts[0].Title)
	assert.True(t, m.composer.Empty(), "input clears after a successful send")
}

func TestModel_BackspaceRemovesWholeMention(t *testing.T) {
	m, _ := newTestModel(t)

	m.press(keyRunes("@Fo"), tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "@Forge ", m.composer.Text())

	m.press(tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "", m.composer.Text())
}
