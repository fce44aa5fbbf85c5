package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hupe1980/agentdeck"
	"github.com/hupe1980/agentdeck/compose"
	"github.com/hupe1980/agentdeck/core"
)

// artifactEventMsg wraps a lifecycle transition for the update loop.
type artifactEventMsg core.ArtifactEvent

// Model is the bubbletea model for the workspace.
type Model struct {
	deck     *agentdeck.AgentDeck
	composer *compose.Composer
	spin     spinner.Model
	styles   Styles

	events    chan core.ArtifactEvent
	artifacts []*core.Artifact
	status    string
	width     int
	quitting  bool
}

// New constructs the workspace model and subscribes it to the deck's
// lifecycle events.
func New(deck *agentdeck.AgentDeck) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		deck:     deck,
		composer: deck.NewComposer(),
		spin:     sp,
		styles:   DefaultStyles(),
		events:   make(chan core.ArtifactEvent, 64),
	}
	deck.Subscribe(core.ObserverFunc(m.enqueue))
	return m
}

// enqueue hands an event to the update loop. Observers must not block, so a
// full queue drops the event; the model repaints from deck state anyway.
func (m *Model) enqueue(ev core.ArtifactEvent) {
	select {
	case m.events <- ev:
	default:
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return artifactEventMsg(<-m.events)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.waitForEvent())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case artifactEventMsg:
		m.artifacts = m.deck.Artifacts()
		if ev := core.ArtifactEvent(msg); ev.Completed() && ev.Artifact != nil {
			m.status = fmt.Sprintf("%s finished %q", ev.AgentID, ev.Artifact.Title)
		}
		return m, m.waitForEvent()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		m.deck.CloseAll()
		return m, tea.Quit

	case "esc":
		if m.composer.Suggesting() {
			m.composer.Cancel()
			return m, nil
		}
		m.quitting = true
		m.deck.CloseAll()
		return m, tea.Quit

	case "up":
		m.composer.MoveSelection(-1)
		return m, nil

	case "down":
		m.composer.MoveSelection(1)
		return m, nil

	case "tab":
		if m.composer.Suggesting() {
			m.composer.Confirm()
		}
		return m, nil

	case "enter":
		if m.composer.Suggesting() {
			if m.composer.Confirm() {
				return m, nil
			}
			m.composer.Cancel()
		}
		return m.submit()

	case "backspace":
		m.composer.DeleteBackward()
		return m, nil

	case "left":
		m.composer.MoveCursor(m.composer.Cursor() - 1)
		return m, nil

	case "right":
		m.composer.MoveCursor(m.composer.Cursor() + 1)
		return m, nil

	case "home":
		m.composer.MoveCursor(0)
		return m, nil

	case "end":
		m.composer.MoveCursor(len([]rune(m.composer.Text())))
		return m, nil

	case " ": // KeySpace stringifies to a literal space
		m.composer.InsertText(" ")
		return m, nil

	default:
		if msg.Type == tea.KeyRunes {
			m.composer.InsertText(string(msg.Runes))
		}
		return m, nil
	}
}

// submit finalizes the composed message into a dispatch.
func (m *Model) submit() (tea.Model, tea.Cmd) {
	msg := m.composer.Message()
	if msg.IsBlank() {
		return m, nil
	}

	_, err := m.deck.Send(msg)
	if err != nil {
		m.status = err.Error()
		return m, nil
	}

	m.composer.Clear()
	m.artifacts = m.deck.Artifacts()
	m.status = ""
	return m, nil
}

// Run starts the workspace in the alternate screen until the user quits.
func Run(deck *agentdeck.AgentDeck) error {
	_, err := tea.NewProgram(New(deck), tea.WithAltScreen()).Run()
	return err
}
