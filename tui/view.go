package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hupe1980/agentdeck/core"
)

// Styles bundles the lipgloss styles of the workspace view.
type Styles struct {
	Header     lipgloss.Style
	Mention    lipgloss.Style
	InputFrame lipgloss.Style
	Cursor     lipgloss.Style
	Popup      lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Card       lipgloss.Style
	CardDone   lipgloss.Style
	Status     lipgloss.Style
	Muted      lipgloss.Style
}

// DefaultStyles returns the default color scheme.
func DefaultStyles() Styles {
	return Styles{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Mention:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		InputFrame: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Cursor:     lipgloss.NewStyle().Reverse(true),
		Popup:      lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("39")).Padding(0, 1),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Unselected: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		CardDone:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("42")).Padding(0, 1),
		Status:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.styles.Header.Render("agentdeck"))
	b.WriteString("\n\n")

	for _, a := range m.artifacts {
		b.WriteString(m.renderCard(a))
		b.WriteString("\n")
	}
	if len(m.artifacts) > 0 {
		b.WriteString("\n")
	}

	if popup := m.renderSuggestions(); popup != "" {
		b.WriteString(popup)
		b.WriteString("\n")
	}

	b.WriteString(m.styles.InputFrame.Render(m.renderInput()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("enter send · tab/enter pick · esc dismiss/quit"))
	return b.String()
}

// renderInput paints the canonical text with highlighted mentions and a
// visible cursor. Mentions are atomic, so the cursor only ever sits between
// segments or inside a plain text run.
func (m *Model) renderInput() string {
	cursor := m.composer.Cursor()
	var b strings.Builder
	pos := 0
	placed := false

	for _, seg := range m.composer.Segments() {
		switch s := seg.(type) {
		case core.TextSegment:
			runes := []rune(s.Text)
			if !placed && cursor >= pos && cursor < pos+len(runes) {
				at := cursor - pos
				b.WriteString(string(runes[:at]))
				b.WriteString(m.styles.Cursor.Render(string(runes[at])))
				b.WriteString(string(runes[at+1:]))
				placed = true
			} else {
				b.WriteString(s.Text)
			}
			pos += len(runes)
		case core.MentionSegment:
			b.WriteString(m.styles.Mention.Render(string(m.composer.Trigger()) + s.Entity.DisplayLabel))
			pos += 1 + len([]rune(s.Entity.DisplayLabel))
		}
	}
	if !placed {
		b.WriteString(m.styles.Cursor.Render(" "))
	}
	return b.String()
}

// renderSuggestions paints the agent picker popup while suggestion mode is
// active.
func (m *Model) renderSuggestions() string {
	sugg, ok := m.composer.CurrentSuggestion()
	if !ok {
		return ""
	}
	if len(sugg.Items) == 0 {
		return m.styles.Popup.Render(m.styles.Muted.Render("no agents match " + strings.TrimSpace(sugg.Query)))
	}

	lines := make([]string, 0, len(sugg.Items))
	for i, d := range sugg.Items {
		line := fmt.Sprintf("%s · %s", d.Name, d.Description)
		if i == sugg.Index {
			line = m.styles.Selected.Render("▸ " + line)
		} else {
			line = m.styles.Unselected.Render("  " + line)
		}
		lines = append(lines, line)
	}
	return m.styles.Popup.Render(strings.Join(lines, "\n"))
}

// renderCard paints one artifact's progress card.
func (m *Model) renderCard(a *core.Artifact) string {
	var b strings.Builder

	name := a.AgentID
	if d, ok := m.deck.Registry().GetByID(a.AgentID); ok {
		name = d.Name
	}

	if a.Status.Terminal() {
		b.WriteString(fmt.Sprintf("✓ %s · %s", name, a.Title))
		for _, out := range a.Outputs {
			b.WriteString(fmt.Sprintf("\n  %s (%s) %s", out.Title, out.Format, m.styles.Muted.Render(out.Content)))
		}
		return m.styles.CardDone.Render(b.String())
	}

	b.WriteString(fmt.Sprintf("%s %s · %s", m.spin.View(), name, a.Title))
	b.WriteString("\n  " + m.renderProgress(a.Status))
	if n := len(a.ContextSnapshot); n > 0 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("\n  building on %d earlier result(s)", n)))
	}
	return m.styles.Card.Render(b.String())
}

// renderProgress paints the stage trail, marking the current status.
func (m *Model) renderProgress(current core.Status) string {
	stages := []core.Status{core.StatusThinking, core.StatusGenerating, core.StatusBuilding, core.StatusCompleted}
	parts := make([]string, 0, len(stages))
	for _, s := range stages {
		label := s.String()
		switch {
		case s == current:
			parts = append(parts, m.styles.Selected.Render(label))
		case s < current:
			parts = append(parts, m.styles.Muted.Render(label))
		default:
			parts = append(parts, m.styles.Unselected.Render(label))
		}
	}
	return strings.Join(parts, m.styles.Muted.Render(" → "))
}
