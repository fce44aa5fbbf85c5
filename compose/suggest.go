package compose

import (
	"strings"
	"unicode"

	"github.com/hupe1980/agentdeck/core"
)

// Suggestion is the state of an active trigger-driven suggestion workflow:
// the query typed after the trigger, the ranked candidate list and the
// selectable index. Items may be empty (query matched nothing); that is a
// valid empty-results state, not an error.
type Suggestion struct {
	Query   string
	Items   []core.AgentDescriptor
	Index   int
	trigger int // rune index of the trigger char in the canonical text
}

// Suggesting reports whether suggestion mode is active.
func (c *Composer) Suggesting() bool { return c.sugg != nil }

// CurrentSuggestion returns a copy of the active suggestion state.
func (c *Composer) CurrentSuggestion() (Suggestion, bool) {
	if c.sugg == nil {
		return Suggestion{}, false
	}
	out := *c.sugg
	out.Items = make([]core.AgentDescriptor, len(c.sugg.Items))
	copy(out.Items, c.sugg.Items)
	return out, true
}

// MoveSelection moves the selectable index by delta, clamped to
// [0, len(items)-1]. A no-op outside suggestion mode or with no items.
func (c *Composer) MoveSelection(delta int) {
	if c.sugg == nil || len(c.sugg.Items) == 0 {
		return
	}
	c.sugg.Index = clamp(c.sugg.Index+delta, 0, len(c.sugg.Items)-1)
}

// Confirm replaces the trigger + query run with a mention of the selected
// agent followed by a single separating space, and exits suggestion mode.
// Returns false when suggestion mode is inactive or the list is empty.
func (c *Composer) Confirm() bool {
	if c.sugg == nil || len(c.sugg.Items) == 0 {
		return false
	}
	d := c.sugg.Items[c.sugg.Index]
	c.insertMentionAt(c.sugg.trigger, c.cursor, d)
	return true
}

// Cancel exits suggestion mode without modifying the text. The dismissed
// trigger stays suppressed until the text or cursor leaves its run.
func (c *Composer) Cancel() {
	if c.sugg == nil {
		return
	}
	c.dismissedAt = c.sugg.trigger
	c.sugg = nil
}

// refreshSuggestion re-evaluates trigger detection at the current cursor:
// suggestion mode is active iff the cursor sits after a trigger char with no
// whitespace/newline in between, the trigger is not part of a committed
// mention, and that trigger was not explicitly dismissed.
func (c *Composer) refreshSuggestion() {
	trigger, ok := c.detectTrigger()
	if !ok || trigger == c.dismissedAt {
		if !ok {
			c.dismissedAt = -1
		}
		c.sugg = nil
		return
	}

	query := string(c.text[trigger+1 : c.cursor])
	items := c.filterAgents(query)

	index := 0
	if c.sugg != nil && c.sugg.trigger == trigger && c.sugg.Index < len(items) {
		index = c.sugg.Index
	}
	c.sugg = &Suggestion{Query: query, Items: items, Index: index, trigger: trigger}
}

// detectTrigger scans back from the cursor for the trigger char, stopping at
// whitespace or a committed mention.
func (c *Composer) detectTrigger() (int, bool) {
	for i := c.cursor - 1; i >= 0; i-- {
		r := c.text[i]
		if unicode.IsSpace(r) {
			return 0, false
		}
		if c.insideSpan(i) {
			return 0, false
		}
		if r == c.trigger {
			return i, true
		}
	}
	return 0, false
}

// filterAgents builds the ranked suggestion list for a query: substring match
// (case-insensitive) on name, description or a primary capability. Name hits
// rank before description hits, which rank before capability hits; within a
// rank, registration order is preserved. An empty query returns the full
// catalog.
func (c *Composer) filterAgents(query string) []core.AgentDescriptor {
	all := c.registry.GetAll()
	if query == "" {
		return all
	}
	q := strings.ToLower(query)

	var byName, byDescription, byCapability []core.AgentDescriptor
	for _, d := range all {
		switch {
		case strings.Contains(strings.ToLower(d.Name), q):
			byName = append(byName, d)
		case strings.Contains(strings.ToLower(d.Description), q):
			byDescription = append(byDescription, d)
		case capabilityContains(d, q):
			byCapability = append(byCapability, d)
		}
	}
	out := make([]core.AgentDescriptor, 0, len(byName)+len(byDescription)+len(byCapability))
	out = append(out, byName...)
	out = append(out, byDescription...)
	out = append(out, byCapability...)
	return out
}

func capabilityContains(d core.AgentDescriptor, q string) bool {
	for _, tag := range d.Capabilities.Primary {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
