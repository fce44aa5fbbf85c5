package compose

import (
	"sort"
	"strings"

	"github.com/hupe1980/agentdeck/core"
)

// span marks the rune range of one mention entity within the canonical text.
// The range covers the trigger char and the display label; end is exclusive.
type span struct {
	start, end int
	entity     core.MentionEntity
}

// Options holds configuration overrides passed to New().
type Options struct {
	// Trigger is the character that renders mentions and starts suggestion
	// mode. Defaults to DefaultTrigger.
	Trigger rune
}

// Composer is the editable input model. It owns the canonical text, the
// entity spans over it, the cursor and the suggestion state. All operations
// preserve two invariants:
//
//   - Entity atomicity: no operation ever leaves part of a mention label in
//     the text. Deletions touching a span remove it entirely; the cursor
//     snaps to span boundaries so an insert can never split one.
//   - Derived-view consistency: Text(), Segments() and Message() are always
//     in sync because they are computed from the same text + span pair.
//
// Composer is not safe for concurrent use; it models a single input surface.
type Composer struct {
	registry core.Registry
	trigger  rune

	text   []rune
	spans  []span // sorted by start, non-overlapping
	cursor int    // rune offset in [0, len(text)]

	sugg        *Suggestion
	dismissedAt int // trigger index suppressed by Cancel, -1 when unset
}

// New constructs an empty composer over the given registry.
func New(registry core.Registry, optFns ...func(o *Options)) *Composer {
	opts := Options{Trigger: DefaultTrigger}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Composer{registry: registry, trigger: opts.Trigger, dismissedAt: -1}
}

// Trigger returns the configured trigger character.
func (c *Composer) Trigger() rune { return c.trigger }

// Text returns the canonical flat string (mentions as trigger + label).
func (c *Composer) Text() string { return string(c.text) }

// Cursor returns the current rune offset.
func (c *Composer) Cursor() int { return c.cursor }

// Empty reports whether the composer holds no text at all.
func (c *Composer) Empty() bool { return len(c.text) == 0 }

// Message materializes the current state as a composed message.
func (c *Composer) Message() *core.ComposedMessage {
	msg := &core.ComposedMessage{}
	pos := 0
	for _, sp := range c.spans {
		if sp.start > pos {
			msg.Segments = append(msg.Segments, core.TextSegment{Text: string(c.text[pos:sp.start])})
		}
		msg.Segments = append(msg.Segments, core.MentionSegment{Entity: sp.entity})
		pos = sp.end
	}
	if pos < len(c.text) {
		msg.Segments = append(msg.Segments, core.TextSegment{Text: string(c.text[pos:])})
	}
	return msg
}

// Segments returns the current segment view.
func (c *Composer) Segments() []core.Segment { return c.Message().Segments }

// Clear resets the composer to empty.
func (c *Composer) Clear() {
	c.text = nil
	c.spans = nil
	c.cursor = 0
	c.sugg = nil
	c.dismissedAt = -1
}

// MoveCursor places the cursor, clamping to the text bounds and snapping out
// of any entity span (mentions are opaque to the cursor). Suggestion state is
// re-evaluated at the new position.
func (c *Composer) MoveCursor(pos int) {
	c.cursor = c.snap(clamp(pos, 0, len(c.text)))
	c.refreshSuggestion()
}

// InsertText inserts s at the cursor and advances it. Entity spans after the
// insertion point shift right; atomicity holds because the snapped cursor can
// never sit strictly inside a span.
func (c *Composer) InsertText(s string) {
	if s == "" {
		return
	}
	c.cursor = c.snap(c.cursor)
	ins := []rune(s)
	c.text = append(c.text[:c.cursor], append(append([]rune{}, ins...), c.text[c.cursor:]...)...)
	c.shiftSpans(c.cursor, len(ins))
	if c.dismissedAt >= c.cursor {
		c.dismissedAt += len(ins)
	}
	c.cursor += len(ins)
	c.refreshSuggestion()
}

// DeleteBackward removes the rune before the cursor. When the cursor
// sits at the end of a mention it removes the entire mention. It never removes part
// of a label.
func (c *Composer) DeleteBackward() {
	if c.cursor == 0 {
		return
	}
	if sp, ok := c.spanEndingAt(c.cursor); ok {
		c.DeleteRange(sp.start, sp.end)
		return
	}
	c.DeleteRange(c.cursor-1, c.cursor)
}

// DeleteRange removes [start, end), expanding the range to fully cover any
// entity span it touches so a mention is always removed whole. The cursor
// moves to the start of the removed range when it was inside or after it.
func (c *Composer) DeleteRange(start, end int) {
	start = clamp(start, 0, len(c.text))
	end = clamp(end, 0, len(c.text))
	if start >= end {
		return
	}
	for _, sp := range c.spans {
		if sp.start < end && sp.end > start {
			if sp.start < start {
				start = sp.start
			}
			if sp.end > end {
				end = sp.end
			}
		}
	}

	removed := end - start
	c.text = append(c.text[:start], c.text[end:]...)

	kept := c.spans[:0]
	for _, sp := range c.spans {
		if sp.start >= start && sp.end <= end {
			continue // swallowed by the deletion
		}
		if sp.start >= end {
			sp.start -= removed
			sp.end -= removed
		}
		kept = append(kept, sp)
	}
	c.spans = kept

	switch {
	case c.cursor >= end:
		c.cursor -= removed
	case c.cursor > start:
		c.cursor = start
	}
	switch {
	case c.dismissedAt >= end:
		c.dismissedAt -= removed
	case c.dismissedAt >= start:
		c.dismissedAt = -1 // the dismissed trigger itself was removed
	}
	c.refreshSuggestion()
}

// InsertMention inserts a mention for the descriptor at the cursor followed
// by a single separating space, without requiring an active trigger. This is
// the explicit picker path.
func (c *Composer) InsertMention(d core.AgentDescriptor) {
	c.cursor = c.snap(c.cursor)
	c.insertMentionAt(c.cursor, c.cursor, d)
}

// SetText replaces the whole content from a raw external edit, re-deriving
// entity spans by resolving trigger + label tokens against the registry
// (unresolved labels stay plain text). The cursor is clamped and snapped;
// suggestion state is re-evaluated.
func (c *Composer) SetText(raw string, cursor int) {
	msg := ParseCanonical(raw, c.registry, c.trigger)
	c.text = nil
	c.spans = nil
	for _, seg := range msg.Segments {
		switch s := seg.(type) {
		case core.TextSegment:
			c.text = append(c.text, []rune(s.Text)...)
		case core.MentionSegment:
			start := len(c.text)
			c.text = append(c.text, c.trigger)
			c.text = append(c.text, []rune(s.Entity.DisplayLabel)...)
			c.spans = append(c.spans, span{start: start, end: len(c.text), entity: s.Entity})
		}
	}
	c.cursor = c.snap(clamp(cursor, 0, len(c.text)))
	c.dismissedAt = -1
	c.refreshSuggestion()
}

// insertMentionAt replaces [start, end) with trigger + label + space and
// records the entity span. The cursor lands after the separating space.
func (c *Composer) insertMentionAt(start, end int, d core.AgentDescriptor) {
	label := []rune(d.Name)
	rendered := make([]rune, 0, len(label)+2)
	rendered = append(rendered, c.trigger)
	rendered = append(rendered, label...)
	rendered = append(rendered, ' ')

	c.text = append(c.text[:start], append(rendered, c.text[end:]...)...)
	delta := len(rendered) - (end - start)

	kept := c.spans[:0]
	for _, sp := range c.spans {
		if sp.start >= end {
			sp.start += delta
			sp.end += delta
		}
		kept = append(kept, sp)
	}
	c.spans = kept

	sp := span{
		start:  start,
		end:    start + 1 + len(label),
		entity: core.MentionEntity{EntityID: d.ID, DisplayLabel: d.Name},
	}
	c.spans = append(c.spans, sp)
	sort.SliceStable(c.spans, func(i, j int) bool { return c.spans[i].start < c.spans[j].start })

	c.cursor = sp.end + 1
	c.sugg = nil
	c.dismissedAt = -1
	c.refreshSuggestion()
}

// snap moves a position out of the interior of any span to its end, so the
// cursor never splits a mention.
func (c *Composer) snap(pos int) int {
	for _, sp := range c.spans {
		if pos > sp.start && pos < sp.end {
			return sp.end
		}
	}
	return pos
}

// shiftSpans moves every span at or after pos right by delta.
func (c *Composer) shiftSpans(pos, delta int) {
	for i := range c.spans {
		if c.spans[i].start >= pos {
			c.spans[i].start += delta
			c.spans[i].end += delta
		}
	}
}

// spanEndingAt returns the span whose end equals pos.
func (c *Composer) spanEndingAt(pos int) (span, bool) {
	for _, sp := range c.spans {
		if sp.end == pos {
			return sp, true
		}
	}
	return span{}, false
}

// insideSpan reports whether pos falls within a span (trigger char included).
func (c *Composer) insideSpan(pos int) bool {
	for _, sp := range c.spans {
		if pos >= sp.start && pos < sp.end {
			return true
		}
	}
	return false
}

// PlainText returns the matcher-facing text of the current message.
func (c *Composer) PlainText() string {
	return strings.TrimSpace(c.Message().PlainText())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
