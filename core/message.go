package core

import "strings"

// Segment represents one polymorphic piece of a composed message. Concrete
// segment types implement the unexported isSegment marker enabling a closed
// set.
type Segment interface{ isSegment() }

// TextSegment is a plain text run.
type TextSegment struct {
	Text string
}

// isSegment implements the Segment interface for TextSegment.
func (TextSegment) isSegment() {}

// MentionEntity is an atomic inline reference to an agent embedded in
// composed text. An entity is indivisible: no edit may leave a fragment of
// its label behind; it is either fully present or fully removed.
type MentionEntity struct {
	EntityID     string // AgentDescriptor.ID
	DisplayLabel string // AgentDescriptor.Name at insertion time
}

// MentionSegment wraps a MentionEntity as a message segment.
type MentionSegment struct {
	Entity MentionEntity
}

// isSegment implements the Segment interface for MentionSegment.
func (MentionSegment) isSegment() {}

// ComposedMessage is an ordered sequence of text runs and atomic agent
// mentions. The segment form is the editing representation; the canonical
// flat string (trigger char + display label per mention) is the transport /
// storage representation. See the compose package for the bidirectional
// conversion.
type ComposedMessage struct {
	Segments []Segment
}

// PlainText flattens the message to the text the matcher scores: text runs
// verbatim, mentions as their display label.
func (m *ComposedMessage) PlainText() string {
	var b strings.Builder
	for _, seg := range m.Segments {
		switch s := seg.(type) {
		case TextSegment:
			b.WriteString(s.Text)
		case MentionSegment:
			b.WriteString(s.Entity.DisplayLabel)
		}
	}
	return b.String()
}

// Mentions returns all mention entities in order of appearance.
func (m *ComposedMessage) Mentions() []MentionEntity {
	var out []MentionEntity
	for _, seg := range m.Segments {
		if s, ok := seg.(MentionSegment); ok {
			out = append(out, s.Entity)
		}
	}
	return out
}

// FirstMention returns the first mention entity, if any. A dispatch pinned by
// an explicit mention routes to this entity regardless of matcher output.
func (m *ComposedMessage) FirstMention() (MentionEntity, bool) {
	for _, seg := range m.Segments {
		if s, ok := seg.(MentionSegment); ok {
			return s.Entity, true
		}
	}
	return MentionEntity{}, false
}

// IsBlank reports whether the message carries neither visible text nor a
// mention. Blank messages are rejected before any artifact is created.
func (m *ComposedMessage) IsBlank() bool {
	for _, seg := range m.Segments {
		switch s := seg.(type) {
		case MentionSegment:
			return false
		case TextSegment:
			if strings.TrimSpace(s.Text) != "" {
				return false
			}
		}
	}
	return true
}

// Clone returns a copy with an independent segment slice. Segment values are
// immutable, so a shallow element copy is sufficient.
func (m *ComposedMessage) Clone() *ComposedMessage {
	clone := &ComposedMessage{Segments: make([]Segment, len(m.Segments))}
	copy(clone.Segments, m.Segments)
	return clone
}
