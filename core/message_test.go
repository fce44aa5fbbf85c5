package core

import "testing"

func TestComposedMessage_PlainText(t *testing.T) {
	msg := &ComposedMessage{Segments: []Segment{
		MentionSegment{Entity: MentionEntity{EntityID: "forge", DisplayLabel: "Forge"}},
		TextSegment{Text: " build a landing page"},
	}}
	if got := msg.PlainText(); got != "Forge build a landing page" {
		t.Fatalf("PlainText = %q", got)
	}
}

func TestComposedMessage_FirstMention(t *testing.T) {
	msg := &ComposedMessage{Segments: []Segment{
		TextSegment{Text: "ask "},
		MentionSegment{Entity: MentionEntity{EntityID: "scout", DisplayLabel: "Scout"}},
		MentionSegment{Entity: MentionEntity{EntityID: "muse", DisplayLabel: "Muse"}},
	}}
	first, ok := msg.FirstMention()
	if !ok || first.EntityID != "scout" {
		t.Fatalf("expected first mention scout, got %+v ok=%v", first, ok)
	}
	if n := len(msg.Mentions()); n != 2 {
		t.Fatalf("expected 2 mentions, got %d", n)
	}

	plain := &ComposedMessage{Segments: []Segment{TextSegment{Text: "no mentions here"}}}
	if _, ok := plain.FirstMention(); ok {
		t.Error("expected no mention")
	}
}

func TestComposedMessage_IsBlank(t *testing.T) {
	cases := []struct {
		name string
		msg  *ComposedMessage
		want bool
	}{
		{"empty", &ComposedMessage{}, true},
		{"whitespace only", &ComposedMessage{Segments: []Segment{TextSegment{Text: "  \n\t "}}}, true},
		{"visible text", &ComposedMessage{Segments: []Segment{TextSegment{Text: " hi "}}}, false},
		{"mention only", &ComposedMessage{Segments: []Segment{
			MentionSegment{Entity: MentionEntity{EntityID: "muse", DisplayLabel: "Muse"}},
		}}, false},
	}
	for _, c := range cases {
		if got := c.msg.IsBlank(); got != c.want {
			t.Errorf("%s: IsBlank = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestComposedMessage_CloneIndependentSegments(t *testing.T) {
	msg := &ComposedMessage{Segments: []Segment{TextSegment{Text: "a"}}}
	clone := msg.Clone()
	clone.Segments[0] = TextSegment{Text: "b"}
	if msg.Segments[0].(TextSegment).Text != "a" {
		t.Error("clone shares segment slice with original")
	}
}
