package compose

import (
	"testing"

	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/registry"
)

func museDescriptor(c *Composer) core.AgentDescriptor {
	d, _ := c.registry.GetByID(registry.MuseID)
	return d
}

func TestComposer_InsertText(t *testing.T) {
	c := New(testRegistry())
	c.InsertText("hello")
	c.InsertText(" world")

	if got := c.Text(); got != "hello world" {
		t.Fatalf("Text = %q", got)
	}
	if c.Cursor() != 11 {
		t.Fatalf("cursor = %d, want 11", c.Cursor())
	}
}

func TestComposer_InsertMentionRendersTriggerLabelSpace(t *testing.T) {
	c := New(testRegistry())
	c.InsertMention(museDescriptor(c))

	if got := c.Text(); got != "@Muse " {
		t.Fatalf("Text = %q, want %q", got, "@Muse ")
	}
	// Cursor lands after the separating space.
	if c.Cursor() != 6 {
		t.Fatalf("cursor = %d, want 6", c.Cursor())
	}

	segs := c.Segments()
	if len(segs) != 2 {
		t.Fatalf("expected [mention, text], got %+v", segs)
	}
	m, ok := segs[0].(core.MentionSegment)
	if !ok || m.Entity.EntityID != registry.MuseID {
		t.Fatalf("expected Muse mention, got %+v", segs[0])
	}
	if txt := segs[1].(core.TextSegment).Text; txt != " " {
		t.Fatalf("separating space should be plain text, got %q", txt)
	}
}

func TestComposer_DeleteBackwardRemovesWholeMention(t *testing.T) {
	c := New(testRegistry())
	c.InsertMention(museDescriptor(c))
	// Delete the separating space first, cursor now sits at the span end.
	c.DeleteBackward()
	if got := c.Text(); got != "@Muse" {
		t.Fatalf("after space delete: %q", got)
	}

	c.DeleteBackward()
	if !c.Empty() {
		t.Fatalf("mention must vanish atomically, got %q", c.Text())
	}
	if len(c.Message().Mentions()) != 0 {
		t.Error("no mention entity should survive")
	}
}

func TestComposer_DeleteRangeExpandsOverMention(t *testing.T) {
	c := New(testRegistry())
	c.InsertText("ask ")
	c.InsertMention(museDescriptor(c))
	c.InsertText("now")
	// Text: "ask @Muse now", mention span [4,9).

	// A range nicking the middle of the label must swallow the whole span.
	c.DeleteRange(6, 7)
	if got := c.Text(); got != "ask  now" {
		t.Fatalf("Text = %q, want %q", got, "ask  now")
	}
	if len(c.Message().Mentions()) != 0 {
		t.Error("partially deleted mention must be fully removed")
	}
}

func TestComposer_CursorSnapsOutOfMention(t *testing.T) {
	c := New(testRegistry())
	c.InsertMention(museDescriptor(c))
	// Span is [0,5). Any interior position snaps to the span end.
	c.MoveCursor(2)
	if c.Cursor() != 5 {
		t.Fatalf("cursor = %d, want 5", c.Cursor())
	}
	// Span start is a valid boundary.
	c.MoveCursor(0)
	if c.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0", c.Cursor())
	}
}

func TestComposer_InsertNeverSplitsMention(t *testing.T) {
	c := New(testRegistry())
	c.InsertMention(museDescriptor(c))
	c.MoveCursor(3) // snaps to 5
	c.InsertText("X")

	if got := c.Text(); got != "@MuseX " {
		t.Fatalf("Text = %q: insert must land at the span boundary", got)
	}
	if len(c.Message().Mentions()) != 1 {
		t.Error("mention must survive adjacent insert")
	}
}

func TestComposer_SetTextDerivesSpans(t *testing.T) {
	c := New(testRegistry())
	c.SetText("@Forge build it with @Nobody", 0)

	mentions := c.Message().Mentions()
	if len(mentions) != 1 || mentions[0].EntityID != registry.ForgeID {
		t.Fatalf("expected only Forge to resolve, got %+v", mentions)
	}
	if got := c.Text(); got != "@Forge build it with @Nobody" {
		t.Fatalf("Text = %q", got)
	}
}

func TestComposer_MessageRoundTripsThroughCanonical(t *testing.T) {
	c := New(testRegistry())
	c.InsertText("hey ")
	c.InsertMention(museDescriptor(c))
	c.InsertText("draw a logo")

	canonical := ToCanonical(c.Message(), c.Trigger())
	reparsed := ParseCanonical(canonical, testRegistry(), '@')

	if ToCanonical(reparsed, '@') != canonical {
		t.Fatalf("canonical form must round-trip, got %q", canonical)
	}
	if len(reparsed.Mentions()) != 1 || reparsed.Mentions()[0].EntityID != registry.MuseID {
		t.Fatalf("mention lost in round-trip: %+v", reparsed.Segments)
	}
}

func TestComposer_PlainTextForMatcher(t *testing.T) {
	c := New(testRegistry())
	c.InsertMention(museDescriptor(c))
	c.InsertText("design a poster")
	if got := c.PlainText(); got != "Muse design a poster" {
		t.Fatalf("PlainText = %q", got)
	}
}

func TestComposer_Clear(t *testing.T) {
	c := New(testRegistry())
	c.InsertText("something @")
	c.Clear()
	if !c.Empty() || c.Cursor() != 0 || c.Suggesting() {
		t.Fatalf("Clear must fully reset: text=%q cursor=%d suggesting=%v", c.Text(), c.Cursor(), c.Suggesting())
	}
}
