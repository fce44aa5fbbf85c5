package agentdeck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentdeck/config"
	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/internal/testutil"
	"github.com/hupe1980/agentdeck/lifecycle"
	"github.com/hupe1980/agentdeck/registry"
)

func newTestDeck(t *testing.T) (*AgentDeck, *testutil.ManualScheduler) {
	t.Helper()
	sched := testutil.NewManualScheduler()
	deck := New(func(o *Options) { o.Scheduler = sched })
	return deck, sched
}

func TestNew_RegistersBuiltins(t *testing.T) {
	deck, _ := newTestDeck(t)
	all := deck.Registry().GetAll()
	require.Len(t, all, 4)
	assert.Equal(t, registry.MuseID, all[0].ID)
}

func TestNew_RegistersConfigAgents(t *testing.T) {
	cfg := config.Default()
	cfg.Agents = []config.AgentConfig{{
		ID:       "writer",
		Name:     "Writer",
		Keywords: []string{"write", "article"},
	}}
	sched := testutil.NewManualScheduler()
	deck := New(func(o *Options) {
		o.Config = cfg
		o.Scheduler = sched
	})

	d, ok := deck.Registry().GetByID("writer")
	require.True(t, ok)
	assert.Equal(t, "Writer", d.Name)

	// Dynamically registered agents dispatch via the fallback profile.
	id, err := deck.SendText("@Writer write an article")
	require.NoError(t, err)
	for sched.Fire() {
	}
	a, ok := deck.Engine().Get(id)
	require.True(t, ok)
	assert.Equal(t, core.StatusCompleted, a.Status)
	assert.NotEmpty(t, a.Outputs)
}

func TestSend_MentionPinsAgent(t *testing.T) {
	deck, _ := newTestDeck(t)

	// The text alone would route to Forge; the mention overrides.
	id, err := deck.SendText("@Muse build an app for me")
	require.NoError(t, err)

	a, ok := deck.Engine().Get(id)
	require.True(t, ok)
	assert.Equal(t, registry.MuseID, a.AgentID)
}

func TestSend_MatcherRoutesWithoutMention(t *testing.T) {
	deck, _ := newTestDeck(t)

	id, err := deck.SendText("build a landing page for my shop")
	require.NoError(t, err)

	a, ok := deck.Engine().Get(id)
	require.True(t, ok)
	assert.Equal(t, registry.ForgeID, a.AgentID)
}

func TestSend_BlankRejected(t *testing.T) {
	deck, _ := newTestDeck(t)

	_, err := deck.SendText("   ")
	require.ErrorIs(t, err, lifecycle.ErrEmptyRequest)

	_, err = deck.Send(nil)
	require.ErrorIs(t, err, lifecycle.ErrEmptyRequest)

	assert.Empty(t, deck.Artifacts())
	assert.Empty(t, deck.History(), "rejected sends leave no history entry")
}

func TestSend_NoMatch(t *testing.T) {
	deck, _ := newTestDeck(t)

	_, err := deck.SendText("qwxyz gibberish nonsense")
	require.ErrorIs(t, err, ErrNoAgentMatched)
	assert.Empty(t, deck.Artifacts())
}

func TestSend_RecordsHistory(t *testing.T) {
	deck, _ := newTestDeck(t)

	id, err := deck.SendText("@Scout research the coffee market")
	require.NoError(t, err)

	h := deck.History()
	require.Len(t, h, 1)
	assert.Equal(t, "@Scout research the coffee market", h[0].Canonical)
	assert.Equal(t, id, h[0].ArtifactID)
	mention, ok := h[0].Composed.FirstMention()
	require.True(t, ok)
	assert.Equal(t, registry.ScoutID, mention.EntityID)
}

func TestDeck_ContextFlowsBetweenDispatches(t *testing.T) {
	deck, sched := newTestDeck(t)

	before := deck.Suggest("implement it")
	require.NotEmpty(t, before)
	require.Equal(t, registry.ForgeID, before[0].AgentID)

	// Complete a Scout run; its record should boost Forge next time.
	_, err := deck.SendText("@Scout research coffee shop trends")
	require.NoError(t, err)
	for sched.Fire() {
	}
	require.Equal(t, 1, deck.Bus().Len())

	after := deck.Suggest("implement it")
	require.NotEmpty(t, after)
	assert.Equal(t, registry.ForgeID, after[0].AgentID)
	assert.Greater(t, after[0].Confidence, before[0].Confidence)
	assert.Contains(t, after[0].Reason, "Scout")
}

func TestDeck_SnapshotExcludesLaterCompletions(t *testing.T) {
	deck, sched := newTestDeck(t)

	first, err := deck.SendText("@Scout research A")
	require.NoError(t, err)
	second, err := deck.SendText("@Muse design B")
	require.NoError(t, err)

	// Both dispatched before anything completed: both snapshots are empty.
	a1, _ := deck.Engine().Get(first)
	a2, _ := deck.Engine().Get(second)
	assert.Empty(t, a1.ContextSnapshot)
	assert.Empty(t, a2.ContextSnapshot)

	for sched.Fire() {
	}

	// A dispatch after both completions sees both records.
	third, err := deck.SendText("@Forge build C")
	require.NoError(t, err)
	a3, _ := deck.Engine().Get(third)
	assert.Len(t, a3.ContextSnapshot, 2)
}

func TestDeck_NewComposerUsesConfiguredTrigger(t *testing.T) {
	cfg := config.Default()
	cfg.Trigger = "#"
	deck := New(func(o *Options) {
		o.Config = cfg
		o.Scheduler = testutil.NewManualScheduler()
	})

	c := deck.NewComposer()
	assert.Equal(t, '#', c.Trigger())

	id, err := deck.SendText("#Flux automate my reports")
	require.NoError(t, err)
	a, _ := deck.Engine().Get(id)
	assert.Equal(t, registry.FluxID, a.AgentID)
}

func TestDeck_CloseAndCloseAll(t *testing.T) {
	deck, sched := newTestDeck(t)

	id, err := deck.SendText("@Muse design a logo")
	require.NoError(t, err)
	require.True(t, deck.Close(id))
	assert.False(t, deck.Close(id))

	_, err = deck.SendText("@Scout research X")
	require.NoError(t, err)
	_, err = deck.SendText("@Flux automate Y")
	require.NoError(t, err)
	deck.CloseAll()
	assert.Empty(t, deck.Artifacts())
	assert.Zero(t, sched.Pending())
}

func TestDeck_SubscribeReceivesTransitions(t *testing.T) {
	deck, sched := newTestDeck(t)

	var events []core.ArtifactEvent
	deck.Subscribe(core.ObserverFunc(func(ev core.ArtifactEvent) {
		events = append(events, ev)
	}))

	_, err := deck.SendText("@Muse design a logo")
	require.NoError(t, err)
	for sched.Fire() {
	}

	require.Len(t, events, 4)
	assert.True(t, events[len(events)-1].Completed())
}
