package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/registry"
)

func TestStageDelays_For(t *testing.T) {
	d := StageDelays{Thinking: 1 * time.Second, Generating: 2 * time.Second, Building: 3 * time.Second}

	assert.Equal(t, 1*time.Second, d.For(core.StatusThinking))
	assert.Equal(t, 2*time.Second, d.For(core.StatusGenerating))
	assert.Equal(t, 3*time.Second, d.For(core.StatusBuilding))
	assert.Zero(t, d.For(core.StatusCompleted))
}

func TestStageDelays_Scale(t *testing.T) {
	d := StageDelays{Thinking: 1 * time.Second, Generating: 2 * time.Second, Building: 4 * time.Second}
	half := d.Scale(0.5)

	assert.Equal(t, 500*time.Millisecond, half.Thinking)
	assert.Equal(t, 1*time.Second, half.Generating)
	assert.Equal(t, 2*time.Second, half.Building)
}

func TestContextTemplate_Render(t *testing.T) {
	tmpl := ContextTemplate{
		SummaryFormat:  "Research findings for: %s",
		StructuredData: map[string]any{"sources": 3},
		Tags:           []string{"research"},
	}
	a := &core.Artifact{ID: "art-1", AgentID: "scout", RequestText: "coffee market"}

	rec := tmpl.Render(a, "Scout")

	assert.Equal(t, "Research findings for: coffee market", rec.Summary)
	assert.Equal(t, 3, rec.StructuredData["sources"])
	assert.Equal(t, "coffee market", rec.StructuredData["request"])
	assert.Equal(t, []string{"research"}, rec.Tags)
	assert.Equal(t, "art-1", rec.SourceArtifactID)
	assert.Equal(t, "Scout", rec.SourceAgentName)
	assert.Greater(t, rec.SizeEstimate, len(rec.Summary))

	// The template's own map must stay untouched by render-time additions.
	_, leaked := tmpl.StructuredData["request"]
	assert.False(t, leaked)
}

func TestCatalog_ResolveBuiltinsAndFallback(t *testing.T) {
	c := NewCatalog()

	for _, id := range []string{registry.MuseID, registry.ForgeID, registry.ScoutID, registry.FluxID} {
		p := c.Resolve(id)
		require.NotEmpty(t, p.Outputs, "builtin %s needs outputs", id)
		require.NotEmpty(t, p.Context.SummaryFormat, "builtin %s needs a context template", id)
		assert.Positive(t, p.Delays.Thinking)
	}

	// Unknown agents resolve to the fallback, keeping dynamically registered
	// descriptors dispatchable.
	p := c.Resolve("dynamic-agent")
	assert.NotEmpty(t, p.Outputs)
	assert.Positive(t, p.Delays.Thinking)
}

func TestCatalog_ForgeIsMultiOutput(t *testing.T) {
	p := NewCatalog().Resolve(registry.ForgeID)
	require.Len(t, p.Outputs, 2)
	assert.Equal(t, "code", p.Outputs[0].Type)
	assert.Equal(t, "preview", p.Outputs[1].Type)
}

func TestCatalog_SetOverrides(t *testing.T) {
	c := NewCatalog()
	custom := Profile{
		Delays:  StageDelays{Thinking: time.Millisecond},
		Outputs: []core.Output{{Type: "text", Format: "plain", Title: "t"}},
		Context: ContextTemplate{SummaryFormat: "done: %s"},
	}
	c.Set("custom", custom)
	assert.Equal(t, custom.Delays, c.Resolve("custom").Delays)
}

func TestCatalog_ScaleDelays(t *testing.T) {
	c := NewCatalog()
	before := c.Resolve(registry.MuseID).Delays
	fallbackBefore := c.Resolve("unknown").Delays

	c.ScaleDelays(0.5)

	assert.Equal(t, before.Thinking/2, c.Resolve(registry.MuseID).Delays.Thinking)
	assert.Equal(t, fallbackBefore.Thinking/2, c.Resolve("unknown").Delays.Thinking)
}
