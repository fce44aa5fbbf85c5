package agent

import (
	"fmt"
	"time"

	"github.com/hupe1980/agentdeck/core"
)

// StageDelays holds the artificial latency of each pre-terminal lifecycle
// stage. Each delay is measured from entry into the stage, so the total
// simulated runtime is the sum of the three.
type StageDelays struct {
	Thinking   time.Duration
	Generating time.Duration
	Building   time.Duration
}

// For returns the dwell delay for the given pre-terminal status.
func (d StageDelays) For(s core.Status) time.Duration {
	switch s {
	case core.StatusThinking:
		return d.Thinking
	case core.StatusGenerating:
		return d.Generating
	case core.StatusBuilding:
		return d.Building
	default:
		return 0
	}
}

// Scale multiplies every delay by factor. Used by config to speed up or slow
// down all simulations uniformly.
func (d StageDelays) Scale(factor float64) StageDelays {
	scale := func(v time.Duration) time.Duration {
		return time.Duration(float64(v) * factor)
	}
	return StageDelays{
		Thinking:   scale(d.Thinking),
		Generating: scale(d.Generating),
		Building:   scale(d.Building),
	}
}

// ContextTemplate is the fixed per-agent recipe for synthesizing a
// core.ContextRecord when an artifact completes. SummaryFormat receives the
// original request text as its single fmt argument.
type ContextTemplate struct {
	SummaryFormat  string
	StructuredData map[string]any
	Tags           []string
}

// Render instantiates the template for a completed artifact.
func (t ContextTemplate) Render(a *core.Artifact, agentName string) core.ContextRecord {
	summary := fmt.Sprintf(t.SummaryFormat, a.RequestText)
	data := make(map[string]any, len(t.StructuredData)+1)
	for k, v := range t.StructuredData {
		data[k] = v
	}
	data["request"] = a.RequestText

	size := len(summary)
	for k, v := range data {
		size += len(k) + len(fmt.Sprint(v))
	}

	tags := make([]string, len(t.Tags))
	copy(tags, t.Tags)

	return core.ContextRecord{
		Summary:          summary,
		StructuredData:   data,
		Tags:             tags,
		SourceArtifactID: a.ID,
		SourceAgentName:  agentName,
		SizeEstimate:     size,
	}
}

// Profile bundles everything the lifecycle engine needs to simulate one
// agent: stage latency, the ordered mock outputs attached on completion and
// the context record template.
type Profile struct {
	Delays  StageDelays
	Outputs []core.Output
	Context ContextTemplate
}

// Catalog resolves agent IDs to simulation profiles. IDs without an explicit
// profile resolve to the default profile, so dynamically registered agents
// are dispatchable out of the box.
type Catalog struct {
	profiles map[string]Profile
	fallback Profile
}

// NewCatalog builds a catalog seeded with the built-in profiles.
func NewCatalog() *Catalog {
	return &Catalog{profiles: builtinProfiles(), fallback: defaultProfile()}
}

// Set installs or replaces the profile for an agent ID.
func (c *Catalog) Set(agentID string, p Profile) {
	c.profiles[agentID] = p
}

// Resolve returns the profile for agentID, falling back to the default.
func (c *Catalog) Resolve(agentID string) Profile {
	if p, ok := c.profiles[agentID]; ok {
		return p
	}
	return c.fallback
}

// ScaleDelays multiplies every profile's delays by factor, including the
// fallback. Config uses this to apply a global speed factor.
func (c *Catalog) ScaleDelays(factor float64) {
	for id, p := range c.profiles {
		p.Delays = p.Delays.Scale(factor)
		c.profiles[id] = p
	}
	c.fallback.Delays = c.fallback.Delays.Scale(factor)
}
