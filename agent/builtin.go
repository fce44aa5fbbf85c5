package agent

import (
	"time"

	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/registry"
)

// builtinProfiles returns the simulation tables for the four built-in agents.
// Delays are tuned so a full run finishes in a few seconds of wall time;
// tests replace the scheduler rather than these values.
func builtinProfiles() map[string]Profile {
	return map[string]Profile{
		registry.MuseID: {
			Delays: StageDelays{Thinking: 900 * time.Millisecond, Generating: 1500 * time.Millisecond, Building: 700 * time.Millisecond},
			Outputs: []core.Output{
				{Type: "image", Format: "png", Title: "Concept board", Content: "mock://muse/concept-board.png"},
			},
			Context: ContextTemplate{
				SummaryFormat: "Design concept produced for: %s",
				StructuredData: map[string]any{
					"palette":     []string{"#1B1F3B", "#F4A259", "#F9F7F3"},
					"style":       "minimal",
					"deliverable": "concept-board",
				},
				Tags: []string{"design", "visual", "brand"},
			},
		},
		registry.ForgeID: {
			Delays: StageDelays{Thinking: 800 * time.Millisecond, Generating: 2000 * time.Millisecond, Building: 1200 * time.Millisecond},
			// Forge is the multi-output agent: component source plus a
			// rendered preview.
			Outputs: []core.Output{
				{Type: "code", Format: "tsx", Title: "Component source", Content: "mock://forge/component.tsx"},
				{Type: "preview", Format: "html", Title: "Live preview", Content: "mock://forge/preview.html"},
			},
			Context: ContextTemplate{
				SummaryFormat: "Build completed for: %s",
				StructuredData: map[string]any{
					"stack":      []string{"react", "tailwind"},
					"entrypoint": "component.tsx",
				},
				Tags: []string{"code", "build", "component"},
			},
		},
		registry.ScoutID: {
			Delays: StageDelays{Thinking: 1100 * time.Millisecond, Generating: 1800 * time.Millisecond, Building: 500 * time.Millisecond},
			Outputs: []core.Output{
				{Type: "report", Format: "markdown", Title: "Research brief", Content: "mock://scout/research-brief.md"},
			},
			Context: ContextTemplate{
				SummaryFormat: "Research findings for: %s",
				StructuredData: map[string]any{
					"sources":    3,
					"highlights": []string{"key finding 1", "key finding 2"},
				},
				Tags: []string{"research", "analysis", "scout"},
			},
		},
		registry.FluxID: {
			Delays: StageDelays{Thinking: 700 * time.Millisecond, Generating: 1300 * time.Millisecond, Building: 900 * time.Millisecond},
			Outputs: []core.Output{
				{Type: "workflow", Format: "yaml", Title: "Automation workflow", Content: "mock://flux/workflow.yaml"},
			},
			Context: ContextTemplate{
				SummaryFormat: "Automation configured for: %s",
				StructuredData: map[string]any{
					"steps":   4,
					"trigger": "manual",
				},
				Tags: []string{"automation", "workflow"},
			},
		},
	}
}

// defaultProfile is the fallback simulation for dynamically registered agents
// without an explicit profile.
func defaultProfile() Profile {
	return Profile{
		Delays: StageDelays{Thinking: 1 * time.Second, Generating: 1500 * time.Millisecond, Building: 1 * time.Second},
		Outputs: []core.Output{
			{Type: "text", Format: "markdown", Title: "Result", Content: "mock://agent/result.md"},
		},
		Context: ContextTemplate{
			SummaryFormat:  "Result produced for: %s",
			StructuredData: map[string]any{},
			Tags:           []string{"result"},
		},
	}
}
