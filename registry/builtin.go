package registry

import (
	"regexp"

	"github.com/hupe1980/agentdeck/core"
)

// Built-in agent IDs. External integrations may register additional
// descriptors at runtime; these four ship with every workspace.
const (
	MuseID  = "muse"  // design
	ForgeID = "forge" // code-build
	ScoutID = "scout" // research
	FluxID  = "flux"  // automation
)

// Builtins returns the descriptors of the four built-in agents in their
// canonical registration order. Callers receive fresh values and may adjust
// them before registration.
func Builtins() []core.AgentDescriptor {
	return []core.AgentDescriptor{
		{
			ID:          MuseID,
			Name:        "Muse",
			Icon:        "palette",
			Description: "Design agent for visuals, branding and layout work",
			Capabilities: core.Capabilities{
				Primary:   []string{"design", "branding"},
				Secondary: []string{"illustration", "layout"},
			},
			Triggers: core.Triggers{
				Keywords: []string{"design", "logo", "poster", "mockup", "wireframe", "brand", "illustration", "banner"},
				Patterns: []*regexp.Regexp{
					regexp.MustCompile(`(?i)\b(draw|sketch|visualize)\b`),
				},
				ContextTypes: []string{"research", "scout", "brand"},
			},
			Input:    core.InputSpec{Accepts: []string{"text", "image"}},
			Output:   core.OutputSpec{Type: "image", Formats: []string{"png", "svg"}},
			Metadata: core.DescriptorMetadata{Category: "design"},
		},
		{
			ID:          ForgeID,
			Name:        "Forge",
			Icon:        "hammer",
			Description: "Code-build agent for apps, sites and components",
			Capabilities: core.Capabilities{
				Primary:   []string{"code", "build"},
				Secondary: []string{"prototype", "deploy"},
			},
			Triggers: core.Triggers{
				Keywords: []string{"build", "code", "implement", "app", "website", "component", "api", "prototype"},
				Patterns: []*regexp.Regexp{
					regexp.MustCompile(`(?i)\b(react|frontend|backend|landing page)\b`),
				},
				ContextTypes: []string{"design", "muse", "research", "scout"},
			},
			Input:    core.InputSpec{Accepts: []string{"text", "file"}},
			Output:   core.OutputSpec{Type: "code", Formats: []string{"tsx", "html"}},
			Metadata: core.DescriptorMetadata{Category: "code"},
		},
		{
			ID:          ScoutID,
			Name:        "Scout",
			Icon:        "telescope",
			Description: "Research agent for analysis, comparisons and summaries",
			Capabilities: core.Capabilities{
				Primary:   []string{"research", "analysis"},
				Secondary: []string{"summarize", "compare"},
			},
			Triggers: core.Triggers{
				Keywords: []string{"research", "find", "analyze", "compare", "investigate", "summarize", "market", "trends"},
				Patterns: []*regexp.Regexp{
					regexp.MustCompile(`(?i)\bwhat (is|are)\b`),
				},
				// Scout seeds other agents; it consumes no prior context.
				ContextTypes: nil,
			},
			Input:    core.InputSpec{Accepts: []string{"text", "url"}},
			Output:   core.OutputSpec{Type: "report", Formats: []string{"markdown"}},
			Metadata: core.DescriptorMetadata{Category: "research"},
		},
		{
			ID:          FluxID,
			Name:        "Flux",
			Icon:        "bolt",
			Description: "Automation agent for workflows, schedules and integrations",
			Capabilities: core.Capabilities{
				Primary:   []string{"automation", "workflow"},
				Secondary: []string{"schedule", "integrate"},
			},
			Triggers: core.Triggers{
				Keywords: []string{"automate", "workflow", "schedule", "pipeline", "integrate", "sync", "recurring"},
				Patterns: []*regexp.Regexp{
					regexp.MustCompile(`(?i)\bevery (day|week|hour|morning)\b`),
				},
				ContextTypes: []string{"code", "forge", "research", "scout"},
			},
			Input:    core.InputSpec{Accepts: []string{"text"}},
			Output:   core.OutputSpec{Type: "workflow", Formats: []string{"yaml"}},
			Metadata: core.DescriptorMetadata{Category: "automation"},
		},
	}
}

// RegisterBuiltins registers the built-in agents on r in canonical order.
func RegisterBuiltins(r core.Registry) {
	for _, d := range Builtins() {
		r.Register(d)
	}
}
