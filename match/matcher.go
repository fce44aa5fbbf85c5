package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/logging"
)

const (
	// contextBonus is added when completed context intersects the
	// candidate's Triggers.ContextTypes.
	contextBonus = 20
	// capabilityBonus is added when a primary capability tag appears as a
	// case-insensitive substring of the request text.
	capabilityBonus = 15
	// maxResults caps the ranked list handed to callers.
	maxResults = 3
)

// Options holds configuration overrides passed to New().
type Options struct {
	// Logger receives per-call scoring diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Matcher ranks registered agents against request text. It is stateless
// beyond its registry reference and safe for concurrent use.
type Matcher struct {
	registry core.Registry
	logger   logging.Logger
}

// New constructs a Matcher over the given registry.
func New(registry core.Registry, optFns ...func(o *Options)) *Matcher {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Matcher{registry: registry, logger: opts.Logger}
}

// Match scores text against every registered agent and returns the top
// candidates (at most three) by saturating confidence.
//
// Pipeline:
//  1. Registry keyword/pattern scan provides the base score per candidate.
//  2. Candidates with consumable context types gain a fixed bonus when the
//     provided records' tags or source agents intersect them; the reason is
//     replaced with a context-aware explanation naming the matched sources.
//  3. A further bonus applies when any primary capability tag occurs in the
//     text; this reason takes final precedence.
//
// Empty or whitespace-only text short-circuits to an empty result. Equal
// confidences keep registration order, so the ranking is deterministic for
// fixed registry contents.
func (m *Matcher) Match(text string, records []core.ContextRecord) []core.MatchResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	base := m.registry.FindByKeyword(text)
	results := make([]core.MatchResult, 0, len(base))
	for _, km := range base {
		d := km.Descriptor
		score := km.Score
		reason := keywordReason(d, text)

		if sources := contextSources(d, records); len(sources) > 0 {
			score += contextBonus
			reason = fmt.Sprintf("can build on earlier results from %s", strings.Join(sources, ", "))
		}
		if tag, ok := primaryCapabilityIn(d, text); ok {
			score += capabilityBonus
			reason = fmt.Sprintf("primary capability match: %s", tag)
		}

		results = append(results, core.MatchResult{
			AgentID:    d.ID,
			Confidence: core.ClampConfidence(score),
			Reason:     reason,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Confidence > results[j].Confidence })
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	m.logger.Debug("match completed", "text_len", len(text), "candidates", len(base), "returned", len(results))
	return results
}

// contextSources returns the distinct source agent names of records whose
// tags or source agent intersect the descriptor's consumable context types,
// in record order.
func contextSources(d core.AgentDescriptor, records []core.ContextRecord) []string {
	if len(d.Triggers.ContextTypes) == 0 || len(records) == 0 {
		return nil
	}
	consumable := make(map[string]bool, len(d.Triggers.ContextTypes))
	for _, ct := range d.Triggers.ContextTypes {
		consumable[ct] = true
	}
	var sources []string
	seen := make(map[string]bool)
	for _, rec := range records {
		matched := consumable[rec.SourceAgentName]
		if !matched {
			for _, tag := range rec.Tags {
				if consumable[tag] {
					matched = true
					break
				}
			}
		}
		if matched && !seen[rec.SourceAgentName] {
			seen[rec.SourceAgentName] = true
			sources = append(sources, rec.SourceAgentName)
		}
	}
	return sources
}

// primaryCapabilityIn reports the first primary capability tag found as a
// case-insensitive substring of text.
func primaryCapabilityIn(d core.AgentDescriptor, text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, tag := range d.Capabilities.Primary {
		if tag != "" && strings.Contains(lower, strings.ToLower(tag)) {
			return tag, true
		}
	}
	return "", false
}

// keywordReason names the trigger keywords that contributed to the base
// score, falling back to a pattern explanation when only patterns fired.
func keywordReason(d core.AgentDescriptor, text string) string {
	lower := strings.ToLower(text)
	var matched []string
	for _, kw := range d.Triggers.Keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		}
	}
	if len(matched) > 0 {
		return fmt.Sprintf("trigger keywords matched: %s", strings.Join(matched, ", "))
	}
	return "trigger pattern matched"
}
