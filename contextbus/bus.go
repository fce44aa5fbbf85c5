package contextbus

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/logging"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// Logger receives ingestion diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Bus accumulates context records as artifacts complete. It implements
// core.ArtifactObserver and is meant to be subscribed to the lifecycle
// engine; records are ingested exactly once per source artifact and kept in
// completion order.
type Bus struct {
	logger logging.Logger

	mu      sync.RWMutex
	records []core.ContextRecord
	seen    map[string]bool // source artifact IDs already ingested
}

// Compile-time interface assertion.
var _ core.ArtifactObserver = (*Bus)(nil)

// New constructs an empty bus.
func New(optFns ...func(o *Options)) *Bus {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Bus{logger: opts.Logger, seen: make(map[string]bool)}
}

// OnTransition ingests the context record carried by a completion event.
// Non-terminal transitions and duplicate publications are ignored.
func (b *Bus) OnTransition(ev core.ArtifactEvent) {
	if !ev.Completed() || ev.Record == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.seen[ev.ArtifactID] {
		return
	}
	b.seen[ev.ArtifactID] = true
	b.records = append(b.records, ev.Record.Clone())
	b.logger.Debug("context record ingested", "artifact_id", ev.ArtifactID, "source", ev.Record.SourceAgentName, "total", len(b.records))
}

// Snapshot returns a frozen copy of the accumulated records, taken at call
// time. A dispatch stores this on the outgoing artifact so that artifacts
// completing later never retroactively appear in what that dispatch "saw".
func (b *Bus) Snapshot() []core.ContextRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]core.ContextRecord, 0, len(b.records))
	for _, rec := range b.records {
		out = append(out, rec.Clone())
	}
	return out
}

// Len returns the number of accumulated records.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

// Collect returns the context record of every completed artifact in the
// given slice, preserving artifact order. It is the pure, list-derived
// counterpart to the bus's own accumulation and intentionally applies no
// relevance filtering.
func Collect(artifacts []*core.Artifact) []core.ContextRecord {
	var out []core.ContextRecord
	for _, a := range artifacts {
		if a == nil || a.Status != core.StatusCompleted || a.ContextData == nil {
			continue
		}
		out = append(out, a.ContextData.Clone())
	}
	return out
}

// BuildSummaryPrompt renders records into the deterministic context payload
// handed to a newly dispatched agent: one block per record with its summary,
// tags and structured data (keys sorted for stable output).
func BuildSummaryPrompt(records []core.ContextRecord) string {
	if len(records) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Context from earlier results:\n")
	for i, rec := range records {
		fmt.Fprintf(&b, "\n[%d] %s: %s\n", i+1, rec.SourceAgentName, rec.Summary)
		if len(rec.Tags) > 0 {
			fmt.Fprintf(&b, "tags: %s\n", strings.Join(rec.Tags, ", "))
		}
		keys := make([]string, 0, len(rec.StructuredData))
		for k := range rec.StructuredData {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "%s: %v\n", k, rec.StructuredData[k])
		}
	}
	return b.String()
}

// IsRelevant reports whether a record plausibly matters to the given request:
// any record tag occurs as a case-insensitive substring of the request text,
// or the record's tags / source agent intersect the target's consumable
// context types. This primitive is available to callers but not applied by
// Snapshot or Collect.
func IsRelevant(rec core.ContextRecord, target core.AgentDescriptor, requestText string) bool {
	lower := strings.ToLower(requestText)
	for _, tag := range rec.Tags {
		if tag != "" && strings.Contains(lower, strings.ToLower(tag)) {
			return true
		}
	}
	for _, ct := range target.Triggers.ContextTypes {
		if ct == rec.SourceAgentName {
			return true
		}
		for _, tag := range rec.Tags {
			if tag == ct {
				return true
			}
		}
	}
	return false
}

// FilterRelevant returns the subset of records IsRelevant accepts, in input
// order.
func FilterRelevant(records []core.ContextRecord, target core.AgentDescriptor, requestText string) []core.ContextRecord {
	var out []core.ContextRecord
	for _, rec := range records {
		if IsRelevant(rec, target, requestText) {
			out = append(out, rec)
		}
	}
	return out
}
