package testutil

import (
	"github.com/hupe1980/agentdeck/core"
)

// RecordBuilder helps construct context records with fluent chaining for
// tests. Example:
//
//	rec := NewRecordBuilder("research findings").Tags("research").Source("art-1", "Scout").Build()
type RecordBuilder struct {
	r core.ContextRecord
}

// NewRecordBuilder creates a builder for a record with the given summary.
func NewRecordBuilder(summary string) *RecordBuilder {
	return &RecordBuilder{r: core.ContextRecord{Summary: summary}}
}

// Data sets or overwrites a structured data key/value pair (chainable).
func (b *RecordBuilder) Data(key string, val any) *RecordBuilder {
	if b.r.StructuredData == nil {
		b.r.StructuredData = map[string]any{}
	}
	b.r.StructuredData[key] = val
	return b
}

// Tags appends context type tags (chainable).
func (b *RecordBuilder) Tags(tags ...string) *RecordBuilder {
	b.r.Tags = append(b.r.Tags, tags...)
	return b
}

// Source sets the originating artifact ID and agent name (chainable).
func (b *RecordBuilder) Source(artifactID, agentName string) *RecordBuilder {
	b.r.SourceArtifactID = artifactID
	b.r.SourceAgentName = agentName
	return b
}

// Build returns the assembled record.
func (b *RecordBuilder) Build() core.ContextRecord { return b.r }
