package core

// ContextRecord is the structured, reusable summary of a completed artifact's
// output. Records are created exactly once, when the source artifact
// transitions to StatusCompleted, and are immutable thereafter: consumers
// receive clones and the bus never rewrites a published record.
//
// Tags participate in context-aware matching (intersection with an agent's
// Triggers.ContextTypes) and in relevance filtering. StructuredData is an
// open, agent-specific schema; SizeEstimate is a rough character count used
// by rendering layers to hint payload weight.
type ContextRecord struct {
	Summary          string
	StructuredData   map[string]any
	Tags             []string
	SourceArtifactID string
	SourceAgentName  string
	SizeEstimate     int
}

// Clone returns a deep copy of the record (maps and slices included).
func (r ContextRecord) Clone() ContextRecord {
	clone := r
	if r.StructuredData != nil {
		clone.StructuredData = make(map[string]any, len(r.StructuredData))
		for k, v := range r.StructuredData {
			clone.StructuredData[k] = v
		}
	}
	if len(r.Tags) > 0 {
		clone.Tags = make([]string, len(r.Tags))
		copy(clone.Tags, r.Tags)
	}
	return clone
}
