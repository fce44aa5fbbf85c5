package core

import "time"

// Status is the lifecycle state of an artifact. An artifact is created
// already in StatusThinking; the conceptual "idle" pre-state never exists as
// a stored value. StatusCompleted is terminal. There is no failed state: a
// stalled artifact simply stays in its last status.
type Status int

const (
	// StatusThinking is the initial state of every dispatched artifact.
	StatusThinking Status = iota
	// StatusGenerating indicates the agent is producing its result.
	StatusGenerating
	// StatusBuilding indicates the result is being assembled / finalized.
	StatusBuilding
	// StatusCompleted is the terminal state; output and context data are
	// attached exactly once on entry.
	StatusCompleted
)

// String returns the lowercase state name used in logs and rendered progress.
func (s Status) String() string {
	switch s {
	case StatusThinking:
		return "thinking"
	case StatusGenerating:
		return "generating"
	case StatusBuilding:
		return "building"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Next returns the successor state and true, or the receiver and false when
// the state is terminal. The progression is fixed:
// thinking → generating → building → completed.
func (s Status) Next() (Status, bool) {
	if s >= StatusCompleted {
		return s, false
	}
	return s + 1, true
}

// Terminal reports whether no further transitions are possible.
func (s Status) Terminal() bool { return s == StatusCompleted }

// Output is one result produced by an agent: a typed, formatted payload plus
// a display title.
type Output struct {
	Type    string
	Format  string
	Title   string
	Content string
}

// Artifact is the stateful record of one dispatched request. It is owned
// exclusively by the lifecycle engine; every other component receives clones
// and must never mutate them.
//
// Output holds the primary result handle; Outputs holds the full ordered list
// for agents that produce more than one result (Output aliases Outputs[0]).
// ContextData is populated exactly once, when Status reaches
// StatusCompleted. ContextSnapshot is the context the dispatch was given,
// frozen at dispatch time.
type Artifact struct {
	ID              string
	AgentID         string
	Status          Status
	Title           string
	RequestText     string
	CreatedAt       time.Time
	Output          *Output
	Outputs         []Output
	ContextData     *ContextRecord
	ContextSnapshot []ContextRecord
}

// Clone returns a deep copy safe for independent use by observers and
// rendering layers.
func (a *Artifact) Clone() *Artifact {
	if a == nil {
		return nil
	}
	clone := *a
	if a.Output != nil {
		out := *a.Output
		clone.Output = &out
	}
	if len(a.Outputs) > 0 {
		clone.Outputs = make([]Output, len(a.Outputs))
		copy(clone.Outputs, a.Outputs)
	}
	if a.ContextData != nil {
		rec := a.ContextData.Clone()
		clone.ContextData = &rec
	}
	if len(a.ContextSnapshot) > 0 {
		clone.ContextSnapshot = make([]ContextRecord, 0, len(a.ContextSnapshot))
		for _, rec := range a.ContextSnapshot {
			clone.ContextSnapshot = append(clone.ContextSnapshot, rec.Clone())
		}
	}
	return &clone
}
