package core

import "time"

// ArtifactEvent notifies observers of one lifecycle transition. After
// emission it must be treated as immutable. Artifact is a clone of the
// artifact at transition time; Record is non-nil only for the transition into
// StatusCompleted and is published exactly once per artifact.
type ArtifactEvent struct {
	ID         string
	ArtifactID string
	AgentID    string
	From       Status
	To         Status
	Timestamp  time.Time
	Artifact   *Artifact
	Record     *ContextRecord
}

// NewArtifactEvent constructs a transition event with a fresh event ID and
// UTC timestamp.
func NewArtifactEvent(artifact *Artifact, from, to Status) ArtifactEvent {
	return ArtifactEvent{
		ID:         NewID(),
		ArtifactID: artifact.ID,
		AgentID:    artifact.AgentID,
		From:       from,
		To:         to,
		Timestamp:  time.Now().UTC(),
		Artifact:   artifact,
	}
}

// Completed reports whether this event carries the terminal transition.
func (e ArtifactEvent) Completed() bool { return e.To == StatusCompleted }

// ArtifactObserver receives lifecycle transitions. Implementations must not
// block: the engine invokes observers synchronously from the transition path.
// The context bus and rendering layers are the expected implementors.
type ArtifactObserver interface {
	OnTransition(ev ArtifactEvent)
}

// ObserverFunc adapts a plain function to the ArtifactObserver interface.
type ObserverFunc func(ev ArtifactEvent)

// OnTransition implements ArtifactObserver.
func (f ObserverFunc) OnTransition(ev ArtifactEvent) { f(ev) }
