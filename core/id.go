package core

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// NewID generates a new unique identifier for events and messages.
//
// Returns a string representation of a new UUID.
func NewID() string { return uuid.NewString() }

// ArtifactIDSource issues time-based, strictly monotonic artifact IDs. IDs
// are never reused within a process even when the clock does not advance
// between calls, which is what makes the lifecycle engine's stale-timer guard
// safe: a late callback can never observe its ID reassigned to a newer
// artifact.
type ArtifactIDSource struct {
	mu   sync.Mutex
	last int64
}

// Next returns the next artifact ID, e.g. "art-1717520345123456789".
func (s *ArtifactIDSource) Next() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UnixNano()
	if now <= s.last {
		now = s.last + 1
	}
	s.last = now
	return fmt.Sprintf("art-%d", now)
}
