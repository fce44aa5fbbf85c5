package registry

import (
	"sort"
	"strings"
	"sync"

	"github.com/hupe1980/agentdeck/core"
)

// InMemory is the process-local core.Registry implementation. It keeps
// descriptors in a map guarded by an RWMutex plus an ordered ID slice so that
// every scan observes registration order, the only tie-break the matcher
// relies on. Descriptors are value types, so lookups hand out copies and
// callers can never corrupt the catalog.
type InMemory struct {
	mu      sync.RWMutex
	byID    map[string]core.AgentDescriptor
	ordered []string // registration order of IDs
}

// Compile-time interface assertion.
var _ core.Registry = (*InMemory)(nil)

// NewInMemory constructs an empty registry.
func NewInMemory() *InMemory {
	return &InMemory{byID: make(map[string]core.AgentDescriptor)}
}

// Register inserts or overwrites the descriptor by ID. Overwriting keeps the
// original registration position; descriptors with an empty ID are ignored.
func (r *InMemory) Register(d core.AgentDescriptor) {
	if d.ID == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[d.ID]; !exists {
		r.ordered = append(r.ordered, d.ID)
	}
	r.byID[d.ID] = d
}

// GetAll returns every descriptor in registration order.
func (r *InMemory) GetAll() []core.AgentDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.AgentDescriptor, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.byID[id])
	}
	return out
}

// GetByID returns the descriptor registered under id.
func (r *InMemory) GetByID(id string) (core.AgentDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	return d, ok
}

// GetByDisplayName returns the first descriptor (in registration order) whose
// Name matches exactly. The match is case-sensitive.
func (r *InMemory) GetByDisplayName(name string) (core.AgentDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.ordered {
		if d := r.byID[id]; d.Name == name {
			return d, true
		}
	}
	return core.AgentDescriptor{}, false
}

// FindByCapability returns all descriptors whose primary or secondary
// capability set contains tag, in registration order.
func (r *InMemory) FindByCapability(tag string) []core.AgentDescriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []core.AgentDescriptor
	for _, id := range r.ordered {
		d := r.byID[id]
		if containsTag(d.Capabilities.Primary, tag) || containsTag(d.Capabilities.Secondary, tag) {
			out = append(out, d)
		}
	}
	return out
}

// patternScore is the fixed contribution of one matching trigger pattern.
const patternScore = 10

// FindByKeyword scans every descriptor and scores it against text: the
// length of each keyword found as a case-insensitive substring, plus a fixed
// bonus per matching regular-expression pattern. Zero scorers are omitted.
// The result is sorted descending by score; equal scores preserve
// registration order (sort.SliceStable over the ordered scan).
func (r *InMemory) FindByKeyword(text string) []core.KeywordMatch {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(text)
	var matches []core.KeywordMatch
	for _, id := range r.ordered {
		d := r.byID[id]
		score := 0
		for _, kw := range d.Triggers.Keywords {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				score += len(kw)
			}
		}
		for _, p := range d.Triggers.Patterns {
			if p != nil && p.MatchString(text) {
				score += patternScore
			}
		}
		if score > 0 {
			matches = append(matches, core.KeywordMatch{Descriptor: d, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	return matches
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
