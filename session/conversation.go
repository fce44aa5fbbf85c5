package session

import (
	"sync"
	"time"

	"github.com/hupe1980/agentdeck/core"
)

// Message is one finalized composed message in a conversation, recorded at
// dispatch time together with the artifact it produced (empty ArtifactID for
// messages that did not dispatch).
type Message struct {
	ID         string
	Canonical  string
	Composed   *core.ComposedMessage
	ArtifactID string
	SentAt     time.Time
}

// Conversation tracks an ordered message history. It is safe for concurrent
// access; readers receive defensive copies.
type Conversation struct {
	ID       string
	Messages []Message
	Created  time.Time
	Updated  time.Time
	mu       sync.RWMutex
}

// NewConversation creates an empty conversation with the given ID.
func NewConversation(id string) *Conversation {
	now := time.Now()
	return &Conversation{ID: id, Created: now, Updated: now}
}

// Append adds a message to the history updating the Updated timestamp.
func (c *Conversation) Append(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Messages = append(c.Messages, m)
	c.Updated = time.Now()
}

// History returns a copy of the message slice; composed messages are cloned
// so callers can never mutate stored segments.
func (c *Conversation) History() []Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Message, len(c.Messages))
	copy(out, c.Messages)
	for i := range out {
		if out[i].Composed != nil {
			out[i].Composed = out[i].Composed.Clone()
		}
	}
	return out
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.Messages)
}

// InMemoryStore is a volatile conversation store keyed by conversation ID.
// It is safe for concurrent access and best suited for tests or single
// process workspaces.
type InMemoryStore struct {
	mu            sync.RWMutex
	conversations map[string]*Conversation
}

// NewInMemoryStore constructs an empty in-memory conversation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{conversations: make(map[string]*Conversation)}
}

// Get returns an existing conversation or creates one lazily.
func (s *InMemoryStore) Get(id string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.conversations[id]; ok {
		return c
	}
	c := NewConversation(id)
	s.conversations[id] = c
	return c
}

// Append adds a message to an existing or newly created conversation.
func (s *InMemoryStore) Append(conversationID string, m Message) {
	s.Get(conversationID).Append(m)
}
