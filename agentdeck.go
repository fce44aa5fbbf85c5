// Package agentdeck provides a high-level façade over the agent-dispatch
// core (registry, matcher, composer, lifecycle engine & context bus) enabling
// rapid construction of conversational multi-agent workspaces. Most
// applications interact with this package by:
//  1. Creating an AgentDeck via New() (optionally overriding registry,
//     scheduler, simulation catalog or logger)
//  2. Composing messages through NewComposer() or plain canonical strings
//  3. Sending them (Send / SendText) and observing artifact transitions
//
// The façade wires the data flow end to end: an explicit mention pins the
// dispatch to its agent, otherwise the matcher scores the text against the
// registry enhanced by accumulated context; the dispatch freezes a context
// snapshot; completed artifacts feed the bus, which enhances the next
// matching pass. All defaults are safe for local development and testing.
package agentdeck

import (
	"fmt"
	"time"

	"github.com/hupe1980/agentdeck/agent"
	"github.com/hupe1980/agentdeck/compose"
	"github.com/hupe1980/agentdeck/config"
	"github.com/hupe1980/agentdeck/contextbus"
	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/lifecycle"
	"github.com/hupe1980/agentdeck/logging"
	"github.com/hupe1980/agentdeck/match"
	"github.com/hupe1980/agentdeck/registry"
	"github.com/hupe1980/agentdeck/session"
)

// ErrNoAgentMatched is returned by Send when a message carries no explicit
// mention and the matcher finds no candidate for its text.
var ErrNoAgentMatched = fmt.Errorf("no agent matched the request")

// Options configures the AgentDeck instance.
type Options struct {
	// Config supplies trigger char, simulation speed and extra agents.
	// Defaults to config.Default().
	Config *config.Config

	// Registry overrides the agent catalog. Defaults to an in-memory
	// registry seeded with the built-ins plus any config agents.
	Registry core.Registry

	// Scheduler overrides lifecycle timing (tests use a manual scheduler).
	// Defaults to the real timer scheduler.
	Scheduler core.Scheduler

	// Catalog overrides the simulation profiles. Defaults to the built-in
	// catalog scaled by the config speed factor.
	Catalog *agent.Catalog

	// Conversations overrides the conversation store. Defaults to a fresh
	// in-memory store.
	Conversations *session.InMemoryStore

	// ConversationID scopes this deck's history. Defaults to a fresh ID.
	ConversationID string

	// Logger provides structured logging. Defaults to NoOp.
	Logger logging.Logger
}

// AgentDeck is the high-level façade aggregating the dispatch components.
type AgentDeck struct {
	registry       core.Registry
	matcher        *match.Matcher
	engine         *lifecycle.Engine
	bus            *contextbus.Bus
	conversations  *session.InMemoryStore
	conversationID string
	trigger        rune
	logger         logging.Logger
}

// New creates a new AgentDeck with optional overrides. Any unset dependency
// is initialized with an in-memory default; the context bus is subscribed to
// the lifecycle engine before the deck is returned.
func New(optFns ...func(o *Options)) *AgentDeck {
	opts := Options{
		Config: config.Default(),
		Logger: logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Registry == nil {
		reg := registry.NewInMemory()
		registry.RegisterBuiltins(reg)
		for _, a := range opts.Config.Agents {
			if d, err := a.Descriptor(); err == nil {
				reg.Register(d)
			}
		}
		opts.Registry = reg
	}
	if opts.Catalog == nil {
		opts.Catalog = agent.NewCatalog()
		if opts.Config.SpeedFactor != 1.0 {
			opts.Catalog.ScaleDelays(opts.Config.SpeedFactor)
		}
	}
	if opts.Scheduler == nil {
		opts.Scheduler = lifecycle.TimerScheduler{}
	}
	if opts.Conversations == nil {
		opts.Conversations = session.NewInMemoryStore()
	}
	if opts.ConversationID == "" {
		opts.ConversationID = core.NewID()
	}

	engine := lifecycle.New(opts.Registry, func(o *lifecycle.Options) {
		o.Scheduler = opts.Scheduler
		o.Catalog = opts.Catalog
		o.Logger = opts.Logger
	})
	bus := contextbus.New(func(o *contextbus.Options) {
		o.Logger = opts.Logger
	})
	engine.Subscribe(bus)

	return &AgentDeck{
		registry:       opts.Registry,
		matcher:        match.New(opts.Registry, func(o *match.Options) { o.Logger = opts.Logger }),
		engine:         engine,
		bus:            bus,
		conversations:  opts.Conversations,
		conversationID: opts.ConversationID,
		trigger:        opts.Config.TriggerRune(),
		logger:         opts.Logger,
	}
}

// Registry exposes the agent catalog (for pickers and rendering layers).
func (d *AgentDeck) Registry() core.Registry { return d.registry }

// Bus exposes the context bus.
func (d *AgentDeck) Bus() *contextbus.Bus { return d.bus }

// Engine exposes the lifecycle engine.
func (d *AgentDeck) Engine() *lifecycle.Engine { return d.engine }

// NewComposer returns a composer bound to this deck's registry and trigger
// character.
func (d *AgentDeck) NewComposer() *compose.Composer {
	return compose.New(d.registry, func(o *compose.Options) { o.Trigger = d.trigger })
}

// Subscribe registers an observer for artifact transitions.
func (d *AgentDeck) Subscribe(obs core.ArtifactObserver) { d.engine.Subscribe(obs) }

// Suggest scores text against the registry enhanced by the bus's current
// context, for as-you-type agent recommendation. Debouncing is the rendering
// layer's concern.
func (d *AgentDeck) Suggest(text string) []core.MatchResult {
	return d.matcher.Match(text, d.bus.Snapshot())
}

// Send finalizes a composed message into a dispatch. An explicit mention
// pins the target agent; otherwise the top matcher result wins. The dispatch
// captures the context snapshot at this moment and the message is appended
// to the conversation history.
//
// Blank messages return lifecycle.ErrEmptyRequest; unroutable ones return
// ErrNoAgentMatched. In both cases no artifact is created.
func (d *AgentDeck) Send(msg *core.ComposedMessage) (string, error) {
	if msg == nil || msg.IsBlank() {
		return "", lifecycle.ErrEmptyRequest
	}

	text := msg.PlainText()
	agentID := ""
	if mention, ok := msg.FirstMention(); ok {
		agentID = mention.EntityID
	} else {
		results := d.matcher.Match(text, d.bus.Snapshot())
		if len(results) == 0 {
			return "", ErrNoAgentMatched
		}
		agentID = results[0].AgentID
	}

	artifactID, err := d.engine.Dispatch(agentID, text, d.bus.Snapshot())
	if err != nil {
		return "", err
	}

	d.conversations.Append(d.conversationID, session.Message{
		ID:         core.NewID(),
		Canonical:  compose.ToCanonical(msg, d.trigger),
		Composed:   msg.Clone(),
		ArtifactID: artifactID,
		SentAt:     time.Now(),
	})
	return artifactID, nil
}

// SendText parses a canonical string (mentions as trigger + label) and sends
// it.
func (d *AgentDeck) SendText(raw string) (string, error) {
	return d.Send(compose.ParseCanonical(raw, d.registry, d.trigger))
}

// Artifacts returns clones of all active artifacts in insertion order.
func (d *AgentDeck) Artifacts() []*core.Artifact { return d.engine.Artifacts() }

// Close removes an artifact from the active set.
func (d *AgentDeck) Close(artifactID string) bool { return d.engine.Close(artifactID) }

// CloseAll removes every active artifact.
func (d *AgentDeck) CloseAll() { d.engine.CloseAll() }

// History returns the conversation's message history.
func (d *AgentDeck) History() []session.Message {
	return d.conversations.Get(d.conversationID).History()
}
