package lifecycle

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hupe1980/agentdeck/agent"
	"github.com/hupe1980/agentdeck/core"
	"github.com/hupe1980/agentdeck/logging"
)

// titleLimit caps the artifact title derived from the request text.
const titleLimit = 48

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Scheduler drives the delayed transitions. Defaults to TimerScheduler;
	// tests supply a manual implementation.
	Scheduler core.Scheduler
	// Catalog resolves agent IDs to simulation profiles. Defaults to the
	// built-in catalog.
	Catalog *agent.Catalog
	// IDs issues monotonic artifact IDs. Defaults to a fresh source.
	IDs *core.ArtifactIDSource
	// Logger receives dispatch / transition diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Engine creates and advances one state machine per dispatched request. All
// public methods are safe for concurrent use; transition callbacks fire on
// scheduler goroutines and take the same lock as everything else.
//
// Transitions for a single artifact are strictly ordered because each stage
// schedules only its direct successor. Artifacts never interfere with each
// other: a callback is bound to one artifact ID and its expected
// pre-transition status, and no-ops silently when either no longer holds
// (closed artifact, replaced state).
type Engine struct {
	registry core.Registry
	catalog  *agent.Catalog
	sched    core.Scheduler
	ids      *core.ArtifactIDSource
	logger   logging.Logger

	mu        sync.RWMutex
	artifacts map[string]*core.Artifact
	order     []string                      // insertion order of active artifact IDs
	timers    map[string][]core.TimerHandle // pending handles per artifact
	entered   map[string]time.Time          // entry time of current status, for dwell logging
	observers []core.ArtifactObserver
}

// New constructs an Engine over the given registry with optional overrides.
func New(registry core.Registry, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Scheduler: TimerScheduler{},
		Catalog:   agent.NewCatalog(),
		IDs:       &core.ArtifactIDSource{},
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Engine{
		registry:  registry,
		catalog:   opts.Catalog,
		sched:     opts.Scheduler,
		ids:       opts.IDs,
		logger:    opts.Logger,
		artifacts: make(map[string]*core.Artifact),
		timers:    make(map[string][]core.TimerHandle),
		entered:   make(map[string]time.Time),
	}
}

// Subscribe registers an observer for every subsequent transition, including
// artifact creation (emitted with From == To == StatusThinking). Observers
// are invoked synchronously outside the engine lock and must not block.
func (e *Engine) Subscribe(obs core.ArtifactObserver) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observers = append(e.observers, obs)
}

// Dispatch allocates a new artifact in StatusThinking for the given agent and
// request text, freezes the provided context snapshot onto it and schedules
// the delayed transitions. The artifact ID is returned synchronously.
//
// Empty (whitespace-only) request text is rejected with ErrEmptyRequest
// before any artifact exists; an unregistered agent ID is rejected with
// ErrUnknownAgent.
func (e *Engine) Dispatch(agentID, requestText string, snapshot []core.ContextRecord) (string, error) {
	if strings.TrimSpace(requestText) == "" {
		return "", ErrEmptyRequest
	}
	if _, ok := e.registry.GetByID(agentID); !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAgent, agentID)
	}

	frozen := make([]core.ContextRecord, 0, len(snapshot))
	for _, rec := range snapshot {
		frozen = append(frozen, rec.Clone())
	}

	a := &core.Artifact{
		ID:              e.ids.Next(),
		AgentID:         agentID,
		Status:          core.StatusThinking,
		Title:           deriveTitle(requestText),
		RequestText:     requestText,
		CreatedAt:       time.Now().UTC(),
		ContextSnapshot: frozen,
	}

	e.mu.Lock()
	e.artifacts[a.ID] = a
	e.order = append(e.order, a.ID)
	e.entered[a.ID] = time.Now()
	clone := a.Clone()
	e.mu.Unlock()

	e.logger.Info("artifact dispatched", "artifact_id", a.ID, "agent_id", agentID, "context_records", len(frozen))

	ev := core.NewArtifactEvent(clone, core.StatusThinking, core.StatusThinking)
	e.notify(ev)

	e.scheduleAdvance(a.ID, agentID, core.StatusThinking)
	return a.ID, nil
}

// scheduleAdvance arms the timer that moves the artifact out of the given
// status after the agent's dwell delay for that stage.
func (e *Engine) scheduleAdvance(artifactID, agentID string, from core.Status) {
	delay := e.catalog.Resolve(agentID).Delays.For(from)
	handle := e.sched.AfterFunc(delay, func() { e.advance(artifactID, from) })

	e.mu.Lock()
	// Only retain the handle while the artifact is active; if it was closed
	// between scheduling and here, stop immediately.
	if _, active := e.artifacts[artifactID]; active {
		e.timers[artifactID] = append(e.timers[artifactID], handle)
	} else {
		handle.Stop()
	}
	e.mu.Unlock()
}

// advance performs one transition. It is the stale-timer guard point: the
// artifact must still be active and still in the expected pre-transition
// status, otherwise the callback is swallowed without touching any state.
func (e *Engine) advance(artifactID string, expect core.Status) {
	e.mu.Lock()
	a, ok := e.artifacts[artifactID]
	if !ok || a.Status != expect {
		e.mu.Unlock()
		e.logger.Debug("stale transition ignored", "artifact_id", artifactID, "expected", expect.String())
		return
	}

	next, _ := expect.Next()
	a.Status = next
	dwell := time.Since(e.entered[artifactID])
	e.entered[artifactID] = time.Now()

	var record *core.ContextRecord
	if next == core.StatusCompleted {
		record = e.completeLocked(a)
	}
	if next.Terminal() {
		// Every timer for this artifact has fired; the handles are dead weight.
		delete(e.timers, artifactID)
	}

	clone := a.Clone()
	e.mu.Unlock()

	e.logger.Info("artifact transition", "artifact_id", artifactID, "from", expect.String(), "to", next.String(), "dwell", dwell)

	ev := core.NewArtifactEvent(clone, expect, next)
	if record != nil {
		rec := record.Clone()
		ev.Record = &rec
	}
	e.notify(ev)

	if !next.Terminal() {
		e.scheduleAdvance(artifactID, clone.AgentID, next)
	}
}

// completeLocked attaches the agent's mock outputs and synthesizes the
// context record. Called exactly once per artifact, under the engine lock,
// on the transition into StatusCompleted.
func (e *Engine) completeLocked(a *core.Artifact) *core.ContextRecord {
	profile := e.catalog.Resolve(a.AgentID)

	a.Outputs = make([]core.Output, len(profile.Outputs))
	copy(a.Outputs, profile.Outputs)
	if len(a.Outputs) > 0 {
		a.Output = &a.Outputs[0]
	}

	agentName := a.AgentID
	if d, ok := e.registry.GetByID(a.AgentID); ok {
		agentName = d.Name
	}
	record := profile.Context.Render(a, agentName)
	a.ContextData = &record
	return &record
}

// notify fans the event out to all observers registered at emission time.
func (e *Engine) notify(ev core.ArtifactEvent) {
	e.mu.RLock()
	observers := make([]core.ArtifactObserver, len(e.observers))
	copy(observers, e.observers)
	e.mu.RUnlock()
	for _, obs := range observers {
		obs.OnTransition(ev)
	}
}

// Get returns a clone of the active artifact with the given ID.
func (e *Engine) Get(artifactID string) (*core.Artifact, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	a, ok := e.artifacts[artifactID]
	if !ok {
		return nil, false
	}
	return a.Clone(), true
}

// Artifacts returns clones of all active artifacts in insertion order.
func (e *Engine) Artifacts() []*core.Artifact {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make([]*core.Artifact, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.artifacts[id].Clone())
	}
	return out
}

// Close removes the artifact from the active set and reports whether it was
// present. Pending timers are stopped on a best-effort basis; any callback
// already in flight degrades to a guarded no-op in advance, it is never
// re-added to the active set.
func (e *Engine) Close(artifactID string) bool {
	e.mu.Lock()
	_, ok := e.artifacts[artifactID]
	var handles []core.TimerHandle
	if ok {
		delete(e.artifacts, artifactID)
		delete(e.entered, artifactID)
		handles = e.timers[artifactID]
		delete(e.timers, artifactID)
		for i, id := range e.order {
			if id == artifactID {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	}
	e.mu.Unlock()

	for _, h := range handles {
		h.Stop()
	}
	if ok {
		e.logger.Info("artifact closed", "artifact_id", artifactID)
	}
	return ok
}

// CloseAll removes every active artifact.
func (e *Engine) CloseAll() {
	e.mu.RLock()
	ids := make([]string, len(e.order))
	copy(ids, e.order)
	e.mu.RUnlock()
	for _, id := range ids {
		e.Close(id)
	}
}

// deriveTitle produces the artifact title from the request text: the first
// line, truncated on a rune boundary.
func deriveTitle(requestText string) string {
	title := strings.TrimSpace(requestText)
	if i := strings.IndexAny(title, "\r\n"); i >= 0 {
		title = strings.TrimSpace(title[:i])
	}
	runes := []rune(title)
	if len(runes) > titleLimit {
		title = string(runes[:titleLimit]) + "..."
	}
	return title
}
