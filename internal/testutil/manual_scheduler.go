package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/agentdeck/core"
)

// ManualScheduler implements core.Scheduler with explicit time control.
// Callbacks never fire on their own; tests call Advance (or Fire) to run
// everything due, which keeps lifecycle transitions fully deterministic.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	nextSeq int
	timers  []*manualTimer
}

type manualTimer struct {
	sched   *ManualScheduler
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler creates a scheduler with no pending timers.
func NewManualScheduler() *ManualScheduler { return &ManualScheduler{} }

// AfterFunc registers fn to run once the scheduler's clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, fn func()) core.TimerHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{sched: s, due: s.now + d, seq: s.nextSeq, fn: fn}
	s.nextSeq++
	s.timers = append(s.timers, t)
	return t
}

// Stop cancels the timer; it reports false when the callback already ran.
func (t *manualTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d and synchronously runs every due
// callback in due-then-registration order. Callbacks may register new timers;
// those fire too when their due time falls inside the advanced window.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now += d
	s.mu.Unlock()
	for {
		t := s.popDue()
		if t == nil {
			return
		}
		t.fn()
	}
}

// Fire runs the single earliest pending callback regardless of its due time.
// It reports whether a callback ran.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	var earliest *manualTimer
	for _, t := range s.timers {
		if t.fired || t.stopped {
			continue
		}
		if earliest == nil || t.due < earliest.due || (t.due == earliest.due && t.seq < earliest.seq) {
			earliest = t
		}
	}
	if earliest != nil {
		earliest.fired = true
	}
	s.mu.Unlock()
	if earliest == nil {
		return false
	}
	earliest.fn()
	return true
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (s *ManualScheduler) popDue() *manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	due := make([]*manualTimer, 0, len(s.timers))
	for _, t := range s.timers {
		if !t.fired && !t.stopped && t.due <= s.now {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	due[0].fired = true
	return due[0]
}
