package lifecycle

import (
	"time"

	"github.com/hupe1980/agentdeck/core"
)

// TimerScheduler is the production core.Scheduler backed by time.AfterFunc.
// Callbacks fire on the runtime timer goroutine; the engine's locking makes
// that safe.
type TimerScheduler struct{}

// Compile-time interface assertion.
var _ core.Scheduler = TimerScheduler{}

// AfterFunc schedules fn after d and returns a stoppable handle.
func (TimerScheduler) AfterFunc(d time.Duration, fn func()) core.TimerHandle {
	return timerHandle{timer: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

// Stop prevents the callback from firing if it has not already.
func (h timerHandle) Stop() bool { return h.timer.Stop() }
