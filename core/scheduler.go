package core

import "time"

// TimerHandle controls one scheduled callback. Stop reports whether the
// callback was prevented from running; a false return means it already fired
// or was already stopped.
type TimerHandle interface {
	Stop() bool
}

// Scheduler abstracts delayed callback execution so lifecycle timing is
// swappable: the production implementation wraps time.AfterFunc, while tests
// drive a manual scheduler deterministically. Callbacks may fire on arbitrary
// goroutines; everything they touch must be internally synchronized.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}
