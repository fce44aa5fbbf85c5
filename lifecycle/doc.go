// Package lifecycle contains the artifact lifecycle engine: one state
// machine per dispatched request, advanced by scheduled transitions
// (thinking → generating → building → completed) with per-agent simulated
// delays.
//
// The engine owns every artifact it creates. Observers and callers only ever
// receive clones, and a closed artifact's still-pending timers degrade to
// guarded no-ops: a late callback verifies the artifact is still active and
// still in its expected pre-transition status before mutating anything, so a
// stray timer can never resurrect or corrupt state.
package lifecycle
