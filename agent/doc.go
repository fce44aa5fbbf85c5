// Package agent provides the simulated work profiles behind each registered
// agent: per-stage delays, the static output table attached on completion and
// the template that synthesizes a context record from the original request.
//
// There is no real inference here. Every agent is a fixed-delay simulation
// drawing from static tables, which keeps the lifecycle engine fully
// deterministic under a manual scheduler. Profiles for unknown agents fall
// back to a generic default so dynamically registered descriptors work
// without code changes.
package agent
