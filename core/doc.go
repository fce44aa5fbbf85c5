// Package core provides the foundational domain types and contracts used by
// AgentDeck. It defines the core abstractions for:
//
//   - Agent descriptors (capability + trigger declarations for routing)
//   - Composed messages (text runs interleaved with atomic agent mentions)
//   - Artifacts (the stateful record of one dispatched request)
//   - Context records (reusable structured results of completed artifacts)
//   - Match results (bounded-confidence routing decisions)
//   - Pluggable registry, scheduler and observer contracts
//
// The package intentionally keeps implementation concerns (matching heuristics,
// lifecycle orchestration, rendering adapters) out of scope, exposing small
// interfaces so sibling packages can provide swappable implementations.
package core
