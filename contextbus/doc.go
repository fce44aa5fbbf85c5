// Package contextbus aggregates the context records of completed artifacts
// and exposes them to the matcher (context-aware scoring) and to subsequent
// dispatches (frozen snapshots, summary prompts).
//
// The bus grows monotonically with the conversation: there is no eviction,
// size cap or deduplication beyond exactly-once ingestion per artifact. A
// relevance filter primitive exists but the aggregate path deliberately does
// not apply it: every completed artifact's context is always offered in
// full.
package contextbus
