// Package compose implements the mention-entity input model: a pure data
// structure maintaining a composed message as text runs interleaved with
// atomic agent mentions, plus the trigger-driven suggestion workflow.
//
// The model is deliberately free of any UI surface (rendering adapters live
// elsewhere, e.g. the tui package): every atomicity and trigger-detection
// rule is enforced on the data structure itself, so the whole input behavior
// is testable without a terminal or DOM.
//
// Internally the composer keeps the canonical text (mentions rendered as
// trigger char + display label) plus the entity spans over it. Edits operate
// on that pair; segments and the canonical string are derived views that stay
// in sync by construction.
package compose
