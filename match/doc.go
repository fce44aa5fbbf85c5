// Package match scores free text (and optionally accumulated context) against
// a core.Registry to decide which agent a request should route to.
//
// The scoring is intentionally simple and additive rather than probabilistic:
// keyword/pattern base score from the registry, a fixed bonus when prior
// context intersects the candidate's consumable context types, and a fixed
// bonus when a primary capability appears verbatim in the text. Determinism
// (same input, same ranking) is a contract, not an implementation detail:
// equal scores always resolve to registration order.
package match
