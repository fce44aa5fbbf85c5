package core

// MatchResult is one routing decision produced by the matcher: the candidate
// agent, a saturating confidence in [0, 100] and a human-readable reason for
// the ranking. Results are ephemeral: recomputed on every matching call and
// never persisted.
type MatchResult struct {
	AgentID    string
	Confidence int
	Reason     string
}

// ClampConfidence saturates a raw additive score into the [0, 100] confidence
// range.
func ClampConfidence(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
