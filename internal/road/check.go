package road

// Outcome is the verdict for a landing position.
type Outcome uint8

const (
	Continue Outcome = iota
	Failed
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	if o == Failed {
		return "Failed"
	}
	return "Continue"
}

// Result is the outcome of a landing. Score is set only when the round failed.
type Result struct {
	Outcome Outcome
	Score   int
}

// Failed reports whether the landing ended the round.
func (r Result) Failed() bool {
	return r.Outcome == Failed
}

// CheckResult decides whether landing on moveIndex ends the round.
// Landing on a gap fails with score moveIndex+1; jumping past the last tile
// fails with score len+1. Negative indices never fail.
func CheckResult(track Track, moveIndex int) Result {
	n := len(track)
	switch {
	case moveIndex >= n:
		return Result{Outcome: Failed, Score: n + 1}
	case moveIndex >= 0 && track[moveIndex] == Gap:
		return Result{Outcome: Failed, Score: moveIndex + 1}
	default:
		return Result{Outcome: Continue}
	}
}

// DisplayScore is the score shown while playing: moveIndex+1, capped at len+1.
func DisplayScore(track Track, moveIndex int) int {
	score := moveIndex + 1
	if limit := len(track) + 1; score > limit {
		return limit
	}
	return score
}
