package match

// Outcome says which side, if any, a status change awards the match to.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeTeamA
	OutcomeTeamB
)

// AllowedTransition is the match status transition table. Forward moves are
// scheduled→live, scheduled→completed and live→completed; writing the
// current status again is always allowed so completed matches can take
// score corrections.
func AllowedTransition(from, to MatchStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case StatusScheduled:
		return to == StatusLive || to == StatusCompleted
	case StatusLive:
		return to == StatusCompleted
	}
	return false
}

// ResultOutcome decides whether a status change settles the match, as a pure
// function of the previous state, the new state and the scores. Only the
// first transition into completed counts, so a completed→completed score
// correction never re-increments team records. Ties settle nothing.
func ResultOutcome(prev, next MatchStatus, scoreA, scoreB int) Outcome {
	if next != StatusCompleted || prev == StatusCompleted {
		return OutcomeNone
	}
	switch {
	case scoreA > scoreB:
		return OutcomeTeamA
	case scoreB > scoreA:
		return OutcomeTeamB
	}
	return OutcomeNone
}
