package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedTransition(t *testing.T) {
	cases := []struct {
		from, to MatchStatus
		want     bool
	}{
		{StatusScheduled, StatusScheduled, true},
		{StatusScheduled, StatusLive, true},
		{StatusScheduled, StatusCompleted, true},
		{StatusLive, StatusLive, true},
		{StatusLive, StatusCompleted, true},
		{StatusLive, StatusScheduled, false},
		{StatusCompleted, StatusCompleted, true},
		{StatusCompleted, StatusLive, false},
		{StatusCompleted, StatusScheduled, false},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, AllowedTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestResultOutcome(t *testing.T) {
	cases := []struct {
		name           string
		prev, next     MatchStatus
		scoreA, scoreB int
		want           Outcome
	}{
		{"first completion, a wins", StatusLive, StatusCompleted, 3, 1, OutcomeTeamA},
		{"first completion, b wins", StatusScheduled, StatusCompleted, 0, 2, OutcomeTeamB},
		{"first completion, tie", StatusLive, StatusCompleted, 2, 2, OutcomeNone},
		{"score correction while completed", StatusCompleted, StatusCompleted, 5, 1, OutcomeNone},
		{"still live", StatusScheduled, StatusLive, 4, 0, OutcomeNone},
		{"still scheduled", StatusScheduled, StatusScheduled, 1, 0, OutcomeNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResultOutcome(tc.prev, tc.next, tc.scoreA, tc.scoreB))
		})
	}
}
