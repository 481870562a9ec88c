package match

import (
	"time"

	"github.com/apexarena/backend/internal/team"
	"gorm.io/gorm"
)

type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusCompleted:
		return true
	}
	return false
}

// Match is a scheduled or completed fixture between two teams.
type Match struct {
	gorm.Model
	Date    time.Time   `json:"date" gorm:"index"`
	TeamAID uint        `json:"team_a_id" gorm:"index;not null"`
	TeamA   *team.Team  `json:"team_a,omitempty" gorm:"foreignKey:TeamAID"`
	TeamBID uint        `json:"team_b_id" gorm:"index;not null"`
	TeamB   *team.Team  `json:"team_b,omitempty" gorm:"foreignKey:TeamBID"`
	Sport   string      `json:"sport" gorm:"index;not null"`
	Venue   string      `json:"venue"`
	ScoreA  int         `json:"score_a" gorm:"default:0"`
	ScoreB  int         `json:"score_b" gorm:"default:0"`
	Status  MatchStatus `json:"status" gorm:"index;default:'scheduled'"`
}

type CreateMatchRequest struct {
	Date    time.Time `json:"date" binding:"required"`
	TeamAID uint      `json:"team_a_id" binding:"required"`
	TeamBID uint      `json:"team_b_id" binding:"required"`
	Sport   string    `json:"sport" binding:"required" example:"cricket"`
	Venue   string    `json:"venue" example:"Main Ground"`
}

type UpdateMatchRequest struct {
	Date   *time.Time   `json:"date,omitempty"`
	Sport  *string      `json:"sport,omitempty"`
	Venue  *string      `json:"venue,omitempty"`
	Status *MatchStatus `json:"status,omitempty"`
}

type UpdateScoreRequest struct {
	ScoreA int `json:"score_a" binding:"min=0"`
	ScoreB int `json:"score_b" binding:"min=0"`
	// Status defaults to "completed" when omitted.
	Status MatchStatus `json:"status,omitempty"`
}

type MatchResponse struct {
	ID        uint               `json:"id"`
	Date      time.Time          `json:"date"`
	TeamAID   uint               `json:"team_a_id"`
	TeamA     *team.TeamResponse `json:"team_a,omitempty"`
	TeamBID   uint               `json:"team_b_id"`
	TeamB     *team.TeamResponse `json:"team_b,omitempty"`
	Sport     string             `json:"sport"`
	Venue     string             `json:"venue"`
	ScoreA    int                `json:"score_a"`
	ScoreB    int                `json:"score_b"`
	Status    MatchStatus        `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

func FilterMatchRecord(m *Match) MatchResponse {
	resp := MatchResponse{
		ID:        m.ID,
		Date:      m.Date,
		TeamAID:   m.TeamAID,
		TeamBID:   m.TeamBID,
		Sport:     m.Sport,
		Venue:     m.Venue,
		ScoreA:    m.ScoreA,
		ScoreB:    m.ScoreB,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
	if m.TeamA != nil {
		filtered := team.FilterTeamRecord(m.TeamA)
		resp.TeamA = &filtered
	}
	if m.TeamB != nil {
		filtered := team.FilterTeamRecord(m.TeamB)
		resp.TeamB = &filtered
	}
	return resp
}

func FilterMatchRecords(matches []Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		out = append(out, FilterMatchRecord(&matches[i]))
	}
	return out
}
