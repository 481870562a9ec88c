package team

import (
	"fmt"
	"time"

	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/roster"
	"gorm.io/gorm"
)

// MaxTeamPlayers caps the roster size of a single team.
const MaxTeamPlayers = 15

// Team is a named roster for one (captain, sport) pair. Wins and losses are
// typed counters; the legacy "wins-losses" record string is derived in the
// response, never stored.
type Team struct {
	gorm.Model
	Name       string                    `json:"name" gorm:"not null"`
	Sport      string                    `json:"sport" gorm:"not null;uniqueIndex:idx_captain_sport,priority:2"`
	Department string                    `json:"department" gorm:"index;not null"`
	CaptainID  uint                      `json:"captain_id" gorm:"index;not null;uniqueIndex:idx_captain_sport,priority:1"`
	Captain    *captain.Captain          `json:"captain,omitempty" gorm:"foreignKey:CaptainID"`
	Players    []roster.DepartmentPlayer `json:"players" gorm:"many2many:team_players;"`
	Wins       int                       `json:"wins" gorm:"default:0"`
	Losses     int                       `json:"losses" gorm:"default:0"`
	Standing   int                       `json:"standing" gorm:"default:0"`
}

// Record renders the aggregate as the wire-format "wins-losses" string.
func (t *Team) Record() string {
	return fmt.Sprintf("%d-%d", t.Wins, t.Losses)
}

type CreateTeamRequest struct {
	Name      string `json:"name" binding:"required" example:"CSE Strikers"`
	Sport     string `json:"sport" binding:"required" example:"cricket"`
	PlayerIDs []uint `json:"player_ids"`
}

type AddTeamPlayerRequest struct {
	PlayerID uint `json:"player_id" binding:"required"`
}

type TeamResponse struct {
	ID         uint                     `json:"id"`
	Name       string                   `json:"name"`
	Sport      string                   `json:"sport"`
	Department string                   `json:"department"`
	CaptainID  uint                     `json:"captain_id"`
	Captain    *captain.CaptainResponse `json:"captain,omitempty"`
	Players    []roster.PlayerResponse  `json:"players"`
	Wins       int                      `json:"wins"`
	Losses     int                      `json:"losses"`
	Record     string                   `json:"record"`
	Standing   int                      `json:"standing"`
	CreatedAt  time.Time                `json:"created_at"`
}

func FilterTeamRecord(t *Team) TeamResponse {
	resp := TeamResponse{
		ID:         t.ID,
		Name:       t.Name,
		Sport:      t.Sport,
		Department: t.Department,
		CaptainID:  t.CaptainID,
		Players:    roster.FilterPlayerRecords(t.Players),
		Wins:       t.Wins,
		Losses:     t.Losses,
		Record:     t.Record(),
		Standing:   t.Standing,
		CreatedAt:  t.CreatedAt,
	}
	if t.Captain != nil {
		filtered := captain.FilterCaptainRecord(t.Captain)
		resp.Captain = &filtered
	}
	return resp
}

func FilterTeamRecords(teams []Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, FilterTeamRecord(&teams[i]))
	}
	return out
}
