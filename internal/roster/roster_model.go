package roster

import (
	"time"

	"github.com/apexarena/backend/internal/captain"
	"github.com/apexarena/backend/internal/models"
	"gorm.io/gorm"
)

// DepartmentPlayer is a player entry scoped to one sport, added by exactly
// one captain. The same roll number may appear again for a different sport
// (at most two sports in total), but never twice for the same
// (roll number, department, sport) triple.
type DepartmentPlayer struct {
	gorm.Model
	Name       string           `json:"name" gorm:"not null"`
	RNumber    string           `json:"r_number" gorm:"not null;uniqueIndex:idx_roster_entry,priority:1"`
	UniqueID   string           `json:"unique_id" gorm:"uniqueIndex"`
	Phone      string           `json:"phone"`
	Email      string           `json:"email"`
	Sport      string           `json:"sport" gorm:"index;not null;uniqueIndex:idx_roster_entry,priority:3"`
	Department string           `json:"department" gorm:"index;not null;uniqueIndex:idx_roster_entry,priority:2"`
	CaptainID  uint             `json:"captain_id" gorm:"index;not null"`
	Captain    *captain.Captain `json:"captain,omitempty" gorm:"foreignKey:CaptainID"`
	Status     models.Status    `json:"status" gorm:"index;default:'pending'"`
}

type AddPlayerRequest struct {
	Name    string `json:"name" binding:"required" example:"Ravi Kumar"`
	RNumber string `json:"r_number" binding:"required" example:"R20CS042"`
	Phone   string `json:"phone" binding:"required" example:"9876501234"`
	Email   string `json:"email" binding:"required,email" example:"ravi@college.edu"`
	Sport   string `json:"sport" binding:"required" example:"cricket"`
}

type UpdatePlayerRequest struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Sport *string `json:"sport,omitempty"`
}

type PlayerResponse struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	RNumber    string        `json:"r_number"`
	UniqueID   string        `json:"unique_id"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	Sport      string        `json:"sport"`
	Department string        `json:"department"`
	CaptainID  uint          `json:"captain_id"`
	Status     models.Status `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

func FilterPlayerRecord(p *DepartmentPlayer) PlayerResponse {
	return PlayerResponse{
		ID:         p.ID,
		Name:       p.Name,
		RNumber:    p.RNumber,
		UniqueID:   p.UniqueID,
		Phone:      p.Phone,
		Email:      p.Email,
		Sport:      p.Sport,
		Department: p.Department,
		CaptainID:  p.CaptainID,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}

func FilterPlayerRecords(players []DepartmentPlayer) []PlayerResponse {
	out := make([]PlayerResponse, 0, len(players))
	for i := range players {
		out = append(out, FilterPlayerRecord(&players[i]))
	}
	return out
}
