package player

import (
	"time"

	"github.com/apexarena/backend/internal/models"
	"gorm.io/gorm"
)

// Player is a portal login identity for an individual participant,
// distinct from the roster entries captains manage.
type Player struct {
	gorm.Model
	Name       string        `json:"name" gorm:"not null"`
	Email      string        `json:"email" gorm:"uniqueIndex;not null"`
	Password   string        `json:"-" gorm:"not null"`
	RNumber    string        `json:"r_number" gorm:"uniqueIndex;not null"`
	Phone      string        `json:"phone"`
	Department string        `json:"department" gorm:"index"`
	Status     models.Status `json:"status" gorm:"index;default:'pending'"`
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required" example:"Ravi Kumar"`
	Email      string `json:"email" binding:"required,email" example:"ravi@college.edu"`
	Password   string `json:"password" binding:"required,min=8" example:"password123"`
	RNumber    string `json:"r_number" binding:"required" example:"R20CS042"`
	Phone      string `json:"phone" binding:"required" example:"9876501234"`
	Department string `json:"department" binding:"required" example:"CSE"`
}

type LoginRequest struct {
	// Identifier can be the email or roll number.
	Identifier string `json:"identifier" binding:"required" example:"ravi@college.edu"`
	Password   string `json:"password" binding:"required" example:"password123"`
}

type PlayerResponse struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	RNumber    string        `json:"r_number"`
	Phone      string        `json:"phone"`
	Department string        `json:"department"`
	Status     models.Status `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

func FilterPlayerRecord(p *Player) PlayerResponse {
	return PlayerResponse{
		ID:         p.ID,
		Name:       p.Name,
		Email:      p.Email,
		RNumber:    p.RNumber,
		Phone:      p.Phone,
		Department: p.Department,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
}
