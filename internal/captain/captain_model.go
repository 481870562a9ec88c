package captain

import (
	"time"

	"github.com/apexarena/backend/internal/models"
	"gorm.io/gorm"
)

// Captain is a department representative. Captains register themselves,
// wait for admin approval, and then manage their department's roster and
// teams.
type Captain struct {
	gorm.Model
	Name       string        `json:"name" gorm:"not null"`
	Email      string        `json:"email" gorm:"uniqueIndex;not null"`
	Password   string        `json:"-" gorm:"not null"`
	RNumber    string        `json:"r_number" gorm:"uniqueIndex;not null"`
	UniqueID   string        `json:"unique_id" gorm:"uniqueIndex"`
	Phone      string        `json:"phone"`
	Department string        `json:"department" gorm:"index;not null"`
	BloodGroup string        `json:"blood_group"`
	Status     models.Status `json:"status" gorm:"index;default:'pending'"`
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required" example:"Asha Rao"`
	Email      string `json:"email" binding:"required,email" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required,min=8" example:"password123"`
	RNumber    string `json:"r_number" binding:"required" example:"R20CS001"`
	Phone      string `json:"phone" binding:"required" example:"9876543210"`
	Department string `json:"department" binding:"required" example:"CSE"`
	BloodGroup string `json:"blood_group" binding:"required" example:"O+"`
}

type LoginRequest struct {
	// Identifier can be the email, roll number or generated unique id.
	Identifier string `json:"identifier" binding:"required" example:"asha@college.edu"`
	Password   string `json:"password" binding:"required" example:"password123"`
}

type CaptainResponse struct {
	ID         uint          `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	RNumber    string        `json:"r_number"`
	UniqueID   string        `json:"unique_id"`
	Phone      string        `json:"phone"`
	Department string        `json:"department"`
	BloodGroup string        `json:"blood_group"`
	Status     models.Status `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
}

func FilterCaptainRecord(c *Captain) CaptainResponse {
	return CaptainResponse{
		ID:         c.ID,
		Name:       c.Name,
		Email:      c.Email,
		RNumber:    c.RNumber,
		UniqueID:   c.UniqueID,
		Phone:      c.Phone,
		Department: c.Department,
		BloodGroup: c.BloodGroup,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
	}
}
