package admin

import (
	"time"

	"gorm.io/gorm"
)

// Admin is an organizer account. Admins approve captains and roster players,
// schedule matches and manage site content.
type Admin struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null"`
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required" example:"Meet Organizer"`
	Email    string `json:"email" binding:"required,email" example:"organizer@college.edu"`
	Password string `json:"password" binding:"required,min=8" example:"password123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"organizer@college.edu"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"approved"`
}

type AdminResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FilterAdminRecord(a *Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
