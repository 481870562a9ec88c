package content

import (
	"time"

	"gorm.io/gorm"
)

// Announcement is a site-wide notice published by admins.
type Announcement struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	Body  string `json:"body" gorm:"type:text;not null"`
}

type GalleryItem struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	ImageURL string `json:"image_url" gorm:"not null"`
	Caption  string `json:"caption"`
}

// Schedule is a published event entry, independent of the match fixtures.
type Schedule struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	Sport       string    `json:"sport" gorm:"index"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Description string    `json:"description" gorm:"type:text"`
}

type Rule struct {
	gorm.Model
	Sport   string `json:"sport" gorm:"index;not null"`
	Title   string `json:"title" gorm:"not null"`
	Content string `json:"content" gorm:"type:text;not null"`
}

type AnnouncementRequest struct {
	Title string `json:"title" binding:"required" example:"Opening Ceremony"`
	Body  string `json:"body" binding:"required" example:"The tournament kicks off Friday at 9 AM on the main ground."`
}

type GalleryItemRequest struct {
	Title    string `json:"title" binding:"required" example:"Finals Day"`
	ImageURL string `json:"image_url" binding:"required,url" example:"https://cdn.example.com/finals.jpg"`
	Caption  string `json:"caption" example:"Trophy presentation"`
}

type ScheduleRequest struct {
	Title       string    `json:"title" binding:"required" example:"Cricket League Stage"`
	Sport       string    `json:"sport" example:"Cricket"`
	Date        time.Time `json:"date" binding:"required" example:"2025-02-10T09:00:00Z"`
	Venue       string    `json:"venue" example:"Main Ground"`
	Description string    `json:"description" example:"Round robin, all departments"`
}

type RuleRequest struct {
	Sport   string `json:"sport" binding:"required" example:"Football"`
	Title   string `json:"title" binding:"required" example:"Squad size"`
	Content string `json:"content" binding:"required" example:"Each team fields 11 players with up to 4 substitutes."`
}
