package player

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Player) error
	GetByID(id uint) (*Player, error)
	GetByEmail(email string) (*Player, error)
	GetByRNumber(rNumber string) (*Player, error)
	// GetByIdentifier matches email OR roll number, first match wins.
	GetByIdentifier(identifier string) (*Player, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(p *Player) error {
	return r.db.Create(p).Error
}

func (r *playerRepository) GetByID(id uint) (*Player, error) {
	var p Player
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByEmail(email string) (*Player, error) {
	var p Player
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByRNumber(rNumber string) (*Player, error) {
	var p Player
	if err := r.db.Where("r_number = ?", rNumber).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) GetByIdentifier(identifier string) (*Player, error) {
	var p Player
	err := r.db.
		Where("email = ? OR r_number = ?", strings.ToLower(identifier), identifier).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}
