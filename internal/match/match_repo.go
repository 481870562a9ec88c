package match

import (
	"errors"

	"gorm.io/gorm"
)

type MatchRepository interface {
	Create(m *Match) error
	// GetByID returns (nil, nil) when the match does not exist.
	GetByID(id uint) (*Match, error)
	List(sport, status string) ([]Match, error)
	Update(m *Match) error
	Delete(id uint) error
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(m *Match) error {
	return r.db.Create(m).Error
}

func (r *matchRepository) GetByID(id uint) (*Match, error) {
	var m Match
	err := r.db.
		Preload("TeamA").Preload("TeamA.Players").Preload("TeamA.Captain").
		Preload("TeamB").Preload("TeamB.Players").Preload("TeamB.Captain").
		First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *matchRepository) List(sport, status string) ([]Match, error) {
	var matches []Match
	query := r.db.Preload("TeamA").Preload("TeamB").Order("date asc")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *matchRepository) Update(m *Match) error {
	return r.db.Save(m).Error
}

func (r *matchRepository) Delete(id uint) error {
	return r.db.Delete(&Match{}, id).Error
}
