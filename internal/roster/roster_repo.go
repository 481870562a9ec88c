package roster

import (
	"errors"

	"github.com/apexarena/backend/internal/models"
	"gorm.io/gorm"
)

// MaxSportsPerPlayer caps how many sport registrations one roll number may
// hold across all departments.
const MaxSportsPerPlayer = 2

var (
	// ErrSportTaken: the (roll number, sport) pair is already registered.
	ErrSportTaken = errors.New("roll number already registered for this sport")
	// ErrSportLimit: the roll number already holds the maximum number of
	// sport registrations.
	ErrSportLimit = errors.New("roll number already registered for the maximum number of sports")
)

type Repository interface {
	// CreateWithLimits inserts a player after checking, inside one
	// transaction, that the sport is free for this roll number and that the
	// roll number is under the sport cap. The compound unique index on
	// (r_number, department, sport) backs the first check at the database
	// level as well.
	CreateWithLimits(p *DepartmentPlayer) error
	GetByID(id uint) (*DepartmentPlayer, error)
	ListByCaptain(captainID uint) ([]DepartmentPlayer, error)
	List(status string, page, limit int) ([]DepartmentPlayer, int64, error)
	// UpdateOwned and DeleteOwned embed the ownership predicate in the
	// statement itself so there is no read-check-then-write window. Zero
	// rows affected means not found or not owned; callers report the two
	// identically. A sport change re-runs the (r_number, sport) conflict
	// check inside the transaction and returns ErrSportTaken on a clash.
	UpdateOwned(id, captainID uint, updates map[string]interface{}) (int64, error)
	DeleteOwned(id, captainID uint) (int64, error)
	SetStatus(id uint, status models.Status) (int64, error)
}

type rosterRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) CreateWithLimits(p *DepartmentPlayer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&DepartmentPlayer{}).
			Where("r_number = ? AND sport = ?", p.RNumber, p.Sport).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrSportTaken
		}

		if err := tx.Model(&DepartmentPlayer{}).
			Where("r_number = ?", p.RNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= MaxSportsPerPlayer {
			return ErrSportLimit
		}

		return tx.Create(p).Error
	})
}

func (r *rosterRepository) GetByID(id uint) (*DepartmentPlayer, error) {
	var p DepartmentPlayer
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *rosterRepository) ListByCaptain(captainID uint) ([]DepartmentPlayer, error) {
	var players []DepartmentPlayer
	if err := r.db.Where("captain_id = ?", captainID).Order("created_at asc").Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

func (r *rosterRepository) List(status string, page, limit int) ([]DepartmentPlayer, int64, error) {
	var players []DepartmentPlayer
	var total int64

	query := r.db.Model(&DepartmentPlayer{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at desc").Find(&players).Error; err != nil {
		return nil, 0, err
	}
	return players, total, nil
}

func (r *rosterRepository) UpdateOwned(id, captainID uint, updates map[string]interface{}) (int64, error) {
	newSport, changingSport := updates["sport"].(string)
	if !changingSport {
		result := r.db.Model(&DepartmentPlayer{}).
			Where("id = ? AND captain_id = ?", id, captainID).
			Updates(updates)
		return result.RowsAffected, result.Error
	}

	var rows int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var current DepartmentPlayer
		if err := tx.Where("id = ? AND captain_id = ?", id, captainID).First(&current).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		if newSport != current.Sport {
			var count int64
			if err := tx.Model(&DepartmentPlayer{}).
				Where("r_number = ? AND sport = ? AND id <> ?", current.RNumber, newSport, current.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrSportTaken
			}
		}

		result := tx.Model(&DepartmentPlayer{}).Where("id = ?", current.ID).Updates(updates)
		rows = result.RowsAffected
		return result.Error
	})
	return rows, err
}

func (r *rosterRepository) DeleteOwned(id, captainID uint) (int64, error) {
	// Hard delete: a soft-deleted row would still occupy the compound
	// unique index and block re-registering the same (r_number, sport).
	result := r.db.Unscoped().Where("id = ? AND captain_id = ?", id, captainID).Delete(&DepartmentPlayer{})
	return result.RowsAffected, result.Error
}

func (r *rosterRepository) SetStatus(id uint, status models.Status) (int64, error) {
	result := r.db.Model(&DepartmentPlayer{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}
