package captain

import (
	"strings"

	"github.com/apexarena/backend/internal/models"
	"gorm.io/gorm"
)

type Repository interface {
	Create(c *Captain) error
	GetByID(id uint) (*Captain, error)
	GetByEmail(email string) (*Captain, error)
	GetByRNumber(rNumber string) (*Captain, error)
	// GetByIdentifier matches email OR roll number OR unique id, first match
	// wins. Each of those columns is individually unique, so the match is
	// unambiguous.
	GetByIdentifier(identifier string) (*Captain, error)
	Update(c *Captain) error
	List(status string) ([]Captain, error)
	SetStatus(id uint, status models.Status) (int64, error)
}

type captainRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &captainRepository{db: db}
}

func (r *captainRepository) Create(c *Captain) error {
	return r.db.Create(c).Error
}

func (r *captainRepository) GetByID(id uint) (*Captain, error) {
	var c Captain
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *captainRepository) GetByEmail(email string) (*Captain, error) {
	var c Captain
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *captainRepository) GetByRNumber(rNumber string) (*Captain, error) {
	var c Captain
	if err := r.db.Where("r_number = ?", rNumber).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *captainRepository) GetByIdentifier(identifier string) (*Captain, error) {
	var c Captain
	err := r.db.
		Where("email = ? OR r_number = ? OR unique_id = ?", strings.ToLower(identifier), identifier, identifier).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *captainRepository) Update(c *Captain) error {
	return r.db.Save(c).Error
}

func (r *captainRepository) List(status string) ([]Captain, error) {
	var captains []Captain
	query := r.db.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&captains).Error; err != nil {
		return nil, err
	}
	return captains, nil
}

func (r *captainRepository) SetStatus(id uint, status models.Status) (int64, error) {
	result := r.db.Model(&Captain{}).Where("id = ?", id).Update("status", status)
	return result.RowsAffected, result.Error
}
