package admin

import (
	"strings"

	"gorm.io/gorm"
)

type Repository interface {
	Create(a *Admin) error
	GetByID(id uint) (*Admin, error)
	GetByEmail(email string) (*Admin, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(a *Admin) error {
	return r.db.Create(a).Error
}

func (r *adminRepository) GetByID(id uint) (*Admin, error) {
	var a Admin
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepository) GetByEmail(email string) (*Admin, error) {
	var a Admin
	if err := r.db.Where("email = ?", strings.ToLower(email)).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
