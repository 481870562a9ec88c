package content

import "gorm.io/gorm"

type Repository interface {
	CreateAnnouncement(a *Announcement) error
	ListAnnouncements() ([]Announcement, error)
	UpdateAnnouncement(id uint, a *Announcement) (int64, error)
	DeleteAnnouncement(id uint) (int64, error)

	CreateGalleryItem(g *GalleryItem) error
	ListGalleryItems() ([]GalleryItem, error)
	UpdateGalleryItem(id uint, g *GalleryItem) (int64, error)
	DeleteGalleryItem(id uint) (int64, error)

	CreateSchedule(s *Schedule) error
	ListSchedules(sport string) ([]Schedule, error)
	UpdateSchedule(id uint, s *Schedule) (int64, error)
	DeleteSchedule(id uint) (int64, error)

	CreateRule(r *Rule) error
	ListRules(sport string) ([]Rule, error)
	UpdateRule(id uint, r *Rule) (int64, error)
	DeleteRule(id uint) (int64, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &contentRepository{db: db}
}

func (r *contentRepository) CreateAnnouncement(a *Announcement) error {
	return r.db.Create(a).Error
}

func (r *contentRepository) ListAnnouncements() ([]Announcement, error) {
	var items []Announcement
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *contentRepository) UpdateAnnouncement(id uint, a *Announcement) (int64, error) {
	res := r.db.Model(&Announcement{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": a.Title, "body": a.Body})
	return res.RowsAffected, res.Error
}

func (r *contentRepository) DeleteAnnouncement(id uint) (int64, error) {
	res := r.db.Delete(&Announcement{}, id)
	return res.RowsAffected, res.Error
}

func (r *contentRepository) CreateGalleryItem(g *GalleryItem) error {
	return r.db.Create(g).Error
}

func (r *contentRepository) ListGalleryItems() ([]GalleryItem, error) {
	var items []GalleryItem
	err := r.db.Order("created_at DESC").Find(&items).Error
	return items, err
}

func (r *contentRepository) UpdateGalleryItem(id uint, g *GalleryItem) (int64, error) {
	res := r.db.Model(&GalleryItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":     g.Title,
		"image_url": g.ImageURL,
		"caption":   g.Caption,
	})
	return res.RowsAffected, res.Error
}

func (r *contentRepository) DeleteGalleryItem(id uint) (int64, error) {
	res := r.db.Delete(&GalleryItem{}, id)
	return res.RowsAffected, res.Error
}

func (r *contentRepository) CreateSchedule(s *Schedule) error {
	return r.db.Create(s).Error
}

func (r *contentRepository) ListSchedules(sport string) ([]Schedule, error) {
	var items []Schedule
	query := r.db.Order("date ASC")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *contentRepository) UpdateSchedule(id uint, s *Schedule) (int64, error) {
	res := r.db.Model(&Schedule{}).Where("id = ?", id).Updates(map[string]interface{}{
		"title":       s.Title,
		"sport":       s.Sport,
		"date":        s.Date,
		"venue":       s.Venue,
		"description": s.Description,
	})
	return res.RowsAffected, res.Error
}

func (r *contentRepository) DeleteSchedule(id uint) (int64, error) {
	res := r.db.Delete(&Schedule{}, id)
	return res.RowsAffected, res.Error
}

func (r *contentRepository) CreateRule(rule *Rule) error {
	return r.db.Create(rule).Error
}

func (r *contentRepository) ListRules(sport string) ([]Rule, error) {
	var items []Rule
	query := r.db.Order("sport ASC, created_at ASC")
	if sport != "" {
		query = query.Where("sport = ?", sport)
	}
	err := query.Find(&items).Error
	return items, err
}

func (r *contentRepository) UpdateRule(id uint, rule *Rule) (int64, error) {
	res := r.db.Model(&Rule{}).Where("id = ?", id).Updates(map[string]interface{}{
		"sport":   rule.Sport,
		"title":   rule.Title,
		"content": rule.Content,
	})
	return res.RowsAffected, res.Error
}

func (r *contentRepository) DeleteRule(id uint) (int64, error) {
	res := r.db.Delete(&Rule{}, id)
	return res.RowsAffected, res.Error
}
