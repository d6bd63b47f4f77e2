package repositories

import (
	"studio_backend/internal/models"

	"gorm.io/gorm"
)

type SponsorRepository interface {
	Create(db *gorm.DB, sponsor *models.Sponsor) error
	GetByID(db *gorm.DB, id string) (*models.Sponsor, error)
	List(db *gorm.DB, status string, page, pageSize int) ([]models.Sponsor, int64, error)
	Update(db *gorm.DB, sponsor *models.Sponsor) error
	UpdateStatus(db *gorm.DB, id string, status models.SponsorStatus) error
	Delete(db *gorm.DB, id string) error
}

type sponsorRepository struct{}

func NewSponsorRepository() SponsorRepository {
	return &sponsorRepository{}
}

func (r *sponsorRepository) Create(db *gorm.DB, sponsor *models.Sponsor) error {
	return db.Create(sponsor).Error
}

func (r *sponsorRepository) GetByID(db *gorm.DB, id string) (*models.Sponsor, error) {
	var sponsor models.Sponsor
	if err := db.Where("id = ?", id).First(&sponsor).Error; err != nil {
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) List(db *gorm.DB, status string, page, pageSize int) ([]models.Sponsor, int64, error) {
	query := db.Model(&models.Sponsor{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var sponsors []models.Sponsor
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&sponsors).Error
	if err != nil {
		return nil, 0, err
	}

	return sponsors, total, nil
}

func (r *sponsorRepository) Update(db *gorm.DB, sponsor *models.Sponsor) error {
	return db.Save(sponsor).Error
}

func (r *sponsorRepository) UpdateStatus(db *gorm.DB, id string, status models.SponsorStatus) error {
	result := db.Model(&models.Sponsor{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *sponsorRepository) Delete(db *gorm.DB, id string) error {
	return db.Where("id = ?", id).Delete(&models.Sponsor{}).Error
}
