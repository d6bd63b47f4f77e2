package repositories

import (
	"studio_backend/internal/models"

	"gorm.io/gorm"
)

type CastingApplicationRepository interface {
	Create(db *gorm.DB, app *models.CastingApplication) error
	GetByID(db *gorm.DB, id string) (*models.CastingApplication, error)
	List(db *gorm.DB, status string, page, pageSize int) ([]models.CastingApplication, int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	UpdateEvaluation(db *gorm.DB, id string, evaluation string) error
	ListUnevaluated(db *gorm.DB, limit int) ([]models.CastingApplication, error)
}

type castingApplicationRepository struct{}

func NewCastingApplicationRepository() CastingApplicationRepository {
	return &castingApplicationRepository{}
}

func (r *castingApplicationRepository) Create(db *gorm.DB, app *models.CastingApplication) error {
	return db.Create(app).Error
}

func (r *castingApplicationRepository) GetByID(db *gorm.DB, id string) (*models.CastingApplication, error) {
	var app models.CastingApplication
	if err := db.Where("id = ?", id).First(&app).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *castingApplicationRepository) List(db *gorm.DB, status string, page, pageSize int) ([]models.CastingApplication, int64, error) {
	query := db.Model(&models.CastingApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []models.CastingApplication
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *castingApplicationRepository) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.CastingApplication{}).
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

func (r *castingApplicationRepository) UpdateEvaluation(db *gorm.DB, id string, evaluation string) error {
	return db.Model(&models.CastingApplication{}).
		Where("id = ?", id).
		Update("ai_evaluation", evaluation).Error
}

func (r *castingApplicationRepository) ListUnevaluated(db *gorm.DB, limit int) ([]models.CastingApplication, error) {
	var apps []models.CastingApplication
	err := db.
		Where("status = ? AND ai_evaluation IS NULL", models.ApplicationStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}
