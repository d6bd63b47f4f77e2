package repositories

import (
	"errors"

	"studio_backend/internal/models"

	"gorm.io/gorm"
)

type SettingsRepository interface {
	Get(db *gorm.DB) (*models.SiteSettings, error)
	Upsert(db *gorm.DB, settings *models.SiteSettings) error
}

type settingsRepository struct{}

func NewSettingsRepository() SettingsRepository {
	return &settingsRepository{}
}

// Get returns the singleton settings row, or a zero-value row if none has
// been written yet.
func (r *settingsRepository) Get(db *gorm.DB) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := db.Order("created_at ASC").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &models.SiteSettings{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Upsert(db *gorm.DB, settings *models.SiteSettings) error {
	if settings.ID == "" {
		return db.Create(settings).Error
	}
	return db.Save(settings).Error
}
