package services

import (
	"encoding/json"

	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/internal/services/dto"
	"studio_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsService reads and replaces the single site-settings row.
type SettingsService interface {
	GetSettings(db *gorm.DB) (*models.SiteSettings, error)
	UpdateSettings(db *gorm.DB, req *dto.UpdateSettingsRequest) (*models.SiteSettings, error)
}

type settingsService struct {
	settings repositories.SettingsRepository
}

func NewSettingsService(settings repositories.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) GetSettings(db *gorm.DB) (*models.SiteSettings, error) {
	settings, err := s.settings.Get(db)
	if err != nil {
		return nil, apperrors.NewPersistenceError("settings", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(db *gorm.DB, req *dto.UpdateSettingsRequest) (*models.SiteSettings, error) {
	settings, err := s.GetSettings(db)
	if err != nil {
		return nil, err
	}

	settings.StudioName = req.StudioName
	settings.ContactEmail = req.ContactEmail
	settings.NotifyEmail = req.NotifyEmail
	settings.DonationURL = req.DonationURL

	links := req.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	settings.SocialLinks = datatypes.JSON(raw)

	if err := s.settings.Upsert(db, settings); err != nil {
		return nil, apperrors.NewPersistenceError("settings", err)
	}
	return settings, nil
}
