package services

import (
	"context"

	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// CastingService is the admin-facing side of casting applications. There is
// no delete: applications are only ever moved between statuses.
type CastingService interface {
	ListApplications(db *gorm.DB, status string, page, pageSize int) ([]models.CastingApplication, int64, error)
	GetApplication(db *gorm.DB, id string) (*models.CastingApplication, error)
	UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id string, status models.ApplicationStatus) (*models.CastingApplication, error)
}

type castingService struct {
	applications repositories.CastingApplicationRepository
	notifier     Notifier
}

func NewCastingService(applications repositories.CastingApplicationRepository, notifier Notifier) CastingService {
	return &castingService{
		applications: applications,
		notifier:     notifier,
	}
}

func (s *castingService) ListApplications(db *gorm.DB, status string, page, pageSize int) ([]models.CastingApplication, int64, error) {
	apps, total, err := s.applications.List(db, status, page, pageSize)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("casting", err)
	}
	return apps, total, nil
}

func (s *castingService) GetApplication(db *gorm.DB, id string) (*models.CastingApplication, error) {
	app, err := s.applications.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("casting", "Application not found")
		}
		return nil, apperrors.NewPersistenceError("casting", err)
	}
	return app, nil
}

// UpdateApplicationStatus moves an application to any state in the set; a
// rejected application may be re-approved later. The applicant is notified
// best-effort.
func (s *castingService) UpdateApplicationStatus(ctx context.Context, db *gorm.DB, id string, status models.ApplicationStatus) (*models.CastingApplication, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, apperrors.NewInvalidStatusError("casting", "Unknown application status: "+string(status))
	}

	if err := s.applications.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("casting", "Application not found")
		}
		return nil, apperrors.NewPersistenceError("casting", err)
	}

	app, err := s.applications.GetByID(db, id)
	if err != nil {
		return nil, apperrors.NewPersistenceError("casting", err)
	}

	if status != models.ApplicationStatusPending {
		s.notifier.ApplicationStatusChanged(ctx, db, app)
	}

	return app, nil
}
