package services

import (
	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/internal/services/dto"
	"studio_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SponsorService is the admin-facing side of sponsor inquiries: manual
// entry, edits, status changes and deletion.
type SponsorService interface {
	ListSponsors(db *gorm.DB, status string, page, pageSize int) ([]models.Sponsor, int64, error)
	GetSponsor(db *gorm.DB, id string) (*models.Sponsor, error)
	CreateSponsor(db *gorm.DB, req *dto.CreateSponsorRequest) (*models.Sponsor, error)
	UpdateSponsor(db *gorm.DB, id string, req *dto.UpdateSponsorRequest) (*models.Sponsor, error)
	UpdateSponsorStatus(db *gorm.DB, id string, status models.SponsorStatus) (*models.Sponsor, error)
	DeleteSponsor(db *gorm.DB, id string) error
}

type sponsorService struct {
	sponsors repositories.SponsorRepository
}

func NewSponsorService(sponsors repositories.SponsorRepository) SponsorService {
	return &sponsorService{sponsors: sponsors}
}

func (s *sponsorService) ListSponsors(db *gorm.DB, status string, page, pageSize int) ([]models.Sponsor, int64, error) {
	sponsors, total, err := s.sponsors.List(db, status, page, pageSize)
	if err != nil {
		return nil, 0, apperrors.NewPersistenceError("sponsor", err)
	}
	return sponsors, total, nil
}

func (s *sponsorService) GetSponsor(db *gorm.DB, id string) (*models.Sponsor, error) {
	sponsor, err := s.sponsors.GetByID(db, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("sponsor", "Sponsor not found")
		}
		return nil, apperrors.NewPersistenceError("sponsor", err)
	}
	return sponsor, nil
}

func (s *sponsorService) CreateSponsor(db *gorm.DB, req *dto.CreateSponsorRequest) (*models.Sponsor, error) {
	status := req.Status
	if status == "" {
		status = string(models.SponsorStatusPending)
	}

	sponsor := &models.Sponsor{
		CompanyName:     req.CompanyName,
		ContactName:     req.ContactName,
		Email:           req.Email,
		PartnershipType: req.PartnershipType,
		Message:         req.Message,
		Status:          status,
	}
	if req.LogoURL != "" {
		sponsor.LogoURL = &req.LogoURL
	}
	if req.ProposalURL != "" {
		sponsor.ProposalURL = &req.ProposalURL
	}

	if err := s.sponsors.Create(db, sponsor); err != nil {
		return nil, apperrors.NewPersistenceError("sponsor", err)
	}
	return sponsor, nil
}

func (s *sponsorService) UpdateSponsor(db *gorm.DB, id string, req *dto.UpdateSponsorRequest) (*models.Sponsor, error) {
	sponsor, err := s.GetSponsor(db, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyName != nil {
		sponsor.CompanyName = *req.CompanyName
	}
	if req.ContactName != nil {
		sponsor.ContactName = *req.ContactName
	}
	if req.Email != nil {
		sponsor.Email = *req.Email
	}
	if req.PartnershipType != nil {
		sponsor.PartnershipType = *req.PartnershipType
	}
	if req.Message != nil {
		sponsor.Message = *req.Message
	}
	if req.LogoURL != nil {
		sponsor.LogoURL = req.LogoURL
	}
	if req.ProposalURL != nil {
		sponsor.ProposalURL = req.ProposalURL
	}

	if err := s.sponsors.Update(db, sponsor); err != nil {
		return nil, apperrors.NewPersistenceError("sponsor", err)
	}
	return sponsor, nil
}

func (s *sponsorService) UpdateSponsorStatus(db *gorm.DB, id string, status models.SponsorStatus) (*models.Sponsor, error) {
	if !models.ValidSponsorStatus(status) {
		return nil, apperrors.NewInvalidStatusError("sponsor", "Unknown sponsor status: "+string(status))
	}

	if err := s.sponsors.UpdateStatus(db, id, status); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("sponsor", "Sponsor not found")
		}
		return nil, apperrors.NewPersistenceError("sponsor", err)
	}

	return s.GetSponsor(db, id)
}

func (s *sponsorService) DeleteSponsor(db *gorm.DB, id string) error {
	if _, err := s.GetSponsor(db, id); err != nil {
		return err
	}
	if err := s.sponsors.Delete(db, id); err != nil {
		return apperrors.NewPersistenceError("sponsor", err)
	}
	return nil
}
