package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"studio_backend/internal/logger"
	"studio_backend/internal/models"
	"studio_backend/internal/repositories"
	"studio_backend/internal/services/dto"
	"studio_backend/internal/storage"
	"studio_backend/pkg/apperrors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SpamPolicy names what happens to a submission the honeypot flags as bot
// traffic.
type SpamPolicy string

const (
	// SpamPolicyReportSuccessSilently reports success to the caller while
	// writing nothing and sending nothing, so bots cannot tell they were
	// caught. This is the production policy.
	SpamPolicyReportSuccessSilently SpamPolicy = "report_success_silently"

	// SpamPolicyReject returns a 400 instead. Useful in tests and staging.
	SpamPolicyReject SpamPolicy = "reject"
)

// IntakeService turns public form posts into persisted records plus
// notification email. The workflow per submission is an ordered step
// sequence: validate, upload attachments (concurrent, all-or-nothing),
// persist, notify. Validation, upload and persistence failures abort the
// request; notification failures are logged and never fail it. There is no
// compensation: attachments already uploaded stay in storage when a later
// step fails, and retried submissions create duplicate records.
type IntakeService interface {
	SubmitCasting(ctx context.Context, db *gorm.DB, req *dto.SubmitCastingRequest, headshots, voiceSamples []*multipart.FileHeader) (*models.CastingApplication, error)
	SubmitSponsor(ctx context.Context, db *gorm.DB, req *dto.SubmitSponsorRequest) (*models.Sponsor, error)
}

// IntakeConfig bounds uploaded attachments and selects the spam policy.
type IntakeConfig struct {
	MaxFileSize int64
	ImageTypes  []string
	AudioTypes  []string
	SpamPolicy  SpamPolicy
}

type intakeService struct {
	applications repositories.CastingApplicationRepository
	sponsors     repositories.SponsorRepository
	store        storage.Storage
	notifier     Notifier
	config       IntakeConfig
}

func NewIntakeService(
	applications repositories.CastingApplicationRepository,
	sponsors repositories.SponsorRepository,
	store storage.Storage,
	notifier Notifier,
	config IntakeConfig,
) IntakeService {
	if config.SpamPolicy == "" {
		config.SpamPolicy = SpamPolicyReportSuccessSilently
	}
	return &intakeService{
		applications: applications,
		sponsors:     sponsors,
		store:        store,
		notifier:     notifier,
		config:       config,
	}
}

func (s *intakeService) SubmitCasting(ctx context.Context, db *gorm.DB, req *dto.SubmitCastingRequest, headshots, voiceSamples []*multipart.FileHeader) (*models.CastingApplication, error) {
	// Step 1: validate. Nothing is persisted or sent past a failure here.
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Gender == "" || req.Signature == "" {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "casting", "Missing required fields", 400)
	}
	if len(headshots) == 0 {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "casting", "At least one headshot is required", 400)
	}
	if len(voiceSamples) == 0 {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "casting", "At least one voice sample is required", 400)
	}

	for _, fh := range headshots {
		if err := s.checkAttachment(fh, s.config.ImageTypes); err != nil {
			return nil, err
		}
	}
	for _, fh := range voiceSamples {
		if err := s.checkAttachment(fh, s.config.AudioTypes); err != nil {
			return nil, err
		}
	}

	// Step 2: upload every attachment concurrently and join. Any single
	// failure aborts the submission; objects stored before the failure are
	// not cleaned up.
	headshotURLs, err := s.uploadAll(ctx, "headshot", headshots)
	if err != nil {
		return nil, err
	}
	voiceURLs, err := s.uploadAll(ctx, "voice", voiceSamples)
	if err != nil {
		return nil, err
	}

	// Step 3: persist. The evaluation field stays null; a worker fills it
	// in out-of-band.
	app := &models.CastingApplication{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Gender:       req.Gender,
		SocialHandle: req.SocialHandle,
		SocialType:   req.SocialType,
		Bio:          req.Bio,
		Signature:    req.Signature,
		Headshots:    mustJSONList(headshotURLs),
		VoiceSamples: mustJSONList(voiceURLs),
		Status:       string(models.ApplicationStatusPending),
	}
	if req.Phone != "" {
		app.Phone = &req.Phone
	}

	if err := s.applications.Create(db, app); err != nil {
		return nil, apperrors.NewPersistenceError("casting", err)
	}

	// Step 4: notify. Best-effort; the record is durable, so a delivery
	// failure must not fail the user-facing response.
	s.notifier.CastingSubmitted(ctx, db, app, attachmentNames(headshots, voiceSamples))

	return app, nil
}

func (s *intakeService) SubmitSponsor(ctx context.Context, db *gorm.DB, req *dto.SubmitSponsorRequest) (*models.Sponsor, error) {
	if req.CompanyName == "" || req.ContactName == "" || req.Email == "" || req.PartnershipType == "" || req.Message == "" {
		return nil, apperrors.New(apperrors.CodeValidationFailed, "sponsor", "Missing required fields", 400)
	}

	// Honeypot: a hidden field real users never see. Flagged submissions
	// are handled per the configured policy before anything is written.
	if req.Honey != "" {
		logger.CtxWarn(ctx, "sponsor submission flagged as spam",
			"policy", string(s.config.SpamPolicy),
			"company", req.CompanyName,
		)
		switch s.config.SpamPolicy {
		case SpamPolicyReject:
			return nil, apperrors.New(apperrors.CodeValidationFailed, "sponsor", "Submission rejected", 400)
		default:
			// Report success without persisting or notifying.
			return nil, nil
		}
	}

	sponsor := &models.Sponsor{
		CompanyName:     req.CompanyName,
		ContactName:     req.ContactName,
		Email:           req.Email,
		PartnershipType: req.PartnershipType,
		Message:         req.Message,
		Status:          string(models.SponsorStatusPending),
	}

	if err := s.sponsors.Create(db, sponsor); err != nil {
		return nil, apperrors.NewPersistenceError("sponsor", err)
	}

	s.notifier.SponsorSubmitted(ctx, db, sponsor)

	return sponsor, nil
}

// uploadAll stores every attachment concurrently and returns the public
// URLs in input order. All-or-nothing: the first failure cancels the rest.
func (s *intakeService) uploadAll(ctx context.Context, role string, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, fh := range files {
		i, fh := i, fh
		g.Go(func() error {
			key := assetKey(role, fh.Filename)

			src, err := fh.Open()
			if err != nil {
				return fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
			}
			defer src.Close()

			contentType := fh.Header.Get("Content-Type")
			if err := s.store.Save(gctx, key, src, contentType); err != nil {
				return err
			}

			url, err := s.store.GetURL(gctx, key)
			if err != nil {
				return err
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, apperrors.NewStorageError("casting", err)
	}

	return urls, nil
}

func (s *intakeService) checkAttachment(fh *multipart.FileHeader, allowedTypes []string) error {
	if s.config.MaxFileSize > 0 && fh.Size > s.config.MaxFileSize {
		return apperrors.New(apperrors.CodeValidationFailed, "casting",
			fmt.Sprintf("File %s exceeds the size limit", fh.Filename), 400)
	}

	if len(allowedTypes) == 0 {
		return nil
	}
	contentType := fh.Header.Get("Content-Type")
	for _, t := range allowedTypes {
		if contentType == t {
			return nil
		}
	}
	return apperrors.New(apperrors.CodeValidationFailed, "casting",
		fmt.Sprintf("File %s has unsupported type %s", fh.Filename, contentType), 400)
}

// assetKey builds a collision-resistant object key. A uuid per file avoids
// the key collisions a timestamp+index scheme has under concurrent
// submissions; the original file name is kept only as a sanitized suffix
// for operator readability.
func assetKey(role, filename string) string {
	ext := filepath.Ext(filename)
	return fmt.Sprintf("submissions/casting/%s/%s-%s%s",
		time.Now().UTC().Format("2006/01/02"), role, uuid.NewString(), ext)
}

func attachmentNames(groups ...[]*multipart.FileHeader) []string {
	var names []string
	for _, group := range groups {
		for _, fh := range group {
			names = append(names, fh.Filename)
		}
	}
	return names
}

func mustJSONList(items []string) datatypes.JSON {
	// Marshalling a []string cannot fail.
	b, _ := json.Marshal(items)
	return datatypes.JSON(b)
}
