package services

import (
	"context"
	"fmt"
	"time"

	"studio_backend/internal/email"
	"studio_backend/internal/logger"
	"studio_backend/internal/models"
	"studio_backend/internal/repositories"

	"gorm.io/gorm"
)

// Notifier sends the transactional mail around submissions. Delivery is
// best-effort by policy: once a record is durably stored the user-facing
// response succeeds no matter what happens here, so none of these methods
// return an error. Failures go to the log.
type Notifier interface {
	CastingSubmitted(ctx context.Context, db *gorm.DB, app *models.CastingApplication, fileNames []string)
	SponsorSubmitted(ctx context.Context, db *gorm.DB, sponsor *models.Sponsor)
	ApplicationStatusChanged(ctx context.Context, db *gorm.DB, app *models.CastingApplication)
}

// NotifierConfig carries the fallback addresses used when site settings
// have none configured.
type NotifierConfig struct {
	StudioName   string
	SupportEmail string
	AdminEmail   string
}

type notificationService struct {
	provider email.Provider
	settings repositories.SettingsRepository
	config   NotifierConfig
}

func NewNotificationService(provider email.Provider, settings repositories.SettingsRepository, config NotifierConfig) Notifier {
	if config.StudioName == "" {
		config.StudioName = "The Studio"
	}
	return &notificationService{
		provider: provider,
		settings: settings,
		config:   config,
	}
}

func (s *notificationService) CastingSubmitted(ctx context.Context, db *gorm.DB, app *models.CastingApplication, fileNames []string) {
	applicantName := app.FirstName + " " + app.LastName

	phone := ""
	if app.Phone != nil {
		phone = *app.Phone
	}

	adminData := email.CastingNoticeData{
		TemplateData:  s.baseData("New casting application from " + applicantName),
		ApplicantName: applicantName,
		Email:         app.Email,
		Gender:        app.Gender,
		Phone:         phone,
		FileNames:     fileNames,
	}
	s.deliver(ctx, db, s.adminAddress(db), adminData.Subject, "admin_casting", adminData)

	userData := email.CastingNoticeData{
		TemplateData:  s.baseData("We received your casting application"),
		ApplicantName: app.FirstName,
	}
	s.deliver(ctx, db, app.Email, userData.Subject, "casting_confirmation", userData)
}

func (s *notificationService) SponsorSubmitted(ctx context.Context, db *gorm.DB, sponsor *models.Sponsor) {
	adminData := email.SponsorNoticeData{
		TemplateData:    s.baseData("New sponsor inquiry from " + sponsor.CompanyName),
		CompanyName:     sponsor.CompanyName,
		ContactName:     sponsor.ContactName,
		Email:           sponsor.Email,
		PartnershipType: sponsor.PartnershipType,
	}
	adminData.Message = sponsor.Message
	s.deliver(ctx, db, s.adminAddress(db), adminData.Subject, "admin_sponsor", adminData)

	userData := email.SponsorNoticeData{
		TemplateData:    s.baseData("We received your inquiry"),
		ContactName:     sponsor.ContactName,
		PartnershipType: sponsor.PartnershipType,
	}
	s.deliver(ctx, db, sponsor.Email, userData.Subject, "sponsor_confirmation", userData)
}

func (s *notificationService) ApplicationStatusChanged(ctx context.Context, db *gorm.DB, app *models.CastingApplication) {
	data := email.StatusChangeData{
		TemplateData:  s.baseData("Your casting application was updated"),
		ApplicantName: app.FirstName,
		Status:        app.Status,
	}
	s.deliver(ctx, db, app.Email, data.Subject, "application_status", data)
}

// deliver sends one message and logs the outcome. Errors stop here.
func (s *notificationService) deliver(ctx context.Context, db *gorm.DB, to, subject, templateName string, data interface{}) {
	if to == "" {
		logger.CtxWarn(ctx, "no recipient configured, skipping email", "template", templateName)
		return
	}

	start := time.Now()
	err := s.provider.SendTemplate([]string{to}, subject, templateName, data)
	logger.MailLog(to, subject, time.Since(start), err)
}

// adminAddress prefers the notify address from site settings, falling back
// to the configured one.
func (s *notificationService) adminAddress(db *gorm.DB) string {
	settings, err := s.settings.Get(db)
	if err == nil && settings.NotifyEmail != "" {
		return settings.NotifyEmail
	}
	if err != nil {
		logger.Warn("failed to load site settings for notify address", "error", fmt.Sprint(err))
	}
	return s.config.AdminEmail
}

func (s *notificationService) baseData(subject string) email.TemplateData {
	return email.TemplateData{
		Subject:      subject,
		StudioName:   s.config.StudioName,
		SupportEmail: s.config.SupportEmail,
	}
}
