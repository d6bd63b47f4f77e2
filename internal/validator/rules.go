package validator

import (
	"log"
	"strings"

	"studio_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain validation tags. A registration
// failure is a startup bug, so it is fatal.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-application-status", validateApplicationStatus)
	mustRegister("is-sponsor-status", validateSponsorStatus)
	mustRegister("is-movie-status", validateMovieStatus)
	mustRegister("is-gender", validateGender)
	mustRegister("is-social-platform", validateSocialPlatform)
	mustRegister("is-partnership-type", validatePartnershipType)
}

// Empty values pass every rule below; 'required' handles presence.

func validateApplicationStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidApplicationStatus(models.ApplicationStatus(value))
}

func validateSponsorStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.ValidSponsorStatus(models.SponsorStatus(value))
}

func validateMovieStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.MovieStatus(value) {
	case models.MovieStatusDraft, models.MovieStatusPublished:
		return true
	default:
		return false
	}
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch strings.ToLower(value) {
	case "male", "female", "non-binary", "other":
		return true
	default:
		return false
	}
}

func validateSocialPlatform(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch strings.ToLower(value) {
	case "instagram", "tiktok", "youtube", "x", "other":
		return true
	default:
		return false
	}
}

func validatePartnershipType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "Event Sponsorship", "Production Sponsorship", "Brand Partnership", "In-Kind Donation", "Other":
		return true
	default:
		return false
	}
}
