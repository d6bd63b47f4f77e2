package models

type ApplicationStatus string
type SponsorStatus string
type MovieStatus string
type UserRole string
type UserStatus string

const (
	// Casting applications: pending -> approved | rejected. Transitions are
	// admin-driven only and there is no terminal lock; a rejected
	// application may be re-approved.
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"

	// Sponsor inquiries: pending -> active | inactive.
	SponsorStatusPending  SponsorStatus = "pending"
	SponsorStatusActive   SponsorStatus = "active"
	SponsorStatusInactive SponsorStatus = "inactive"

	MovieStatusDraft     MovieStatus = "draft"
	MovieStatusPublished MovieStatus = "published"

	UserRoleAdmin  UserRole = "admin"
	UserRoleEditor UserRole = "editor"

	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// ValidApplicationStatus reports whether s belongs to the application state set.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

// ValidSponsorStatus reports whether s belongs to the sponsor state set.
func ValidSponsorStatus(s SponsorStatus) bool {
	switch s {
	case SponsorStatusPending, SponsorStatusActive, SponsorStatusInactive:
		return true
	}
	return false
}
