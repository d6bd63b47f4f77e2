package dto

// UpdateSettingsRequest replaces the admin-editable site settings.
type UpdateSettingsRequest struct {
	StudioName   string            `json:"studioName" validate:"required"`
	ContactEmail string            `json:"contactEmail" validate:"required,email"`
	NotifyEmail  string            `json:"notifyEmail" validate:"omitempty,email"`
	SocialLinks  map[string]string `json:"socialLinks"`
	DonationURL  string            `json:"donationUrl" validate:"omitempty,url"`
}
