package models

import (
	"gorm.io/datatypes"
)

// SiteSettings is a single-row table holding site-wide content knobs. The
// admin notification address configured here overrides the one from config
// when set.
type SiteSettings struct {
	BaseModel
	StudioName   string         `json:"studioName"`
	ContactEmail string         `json:"contactEmail"`
	NotifyEmail  string         `json:"notifyEmail"`
	SocialLinks  datatypes.JSON `gorm:"type:jsonb" json:"socialLinks"`
	DonationURL  string         `json:"donationUrl"`
}

func (SiteSettings) TableName() string {
	return "site_settings"
}
