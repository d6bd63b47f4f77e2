package models

import (
	"gorm.io/datatypes"
)

// CastingApplication is a public casting-form submission. Applications are
// never hard-deleted; admins only move them between statuses.
type CastingApplication struct {
	BaseModel
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `gorm:"index" json:"email"`
	Phone        *string        `json:"phone,omitempty"`
	Gender       string         `json:"gender"`
	SocialHandle string         `json:"socialHandle"`
	SocialType   string         `json:"socialType"`
	Bio          string         `gorm:"type:text" json:"bio"`
	Signature    string         `json:"signature"` // typed name, digital signature
	Headshots    datatypes.JSON `gorm:"type:jsonb" json:"headshots"`    // list of asset URLs
	VoiceSamples datatypes.JSON `gorm:"type:jsonb" json:"voiceSamples"` // list of asset URLs
	Status       string         `gorm:"default:'pending';index" json:"status"`
	AIEvaluation *string        `gorm:"type:text" json:"aiEvaluation,omitempty"` // populated out-of-band
}

func (CastingApplication) TableName() string {
	return "casting_applications"
}
