package models

// Sponsor is a partnership inquiry, created by the public form or entered
// manually by an admin.
type Sponsor struct {
	BaseModel
	CompanyName     string  `json:"companyName"`
	ContactName     string  `json:"contactName"`
	Email           string  `gorm:"index" json:"email"`
	PartnershipType string  `json:"partnershipType"`
	Message         string  `gorm:"type:text" json:"message"`
	LogoURL         *string `json:"logoUrl,omitempty"`
	ProposalURL     *string `json:"proposalUrl,omitempty"`
	Status          string  `gorm:"default:'pending';index" json:"status"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}
