package dto

// SubmitSponsorRequest is the public sponsor-inquiry payload. Honey is a
// hidden field real users never fill in; a non-empty value marks the
// submission as bot traffic.
type SubmitSponsorRequest struct {
	CompanyName     string `json:"companyName"`
	ContactName     string `json:"contactName"`
	Email           string `json:"email"`
	PartnershipType string `json:"partnershipType"`
	Message         string `json:"message"`
	Honey           string `json:"_honey"`
}

// CreateSponsorRequest is the admin manual-entry payload.
type CreateSponsorRequest struct {
	CompanyName     string `json:"companyName" validate:"required"`
	ContactName     string `json:"contactName" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	PartnershipType string `json:"partnershipType" validate:"required,is-partnership-type"`
	Message         string `json:"message"`
	LogoURL         string `json:"logoUrl" validate:"omitempty,url"`
	ProposalURL     string `json:"proposalUrl" validate:"omitempty,url"`
	Status          string `json:"status" validate:"omitempty,is-sponsor-status"`
}

// UpdateSponsorRequest is the admin edit payload; nil fields are unchanged.
type UpdateSponsorRequest struct {
	CompanyName     *string `json:"companyName"`
	ContactName     *string `json:"contactName"`
	Email           *string `json:"email" validate:"omitempty,email"`
	PartnershipType *string `json:"partnershipType" validate:"omitempty,is-partnership-type"`
	Message         *string `json:"message"`
	LogoURL         *string `json:"logoUrl" validate:"omitempty,url"`
	ProposalURL     *string `json:"proposalUrl" validate:"omitempty,url"`
}

// UpdateSponsorStatusRequest is the admin status-change payload.
type UpdateSponsorStatusRequest struct {
	Status string `json:"status" validate:"required,is-sponsor-status"`
}

// ListSponsorsRequest filters the admin sponsors table.
type ListSponsorsRequest struct {
	Status string `form:"status" validate:"omitempty,is-sponsor-status"`
}
