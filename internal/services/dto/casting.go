package dto

// SubmitCastingRequest carries the text fields of the public casting form.
// The file parts (headshots[], voiceSamples[]) ride alongside in the
// multipart body and are validated separately.
type SubmitCastingRequest struct {
	FirstName    string `form:"firstName" json:"firstName"`
	LastName     string `form:"lastName" json:"lastName"`
	Email        string `form:"email" json:"email"`
	Phone        string `form:"phone" json:"phone"`
	Gender       string `form:"gender" json:"gender" validate:"omitempty,is-gender"`
	SocialHandle string `form:"socialHandle" json:"socialHandle"`
	SocialType   string `form:"socialType" json:"socialType" validate:"omitempty,is-social-platform"`
	Bio          string `form:"bio" json:"bio"`
	Signature    string `form:"signature" json:"signature"`
}

// UpdateApplicationStatusRequest is the admin status-change payload.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

// ListApplicationsRequest filters the admin application table.
type ListApplicationsRequest struct {
	Status string `form:"status" validate:"omitempty,is-application-status"`
}
