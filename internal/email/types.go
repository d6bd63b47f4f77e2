package email

// Email is an outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the base payload shared by all templates.
type TemplateData struct {
	Subject      string
	Message      string
	StudioName   string
	SupportEmail string
}

// CastingNoticeData feeds the admin_casting and casting_confirmation
// templates.
type CastingNoticeData struct {
	TemplateData
	ApplicantName string
	Email         string
	Gender        string
	Phone         string
	FileNames     []string
}

// SponsorNoticeData feeds the admin_sponsor and sponsor_confirmation
// templates.
type SponsorNoticeData struct {
	TemplateData
	CompanyName     string
	ContactName     string
	Email           string
	PartnershipType string
}

// StatusChangeData feeds the application_status template.
type StatusChangeData struct {
	TemplateData
	ApplicantName string
	Status        string
}

// Config configures the SMTP provider.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
