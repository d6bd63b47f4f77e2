package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateManager holds the compiled-in email templates.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	sources := map[string]string{
		"admin_casting":        adminCastingTemplate,
		"casting_confirmation": castingConfirmationTemplate,
		"admin_sponsor":        adminSponsorTemplate,
		"sponsor_confirmation": sponsorConfirmationTemplate,
		"application_status":   applicationStatusTemplate,
		"notification":         notificationTemplate,
	}

	for name, src := range sources {
		tpl, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

// Render executes the named template with data.
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template: %s", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

const adminCastingTemplate = `
<h2>New Casting Application</h2>
<p><strong>{{.ApplicantName}}</strong> submitted a casting application.</p>
<ul>
  <li>Email: {{.Email}}</li>
  <li>Gender: {{.Gender}}</li>
  {{if .Phone}}<li>Phone: {{.Phone}}</li>{{end}}
</ul>
{{if .FileNames}}
<p>Attached files:</p>
<ul>
  {{range .FileNames}}<li>{{.}}</li>{{end}}
</ul>
{{end}}
<p>Review it in the admin dashboard.</p>
`

const castingConfirmationTemplate = `
<h2>Thank you, {{.ApplicantName}}!</h2>
<p>We received your casting application at {{.StudioName}}. Our team reviews
every submission and will reach out if there is a fit.</p>
<p>No further action is needed from you.</p>
<p>The {{.StudioName}} Team</p>
`

const adminSponsorTemplate = `
<h2>New Sponsor Inquiry</h2>
<p><strong>{{.CompanyName}}</strong> is interested in: {{.PartnershipType}}</p>
<ul>
  <li>Contact: {{.ContactName}}</li>
  <li>Email: {{.Email}}</li>
</ul>
<p>{{.Message}}</p>
`

const sponsorConfirmationTemplate = `
<h2>Thank you for reaching out, {{.ContactName}}!</h2>
<p>We received your inquiry about {{.PartnershipType}} and will get back to
you shortly.</p>
<p>The {{.StudioName}} Team</p>
`

const applicationStatusTemplate = `
<h2>Application Update</h2>
<p>Hi {{.ApplicantName}},</p>
<p>Your casting application status is now: <strong>{{.Status}}</strong>.</p>
<p>The {{.StudioName}} Team</p>
`

const notificationTemplate = `
<h2>{{.Subject}}</h2>
<p>{{.Message}}</p>
`
