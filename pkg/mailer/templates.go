package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateConfirmEmail is the signup confirmation mail. Data fields:
// Username, ConfirmURL.
const TemplateConfirmEmail = "confirm_email"

var confirmEmailHTML = template.Must(template.New(TemplateConfirmEmail).Parse(`<html>
<body style="font-family: sans-serif">
  <h2>Hello, {{.Username}}!</h2>
  <p>Thanks for signing up. Please confirm your email address by
  following the link below. The link is valid for 24 hours.</p>
  <p><a href="{{.ConfirmURL}}">Confirm your email</a></p>
  <p>If you did not create this account, you can ignore this message.</p>
</body>
</html>`))

// Render produces subject, text and HTML bodies for a known template.
func Render(name string, data map[string]string) (subject, text, html string, err error) {
	switch name {
	case TemplateConfirmEmail:
		var buf bytes.Buffer
		if err := confirmEmailHTML.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "Confirm your email"
		text = fmt.Sprintf("Hello, %s! Confirm your email: %s", data["Username"], data["ConfirmURL"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("mailer: unknown template %q", name)
	}
}
