package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue. Template names
// a known template ("confirm_email"); Data carries its fields. Subject,
// Text and HTML may be pre-rendered instead of using a template.
type EmailJob struct {
	To       string            `json:"to"`
	Subject  string            `json:"subject,omitempty"`
	Text     string            `json:"text,omitempty"`
	HTML     string            `json:"html,omitempty"`
	Template string            `json:"template,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
}
