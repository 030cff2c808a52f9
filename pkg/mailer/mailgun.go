package mailer

import (
	"context"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

// Client sends mail through Mailgun.
type Client struct {
	Sender string
	mg     *mg.MailgunImpl
}

func NewClient(domain, apiKey, sender string) *Client {
	return &Client{Sender: sender, mg: mg.NewMailgun(domain, apiKey)}
}

// Send delivers one message; html is used as the HTML body when non-empty.
func (c *Client) Send(ctx context.Context, to, subject, text, html string) error {
	msg := c.mg.NewMessage(c.Sender, subject, text, to)
	if html != "" {
		msg.SetHtml(html)
	}
	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	_, _, err := c.mg.Send(sendCtx, msg)
	return err
}
