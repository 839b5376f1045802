package notify

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/dmitrymomot/notifykit/pkg/email"
	"github.com/dmitrymomot/notifykit/pkg/sms"
	"github.com/dmitrymomot/notifykit/pkg/webhook"
)

// EmailChannel adapts an email.EmailSender into a channel Sender. Every
// notification goes to the configured recipient; an empty recipient is the
// not-deliverable outcome.
type EmailChannel struct {
	sender email.EmailSender
	sendTo string
}

// NewEmailChannel creates an email channel sender delivering to sendTo.
func NewEmailChannel(sender email.EmailSender, sendTo string) *EmailChannel {
	return &EmailChannel{sender: sender, sendTo: sendTo}
}

func (c *EmailChannel) Send(ctx context.Context, n Notification) (bool, error) {
	if c.sender == nil || c.sendTo == "" {
		return false, nil
	}

	body := fmt.Sprintf("<h2>%s</h2><p>%s</p>",
		html.EscapeString(n.Title), html.EscapeString(n.Message))

	err := c.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   c.sendTo,
		Subject:  n.Title,
		BodyHTML: body,
		Tag:      n.Category,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// SMSChannel adapts an sms.SMSSender into a channel Sender.
type SMSChannel struct {
	sender sms.SMSSender
	sendTo string
}

// NewSMSChannel creates an SMS channel sender delivering to the E.164
// number sendTo.
func NewSMSChannel(sender sms.SMSSender, sendTo string) *SMSChannel {
	return &SMSChannel{sender: sender, sendTo: sendTo}
}

func (c *SMSChannel) Send(ctx context.Context, n Notification) (bool, error) {
	if c.sender == nil || c.sendTo == "" {
		return false, nil
	}

	err := c.sender.SendSMS(ctx, sms.SendSMSParams{
		SendTo:  c.sendTo,
		Message: fmt.Sprintf("%s: %s", n.Title, n.Message),
		Tag:     n.Category,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// webhookPayload is the wire shape POSTed to webhook endpoints.
type webhookPayload struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      Type      `json:"type"`
	Priority  Priority  `json:"priority"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// WebhookChannel POSTs notifications to an HTTP endpoint via
// webhook.Sender, with whatever retry and signing options are supplied.
type WebhookChannel struct {
	sender *webhook.Sender
	url    string
	opts   []webhook.SendOption
}

// NewWebhookChannel creates a webhook channel sender targeting url.
func NewWebhookChannel(sender *webhook.Sender, url string, opts ...webhook.SendOption) *WebhookChannel {
	return &WebhookChannel{sender: sender, url: url, opts: opts}
}

func (c *WebhookChannel) Send(ctx context.Context, n Notification) (bool, error) {
	if c.sender == nil || c.url == "" {
		return false, nil
	}

	payload := webhookPayload{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Priority:  n.Priority,
		Category:  n.Category,
		CreatedAt: n.CreatedAt,
	}
	if err := c.sender.Send(ctx, c.url, payload, c.opts...); err != nil {
		return false, err
	}
	return true, nil
}
