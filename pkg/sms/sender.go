package sms

import (
	"context"
	"fmt"
	"regexp"
)

// SMSSender represents an interface for sending SMS messages.
// Provider SDK adapters implement this; consumers depend only on the
// interface so the gateway can be swapped without touching calling code.
type SMSSender interface {
	SendSMS(ctx context.Context, params SendSMSParams) error
}

// SendSMSParams represents the parameters for sending an SMS message.
type SendSMSParams struct {
	SendTo  string `json:"send_to"`       // Recipient phone number in E.164 format
	Message string `json:"message"`       // Message body
	Tag     string `json:"tag,omitempty"` // Optional delivery tag for grouping
}

// phoneRegex accepts E.164 numbers: a plus sign and 8-15 digits.
var phoneRegex = regexp.MustCompile(`^\+[1-9]\d{7,14}$`)

// Validate checks that the parameters describe a sendable message.
func (p SendSMSParams) Validate() error {
	if p.SendTo == "" {
		return fmt.Errorf("%w: SendTo is required", ErrInvalidParams)
	}
	if !phoneRegex.MatchString(p.SendTo) {
		return fmt.Errorf("%w: SendTo must be an E.164 phone number", ErrInvalidParams)
	}
	if p.Message == "" {
		return fmt.Errorf("%w: Message is required", ErrInvalidParams)
	}
	if len(p.Message) > 1600 {
		return fmt.Errorf("%w: Message exceeds 1600 characters", ErrInvalidParams)
	}
	return nil
}
