package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// DevSender implements SMSSender for local development.
// It saves each message as a JSON file to a directory instead of
// sending it through an SMS gateway.
type DevSender struct {
	dir string
}

// NewDevSender creates a development SMS sender that saves messages to disk.
// The directory is created on first send if it doesn't exist.
func NewDevSender(dir string) SMSSender {
	return &DevSender{dir: dir}
}

type smsRecord struct {
	Timestamp string `json:"timestamp"`
	SendTo    string `json:"send_to"`
	Message   string `json:"message"`
	Tag       string `json:"tag,omitempty"`
}

// SendSMS saves the message as a JSON file to the configured directory.
func (d *DevSender) SendSMS(ctx context.Context, params SendSMSParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(d.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrFailedToSendSMS, err)
	}

	now := time.Now()
	identifier := params.Tag
	if identifier == "" {
		identifier = params.SendTo
	}
	filename := fmt.Sprintf("%s_%s.json", now.Format("2006_01_02_150405"), sanitizeFilename(identifier))

	record := smsRecord{
		Timestamp: now.Format(time.RFC3339),
		SendTo:    params.SendTo,
		Message:   params.Message,
		Tag:       params.Tag,
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrFailedToSendSMS, err)
	}

	if err := os.WriteFile(filepath.Join(d.dir, filename), data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write file: %v", ErrFailedToSendSMS, err)
	}

	return nil
}

// sanitizeRegex matches characters that are not alphanumeric, dash, underscore, or dot.
var sanitizeRegex = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	safe := sanitizeRegex.ReplaceAllString(s, "_")
	if len(safe) > 64 {
		safe = safe[:64]
	}
	return safe
}
