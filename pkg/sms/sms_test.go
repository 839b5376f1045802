package sms_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/sms"
)

func TestSendSMSParams_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params sms.SendSMSParams
		valid  bool
	}{
		{
			name:   "valid",
			params: sms.SendSMSParams{SendTo: "+15551234567", Message: "hi"},
			valid:  true,
		},
		{
			name:   "missing recipient",
			params: sms.SendSMSParams{Message: "hi"},
		},
		{
			name:   "recipient without plus",
			params: sms.SendSMSParams{SendTo: "15551234567", Message: "hi"},
		},
		{
			name:   "recipient too short",
			params: sms.SendSMSParams{SendTo: "+123", Message: "hi"},
		},
		{
			name:   "missing message",
			params: sms.SendSMSParams{SendTo: "+15551234567"},
		},
		{
			name:   "message too long",
			params: sms.SendSMSParams{SendTo: "+15551234567", Message: strings.Repeat("a", 1601)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.params.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, sms.ErrInvalidParams)
			}
		})
	}
}

func TestDevSender_WritesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := sms.NewDevSender(dir)

	err := sender.SendSMS(context.Background(), sms.SendSMSParams{
		SendTo:  "+15551234567",
		Message: "build finished",
		Tag:     "ci",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	require.NoError(t, err)

	var record map[string]string
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, "+15551234567", record["send_to"])
	assert.Equal(t, "build finished", record["message"])
	assert.Equal(t, "ci", record["tag"])
}

func TestDevSender_RejectsInvalidParams(t *testing.T) {
	t.Parallel()

	sender := sms.NewDevSender(t.TempDir())
	err := sender.SendSMS(context.Background(), sms.SendSMSParams{})
	assert.ErrorIs(t, err, sms.ErrInvalidParams)
}
