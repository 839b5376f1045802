package sms

import "errors"

var (
	ErrFailedToSendSMS = errors.New("sms: failed to send")
	ErrInvalidParams   = errors.New("sms: invalid params")
)
