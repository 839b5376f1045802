package webhook

import "errors"

// Stable error identities for delivery outcomes. Callers classify with
// errors.Is; detailed context is wrapped around these at the call site.
var (
	ErrDeliveryFailed   = errors.New("webhook delivery failed")
	ErrInvalidConfig    = errors.New("invalid webhook configuration")
	ErrPermanentFailure = errors.New("permanent webhook failure")
	ErrTemporaryFailure = errors.New("temporary webhook failure")
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrInvalidURL       = errors.New("invalid webhook URL")
	ErrTimeout          = errors.New("webhook request timeout")
)
