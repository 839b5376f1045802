package notify

import "errors"

var (
	ErrRateLimitExceeded   = errors.New("notify: rate limit exceeded")
	ErrInvalidConfig       = errors.New("notify: invalid config")
	ErrAlreadyStarted      = errors.New("notify: engine already started")
	ErrClosed              = errors.New("notify: engine closed")
	ErrInvalidExportFormat = errors.New("notify: invalid export format")
	ErrInvalidPreferences  = errors.New("notify: invalid preferences")
)
