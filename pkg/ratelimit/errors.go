package ratelimit

import "errors"

var (
	// ErrInvalidConfig indicates that the provided configuration is invalid.
	ErrInvalidConfig = errors.New("ratelimit: invalid configuration")

	// ErrKeyRequired indicates that an empty ledger key was supplied.
	ErrKeyRequired = errors.New("ratelimit: key is required")

	// ErrStoreUnavailable indicates that the ledger backend is unavailable.
	ErrStoreUnavailable = errors.New("ratelimit: store unavailable")
)
