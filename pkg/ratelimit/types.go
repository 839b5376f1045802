package ratelimit

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum admissions inside the window
	Remaining int       // Admissions left after this check; negative means denied
	ResetAt   time.Time // Time when the oldest ledger entry leaves the window
}

// Allowed reports whether the admission was recorded.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next attempt can succeed.
// Returns 0 if the admission was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Config defines the sliding window parameters.
type Config struct {
	Limit  int           // Maximum admissions inside a window
	Window time.Duration // Trailing window length
}
