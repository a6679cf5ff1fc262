package domain

import "errors"

var (
	ErrMissingCode   = errors.New("product code is required")
	ErrMissingConfig = errors.New("API configuration is missing")
	ErrInvalidJSON   = errors.New("invalid JSON response")
)

// An APIError marks a transport-level failure of the outbound stock API call:
// dial, DNS, timeout or a non-2xx status. The wrapped error text is surfaced
// to the caller as-is.
type APIError struct {
	Err error
}

func (e *APIError) Error() string {
	return e.Err.Error()
}

func (e *APIError) Unwrap() error {
	return e.Err
}
