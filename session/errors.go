package session

import "fmt"

// ConfigurationError reports a session that cannot be constructed, typically
// a missing credential. It is fatal; no network call is attempted.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return e.Reason
}

// APIError reports a non-200 response from the completion endpoint. Only the
// status code is carried; callers map it to user-facing hints.
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %d", e.StatusCode)
}

// TransportError reports a connectivity-level failure: DNS, TCP, TLS, or a
// request timeout.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
