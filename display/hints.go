package display

import (
	"errors"
	"net/http"

	"ai_text_completion/session"
)

// Hint maps an error onto a user-facing message. The mapping is a closed
// table over the session's typed error kinds; unknown errors fall through to
// their own text.
func Hint(err error) string {
	var cfgErr *session.ConfigurationError
	if errors.As(err, &cfgErr) {
		return "API key problem. Check your OPENROUTER_API_KEY."
	}

	var apiErr *session.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "API key problem. Check your OPENROUTER_API_KEY."
		case http.StatusTooManyRequests:
			return "Too many requests. Wait and try again."
		case http.StatusPaymentRequired:
			return "Not enough credits."
		default:
			return apiErr.Error()
		}
	}

	var trErr *session.TransportError
	if errors.As(err, &trErr) {
		return "Can't connect to the API. Check your internet connection."
	}

	return err.Error()
}
