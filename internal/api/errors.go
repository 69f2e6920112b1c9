package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed call to the Travel Journal API. Status is 0 for
// network-level failures that never produced a response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("travel api: %s", e.Message)
	}
	return fmt.Sprintf("travel api: %d %s", e.Status, e.Message)
}

// IsUnauthorized reports whether err is a 401 from the API. By global
// policy a 401 means "session invalid", not a per-call error; the client
// has already cleared the stored session by the time this returns true.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// FriendlyMessage maps an error to a short user-facing message. Server
// messages win when present; otherwise the HTTP status decides.
func FriendlyMessage(err error) string {
	if err == nil {
		return ""
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return "Something went wrong. Please try again."
	}
	if apiErr.Status >= 400 && apiErr.Status < 500 && apiErr.Message != "" {
		return apiErr.Message
	}

	switch {
	case apiErr.Status == 0:
		return "Could not reach the server. Check your connection and try again."
	case apiErr.Status == http.StatusBadRequest:
		return "The request was not valid."
	case apiErr.Status == http.StatusUnauthorized:
		return "Your session has expired. Please log in again."
	case apiErr.Status == http.StatusForbidden:
		return "You do not have permission to do that."
	case apiErr.Status == http.StatusNotFound:
		return "The requested data was not found."
	case apiErr.Status == http.StatusConflict:
		return "That data already exists."
	case apiErr.Status == http.StatusUnprocessableEntity:
		return "The submitted data was not valid."
	case apiErr.Status == http.StatusTooManyRequests:
		return "Too many attempts. Try again later."
	case apiErr.Status >= 500:
		return "The server is having trouble. Please try again later."
	default:
		return "Something went wrong. Please try again."
	}
}
