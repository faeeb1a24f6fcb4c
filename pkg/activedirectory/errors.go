package activedirectory

import (
	"fmt"
	"strings"
)

var (
	ErrNotFound    = fmt.Errorf("not found")
	ErrForbidden   = fmt.Errorf("access forbidden")
	ErrConflict    = fmt.Errorf("no service account available")
	ErrServerError = fmt.Errorf("server error")
	ErrTransport   = fmt.Errorf("transport failure")
)

// APIError is a non-2xx answer from Vault. It keeps the raw status code and
// the error strings from the response body, and unwraps to one of the
// sentinel errors above so callers can branch with errors.Is.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("vault responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("vault responded with status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 404:
		return ErrNotFound
	case e.StatusCode == 403:
		return ErrForbidden
	case e.StatusCode == 409:
		return ErrConflict
	case e.StatusCode >= 500:
		return ErrServerError
	}
	return nil
}
