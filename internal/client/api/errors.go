package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the backend produced no response at all.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized matches 401/403 responses via errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-success HTTP response converted to an error.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend error: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// Is makes 401/403 responses match ErrUnauthorized.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}
