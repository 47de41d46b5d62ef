package tmdb

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResults is returned when a title re-resolution finds nothing
	ErrNoResults = errors.New("tmdb: no results")

	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("tmdb: API key is not set")
)

// StatusError is returned for any non-200 response
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e == nil {
		return "tmdb: HTTP status error"
	}
	return fmt.Sprintf("tmdb: HTTP %d for %s", e.StatusCode, e.URL)
}
