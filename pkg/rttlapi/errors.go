package rttlapi

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey is returned by NewClient when no API key is configured.
// This is a configuration error: it is raised before any network call and is
// never retried.
var ErrMissingAPIKey = errors.New("RTTL API key is not configured")

// APIError is the single error type surfaced for transport failures, non-2xx
// responses and undecodable response bodies. Body carries the parsed error
// response when the server returned structured JSON.
type APIError struct {
	Message    string
	StatusCode int
	Body       map[string]interface{}
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("RTTL API error (HTTP %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("RTTL API error: %s", e.Message)
}
