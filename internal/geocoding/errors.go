package geocoding

import (
	"errors"
	"fmt"
)

// Common errors shared by the raw HTTP providers.
var (
	// ErrEmptyAddress is returned when a provider is asked to geocode an empty string.
	ErrEmptyAddress = errors.New("geocoding provider got empty address")

	// ErrMalformedResponse is returned when the remote service replied, but the body
	// does not decode into the expected structure or lacks a usable result.
	ErrMalformedResponse = errors.New("geocoding API returned malformed response")
)

// StatusError reports that the remote geocoding service was reachable but refused
// the request, either at the HTTP level or via a non-OK status field in the body.
type StatusError struct {
	Status   string // Reported status, e.g. "ZERO_RESULTS" or "REQUEST_DENIED".
	Message  string // Optional human-readable detail from the response.
	HTTPCode int    // HTTP status code of the response.
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("geocoding API returned status %q: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("geocoding API returned status %q", e.Status)
}
