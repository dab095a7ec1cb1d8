package tmdb

import (
	"errors"
	"fmt"
)

// Reason identifies why a TMDB call failed.
type Reason int

const (
	ReasonUnexpected      Reason = iota
	ReasonTimeout                // call exceeded the client timeout
	ReasonHTTP                   // non-2xx status, see RemoteServiceError.Status
	ReasonNetwork                // connection-level failure
	ReasonInvalidResponse        // body was not valid JSON for the expected shape
)

func (r Reason) String() string {
	switch r {
	case ReasonTimeout:
		return "timeout"
	case ReasonHTTP:
		return "http"
	case ReasonNetwork:
		return "network"
	case ReasonInvalidResponse:
		return "invalid_response"
	default:
		return "unexpected"
	}
}

// RemoteServiceError is returned by every failed TMDB call.
type RemoteServiceError struct {
	Reason Reason
	Status int    // HTTP status, set when Reason is ReasonHTTP
	Action string // what the caller was doing
	Err    error
}

func (e *RemoteServiceError) Error() string {
	switch e.Reason {
	case ReasonTimeout:
		return fmt.Sprintf("timeout communicating with TMDB while %s", e.Action)
	case ReasonHTTP:
		return fmt.Sprintf("TMDB returned HTTP error %d while %s", e.Status, e.Action)
	case ReasonNetwork:
		return fmt.Sprintf("network error connecting to TMDB while %s", e.Action)
	case ReasonInvalidResponse:
		return fmt.Sprintf("invalid JSON response from TMDB while %s", e.Action)
	default:
		return fmt.Sprintf("unexpected error while %s", e.Action)
	}
}

func (e *RemoteServiceError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a RemoteServiceError carrying the given HTTP status.
func IsStatus(err error, status int) bool {
	var rse *RemoteServiceError
	if !errors.As(err, &rse) {
		return false
	}
	return rse.Reason == ReasonHTTP && rse.Status == status
}
