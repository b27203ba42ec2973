package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kinds of remote failures. Every error returned by Client for a request that reached
// the network wraps exactly one of them, so callers can use errors.Is.
var (
	// ErrTransient means the request may succeed if retried later:
	// connectivity problems, timeouts, 5xx and 429 responses.
	ErrTransient = errors.New("transient remote failure")

	// ErrRejected means the server refused the request (4xx other than 429).
	// Retrying the same request will not help.
	ErrRejected = errors.New("request rejected by server")
)

// RemoteError is returned when a remote call fails.
// Extractable via errors.As(). Unwraps to both its Kind and the underlying error.
type RemoteError struct {
	Kind       error
	Err        error
	Op         string
	StatusCode int // 0 if no response was received
}

func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed (status %d): %v", e.Op, e.StatusCode, e.Err)
}

func (e *RemoteError) Unwrap() []error { return []error{e.Kind, e.Err} }

// IsTransient reports whether err is a remote failure worth retrying.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// IsUnauthorized reports whether the server refused the access token.
func IsUnauthorized(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.StatusCode == http.StatusUnauthorized
}

// kindForStatus classifies a non-2xx HTTP status.
func kindForStatus(status int) error {
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		return ErrTransient
	}
	return ErrRejected
}
