// errors.go defines the error taxonomy returned by the Stash API client.
// Every non-2xx response and every transport fault is expressed as an
// *Error with an explicit Kind; consumers classify via AsError, IsKind
// and IsCode, never by matching message strings.

package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an API failure into the categories the rest of the
// adapter cares about. It is derived once from the HTTP status code (or
// the absence of one) when the error is constructed.
type Kind int

const (
	// KindTransport is a network or protocol fault before any HTTP
	// status was known (connection refused, malformed response body).
	KindTransport Kind = iota
	// KindBadRequest is a 400, usually carrying a domain error code.
	KindBadRequest
	// KindUnauthorized is a 401 (bad or expired token).
	KindUnauthorized
	// KindForbidden is a 403 (entity exists but is not ours).
	KindForbidden
	// KindNotFound is a 404.
	KindNotFound
	// KindRateLimited is a 429.
	KindRateLimited
	// KindUnavailable is a 503.
	KindUnavailable
	// KindServer is any other non-2xx status.
	KindServer
)

// Domain error codes returned by the Stash API in the `error` field of
// a 400 response body.
const (
	CodeUnreadLimit    = "unread-limit"
	CodeLimitReached   = "limit-reached"
	CodeAlreadyRead    = "already-read"
	CodeInvalidContent = "invalid-content"
)

// Error is the single error type produced by the client for remote
// failures. StatusCode is zero only for KindTransport.
type Error struct {
	Kind       Kind
	StatusCode int
	Code       string // machine-readable domain code, if the body had one
	Message    string // human-readable message from the body, if any
	Body       string // raw response body text
	Err        error  // underlying transport error, KindTransport only
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindTransport:
		return fmt.Sprintf("stash api: %v", e.Err)
	case e.Code != "":
		return fmt.Sprintf("stash api: %d %s (%s)", e.StatusCode, e.Message, e.Code)
	case e.Message != "":
		return fmt.Sprintf("stash api: %d %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("stash api: unexpected status %d", e.StatusCode)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// kindForStatus maps an HTTP status code to its Kind.
func kindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest:
		return KindBadRequest
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusTooManyRequests:
		return KindRateLimited
	case http.StatusServiceUnavailable:
		return KindUnavailable
	default:
		return KindServer
	}
}

// AsError extracts an *Error from err, returning nil when err is not one.
func AsError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	if apiErr := AsError(err); apiErr != nil {
		return apiErr.Kind == kind
	}
	return false
}

// IsCode reports whether err is an *Error carrying the given domain code.
func IsCode(err error, code string) bool {
	if apiErr := AsError(err); apiErr != nil {
		return apiErr.Code == code
	}
	return false
}
