package shipstation

import (
	"errors"
	"fmt"
)

// ErrRequestFailed matches every RequestError via errors.Is.
var ErrRequestFailed = errors.New("shipstation: request failed")

// RequestError is returned when a request could not be completed or the API
// answered with a non-2xx status. It is the only error kind the client produces
// for remote failures; callers inspect StatusCode and Body themselves.
type RequestError struct {
	Method     string
	Path       string
	StatusCode int    // 0 when the request never got a response
	Status     string // e.g. "404 Not Found"
	Body       []byte
	Cause      error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("shipstation: %s %s failed: %v", e.Method, e.Path, e.Cause)
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("shipstation: %s %s failed: %s", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("shipstation: %s %s failed: %s: %s", e.Method, e.Path, e.Status, e.Body)
}

// Unwrap returns the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrRequestFailed or a RequestError with the same status code.
func (e *RequestError) Is(target error) bool {
	if target == ErrRequestFailed {
		return true
	}
	t, ok := target.(*RequestError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// StatusCode returns the HTTP status carried by err, or 0 if err is not a RequestError
// or the request never received a response.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
