package transport

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is returned by HTTPClient when the remote service answers with a
// non-2xx status.
type Error struct {
	Method     string
	Path       string
	Status     int
	StatusText string
	Body       any
	RequestID  string
}

func (e *Error) Error() string {
	if e == nil {
		return "ledger api request failed"
	}
	if e.Status > 0 {
		return fmt.Sprintf("ledger api request %s %s failed (status=%d %s)", e.Method, e.Path, e.Status, e.StatusText)
	}
	return fmt.Sprintf("ledger api request %s %s failed", e.Method, e.Path)
}

// StatusCode reports the HTTP status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var transportErr *Error
	if !errors.As(err, &transportErr) || transportErr.Status == 0 {
		return 0, false
	}
	return transportErr.Status, true
}

// IsNotFound reports whether err is a 404 from the remote service.
func IsNotFound(err error) bool {
	status, ok := StatusCode(err)
	return ok && status == http.StatusNotFound
}
