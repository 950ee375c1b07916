package api

import (
	"fmt"
	"net/http"
)

// HTTPError is any non-2xx response. Detail carries the backend's own
// message ({"detail": ...}) when it sent one.
type HTTPError struct {
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("backend returned status %d", e.Status)
}

// IsAuthExpired reports whether the response was a 401, which forces the
// cached session to be cleared.
func (e *HTTPError) IsAuthExpired() bool {
	return e.Status == http.StatusUnauthorized
}

// NetworkError means no usable response was received at all. CORS marks
// failures that look like a blocked cross-origin request rather than an
// unreachable server.
type NetworkError struct {
	CORS  bool
	Cause error
}

func (e *NetworkError) Error() string {
	if e.CORS {
		return "the backend rejected the request origin (CORS)"
	}
	return "cannot reach the backend server"
}

func (e *NetworkError) Unwrap() error { return e.Cause }
