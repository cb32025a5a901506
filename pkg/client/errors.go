package client

import (
	"errors"
	"fmt"
)

// ErrNotImage means the endpoint answered 2xx with a non-image body.
var ErrNotImage = errors.New("response is not an image")

// HTTPError is a non-2xx answer from the badge endpoint. Message holds the
// trimmed response body, which the badge service uses for plain-text errors.
type HTTPError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("GET %s: HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("GET %s: HTTP %d: %s", e.URL, e.StatusCode, e.Message)
}

// IsStatus reports whether err wraps an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}
