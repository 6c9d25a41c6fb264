package nlm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// HTTPError reports a non-2xx response from the service.
type HTTPError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("HTTP error: %s for %s: %s", e.Status, e.URL, snippet([]byte(e.Body)))
	}
	return fmt.Sprintf("HTTP error: %s for %s", e.Status, e.URL)
}

// ConnectionError reports that the host could not be reached or the
// connection failed before a response arrived.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error for %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// TimeoutError reports that the request exceeded the client timeout.
type TimeoutError struct {
	URL string
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout for %s: %v", e.URL, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// DecodeError reports a response body that could not be decoded as JSON.
type DecodeError struct {
	URL     string
	Err     error
	Snippet string
}

func (e *DecodeError) Error() string {
	if e.Snippet != "" {
		return fmt.Sprintf("decoding JSON response from %s: %v (body: %s)", e.URL, e.Err, e.Snippet)
	}
	return fmt.Sprintf("decoding JSON response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// classifyTransportError maps a transport failure to TimeoutError or
// ConnectionError. http.Client timeouts surface as *url.Error values whose
// Timeout method reports true.
func classifyTransportError(fullURL string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: fullURL, Err: err}
	}

	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return &TimeoutError{URL: fullURL, Err: err}
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &TimeoutError{URL: fullURL, Err: err}
	}

	return &ConnectionError{URL: fullURL, Err: err}
}
