// Package httpx holds the HTTP plumbing shared by the dictionary and Anki
// clients.
package httpx

import (
	"fmt"
	"net/http"
	"time"
)

// DefaultUserAgent impersonates a desktop Chrome. AnkiWeb rejects requests
// without a browser-looking agent.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Doer sends a request. *http.Client satisfies it and is safe for concurrent
// use.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient creates an HTTP client with the given timeout.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// NetworkError reports a transport failure: the request never produced a
// response.
type NetworkError struct {
	Op  string // "fetch" or "submit"
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
