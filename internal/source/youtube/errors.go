package youtube

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a lookup answers with an empty items list.
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse is returned when an item or envelope lacks a required block.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrInvalidEndpoint is returned for endpoint names that are not a single
	// resource name such as "videos" or "search".
	ErrInvalidEndpoint = errors.New("invalid endpoint")
)

// RequestFailure represents an upstream non-2xx answer or a transport error.
// StatusCode is zero when no response was received.
type RequestFailure struct {
	Endpoint   string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *RequestFailure) Error() string {
	if e == nil {
		return "request failure"
	}
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: %v", e.Endpoint, e.Err)
	}
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Endpoint, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s: status %d", e.Endpoint, e.StatusCode)
}

func (e *RequestFailure) Unwrap() error {
	return e.Err
}

// Message extracts error.message from a Google API error body, falling back to
// the raw body text.
func (e *RequestFailure) Message() string {
	if e.StatusCode == 0 && e.Err != nil {
		return e.Err.Error()
	}
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &body); err == nil && body.Error.Message != "" {
		return body.Error.Message
	}
	return string(e.Body)
}
