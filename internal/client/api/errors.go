package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// ErrNetwork is the fixed network-class failure: the request reached no
// server (timeout, connection refused, DNS). The underlying cause is
// wrapped; match with errors.Is.
var ErrNetwork = errors.New("network error, check your connection")

// Error is a server-class failure: the remote answered with a non-2xx
// status. Message is whatever the server put in its error payload,
// re-surfaced verbatim.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.StatusCode)
}

// IsUnauthorized reports whether the server rejected the credentials.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// AsError unwraps err into a server-class *Error when it is one.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// parseError builds a server-class error from a non-2xx response body.
// The API wraps failures as {"success": false, "error": "..."}; a few
// paths use "message" instead, and anything else falls back to the raw
// body or the status text.
func parseError(statusCode int, body []byte) *Error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &Error{StatusCode: statusCode, Message: payload.Error}
		}
		if payload.Message != "" {
			return &Error{StatusCode: statusCode, Message: payload.Message}
		}
	}
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return &Error{StatusCode: statusCode, Message: msg}
	}
	return &Error{StatusCode: statusCode}
}
