package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// APIError is returned for non-2xx responses and transport failures.
// Status is 0 when no response was received.
type APIError struct {
	Status  int
	Message string
	Body    string
	Err     error
}

func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = strings.TrimSpace(e.Body)
	}
	if e.Status == 0 {
		return fmt.Sprintf("api error: %s", msg)
	}
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, msg)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// IsUnauthorized reports whether the server rejected the credentials
func (e *APIError) IsUnauthorized() bool {
	return e.Status == 401 || e.Status == 403
}

// ParseAPIError builds an APIError from a non-2xx response body.
// The six-cities server reports failures as {"error": "..."}.
func ParseAPIError(status int, body []byte) *APIError {
	out := &APIError{Status: status, Body: string(body)}

	var m map[string]any
	if json.Unmarshal(body, &m) == nil {
		if v, ok := m["error"].(string); ok {
			out.Message = v
		} else if v, ok := m["message"].(string); ok {
			out.Message = v
		}
	}
	if out.Message == "" {
		out.Message = strings.TrimSpace(string(body))
	}
	return out
}

func transportError(err error) *APIError {
	return &APIError{Message: err.Error(), Err: err}
}
