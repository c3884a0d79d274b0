package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

const (
	requestFailedPrefix = "Request failed: "
	genericMessage      = "Something went wrong, please try again"
)

// Error is the single failure shape returned by the client and the services.
// Message is always safe to show to an operator.
type Error struct {
	StatusCode int // 0 when no response was received
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// EnvelopeMessage extracts a message from a backend body: the message field first,
// then the payload when it is a plain string. Returns "" when neither is usable.
func EnvelopeMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var env struct {
		Message json.RawMessage `json:"message"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}

	if msg := jsonString(env.Message); msg != "" {
		return msg
	}
	return jsonString(env.Payload)
}

// EnvelopeError builds the error for a response whose envelope reports status=false.
func EnvelopeError(statusCode int, body []byte) *Error {
	msg := EnvelopeMessage(body)
	if msg == "" {
		msg = genericMessage
	}
	return &Error{StatusCode: statusCode, Message: msg}
}

// normalize picks the message in priority order: envelope message, string payload,
// transport error, bare HTTP status, generic fallback.
func normalize(statusCode int, body []byte, cause error) *Error {
	e := &Error{StatusCode: statusCode, Err: cause}

	switch msg := EnvelopeMessage(body); {
	case msg != "":
		e.Message = msg
	case cause != nil:
		e.Message = requestFailedPrefix + cause.Error()
	case statusCode != 0:
		e.Message = requestFailedPrefix + fmt.Sprintf("status code %d", statusCode)
	default:
		e.Message = genericMessage
	}

	return e
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the backend.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

func jsonString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
