package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNormalize_MessagePriority(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		cause      error
		want       string
	}{
		{"envelope message", 400, `{"status":false,"message":"X"}`, nil, "X"},
		{"string payload", 400, `{"status":false,"payload":"Y"}`, nil, "Y"},
		{"empty message falls to payload", 422, `{"status":false,"message":"","payload":"Y"}`, nil, "Y"},
		{"message wins over payload", 400, `{"status":false,"message":"X","payload":"Y"}`, nil, "X"},
		{"object payload ignored", 500, `{"status":false,"payload":{"field":"title"}}`, nil, "Request failed: status code 500"},
		{"non-json body", 502, `<html>Bad Gateway</html>`, nil, "Request failed: status code 502"},
		{"transport error", 0, ``, errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
			"Request failed: dial tcp 127.0.0.1:1: connect: connection refused"},
		{"nothing known", 0, ``, nil, genericMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalize(tt.statusCode, []byte(tt.body), tt.cause)
			if err.Message != tt.want {
				t.Errorf("expected message %q, got %q", tt.want, err.Message)
			}
			if err.StatusCode != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, err.StatusCode)
			}
		})
	}
}

func TestEnvelopeError_Fallback(t *testing.T) {
	if got := EnvelopeError(200, []byte(`{"status":false}`)).Message; got != genericMessage {
		t.Errorf("expected generic message, got %q", got)
	}
	if got := EnvelopeError(200, []byte(`{"status":false,"message":"Slug already exists"}`)).Message; got != "Slug already exists" {
		t.Errorf("expected backend message, got %q", got)
	}
}

func TestError_Helpers(t *testing.T) {
	unauthorized := normalize(http.StatusUnauthorized, []byte(`{"message":"jwt expired"}`), nil)
	wrapped := fmt.Errorf("list leads: %w", unauthorized)

	if !IsUnauthorized(wrapped) {
		t.Error("expected wrapped 401 to be unauthorized")
	}
	if StatusCode(wrapped) != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", StatusCode(wrapped))
	}
	if IsNotFound(wrapped) {
		t.Error("401 is not a 404")
	}
	if StatusCode(errors.New("plain")) != 0 {
		t.Error("expected 0 for non-api errors")
	}

	canceled := normalize(0, nil, context.Canceled)
	if !errors.Is(canceled, context.Canceled) {
		t.Error("expected normalized error to unwrap to context.Canceled")
	}
}

func TestClassifyError(t *testing.T) {
	unauthorized := &Error{StatusCode: http.StatusUnauthorized, Message: "Unauthorized"}

	tests := []struct {
		err     error
		attempt int
		expect  ErrorAction
	}{
		{unauthorized, 0, ActionRefresh},
		{unauthorized, 1, ActionFatal},
		{&Error{StatusCode: http.StatusForbidden}, 0, ActionFatal},
		{&Error{StatusCode: http.StatusInternalServerError}, 0, ActionFatal},
		{&Error{Message: "Request failed: timeout"}, 0, ActionFatal},
		{errors.New("connection reset by peer"), 0, ActionFatal},
		{nil, 0, ActionFatal},
	}

	for _, tt := range tests {
		if got := ClassifyError(tt.err, tt.attempt); got != tt.expect {
			t.Errorf("ClassifyError(%v, %d) = %v, want %v", tt.err, tt.attempt, got, tt.expect)
		}
	}
}
