package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNetworkError_MatchesSentinel(t *testing.T) {
	err := NewNetworkError("chat exchange", "http://localhost:8000/api/chat", errors.New("connection refused"))

	if !errors.Is(err, ErrExchangeFailed) {
		t.Error("NetworkError should match ErrExchangeFailed")
	}
	if !IsExchangeFailure(err) {
		t.Error("IsExchangeFailure should be true for NetworkError")
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewNetworkError("chat exchange", "", cause)

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
}

func TestAPIError_MatchesSentinel(t *testing.T) {
	err := NewAPIError(500, "http://localhost:8000/api/chat", "chat exchange failed")

	if !errors.Is(err, ErrExchangeFailed) {
		t.Error("APIError should match ErrExchangeFailed")
	}
}

func TestParseError_MatchesSentinel(t *testing.T) {
	err := NewParseError("response missing assistant reply", "assistant")

	if !errors.Is(err, ErrExchangeFailed) {
		t.Error("ParseError should match ErrExchangeFailed")
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	inner := NewAPIError(503, "http://localhost:8000/api/chat", "unavailable")
	wrapped := fmt.Errorf("send: %w", inner)

	if !IsExchangeFailure(wrapped) {
		t.Error("wrapped APIError should still match ErrExchangeFailed")
	}
	if GetHTTPStatus(wrapped) != 503 {
		t.Errorf("GetHTTPStatus = %d, want 503", GetHTTPStatus(wrapped))
	}
}

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"api error", NewAPIError(404, "ep", "not found"), 404},
		{"network error", NewNetworkError("op", "ep", errors.New("x")), 0},
		{"plain error", errors.New("x"), 0},
		{"nil", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetHTTPStatus(tt.err); got != tt.want {
				t.Errorf("GetHTTPStatus = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGetEndpoint(t *testing.T) {
	if got := GetEndpoint(NewAPIError(500, "http://a/chat", "boom")); got != "http://a/chat" {
		t.Errorf("GetEndpoint = %s, want http://a/chat", got)
	}
	if got := GetEndpoint(NewNetworkError("op", "http://b/chat", errors.New("x"))); got != "http://b/chat" {
		t.Errorf("GetEndpoint = %s, want http://b/chat", got)
	}
	if got := GetEndpoint(errors.New("x")); got != "" {
		t.Errorf("GetEndpoint = %s, want empty", got)
	}
}

func TestGetResponseBody(t *testing.T) {
	err := NewAPIErrorWithBody(500, "ep", "boom", `{"detail":"oops"}`)
	if got := GetResponseBody(err); got != `{"detail":"oops"}` {
		t.Errorf("GetResponseBody = %s", got)
	}

	if got := GetResponseBody(NewParseError("bad", "")); got != "" {
		t.Errorf("GetResponseBody = %s, want empty", got)
	}
}

func TestErrorStrings(t *testing.T) {
	apiErr := NewAPIError(429, "http://a/chat", "rate limited")
	if apiErr.Error() != "API error [429] at http://a/chat: rate limited" {
		t.Errorf("unexpected message: %s", apiErr.Error())
	}

	parseErr := NewParseError("no valid JSON in response", "")
	if parseErr.Error() != "parse error: no valid JSON in response" {
		t.Errorf("unexpected message: %s", parseErr.Error())
	}
}
