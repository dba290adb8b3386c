package spinque

import (
	"errors"
	"strings"
	"testing"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

func TestClassifyHTTPError(t *testing.T) {
	testcases := []struct {
		name          string
		statusCode    int
		wantType      types.ErrorType
		wantRetryable bool
	}{
		{"bad request", 400, types.ErrorTypeValidation, false},
		{"not found", 404, types.ErrorTypeValidation, false},
		{"request timeout", 408, types.ErrorTypeNetworkTimeout, true},
		{"rate limited", 429, types.ErrorTypeRateLimit, true},
		{"internal error", 500, types.ErrorTypeTransport, true},
		{"bad gateway", 502, types.ErrorTypeTransport, true},
		{"service unavailable", 503, types.ErrorTypeTransport, true},
		{"teapot", 418, types.ErrorTypeUnknown, false},
		{"unknown 5xx", 599, types.ErrorTypeUnknown, true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := ClassifyHTTPError(tc.statusCode, "body")
			if err.Type != tc.wantType {
				t.Errorf("Type = %s, want %s", err.Type, tc.wantType)
			}
			if err.Retryable != tc.wantRetryable {
				t.Errorf("Retryable = %v, want %v", err.Retryable, tc.wantRetryable)
			}
			if err.StatusCode != tc.statusCode {
				t.Errorf("StatusCode = %d, want %d", err.StatusCode, tc.statusCode)
			}
			if err.Timestamp.IsZero() {
				t.Error("Timestamp not set")
			}
		})
	}
}

func TestClassifyConnectionError(t *testing.T) {
	testcases := []struct {
		name          string
		err           error
		wantType      types.ErrorType
		wantRetryable bool
	}{
		{"timeout", errors.New("dial tcp: i/o timeout"), types.ErrorTypeNetworkTimeout, true},
		{"deadline", errors.New("context deadline exceeded"), types.ErrorTypeNetworkTimeout, true},
		{"refused", errors.New("dial tcp: connection refused"), types.ErrorTypeTransport, false},
		{"dns", errors.New("lookup rest.spinque.invalid: no such host"), types.ErrorTypeTransport, false},
		{"other", errors.New("broken pipe"), types.ErrorTypeUnknown, true},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			err := ClassifyConnectionError(tc.err)
			if err.Type != tc.wantType {
				t.Errorf("Type = %s, want %s", err.Type, tc.wantType)
			}
			if err.IsRetryable() != tc.wantRetryable {
				t.Errorf("Retryable = %v, want %v", err.IsRetryable(), tc.wantRetryable)
			}
		})
	}
}

func TestSearchErrorMessageIncludesStatus(t *testing.T) {
	err := ClassifyHTTPError(503, "")
	if msg := err.Error(); !strings.Contains(msg, "(HTTP 503)") {
		t.Errorf("Error() = %q, want it to contain the status code", msg)
	}

	plain := NewSearchError(types.ErrorTypeUnknown, "boom")
	if msg := plain.Error(); strings.Contains(msg, "HTTP") {
		t.Errorf("Error() = %q, should not mention HTTP without a status", msg)
	}
}
