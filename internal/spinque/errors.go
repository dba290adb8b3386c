package spinque

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/r-huijts/oorlogsbronnen-mcp/internal/types"
)

// SearchError is a classified error from the Spinque API
type SearchError struct {
	Type       types.ErrorType `json:"type"`
	Message    string          `json:"message"`
	StatusCode int             `json:"status_code,omitempty"`
	Retryable  bool            `json:"retryable"`
	RetryAfter time.Duration   `json:"retry_after,omitempty"`
	Query      string          `json:"query,omitempty"`
	Suggestion string          `json:"suggestion,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
}

func (e *SearchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("[%s] %s (HTTP %d)", e.Type, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *SearchError) IsRetryable() bool {
	return e.Retryable
}

func NewSearchError(errType types.ErrorType, message string) *SearchError {
	return &SearchError{
		Type:      errType,
		Message:   message,
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// NewMalformedResponseError reports a response page that is structurally
// unusable (missing items or stats). It is treated like a transport failure
// for isolation purposes.
func NewMalformedResponseError(detail string) *SearchError {
	return &SearchError{
		Type:      types.ErrorTypeMalformedResponse,
		Message:   fmt.Sprintf("invalid response format from API: %s", detail),
		Retryable: false,
		Timestamp: time.Now(),
	}
}

// ClassifyHTTPError maps a non-success HTTP status to a SearchError
func ClassifyHTTPError(statusCode int, body string) *SearchError {
	switch statusCode {
	case http.StatusBadRequest:
		return &SearchError{
			Type:       types.ErrorTypeValidation,
			Message:    "the API rejected the search request.",
			StatusCode: statusCode,
			Retryable:  false,
			Suggestion: "Check the query syntax and the requested content type.",
			Timestamp:  time.Now(),
		}
	case http.StatusNotFound:
		return &SearchError{
			Type:       types.ErrorTypeValidation,
			Message:    "the requested API endpoint was not found.",
			StatusCode: statusCode,
			Retryable:  false,
			Suggestion: "Check SPINQUE_BASE_URL and SPINQUE_CONFIG.",
			Timestamp:  time.Now(),
		}
	case http.StatusRequestTimeout:
		return &SearchError{
			Type:       types.ErrorTypeNetworkTimeout,
			Message:    "the request timed out.",
			StatusCode: statusCode,
			Retryable:  true,
			RetryAfter: 5 * time.Second,
			Suggestion: "Check the network connection or retry later.",
			Timestamp:  time.Now(),
		}
	case http.StatusTooManyRequests:
		return &SearchError{
			Type:       types.ErrorTypeRateLimit,
			Message:    "rate limit reached, try again later.",
			StatusCode: statusCode,
			Retryable:  true,
			RetryAfter: 10 * time.Second,
			Suggestion: "Lower SPINQUE_RATE_LIMIT or slow down requests.",
			Timestamp:  time.Now(),
		}
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return &SearchError{
			Type:       types.ErrorTypeTransport,
			Message:    "the archive backend returned a server error.",
			StatusCode: statusCode,
			Retryable:  true,
			RetryAfter: 10 * time.Second,
			Suggestion: "The Spinque service may be temporarily unavailable.",
			Timestamp:  time.Now(),
		}
	default:
		return &SearchError{
			Type:       types.ErrorTypeUnknown,
			Message:    fmt.Sprintf("unexpected HTTP error: %s", body),
			StatusCode: statusCode,
			Retryable:  statusCode >= 500,
			RetryAfter: 5 * time.Second,
			Timestamp:  time.Now(),
		}
	}
}

// ClassifyConnectionError maps a network-level failure to a SearchError
func ClassifyConnectionError(err error) *SearchError {
	errMsg := err.Error()

	if strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded") {
		return &SearchError{
			Type:       types.ErrorTypeNetworkTimeout,
			Message:    "connection to the archive backend timed out.",
			Retryable:  true,
			RetryAfter: 5 * time.Second,
			Suggestion: "Check the network connection and SPINQUE_REQUEST_TIMEOUT.",
			Timestamp:  time.Now(),
		}
	}

	if strings.Contains(errMsg, "connection refused") {
		return &SearchError{
			Type:       types.ErrorTypeTransport,
			Message:    "connection to the archive backend was refused.",
			Retryable:  false,
			Suggestion: "Check SPINQUE_BASE_URL.",
			Timestamp:  time.Now(),
		}
	}

	if strings.Contains(errMsg, "no such host") {
		return &SearchError{
			Type:       types.ErrorTypeTransport,
			Message:    "the archive backend host could not be resolved.",
			Retryable:  false,
			Suggestion: "Check the host name in SPINQUE_BASE_URL.",
			Timestamp:  time.Now(),
		}
	}

	return &SearchError{
		Type:       types.ErrorTypeUnknown,
		Message:    fmt.Sprintf("connection error: %v", err),
		Retryable:  true,
		RetryAfter: 10 * time.Second,
		Suggestion: "Check the network connection.",
		Timestamp:  time.Now(),
	}
}
