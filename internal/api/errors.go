package api

import (
	"context"
	"errors"
	"fmt"
)

// Kind classifies failures surfaced by the client.
type Kind int

const (
	KindUnknown Kind = iota
	KindAuth
	KindAPI
	KindNetwork
	KindConfig
	KindValidation
	KindIO
	KindDecode
	KindHTTP
	KindTokenExpired
	KindPermissionDenied
	KindNotFound
	KindRateLimit
)

var kindNames = map[Kind]string{
	KindUnknown:          "unknown",
	KindAuth:             "auth",
	KindAPI:              "api",
	KindNetwork:          "network",
	KindConfig:           "config",
	KindValidation:       "validation",
	KindIO:               "io",
	KindDecode:           "decode",
	KindHTTP:             "http",
	KindTokenExpired:     "token_expired",
	KindPermissionDenied: "permission_denied",
	KindNotFound:         "not_found",
	KindRateLimit:        "rate_limit",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Error is the error type returned by every Client method.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAuth:
		return "Authentication failed: " + e.Message
	case KindAPI:
		return "API request failed: " + e.Message
	case KindNetwork:
		return fmt.Sprintf("Network error: %v", e.cause())
	case KindConfig:
		return fmt.Sprintf("Configuration error: %v", e.cause())
	case KindValidation:
		return "Invalid input: " + e.Message
	case KindIO:
		return fmt.Sprintf("IO error: %v", e.cause())
	case KindDecode:
		return fmt.Sprintf("JSON parsing error: %v", e.cause())
	case KindHTTP:
		return fmt.Sprintf("HTTP error %d: %s", e.Status, e.Message)
	case KindTokenExpired:
		return "Token expired or invalid"
	case KindPermissionDenied:
		return "Permission denied: " + e.Message
	case KindNotFound:
		return "Resource not found: " + e.Message
	case KindRateLimit:
		return "Rate limit exceeded. Please try again later"
	default:
		return "Unknown error: " + e.Message
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) cause() interface{} {
	if e.Err != nil {
		return e.Err
	}
	return e.Message
}

// FromHTTPResponse maps a non-success status and server message to an Error.
func FromHTTPResponse(status int, message string) *Error {
	switch {
	case status == 401:
		return &Error{Kind: KindTokenExpired, Status: status, Message: message}
	case status == 403:
		return &Error{Kind: KindPermissionDenied, Status: status, Message: message}
	case status == 404:
		return &Error{Kind: KindNotFound, Status: status, Message: message}
	case status == 429:
		return &Error{Kind: KindRateLimit, Status: status, Message: message}
	case status >= 400 && status <= 499:
		return &Error{Kind: KindAPI, Status: status, Message: message}
	case status >= 500 && status <= 599:
		return &Error{Kind: KindHTTP, Status: status, Message: message}
	default:
		return &Error{Kind: KindUnknown, Status: status, Message: fmt.Sprintf("HTTP %d: %s", status, message)}
	}
}

// Validation returns a local input error.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// KindOf returns the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindNetwork
	}
	return KindUnknown
}

// UserMessage renders err as the text shown in the status line.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if !errors.As(err, &e) {
		if errors.Is(err, context.DeadlineExceeded) {
			return "Network error. Please check your connection."
		}
		return "Error: " + err.Error()
	}
	switch e.Kind {
	case KindAuth:
		return "Authentication failed: " + e.Message
	case KindAPI:
		return "API error: " + e.Message
	case KindNetwork:
		return "Network error. Please check your connection."
	case KindConfig:
		return "Configuration error. Please check your config file."
	case KindValidation:
		return "Invalid input: " + e.Message
	case KindIO:
		return fmt.Sprintf("File error: %v", e.cause())
	case KindDecode:
		return "Data format error. Please try again."
	case KindHTTP:
		return fmt.Sprintf("Server error (%d): %s", e.Status, e.Message)
	case KindTokenExpired:
		return "Your session has expired. Please log in again."
	case KindPermissionDenied:
		return "Access denied: " + e.Message
	case KindNotFound:
		return "Not found: " + e.Message
	case KindRateLimit:
		return "Too many requests. Please wait a moment and try again."
	case KindUnknown:
		return "Error: " + e.Message
	}
	return "Error: " + e.Message
}

// IsRecoverable reports whether retrying the same request may succeed.
func IsRecoverable(err error) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	switch e.Kind {
	case KindNetwork, KindRateLimit:
		return true
	case KindHTTP:
		return e.Status >= 500 && e.Status <= 599
	}
	return false
}

// RequiresReauth reports whether the user must log in again.
func RequiresReauth(err error) bool {
	k := KindOf(err)
	return k == KindTokenExpired || k == KindAuth
}
