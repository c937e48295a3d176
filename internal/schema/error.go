package schema

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode string

const (
	TimeoutError    ErrorCode = "TIMEOUT_ERROR"
	ConnectionError ErrorCode = "CONNECTION_ERROR"
	StatusError     ErrorCode = "STATUS_ERROR"
)

const (
	// NoOrdersToCancelCode is the fault code MixVel answers with when a
	// cancel finds nothing left to cancel.
	NoOrdersToCancelCode = "MIX-106001"
	UndefinedFaultCode   = "UNDEFINED"
)

var ErrNoOrdersToCancel = errors.New("no orders to cancel")

// ValidationError reports malformed or incomplete input values.
type ValidationError struct {
	Entity string
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	message := fmt.Sprintf("invalid %s", e.Entity)
	if len(e.Fields) > 0 {
		message += ": " + strings.Join(e.Fields, ", ")
	}
	if e.Err != nil {
		message += ": " + e.Err.Error()
	}
	return message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ParseError reports a required response element that is missing or malformed.
type ParseError struct {
	Element string
	Path    string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %s: %v", e.Element, e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// APIFault is a business level error reported by MixVel in an Error element.
type APIFault struct {
	Code        string
	Type        string
	Description string
}

func (e *APIFault) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Type, e.Description)
}

// Unwrap lets errors.Is(err, ErrNoOrdersToCancel) single out the
// nothing-to-cancel fault.
func (e *APIFault) Unwrap() error {
	if e.NoOrdersToCancel() {
		return ErrNoOrdersToCancel
	}
	return nil
}

func (e *APIFault) NoOrdersToCancel() bool {
	return e.Code == NoOrdersToCancelCode
}

// TransportError is a network or HTTP level failure.
type TransportError struct {
	Code       ErrorCode
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func NewStatusError(statusCode int) *TransportError {
	return &TransportError{
		Code:       StatusError,
		StatusCode: statusCode,
		Message:    fmt.Sprintf("mixvel returned status code %d", statusCode),
	}
}

func NewTimeoutError(err error) *TransportError {
	return &TransportError{
		Code:    TimeoutError,
		Message: err.Error(),
		Err:     err,
	}
}

func NewConnectionError(err error) *TransportError {
	return &TransportError{
		Code:    ConnectionError,
		Message: err.Error(),
		Err:     err,
	}
}
