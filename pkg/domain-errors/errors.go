// Package domainerrors carries the error taxonomy returned by services.
//
// Stores return sentinel errors (see pkg/platform/sentinel); services translate
// them into a *Error with a Code so transports can map it without inspecting
// storage internals.
package domainerrors

import (
	"errors"
	"fmt"
)

// Code classifies a domain error.
type Code string

const (
	CodeNotFound             Code = "not_found"
	CodeInvalidState         Code = "invalid_state"
	CodeIncompleteAssessment Code = "incomplete_assessment"
	CodeConsentRequired      Code = "consent_required"
	CodeDecryptionFailed     Code = "decryption_failed"
	CodeUnauthorized         Code = "unauthorized"
	CodeForbidden            Code = "forbidden"
	CodeConfiguration        Code = "configuration_error"
	CodeStorage              Code = "storage_failure"
	CodeBadRequest           Code = "bad_request"
	CodeInvalidInput         Code = "invalid_input"
	CodeConflict             Code = "conflict"
	CodeInternal             Code = "internal_error"
)

// Error is a coded domain error. Message is safe to show to callers except
// for CodeInternal, CodeStorage and CodeConfiguration.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a coded error.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, msg string) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

// As returns the first *Error in the chain.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// HasCode reports whether the outermost *Error in the chain carries code.
func HasCode(err error, code Code) bool {
	de, ok := As(err)
	return ok && de.Code == code
}

// CodeOf returns the code of err, or CodeInternal for uncoded errors.
func CodeOf(err error) Code {
	if de, ok := As(err); ok {
		return de.Code
	}
	return CodeInternal
}

// IsIntegrityFailure reports errors that must abort and be logged loudly
// instead of being degraded.
func IsIntegrityFailure(err error) bool {
	return HasCode(err, CodeDecryptionFailed) || HasCode(err, CodeConfiguration)
}
