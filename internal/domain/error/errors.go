package error

import (
	"errors"
	"fmt"
)

// Kind classifies an error by how callers should react to it.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindUpstream     Kind = "upstream"
	KindInternal     Kind = "internal"
)

// Code identifies a specific error condition.
type Code string

// Domain error codes
const (
	CodeUserPrincipalNameRequired Code = "USER_PRINCIPAL_NAME_REQUIRED"
	CodeAddressRequired           Code = "ADDRESS_REQUIRED"
	CodeOAuthRequired             Code = "OAUTH_REQUIRED"
	CodeTokenExchangeFailed       Code = "TOKEN_EXCHANGE_FAILED"
	CodeMalformedTokenResponse    Code = "MALFORMED_TOKEN_RESPONSE"
	CodeRevocationFailed          Code = "REVOCATION_FAILED"
)

// Error is a structured domain error carrying a kind, a stable code,
// and a human-readable message.
type Error struct {
	kind    Kind
	code    Code
	message string
	err     error
}

// New creates a new domain error.
func New(kind Kind, code Code, message string) *Error {
	return &Error{kind: kind, code: code, message: message}
}

// Newf creates a new domain error with a formatted message.
func Newf(kind Kind, code Code, format string, args ...any) *Error {
	return &Error{kind: kind, code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap wraps an underlying error with domain classification.
func Wrap(err error, kind Kind, code Code, message string) *Error {
	return &Error{kind: kind, code: code, message: message, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.message + ": " + e.err.Error()
	}
	return e.message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Code returns the error code.
func (e *Error) Code() Code {
	return e.code
}

// Validation errors
var (
	ErrUserPrincipalNameRequired = New(KindValidation, CodeUserPrincipalNameRequired, "userPrincipalName is required")

	ErrAddressRequired = New(KindValidation, CodeAddressRequired, "no address provided and no ADDRESS configured")

	ErrOAuthRequired = New(KindValidation, CodeOAuthRequired, "OAuth2 authentication is required")
)

// MalformedTokenResponse reports a 2xx token response without a usable
// access_token field.
func MalformedTokenResponse(detail string) *Error {
	return Newf(KindUpstream, CodeMalformedTokenResponse, "malformed token response: %s", detail)
}

// UpstreamFailure reports a non-2xx response from a remote endpoint.
// The status line and response body are embedded in the message so the
// failure stays classifiable after it has been flattened to text.
func UpstreamFailure(code Code, op string, status string, body []byte) *Error {
	return Newf(KindUpstream, code, "%s failed with status %s: %s", op, status, string(body))
}

// KindOf extracts the kind from a domain error, or KindInternal for
// anything else.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.kind
	}
	return KindInternal
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
