// Package apperr defines the closed set of client-facing failures. Every code
// belongs to exactly one kind, and the kind decides the HTTP status.
package apperr

import (
	"errors"
	"net/http"
)

// Kind groups codes that share a status and response side effects.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindNotFound
)

// Status maps the kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Code identifies one failure variant on the wire.
type Code string

const (
	CodeInvalidBody        Code = "INVALID_BODY"
	CodeMissingField       Code = "MISSING_FIELD"
	CodeInvalidFormat      Code = "INVALID_FORMAT"
	CodeWeakPassword       Code = "WEAK_PASSWORD"
	CodePasswordMismatch   Code = "PASSWORD_MISMATCH"
	CodeTooShort           Code = "TOO_SHORT"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeConflict           Code = "CONFLICT"
	CodeNoSession          Code = "NO_SESSION"
	CodeUnsupportedScheme  Code = "UNSUPPORTED_SCHEME"
	CodeTokenExpired       Code = "TOKEN_EXPIRED"
	CodeTokenMalformed     Code = "TOKEN_MALFORMED"
	CodeStaleSession       Code = "STALE_SESSION"
	CodeNotFound           Code = "NOT_FOUND"
)

type variant struct {
	kind    Kind
	message string
}

var variants = map[Code]variant{
	CodeInvalidBody:        {KindValidation, "요청 형식이 올바르지 않습니다."},
	CodeMissingField:       {KindValidation, "필수 입력값이 누락되었습니다."},
	CodeInvalidFormat:      {KindValidation, "이메일 형식이 올바르지 않습니다."},
	CodeWeakPassword:       {KindValidation, "비밀번호는 6자리 이상이어야 합니다."},
	CodePasswordMismatch:   {KindValidation, "입력한 두 비밀번호가 일치하지 않습니다."},
	CodeTooShort:           {KindValidation, "입력값이 너무 짧습니다."},
	CodeInvalidCredentials: {KindValidation, "비밀번호가 일치하지 않습니다."},
	CodeConflict:           {KindConflict, "이미 가입된 사용자입니다."},
	CodeNoSession:          {KindAuth, "인증 정보가 없습니다."},
	CodeUnsupportedScheme:  {KindAuth, "지원하지 않는 인증 방식입니다."},
	CodeTokenExpired:       {KindAuth, "인증 정보가 만료되었습니다."},
	CodeTokenMalformed:     {KindAuth, "인증 정보가 유효하지 않습니다."},
	CodeStaleSession:       {KindAuth, "인증 정보와 일치하는 사용자가 없습니다."},
	CodeNotFound:           {KindNotFound, "요청한 정보를 찾을 수 없습니다."},
}

// Error is a classified failure safe to show to clients.
type Error struct {
	Kind    Kind
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return string(e.Code) + " (" + e.Field + "): " + e.Message
	}
	return string(e.Code) + ": " + e.Message
}

// Status returns the HTTP status for the error.
func (e *Error) Status() int {
	return e.Kind.Status()
}

// Is matches another *Error with the same code, so callers can compare
// against templates like apperr.New(apperr.CodeNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New builds an error for code with its default message.
func New(code Code) *Error {
	v, ok := variants[code]
	if !ok {
		panic("apperr: unknown code " + string(code))
	}
	return &Error{Kind: v.kind, Code: code, Message: v.message}
}

// WithMessage returns a copy carrying a specific message.
func (e *Error) WithMessage(message string) *Error {
	cp := *e
	cp.Message = message
	return &cp
}

// WithField returns a copy naming the offending field.
func (e *Error) WithField(field string) *Error {
	cp := *e
	cp.Field = field
	return &cp
}

// MissingField reports the first absent required field.
func MissingField(field, message string) *Error {
	return New(CodeMissingField).WithField(field).WithMessage(message)
}

// TooShort reports a field below its minimum length.
func TooShort(field, message string) *Error {
	return New(CodeTooShort).WithField(field).WithMessage(message)
}

// NotFound reports a missing (or not owned) entity.
func NotFound(message string) *Error {
	return New(CodeNotFound).WithMessage(message)
}

// As extracts an *Error from err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
