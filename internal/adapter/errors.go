package adapter

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinels wrapped by [*ResponseError], one per mapped status code.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// Identity provider errors.
var (
	ErrCodeExchange   = errors.New("authorization code exchange failed")
	ErrProfileFetch   = errors.New("profile fetch failed")
	ErrInvalidProfile = errors.New("invalid profile")
)

// ResponseError is a non-2xx answer of the API server.
type ResponseError struct {
	StatusCode int
	// Kind is the locale independent error kind sent by the server.
	Kind string
	// Message is the localized error text or the raw body.
	Message string

	err error
}

// NewResponseError builds the error for a non-2xx statusCode. The matching
// sentinel (for example [ErrUnauthorized] for 401) is wrapped.
func NewResponseError(statusCode int, kind, message string) *ResponseError {
	respErr := &ResponseError{StatusCode: statusCode, Kind: kind, Message: message}

	switch statusCode {
	case http.StatusBadRequest:
		respErr.err = ErrBadRequest
	case http.StatusUnauthorized:
		respErr.err = ErrUnauthorized
	case http.StatusForbidden:
		respErr.err = ErrForbidden
	case http.StatusNotFound:
		respErr.err = ErrNotFound
	case http.StatusConflict:
		respErr.err = ErrConflict
	case http.StatusBadGateway:
		respErr.err = ErrBadGateway
	case http.StatusInternalServerError:
		respErr.err = ErrInternalServerError
	default:
		respErr.err = ErrUnexpectedStatus
		if respErr.Message == "" {
			respErr.Message = http.StatusText(statusCode)
		}
	}

	return respErr
}

func (e *ResponseError) Error() string {
	var b strings.Builder
	b.WriteString(e.err.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (e *ResponseError) Unwrap() error {
	return e.err
}

// KindOf returns the server error kind carried by err, or "".
func KindOf(err error) string {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Kind
	}
	return ""
}
