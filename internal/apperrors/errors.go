package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	// KindTransport covers connection failures, timeouts, and non-2xx replies.
	KindTransport Kind = "transport"
	// KindRateLimit is a transport failure where the server answered 429.
	KindRateLimit Kind = "rate_limit"
	// KindMalformedResponse means the repaired body still is not JSON.
	KindMalformedResponse Kind = "malformed_response"
	KindBadRequest        Kind = "bad_request"
	KindValidation        Kind = "validation"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and logs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindTransport:
		return "Translation service is unreachable. Please try again."
	case KindRateLimit:
		return "Translation service is throttling requests. Please try again later."
	case KindMalformedResponse:
		return "Unexpected response format from the translation service."
	case KindBadRequest:
		return "Invalid translation request."
	case KindValidation:
		return "Invalid configuration."
	default:
		return "Request failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func Transport(err error) error {
	return New(KindTransport, "", err)
}

func RateLimit(err error) error {
	return New(KindRateLimit, "", err)
}

func MalformedResponse(err error) error {
	return New(KindMalformedResponse, "", err)
}

func BadRequest(safeMessage string) error {
	return New(KindBadRequest, safeMessage, nil)
}

func Validation(err error) error {
	return New(KindValidation, "", err)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsTransport reports whether err came from the network fetch, including
// rate limiting.
func IsTransport(err error) bool {
	kind, ok := KindOf(err)
	return ok && (kind == KindTransport || kind == KindRateLimit)
}

func IsMalformedResponse(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindMalformedResponse
}
