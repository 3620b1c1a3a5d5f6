package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/circlegallery/internal/common"
)

// Kind classifies a gateway failure so callers can tell retryable
// transport trouble from terminal rejections.
type Kind string

const (
	KindTransport    Kind = "transport"
	KindServer       Kind = "server"
	KindUnauthorized Kind = "unauthorized"
	KindNotFound     Kind = "not_found"
	KindValidation   Kind = "validation"
	KindDecode       Kind = "decode"
)

// Retryable reports whether repeating the same call may succeed.
func (k Kind) Retryable() bool {
	return k == KindTransport
}

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrServer       = errors.New("server rejected request")
	ErrDecode       = errors.New("malformed response")
	ErrNotFound     = common.ErrNotFound
	ErrValidation   = common.ErrValidation
)

// fallbackMessage is shown when the server gave no reason.
const fallbackMessage = "request failed"

// Error is the typed failure returned by every gateway operation.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the sentinel of the error's kind, so errors.Is(err,
// ErrUnavailable) works for any transport failure.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindTransport:
		return target == ErrUnavailable
	case KindUnauthorized:
		return target == ErrUnauthorized
	case KindNotFound:
		return target == ErrNotFound
	case KindValidation:
		return target == ErrValidation
	case KindServer:
		return target == ErrServer
	case KindDecode:
		return target == ErrDecode
	}
	return false
}

// NewValidationError reports caller input rejected before any network call.
func NewValidationError(op, message string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// KindOf returns the kind of err. Context cancellation and deadlines count
// as transport failures; unknown errors yield "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindTransport
	}
	return ""
}

// MessageOf returns the human-readable part of err: the server's message
// when there is one, the full error text otherwise.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusBadGateway || status == http.StatusServiceUnavailable || status == http.StatusGatewayTimeout:
		return KindTransport
	default:
		return KindServer
	}
}
