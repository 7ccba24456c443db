package assistant

import (
	"errors"
	"net/http"
)

// Kind classifies a failed operation.
type Kind int

const (
	// KindValidation means the request was missing a required field.
	KindValidation Kind = iota + 1
	// KindUpstream covers everything else: unreadable bodies, model failures, empty replies.
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	default:
		return "unknown"
	}
}

// Error is the failure half of every operation result.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode maps the kind to an HTTP status.
func (e *Error) StatusCode() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrValidation constructs a validation error with a client-facing message.
func ErrValidation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

// ErrUpstream wraps err as an upstream error; the message is err's own.
func ErrUpstream(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Kind: KindUpstream, Err: err}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}

// IsUpstream reports whether err is an upstream error.
func IsUpstream(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUpstream
}

// Messages returned for missing fields.
const (
	MsgNoQuery = "No query provided"
	MsgNoText  = "No text provided"
)
