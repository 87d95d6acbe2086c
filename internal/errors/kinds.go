package errors

import (
	"errors"
	"fmt"
)

// Kind classifies failures surfaced to the user.
type Kind int

const (
	KindUnknown Kind = iota
	// KindFetchFailure is a network failure or unreadable response.
	KindFetchFailure
	// KindValidationFailure blocks a submit locally.
	KindValidationFailure
	// KindServerRejection is a non-2xx answer to a write.
	KindServerRejection
	// KindInvalidLink is a one-time link the server refused.
	KindInvalidLink
	KindInvalidTimeFormat
	KindInvalidDateFormat
)

var (
	ErrFetchFailure      = errors.New("fetch failure")
	ErrValidationFailure = errors.New("validation failure")
	ErrServerRejection   = errors.New("server rejection")
	ErrInvalidLink       = errors.New("invalid link")
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidDateFormat = errors.New("invalid date format")
)

var kindSentinels = map[Kind]error{
	KindFetchFailure:      ErrFetchFailure,
	KindValidationFailure: ErrValidationFailure,
	KindServerRejection:   ErrServerRejection,
	KindInvalidLink:       ErrInvalidLink,
	KindInvalidTimeFormat: ErrInvalidTimeFormat,
	KindInvalidDateFormat: ErrInvalidDateFormat,
}

func (k Kind) String() string {
	switch k {
	case KindFetchFailure:
		return "fetch_failure"
	case KindValidationFailure:
		return "validation_failure"
	case KindServerRejection:
		return "server_rejection"
	case KindInvalidLink:
		return "invalid_link"
	case KindInvalidTimeFormat:
		return "invalid_time_format"
	case KindInvalidDateFormat:
		return "invalid_date_format"
	default:
		return "unknown"
	}
}

// Error is a classified error. Op names the operation that failed.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// E builds a classified error.
func E(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Ef builds a classified error from a format string.
func Ef(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// KindOf returns the kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Message returns the innermost message of a classified error, without the Op prefix.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
