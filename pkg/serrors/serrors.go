// Package serrors defines semantic error kinds shared by the services, the
// HTTP API and its client. A kind names the error category on the wire and
// knows the HTTP status it is served with.
package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a semantic error category. Its Error string is the code sent to API
// callers.
type Kind interface {
	error
	// Status is the HTTP status errors of this kind are served with.
	Status() int
	// DefaultMessage is shown when an error of this kind carries no message.
	DefaultMessage() string
	isKind()
}

type kind struct {
	code    string
	status  int
	message string
}

func (k kind) Error() string          { return k.code }
func (k kind) Status() int            { return k.status }
func (k kind) DefaultMessage() string { return k.message }
func (k kind) isKind()                {}

// NewKind creates a kind with the given wire code, HTTP status and default
// message. Kinds are comparable and match with errors.Is/As through Error.
func NewKind(code string, status int, message string) Kind {
	return kind{code: code, status: status, message: message}
}

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound, "resource not found")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	// ErrForbidden indicates the caller is not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN", http.StatusForbidden, "forbidden")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest, "bad request")
	// ErrConflict indicates the operation raced with a change of state.
	ErrConflict = NewKind("CONFLICT", http.StatusConflict, "conflict")
	// ErrInternal is the kind of every error without a semantic kind. Its
	// details are never shown to callers.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError, "internal error")
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT", http.StatusGatewayTimeout, "request timed out")
	// ErrUnavailable indicates a dependency such as the database is down.
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable, "service unavailable")
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests, "too many requests")
)

// kinds lists the default kinds so they can be looked up by their code.
var kinds = []Kind{ //nolint: gochecknoglobals
	ErrNotFound,
	ErrUnauthorized,
	ErrForbidden,
	ErrBadRequest,
	ErrConflict,
	ErrInternal,
	ErrTimeout,
	ErrUnavailable,
	ErrRateLimited,
}

// KindFromCode returns the default kind whose Error() string equals code, or
// ErrInternal when the code is unknown. It is the inverse of Kind.Error() for
// errors that travel over the wire as a code.
func KindFromCode(code string) Kind {
	for _, k := range kinds {
		if k.Error() == code {
			return k
		}
	}

	return ErrInternal
}

// MessageOf returns the message of the outermost semantic error in err's
// chain, or the default message of its kind when there is none.
func MessageOf(err error) string {
	var serr *Error
	if errors.As(err, &serr) && serr.msg != "" {
		return serr.msg
	}

	return KindOf(err).DefaultMessage()
}

// KindOf walks the error chain and returns the first semantic kind found. A
// bare Kind passed as an error is returned as is. Errors without any kind
// report ErrInternal.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// Error represents a semantic error carrying a kind (sentinel), an optional
// wrapped error and an optional arbitrary message. It fully supports
// errors.Is/errors.As and unwrapping.
//
// Matching semantics:
//   - errors.Is(err, target) will match if target matches either the kind
//     sentinel or the wrapped error.
//   - errors.As(err, target) will succeed for either the kind sentinel or the
//     wrapped error.
//
// Error string formatting:
//   - If both msg and err are set: "<msg>: <err>"
//   - If only msg is set: "<msg>"
//   - If only err is set: "<err>"
//   - If neither set: the kind's Error() string.
type Error struct {
	kind Kind  // semantic kind sentinel
	err  error // wrapped error (optional)
	msg  string
}

// With constructs a new semantic error with the given kind and an arbitrary
// human-readable message. Use Wrap if you also want to wrap a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind, wraps the provided
// cause (err) and allows adding an arbitrary message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind without extra
// message or concrete cause.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error, enabling errors.Unwrap/Is/As to traverse
// the underlying cause chain.
func (e *Error) Unwrap() error { return e.err }

// Is enables matching against either the semantic kind sentinel or the wrapped
// error in the chain. This ensures that errors.Is works for both.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the semantic kind sentinel or the
// wrapped error in the chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the arbitrary message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }
