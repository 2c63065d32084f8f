package backendsvc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tells where a request failed.
type Kind int

const (
	// KindNetwork means no HTTP response was obtained.
	KindNetwork Kind = iota
	// KindHTTP means the backend answered with a non-2xx status.
	KindHTTP
	// KindEnvelope means a 2xx response whose envelope is not an explicit success.
	KindEnvelope
	// KindValidation means the input was rejected before any request was made.
	KindValidation
)

var kindNames = map[Kind]string{
	KindNetwork:    "network",
	KindHTTP:       "http",
	KindEnvelope:   "envelope",
	KindValidation: "validation",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

const (
	msgNetwork       = "Network error. Please check your connection and try again."
	msgDashboard     = "Failed to fetch dashboard statistics"
	msgReupload      = "Failed to fetch reupload statistics"
	msgInvalidBody   = "Invalid response from server"
	msgMissingData   = "Response is missing data"
	msgRequestFailed = "Request failed"
)

// Error is returned by every Client call that fails.
// Status is 0 when no HTTP status applies.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error // cause, if any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func networkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: msgNetwork, Err: err}
}

func httpError(status int, message string) *Error {
	if message == "" {
		message = fmt.Sprintf("HTTP error! Status: %d", status)
	}
	return &Error{Kind: KindHTTP, Status: status, Message: message}
}

func envelopeError(status int, message string, cause error) *Error {
	if message == "" {
		message = msgRequestFailed
	}
	return &Error{Kind: KindEnvelope, Status: status, Message: message, Err: cause}
}

// statsError replaces any failure of a statistics call with a status 500 error carrying `message`.
func statsError(message string, cause error) *Error {
	kind := KindEnvelope
	if e, ok := AsError(cause); ok {
		kind = e.Kind
	}
	return &Error{Kind: kind, Status: 500, Message: message, Err: cause}
}

func validationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// AsError returns the *Error wrapped in err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Message returns a message fit for display for any error.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := AsError(err); ok {
		return e.Message
	}
	return err.Error()
}
