package webpilot

import "github.com/pkg/errors"

// revive:exported
var (
	ErrTargetNotFound = errors.New("target not found")
	ErrTimeout        = errors.New("operation timed out")
	ErrTransport      = errors.New("transport failure")
	ErrInvalidReply   = errors.New("invalid reply shape")
	ErrNotImplemented = errors.New("not implemented")
)

// ProtocolErr when the peer rejected a call, keeps the raw peer message
// so callers can log it while matching on the mapped sentinel.
type ProtocolErr struct {
	Method  string
	Message string
	wrapped error
}

func (e *ProtocolErr) Error() string {
	return "protocol error in " + e.Method + ": " + e.Message
}

// Unwrap to the taxonomy sentinel this peer error maps to
func (e *ProtocolErr) Unwrap() error {
	return e.wrapped
}

// NewProtocolErr maps a peer error onto the error taxonomy
func NewProtocolErr(method, message string, mapped error) *ProtocolErr {
	return &ProtocolErr{Method: method, Message: message, wrapped: mapped}
}
