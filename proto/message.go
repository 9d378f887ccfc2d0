// Package proto implements the wire layer shared by every protocol
// object: JSON envelope framing over a duplex transport, correlation of
// outbound calls to typed replies, and the guid keyed registry that
// mirrors the peer's view of the live object graph.
package proto

import (
	"encoding/json"
	"strings"

	"gitlab.com/webpilot/webpilot"
)

// reserved method names the peer uses for object lifecycle events
const (
	MethodCreate  = "__create__"
	MethodDispose = "__dispose__"
)

// Envelope is one protocol message in either direction. Outbound calls
// carry ID, GUID, Method and Params. Replies carry the originating ID
// plus Result or Error. Events carry GUID and Method with no ID.
type Envelope struct {
	ID     uint64          `json:"id,omitempty"`
	GUID   string          `json:"guid,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  *RemoteError    `json:"error,omitempty"`
}

// RemoteError is the peer's structured failure reply.
type RemoteError struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message"`
}

// CreateParams is the payload of a __create__ event.
type CreateParams struct {
	Type        string          `json:"type"`
	GUID        string          `json:"guid"`
	Initializer json.RawMessage `json:"initializer,omitempty"`
}

// OnlyGUID is the common initializer/params fragment referencing
// another object by identity.
type OnlyGUID struct {
	GUID string `json:"guid"`
}

// MapRemoteError folds a peer error into the client error taxonomy so
// callers handle one surface regardless of resolution mode.
func MapRemoteError(method string, re *RemoteError) error {
	msg := strings.ToLower(re.Message)
	mapped := webpilot.ErrInvalidReply
	switch {
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		mapped = webpilot.ErrTimeout
	case strings.Contains(msg, "not found"),
		strings.Contains(msg, "no node found"),
		strings.Contains(msg, "detached"),
		strings.Contains(msg, "disposed"),
		strings.Contains(msg, "target closed"):
		mapped = webpilot.ErrTargetNotFound
	}
	return webpilot.NewProtocolErr(method, re.Message, mapped)
}
