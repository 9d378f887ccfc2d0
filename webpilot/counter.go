package webpilot

import "sync/atomic"

var callCounter uint64

// NextCallID a session wide correlation id for outbound calls
func NextCallID() uint64 {
	return atomic.AddUint64(&callCounter, 1)
}
