package proto

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/webpilot"
)

type callResult struct {
	result json.RawMessage
	err    error
}

// pendingCall is the single fulfillment slot for one outbound message.
// Exactly one reply or one failure completes it.
type pendingCall struct {
	method string
	done   chan callResult
}

// PendingCalls correlates outbound message ids to their eventual reply.
// Shared by every in-flight operation of a session, safe for concurrent
// register/complete/fail.
type PendingCalls struct {
	callLock sync.Mutex
	calls    map[uint64]*pendingCall
	closed   bool
	closeErr error
}

// NewPendingCalls table
func NewPendingCalls() *PendingCalls {
	return &PendingCalls{calls: make(map[uint64]*pendingCall)}
}

// Register a call id before the message goes out so a fast reply can
// not race the registration.
func (p *PendingCalls) Register(id uint64, method string) (*pendingCall, error) {
	p.callLock.Lock()
	defer p.callLock.Unlock()
	if p.closed {
		return nil, errors.Wrap(webpilot.ErrTransport, p.closeErr.Error())
	}
	call := &pendingCall{method: method, done: make(chan callResult, 1)}
	p.calls[id] = call
	return call, nil
}

// Complete the call for id with the peer's reply. Unknown ids are
// dropped, the waiter may already have timed out and discarded itself.
func (p *PendingCalls) Complete(id uint64, result json.RawMessage, remoteErr *RemoteError) {
	p.callLock.Lock()
	call, ok := p.calls[id]
	if ok {
		delete(p.calls, id)
	}
	p.callLock.Unlock()
	if !ok {
		return
	}
	if remoteErr != nil {
		call.done <- callResult{err: MapRemoteError(call.method, remoteErr)}
		return
	}
	call.done <- callResult{result: result}
}

// FailAll completes every outstanding call with a transport error,
// called once when the connection dies. Later Registers fail fast.
func (p *PendingCalls) FailAll(cause error) {
	p.callLock.Lock()
	if p.closed {
		p.callLock.Unlock()
		return
	}
	p.closed = true
	p.closeErr = cause
	calls := p.calls
	p.calls = make(map[uint64]*pendingCall)
	p.callLock.Unlock()

	for _, call := range calls {
		call.done <- callResult{err: errors.Wrap(webpilot.ErrTransport, cause.Error())}
	}
}

// discard a waiter that gave up, so Complete for a late reply drops it
func (p *PendingCalls) discard(id uint64) {
	p.callLock.Lock()
	delete(p.calls, id)
	p.callLock.Unlock()
}

// Wait for the call registered under id to complete. Expiry of timeout
// cancels the correlation and surfaces a timeout error, ctx cancelation
// likewise never leaves a dangling waiter.
func (p *PendingCalls) Wait(ctx context.Context, id uint64, call *pendingCall, timeout time.Duration) (json.RawMessage, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-call.done:
		return res.result, res.err
	case <-timer.C:
		p.discard(id)
		return nil, errors.Wrapf(webpilot.ErrTimeout, "%s after %s", call.method, timeout)
	case <-ctx.Done():
		p.discard(id)
		return nil, ctx.Err()
	}
}
