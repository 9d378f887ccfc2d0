package mock

import (
	"sync"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/proto"
)

// Transport is an in-memory scripted peer for channel tests. Outbound
// envelopes are logged and optionally answered by SendFn, inbound ones
// are injected with Deliver.
type Transport struct {
	SendFn     func(env *proto.Envelope)
	SendCalled bool
	SendErr    error

	sentLock sync.Mutex
	sent     []*proto.Envelope

	incoming  chan *proto.Envelope
	exitCh    chan struct{}
	closeOnce sync.Once
}

// MakeTransport with room for buffered inbound envelopes
func MakeTransport() *Transport {
	return &Transport{
		incoming: make(chan *proto.Envelope, 64),
		exitCh:   make(chan struct{}),
	}
}

// Send logs the envelope and runs the script if one is set
func (t *Transport) Send(env *proto.Envelope) error {
	t.SendCalled = true
	if t.SendErr != nil {
		return t.SendErr
	}
	t.sentLock.Lock()
	t.sent = append(t.sent, env)
	t.sentLock.Unlock()
	if t.SendFn != nil {
		t.SendFn(env)
	}
	return nil
}

// Recv blocks until Deliver or Close
func (t *Transport) Recv() (*proto.Envelope, error) {
	select {
	case env := <-t.incoming:
		return env, nil
	case <-t.exitCh:
		return nil, errors.New("transport closed")
	}
}

// Deliver an inbound envelope as if the peer sent it
func (t *Transport) Deliver(env *proto.Envelope) {
	select {
	case t.incoming <- env:
	case <-t.exitCh:
	}
}

// Close unblocks Recv
func (t *Transport) Close() error {
	t.closeOnce.Do(func() { close(t.exitCh) })
	return nil
}

// Sent returns a copy of everything sent so far
func (t *Transport) Sent() []*proto.Envelope {
	t.sentLock.Lock()
	defer t.sentLock.Unlock()
	out := make([]*proto.Envelope, len(t.sent))
	copy(out, t.sent)
	return out
}
