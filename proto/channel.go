package proto

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/webpilot/webpilot"
)

// DefaultCallTimeout when the caller passes no per-call timeout
const DefaultCallTimeout = 30 * time.Second

// EventFunc receives peer initiated messages (object creation and
// disposal, plus any object scoped events). Runs on the read loop
// goroutine, handlers must not block on the channel itself.
type EventFunc func(env *Envelope)

// Channel turns an outbound call into a typed, timed out, awaited
// result over a Transport. One per session.
type Channel struct {
	transport      Transport
	pending        *PendingCalls
	recorder       Recorder
	eventFn        EventFunc
	defaultTimeout time.Duration
	exitCh         chan struct{}
	closeOnce      sync.Once
}

// NewChannel over transport. The recorder may be nil.
func NewChannel(transport Transport, recorder Recorder) *Channel {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &Channel{
		transport:      transport,
		pending:        NewPendingCalls(),
		recorder:       recorder,
		defaultTimeout: DefaultCallTimeout,
		exitCh:         make(chan struct{}),
	}
}

// SetEventFunc before Start, not safe to swap while the read loop runs
func (c *Channel) SetEventFunc(fn EventFunc) {
	c.eventFn = fn
}

// SetDefaultTimeout for calls that pass zero
func (c *Channel) SetDefaultTimeout(d time.Duration) {
	c.defaultTimeout = d
}

// Start the read loop. Returns immediately.
func (c *Channel) Start() {
	go c.readLoop()
}

func (c *Channel) readLoop() {
	for {
		env, err := c.transport.Recv()
		if err != nil {
			select {
			case <-c.exitCh:
				c.pending.FailAll(errors.New("channel closed"))
			default:
				log.Debug().Err(err).Msg("transport read failed")
				c.pending.FailAll(err)
			}
			return
		}
		c.recorder.Record(DirectionRecv, env)

		if env.ID != 0 {
			c.pending.Complete(env.ID, env.Result, env.Error)
			continue
		}
		if c.eventFn != nil {
			c.eventFn(env)
		}
	}
}

// Send a method addressed to guid and await the reply. A zero timeout
// uses the channel default. Expiry cancels the correlation and yields a
// timeout flavored error, closure of the channel a transport one.
func (c *Channel) Send(ctx context.Context, guid, method string, params interface{}, timeout time.Duration) (json.RawMessage, error) {
	if timeout <= 0 {
		timeout = c.defaultTimeout
	}

	var raw json.RawMessage
	if params != nil {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, errors.Wrap(err, "encoding params")
		}
		raw = data
	}

	id := webpilot.NextCallID()
	call, err := c.pending.Register(id, method)
	if err != nil {
		return nil, err
	}

	env := &Envelope{ID: id, GUID: guid, Method: method, Params: raw}
	c.recorder.Record(DirectionSend, env)
	if err := c.transport.Send(env); err != nil {
		c.pending.discard(id)
		return nil, errors.Wrap(webpilot.ErrTransport, err.Error())
	}
	return c.pending.Wait(ctx, id, call, timeout)
}

// Close the channel and the transport, failing every pending call.
func (c *Channel) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.exitCh)
		err = c.transport.Close()
		c.pending.FailAll(errors.New("channel closed"))
	})
	return err
}
