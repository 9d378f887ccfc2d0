// Package driver implements the protocol objects of an automation
// session: the connection that keeps the guid registry in sync with the
// peer, pages, frames, element handles, and the dual mode locator.
package driver

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gitlab.com/webpilot/proto"
	"gitlab.com/webpilot/webpilot"
)

// Conn owns the channel and both object tables for one session: the
// peer driven registry of remote objects and the local registry of
// client synthesized locators. Lifetime of every weak handle is scoped
// to the Conn, Close invalidates them all.
type Conn struct {
	channel   *proto.Channel
	objects   *proto.Registry
	local     *proto.Registry
	pageCh    chan *Page
	exitCh    chan struct{}
	closeOnce sync.Once
}

// NewConn over transport. The recorder may be nil. Call Start before
// sending anything.
func NewConn(transport proto.Transport, recorder proto.Recorder) *Conn {
	c := &Conn{
		channel: proto.NewChannel(transport, recorder),
		objects: proto.NewRegistry(),
		local:   proto.NewRegistry(),
		pageCh:  make(chan *Page, 4),
		exitCh:  make(chan struct{}),
	}
	c.channel.SetEventFunc(c.dispatchEvent)
	return c
}

// Start the channel read loop
func (c *Conn) Start() {
	c.channel.Start()
}

// SetDefaultTimeout for calls issued with no per-call timeout
func (c *Conn) SetDefaultTimeout(d time.Duration) {
	c.channel.SetDefaultTimeout(d)
}

// Close the connection, failing in-flight calls and invalidating every
// outstanding object handle.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.exitCh)
		err = c.channel.Close()
		c.objects.Teardown()
		c.local.Teardown()
	})
	return err
}

// Objects is the registry of peer owned protocol objects
func (c *Conn) Objects() *proto.Registry {
	return c.objects
}

// WaitForPage blocks until the peer announces a page object
func (c *Conn) WaitForPage(ctx context.Context) (*Page, error) {
	select {
	case p := <-c.pageCh:
		return p, nil
	case <-c.exitCh:
		return nil, errors.Wrap(webpilot.ErrTransport, "connection closed")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// dispatchEvent runs on the channel read loop for peer initiated
// messages: object creation, disposal, anything else is dropped with a
// debug log.
func (c *Conn) dispatchEvent(env *proto.Envelope) {
	switch env.Method {
	case proto.MethodCreate:
		params := &proto.CreateParams{}
		if err := json.Unmarshal(env.Params, params); err != nil {
			log.Warn().Err(err).Msg("malformed create event")
			return
		}
		if err := c.createRemoteObject(params); err != nil {
			log.Warn().Err(err).Str("guid", params.GUID).Str("type", params.Type).Msg("failed to track object")
		}
	case proto.MethodDispose:
		c.objects.Unregister(env.GUID)
	default:
		log.Debug().Str("guid", env.GUID).Str("method", env.Method).Msg("unhandled event")
	}
}

func (c *Conn) createRemoteObject(params *proto.CreateParams) error {
	var obj proto.Object

	switch params.Type {
	case "Page":
		page, err := newPage(c, params.GUID, params.Initializer)
		if err != nil {
			return err
		}
		obj = page
		select {
		case c.pageCh <- page:
		default:
		}
	case "Frame":
		obj = newFrame(c, params.GUID)
	case "ElementHandle":
		obj = newElementHandle(c, params.GUID)
	case "Locator":
		loc, err := newRegistryLocator(c, params.GUID, params.Initializer)
		if err != nil {
			return err
		}
		obj = loc
	default:
		log.Debug().Str("type", params.Type).Str("guid", params.GUID).Msg("ignoring unknown object type")
		return nil
	}
	return c.objects.Register(obj)
}

// send addressed to guid, timeout in milliseconds, zero uses the
// session default
func (c *Conn) send(ctx context.Context, guid, method string, params interface{}, timeoutMS float64) (json.RawMessage, error) {
	return c.channel.Send(ctx, guid, method, params, callTimeout(timeoutMS))
}

func callTimeout(ms float64) time.Duration {
	if ms <= 0 {
		return 0
	}
	return time.Duration(ms * float64(time.Millisecond))
}

// object is the common identity of every remote protocol object
type object struct {
	guid string
	typ  string
	conn *Conn
}

// GUID of this object
func (o *object) GUID() string { return o.guid }

// TypeTag of this object
func (o *object) TypeTag() string { return o.typ }
