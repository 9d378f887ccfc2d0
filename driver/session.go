package driver

import (
	"context"
	"time"

	"gitlab.com/webpilot/proto"
)

// Session is the top level automation handle: one connection, one
// object registry lifetime. Everything derived from it is invalid
// after Close.
type Session struct {
	conn *Conn
}

// NewSession over transport and starts the read loop. The recorder may
// be nil when tracing is off.
func NewSession(transport proto.Transport, recorder proto.Recorder) *Session {
	conn := NewConn(transport, recorder)
	conn.Start()
	return &Session{conn: conn}
}

// SetDefaultTimeout for calls issued with no per-call timeout
func (s *Session) SetDefaultTimeout(d time.Duration) {
	s.conn.SetDefaultTimeout(d)
}

// WaitForPage blocks until the peer announces a page
func (s *Session) WaitForPage(ctx context.Context) (*Page, error) {
	return s.conn.WaitForPage(ctx)
}

// Close tears down the connection and invalidates all object handles
func (s *Session) Close() error {
	return s.conn.Close()
}
