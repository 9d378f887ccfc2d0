package proto

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Transport moves envelopes to and from the peer. Send may be called
// from any goroutine, Recv is called by a single reader loop. Close
// unblocks a pending Recv.
type Transport interface {
	Send(env *Envelope) error
	Recv() (*Envelope, error)
	Close() error
}

// WebSocketTransport frames one JSON envelope per text message.
type WebSocketTransport struct {
	conn      *websocket.Conn
	writeLock sync.Mutex
}

// DialWebSocket connects to a driver endpoint (ws:// or wss:// URL).
func DialWebSocket(endpoint string) (*WebSocketTransport, error) {
	conn, _, err := websocket.DefaultDialer.Dial(endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "dialing driver endpoint")
	}
	return &WebSocketTransport{conn: conn}, nil
}

// Send a single envelope
func (t *WebSocketTransport) Send(env *Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	t.writeLock.Lock()
	defer t.writeLock.Unlock()
	return t.conn.WriteMessage(websocket.TextMessage, data)
}

// Recv blocks for the next envelope
func (t *WebSocketTransport) Recv() (*Envelope, error) {
	_, data, err := t.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	env := &Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, errors.Wrap(err, "decoding envelope")
	}
	return env, nil
}

// Close the underlying connection
func (t *WebSocketTransport) Close() error {
	return t.conn.Close()
}

// PipeTransport speaks the driver's stdio framing: 4 byte little endian
// payload length followed by the JSON envelope.
type PipeTransport struct {
	rw        io.ReadWriteCloser
	writeLock sync.Mutex
}

// NewPipeTransport over an already opened duplex stream
func NewPipeTransport(rw io.ReadWriteCloser) *PipeTransport {
	return &PipeTransport{rw: rw}
}

// Send a single envelope
func (t *PipeTransport) Send(env *Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	t.writeLock.Lock()
	defer t.writeLock.Unlock()

	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(len(data)))
	if _, err := t.rw.Write(hdr[:]); err != nil {
		return err
	}
	_, err = t.rw.Write(data)
	return err
}

// Recv blocks for the next envelope
func (t *PipeTransport) Recv() (*Envelope, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(t.rw, hdr[:]); err != nil {
		return nil, err
	}
	data := make([]byte, binary.LittleEndian.Uint32(hdr[:]))
	if _, err := io.ReadFull(t.rw, data); err != nil {
		return nil, err
	}
	env := &Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, errors.Wrap(err, "decoding envelope")
	}
	return env, nil
}

// Close the underlying stream
func (t *PipeTransport) Close() error {
	return t.rw.Close()
}
