package driver

import (
	"context"

	"gitlab.com/webpilot/webpilot"
)

// ElementHandle is a one-shot primitive surface over a single concrete
// element the peer resolved earlier. It never re-queries, a detached
// element fails with target not found from the peer.
type ElementHandle struct {
	object
}

var _ webpilot.ElementOps = (*ElementHandle)(nil)

func newElementHandle(c *Conn, guid string) *ElementHandle {
	return &ElementHandle{object: object{guid: guid, typ: "ElementHandle", conn: c}}
}

type valueParams struct {
	Value string `json:"value"`
	webpilot.FillOptions
}

type keyParams struct {
	Key string `json:"key"`
	webpilot.PressOptions
}

type textParams struct {
	Text string `json:"text"`
	webpilot.TypeOptions
}

type filesParams struct {
	Files []webpilot.InputFile `json:"files"`
	webpilot.SetInputFilesOptions
}

// Click this element
func (e *ElementHandle) Click(ctx context.Context, opts webpilot.ClickOptions) error {
	_, err := e.conn.send(ctx, e.guid, "click", opts, opts.Timeout)
	return err
}

// Fill this element with value
func (e *ElementHandle) Fill(ctx context.Context, value string, opts webpilot.FillOptions) error {
	_, err := e.conn.send(ctx, e.guid, "fill", valueParams{Value: value, FillOptions: opts}, opts.Timeout)
	return err
}

// Press a key on this element
func (e *ElementHandle) Press(ctx context.Context, key string, opts webpilot.PressOptions) error {
	_, err := e.conn.send(ctx, e.guid, "press", keyParams{Key: key, PressOptions: opts}, opts.Timeout)
	return err
}

// Type text into this element key by key
func (e *ElementHandle) Type(ctx context.Context, text string, opts webpilot.TypeOptions) error {
	_, err := e.conn.send(ctx, e.guid, "type", textParams{Text: text, TypeOptions: opts}, opts.Timeout)
	return err
}

// TextContent of this element, nil when the node has none
func (e *ElementHandle) TextContent(ctx context.Context) (*string, error) {
	raw, err := e.conn.send(ctx, e.guid, "textContent", nil, 0)
	if err != nil {
		return nil, err
	}
	return optStringReply(raw)
}

// GetAttribute of this element, nil when absent
func (e *ElementHandle) GetAttribute(ctx context.Context, name string) (*string, error) {
	raw, err := e.conn.send(ctx, e.guid, "getAttribute", map[string]string{"name": name}, 0)
	if err != nil {
		return nil, err
	}
	return optStringReply(raw)
}

// InputValue of this element
func (e *ElementHandle) InputValue(ctx context.Context) (string, error) {
	raw, err := e.conn.send(ctx, e.guid, "inputValue", nil, 0)
	if err != nil {
		return "", err
	}
	return stringReply(raw)
}

// SetInputFiles on this element
func (e *ElementHandle) SetInputFiles(ctx context.Context, files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error {
	_, err := e.conn.send(ctx, e.guid, "setInputFiles", filesParams{Files: files, SetInputFilesOptions: opts}, opts.Timeout)
	return err
}
