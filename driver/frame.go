package driver

import (
	"context"

	"gitlab.com/webpilot/proto"
	"gitlab.com/webpilot/webpilot"
)

// Frame is the registry backed implementation of the frame delegate
// contract: every operation is a message addressed to the frame's own
// guid, resolution and auto-waiting happen on the peer side.
type Frame struct {
	object
}

var _ webpilot.FrameDelegate = (*Frame)(nil)

func newFrame(c *Conn, guid string) *Frame {
	return &Frame{object: object{guid: guid, typ: "Frame", conn: c}}
}

// Locator builds a client synthesized locator rooted at this frame.
// The locator holds only the selector and a weak reference back here,
// it re-resolves on every interaction.
func (f *Frame) Locator(sel string) *Locator {
	return newClientLocator(f.conn, f.conn.objects.Lookup(f.guid), sel)
}

type selectorParams struct {
	Selector string `json:"selector"`
}

type clickParams struct {
	Selector string `json:"selector"`
	webpilot.ClickOptions
}

type fillParams struct {
	Selector string `json:"selector"`
	Value    string `json:"value"`
	webpilot.FillOptions
}

type hoverParams struct {
	Selector string `json:"selector"`
	webpilot.HoverOptions
}

type checkParams struct {
	Selector string `json:"selector"`
	webpilot.CheckOptions
}

type selectOptionParams struct {
	Selector string `json:"selector"`
	webpilot.SelectOptionValues
	webpilot.SelectOptionOptions
}

type setInputFilesParams struct {
	Selector string              `json:"selector"`
	Files    []webpilot.InputFile `json:"files"`
	webpilot.SetInputFilesOptions
}

type selectorTimeoutParams struct {
	Selector string  `json:"selector"`
	Timeout  float64 `json:"timeout,omitempty"`
}

type getAttributeParams struct {
	Selector string  `json:"selector"`
	Name     string  `json:"name"`
	Timeout  float64 `json:"timeout,omitempty"`
}

type evaluateParams struct {
	Expression string      `json:"expression"`
	Arg        interface{} `json:"arg,omitempty"`
}

// QuerySelector resolves the selector to at most one element handle,
// nil when nothing matched.
func (f *Frame) QuerySelector(ctx context.Context, sel string) (webpilot.ElementOps, error) {
	raw, err := f.conn.send(ctx, f.guid, "querySelector", selectorParams{Selector: sel}, 0)
	if err != nil {
		return nil, err
	}
	res := &elementResult{}
	if err := decodeReply(raw, res); err != nil {
		return nil, err
	}
	if res.Element == nil {
		return nil, nil
	}
	return f.conn.adoptElement(res.Element.GUID), nil
}

// QuerySelectorAll resolves every match in document order
func (f *Frame) QuerySelectorAll(ctx context.Context, sel string) ([]webpilot.ElementOps, error) {
	raw, err := f.conn.send(ctx, f.guid, "querySelectorAll", selectorParams{Selector: sel}, 0)
	if err != nil {
		return nil, err
	}
	res := &elementsResult{}
	if err := decodeReply(raw, res); err != nil {
		return nil, err
	}
	elements := make([]webpilot.ElementOps, len(res.Elements))
	for i, e := range res.Elements {
		elements[i] = f.conn.adoptElement(e.GUID)
	}
	return elements, nil
}

// Evaluate an expression in the frame's default world, result decoded
// as a plain JSON value.
func (f *Frame) Evaluate(ctx context.Context, expression string, arg interface{}) (interface{}, error) {
	raw, err := f.conn.send(ctx, f.guid, "evaluateExpression", evaluateParams{Expression: expression, Arg: arg}, 0)
	if err != nil {
		return nil, err
	}
	res := &rawValueResult{}
	if err := decodeReply(raw, res); err != nil {
		return nil, err
	}
	if res.Value == nil {
		return nil, nil
	}
	var value interface{}
	if err := decodeReply(res.Value, &value); err != nil {
		return nil, err
	}
	return value, nil
}

// Click an element matching selector
func (f *Frame) Click(ctx context.Context, sel string, opts webpilot.ClickOptions) error {
	_, err := f.conn.send(ctx, f.guid, "click", clickParams{Selector: sel, ClickOptions: opts}, opts.Timeout)
	return err
}

// DblClick an element matching selector
func (f *Frame) DblClick(ctx context.Context, sel string, opts webpilot.ClickOptions) error {
	_, err := f.conn.send(ctx, f.guid, "dblclick", clickParams{Selector: sel, ClickOptions: opts}, opts.Timeout)
	return err
}

// Fill the element matching selector with value
func (f *Frame) Fill(ctx context.Context, sel, value string, opts webpilot.FillOptions) error {
	_, err := f.conn.send(ctx, f.guid, "fill", fillParams{Selector: sel, Value: value, FillOptions: opts}, opts.Timeout)
	return err
}

// Hover over the element matching selector
func (f *Frame) Hover(ctx context.Context, sel string, opts webpilot.HoverOptions) error {
	_, err := f.conn.send(ctx, f.guid, "hover", hoverParams{Selector: sel, HoverOptions: opts}, opts.Timeout)
	return err
}

// Check the element matching selector
func (f *Frame) Check(ctx context.Context, sel string, opts webpilot.CheckOptions) error {
	_, err := f.conn.send(ctx, f.guid, "check", checkParams{Selector: sel, CheckOptions: opts}, opts.Timeout)
	return err
}

// Uncheck the element matching selector
func (f *Frame) Uncheck(ctx context.Context, sel string, opts webpilot.CheckOptions) error {
	_, err := f.conn.send(ctx, f.guid, "uncheck", checkParams{Selector: sel, CheckOptions: opts}, opts.Timeout)
	return err
}

// SelectOption on the select element matching selector, returns the
// values actually selected.
func (f *Frame) SelectOption(ctx context.Context, sel string, values webpilot.SelectOptionValues, opts webpilot.SelectOptionOptions) ([]string, error) {
	raw, err := f.conn.send(ctx, f.guid, "selectOption", selectOptionParams{Selector: sel, SelectOptionValues: values, SelectOptionOptions: opts}, opts.Timeout)
	if err != nil {
		return nil, err
	}
	return stringsReply(raw)
}

// SetInputFiles on the file input matching selector
func (f *Frame) SetInputFiles(ctx context.Context, sel string, files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error {
	_, err := f.conn.send(ctx, f.guid, "setInputFiles", setInputFilesParams{Selector: sel, Files: files, SetInputFilesOptions: opts}, opts.Timeout)
	return err
}

// Focus the element matching selector
func (f *Frame) Focus(ctx context.Context, sel string, timeout float64) error {
	_, err := f.conn.send(ctx, f.guid, "focus", selectorTimeoutParams{Selector: sel, Timeout: timeout}, timeout)
	return err
}

// GetAttribute of the element matching selector, nil when absent
func (f *Frame) GetAttribute(ctx context.Context, sel, name string, timeout float64) (*string, error) {
	raw, err := f.conn.send(ctx, f.guid, "getAttribute", getAttributeParams{Selector: sel, Name: name, Timeout: timeout}, timeout)
	if err != nil {
		return nil, err
	}
	return optStringReply(raw)
}

// TextContent of the element matching selector, nil when absent
func (f *Frame) TextContent(ctx context.Context, sel string, timeout float64) (*string, error) {
	raw, err := f.conn.send(ctx, f.guid, "textContent", selectorTimeoutParams{Selector: sel, Timeout: timeout}, timeout)
	if err != nil {
		return nil, err
	}
	return optStringReply(raw)
}

// InnerText of the element matching selector
func (f *Frame) InnerText(ctx context.Context, sel string, timeout float64) (string, error) {
	raw, err := f.conn.send(ctx, f.guid, "innerText", selectorTimeoutParams{Selector: sel, Timeout: timeout}, timeout)
	if err != nil {
		return "", err
	}
	return stringReply(raw)
}

// InnerHTML of the element matching selector
func (f *Frame) InnerHTML(ctx context.Context, sel string, timeout float64) (string, error) {
	raw, err := f.conn.send(ctx, f.guid, "innerHTML", selectorTimeoutParams{Selector: sel, Timeout: timeout}, timeout)
	if err != nil {
		return "", err
	}
	return stringReply(raw)
}

func (f *Frame) stateQuery(ctx context.Context, method, sel string, timeout float64) (bool, error) {
	raw, err := f.conn.send(ctx, f.guid, method, selectorTimeoutParams{Selector: sel, Timeout: timeout}, timeout)
	if err != nil {
		return false, err
	}
	return boolReply(raw)
}

// IsVisible state of the element matching selector
func (f *Frame) IsVisible(ctx context.Context, sel string, timeout float64) (bool, error) {
	return f.stateQuery(ctx, "isVisible", sel, timeout)
}

// IsHidden state of the element matching selector
func (f *Frame) IsHidden(ctx context.Context, sel string, timeout float64) (bool, error) {
	return f.stateQuery(ctx, "isHidden", sel, timeout)
}

// IsEnabled state of the element matching selector
func (f *Frame) IsEnabled(ctx context.Context, sel string, timeout float64) (bool, error) {
	return f.stateQuery(ctx, "isEnabled", sel, timeout)
}

// IsDisabled state of the element matching selector
func (f *Frame) IsDisabled(ctx context.Context, sel string, timeout float64) (bool, error) {
	return f.stateQuery(ctx, "isDisabled", sel, timeout)
}

// IsChecked state of the element matching selector
func (f *Frame) IsChecked(ctx context.Context, sel string, timeout float64) (bool, error) {
	return f.stateQuery(ctx, "isChecked", sel, timeout)
}

// IsEditable state of the element matching selector
func (f *Frame) IsEditable(ctx context.Context, sel string, timeout float64) (bool, error) {
	return f.stateQuery(ctx, "isEditable", sel, timeout)
}

// adoptElement resolves an element guid from the registry, registering
// a fresh handle when the reply referenced an object the peer never
// announced (explicit client construction).
func (c *Conn) adoptElement(guid string) *ElementHandle {
	if obj, ok := c.objects.Get(guid); ok {
		if el, ok := obj.(*ElementHandle); ok {
			return el
		}
	}
	el := newElementHandle(c, guid)
	if err := c.objects.Register(el); err != nil {
		// lost the race with a create notification, use the winner
		if obj, ok := c.objects.Get(guid); ok {
			if existing, ok := obj.(*ElementHandle); ok {
				return existing
			}
		}
	}
	return el
}

var _ proto.Object = (*Frame)(nil)
