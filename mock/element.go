package mock

import (
	"context"

	"gitlab.com/webpilot/webpilot"
)

// Element is a scripted one-shot element primitive surface.
type Element struct {
	ClickFn     func(opts webpilot.ClickOptions) error
	ClickCalled bool

	FillFn     func(value string, opts webpilot.FillOptions) error
	FillCalled bool
	FilledWith []string

	PressFn     func(key string, opts webpilot.PressOptions) error
	PressCalled bool

	TypeFn     func(text string, opts webpilot.TypeOptions) error
	TypeCalled bool

	TextContentFn     func() (*string, error)
	TextContentCalled bool

	GetAttributeFn     func(name string) (*string, error)
	GetAttributeCalled bool

	InputValueFn     func() (string, error)
	InputValueCalled bool

	SetInputFilesFn     func(files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error
	SetInputFilesCalled bool
}

// Click the element
func (e *Element) Click(ctx context.Context, opts webpilot.ClickOptions) error {
	e.ClickCalled = true
	return e.ClickFn(opts)
}

// Fill the element
func (e *Element) Fill(ctx context.Context, value string, opts webpilot.FillOptions) error {
	e.FillCalled = true
	e.FilledWith = append(e.FilledWith, value)
	return e.FillFn(value, opts)
}

// Press a key on the element
func (e *Element) Press(ctx context.Context, key string, opts webpilot.PressOptions) error {
	e.PressCalled = true
	return e.PressFn(key, opts)
}

// Type text into the element
func (e *Element) Type(ctx context.Context, text string, opts webpilot.TypeOptions) error {
	e.TypeCalled = true
	return e.TypeFn(text, opts)
}

// TextContent of the element
func (e *Element) TextContent(ctx context.Context) (*string, error) {
	e.TextContentCalled = true
	return e.TextContentFn()
}

// GetAttribute of the element
func (e *Element) GetAttribute(ctx context.Context, name string) (*string, error) {
	e.GetAttributeCalled = true
	return e.GetAttributeFn(name)
}

// InputValue of the element
func (e *Element) InputValue(ctx context.Context) (string, error) {
	e.InputValueCalled = true
	return e.InputValueFn()
}

// SetInputFiles on the element
func (e *Element) SetInputFiles(ctx context.Context, files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error {
	e.SetInputFilesCalled = true
	return e.SetInputFilesFn(files, opts)
}

// MakeElement returns an element fake whose scripts all succeed with
// zero values. Override fields as needed.
func MakeElement() *Element {
	e := &Element{}
	e.ClickFn = func(webpilot.ClickOptions) error { return nil }
	e.FillFn = func(string, webpilot.FillOptions) error { return nil }
	e.PressFn = func(string, webpilot.PressOptions) error { return nil }
	e.TypeFn = func(string, webpilot.TypeOptions) error { return nil }
	e.TextContentFn = func() (*string, error) { return nil, nil }
	e.GetAttributeFn = func(string) (*string, error) { return nil, nil }
	e.InputValueFn = func() (string, error) { return "", nil }
	e.SetInputFilesFn = func([]webpilot.InputFile, webpilot.SetInputFilesOptions) error { return nil }
	return e
}
