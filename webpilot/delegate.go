package webpilot

import "context"

// ElementOps is the one-shot primitive surface of a resolved element.
// An implementation operates on exactly one concrete element handle, it
// never re-resolves a selector.
type ElementOps interface {
	Click(ctx context.Context, opts ClickOptions) error
	Fill(ctx context.Context, value string, opts FillOptions) error
	Press(ctx context.Context, key string, opts PressOptions) error
	Type(ctx context.Context, text string, opts TypeOptions) error
	TextContent(ctx context.Context) (*string, error)
	GetAttribute(ctx context.Context, name string) (*string, error)
	InputValue(ctx context.Context) (string, error)
	SetInputFiles(ctx context.Context, files []InputFile, opts SetInputFilesOptions) error
}

// FrameDelegate is what a client synthesized locator calls into when it
// has no persistent remote handle. Selector strings are opaque to the
// delegate, each call resolves against the document at the instant it
// runs. QuerySelector returns nil, nil when nothing matched.
type FrameDelegate interface {
	QuerySelector(ctx context.Context, selector string) (ElementOps, error)
	QuerySelectorAll(ctx context.Context, selector string) ([]ElementOps, error)
	Evaluate(ctx context.Context, expression string, arg interface{}) (interface{}, error)

	Click(ctx context.Context, selector string, opts ClickOptions) error
	DblClick(ctx context.Context, selector string, opts ClickOptions) error
	Fill(ctx context.Context, selector, value string, opts FillOptions) error
	Hover(ctx context.Context, selector string, opts HoverOptions) error
	Check(ctx context.Context, selector string, opts CheckOptions) error
	Uncheck(ctx context.Context, selector string, opts CheckOptions) error
	SelectOption(ctx context.Context, selector string, values SelectOptionValues, opts SelectOptionOptions) ([]string, error)
	SetInputFiles(ctx context.Context, selector string, files []InputFile, opts SetInputFilesOptions) error
	Focus(ctx context.Context, selector string, timeout float64) error

	GetAttribute(ctx context.Context, selector, name string, timeout float64) (*string, error)
	TextContent(ctx context.Context, selector string, timeout float64) (*string, error)
	InnerText(ctx context.Context, selector string, timeout float64) (string, error)
	InnerHTML(ctx context.Context, selector string, timeout float64) (string, error)

	IsVisible(ctx context.Context, selector string, timeout float64) (bool, error)
	IsHidden(ctx context.Context, selector string, timeout float64) (bool, error)
	IsEnabled(ctx context.Context, selector string, timeout float64) (bool, error)
	IsDisabled(ctx context.Context, selector string, timeout float64) (bool, error)
	IsChecked(ctx context.Context, selector string, timeout float64) (bool, error)
	IsEditable(ctx context.Context, selector string, timeout float64) (bool, error)
}
