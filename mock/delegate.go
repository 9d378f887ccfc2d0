package mock

import (
	"context"

	"gitlab.com/webpilot/webpilot"
)

// FrameDelegate is a scripted frame for locator dispatch tests. It
// satisfies proto.Object so tests can park it in a registry and hand
// locators a weak reference to it.
type FrameDelegate struct {
	Guid string

	QuerySelectorFn     func(selector string) (webpilot.ElementOps, error)
	QuerySelectorCalled bool

	QuerySelectorAllFn     func(selector string) ([]webpilot.ElementOps, error)
	QuerySelectorAllCalled bool
	QueriedAll             []string

	EvaluateFn     func(expression string, arg interface{}) (interface{}, error)
	EvaluateCalled bool

	ClickFn     func(selector string, opts webpilot.ClickOptions) error
	ClickCalled bool

	DblClickFn     func(selector string, opts webpilot.ClickOptions) error
	DblClickCalled bool

	FillFn     func(selector, value string, opts webpilot.FillOptions) error
	FillCalled bool

	HoverFn     func(selector string, opts webpilot.HoverOptions) error
	HoverCalled bool

	CheckFn     func(selector string, opts webpilot.CheckOptions) error
	CheckCalled bool

	UncheckFn     func(selector string, opts webpilot.CheckOptions) error
	UncheckCalled bool

	SelectOptionFn     func(selector string, values webpilot.SelectOptionValues, opts webpilot.SelectOptionOptions) ([]string, error)
	SelectOptionCalled bool

	SetInputFilesFn     func(selector string, files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error
	SetInputFilesCalled bool

	FocusFn     func(selector string, timeout float64) error
	FocusCalled bool

	GetAttributeFn     func(selector, name string, timeout float64) (*string, error)
	GetAttributeCalled bool

	TextContentFn     func(selector string, timeout float64) (*string, error)
	TextContentCalled bool

	InnerTextFn     func(selector string, timeout float64) (string, error)
	InnerTextCalled bool

	InnerHTMLFn     func(selector string, timeout float64) (string, error)
	InnerHTMLCalled bool

	IsVisibleFn  func(selector string, timeout float64) (bool, error)
	IsHiddenFn   func(selector string, timeout float64) (bool, error)
	IsEnabledFn  func(selector string, timeout float64) (bool, error)
	IsDisabledFn func(selector string, timeout float64) (bool, error)
	IsCheckedFn  func(selector string, timeout float64) (bool, error)
	IsEditableFn func(selector string, timeout float64) (bool, error)
}

// GUID of this fake in a registry
func (f *FrameDelegate) GUID() string { return f.Guid }

// TypeTag of this fake
func (f *FrameDelegate) TypeTag() string { return "Frame" }

// QuerySelector resolves one element
func (f *FrameDelegate) QuerySelector(ctx context.Context, selector string) (webpilot.ElementOps, error) {
	f.QuerySelectorCalled = true
	return f.QuerySelectorFn(selector)
}

// QuerySelectorAll resolves all matches in document order
func (f *FrameDelegate) QuerySelectorAll(ctx context.Context, selector string) ([]webpilot.ElementOps, error) {
	f.QuerySelectorAllCalled = true
	f.QueriedAll = append(f.QueriedAll, selector)
	return f.QuerySelectorAllFn(selector)
}

// Evaluate an in-page expression
func (f *FrameDelegate) Evaluate(ctx context.Context, expression string, arg interface{}) (interface{}, error) {
	f.EvaluateCalled = true
	return f.EvaluateFn(expression, arg)
}

// Click by selector
func (f *FrameDelegate) Click(ctx context.Context, selector string, opts webpilot.ClickOptions) error {
	f.ClickCalled = true
	return f.ClickFn(selector, opts)
}

// DblClick by selector
func (f *FrameDelegate) DblClick(ctx context.Context, selector string, opts webpilot.ClickOptions) error {
	f.DblClickCalled = true
	return f.DblClickFn(selector, opts)
}

// Fill by selector
func (f *FrameDelegate) Fill(ctx context.Context, selector, value string, opts webpilot.FillOptions) error {
	f.FillCalled = true
	return f.FillFn(selector, value, opts)
}

// Hover by selector
func (f *FrameDelegate) Hover(ctx context.Context, selector string, opts webpilot.HoverOptions) error {
	f.HoverCalled = true
	return f.HoverFn(selector, opts)
}

// Check by selector
func (f *FrameDelegate) Check(ctx context.Context, selector string, opts webpilot.CheckOptions) error {
	f.CheckCalled = true
	return f.CheckFn(selector, opts)
}

// Uncheck by selector
func (f *FrameDelegate) Uncheck(ctx context.Context, selector string, opts webpilot.CheckOptions) error {
	f.UncheckCalled = true
	return f.UncheckFn(selector, opts)
}

// SelectOption by selector
func (f *FrameDelegate) SelectOption(ctx context.Context, selector string, values webpilot.SelectOptionValues, opts webpilot.SelectOptionOptions) ([]string, error) {
	f.SelectOptionCalled = true
	return f.SelectOptionFn(selector, values, opts)
}

// SetInputFiles by selector
func (f *FrameDelegate) SetInputFiles(ctx context.Context, selector string, files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error {
	f.SetInputFilesCalled = true
	return f.SetInputFilesFn(selector, files, opts)
}

// Focus by selector
func (f *FrameDelegate) Focus(ctx context.Context, selector string, timeout float64) error {
	f.FocusCalled = true
	return f.FocusFn(selector, timeout)
}

// GetAttribute by selector
func (f *FrameDelegate) GetAttribute(ctx context.Context, selector, name string, timeout float64) (*string, error) {
	f.GetAttributeCalled = true
	return f.GetAttributeFn(selector, name, timeout)
}

// TextContent by selector
func (f *FrameDelegate) TextContent(ctx context.Context, selector string, timeout float64) (*string, error) {
	f.TextContentCalled = true
	return f.TextContentFn(selector, timeout)
}

// InnerText by selector
func (f *FrameDelegate) InnerText(ctx context.Context, selector string, timeout float64) (string, error) {
	f.InnerTextCalled = true
	return f.InnerTextFn(selector, timeout)
}

// InnerHTML by selector
func (f *FrameDelegate) InnerHTML(ctx context.Context, selector string, timeout float64) (string, error) {
	f.InnerHTMLCalled = true
	return f.InnerHTMLFn(selector, timeout)
}

// IsVisible by selector
func (f *FrameDelegate) IsVisible(ctx context.Context, selector string, timeout float64) (bool, error) {
	return f.IsVisibleFn(selector, timeout)
}

// IsHidden by selector
func (f *FrameDelegate) IsHidden(ctx context.Context, selector string, timeout float64) (bool, error) {
	return f.IsHiddenFn(selector, timeout)
}

// IsEnabled by selector
func (f *FrameDelegate) IsEnabled(ctx context.Context, selector string, timeout float64) (bool, error) {
	return f.IsEnabledFn(selector, timeout)
}

// IsDisabled by selector
func (f *FrameDelegate) IsDisabled(ctx context.Context, selector string, timeout float64) (bool, error) {
	return f.IsDisabledFn(selector, timeout)
}

// IsChecked by selector
func (f *FrameDelegate) IsChecked(ctx context.Context, selector string, timeout float64) (bool, error) {
	return f.IsCheckedFn(selector, timeout)
}

// IsEditable by selector
func (f *FrameDelegate) IsEditable(ctx context.Context, selector string, timeout float64) (bool, error) {
	return f.IsEditableFn(selector, timeout)
}

// MakeFrameDelegate returns a delegate fake whose scripts all succeed
// with zero values.
func MakeFrameDelegate(guid string) *FrameDelegate {
	f := &FrameDelegate{Guid: guid}
	f.QuerySelectorFn = func(string) (webpilot.ElementOps, error) { return nil, nil }
	f.QuerySelectorAllFn = func(string) ([]webpilot.ElementOps, error) { return nil, nil }
	f.EvaluateFn = func(string, interface{}) (interface{}, error) { return nil, nil }
	f.ClickFn = func(string, webpilot.ClickOptions) error { return nil }
	f.DblClickFn = func(string, webpilot.ClickOptions) error { return nil }
	f.FillFn = func(string, string, webpilot.FillOptions) error { return nil }
	f.HoverFn = func(string, webpilot.HoverOptions) error { return nil }
	f.CheckFn = func(string, webpilot.CheckOptions) error { return nil }
	f.UncheckFn = func(string, webpilot.CheckOptions) error { return nil }
	f.SelectOptionFn = func(string, webpilot.SelectOptionValues, webpilot.SelectOptionOptions) ([]string, error) { return nil, nil }
	f.SetInputFilesFn = func(string, []webpilot.InputFile, webpilot.SetInputFilesOptions) error { return nil }
	f.FocusFn = func(string, float64) error { return nil }
	f.GetAttributeFn = func(string, string, float64) (*string, error) { return nil, nil }
	f.TextContentFn = func(string, float64) (*string, error) { return nil, nil }
	f.InnerTextFn = func(string, float64) (string, error) { return "", nil }
	f.InnerHTMLFn = func(string, float64) (string, error) { return "", nil }
	f.IsVisibleFn = func(string, float64) (bool, error) { return false, nil }
	f.IsHiddenFn = func(string, float64) (bool, error) { return false, nil }
	f.IsEnabledFn = func(string, float64) (bool, error) { return false, nil }
	f.IsDisabledFn = func(string, float64) (bool, error) { return false, nil }
	f.IsCheckedFn = func(string, float64) (bool, error) { return false, nil }
	f.IsEditableFn = func(string, float64) (bool, error) { return false, nil }
	return f
}
