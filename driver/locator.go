package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"gitlab.com/webpilot/proto"
	"gitlab.com/webpilot/selector"
	"gitlab.com/webpilot/webpilot"
)

// Locator binds a selector to an owning frame and re-resolves it on
// every interaction. Exactly one resolution mode is active per
// instance, fixed at construction:
//
// Registry backed: guid is set, every call is a message addressed to
// that guid and the peer does resolution, auto-waiting and retry.
//
// Client synthesized: guid is empty, every call re-resolves the
// selector through the frame delegate at the instant it runs, no
// retry. The frame reference is weak, a torn down frame fails every
// operation with target not found.
type Locator struct {
	conn    *Conn
	guid    string
	localID string
	sel     string
	frame   proto.Handle
}

func newRegistryLocator(c *Conn, guid string, initializer json.RawMessage) (*Locator, error) {
	init := struct {
		Selector string         `json:"selector"`
		Frame    proto.OnlyGUID `json:"frame"`
	}{}
	if err := json.Unmarshal(initializer, &init); err != nil {
		return nil, errors.Wrap(webpilot.ErrInvalidReply, err.Error())
	}
	return &Locator{
		conn:  c,
		guid:  guid,
		sel:   init.Selector,
		frame: c.objects.Lookup(init.Frame.GUID),
	}, nil
}

// newClientLocator registers the locator in the session's client side
// registry so its lifetime rules mirror peer owned objects.
func newClientLocator(c *Conn, frame proto.Handle, sel string) *Locator {
	l := &Locator{
		conn:    c,
		localID: uuid.NewV4().String(),
		sel:     sel,
		frame:   frame,
	}
	if err := c.local.Register(l); err != nil {
		log.Debug().Err(err).Str("selector", sel).Msg("client locator not tracked")
	}
	return l
}

// GUID of this locator, the peer assigned guid or the locally minted
// id for client synthesized instances
func (l *Locator) GUID() string {
	if l.guid != "" {
		return l.guid
	}
	return l.localID
}

// TypeTag of this object
func (l *Locator) TypeTag() string { return "Locator" }

// Selector text this locator resolves
func (l *Locator) Selector() string { return l.sel }

func (l *Locator) registryBacked() bool { return l.guid != "" }

// send a method addressed to this locator's own guid. A locator the
// peer already disposed fails with target not found, never stale data.
func (l *Locator) send(ctx context.Context, method string, params interface{}, timeoutMS float64) (json.RawMessage, error) {
	if _, ok := l.conn.objects.Get(l.guid); !ok {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, "locator disposed")
	}
	return l.conn.send(ctx, l.guid, method, params, timeoutMS)
}

func (l *Locator) delegate() (webpilot.FrameDelegate, error) {
	obj, ok := l.frame.Get()
	if !ok {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, "frame gone")
	}
	d, ok := obj.(webpilot.FrameDelegate)
	if !ok {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, "frame gone")
	}
	return d, nil
}

// marked parses the internal nth marker forms, both the compound
// "(base)>>>nth-index-N" shape and the synthesized ":nth-of-type(N)"
// shape. Malformed markers fall through to the default path.
func (l *Locator) marked() (base string, index int, ok bool) {
	if base, index, ok = selector.ParseIndexed(l.sel); ok {
		return base, index, true
	}
	return selector.ParseNth(l.sel)
}

// resolveMarked runs the plain base query and indexes into the ordered
// result. handled=false means the selector carries no marker. An out of
// range index resolves to a nil element, callers decide whether that is
// an absent value or target not found.
func (l *Locator) resolveMarked(ctx context.Context, d webpilot.FrameDelegate) (el webpilot.ElementOps, handled bool, err error) {
	base, index, ok := l.marked()
	if !ok {
		return nil, false, nil
	}
	elements, err := d.QuerySelectorAll(ctx, base)
	if err != nil {
		return nil, true, err
	}
	if index >= len(elements) {
		return nil, true, nil
	}
	return elements[index], true, nil
}

// resolveSingle resolves the selector to exactly one element, needed by
// primitives that operate on a handle rather than a selector.
func (l *Locator) resolveSingle(ctx context.Context, d webpilot.FrameDelegate) (webpilot.ElementOps, error) {
	el, handled, err := l.resolveMarked(ctx, d)
	if err != nil {
		return nil, err
	}
	if handled {
		if el == nil {
			return nil, errors.Wrap(webpilot.ErrTargetNotFound, "index out of range")
		}
		return el, nil
	}
	el, err = d.QuerySelector(ctx, l.sel)
	if err != nil {
		return nil, err
	}
	if el == nil {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, l.sel)
	}
	return el, nil
}

func (l *Locator) unsafeXPath() bool {
	return selector.IsXPath(l.sel) && !selector.SafeXPath(l.sel)
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "\\'")
}

// Click the element this locator resolves to
func (l *Locator) Click(ctx context.Context, opts webpilot.ClickOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "click", opts, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	if el, handled, err := l.resolveMarked(ctx, d); handled {
		if err != nil {
			return err
		}
		if el == nil {
			return errors.Wrap(webpilot.ErrTargetNotFound, "index out of range")
		}
		return el.Click(ctx, opts)
	}
	return d.Click(ctx, l.sel, opts)
}

// DblClick the element this locator resolves to
func (l *Locator) DblClick(ctx context.Context, opts webpilot.ClickOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "dblclick", opts, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	return d.DblClick(ctx, l.sel, opts)
}

// Fill the element this locator resolves to with value
func (l *Locator) Fill(ctx context.Context, value string, opts webpilot.FillOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "fill", valueParams{Value: value, FillOptions: opts}, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	if el, handled, err := l.resolveMarked(ctx, d); handled {
		if err != nil {
			return err
		}
		if el == nil {
			return errors.Wrap(webpilot.ErrTargetNotFound, "index out of range")
		}
		return el.Fill(ctx, value, opts)
	}
	return d.Fill(ctx, l.sel, value, opts)
}

// Clear the input this locator resolves to. Registry backed mode sends
// the protocol clear method, client synthesized mode is Fill("") with
// the same option set, there is no native clear primitive in that mode.
func (l *Locator) Clear(ctx context.Context, opts webpilot.FillOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "clear", opts, opts.Timeout)
		return err
	}
	return l.Fill(ctx, "", opts)
}

// Hover over the element this locator resolves to
func (l *Locator) Hover(ctx context.Context, opts webpilot.HoverOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "hover", opts, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	return d.Hover(ctx, l.sel, opts)
}

// Check the checkbox this locator resolves to
func (l *Locator) Check(ctx context.Context, opts webpilot.CheckOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "check", opts, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	return d.Check(ctx, l.sel, opts)
}

// Uncheck the checkbox this locator resolves to
func (l *Locator) Uncheck(ctx context.Context, opts webpilot.CheckOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "uncheck", opts, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	return d.Uncheck(ctx, l.sel, opts)
}

// Press a key on the element this locator resolves to. The underlying
// primitive operates on one handle, so the selector is first resolved
// to a single concrete element.
func (l *Locator) Press(ctx context.Context, key string, opts webpilot.PressOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "press", keyParams{Key: key, PressOptions: opts}, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	el, err := l.resolveSingle(ctx, d)
	if err != nil {
		return err
	}
	return el.Press(ctx, key, opts)
}

// Type text into the element this locator resolves to, key by key.
// Resolves to a single concrete element like Press.
func (l *Locator) Type(ctx context.Context, text string, opts webpilot.TypeOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "type", textParams{Text: text, TypeOptions: opts}, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	el, err := l.resolveSingle(ctx, d)
	if err != nil {
		return err
	}
	return el.Type(ctx, text, opts)
}

// SelectOption on the select element this locator resolves to
func (l *Locator) SelectOption(ctx context.Context, values webpilot.SelectOptionValues, opts webpilot.SelectOptionOptions) ([]string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "selectOption", selectOptionParams{SelectOptionValues: values, SelectOptionOptions: opts}, opts.Timeout)
		if err != nil {
			return nil, err
		}
		return stringsReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return nil, err
	}
	return d.SelectOption(ctx, l.sel, values, opts)
}

// SetInputFiles on the file input this locator resolves to
func (l *Locator) SetInputFiles(ctx context.Context, files []webpilot.InputFile, opts webpilot.SetInputFilesOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "setInputFiles", filesParams{Files: files, SetInputFilesOptions: opts}, opts.Timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	if el, handled, err := l.resolveMarked(ctx, d); handled {
		if err != nil {
			return err
		}
		if el == nil {
			return errors.Wrap(webpilot.ErrTargetNotFound, "index out of range")
		}
		return el.SetInputFiles(ctx, files, opts)
	}
	return d.SetInputFiles(ctx, l.sel, files, opts)
}

// Focus the element this locator resolves to
func (l *Locator) Focus(ctx context.Context, timeout float64) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "focus", timeoutParams{Timeout: timeout}, timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	return d.Focus(ctx, l.sel, timeout)
}

const blurScript = `(() => {
	const element = document.querySelector('%s');
	if (element) { element.blur(); }
	return null;
})()`

// Blur the element this locator resolves to
func (l *Locator) Blur(ctx context.Context, timeout float64) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "blur", timeoutParams{Timeout: timeout}, timeout)
		return err
	}
	d, err := l.delegate()
	if err != nil {
		return err
	}
	_, err = d.Evaluate(ctx, fmt.Sprintf(blurScript, escapeSingleQuotes(l.sel)), nil)
	return err
}

const xpathTextScript = `(function() {
	try {
		const result = document.evaluate('%s', document, null, XPathResult.FIRST_ORDERED_NODE_TYPE, null);
		const node = result.singleNodeValue;
		return node ? node.textContent : null;
	} catch (error) {
		return null;
	}
})()`

// xpathTextContent evaluates an unsafe XPath expression in page via
// document.evaluate instead of the native query path that is known to
// hang. A script failure falls back to the native path exactly once.
func (l *Locator) xpathTextContent(ctx context.Context, d webpilot.FrameDelegate, timeout float64) (*string, error) {
	expr := escapeSingleQuotes(selector.XPathExpression(l.sel))
	value, err := d.Evaluate(ctx, fmt.Sprintf(xpathTextScript, expr), nil)
	if err != nil {
		log.Debug().Err(err).Str("selector", l.sel).Msg("xpath fallback script failed, using native path")
		return d.TextContent(ctx, l.sel, 0)
	}
	if value == nil {
		return nil, nil
	}
	if s, ok := value.(string); ok {
		return &s, nil
	}
	s := fmt.Sprint(value)
	return &s, nil
}

// TextContent of the element this locator resolves to, nil when absent
// or the marker index is out of range.
func (l *Locator) TextContent(ctx context.Context, timeout float64) (*string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "textContent", timeoutParams{Timeout: timeout}, timeout)
		if err != nil {
			return nil, err
		}
		return optStringReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return nil, err
	}
	if l.unsafeXPath() {
		return l.xpathTextContent(ctx, d, timeout)
	}
	if el, handled, err := l.resolveMarked(ctx, d); handled {
		if err != nil || el == nil {
			return nil, err
		}
		return el.TextContent(ctx)
	}
	return d.TextContent(ctx, l.sel, timeout)
}

// InnerText of the element this locator resolves to
func (l *Locator) InnerText(ctx context.Context, timeout float64) (string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "innerText", timeoutParams{Timeout: timeout}, timeout)
		if err != nil {
			return "", err
		}
		return stringReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return "", err
	}
	return d.InnerText(ctx, l.sel, timeout)
}

// InnerHTML of the element this locator resolves to
func (l *Locator) InnerHTML(ctx context.Context, timeout float64) (string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "innerHTML", timeoutParams{Timeout: timeout}, timeout)
		if err != nil {
			return "", err
		}
		return stringReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return "", err
	}
	return d.InnerHTML(ctx, l.sel, timeout)
}

// GetAttribute of the element this locator resolves to, nil when the
// attribute is absent or the marker index is out of range.
func (l *Locator) GetAttribute(ctx context.Context, name string, timeout float64) (*string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "getAttribute", nameTimeoutParams{Name: name, Timeout: timeout}, timeout)
		if err != nil {
			return nil, err
		}
		return optStringReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return nil, err
	}
	if el, handled, err := l.resolveMarked(ctx, d); handled {
		if err != nil || el == nil {
			return nil, err
		}
		return el.GetAttribute(ctx, name)
	}
	return d.GetAttribute(ctx, l.sel, name, timeout)
}

const inputValueScript = `(() => {
	const element = document.querySelector('%s');
	return element ? (element.value || '') : '';
})()`

const indexedInputValueScript = `(() => {
	const elements = document.querySelectorAll('%s');
	const element = elements[%d];
	return element ? (element.value || '') : '';
})()`

// InputValue of the element this locator resolves to. Client
// synthesized mode goes through the delegate's evaluate shortcut.
func (l *Locator) InputValue(ctx context.Context, timeout float64) (string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "inputValue", timeoutParams{Timeout: timeout}, timeout)
		if err != nil {
			return "", err
		}
		return stringReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return "", err
	}
	script := fmt.Sprintf(inputValueScript, escapeSingleQuotes(l.sel))
	if base, index, ok := l.marked(); ok {
		script = fmt.Sprintf(indexedInputValueScript, escapeSingleQuotes(base), index)
	}
	value, err := d.Evaluate(ctx, script, nil)
	if err != nil {
		return "", err
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", errors.Wrap(webpilot.ErrInvalidReply, "input value not a string")
}

const xpathCountScript = `(function() {
	try {
		const result = document.evaluate('%s', document, null, XPathResult.ORDERED_NODE_SNAPSHOT_TYPE, null);
		return result.snapshotLength;
	} catch (error) {
		return -1;
	}
})()`

// Count of elements matching this locator right now
func (l *Locator) Count(ctx context.Context) (int, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "count", nil, 0)
		if err != nil {
			return 0, err
		}
		return intReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return 0, err
	}
	if l.unsafeXPath() {
		expr := escapeSingleQuotes(selector.XPathExpression(l.sel))
		value, err := d.Evaluate(ctx, fmt.Sprintf(xpathCountScript, expr), nil)
		if err == nil {
			if n, ok := value.(float64); ok && n >= 0 {
				return int(n), nil
			}
		}
		log.Debug().Str("selector", l.sel).Msg("xpath count script failed, using native path")
	}
	if base, index, ok := l.marked(); ok {
		elements, err := d.QuerySelectorAll(ctx, base)
		if err != nil {
			return 0, err
		}
		if index < len(elements) {
			return 1, nil
		}
		return 0, nil
	}
	elements, err := d.QuerySelectorAll(ctx, l.sel)
	if err != nil {
		return 0, err
	}
	return len(elements), nil
}

func (l *Locator) stateQuery(ctx context.Context, method string, query func(webpilot.FrameDelegate) (bool, error), timeout float64) (bool, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, method, timeoutParams{Timeout: timeout}, timeout)
		if err != nil {
			return false, err
		}
		return boolReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return false, err
	}
	return query(d)
}

// IsVisible state of the element this locator resolves to
func (l *Locator) IsVisible(ctx context.Context, timeout float64) (bool, error) {
	return l.stateQuery(ctx, "isVisible", func(d webpilot.FrameDelegate) (bool, error) {
		return d.IsVisible(ctx, l.sel, timeout)
	}, timeout)
}

// IsHidden state of the element this locator resolves to
func (l *Locator) IsHidden(ctx context.Context, timeout float64) (bool, error) {
	return l.stateQuery(ctx, "isHidden", func(d webpilot.FrameDelegate) (bool, error) {
		return d.IsHidden(ctx, l.sel, timeout)
	}, timeout)
}

// IsEnabled state of the element this locator resolves to
func (l *Locator) IsEnabled(ctx context.Context, timeout float64) (bool, error) {
	return l.stateQuery(ctx, "isEnabled", func(d webpilot.FrameDelegate) (bool, error) {
		return d.IsEnabled(ctx, l.sel, timeout)
	}, timeout)
}

// IsDisabled state of the element this locator resolves to
func (l *Locator) IsDisabled(ctx context.Context, timeout float64) (bool, error) {
	return l.stateQuery(ctx, "isDisabled", func(d webpilot.FrameDelegate) (bool, error) {
		return d.IsDisabled(ctx, l.sel, timeout)
	}, timeout)
}

// IsChecked state of the element this locator resolves to
func (l *Locator) IsChecked(ctx context.Context, timeout float64) (bool, error) {
	return l.stateQuery(ctx, "isChecked", func(d webpilot.FrameDelegate) (bool, error) {
		return d.IsChecked(ctx, l.sel, timeout)
	}, timeout)
}

// IsEditable state of the element this locator resolves to
func (l *Locator) IsEditable(ctx context.Context, timeout float64) (bool, error) {
	return l.stateQuery(ctx, "isEditable", func(d webpilot.FrameDelegate) (bool, error) {
		return d.IsEditable(ctx, l.sel, timeout)
	}, timeout)
}

// AllTextContents of every element matching this locator right now
func (l *Locator) AllTextContents(ctx context.Context) ([]string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "allTextContents", nil, 0)
		if err != nil {
			return nil, err
		}
		return stringsReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return nil, err
	}
	elements, err := d.QuerySelectorAll(ctx, l.sel)
	if err != nil {
		return nil, err
	}
	texts := make([]string, len(elements))
	for i, el := range elements {
		t, err := el.TextContent(ctx)
		if err != nil {
			return nil, err
		}
		if t != nil {
			texts[i] = *t
		}
	}
	return texts, nil
}

const allInnerTextsScript = `(() => Array.from(document.querySelectorAll('%s')).map((e) => e.innerText))()`

// AllInnerTexts of every element matching this locator right now
func (l *Locator) AllInnerTexts(ctx context.Context) ([]string, error) {
	if l.registryBacked() {
		raw, err := l.send(ctx, "allInnerTexts", nil, 0)
		if err != nil {
			return nil, err
		}
		return stringsReply(raw)
	}
	d, err := l.delegate()
	if err != nil {
		return nil, err
	}
	value, err := d.Evaluate(ctx, fmt.Sprintf(allInnerTextsScript, escapeSingleQuotes(l.sel)), nil)
	if err != nil {
		return nil, err
	}
	items, ok := value.([]interface{})
	if !ok {
		return nil, errors.Wrap(webpilot.ErrInvalidReply, "inner texts not a list")
	}
	texts := make([]string, len(items))
	for i, item := range items {
		if s, ok := item.(string); ok {
			texts[i] = s
		}
	}
	return texts, nil
}

// WaitFor the locator to reach a state, registry backed only since a
// direct query has no retry loop.
func (l *Locator) WaitFor(ctx context.Context, opts webpilot.WaitForOptions) error {
	if l.registryBacked() {
		_, err := l.send(ctx, "waitFor", opts, opts.Timeout)
		return err
	}
	return errors.Wrap(webpilot.ErrNotImplemented, "waitFor on a client synthesized locator")
}

// First narrows to the first match
func (l *Locator) First(ctx context.Context) (*Locator, error) {
	if l.registryBacked() {
		return l.chain(ctx, "first", nil)
	}
	return l.Nth(ctx, 0)
}

// Last narrows to the last match. Client synthesized mode resolves the
// count at call time, a snapshot rather than a live last.
func (l *Locator) Last(ctx context.Context) (*Locator, error) {
	if l.registryBacked() {
		return l.chain(ctx, "last", nil)
	}
	count, err := l.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, l.sel)
	}
	return l.Nth(ctx, count-1)
}

type indexParams struct {
	Index int `json:"index"`
}

// Nth narrows to the index-th match, 0 based. Registry backed mode asks
// the peer for a new guid. Client synthesized mode synthesizes a new
// selector: the marker form for compound selectors, since appending
// :nth-of-type to a grouped selector applies per clause instead of to
// the unioned result, and plain :nth-of-type otherwise. The new locator
// shares this locator's frame reference.
func (l *Locator) Nth(ctx context.Context, index int) (*Locator, error) {
	if l.registryBacked() {
		return l.chain(ctx, "nth", indexParams{Index: index})
	}
	var sel string
	if selector.IsCompound(l.sel) {
		sel = selector.SynthesizeIndexed(l.sel, index)
	} else {
		sel = selector.SynthesizeNth(l.sel, index)
	}
	return newClientLocator(l.conn, l.frame, sel), nil
}

// Filter narrows to elements matching or excluding text and
// sub-selector criteria. Peer resolved, registry backed only.
func (l *Locator) Filter(ctx context.Context, opts webpilot.FilterOptions) (*Locator, error) {
	if l.registryBacked() {
		return l.chain(ctx, "filter", opts)
	}
	return nil, errors.Wrap(webpilot.ErrNotImplemented, "filter on a client synthesized locator")
}

// chain requests a new server assigned locator guid and resolves it
// from the registry, the peer announces the object before replying.
func (l *Locator) chain(ctx context.Context, method string, params interface{}) (*Locator, error) {
	raw, err := l.send(ctx, method, params, 0)
	if err != nil {
		return nil, err
	}
	guid, err := onlyGUID(raw)
	if err != nil {
		return nil, err
	}
	obj, ok := l.conn.objects.Get(guid)
	if !ok {
		return nil, errors.Wrap(webpilot.ErrInvalidReply, "peer replied with unknown locator guid")
	}
	loc, ok := obj.(*Locator)
	if !ok {
		return nil, errors.Wrap(webpilot.ErrInvalidReply, "guid is not a locator")
	}
	return loc, nil
}

type timeoutParams struct {
	Timeout float64 `json:"timeout,omitempty"`
}

type nameTimeoutParams struct {
	Name    string  `json:"name"`
	Timeout float64 `json:"timeout,omitempty"`
}
