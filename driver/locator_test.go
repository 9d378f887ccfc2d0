package driver

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/mock"
	"gitlab.com/webpilot/webpilot"
)

func newClientFixture(t *testing.T) (*Conn, *mock.FrameDelegate) {
	t.Helper()
	conn := NewConn(mock.MakeTransport(), nil)
	fd := mock.MakeFrameDelegate("frame@1")
	if err := conn.objects.Register(fd); err != nil {
		t.Fatalf("register frame fake: %s", err)
	}
	return conn, fd
}

func clientLocator(conn *Conn, sel string) *Locator {
	return newClientLocator(conn, conn.objects.Lookup("frame@1"), sel)
}

// nine elements for "input, select, textarea" in document order, each
// tagged so tests can tell them apart
func makeUnionElements(n int) []webpilot.ElementOps {
	elements := make([]webpilot.ElementOps, n)
	for i := 0; i < n; i++ {
		el := mock.MakeElement()
		value := fmt.Sprintf("v%d", i)
		el.GetAttributeFn = func(string) (*string, error) { return &value, nil }
		el.TextContentFn = func() (*string, error) { return &value, nil }
		elements[i] = el
	}
	return elements
}

func TestCompoundNthSelectsUnionIndex(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := makeUnionElements(9)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	loc := clientLocator(conn, "input, select, textarea")
	nth, err := loc.Nth(context.Background(), 7)
	if err != nil {
		t.Fatalf("nth failed: %s", err)
	}
	if nth.Selector() != "(input, select, textarea)>>>nth-index-7" {
		t.Fatalf("expected marker selector, got %s", nth.Selector())
	}

	value, err := nth.GetAttribute(context.Background(), "value", 0)
	if err != nil {
		t.Fatalf("getAttribute failed: %s", err)
	}
	if value == nil || *value != "v7" {
		t.Fatalf("expected 8th union element, got %v", value)
	}
	// the base query must run against the plain compound selector
	if len(fd.QueriedAll) != 1 || fd.QueriedAll[0] != "input, select, textarea" {
		t.Fatalf("queried wrong base selector: %v", fd.QueriedAll)
	}
}

// resolve(nth(selector, i)) == query_selector_all(selector)[i]
func TestNthRoundTripProperty(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := makeUnionElements(5)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	loc := clientLocator(conn, "input, select, textarea")
	for i := 0; i < 5; i++ {
		nth, err := loc.Nth(context.Background(), i)
		if err != nil {
			t.Fatalf("nth(%d) failed: %s", i, err)
		}
		got, err := nth.TextContent(context.Background(), 0)
		if err != nil {
			t.Fatalf("textContent failed: %s", err)
		}
		want, _ := elements[i].TextContent(context.Background())
		if got == nil || *got != *want {
			t.Fatalf("nth(%d) resolved to %v, want %s", i, got, *want)
		}
	}
}

func TestMarkerIndexOutOfRange(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := makeUnionElements(2)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	loc := clientLocator(conn, "(input)>>>nth-index-2")

	value, err := loc.GetAttribute(context.Background(), "value", 0)
	if err != nil {
		t.Fatalf("out of range attribute should be absent, got error %s", err)
	}
	if value != nil {
		t.Fatalf("out of range must not return another element's value, got %s", *value)
	}

	if err := loc.Fill(context.Background(), "x", webpilot.FillOptions{}); !errors.Is(err, webpilot.ErrTargetNotFound) {
		t.Fatalf("fill out of range: expected target not found, got %v", err)
	}

	count, err := loc.Count(context.Background())
	if err != nil || count != 0 {
		t.Fatalf("expected count 0, got %d (%v)", count, err)
	}
}

func TestClearIsFillEmpty(t *testing.T) {
	conn, fd := newClientFixture(t)

	loc := clientLocator(conn, "#name")
	opts := webpilot.FillOptions{Timeout: 500}
	if err := loc.Clear(context.Background(), opts); err != nil {
		t.Fatalf("clear failed: %s", err)
	}
	if err := loc.Clear(context.Background(), opts); err != nil {
		t.Fatalf("second clear failed: %s", err)
	}

	if !fd.FillCalled {
		t.Fatalf("clear must delegate to fill")
	}
}

func TestClearFillValueEmpty(t *testing.T) {
	conn, fd := newClientFixture(t)
	var filled []string
	fd.FillFn = func(sel, value string, opts webpilot.FillOptions) error {
		filled = append(filled, value)
		return nil
	}

	loc := clientLocator(conn, "#name")
	if err := loc.Clear(context.Background(), webpilot.FillOptions{}); err != nil {
		t.Fatalf("clear failed: %s", err)
	}
	if len(filled) != 1 || filled[0] != "" {
		t.Fatalf("expected fill with empty string, got %v", filled)
	}
}

func TestFrameGoneFailsEverything(t *testing.T) {
	conn := NewConn(mock.MakeTransport(), nil)
	loc := newClientLocator(conn, conn.objects.Lookup("frame@gone"), "div")
	ctx := context.Background()

	checks := map[string]error{}
	checks["click"] = loc.Click(ctx, webpilot.ClickOptions{})
	checks["fill"] = loc.Fill(ctx, "x", webpilot.FillOptions{})
	checks["press"] = loc.Press(ctx, "Enter", webpilot.PressOptions{})
	_, checks["text"] = loc.TextContent(ctx, 0)
	_, checks["count"] = loc.Count(ctx)
	_, checks["visible"] = loc.IsVisible(ctx, 0)
	_, checks["value"] = loc.InputValue(ctx, 0)

	for op, err := range checks {
		if !errors.Is(err, webpilot.ErrTargetNotFound) {
			t.Fatalf("%s on torn down frame: expected target not found, got %v", op, err)
		}
	}
}

func TestUnsafeXPathUsesEvaluator(t *testing.T) {
	conn, fd := newClientFixture(t)
	fd.EvaluateFn = func(expression string, arg interface{}) (interface{}, error) {
		return "from script", nil
	}

	loc := clientLocator(conn, "xpath=//span/ancestor::div")
	text, err := loc.TextContent(context.Background(), 0)
	if err != nil {
		t.Fatalf("textContent failed: %s", err)
	}
	if text == nil || *text != "from script" {
		t.Fatalf("expected script result, got %v", text)
	}
	if !fd.EvaluateCalled {
		t.Fatalf("unsafe xpath must go through the evaluator")
	}
	if fd.TextContentCalled {
		t.Fatalf("unsafe xpath must never hit the native query path first")
	}
}

func TestUnsafeXPathFallsBackOnce(t *testing.T) {
	conn, fd := newClientFixture(t)
	fd.EvaluateFn = func(expression string, arg interface{}) (interface{}, error) {
		return nil, errors.New("script blocked")
	}
	native := "native"
	fd.TextContentFn = func(sel string, timeout float64) (*string, error) {
		return &native, nil
	}

	loc := clientLocator(conn, "xpath=//input | //select")
	text, err := loc.TextContent(context.Background(), 0)
	if err != nil {
		t.Fatalf("fallback failed: %s", err)
	}
	if text == nil || *text != "native" {
		t.Fatalf("expected native fallback result, got %v", text)
	}
	if !fd.EvaluateCalled || !fd.TextContentCalled {
		t.Fatalf("expected script attempt then exactly one native retry")
	}
}

func TestPressResolvesSingleElement(t *testing.T) {
	conn, fd := newClientFixture(t)
	el := mock.MakeElement()
	fd.QuerySelectorFn = func(sel string) (webpilot.ElementOps, error) {
		return el, nil
	}

	loc := clientLocator(conn, "#field")
	if err := loc.Press(context.Background(), "Enter", webpilot.PressOptions{}); err != nil {
		t.Fatalf("press failed: %s", err)
	}
	if !el.PressCalled {
		t.Fatalf("press must act on the resolved element")
	}
}

func TestPressNoMatch(t *testing.T) {
	conn, _ := newClientFixture(t)
	loc := clientLocator(conn, "#missing")
	err := loc.Press(context.Background(), "Enter", webpilot.PressOptions{})
	if !errors.Is(err, webpilot.ErrTargetNotFound) {
		t.Fatalf("expected target not found, got %v", err)
	}
}

func TestNthLocatorsDoNotAlias(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := []webpilot.ElementOps{mock.MakeElement(), mock.MakeElement()}
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	base := clientLocator(conn, "input")
	first, err := base.Nth(context.Background(), 0)
	if err != nil {
		t.Fatalf("nth(0) failed: %s", err)
	}
	second, err := base.Nth(context.Background(), 1)
	if err != nil {
		t.Fatalf("nth(1) failed: %s", err)
	}
	if first.Selector() == second.Selector() {
		t.Fatalf("distinct indices must synthesize distinct selectors")
	}

	if err := first.Fill(context.Background(), "a", webpilot.FillOptions{}); err != nil {
		t.Fatalf("fill first: %s", err)
	}
	if err := second.Fill(context.Background(), "b", webpilot.FillOptions{}); err != nil {
		t.Fatalf("fill second: %s", err)
	}

	el0 := elements[0].(*mock.Element)
	el1 := elements[1].(*mock.Element)
	if len(el0.FilledWith) != 1 || el0.FilledWith[0] != "a" {
		t.Fatalf("first element saw %v", el0.FilledWith)
	}
	if len(el1.FilledWith) != 1 || el1.FilledWith[0] != "b" {
		t.Fatalf("second element saw %v", el1.FilledWith)
	}
}

func TestClientFirstAndLast(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := makeUnionElements(3)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	loc := clientLocator(conn, "label")
	first, err := loc.First(context.Background())
	if err != nil {
		t.Fatalf("first failed: %s", err)
	}
	if first.Selector() != "label:nth-of-type(1)" {
		t.Fatalf("bad first selector: %s", first.Selector())
	}

	last, err := loc.Last(context.Background())
	if err != nil {
		t.Fatalf("last failed: %s", err)
	}
	if last.Selector() != "label:nth-of-type(3)" {
		t.Fatalf("bad last selector: %s", last.Selector())
	}
}

func TestClientLastEmpty(t *testing.T) {
	conn, fd := newClientFixture(t)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return nil, nil
	}

	loc := clientLocator(conn, "label")
	if _, err := loc.Last(context.Background()); !errors.Is(err, webpilot.ErrTargetNotFound) {
		t.Fatalf("last of zero matches: expected target not found, got %v", err)
	}
}

func TestClientFilterNotImplemented(t *testing.T) {
	conn, _ := newClientFixture(t)
	loc := clientLocator(conn, "div")
	if _, err := loc.Filter(context.Background(), webpilot.FilterOptions{HasText: "x"}); !errors.Is(err, webpilot.ErrNotImplemented) {
		t.Fatalf("expected not implemented, got %v", err)
	}
}

func TestCountCompound(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := makeUnionElements(9)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	loc := clientLocator(conn, "input, select, textarea")
	count, err := loc.Count(context.Background())
	if err != nil {
		t.Fatalf("count failed: %s", err)
	}
	if count != 9 {
		t.Fatalf("expected 9, got %d", count)
	}
}

func TestInputValueMarkerUsesEvaluate(t *testing.T) {
	conn, fd := newClientFixture(t)
	fd.EvaluateFn = func(expression string, arg interface{}) (interface{}, error) {
		return "typed", nil
	}

	loc := clientLocator(conn, "(input, select)>>>nth-index-1")
	value, err := loc.InputValue(context.Background(), 0)
	if err != nil {
		t.Fatalf("inputValue failed: %s", err)
	}
	if value != "typed" {
		t.Fatalf("expected evaluator result, got %q", value)
	}
	if !fd.EvaluateCalled {
		t.Fatalf("marker input value must use the evaluate shortcut")
	}
}

func TestMalformedMarkerFallsThrough(t *testing.T) {
	conn, fd := newClientFixture(t)

	// looks marker-ish but does not parse, must go down the plain path
	loc := clientLocator(conn, "(input)>>>nth-index-oops")
	if err := loc.Fill(context.Background(), "x", webpilot.FillOptions{}); err != nil {
		t.Fatalf("malformed marker must not error: %s", err)
	}
	if !fd.FillCalled {
		t.Fatalf("malformed marker must fall through to the frame fill")
	}
}

func TestAllTextContents(t *testing.T) {
	conn, fd := newClientFixture(t)
	elements := makeUnionElements(3)
	fd.QuerySelectorAllFn = func(sel string) ([]webpilot.ElementOps, error) {
		return elements, nil
	}

	loc := clientLocator(conn, "li")
	texts, err := loc.AllTextContents(context.Background())
	if err != nil {
		t.Fatalf("allTextContents failed: %s", err)
	}
	if len(texts) != 3 || texts[0] != "v0" || texts[2] != "v2" {
		t.Fatalf("bad texts: %v", texts)
	}
}

func TestClientWaitForNotImplemented(t *testing.T) {
	conn, _ := newClientFixture(t)
	loc := clientLocator(conn, "div")
	err := loc.WaitFor(context.Background(), webpilot.WaitForOptions{State: webpilot.WaitVisible, Timeout: 100})
	if !errors.Is(err, webpilot.ErrNotImplemented) {
		t.Fatalf("expected not implemented, got %v", err)
	}
}

func waitUntil(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
