package driver

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/mock"
	"gitlab.com/webpilot/proto"
	"gitlab.com/webpilot/webpilot"
)

func deliverCreate(tr *mock.Transport, typ, guid, initializer string) {
	params := fmt.Sprintf(`{"type":%q,"guid":%q`, typ, guid)
	if initializer != "" {
		params += `,"initializer":` + initializer
	}
	params += "}"
	tr.Deliver(&proto.Envelope{Method: proto.MethodCreate, Params: json.RawMessage(params)})
}

func newRemoteFixture(t *testing.T) (*Conn, *mock.Transport) {
	t.Helper()
	tr := mock.MakeTransport()
	conn := NewConn(tr, nil)
	conn.Start()
	t.Cleanup(func() { conn.Close() })

	deliverCreate(tr, "Frame", "frame@1", "")
	deliverCreate(tr, "Locator", "loc@1", `{"selector":"div","frame":{"guid":"frame@1"}}`)
	waitUntil(t, "locator registration", func() bool {
		_, ok := conn.objects.Get("loc@1")
		return ok
	})
	return conn, tr
}

func remoteLocator(t *testing.T, conn *Conn) *Locator {
	t.Helper()
	obj, ok := conn.objects.Get("loc@1")
	if !ok {
		t.Fatalf("locator not registered")
	}
	return obj.(*Locator)
}

func TestRemoteClickAddressesOwnGUID(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		tr.Deliver(&proto.Envelope{ID: env.ID, Result: json.RawMessage(`{}`)})
	}

	loc := remoteLocator(t, conn)
	if err := loc.Click(context.Background(), webpilot.ClickOptions{Timeout: 1000}); err != nil {
		t.Fatalf("click failed: %s", err)
	}

	sent := tr.Sent()
	if len(sent) != 1 {
		t.Fatalf("expected 1 envelope, sent %d", len(sent))
	}
	if sent[0].GUID != "loc@1" || sent[0].Method != "click" {
		t.Fatalf("bad envelope: guid=%s method=%s", sent[0].GUID, sent[0].Method)
	}
}

func TestRemoteClearSendsProtocolClear(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		tr.Deliver(&proto.Envelope{ID: env.ID, Result: json.RawMessage(`{}`)})
	}

	loc := remoteLocator(t, conn)
	if err := loc.Clear(context.Background(), webpilot.FillOptions{}); err != nil {
		t.Fatalf("clear failed: %s", err)
	}
	sent := tr.Sent()
	if len(sent) != 1 || sent[0].Method != "clear" {
		t.Fatalf("registry backed clear must send the clear method, sent %+v", sent)
	}
}

func TestDisposedLocatorFailsClean(t *testing.T) {
	conn, tr := newRemoteFixture(t)

	tr.Deliver(&proto.Envelope{Method: proto.MethodDispose, GUID: "loc@1"})
	loc := &Locator{conn: conn, guid: "loc@1", sel: "div", frame: conn.objects.Lookup("frame@1")}
	waitUntil(t, "disposal", func() bool {
		_, ok := conn.objects.Get("loc@1")
		return !ok
	})

	err := loc.Click(context.Background(), webpilot.ClickOptions{})
	if !errors.Is(err, webpilot.ErrTargetNotFound) {
		t.Fatalf("disposed locator: expected target not found, got %v", err)
	}
	if len(tr.Sent()) != 0 {
		t.Fatalf("disposed locator must not send anything")
	}
}

func TestRemoteTextContent(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		tr.Deliver(&proto.Envelope{ID: env.ID, Result: json.RawMessage(`{"value":"hello"}`)})
	}

	loc := remoteLocator(t, conn)
	text, err := loc.TextContent(context.Background(), 500)
	if err != nil {
		t.Fatalf("textContent failed: %s", err)
	}
	if text == nil || *text != "hello" {
		t.Fatalf("bad text: %v", text)
	}
}

func TestRemoteCount(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		tr.Deliver(&proto.Envelope{ID: env.ID, Result: json.RawMessage(`{"value":4}`)})
	}

	loc := remoteLocator(t, conn)
	count, err := loc.Count(context.Background())
	if err != nil || count != 4 {
		t.Fatalf("expected 4, got %d (%v)", count, err)
	}
}

func TestRemoteChainNth(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		// the peer announces the new locator before replying
		deliverCreate(tr, "Locator", "loc@2", `{"selector":"div >> nth=2","frame":{"guid":"frame@1"}}`)
		tr.Deliver(&proto.Envelope{ID: env.ID, Result: json.RawMessage(`{"guid":"loc@2"}`)})
	}

	loc := remoteLocator(t, conn)
	nth, err := loc.Nth(context.Background(), 2)
	if err != nil {
		t.Fatalf("nth failed: %s", err)
	}
	if nth.GUID() != "loc@2" {
		t.Fatalf("expected peer assigned guid, got %s", nth.GUID())
	}
	sent := tr.Sent()
	if len(sent) != 1 || sent[0].Method != "nth" {
		t.Fatalf("expected one nth call, sent %+v", sent)
	}
}

func TestRemoteFilter(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		deliverCreate(tr, "Locator", "loc@3", `{"selector":"div >> has-text=hi","frame":{"guid":"frame@1"}}`)
		tr.Deliver(&proto.Envelope{ID: env.ID, Result: json.RawMessage(`{"guid":"loc@3"}`)})
	}

	loc := remoteLocator(t, conn)
	filtered, err := loc.Filter(context.Background(), webpilot.FilterOptions{HasText: "hi"})
	if err != nil {
		t.Fatalf("filter failed: %s", err)
	}
	if filtered.GUID() != "loc@3" {
		t.Fatalf("expected peer assigned guid, got %s", filtered.GUID())
	}
}

func TestRemotePeerErrorSurfaces(t *testing.T) {
	conn, tr := newRemoteFixture(t)
	tr.SendFn = func(env *proto.Envelope) {
		tr.Deliver(&proto.Envelope{ID: env.ID, Error: &proto.RemoteError{Message: "Timeout 500ms exceeded"}})
	}

	loc := remoteLocator(t, conn)
	err := loc.Click(context.Background(), webpilot.ClickOptions{})
	if !errors.Is(err, webpilot.ErrTimeout) {
		t.Fatalf("expected timeout taxonomy, got %v", err)
	}
}

func TestConnWaitForPage(t *testing.T) {
	tr := mock.MakeTransport()
	conn := NewConn(tr, nil)
	conn.Start()
	t.Cleanup(func() { conn.Close() })

	deliverCreate(tr, "Frame", "frame@1", "")
	deliverCreate(tr, "Page", "page@1", `{"mainFrame":{"guid":"frame@1"}}`)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	page, err := conn.WaitForPage(ctx)
	if err != nil {
		t.Fatalf("waitForPage failed: %s", err)
	}
	if page.GUID() != "page@1" {
		t.Fatalf("wrong page: %s", page.GUID())
	}

	loc, err := page.Locator("input")
	if err != nil {
		t.Fatalf("locator factory failed: %s", err)
	}
	if loc.registryBacked() {
		t.Fatalf("page factory must build client synthesized locators")
	}
}

func TestConnCloseInvalidatesHandles(t *testing.T) {
	conn, _ := newRemoteFixture(t)
	loc := remoteLocator(t, conn)

	conn.Close()

	err := loc.Click(context.Background(), webpilot.ClickOptions{})
	if !errors.Is(err, webpilot.ErrTargetNotFound) {
		t.Fatalf("closed session: expected target not found, got %v", err)
	}
}

func TestConnIgnoresUnknownType(t *testing.T) {
	tr := mock.MakeTransport()
	conn := NewConn(tr, nil)
	conn.Start()
	t.Cleanup(func() { conn.Close() })

	deliverCreate(tr, "BrowserContext", "ctx@1", "")
	deliverCreate(tr, "Frame", "frame@2", "")
	waitUntil(t, "frame registration", func() bool {
		_, ok := conn.objects.Get("frame@2")
		return ok
	})
	if _, ok := conn.objects.Get("ctx@1"); ok {
		t.Fatalf("unknown type must not be tracked")
	}
}
