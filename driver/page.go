package driver

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gitlab.com/webpilot/proto"
	"gitlab.com/webpilot/webpilot"
)

// Page is a thin handle over the peer's page object, enough to reach
// the main frame and build locators from it.
type Page struct {
	object
	mainFrame proto.Handle
}

func newPage(c *Conn, guid string, initializer json.RawMessage) (*Page, error) {
	init := struct {
		MainFrame proto.OnlyGUID `json:"mainFrame"`
	}{}
	if err := json.Unmarshal(initializer, &init); err != nil {
		return nil, errors.Wrap(webpilot.ErrInvalidReply, err.Error())
	}
	return &Page{
		object:    object{guid: guid, typ: "Page", conn: c},
		mainFrame: c.objects.Lookup(init.MainFrame.GUID),
	}, nil
}

// MainFrame of the page, fails with target not found once it is gone
func (p *Page) MainFrame() (*Frame, error) {
	obj, ok := p.mainFrame.Get()
	if !ok {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, "main frame gone")
	}
	frame, ok := obj.(*Frame)
	if !ok {
		return nil, errors.Wrap(webpilot.ErrTargetNotFound, "main frame gone")
	}
	return frame, nil
}

// Locator builds a client synthesized locator rooted at the main frame
func (p *Page) Locator(sel string) (*Locator, error) {
	frame, err := p.MainFrame()
	if err != nil {
		return nil, err
	}
	return frame.Locator(sel), nil
}
