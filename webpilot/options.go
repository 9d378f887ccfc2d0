package webpilot

// MouseButton for click style actions
type MouseButton string

// revive:disable:var-naming
const (
	ButtonLeft   MouseButton = "left"
	ButtonMiddle MouseButton = "middle"
	ButtonRight  MouseButton = "right"
)

// KeyboardModifier held down during an action
type KeyboardModifier string

const (
	ModAlt     KeyboardModifier = "Alt"
	ModControl KeyboardModifier = "Control"
	ModMeta    KeyboardModifier = "Meta"
	ModShift   KeyboardModifier = "Shift"
)

// Position relative to the element's top left padding box
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ClickOptions for Click and DblClick. Timeout and Delay are milliseconds,
// zero values are omitted on the wire so the peer applies its defaults.
type ClickOptions struct {
	Button      MouseButton        `json:"button,omitempty"`
	ClickCount  int                `json:"clickCount,omitempty"`
	Delay       float64            `json:"delay,omitempty"`
	Position    *Position          `json:"position,omitempty"`
	Modifiers   []KeyboardModifier `json:"modifiers,omitempty"`
	Force       bool               `json:"force,omitempty"`
	NoWaitAfter bool               `json:"noWaitAfter,omitempty"`
	Timeout     float64            `json:"timeout,omitempty"`
}

// FillOptions for Fill and Clear
type FillOptions struct {
	Force       bool    `json:"force,omitempty"`
	NoWaitAfter bool    `json:"noWaitAfter,omitempty"`
	Timeout     float64 `json:"timeout,omitempty"`
}

// HoverOptions for Hover
type HoverOptions struct {
	Position  *Position          `json:"position,omitempty"`
	Modifiers []KeyboardModifier `json:"modifiers,omitempty"`
	Force     bool               `json:"force,omitempty"`
	Timeout   float64            `json:"timeout,omitempty"`
}

// CheckOptions for Check and Uncheck
type CheckOptions struct {
	Position    *Position `json:"position,omitempty"`
	Force       bool      `json:"force,omitempty"`
	NoWaitAfter bool      `json:"noWaitAfter,omitempty"`
	Timeout     float64   `json:"timeout,omitempty"`
}

// PressOptions for Press
type PressOptions struct {
	Delay       float64 `json:"delay,omitempty"`
	NoWaitAfter bool    `json:"noWaitAfter,omitempty"`
	Timeout     float64 `json:"timeout,omitempty"`
}

// TypeOptions for Type
type TypeOptions struct {
	Delay       float64 `json:"delay,omitempty"`
	NoWaitAfter bool    `json:"noWaitAfter,omitempty"`
	Timeout     float64 `json:"timeout,omitempty"`
}

// SelectOptionValues narrows which <option> elements get selected,
// any combination of values, labels and indices may be set.
type SelectOptionValues struct {
	Values  []string `json:"values,omitempty"`
	Labels  []string `json:"labels,omitempty"`
	Indices []int    `json:"indices,omitempty"`
}

// SelectOptionOptions for SelectOption
type SelectOptionOptions struct {
	Force       bool    `json:"force,omitempty"`
	NoWaitAfter bool    `json:"noWaitAfter,omitempty"`
	Timeout     float64 `json:"timeout,omitempty"`
}

// InputFile is an in-memory file payload for SetInputFiles. Buffer is
// base64 encoded by the JSON marshaller.
type InputFile struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType,omitempty"`
	Buffer   []byte `json:"buffer"`
}

// SetInputFilesOptions for SetInputFiles
type SetInputFilesOptions struct {
	NoWaitAfter bool    `json:"noWaitAfter,omitempty"`
	Timeout     float64 `json:"timeout,omitempty"`
}

// FilterOptions narrows a locator to elements matching or excluding
// text or sub-selector criteria. Peer resolved, registry-backed only.
type FilterOptions struct {
	HasText    string `json:"hasText,omitempty"`
	HasNotText string `json:"hasNotText,omitempty"`
	Has        string `json:"has,omitempty"`
	HasNot     string `json:"hasNot,omitempty"`
}

// WaitForState the peer waits for before returning from WaitFor
type WaitForState string

const (
	WaitAttached WaitForState = "attached"
	WaitDetached WaitForState = "detached"
	WaitVisible  WaitForState = "visible"
	WaitHidden   WaitForState = "hidden"
)

// WaitForOptions for Locator.WaitFor
type WaitForOptions struct {
	State   WaitForState `json:"state,omitempty"`
	Timeout float64      `json:"timeout,omitempty"`
}
