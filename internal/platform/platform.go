package platform

import (
	"time"

	"github.com/mj1618/outlook-a11y/internal/model"
	"golang.org/x/text/language"
)

// Node is an accessible object as the host exposes it. The overlay engine
// wraps nodes and overrides parts of this surface.
type Node interface {
	Role() model.Role
	States() model.StateSet
	Name() string
	Value() string
	Description() string
	Parent() Node
	PositionInfo() model.PositionInfo

	Backend() model.Backend
	WindowClassName() string
	WindowHandle() int
	WindowThreadID() int
	ControlID() int

	// EventSource returns the object/child ids of the event that produced
	// the node, if any.
	EventSource() (model.EventSource, bool)

	// SetFocus moves system focus to the node.
	SetFocus() error
}

// UIANode is a node backed by a UI Automation element.
type UIANode interface {
	Node
	UIAElement() UIAElement
}

// UIAElement is a UI Automation element with a property cache.
type UIAElement interface {
	CachedClassName() string
	CachedName() string
	CurrentName() string

	// BuildUpdatedCache re-queries the element with the given cache request.
	BuildUpdatedCache(req CacheRequest) (UIAElement, error)
	// CachedChildren returns children fetched by the last cache request.
	CachedChildren() []UIAElement
	// CachedColumnHeaderItems returns the cached column header elements of a cell.
	CachedColumnHeaderItems() []UIAElement
}

// Document is a node with a text selection.
type Document interface {
	Node
	Selection() (TextRange, error)
}

// TextRange is a range of document text.
type TextRange interface {
	// Bookmark identifies the position of the range; two ranges with the
	// same bookmark cover the same text.
	Bookmark() string
	IsCollapsed() bool
	InTable() bool
	// ExpandToCell returns the range grown to the enclosing table cell.
	ExpandToCell() TextRange
	Text() string
}

// EventDispatcher routes events to nodes.
type EventDispatcher interface {
	// ExecuteEvent runs the handlers for ev on target synchronously.
	ExecuteEvent(ev EventName, target Node) error
	// QueueEvent defers ev until the current event has finished.
	QueueEvent(ev EventName, target Node)
	// RequestEvents asks the host to deliver ev for windows of the given
	// class in the given process even when its focus checks would drop it.
	RequestEvents(ev EventName, processID int, windowClass string)
}

// Speech is the speech output sink.
type Speech interface {
	Speak(text string)
	CancelSpeech()
}

// Braille is the braille output sink.
type Braille interface {
	HandleCaretMove(target Node)
}

// Presenter is the host's generic announcement path.
type Presenter interface {
	ReportFocus(n Node)
	ReportNameChange(n Node)
	ReportStateChange(n Node)
	ReportValueChange(n Node)
	SpeakTextRange(r TextRange)
}

// Focus tracks the host's notion of the focused object.
type Focus interface {
	FocusObject() Node
	SetFocusObject(n Node)
}

// Windows exposes native window primitives.
type Windows interface {
	ClassName(hwnd int) string
	// Ancestor returns the parent window handle, or 0.
	Ancestor(hwnd int) int
	// FocusedWindow returns the window holding keyboard focus on a GUI thread.
	FocusedWindow(threadID int) int
	// WindowNode returns the plain window object for a handle.
	WindowNode(hwnd int) Node
}

// UIA gives access to the UI Automation backend.
type UIA interface {
	Available() bool
	// FocusedNode returns the element UI Automation currently reports as focused.
	FocusedNode() (UIANode, error)
}

// DateFormatter renders dates and times for a locale.
type DateFormatter interface {
	FormatDate(tag language.Tag, style DateStyle, t time.Time) string
	FormatTime(tag language.Tag, style TimeStyle, t time.Time) string
}

// Affordance shows the transient "waiting" dialog while the client's object
// model is registered.
type Affordance interface {
	// ShowWaiting displays a dialog with the given title and returns a
	// function that dismisses it.
	ShowWaiting(title string) (dismiss func())
	// PumpEvents processes pending UI events once.
	PumpEvents()
}

// Gesture is an input gesture bound to a script.
type Gesture interface {
	ID() string
	// Send passes the gesture through to the application.
	Send() error
}
