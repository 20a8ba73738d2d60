// Package sim is a scripted host. It builds accessible nodes and windows
// from fixture data and records everything the adapter asks the host to
// present, so behaviour can be replayed and asserted without a desktop.
package sim

import (
	"fmt"
	"strings"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
)

// Entry kinds recorded by the Host.
const (
	KindSpeak    = "speak"
	KindCancel   = "cancel"
	KindFocus    = "focus"
	KindName     = "name"
	KindState    = "state"
	KindValue    = "value"
	KindRange    = "range"
	KindBraille  = "braille"
	KindSetFocus = "setFocus"
	KindWaiting  = "waiting"
	KindDismiss  = "dismiss"
	KindPump     = "pump"
	KindGesture  = "gesture"
)

// Entry is one recorded host action.
type Entry struct {
	Kind string `yaml:"kind"           json:"kind"`
	Text string `yaml:"text,omitempty" json:"text,omitempty"`
}

func (e Entry) String() string {
	if e.Text == "" {
		return e.Kind
	}
	return e.Kind + ": " + e.Text
}

// Host implements the host services over in-memory state.
type Host struct {
	Entries []Entry

	windows     map[int]model.Window
	windowNodes map[int]*Node
	focused     map[int]int
	focus       platform.Node
	uiaFocus    *Node
	uiaOff      bool
}

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{
		windows:     make(map[int]model.Window),
		windowNodes: make(map[int]*Node),
		focused:     make(map[int]int),
	}
}

// Provider returns the host services as a platform.Provider.
func (h *Host) Provider() *platform.Provider {
	return &platform.Provider{
		Windows:    h,
		Speech:     h,
		Braille:    h,
		Presenter:  h,
		Focus:      h,
		UIA:        h,
		Dates:      Dates{},
		Affordance: h,
	}
}

func (h *Host) record(kind, text string) {
	h.Entries = append(h.Entries, Entry{Kind: kind, Text: text})
}

// Reset forgets the recorded entries.
func (h *Host) Reset() {
	h.Entries = nil
}

// Spoken returns the text of the recorded speak entries.
func (h *Host) Spoken() []string {
	var out []string
	for _, e := range h.Entries {
		if e.Kind == KindSpeak {
			out = append(out, e.Text)
		}
	}
	return out
}

// Describe renders a node the way the generic presenter speaks it.
func Describe(n platform.Node) string {
	var parts []string
	if name := n.Name(); name != "" {
		parts = append(parts, name)
	}
	if label := n.Role().Label(); label != "" {
		parts = append(parts, label)
	}
	if v := n.Value(); v != "" {
		parts = append(parts, v)
	}
	if lvl := n.PositionInfo().Level; lvl > 0 {
		parts = append(parts, fmt.Sprintf("level %d", lvl))
	}
	return strings.Join(parts, " ")
}

// Speech

func (h *Host) Speak(text string) { h.record(KindSpeak, text) }
func (h *Host) CancelSpeech() { h.record(KindCancel, "") }

// Braille

func (h *Host) HandleCaretMove(n platform.Node) { h.record(KindBraille, n.Name()) }

// Presenter

func (h *Host) ReportFocus(n platform.Node) { h.record(KindFocus, Describe(n)) }
func (h *Host) ReportNameChange(n platform.Node) { h.record(KindName, n.Name()) }
func (h *Host) ReportStateChange(n platform.Node) { h.record(KindState, stateText(n)) }
func (h *Host) ReportValueChange(n platform.Node) { h.record(KindValue, n.Value()) }

func (h *Host) SpeakTextRange(r platform.TextRange) { h.record(KindRange, r.Text()) }

func stateText(n platform.Node) string {
	s := n.States()
	var parts []string
	for _, st := range []model.State{
		model.StateChecked, model.StateSelected, model.StateExpanded, model.StateCollapsed,
	} {
		if s.Has(st) {
			parts = append(parts, st.Label())
		}
	}
	if len(parts) == 0 {
		return n.Name()
	}
	return n.Name() + " " + strings.Join(parts, " ")
}

// Focus

func (h *Host) FocusObject() platform.Node { return h.focus }
func (h *Host) SetFocusObject(n platform.Node) { h.focus = n }

// Windows

// AddWindow registers a native window.
func (h *Host) AddWindow(w model.Window) {
	h.windows[w.Handle] = w
	delete(h.windowNodes, w.Handle)
}

// SetFocusedWindow records the window holding focus on a GUI thread.
func (h *Host) SetFocusedWindow(threadID, hwnd int) {
	h.focused[threadID] = hwnd
}

func (h *Host) ClassName(hwnd int) string { return h.windows[hwnd].Class }
func (h *Host) Ancestor(hwnd int) int { return h.windows[hwnd].Parent }

func (h *Host) FocusedWindow(threadID int) int { return h.focused[threadID] }

func (h *Host) threadOf(hwnd int) int { return h.windows[hwnd].ThreadID }

func (h *Host) WindowNode(hwnd int) platform.Node {
	if n, ok := h.windowNodes[hwnd]; ok {
		return n
	}
	w, ok := h.windows[hwnd]
	if !ok {
		return nil
	}
	n := newNode(h, model.Element{
		Role:         "window",
		Name:         w.Title,
		Backend:      model.BackendWindow.String(),
		WindowClass:  w.Class,
		WindowHandle: w.Handle,
	}, nil)
	if w.Parent != 0 {
		if p, ok := h.WindowNode(w.Parent).(*Node); ok {
			n.parent = p
		}
	}
	h.windowNodes[hwnd] = n
	return n
}

// UIA

// SetUIAFocus sets the node UI Automation reports as focused.
func (h *Host) SetUIAFocus(n *Node) { h.uiaFocus = n }

// DisableUIA makes the UI Automation backend unavailable.
func (h *Host) DisableUIA() { h.uiaOff = true }

func (h *Host) Available() bool { return !h.uiaOff }

func (h *Host) FocusedNode() (platform.UIANode, error) {
	if h.uiaFocus == nil {
		return nil, fmt.Errorf("no UIA focus: %w", platform.ErrUnsupported)
	}
	return h.uiaFocus, nil
}

// Affordance

func (h *Host) ShowWaiting(title string) func() {
	h.record(KindWaiting, title)
	return func() { h.record(KindDismiss, title) }
}

func (h *Host) PumpEvents() { h.record(KindPump, "") }
