package sim

import (
	"fmt"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
)

// World is a live scenario: the host, the node tree and the object model.
type World struct {
	Host *Host
	Root *Node
	App  *remote.Bag

	attach   string
	attempts int
}

// NewWorld builds the world described by sc.
func NewWorld(sc Scenario) *World {
	h := NewHost()
	for _, win := range sc.Windows {
		h.AddWindow(win)
	}
	for _, f := range sc.FocusedWindows {
		h.SetFocusedWindow(f.Thread, f.Hwnd)
	}
	if sc.NoUIA {
		h.DisableUIA()
	}
	w := &World{
		Host:   h,
		Root:   h.Build(sc.Tree),
		App:    remote.NewBag(sc.App),
		attach: sc.Attach,
	}
	if sc.UIAFocus != 0 {
		if n, ok := w.Root.Find(sc.UIAFocus); ok {
			h.SetUIAFocus(n)
		}
	}
	return w
}

// Acquire attaches to the world's object model according to the attach mode.
func (w *World) Acquire() (remote.Object, error) {
	w.attempts++
	switch w.attach {
	case AttachFail:
		return nil, fmt.Errorf("attach attempt %d: %w", w.attempts, remote.ErrUnavailable)
	case AttachFailOnce:
		if w.attempts == 1 {
			return nil, fmt.Errorf("attach attempt %d: %w", w.attempts, remote.ErrUnavailable)
		}
	}
	return w.App, nil
}

// Node returns the node with the given fixture id.
func (w *World) Node(id int) (*Node, error) {
	n, ok := w.Root.Find(id)
	if !ok {
		return nil, fmt.Errorf("no node with id %d", id)
	}
	return n, nil
}

// Apply performs an effect.
func (w *World) Apply(e Effect) error {
	for path, v := range e.Remote {
		if err := w.App.SetPath(path, v); err != nil {
			return err
		}
	}
	if e.Node != 0 {
		n, err := w.Node(e.Node)
		if err != nil {
			return err
		}
		if e.States != nil {
			n.SetStates(model.ParseStates(e.States))
		}
		if e.Name != nil {
			n.SetName(*e.Name)
		}
		if e.Selection != nil {
			r := *e.Selection
			n.SetSelection(&r)
		}
	}
	if e.UIAFocus != 0 {
		n, err := w.Node(e.UIAFocus)
		if err != nil {
			return err
		}
		w.Host.SetUIAFocus(n)
	}
	if e.Focus != nil {
		w.Host.SetFocusedWindow(e.Focus.Thread, e.Focus.Hwnd)
	}
	return nil
}

// Gesture returns a key press that applies effects when sent.
func (w *World) Gesture(id string, effects ...Effect) platform.Gesture {
	return &gesture{w: w, id: id, effects: effects}
}

type gesture struct {
	w       *World
	id      string
	effects []Effect
}

func (g *gesture) ID() string { return g.id }

func (g *gesture) Send() error {
	g.w.Host.record(KindGesture, g.id)
	for _, e := range g.effects {
		if err := g.w.Apply(e); err != nil {
			return fmt.Errorf("applying effects of %s: %w", g.id, err)
		}
	}
	return nil
}
