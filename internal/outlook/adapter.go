// Package outlook is the email client adapter. It attaches to the client's
// object model, classifies the nodes the host hands over, composes their
// overlays and routes their events.
package outlook

import (
	"github.com/mj1618/outlook-a11y/internal/arbiter"
	"github.com/mj1618/outlook-a11y/internal/classify"
	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/overlay"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// genericer is implemented by host nodes that carry the behaviours the host
// already chose for them.
type genericer interface {
	GenericOverlays() []model.OverlayID
}

// Options configures an Adapter.
type Options struct {
	Config    config.Config
	Provider  *platform.Provider
	Acquire   remote.Acquirer
	Log       *zap.Logger
	ProcessID int
}

// Adapter is one instance per client process.
type Adapter struct {
	log      *zap.Logger
	provider *platform.Provider
	session  *remote.Session
	events   *arbiter.Dispatcher
	env      *overlay.Env

	// objects keeps composed objects so overlay state survives between
	// events. It is rebuilt when the session state changes, because
	// classification depends on the client version.
	objects      map[platform.Node]*overlay.Object
	objectsState remote.State
}

// New creates the adapter and registers its event requests with the host.
func New(opts Options) *Adapter {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	a := &Adapter{
		log:      log,
		provider: opts.Provider,
		objects:  make(map[platform.Node]*overlay.Object),
	}
	a.session = remote.NewSession(opts.Acquire, opts.Provider.Affordance, log)
	a.objectsState = a.session.State()
	a.events = arbiter.New(opts.Provider, log, arbiter.Options{
		MaxDepth: opts.Config.Arbiter.MaxRedispatchDepth,
		Wrap:     func(n platform.Node) arbiter.Handler { return a.Wrap(n) },
	})
	a.env = &overlay.Env{
		Session:  a.session,
		Provider: opts.Provider,
		Events:   a.events,
		Config:   opts.Config,
		Log:      log,
		LastDate: &overlay.DateCell{},
		Wrap:     a.Wrap,
	}
	// The window hosting the date picker cells gets focus without passing
	// the GUI thread focus check.
	a.events.RequestEvents(platform.EventGainFocus, opts.ProcessID, classify.ClassRenWnd)
	return a
}

// Session returns the object model session.
func (a *Adapter) Session() *remote.Session { return a.session }

// Events returns the event dispatcher.
func (a *Adapter) Events() *arbiter.Dispatcher { return a.events }

// Signature reads the classification inputs of a node.
func Signature(n platform.Node) model.Signature {
	sig := model.Signature{
		Role:            n.Role(),
		Backend:         n.Backend(),
		WindowClassName: n.WindowClassName(),
		WindowControlID: n.ControlID(),
	}
	if u, ok := n.(platform.UIANode); ok && u.UIAElement() != nil {
		sig.CachedClassName = u.UIAElement().CachedClassName()
	}
	if src, ok := n.EventSource(); ok {
		sig.EventSource = &src
	}
	return sig
}

// ChooseOverlays returns the overlays for a node in window hwnd, given the
// host's candidates.
func (a *Adapter) ChooseOverlays(sig model.Signature, candidates []model.OverlayID, hwnd int) []model.OverlayID {
	w := a.provider.Windows
	return classify.Choose(sig, candidates, classify.Context{
		ParentWindowClass: func() string {
			parent := w.Ancestor(hwnd)
			if parent == 0 {
				return ""
			}
			return w.ClassName(parent)
		},
		Version: a.session.Version,
	})
}

// Wrap classifies a node, composes its overlays and applies its structural
// corrections. Host nodes must be comparable.
func (a *Adapter) Wrap(n platform.Node) *overlay.Object {
	if o, ok := n.(*overlay.Object); ok {
		return o
	}
	if o, ok := a.objects[n]; ok && a.session.State() == a.objectsState {
		return o
	}
	var candidates []model.OverlayID
	if g, ok := n.(genericer); ok {
		candidates = g.GenericOverlays()
	}
	sig := Signature(n)
	o := overlay.New(a.env, n, a.ChooseOverlays(sig, candidates, n.WindowHandle()))
	o.Apply(classify.Correct(sig))

	if st := a.session.State(); st != a.objectsState {
		a.objects = make(map[platform.Node]*overlay.Object)
		a.objectsState = st
	}
	a.objects[n] = o
	return o
}

// HandleEvent delivers a host event for n.
func (a *Adapter) HandleEvent(ev platform.EventName, n platform.Node) error {
	return a.events.Deliver(ev, n)
}

// ExecuteGesture runs the script bound to g on the focused node n, or sends
// g to the application when nothing binds it. A browse-mode viewer gets
// the gesture first.
func (a *Adapter) ExecuteGesture(n platform.Node, g platform.Gesture) error {
	o := a.Wrap(n)
	if viewer, ok := o.TreeInterceptor(); ok && viewer.ExecuteScript(g) {
		return a.events.Flush()
	}
	if o.ExecuteScript(g) {
		return a.events.Flush()
	}
	return g.Send()
}

// IsBadUIAWindow reports whether window hwnd must be read through the
// legacy tree.
func (a *Adapter) IsBadUIAWindow(hwnd int) bool {
	return classify.IsBadUIAWindow(a.provider.Windows.ClassName(hwnd))
}
