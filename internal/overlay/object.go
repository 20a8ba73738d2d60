// Package overlay composes client-specific behaviour onto accessible nodes.
//
// An Object wraps a raw platform.Node together with an ordered list of
// overlays, most specific first. Each overlay implements any subset of the
// hook interfaces in this file. To answer a query the Object walks the list
// and calls the first overlay implementing the matching hook, passing a
// next function that continues the walk and finally reaches the raw node.
package overlay

import (
	"slices"

	"github.com/mj1618/outlook-a11y/internal/classify"
	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"go.uber.org/zap"
)

// Overlay is a behaviour bundle composed onto a node.
type Overlay interface {
	ID() model.OverlayID
}

// Script is the action bound to an input gesture.
type Script func(o *Object, g platform.Gesture)

type namer interface {
	Name(o *Object, next func() string) string
}

type valuer interface {
	Value(o *Object, next func() string) string
}

type roler interface {
	Role(o *Object, next func() model.Role) model.Role
}

type positioner interface {
	PositionInfo(o *Object, next func() model.PositionInfo) model.PositionInfo
}

type childrenLister interface {
	Children(o *Object, next func() []platform.Node) []platform.Node
}

type eventHandler interface {
	HandleEvent(o *Object, ev platform.EventName, next func())
}

type focusReporter interface {
	ReportFocus(o *Object, next func())
}

type duplicateFilter interface {
	FilterDuplicates(o *Object, next func() bool) bool
}

type focusGate interface {
	AllowFocusEvent(o *Object, next func() bool) bool
}

type focusSetter interface {
	SetFocus(o *Object, next func() error) error
}

type scripter interface {
	Scripts() map[string]Script
}

type interceptorProvider interface {
	TreeInterceptor(o *Object) (*MailViewer, bool)
}

type documentOptioner interface {
	DocumentOptions(o *Object) DocumentOptions
}

// Object is a node with its overlays composed on.
type Object struct {
	platform.Node

	env      *Env
	ids      []model.OverlayID
	overlays []Overlay

	parent     platform.Node
	hasParent  bool
	desc       *string
	role       model.Role
	hasRole    bool
	allowFocus bool
}

// New composes the overlays named by ids onto node. Identifiers without a
// client implementation, such as the host's generic dialog behaviour, are
// kept in IDs but contribute no hooks.
func New(env *Env, node platform.Node, ids []model.OverlayID) *Object {
	o := &Object{
		Node: node,
		env:  env,
		ids:  append([]model.OverlayID(nil), ids...),
	}
	for _, id := range ids {
		if build, ok := registry[id]; ok {
			o.overlays = append(o.overlays, build())
		}
	}
	return o
}

var registry = map[model.OverlayID]func() Overlay{
	model.OverlayGridRow:          func() Overlay { return &gridRow{} },
	model.OverlayMailBody:         func() Overlay { return &mailBody{} },
	model.OverlayDatePickerButton: func() Overlay { return &datePickerButton{} },
	model.OverlayDatePickerCell:   func() Overlay { return &datePickerCell{} },
	model.OverlayCheckboxListItem: func() Overlay { return &checkboxListItem{} },
	model.OverlayAutocompleteItem: func() Overlay { return &autocompleteItem{} },
	model.OverlayAddressBookEntry: func() Overlay { return &addressBookEntry{} },
	model.OverlayLegacyMessages:   func() Overlay { return &messageList{} },
	model.OverlayGridClient:       func() Overlay { return &gridClient{} },
	model.OverlayCalendarView:     func() Overlay { return &calendarView{} },
}

// IDs returns the overlay identifiers the object was built with.
func (o *Object) IDs() []model.OverlayID {
	return append([]model.OverlayID(nil), o.ids...)
}

// Has reports whether the object was built with the given overlay.
func (o *Object) Has(id model.OverlayID) bool {
	return model.ContainsOverlay(o.ids, id)
}

// Raw returns the wrapped node.
func (o *Object) Raw() platform.Node {
	return o.Node
}

// Apply performs the structural corrections computed at construction.
func (o *Object) Apply(c classify.Corrections) {
	if c.ReparentToGrandparent {
		w := o.env.Provider.Windows
		if gp := w.Ancestor(w.Ancestor(o.WindowHandle())); gp != 0 {
			o.SetParent(w.WindowNode(gp))
		}
	}
	if c.ClearDescription {
		empty := ""
		o.desc = &empty
	}
	if c.AllowFocusEvent {
		o.allowFocus = true
	}
	if c.RoleChanged {
		o.role = c.Role
		o.hasRole = true
	}
}

// SetParent overrides the parent reported for the object.
func (o *Object) SetParent(p platform.Node) {
	o.parent = p
	o.hasParent = true
}

// chain walks the overlays from the first implementing hook H down to base.
func chain[H any, R any](o *Object, call func(h H, next func() R) R, base func() R) R {
	var run func(i int) R
	run = func(i int) R {
		for ; i < len(o.overlays); i++ {
			if h, ok := o.overlays[i].(H); ok {
				next := i + 1
				return call(h, func() R { return run(next) })
			}
		}
		return base()
	}
	return run(0)
}

// Name returns the name the host speaks for the object.
func (o *Object) Name() string {
	return chain(o, func(h namer, next func() string) string { return h.Name(o, next) }, o.Node.Name)
}

// Value returns the object's value text.
func (o *Object) Value() string {
	return chain(o, func(h valuer, next func() string) string { return h.Value(o, next) }, o.Node.Value)
}

// Role returns the object's role after overlays and role corrections.
func (o *Object) Role() model.Role {
	return chain(o, func(h roler, next func() model.Role) model.Role { return h.Role(o, next) }, o.baseRole)
}

func (o *Object) baseRole() model.Role {
	if o.hasRole {
		return o.role
	}
	return o.Node.Role()
}

// Description returns the object's description, empty once cleared.
func (o *Object) Description() string {
	if o.desc != nil {
		return *o.desc
	}
	return o.Node.Description()
}

// Parent returns the reported parent, which may be a replaced one.
func (o *Object) Parent() platform.Node {
	if o.hasParent {
		return o.parent
	}
	return o.Node.Parent()
}

// PositionInfo returns the object's level and position in its group.
func (o *Object) PositionInfo() model.PositionInfo {
	return chain(o, func(h positioner, next func() model.PositionInfo) model.PositionInfo {
		return h.PositionInfo(o, next)
	}, o.Node.PositionInfo)
}

// Children returns the children the object exposes. Plain nodes expose none
// through this interface.
func (o *Object) Children() []platform.Node {
	return chain(o, func(h childrenLister, next func() []platform.Node) []platform.Node {
		return h.Children(o, next)
	}, func() []platform.Node { return nil })
}

// SetFocus moves focus to the object.
func (o *Object) SetFocus() error {
	return chain(o, func(h focusSetter, next func() error) error { return h.SetFocus(o, next) }, o.Node.SetFocus)
}

// HandleEvent runs the object's handlers for ev.
func (o *Object) HandleEvent(ev platform.EventName) {
	chain(o, func(h eventHandler, next func() struct{}) struct{} {
		h.HandleEvent(o, ev, func() { next() })
		return struct{}{}
	}, func() struct{} {
		o.baseEvent(ev)
		return struct{}{}
	})
}

func (o *Object) baseEvent(ev platform.EventName) {
	p := o.env.Provider
	switch ev {
	case platform.EventGainFocus:
		p.Focus.SetFocusObject(o)
		o.ReportFocus()
	case platform.EventNameChange:
		p.Presenter.ReportNameChange(o)
	case platform.EventStateChange:
		p.Presenter.ReportStateChange(o)
	case platform.EventValueChange:
		p.Presenter.ReportValueChange(o)
	}
}

// ReportFocus announces the object as the new focus.
func (o *Object) ReportFocus() {
	chain(o, func(h focusReporter, next func() struct{}) struct{} {
		h.ReportFocus(o, func() { next() })
		return struct{}{}
	}, func() struct{} {
		o.env.Provider.Presenter.ReportFocus(o)
		return struct{}{}
	})
}

// FilterDuplicates reports whether repeated identical events for this object
// may be dropped.
func (o *Object) FilterDuplicates() bool {
	return chain(o, func(h duplicateFilter, next func() bool) bool { return h.FilterDuplicates(o, next) },
		func() bool { return true })
}

// AllowFocusEvent reports whether a focus event for this object should be
// processed. By default the object's window must hold focus on its GUI
// thread, unless the node was marked eligible at construction or focus
// events were requested for its window class.
func (o *Object) AllowFocusEvent() bool {
	return chain(o, func(h focusGate, next func() bool) bool { return h.AllowFocusEvent(o, next) }, o.baseAllowFocus)
}

// requester is implemented by dispatchers that track requested events.
type requester interface {
	Requested(ev platform.EventName, windowClass string) bool
}

func (o *Object) baseAllowFocus() bool {
	if o.allowFocus {
		return true
	}
	if r, ok := o.env.Events.(requester); ok && r.Requested(platform.EventGainFocus, o.WindowClassName()) {
		return true
	}
	return o.env.Provider.Windows.FocusedWindow(o.WindowThreadID()) == o.WindowHandle()
}

// ExecuteScript runs the script bound to g. It reports false when no
// overlay binds the gesture, in which case the host passes it through.
func (o *Object) ExecuteScript(g platform.Gesture) bool {
	id := platform.NormalizeGesture(g.ID())
	for _, ov := range o.overlays {
		s, ok := ov.(scripter)
		if !ok {
			continue
		}
		if fn, ok := s.Scripts()[id]; ok {
			fn(o, g)
			return true
		}
	}
	return false
}

// Gestures lists the gestures bound by the object's overlays, sorted and
// without duplicates.
func (o *Object) Gestures() []string {
	var ids []string
	for _, ov := range o.overlays {
		if s, ok := ov.(scripter); ok {
			for id := range s.Scripts() {
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// TreeInterceptor returns the browse-mode wrapper for the object, if it
// should have one.
func (o *Object) TreeInterceptor() (*MailViewer, bool) {
	for _, ov := range o.overlays {
		if p, ok := ov.(interceptorProvider); ok {
			return p.TreeInterceptor(o)
		}
	}
	return nil, false
}

// DocumentOptions returns the document tracking options of the object.
func (o *Object) DocumentOptions() (DocumentOptions, bool) {
	for _, ov := range o.overlays {
		if d, ok := ov.(documentOptioner); ok {
			return d.DocumentOptions(o), true
		}
	}
	return DocumentOptions{}, false
}

// Describe reports what the overlays named by ids bind without a node: the
// gestures they handle and, for document nodes, the document options.
func Describe(cfg config.Config, ids []model.OverlayID) (gestures []string, doc *DocumentOptions) {
	o := New(&Env{Config: cfg}, nil, ids)
	if opts, ok := o.DocumentOptions(); ok {
		doc = &opts
	}
	return o.Gestures(), doc
}

func (o *Object) log() *zap.Logger {
	return o.env.logger()
}
