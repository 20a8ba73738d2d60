// Package arbiter routes accessibility events to nodes. It drops repeated
// events, applies the focus eligibility check, runs deferred events after
// the current one and bounds how deep handlers may re-dispatch.
//
// The dispatcher is single threaded: the host delivers events one at a time
// and every handler runs to completion before the next event.
package arbiter

import (
	"errors"
	"fmt"

	"github.com/mj1618/outlook-a11y/internal/platform"
	"go.uber.org/zap"
)

// ErrRedispatchLoop is returned when handlers re-dispatch deeper than the
// configured limit.
var ErrRedispatchLoop = errors.New("event re-dispatch limit exceeded")

// DefaultMaxDepth is the re-dispatch limit used when none is configured.
const DefaultMaxDepth = 4

// maxQueued bounds the events one Flush may run, so handlers that keep
// queueing cannot stall the host.
const maxQueued = 64

// Handler is a node with its own event handling.
type Handler interface {
	platform.Node
	HandleEvent(ev platform.EventName)
	// FilterDuplicates reports whether repeated identical events may be dropped.
	FilterDuplicates() bool
	// AllowFocusEvent reports whether a focus event should be processed.
	AllowFocusEvent() bool
}

// rawer is implemented by wrappers that expose the node they wrap.
type rawer interface {
	Raw() platform.Node
}

// Options configures a Dispatcher.
type Options struct {
	// MaxDepth bounds nested ExecuteEvent calls.
	MaxDepth int
	// Wrap turns a node delivered by the host into a Handler.
	Wrap func(platform.Node) Handler
}

type requestKey struct {
	ev    platform.EventName
	class string
}

type queued struct {
	ev     platform.EventName
	target platform.Node
}

type lastEvent struct {
	ev     platform.EventName
	target platform.Node
}

// Dispatcher implements platform.EventDispatcher.
type Dispatcher struct {
	log      *zap.Logger
	provider *platform.Provider
	opts     Options

	depth     int
	queue     []queued
	requested map[requestKey]int
	last      *lastEvent
}

// New returns a dispatcher presenting plain nodes through provider.
func New(provider *platform.Provider, log *zap.Logger, opts Options) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	return &Dispatcher{
		log:       log,
		provider:  provider,
		opts:      opts,
		requested: make(map[requestKey]int),
	}
}

// Deliver processes an event raised by the host for target. Duplicate and
// ineligible focus events are dropped. Events queued by the handlers run
// before Deliver returns.
func (d *Dispatcher) Deliver(ev platform.EventName, target platform.Node) error {
	h, ok := target.(Handler)
	if !ok && d.opts.Wrap != nil {
		if w := d.opts.Wrap(target); w != nil {
			h, ok = w, true
		}
	}
	if ok {
		if d.isDuplicate(ev, h) {
			d.log.Debug("dropping duplicate event", zap.String("event", string(ev)), zap.String("name", target.Name()))
			return nil
		}
		if ev == platform.EventGainFocus && !h.AllowFocusEvent() {
			d.log.Debug("dropping ineligible focus event", zap.String("name", target.Name()))
			return nil
		}
		target = h
	}
	d.last = &lastEvent{ev: ev, target: raw(target)}
	err := d.ExecuteEvent(ev, target)
	if ferr := d.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (d *Dispatcher) isDuplicate(ev platform.EventName, h Handler) bool {
	if d.last == nil || !h.FilterDuplicates() {
		return false
	}
	return d.last.ev == ev && d.last.target == raw(h)
}

func raw(n platform.Node) platform.Node {
	if r, ok := n.(rawer); ok {
		return r.Raw()
	}
	return n
}

// ExecuteEvent runs the handlers for ev on target synchronously.
func (d *Dispatcher) ExecuteEvent(ev platform.EventName, target platform.Node) error {
	if target == nil {
		return nil
	}
	if d.depth >= d.opts.MaxDepth {
		d.log.Debug("re-dispatch limit reached",
			zap.String("event", string(ev)),
			zap.String("name", target.Name()),
			zap.Int("depth", d.depth))
		return fmt.Errorf("%s on %q at depth %d: %w", ev, target.Name(), d.depth, ErrRedispatchLoop)
	}
	d.depth++
	defer func() { d.depth-- }()

	if h, ok := target.(Handler); ok {
		h.HandleEvent(ev)
		return nil
	}
	d.present(ev, target)
	return nil
}

// present is the generic handling of nodes without overlays.
func (d *Dispatcher) present(ev platform.EventName, n platform.Node) {
	p := d.provider
	switch ev {
	case platform.EventGainFocus:
		p.Focus.SetFocusObject(n)
		p.Presenter.ReportFocus(n)
	case platform.EventNameChange:
		p.Presenter.ReportNameChange(n)
	case platform.EventStateChange:
		p.Presenter.ReportStateChange(n)
	case platform.EventValueChange:
		p.Presenter.ReportValueChange(n)
	}
}

// QueueEvent defers ev until the current event has finished.
func (d *Dispatcher) QueueEvent(ev platform.EventName, target platform.Node) {
	d.queue = append(d.queue, queued{ev: ev, target: target})
}

// Flush runs queued events in order, including events they queue in turn.
func (d *Dispatcher) Flush() error {
	var errs []error
	for n := 0; len(d.queue) > 0; n++ {
		if n == maxQueued {
			d.log.Warn("dropping queued events", zap.Int("count", len(d.queue)))
			d.queue = nil
			errs = append(errs, fmt.Errorf("%d queued events: %w", maxQueued, ErrRedispatchLoop))
			break
		}
		q := d.queue[0]
		d.queue = d.queue[1:]
		if err := d.ExecuteEvent(q.ev, q.target); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RequestEvents asks for ev from windows of class in process pid even when
// the host's focus checks would drop it.
func (d *Dispatcher) RequestEvents(ev platform.EventName, pid int, class string) {
	d.requested[requestKey{ev: ev, class: class}] = pid
	d.log.Debug("requested events",
		zap.String("event", string(ev)),
		zap.Int("pid", pid),
		zap.String("windowClass", class))
}

// Requested reports whether ev was requested for windows of class.
func (d *Dispatcher) Requested(ev platform.EventName, class string) bool {
	_, ok := d.requested[requestKey{ev: ev, class: class}]
	return ok
}
