package overlay

import (
	"errors"
	"testing"

	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

type dispatched struct {
	ev     platform.EventName
	target platform.Node
	queued bool
}

// fakeEvents runs executed events immediately and only records queued ones.
type fakeEvents struct {
	log []dispatched
}

func (f *fakeEvents) ExecuteEvent(ev platform.EventName, target platform.Node) error {
	f.log = append(f.log, dispatched{ev: ev, target: target})
	if h, ok := target.(interface{ HandleEvent(platform.EventName) }); ok {
		h.HandleEvent(ev)
	}
	return nil
}

func (f *fakeEvents) QueueEvent(ev platform.EventName, target platform.Node) {
	f.log = append(f.log, dispatched{ev: ev, target: target, queued: true})
}

func (f *fakeEvents) RequestEvents(platform.EventName, int, string) {}

type testEnv struct {
	*Env
	host   *sim.Host
	app    *remote.Bag
	events *fakeEvents
}

// newTestEnv builds an environment bound to app. A nil app makes the object
// model unreachable.
func newTestEnv(t *testing.T, app map[string]any) *testEnv {
	t.Helper()
	h := sim.NewHost()
	var bag *remote.Bag
	acquire := func() (remote.Object, error) { return nil, remote.ErrUnavailable }
	if app != nil {
		bag = remote.NewBag(app)
		acquire = func() (remote.Object, error) { return bag, nil }
	}
	ev := &fakeEvents{}
	env := &Env{
		Session:  remote.NewSession(acquire, h, zap.NewNop()),
		Provider: h.Provider(),
		Events:   ev,
		Config:   config.Default(),
		Log:      zap.NewNop(),
		LastDate: &DateCell{},
	}
	env.Wrap = func(n platform.Node) *Object {
		if o, ok := n.(*Object); ok {
			return o
		}
		var ids []model.OverlayID
		if u, ok := n.(platform.UIANode); ok && u.UIAElement() != nil {
			switch u.UIAElement().CachedClassName() {
			case "LeafRow", "ThreadItem", "ThreadHeader":
				ids = append(ids, model.OverlayGridRow)
			}
		}
		return New(env, n, ids)
	}
	return &testEnv{Env: env, host: h, app: bag, events: ev}
}

func (e *testEnv) build(el model.Element) *sim.Node {
	return e.host.Build(el)
}

func (e *testEnv) wrap(n platform.Node, ids ...model.OverlayID) *Object {
	return New(e.Env, n, ids)
}

type gesture struct {
	id     string
	sent   int
	err    error
	onSend func()
}

func (g *gesture) ID() string { return g.id }

func (g *gesture) Send() error {
	g.sent++
	if g.onSend != nil {
		g.onSend()
	}
	return g.err
}

var errSend = errors.New("send failed")

func intPtr(i int) *int { return &i }
