package overlay

import (
	"testing"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
)

type gridClientFixture struct {
	env    *testEnv
	window *sim.Node
	client *Object
	row    *sim.Node
}

func newGridClient(t *testing.T, version string) *gridClientFixture {
	t.Helper()
	env := newTestEnv(t, map[string]any{"Version": version})
	env.host.AddWindow(model.Window{Handle: 100, Class: "SUPERGRID", ThreadID: 7})
	env.host.SetFocusedWindow(7, 100)
	root := env.build(model.Element{
		ID: 1, Role: "pane", Name: "Inbox pane",
		Children: []model.Element{
			{ID: 2, Role: "list", WindowClass: "SUPERGRID", ControlID: 4704, WindowHandle: 100,
				ObjectID: intPtr(model.ObjIDClient), ChildID: intPtr(0)},
			{ID: 3, Role: "dataitem", Name: "row", Backend: "uia", ClassName: "LeafRow", WindowHandle: 100},
		},
	})
	window, _ := root.Find(2)
	row, _ := root.Find(3)
	return &gridClientFixture{
		env:    env,
		window: window,
		client: env.wrap(window, model.OverlayGridClient),
		row:    row,
	}
}

func TestGridClient_RedirectsFocusToRow(t *testing.T) {
	f := newGridClient(t, "15.0")
	f.env.host.SetUIAFocus(f.row)

	f.client.HandleEvent(platform.EventGainFocus)

	if len(f.env.events.log) != 1 {
		t.Fatalf("got %d events, want 1", len(f.env.events.log))
	}
	got := f.env.events.log[0]
	target, ok := got.target.(*Object)
	if !ok || got.ev != platform.EventGainFocus || !target.Has(model.OverlayGridRow) {
		t.Fatalf("got %+v, want focus on the grid row", got)
	}
	if target.Parent() != f.client.Parent() {
		t.Error("row was not re-parented to the list's parent")
	}
	// The generic focus report of the list itself is replaced.
	for _, e := range f.env.host.Entries {
		if e.Kind == sim.KindFocus && e.Text == sim.Describe(f.client) {
			t.Errorf("list itself was reported: %v", e)
		}
	}
}

func TestGridClient_FallsBack(t *testing.T) {
	tests := []struct {
		name    string
		version string
		setup   func(f *gridClientFixture)
	}{
		{"old version", "12.0", func(f *gridClientFixture) { f.env.host.SetUIAFocus(f.row) }},
		{"no UIA focus", "15.0", func(*gridClientFixture) {}},
		{"UIA unavailable", "15.0", func(f *gridClientFixture) {
			f.env.host.SetUIAFocus(f.row)
			f.env.host.DisableUIA()
		}},
		{"focus is not a row", "15.0", func(f *gridClientFixture) { f.env.host.SetUIAFocus(f.window) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGridClient(t, tt.version)
			tt.setup(f)
			f.client.HandleEvent(platform.EventGainFocus)
			if len(f.env.events.log) != 0 {
				t.Errorf("got events %+v, want generic handling", f.env.events.log)
			}
			if f.env.host.FocusObject() != f.client {
				t.Error("list did not take focus")
			}
		})
	}
}

func TestGridClient_FocusGate(t *testing.T) {
	f := newGridClient(t, "15.0")
	if !f.client.AllowFocusEvent() {
		t.Error("focus refused while the list window holds focus")
	}
	f.env.host.SetFocusedWindow(7, 200)
	if f.client.AllowFocusEvent() {
		t.Error("focus allowed while another window holds focus")
	}
	if f.client.FilterDuplicates() {
		t.Error("grid client filters duplicates")
	}
}
