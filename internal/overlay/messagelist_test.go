package overlay

import (
	"errors"
	"testing"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
)

func legacyApp(items ...map[string]any) map[string]any {
	list := make([]any, len(items))
	for i, it := range items {
		list[i] = it
	}
	return map[string]any{
		"Version": "9.0.0.2711",
		"ActiveExplorer": map[string]any{
			"Selection": map[string]any{"Count": len(items), "Item": list},
		},
	}
}

func mailItem(entryID, subject string) map[string]any {
	return map[string]any{
		"EntryID":      entryID,
		"Class":        43,
		"UnRead":       true,
		"SenderName":   "Alice",
		"Subject":      subject,
		"ReceivedTime": "2026-10-16 09:30",
		"Parent":       map[string]any{"Name": "Inbox"},
	}
}

func newMessageList(t *testing.T, app map[string]any) (*testEnv, *Object) {
	t.Helper()
	env := newTestEnv(t, app)
	n := env.build(model.Element{ID: 1, Role: "list", WindowClass: "SUPERGRID", ControlID: 4704})
	return env, env.wrap(n, model.OverlayLegacyMessages)
}

func TestMessageList_FocusAnnouncesSelection(t *testing.T) {
	env, list := newMessageList(t, legacyApp(mailItem("A", "Lunch")))
	list.HandleEvent(platform.EventGainFocus)

	if got := list.Role(); got != model.RoleList {
		t.Errorf("role: got %v, want list", got)
	}
	if got, want := list.Name(), "Inbox"; got != want {
		t.Errorf("name: got %q, want %q", got, want)
	}
	kids := list.Children()
	if len(kids) != 1 {
		t.Fatalf("got %d children, want 1", len(kids))
	}
	item := kids[0].(*MessageItem)
	want := "unread Alice, subject: Lunch, received: 16 October 2026 09:30"
	if got := item.Name(); got != want {
		t.Errorf("item name: got %q, want %q", got, want)
	}
	if item.Parent() != list || !item.States().Has(model.StateSelected) || item.Role() != model.RoleListItem {
		t.Errorf("item is not a selected list item under the list")
	}

	last := env.events.log[len(env.events.log)-1]
	if last.ev != platform.EventGainFocus || last.target != item || last.queued {
		t.Errorf("got %+v, want focus executed on the item", last)
	}
}

func TestMessageList_NoSelection(t *testing.T) {
	_, list := newMessageList(t, map[string]any{"Version": "9.0"})
	list.HandleEvent(platform.EventGainFocus)
	if got := list.Children(); got != nil {
		t.Errorf("got children %v, want none", got)
	}
	if got := list.Name(); got != "" {
		t.Errorf("got name %q, want empty", got)
	}
}

func TestMessageList_MoveAnnouncesOnlyNewItems(t *testing.T) {
	app := legacyApp(mailItem("A", "Lunch"))
	env, list := newMessageList(t, app)
	list.HandleEvent(platform.EventGainFocus)
	first := list.Children()[0].(*MessageItem)
	env.events.log = nil

	// The selection does not move: nothing is announced.
	down := &gesture{id: "kb:downArrow"}
	if !list.ExecuteScript(down) {
		t.Fatal("downArrow not bound")
	}
	if down.sent != 1 {
		t.Errorf("gesture sent %d times, want 1", down.sent)
	}
	if len(env.events.log) != 0 {
		t.Errorf("got %d events for an unchanged selection, want none", len(env.events.log))
	}

	// The selection moves to another item.
	down.onSend = func() {
		if err := env.app.SetPath("ActiveExplorer.Selection.Item", []any{mailItem("B", "Report")}); err != nil {
			t.Fatal(err)
		}
	}
	list.ExecuteScript(down)
	if len(env.events.log) != 1 {
		t.Fatalf("got %d events, want 1", len(env.events.log))
	}
	second := env.events.log[0].target.(*MessageItem)
	if second == first || second.EntryID() != "B" {
		t.Errorf("got entry %q, want a new item for B", second.EntryID())
	}
	if second.ID() == first.ID() {
		t.Error("items share an identity")
	}
}

func TestMessageItem_Names(t *testing.T) {
	tests := []struct {
		name string
		item map[string]any
		want string
	}{
		{
			name: "contact",
			item: map[string]any{
				"Class": 40, "FullName": "Bob Smith", "CompanyName": "",
				"JobTitle": "Engineer", "Email1Address": "bob@example.com",
			},
			want: "Bob Smith, Engineer, bob@example.com",
		},
		{
			name: "draft has no received time",
			item: map[string]any{
				"Class": 43, "To": "Carol", "Subject": "Plans", "SentOn": "2026-10-15 17:05",
			},
			want: "Carol, subject: Plans, sent: 15 October 2026 17:05",
		},
		{
			name: "other class",
			item: map[string]any{"Class": 26},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, list := newMessageList(t, legacyApp(tt.item))
			item, err := NewMessageItem(list, remote.NewBag(tt.item))
			if err != nil {
				t.Fatal(err)
			}
			if got := item.Name(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMessageItem_NoRemote(t *testing.T) {
	_, list := newMessageList(t, nil)
	item, err := NewMessageItem(list, nil)
	if !errors.Is(err, ErrNoRemoteItem) {
		t.Errorf("got %v, want ErrNoRemoteItem", err)
	}
	if item != nil {
		t.Errorf("got item %v, want nil", item)
	}

	item, err = NewMessageItem(nil, remote.NewBag(mailItem("A", "Hello")))
	if !errors.Is(err, ErrNoRemoteItem) || item != nil {
		t.Errorf("got (%v, %v) without a list, want (nil, ErrNoRemoteItem)", item, err)
	}
}
