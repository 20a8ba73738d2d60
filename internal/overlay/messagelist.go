package overlay

import (
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// messageList replaces the message list of old clients, whose rows are not
// accessible, with a virtual list holding the selected message.
type messageList struct {
	current *MessageItem
}

func (*messageList) ID() model.OverlayID { return model.OverlayLegacyMessages }

func (l *messageList) Name(o *Object, _ func() string) string {
	if l.current == nil {
		return ""
	}
	return remote.StringOr(o.log(), l.current.item, "", "Parent", "Name")
}

func (*messageList) Role(*Object, func() model.Role) model.Role { return model.RoleList }

func (l *messageList) Children(*Object, func() []platform.Node) []platform.Node {
	if l.current == nil {
		return nil
	}
	return []platform.Node{l.current}
}

func (l *messageList) HandleEvent(o *Object, ev platform.EventName, next func()) {
	if ev != platform.EventGainFocus {
		next()
		return
	}
	var fresh *MessageItem
	if item := selectedItem(o); item != nil {
		m, err := NewMessageItem(o, item)
		if err != nil {
			o.log().Error("building message item", zap.Error(err))
		} else {
			fresh = m
			l.current = fresh
		}
	}
	next()
	if fresh != nil {
		execute(o, platform.EventGainFocus, fresh)
	}
}

func (l *messageList) Scripts() map[string]Script {
	move := func(o *Object, g platform.Gesture) { l.moveByMessage(o, g) }
	return map[string]Script{
		"kb:downArrow": move,
		"kb:upArrow":   move,
		"kb:home":      move,
		"kb:end":       move,
		"kb:delete":    move,
	}
}

// moveByMessage passes the gesture to the client and announces the newly
// selected message if the selection moved.
func (l *messageList) moveByMessage(o *Object, g platform.Gesture) {
	var oldID string
	hadOld := l.current != nil
	if hadOld {
		oldID = l.current.EntryID()
	}
	if err := g.Send(); err != nil {
		o.log().Debug("sending gesture failed", zap.String("gesture", g.ID()), zap.Error(err))
	}
	item := selectedItem(o)
	if item == nil {
		return
	}
	fresh, err := NewMessageItem(o, item)
	if err != nil {
		o.log().Error("building message item", zap.Error(err))
		return
	}
	if hadOld && fresh.EntryID() == oldID {
		return
	}
	l.current = fresh
	o.log().Debug("selected message changed", zap.String("item", fresh.ID()), zap.String("gesture", g.ID()))
	execute(o, platform.EventGainFocus, fresh)
}

// selectedItem returns the first selected item of the active explorer, or
// nil if there is none.
func selectedItem(o *Object) remote.Object {
	app := o.env.app()
	if app == nil {
		return nil
	}
	item, err := remote.WalkObject(app, "ActiveExplorer()", "Selection", "Item(1)")
	if err != nil {
		return nil
	}
	return item
}

func execute(o *Object, ev platform.EventName, target platform.Node) {
	if err := o.env.Events.ExecuteEvent(ev, target); err != nil {
		o.log().Debug("executing event failed", zap.String("event", string(ev)), zap.Error(err))
	}
}
