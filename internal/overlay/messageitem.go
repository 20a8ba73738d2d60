package overlay

import (
	"time"

	"github.com/google/uuid"
	"github.com/mj1618/outlook-a11y/internal/format"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
)

// MessageItem is the synthetic node standing for one item of a legacy
// message list. It lives only as long as the list's current selection.
type MessageItem struct {
	id      string
	entryID string
	list    *Object
	item    remote.Object
}

// NewMessageItem creates the item node for a remote item under list. Both
// are required; without them it returns ErrNoRemoteItem.
func NewMessageItem(list *Object, item remote.Object) (*MessageItem, error) {
	if list == nil || item == nil {
		return nil, ErrNoRemoteItem
	}
	return &MessageItem{
		id:      uuid.NewString(),
		entryID: remote.StringOr(list.log(), item, "", "EntryID"),
		list:    list,
		item:    item,
	}, nil
}

// ID identifies this node instance.
func (m *MessageItem) ID() string { return m.id }

// EntryID is the remote item's persistent identifier, read at creation.
func (m *MessageItem) EntryID() string { return m.entryID }

func (m *MessageItem) Name() string {
	log := m.list.log()
	switch remote.IntOr(log, m.item, 0, "Class") {
	case format.ClassContact:
		return format.ContactString(format.ContactFromRemote(log, m.item))
	case format.ClassMail:
		if format.HasReceivedTime(log, m.item) {
			return format.ReceivedMessageString(format.ReceivedFromRemote(log, m.item, m.timeText))
		}
		return format.SentMessageString(format.SentFromRemote(log, m.item, m.timeText))
	}
	return ""
}

func (m *MessageItem) timeText(t time.Time) string {
	env := m.list.env
	if env.Provider == nil || env.Provider.Dates == nil {
		return format.DefaultTime(t)
	}
	tag := env.language()
	return env.Provider.Dates.FormatDate(tag, platform.DateLong, t) + " " +
		env.Provider.Dates.FormatTime(tag, platform.TimeNoSeconds, t)
}

func (m *MessageItem) Role() model.Role { return model.RoleListItem }
func (m *MessageItem) States() model.StateSet { return model.NewStateSet(model.StateSelected) }
func (m *MessageItem) Value() string { return "" }
func (m *MessageItem) Description() string { return "" }
func (m *MessageItem) Parent() platform.Node { return m.list }
func (m *MessageItem) Backend() model.Backend { return model.BackendWindow }
func (m *MessageItem) WindowClassName() string { return m.list.WindowClassName() }
func (m *MessageItem) WindowHandle() int { return m.list.WindowHandle() }
func (m *MessageItem) WindowThreadID() int { return m.list.WindowThreadID() }
func (m *MessageItem) ControlID() int { return m.list.ControlID() }
func (m *MessageItem) SetFocus() error { return nil }

func (m *MessageItem) PositionInfo() model.PositionInfo {
	return model.PositionInfo{IndexInGroup: 1, SimilarItemsInGroup: 1}
}

func (m *MessageItem) EventSource() (model.EventSource, bool) {
	return model.EventSource{}, false
}
