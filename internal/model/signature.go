package model

// Backend identifies which accessibility API produced a node.
type Backend int

const (
	BackendIAccessible Backend = iota
	BackendMSHTML
	BackendUIA
	BackendWindow
)

// ParseBackend converts a fixture backend name. Empty means IAccessible.
func ParseBackend(s string) Backend {
	switch s {
	case "mshtml":
		return BackendMSHTML
	case "uia":
		return BackendUIA
	case "window":
		return BackendWindow
	default:
		return BackendIAccessible
	}
}

// Legacy reports whether the node comes from the IAccessible tree.
// MSHTML nodes are IAccessible nodes with extra document support.
func (b Backend) Legacy() bool {
	return b == BackendIAccessible || b == BackendMSHTML
}

func (b Backend) String() string {
	switch b {
	case BackendMSHTML:
		return "mshtml"
	case BackendUIA:
		return "uia"
	case BackendWindow:
		return "window"
	default:
		return "iaccessible"
	}
}

// ObjIDClient is the object id of a window's client area.
const ObjIDClient = -4

// EventSource is the (object id, child id) pair an event was fired with.
type EventSource struct {
	ObjectID int
	ChildID  int
}

// Signature is the static part of a node used for classification.
// It is never mutated after construction.
type Signature struct {
	Role            Role
	Backend         Backend
	WindowClassName string
	WindowControlID int
	CachedClassName string
	EventSource     *EventSource
}

// IsClientRoot reports whether the event that produced the node targeted
// the root of a window's client area.
func (s Signature) IsClientRoot() bool {
	return s.EventSource != nil && s.EventSource.ObjectID == ObjIDClient && s.EventSource.ChildID == 0
}

// PositionInfo describes where a node sits in a tree or group.
type PositionInfo struct {
	Level               int `yaml:"level,omitempty"               json:"level,omitempty"`
	IndexInGroup        int `yaml:"indexInGroup,omitempty"        json:"indexInGroup,omitempty"`
	SimilarItemsInGroup int `yaml:"similarItemsInGroup,omitempty" json:"similarItemsInGroup,omitempty"`
}
