package classify

import "github.com/mj1618/outlook-a11y/internal/model"

// Corrections are the structural fixes applied to a node when it is built,
// independently of the overlays it receives.
type Corrections struct {
	// ReparentToGrandparent: the node's real parent is its grandparent
	// window; the containers in between are empty shells.
	ReparentToGrandparent bool
	// ClearDescription: the description only repeats window text.
	ClearDescription bool
	// AllowFocusEvent: focus events are accepted even when the node's window
	// does not hold focus according to the GUI thread.
	AllowFocusEvent bool
	// Role replaces the node's role when RoleChanged is set.
	Role        model.Role
	RoleChanged bool
}

// Correct computes the structural corrections for a node.
func Correct(sig model.Signature) Corrections {
	var c Corrections
	role := sig.Role
	class := sig.WindowClassName

	if role == model.RoleEditableText && class == ClassRichEdit && sig.WindowControlID == ControlPlainTextMsg {
		c.ReparentToGrandparent = true
	}
	if class == ClassIEServer && role == model.RolePane && sig.Backend != model.BackendMSHTML {
		c.ReparentToGrandparent = true
	}

	switch role {
	case model.RoleMenuBar, model.RoleMenuItem:
		c.ClearDescription = true
	case model.RoleTreeView, model.RoleTreeViewItem, model.RoleList, model.RoleListItem:
		c.AllowFocusEvent = true
	}

	if isMessageList(class, sig.WindowControlID) && role == model.RoleUnknown {
		c.Role = model.RoleListItem
		c.RoleChanged = true
	}
	return c
}
