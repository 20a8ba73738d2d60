package model

// Role is the accessibility role of a node as the host reports it.
type Role int

const (
	RoleUnknown Role = iota
	RoleWindow
	RolePane
	RoleDialog
	RoleEditableText
	RoleDocument
	RoleMenuBar
	RoleMenuItem
	RoleTreeView
	RoleTreeViewItem
	RoleList
	RoleListItem
	RoleDataItem
	RoleButton
	RoleCheckBox
	RoleTableCell
	RoleStaticText
)

// RoleMap maps fixture role names to roles.
var RoleMap = map[string]Role{
	"unknown":      RoleUnknown,
	"window":       RoleWindow,
	"pane":         RolePane,
	"dialog":       RoleDialog,
	"editabletext": RoleEditableText,
	"document":     RoleDocument,
	"menubar":      RoleMenuBar,
	"menuitem":     RoleMenuItem,
	"treeview":     RoleTreeView,
	"treeviewitem": RoleTreeViewItem,
	"list":         RoleList,
	"listitem":     RoleListItem,
	"dataitem":     RoleDataItem,
	"button":       RoleButton,
	"checkbox":     RoleCheckBox,
	"tablecell":    RoleTableCell,
	"text":         RoleStaticText,
}

// roleLabels are the spoken forms of each role.
var roleLabels = map[Role]string{
	RoleUnknown:      "unknown",
	RoleWindow:       "window",
	RolePane:         "pane",
	RoleDialog:       "dialog",
	RoleEditableText: "edit",
	RoleDocument:     "document",
	RoleMenuBar:      "menu bar",
	RoleMenuItem:     "menu item",
	RoleTreeView:     "tree view",
	RoleTreeViewItem: "tree view item",
	RoleList:         "list",
	RoleListItem:     "list item",
	RoleDataItem:     "data item",
	RoleButton:       "button",
	RoleCheckBox:     "check box",
	RoleTableCell:    "cell",
	RoleStaticText:   "text",
}

// MapRole converts a fixture role name to a Role.
// Unrecognised names map to RoleUnknown.
func MapRole(name string) Role {
	if r, ok := RoleMap[name]; ok {
		return r
	}
	return RoleUnknown
}

// Label returns the spoken form of the role.
func (r Role) Label() string {
	if l, ok := roleLabels[r]; ok {
		return l
	}
	return "unknown"
}

func (r Role) String() string {
	for name, role := range RoleMap {
		if role == r {
			return name
		}
	}
	return "unknown"
}
