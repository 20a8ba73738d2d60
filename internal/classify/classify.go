// Package classify decides which overlays a raw accessible node receives and
// which structural corrections it needs.
package classify

import (
	"strings"

	"github.com/mj1618/outlook-a11y/internal/model"
)

// Native window classes and control ids of the client.
const (
	ClassSuperGrid      = "SUPERGRID"
	ClassRenWnd         = "rctrl_renwnd32"
	ClassAfxWnd         = "AfxWndW"
	ClassWeekView       = "WeekViewWnd"
	ClassDayView        = "DayViewWnd"
	ClassRichEdit       = "RichEdit20W"
	ClassIEServer       = "Internet Explorer_Server"
	ClassREListBox      = "REListBox20W"
	ClassAddressBook    = "OUTEXVLB"
	prefixREListBox     = "REListBox"
	prefixNetUI         = "NetUIHWND"
	ControlDatePicker   = 4352
	ControlSuperGrid    = 4704
	ControlMessageList  = 109
	ControlPlainTextMsg = 8224
)

// rowClasses are the UIA class names of message list rows.
var rowClasses = map[string]bool{
	"LeafRow":      true,
	"ThreadItem":   true,
	"ThreadHeader": true,
}

// LegacyListMaxVersion is the last client version whose message list is
// only reachable through the object model.
const LegacyListMaxVersion = 9

// Context is the ambient information classification may consult.
type Context struct {
	// ParentWindowClass returns the class of the node's parent window.
	ParentWindowClass func() string
	// Version returns the client's major version. It is called only when a
	// rule needs it, because the first call may attach to the object model.
	Version func() int
}

// Choose applies the client's rules to the host's candidate overlay list and
// returns the result, most specific first. The input slice is not modified.
func Choose(sig model.Signature, candidates []model.OverlayID, ctx Context) []model.OverlayID {
	list := make([]model.OverlayID, 0, len(candidates)+2)
	list = append(list, candidates...)

	if sig.Backend == model.BackendUIA && rowClasses[sig.CachedClassName] {
		list = prepend(list, model.OverlayGridRow)
	}
	if !sig.Backend.Legacy() {
		return list
	}

	// Forms such as appointment creation are hosted in dialogs whose only
	// content is controls; any computed caption is noise.
	if model.ContainsOverlay(list, model.OverlayDialog) && ctx.ParentWindowClass != nil &&
		ctx.ParentWindowClass() == ClassAfxWnd {
		list = remove(list, model.OverlayDialog)
	}
	if model.ContainsOverlay(list, model.OverlayWordDocument) {
		list = prepend(list, model.OverlayMailBody)
	}

	role := sig.Role
	class := sig.WindowClassName
	id := sig.WindowControlID
	switch {
	case id == ControlDatePicker && role == model.RoleButton:
		list = prepend(list, model.OverlayDatePickerButton)
	case role == model.RoleTableCell && class == ClassRenWnd:
		list = prepend(list, model.OverlayDatePickerCell)
	case class == ClassREListBox && role == model.RoleCheckBox:
		list = prepend(list, model.OverlayCheckboxListItem)
	case role == model.RoleListItem && (strings.HasPrefix(class, prefixREListBox) || strings.HasPrefix(class, prefixNetUI)):
		list = prepend(list, model.OverlayAutocompleteItem)
	}
	if role == model.RoleListItem && class == ClassAddressBook {
		return prepend(list, model.OverlayAddressBookEntry)
	}

	if isMessageList(class, id) {
		v := 0
		if ctx.Version != nil {
			v = ctx.Version()
		}
		if v != 0 && v <= LegacyListMaxVersion {
			list = prepend(list, model.OverlayLegacyMessages)
		} else if sig.IsClientRoot() {
			list = prepend(list, model.OverlayGridClient)
		}
	}
	if (class == ClassAfxWnd && id == ControlMessageList) || class == ClassWeekView || class == ClassDayView {
		list = prepend(list, model.OverlayCalendarView)
	}
	return list
}

func isMessageList(class string, id int) bool {
	return (class == ClassSuperGrid && id == ControlSuperGrid) || (class == ClassRenWnd && id == ControlMessageList)
}

// IsBadUIAWindow reports whether windows of this class must be read through
// the legacy tree because their UIA implementation is unusable.
func IsBadUIAWindow(class string) bool {
	return class == ClassWeekView || class == ClassDayView
}

func prepend(list []model.OverlayID, id model.OverlayID) []model.OverlayID {
	return append([]model.OverlayID{id}, list...)
}

func remove(list []model.OverlayID, id model.OverlayID) []model.OverlayID {
	out := list[:0]
	for _, x := range list {
		if x != id {
			out = append(out, x)
		}
	}
	return out
}
