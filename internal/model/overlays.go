package model

// OverlayID names a behaviour bundle composed onto a node.
type OverlayID string

// Generic behaviours the host may already have chosen.
const (
	OverlayDialog       OverlayID = "dialog"
	OverlayWordDocument OverlayID = "word-document"
)

// Client-specific overlays.
const (
	OverlayGridRow          OverlayID = "grid-row"
	OverlayMailBody         OverlayID = "mail-body-document"
	OverlayDatePickerButton OverlayID = "date-picker-button"
	OverlayDatePickerCell   OverlayID = "date-picker-cell"
	OverlayCheckboxListItem OverlayID = "checkbox-list-item"
	OverlayAutocompleteItem OverlayID = "autocomplete-list-item"
	OverlayAddressBookEntry OverlayID = "address-book-entry"
	OverlayLegacyMessages   OverlayID = "legacy-message-list"
	OverlayGridClient       OverlayID = "grid-client"
	OverlayCalendarView     OverlayID = "calendar-view"
)

// ContainsOverlay reports whether id is in ids.
func ContainsOverlay(ids []OverlayID, id OverlayID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}
