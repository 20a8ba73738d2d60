package overlay

import (
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
)

// addressBookEntry re-reads the entry name after the selection moves,
// because the list changes its name without notifying.
type addressBookEntry struct{}

func (*addressBookEntry) ID() model.OverlayID { return model.OverlayAddressBookEntry }

func (*addressBookEntry) Scripts() map[string]Script {
	move := func(o *Object, g platform.Gesture) {
		if err := g.Send(); err != nil {
			return
		}
		o.env.Events.QueueEvent(platform.EventNameChange, o)
	}
	return map[string]Script{
		"kb:downArrow": move,
		"kb:upArrow":   move,
		"kb:home":      move,
		"kb:end":       move,
		"kb:delete":    move,
	}
}

// autocompleteItem speaks a suggestion when it becomes selected while the
// user is typing in an edit field or sits on a button.
type autocompleteItem struct{}

func (*autocompleteItem) ID() model.OverlayID { return model.OverlayAutocompleteItem }

func (*autocompleteItem) HandleEvent(o *Object, ev platform.EventName, next func()) {
	if ev != platform.EventStateChange {
		next()
		return
	}
	p := o.env.Provider
	focus := p.Focus.FocusObject()
	if focus == nil {
		return
	}
	if role := focus.Role(); role != model.RoleEditableText && role != model.RoleButton {
		return
	}
	s := o.States()
	if !s.Has(model.StateSelected) ||
		s.Has(model.StateInvisible) ||
		s.Has(model.StateUnavailable) ||
		s.Has(model.StateOffscreen) {
		return
	}
	p.Speech.CancelSpeech()
	p.Speech.Speak(o.Name())
}

// checkboxListItem announces the new check state after space, which the
// client does not report on its own.
type checkboxListItem struct{}

func (*checkboxListItem) ID() model.OverlayID { return model.OverlayCheckboxListItem }

func (*checkboxListItem) Scripts() map[string]Script {
	return map[string]Script{
		"kb:space": func(o *Object, g platform.Gesture) {
			if err := g.Send(); err != nil {
				return
			}
			o.HandleEvent(platform.EventStateChange)
		},
	}
}

type datePickerButton struct{}

func (*datePickerButton) ID() model.OverlayID { return model.OverlayDatePickerButton }

func (*datePickerButton) Value(*Object, func() string) string { return "" }

type datePickerCell struct{}

func (*datePickerCell) ID() model.OverlayID { return model.OverlayDatePickerCell }

func (*datePickerCell) Value(*Object, func() string) string { return "" }

func (*datePickerCell) FilterDuplicates(*Object, func() bool) bool { return false }
