package overlay

import (
	"strings"

	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// modernRowVersion is the first client version whose row value carries the
// status words spoken in place of the object model's flags.
const modernRowVersion = 15

const meetingRequestClass = "IPM.Schedule.Meeting.Request"

var flagLabels = map[int]string{
	1: "purple flag",
	2: "orange flag",
	3: "green flag",
	4: "yellow flag",
	5: "blue flag",
	6: "red flag",
}

var importanceLabels = map[int]string{
	0: "low importance",
	2: "high importance",
}

// silentClasses are message classes whose row value leads with a type word
// that is not worth speaking.
var silentClasses = map[string]bool{
	"IPM.Appointment": true,
	"IPM.Contact":     true,
	"IPM.Note":        true,
}

var rowCellsRequest = platform.CacheRequest{
	Properties: []platform.Property{
		platform.PropertyName,
		platform.PropertyClassName,
		platform.PropertyControlType,
		platform.PropertyColumnHeaderItems,
	},
	Scope:  platform.ScopeChildren,
	Filter: platform.ControlText,
}

// gridRow speaks a message list row as one line built from its cells.
type gridRow struct {
	// column is the cell reached by cell navigation, 0 for the row itself.
	column int
}

func (*gridRow) ID() model.OverlayID { return model.OverlayGridRow }

func (r *gridRow) Name(o *Object, next func() string) string {
	var parts []string
	states := o.States()
	switch {
	case states.Has(model.StateExpanded):
		parts = append(parts, model.StateExpanded.Label())
	case states.Has(model.StateCollapsed):
		parts = append(parts, model.StateCollapsed.Label())
	}
	parts = append(parts, selectionWords(o)...)

	cells, ok := rowCells(o)
	if !ok {
		return next()
	}
	for _, c := range cells {
		if text := cellText(o, c); text != "" {
			parts = append(parts, text+",")
		}
	}
	return strings.Join(parts, " ")
}

func (*gridRow) Value(*Object, func() string) string { return "" }

// HandleEvent returns cell navigation to the row itself when it regains focus.
func (r *gridRow) HandleEvent(o *Object, ev platform.EventName, next func()) {
	if ev == platform.EventGainFocus {
		r.column = 0
	}
	next()
}

func (*gridRow) Role(o *Object, next func() model.Role) model.Role {
	switch role := next(); role {
	case model.RoleTreeView:
		return model.RoleTreeViewItem
	case model.RoleDataItem:
		return model.RoleListItem
	default:
		return role
	}
}

func (*gridRow) PositionInfo(o *Object, next func() model.PositionInfo) model.PositionInfo {
	info := next()
	switch rowClass(o) {
	case "ThreadHeader":
		info.Level = 1
	case "ThreadItem":
		if parentIsRow(o) {
			info.Level = 2
		}
	}
	return info
}

func (*gridRow) SetFocus(o *Object, next func() error) error {
	if err := next(); err != nil {
		return err
	}
	// The client does not fire focus for rows focused programmatically.
	o.env.Events.QueueEvent(platform.EventGainFocus, o)
	return nil
}

func (r *gridRow) Scripts() map[string]Script {
	return map[string]Script{
		"kb:control+alt+rightArrow": func(o *Object, _ platform.Gesture) { r.moveColumn(o, 1) },
		"kb:control+alt+leftArrow":  func(o *Object, _ platform.Gesture) { r.moveColumn(o, -1) },
	}
}

func (r *gridRow) moveColumn(o *Object, delta int) {
	cells, ok := rowCells(o)
	if !ok {
		return
	}
	target := r.column + delta
	if target < 1 || target > len(cells) {
		return
	}
	r.column = target
	text := cellText(o, cells[target-1])
	if text == "" {
		text = "blank"
	}
	o.env.Provider.Speech.Speak(text)
}

// selectionWords describes the selected message: flag, attachments and
// importance from the object model, then either the legacy status words or
// the words taken from the row value.
func selectionWords(o *Object) []string {
	log := o.log()
	app := o.env.app()
	if app == nil {
		return nil
	}
	sel := remote.ObjectOr(log, app, "ActiveExplorer()", "Selection", "Item(1)")
	if sel == nil {
		return nil
	}
	var words []string
	unread := remote.BoolOr(log, sel, false, "UnRead")
	class, hasClass := messageClass(sel)
	if label, ok := flagLabels[remote.IntOr(log, sel, 0, "FlagIcon")]; ok {
		words = append(words, label)
	}
	if remote.IntOr(log, sel, 0, "Attachments", "Count") > 0 {
		words = append(words, "has attachment")
	}
	if label, ok := importanceLabels[remote.IntOr(log, sel, 1, "Importance")]; ok {
		words = append(words, label)
	}
	if o.env.version() < modernRowVersion {
		if unread {
			words = append(words, "unread")
		}
		if class == meetingRequestClass {
			words = append(words, "meeting request")
		}
	} else if hasClass {
		words = append(words, valueWords(o.Node.Value(), unread, silentClasses[class])...)
	}
	return words
}

func messageClass(item remote.Object) (string, bool) {
	v, err := remote.Walk(item, "MessageClass")
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// valueWords picks the status words from a row value. The trailing word is
// the read state, spoken only for unread items. Silent classes keep only
// the last two words.
func valueWords(value string, unread, silent bool) []string {
	tokens := strings.Split(value, " ")
	n := len(tokens)
	last := n
	if !unread {
		last = n - 1
	}
	first := 0
	if silent {
		first = max(1, n-2)
	}
	if last <= first {
		return nil
	}
	var words []string
	for _, t := range tokens[first:last] {
		if t != "" {
			words = append(words, t)
		}
	}
	return words
}

// rowCells fetches the text cells of the row in one round trip.
func rowCells(o *Object) ([]platform.UIAElement, bool) {
	n, ok := o.Node.(platform.UIANode)
	if !ok || n.UIAElement() == nil {
		return nil, false
	}
	updated, err := n.UIAElement().BuildUpdatedCache(rowCellsRequest)
	if err != nil {
		o.log().Debug("fetching row cells failed", zap.Error(err))
		return nil, false
	}
	cells := updated.CachedChildren()
	if len(cells) == 0 {
		o.log().Debug("row has no text cells",
			zap.String("name", n.UIAElement().CachedName()),
			zap.String("class", rowClass(o)),
			zap.Stack("stack"))
		return nil, false
	}
	return cells, true
}

func cellText(o *Object, cell platform.UIAElement) string {
	name := cell.CachedName()
	if name == "" {
		return ""
	}
	if !o.env.Config.DocumentFormatting.ReportTableHeaders {
		return name
	}
	var headers []string
	for _, h := range cell.CachedColumnHeaderItems() {
		if hn := h.CurrentName(); hn != "" {
			headers = append(headers, hn)
		}
	}
	if len(headers) == 0 {
		return name
	}
	return strings.Join(headers, " ") + " " + name
}

func rowClass(o *Object) string {
	n, ok := o.Node.(platform.UIANode)
	if !ok || n.UIAElement() == nil {
		return ""
	}
	return n.UIAElement().CachedClassName()
}

func parentIsRow(o *Object) bool {
	p := o.Node.Parent()
	if p == nil {
		return false
	}
	if po, ok := p.(*Object); ok {
		return po.Has(model.OverlayGridRow)
	}
	if o.env.Wrap == nil {
		return false
	}
	wrapped := o.env.Wrap(p)
	return wrapped != nil && wrapped.Has(model.OverlayGridRow)
}
