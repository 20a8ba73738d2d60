package model

// Element describes an accessible node in a fixture file. Nesting in
// Children mirrors the accessibility tree.
type Element struct {
	ID          int      `yaml:"id"                    json:"id"`
	Role        string   `yaml:"role"                  json:"role"`
	Name        string   `yaml:"name,omitempty"        json:"name,omitempty"`
	Value       string   `yaml:"value,omitempty"       json:"value,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	States      []string `yaml:"states,omitempty"      json:"states,omitempty"`

	// Backend is one of iaccessible (default), mshtml, uia or window.
	Backend      string `yaml:"backend,omitempty"     json:"backend,omitempty"`
	WindowClass  string `yaml:"windowClass,omitempty" json:"windowClass,omitempty"`
	ControlID    int    `yaml:"controlId,omitempty"   json:"controlId,omitempty"`
	WindowHandle int    `yaml:"hwnd,omitempty"        json:"hwnd,omitempty"`
	ObjectID     *int   `yaml:"objectId,omitempty"    json:"objectId,omitempty"`
	ChildID      *int   `yaml:"childId,omitempty"     json:"childId,omitempty"`

	// ClassName is the cached UIA class name; Headers are the column
	// headers of a UIA text cell.
	ClassName string   `yaml:"className,omitempty" json:"className,omitempty"`
	Headers   []string `yaml:"headers,omitempty"   json:"headers,omitempty"`

	// Generic lists the behaviours the host chose before the overlay hook runs.
	Generic   []string  `yaml:"generic,omitempty"   json:"generic,omitempty"`
	Selection *Range    `yaml:"selection,omitempty" json:"selection,omitempty"`
	Children  []Element `yaml:"children,omitempty"  json:"children,omitempty"`
}

// Range is a text selection inside a document fixture.
type Range struct {
	Start   int    `yaml:"start"             json:"start"`
	End     int    `yaml:"end"               json:"end"`
	Text    string `yaml:"text,omitempty"    json:"text,omitempty"`
	InTable bool   `yaml:"inTable,omitempty" json:"inTable,omitempty"`
	Cell    string `yaml:"cell,omitempty"    json:"cell,omitempty"` // text of the enclosing table cell
}

// Signature returns the classification signature of the element.
func (e Element) Signature() Signature {
	sig := Signature{
		Role:            MapRole(e.Role),
		Backend:         ParseBackend(e.Backend),
		WindowClassName: e.WindowClass,
		WindowControlID: e.ControlID,
		CachedClassName: e.ClassName,
	}
	if e.ObjectID != nil || e.ChildID != nil {
		src := EventSource{}
		if e.ObjectID != nil {
			src.ObjectID = *e.ObjectID
		}
		if e.ChildID != nil {
			src.ChildID = *e.ChildID
		}
		sig.EventSource = &src
	}
	return sig
}

// GenericOverlays returns the host-chosen behaviours as overlay identifiers.
func (e Element) GenericOverlays() []OverlayID {
	ids := make([]OverlayID, 0, len(e.Generic))
	for _, g := range e.Generic {
		ids = append(ids, OverlayID(g))
	}
	return ids
}
