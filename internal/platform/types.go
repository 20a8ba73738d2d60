package platform

import "strings"

// EventName names an accessibility event.
type EventName string

const (
	EventGainFocus   EventName = "gainFocus"
	EventNameChange  EventName = "nameChange"
	EventStateChange EventName = "stateChange"
	EventValueChange EventName = "valueChange"
)

// ParseEventName validates an event name from a fixture.
func ParseEventName(s string) (EventName, bool) {
	switch ev := EventName(s); ev {
	case EventGainFocus, EventNameChange, EventStateChange, EventValueChange:
		return ev, true
	}
	return "", false
}

// DateStyle selects a date format.
type DateStyle int

const (
	DateShort DateStyle = iota
	DateLong
)

// TimeStyle selects a time format.
type TimeStyle int

const (
	TimeDefault TimeStyle = iota
	TimeNoSeconds
)

// Property identifies a UIA property in a cache request.
type Property int

const (
	PropertyName Property = iota
	PropertyClassName
	PropertyControlType
	PropertyColumnHeaderItems
)

// TreeScope is the extent of a UIA cache request.
type TreeScope int

const (
	ScopeElement TreeScope = 1 << iota
	ScopeChildren
)

// ControlType is a UIA control type used as a tree filter.
type ControlType int

const (
	ControlAny ControlType = iota
	ControlText
)

// CacheRequest describes which properties and which part of the tree to
// fetch in one round trip.
type CacheRequest struct {
	Properties []Property
	Scope      TreeScope
	Filter     ControlType
}

// Includes reports whether p is part of the request.
func (r CacheRequest) Includes(p Property) bool {
	for _, x := range r.Properties {
		if x == p {
			return true
		}
	}
	return false
}

// NormalizeGesture lower-cases the source and modifiers of a gesture
// identifier, so "KB:Control+Alt+rightArrow" matches "kb:control+alt+rightArrow".
// The key name itself keeps its case.
func NormalizeGesture(id string) string {
	src, keys, ok := strings.Cut(id, ":")
	if !ok {
		return id
	}
	parts := strings.Split(keys, "+")
	for i := 0; i < len(parts)-1; i++ {
		parts[i] = strings.ToLower(parts[i])
	}
	return strings.ToLower(src) + ":" + strings.Join(parts, "+")
}
