package model

// State is a single accessibility state flag.
type State uint32

const (
	StateSelected State = 1 << iota
	StateFocused
	StateExpanded
	StateCollapsed
	StateInvisible
	StateUnavailable
	StateOffscreen
	StateChecked
)

// StateSet is a set of states stored as a bit mask.
type StateSet uint32

// StateMap maps fixture state names to states.
var StateMap = map[string]State{
	"selected":    StateSelected,
	"focused":     StateFocused,
	"expanded":    StateExpanded,
	"collapsed":   StateCollapsed,
	"invisible":   StateInvisible,
	"unavailable": StateUnavailable,
	"offscreen":   StateOffscreen,
	"checked":     StateChecked,
}

var stateLabels = map[State]string{
	StateSelected:    "selected",
	StateFocused:     "focused",
	StateExpanded:    "expanded",
	StateCollapsed:   "collapsed",
	StateInvisible:   "invisible",
	StateUnavailable: "unavailable",
	StateOffscreen:   "off screen",
	StateChecked:     "checked",
}

// NewStateSet builds a set from the given states.
func NewStateSet(states ...State) StateSet {
	var s StateSet
	for _, st := range states {
		s |= StateSet(st)
	}
	return s
}

// ParseStates builds a set from fixture state names, ignoring unknown names.
func ParseStates(names []string) StateSet {
	var s StateSet
	for _, n := range names {
		if st, ok := StateMap[n]; ok {
			s |= StateSet(st)
		}
	}
	return s
}

// Has reports whether st is in the set.
func (s StateSet) Has(st State) bool {
	return s&StateSet(st) != 0
}

// With returns a copy of the set with st added.
func (s StateSet) With(st State) StateSet {
	return s | StateSet(st)
}

// Label returns the spoken form of a state.
func (st State) Label() string {
	return stateLabels[st]
}
