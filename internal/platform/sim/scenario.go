package sim

import (
	"fmt"
	"os"

	"github.com/mj1618/outlook-a11y/internal/model"
	"gopkg.in/yaml.v3"
)

// Attach modes of a scenario's object model.
const (
	AttachOK       = "ok"
	AttachFailOnce = "fail-once"
	AttachFail     = "fail"
)

// Scenario is a recorded session: the windows and accessibility tree the
// host exposes, the client's object model, and the events and key presses
// to replay against them.
type Scenario struct {
	Name   string `yaml:"name"             json:"name"`
	Locale string `yaml:"locale,omitempty" json:"locale,omitempty"`
	// Attach is ok (default), fail-once or fail.
	Attach string `yaml:"attach,omitempty" json:"attach,omitempty"`
	// NoUIA makes the UI Automation backend unavailable.
	NoUIA bool `yaml:"noUIA,omitempty" json:"noUIA,omitempty"`

	Windows        []model.Window  `yaml:"windows,omitempty"        json:"windows,omitempty"`
	FocusedWindows []FocusedWindow `yaml:"focusedWindows,omitempty" json:"focusedWindows,omitempty"`
	App            map[string]any  `yaml:"app,omitempty"            json:"app,omitempty"`
	Tree           model.Element   `yaml:"tree"                     json:"tree"`
	UIAFocus       int             `yaml:"uiaFocus,omitempty"       json:"uiaFocus,omitempty"`
	Steps          []Step          `yaml:"steps,omitempty"          json:"steps,omitempty"`
}

// FocusedWindow names the window holding focus on a GUI thread.
type FocusedWindow struct {
	Thread int `yaml:"thread" json:"thread"`
	Hwnd   int `yaml:"hwnd"   json:"hwnd"`
}

// Step is one replayed input. Exactly one of Event and Press is set.
type Step struct {
	Event  string `yaml:"event,omitempty" json:"event,omitempty"`
	Press  string `yaml:"press,omitempty" json:"press,omitempty"`
	Target int    `yaml:"target"          json:"target"`

	// Before is applied before the step runs; Effects are applied when a
	// pressed key reaches the application.
	Before  []Effect `yaml:"before,omitempty"  json:"before,omitempty"`
	Effects []Effect `yaml:"effects,omitempty" json:"effects,omitempty"`

	// Expect lists the host entries the step should record, in order.
	Expect []string `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// Effect is a change to the world.
type Effect struct {
	// Remote assigns object model properties by dotted path.
	Remote map[string]any `yaml:"remote,omitempty" json:"remote,omitempty"`

	// Node selects the node the fields below change.
	Node      int          `yaml:"node,omitempty"      json:"node,omitempty"`
	States    []string     `yaml:"states,omitempty"    json:"states,omitempty"`
	Name      *string      `yaml:"name,omitempty"      json:"name,omitempty"`
	Selection *model.Range `yaml:"selection,omitempty" json:"selection,omitempty"`

	UIAFocus int            `yaml:"uiaFocus,omitempty" json:"uiaFocus,omitempty"`
	Focus    *FocusedWindow `yaml:"focus,omitempty"    json:"focus,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := Parse(data)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario from YAML or JSON.
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parsing scenario: %w", err)
	}
	switch sc.Attach {
	case "", AttachOK, AttachFailOnce, AttachFail:
	default:
		return Scenario{}, fmt.Errorf("unknown attach mode %q", sc.Attach)
	}
	for i, st := range sc.Steps {
		if (st.Event == "") == (st.Press == "") {
			return Scenario{}, fmt.Errorf("step %d: exactly one of event and press must be set", i+1)
		}
	}
	return sc, nil
}
