package outlook

import (
	"fmt"

	"github.com/mj1618/outlook-a11y/internal/classify"
	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/overlay"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/mj1618/outlook-a11y/internal/remote"
)

// Classification is the outcome of classifying one fixture element.
type Classification struct {
	ID          int                      `yaml:"id"                    json:"id"`
	Path        string                   `yaml:"path"                  json:"path"`
	Name        string                   `yaml:"name,omitempty"        json:"name,omitempty"`
	Window      string                   `yaml:"window,omitempty"      json:"window,omitempty"`
	Overlays    []model.OverlayID        `yaml:"overlays"              json:"overlays"`
	Corrections []string                 `yaml:"corrections,omitempty" json:"corrections,omitempty"`
	Gestures    []string                 `yaml:"gestures,omitempty"    json:"gestures,omitempty"`
	Document    *overlay.DocumentOptions `yaml:"document,omitempty"    json:"document,omitempty"`
}

// ClassifyTree classifies the elements of root selected by filter as if the
// client reported the given major version. windows supplies the parent
// window classes. cfg decides the document options reported for mail
// bodies.
func ClassifyTree(root model.Element, windows []model.Window, cfg config.Config, version int, filter model.Filter) []Classification {
	byHandle := make(map[int]model.Window, len(windows))
	for _, w := range windows {
		byHandle[w.Handle] = w
	}
	flat := model.FilterFlat(model.FlattenElements([]model.Element{root}), filter)
	out := make([]Classification, 0, len(flat))
	for _, fe := range flat {
		el := fe.Element
		sig := el.Signature()
		if sig.WindowClassName == "" {
			sig.WindowClassName = byHandle[el.WindowHandle].Class
		}
		ids := classify.Choose(sig, el.GenericOverlays(), classify.Context{
			ParentWindowClass: func() string {
				return byHandle[byHandle[el.WindowHandle].Parent].Class
			},
			Version: func() int { return version },
		})
		gestures, doc := overlay.Describe(cfg, ids)
		out = append(out, Classification{
			ID:          el.ID,
			Path:        fe.Path,
			Name:        el.Name,
			Window:      sig.WindowClassName,
			Overlays:    ids,
			Corrections: describeCorrections(classify.Correct(sig)),
			Gestures:    gestures,
			Document:    doc,
		})
	}
	return out
}

// ClassifyScenario classifies the tree of a scenario. A zero version means
// the version reported by the scenario's object model.
func ClassifyScenario(sc sim.Scenario, cfg config.Config, version int, filter model.Filter) []Classification {
	if version == 0 {
		version = ScenarioVersion(sc)
	}
	return ClassifyTree(sc.Tree, sc.Windows, cfg, version, filter)
}

// ScenarioVersion returns the major version of the scenario's object model,
// or 0 when it has none or never attaches.
func ScenarioVersion(sc sim.Scenario) int {
	if sc.Attach == sim.AttachFail {
		return 0
	}
	v, ok := sc.App["Version"]
	if !ok || v == nil {
		return 0
	}
	return remote.ParseVersion(fmt.Sprint(v))
}

func describeCorrections(c classify.Corrections) []string {
	var out []string
	if c.ReparentToGrandparent {
		out = append(out, "reparent-to-grandparent")
	}
	if c.ClearDescription {
		out = append(out, "clear-description")
	}
	if c.AllowFocusEvent {
		out = append(out, "allow-focus-event")
	}
	if c.RoleChanged {
		out = append(out, fmt.Sprintf("role=%s", c.Role))
	}
	return out
}
