package outlook

import (
	"fmt"
	"slices"

	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"github.com/mj1618/outlook-a11y/internal/remote"
	"go.uber.org/zap"
)

// ReplayReport is the outcome of replaying a scenario.
type ReplayReport struct {
	Scenario string       `yaml:"scenario"          json:"scenario"`
	Session  string       `yaml:"session"           json:"session"`
	Version  int          `yaml:"version,omitempty" json:"version,omitempty"`
	Passed   bool         `yaml:"passed"            json:"passed"`
	Steps    []StepReport `yaml:"steps"             json:"steps"`
}

// StepReport is the outcome of one replayed step.
type StepReport struct {
	Step     int      `yaml:"step"               json:"step"`
	Input    string   `yaml:"input"              json:"input"`
	Entries  []string `yaml:"entries"            json:"entries"`
	Expected []string `yaml:"expected,omitempty" json:"expected,omitempty"`
	Passed   bool     `yaml:"passed"             json:"passed"`
	Error    string   `yaml:"error,omitempty"    json:"error,omitempty"`
}

// Replay runs a scenario against a scripted host and records what the host
// was asked to present at each step. A step passes when it has no
// expectations or its entries match them exactly.
func Replay(sc sim.Scenario, cfg config.Config, log *zap.Logger) (ReplayReport, error) {
	if len(sc.Steps) == 0 {
		return ReplayReport{}, fmt.Errorf("scenario %q has no steps", sc.Name)
	}
	if sc.Locale != "" {
		cfg.Locale = sc.Locale
	}
	world := sim.NewWorld(sc)
	a := New(Options{
		Config:    cfg,
		Provider:  world.Host.Provider(),
		Acquire:   world.Acquire,
		Log:       log,
		ProcessID: 1,
	})

	report := ReplayReport{Scenario: sc.Name, Passed: true}
	for i, st := range sc.Steps {
		world.Host.Reset()
		sr := StepReport{Step: i + 1, Expected: st.Expect}
		if err := runStep(a, world, st, &sr); err != nil {
			sr.Error = err.Error()
		}
		for _, e := range world.Host.Entries {
			sr.Entries = append(sr.Entries, e.String())
		}
		sr.Passed = sr.Error == "" && (st.Expect == nil || slices.Equal(sr.Entries, st.Expect))
		if !sr.Passed {
			report.Passed = false
		}
		report.Steps = append(report.Steps, sr)
	}
	report.Session = a.Session().State().String()
	if a.Session().State() == remote.Bound {
		report.Version = a.Session().Version()
	}
	return report, nil
}

func runStep(a *Adapter, world *sim.World, st sim.Step, sr *StepReport) error {
	for _, e := range st.Before {
		if err := world.Apply(e); err != nil {
			return err
		}
	}
	n, err := world.Node(st.Target)
	if err != nil {
		return err
	}
	if st.Event != "" {
		sr.Input = fmt.Sprintf("%s on %d", st.Event, st.Target)
		ev, ok := platform.ParseEventName(st.Event)
		if !ok {
			return fmt.Errorf("unknown event %q", st.Event)
		}
		return a.HandleEvent(ev, n)
	}
	sr.Input = fmt.Sprintf("press %s on %d", st.Press, st.Target)
	return a.ExecuteGesture(n, world.Gesture(st.Press, st.Effects...))
}
