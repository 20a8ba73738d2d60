package remote

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mj1618/outlook-a11y/internal/platform"
	"go.uber.org/zap"
)

// State is the lifecycle of a Session.
type State int

const (
	// Unbound: no acquisition attempted yet.
	Unbound State = iota
	// PendingFirstAttempt: the first attempt failed and the waiting dialog
	// has been shown; the next access retries once.
	PendingFirstAttempt
	// Bound: the object model is reachable.
	Bound
	// PermanentlyFailed: the retry failed too. No further attempts are made.
	PermanentlyFailed
)

func (s State) String() string {
	switch s {
	case Unbound:
		return "unbound"
	case PendingFirstAttempt:
		return "pending"
	case Bound:
		return "bound"
	case PermanentlyFailed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Acquirer attaches to the running client's application object.
type Acquirer func() (Object, error)

// WaitingTitle is the title of the dialog shown while the client registers
// its object model.
const WaitingTitle = "Waiting for Outlook..."

// Session is the process-wide handle to the object model. It is created by
// the adapter and borrowed by overlays. Access is confined to the event
// dispatch thread, so it holds no lock.
type Session struct {
	acquire    Acquirer
	affordance platform.Affordance
	log        *zap.Logger

	state   State
	app     Object
	version int
	hasVer  bool
}

// NewSession returns an Unbound session.
func NewSession(acquire Acquirer, affordance platform.Affordance, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{acquire: acquire, affordance: affordance, log: log}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Acquire returns the application object, attaching on first use.
//
// The first failed attempt shows the waiting dialog, pumps pending UI
// events once so focus on the dialog is noticed, and returns
// ErrUnavailable; the caller's next access retries. A failed retry is
// logged once and cached for the rest of the session.
func (s *Session) Acquire() (Object, error) {
	switch s.state {
	case Bound:
		return s.app, nil
	case PermanentlyFailed:
		return nil, ErrUnavailable
	}

	app, err := s.attach()
	if err == nil {
		s.app = app
		s.state = Bound
		return app, nil
	}

	if s.state == PendingFirstAttempt {
		s.state = PermanentlyFailed
		s.log.Error("failed to get native object model", zap.Error(err))
		return nil, ErrUnavailable
	}

	s.state = PendingFirstAttempt
	s.showWaiting()
	return nil, ErrUnavailable
}

func (s *Session) attach() (Object, error) {
	if s.acquire == nil {
		return nil, ErrUnavailable
	}
	app, err := s.acquire()
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrUnavailable
	}
	return app, nil
}

func (s *Session) showWaiting() {
	if s.affordance == nil {
		return
	}
	dismiss := s.affordance.ShowWaiting(WaitingTitle)
	s.affordance.PumpEvents()
	if dismiss != nil {
		dismiss()
	}
}

// App returns the application object or nil. It is Acquire for callers
// that treat an unreachable object model as "no data".
func (s *Session) App() Object {
	app, err := s.Acquire()
	if err != nil {
		return nil
	}
	return app
}

// Version returns the client's major version, or 0 while the object model
// is unreachable. Once read from a bound session the value never changes.
func (s *Session) Version() int {
	if s.hasVer {
		return s.version
	}
	app := s.App()
	if app == nil {
		return 0
	}
	s.version = ParseVersion(StringOr(s.log, app, "", "Version"))
	s.hasVer = true
	return s.version
}

// ParseVersion extracts the major number from a dotted version string.
func ParseVersion(v string) int {
	major, _, _ := strings.Cut(strings.TrimSpace(v), ".")
	n, err := strconv.Atoi(major)
	if err != nil {
		return 0
	}
	return n
}
