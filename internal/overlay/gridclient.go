package overlay

import (
	"github.com/mj1618/outlook-a11y/internal/model"
	"github.com/mj1618/outlook-a11y/internal/platform"
	"go.uber.org/zap"
)

// gridClientMinVersion is the first client version whose message list rows
// are exposed through UI Automation.
const gridClientMinVersion = 14

// gridClient redirects focus on the message list's client area to the row
// UI Automation reports as focused.
type gridClient struct{}

func (*gridClient) ID() model.OverlayID { return model.OverlayGridClient }

func (*gridClient) FilterDuplicates(*Object, func() bool) bool { return false }

// AllowFocusEvent drops focus events raised while the list's window does
// not really hold focus, such as when a menu is open.
func (*gridClient) AllowFocusEvent(o *Object, next func() bool) bool {
	if o.env.Provider.Windows.FocusedWindow(o.WindowThreadID()) != o.WindowHandle() {
		return false
	}
	return next()
}

func (g *gridClient) HandleEvent(o *Object, ev platform.EventName, next func()) {
	if ev != platform.EventGainFocus {
		next()
		return
	}
	target := g.focusedRow(o)
	if target == nil {
		next()
		return
	}
	target.SetParent(o.Parent())
	execute(o, platform.EventGainFocus, target)
}

// focusedRow returns the UI Automation focus wrapped as a grid row, or nil.
// A target that would itself be a grid client is refused so the redirect
// cannot recurse.
func (*gridClient) focusedRow(o *Object) *Object {
	if o.env.version() < gridClientMinVersion {
		return nil
	}
	uia := o.env.Provider.UIA
	if uia == nil || !uia.Available() || o.env.Wrap == nil {
		return nil
	}
	n, err := uia.FocusedNode()
	if err != nil {
		o.log().Debug("retrieving UIA focus failed", zap.Error(err))
		return nil
	}
	if n == nil {
		return nil
	}
	target := o.env.Wrap(n)
	if target == nil || target == o ||
		!target.Has(model.OverlayGridRow) ||
		target.Has(model.OverlayGridClient) {
		return nil
	}
	return target
}
