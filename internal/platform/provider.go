package platform

import (
	"errors"
)

// Provider bundles the host services the adapter consumes.
type Provider struct {
	Windows    Windows
	Speech     Speech
	Braille    Braille
	Presenter  Presenter
	Focus      Focus
	UIA        UIA
	Dates      DateFormatter
	Affordance Affordance
}

// ErrUnsupported is returned when no host backend has been registered.
var ErrUnsupported = errors.New("outlook-a11y: no host backend registered")

// NewProviderFunc is set by host backends via init().
// See internal/platform/sim/init.go for the scripted host.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns the Provider of the registered backend.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
