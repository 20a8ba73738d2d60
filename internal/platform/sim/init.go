package sim

import "github.com/mj1618/outlook-a11y/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return NewHost().Provider(), nil
	}
}
