package overlay

import "errors"

// ErrNoRemoteItem is returned when a synthetic item is built without its
// backing remote item or its list.
var ErrNoRemoteItem = errors.New("overlay: no remote item")
