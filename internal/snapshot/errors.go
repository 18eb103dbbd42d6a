package snapshot

import "errors"

// ErrNotFound is returned by Store.Get for a missing key.
var ErrNotFound = errors.New("snapshot: key not found")
