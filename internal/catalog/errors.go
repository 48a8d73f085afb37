package catalog

import "errors"

// ErrNotFound indicates the configured catalogue resource does not exist.
var ErrNotFound = errors.New("catalogue not found")
