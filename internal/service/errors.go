package service

import "errors"

// ErrNotFound is the service's only domain error. Read lookups report a
// missing entity as a nil result instead; only writes that require the
// entity to exist return it.
var ErrNotFound = errors.New("not found")
