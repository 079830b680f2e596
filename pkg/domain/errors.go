package domain

import "errors"

// ErrInvalidArgument is returned when a watch is requested with an unusable configuration,
// such as a missing change callback. No property of the target is modified when it is returned.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNilTarget is returned when a build is requested on a nil container.
var ErrNilTarget = errors.New("nil target")
