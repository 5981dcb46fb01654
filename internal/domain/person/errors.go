package person

import "errors"

// ErrInvalidArgument is returned when an enumerated attribute
// does not match any of its allowed values.
var ErrInvalidArgument = errors.New("invalid argument")
