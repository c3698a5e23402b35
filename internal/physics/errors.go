package physics

import "errors"

// ErrInvalidBody is returned when a body is built with a non-positive radius or mass.
var ErrInvalidBody = errors.New("physics: invalid body")
