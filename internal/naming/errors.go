package naming

import "errors"

// ErrInvalidOutput indicates the naming response could not be parsed into a
// timeline.
var ErrInvalidOutput = errors.New("invalid naming output format")
