package goenum

import "errors"

// ErrorExhausted is returned by Next and Find when an element is
// demanded unconditionally but none remain.
var ErrorExhausted = errors.New("goenum.exhausted")

// ErrorUnbounded is returned when Count, Force or Clone is attempted
// on a provably infinite enumeration.
var ErrorUnbounded = errors.New("goenum.unbounded")
