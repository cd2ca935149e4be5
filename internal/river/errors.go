package river

import "errors"

var (
	// ErrMalformedProgram is matched by every error produced while turning
	// program text into a river.
	ErrMalformedProgram = errors.New("malformed program")
	ErrUnsupportedTick  = errors.New("unsupported tick kind")
	ErrNoSuchNode       = errors.New("no such node")
)
