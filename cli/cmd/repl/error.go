package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds      = errors.New("index out of range")
	ErrEditDeclined     = errors.New("decline edit")
	ErrUnknownFormat    = errors.New("unknown output format")
	ErrUnknownComponent = errors.New("unknown component")
	ErrNoDocument       = errors.New("nothing parsed yet")
	ErrMissingArgument  = errors.New("missing argument")
)
