package domain

import "errors"

// Calculation errors. Each aborts only the call that produced it.
var (
	ErrAmbiguousCondition = errors.New("ambiguous condition")
	ErrInputMismatch      = errors.New("input mismatch")
	ErrOutputMismatch     = errors.New("output mismatch")
	ErrNoPosition         = errors.New("no walk position")
)

// Construction errors.
var (
	ErrUnknownGuide    = errors.New("unknown guide")
	ErrReservedName    = errors.New("reserved guide name")
	ErrUnsupportedKind = errors.New("unsupported calculator kind")
	ErrInvalidChart    = errors.New("invalid chart definition")
)
