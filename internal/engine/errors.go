package engine

import "errors"

// Domain errors for world construction.
var (
	// ErrDomainTooDense indicates placement rejection sampling ran out
	// of attempts; the domain cannot fit the requested particle count
	// at the requested radius.
	ErrDomainTooDense = errors.New("engine: domain too dense for particle count and radius")
)
