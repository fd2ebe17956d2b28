package statekit

import "errors"

// Sentinel errors returned by container constructors, the Machine, and the
// Registry. Call sites wrap these with fmt.Errorf and %w, so errors.Is works
// against the sentinels.
var (
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrInvalidState          = errors.New("invalid state")
	ErrDuplicateRegistration = errors.New("kind already registered")
	ErrNotFound              = errors.New("kind not registered")
)
