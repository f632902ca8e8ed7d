package netcode

import "errors"

var (
	ErrNotReady              = errors.New("netcode: transport not ready")
	ErrTransportIncompatible = errors.New("netcode: transport incompatible")
	ErrRetryBudgetExhausted  = errors.New("netcode: retry budget exhausted")
	ErrInvalidConfig         = errors.New("netcode: invalid config")
	ErrMissingCollaborator   = errors.New("netcode: missing host collaborator")
)
