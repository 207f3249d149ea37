package domain

import "errors"

// ErrNotSupported is returned for operations the hardware does not implement:
// reset, and transition requests outside {on, sleep0, off}.
var ErrNotSupported = errors.New("operation not supported")

// ErrAccessDenied is returned when a bind request comes from an element that
// is not entitled to the requested capability.
var ErrAccessDenied = errors.New("access denied")

// ErrInvalidCaller is returned when the identity carried on an inbound call
// does not match the element recorded for that surface.
var ErrInvalidCaller = errors.New("invalid caller")

// ErrInvalidTopology is returned when the static topology supplied at
// construction is rejected.
var ErrInvalidTopology = errors.New("invalid topology")

// ErrOrchestratorNotBound is returned when the phase-1 bind-back is attempted
// before the orchestrator has bound to the driver capability.
var ErrOrchestratorNotBound = errors.New("orchestrator not bound")
