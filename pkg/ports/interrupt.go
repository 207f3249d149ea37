package ports

// WakeInterrupt controls the single SoC wake interrupt line. Enable, Disable
// and ClearPending are register pokes with no failure mode; only handler
// installation can fail, and only at initialization.
type WakeInterrupt interface {
	Enable()
	Disable()
	ClearPending()

	// SetHandler installs the interrupt-context handler. The handler must be
	// safe to run concurrently with any cooperative-path call.
	SetHandler(handler func()) error
}
