package ports

import "github.com/rahel-ahmed/SCP-firmware/pkg/domain"

// Driver is the capability the controller exposes to the orchestrator: the
// system power domain's set/get/reset/shutdown surface. Handles are obtained
// through the controller's BindDriver and carry the binder's identity checks.
type Driver interface {
	// SetState executes a transition to the requested canonical state.
	SetState(id domain.ElementID, target domain.PowerState) error

	// GetState returns the cached canonical state. It never re-queries rails.
	GetState(id domain.ElementID) (domain.PowerState, error)

	// Reset is not implemented by the hardware and always fails with
	// domain.ErrNotSupported.
	Reset(id domain.ElementID) error

	// Shutdown drives the system off and then delegates to the shutdown
	// driver with the supplied reason.
	Shutdown(id domain.ElementID, reason domain.ShutdownReason) error
}

// DriverInput is the capability the two primary rails report their own state
// transitions into. Handles are obtained through the controller's
// BindDriverInput.
type DriverInput interface {
	// ReportPowerStateTransition recomputes the canonical state from rail
	// readbacks and forwards it upward.
	ReportPowerStateTransition(element domain.ElementID, state domain.RailState) error
}
