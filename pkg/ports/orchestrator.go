package ports

import "github.com/rahel-ahmed/SCP-firmware/pkg/domain"

// OrchestratorRestricted is the orchestrator capability used by the wake
// interrupt path. Implementations must be reentrant: SetCompositeStateAsync
// is invoked from interrupt context and may preempt any cooperative call.
type OrchestratorRestricted interface {
	// SetCompositeStateAsync queues a state change for a whole power-domain
	// subtree. The request is fire-and-forget; callers are documented to
	// ignore the returned error beyond debug logging.
	SetCompositeStateAsync(id domain.ElementID, respond bool, state domain.CompositeState) error
}

// OrchestratorDriverInput is the orchestrator capability the controller
// pushes canonical-state transition reports into.
type OrchestratorDriverInput interface {
	// ReportPowerStateTransition tells the orchestrator that the identified
	// power domain has reached the given state. Best effort: the caller does
	// not retry and must not propagate a failure to the rail that triggered
	// the report.
	ReportPowerStateTransition(id domain.ElementID, state domain.PowerState) error
}
