package domain

import "fmt"

// WakeInterruptNone marks a topology without a wake interrupt source.
const WakeInterruptNone = -1

// AuxUnit describes an auxiliary power-gated unit driven in lockstep with the
// primary rails but excluded from canonical-state inference.
type AuxUnit struct {
	ID ElementID
}

// Topology is the static wiring of the controller, set once at construction
// and never mutated afterwards.
type Topology struct {
	// SYS0 and SYS1 identify the two primary rails.
	SYS0 ElementID
	SYS1 ElementID

	// AuxUnits lists the auxiliary units in the order their rails are driven.
	AuxUnits []AuxUnit

	// WakeInterrupt is the interrupt line number of the SoC wake source, or
	// WakeInterruptNone when the platform has no wake interrupt.
	WakeInterrupt int

	// ShutdownDriver identifies the element implementing system shutdown.
	ShutdownDriver ElementID

	// OrchestratorModule names the power-domain-tree module whose elements
	// may bind to the driver capability.
	OrchestratorModule string

	// SoCWakeDomain is the power-domain element targeted by the deep wakeup
	// request issued from the wake interrupt path.
	SoCWakeDomain ElementID
}

// Validate rejects topologies the controller cannot operate on.
func (t Topology) Validate() error {
	if t.SYS0.IsNone() || t.SYS1.IsNone() {
		return fmt.Errorf("%w: both primary rails must be identified", ErrInvalidTopology)
	}
	if t.SYS0 == t.SYS1 {
		return fmt.Errorf("%w: SYS0 and SYS1 must be distinct elements", ErrInvalidTopology)
	}
	if t.OrchestratorModule == "" {
		return fmt.Errorf("%w: orchestrator module must be named", ErrInvalidTopology)
	}
	seen := map[ElementID]struct{}{t.SYS0: {}, t.SYS1: {}}
	for _, unit := range t.AuxUnits {
		if unit.ID.IsNone() {
			return fmt.Errorf("%w: auxiliary unit without identity", ErrInvalidTopology)
		}
		if _, dup := seen[unit.ID]; dup {
			return fmt.Errorf("%w: duplicate element %s", ErrInvalidTopology, unit.ID)
		}
		seen[unit.ID] = struct{}{}
	}
	return nil
}

// HasWakeInterrupt reports whether the topology names a wake source.
func (t Topology) HasWakeInterrupt() bool {
	return t.WakeInterrupt != WakeInterruptNone
}
