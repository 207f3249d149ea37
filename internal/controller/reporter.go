package controller

import (
	"fmt"

	"github.com/rahel-ahmed/SCP-firmware/internal/observability"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

// ReportRailTransition handles a primary rail reporting its own state change.
// Both rails are re-read, the canonical state is recomputed from the shared
// inference table, and the result is pushed to the orchestrator best-effort:
// a notification failure is logged and counted but never returned, since the
// reporting rail has already committed its transition and cannot roll back.
func (c *Controller) ReportRailTransition(element domain.ElementID, railState domain.RailState) error {
	if element != c.topo.SYS0 && element != c.topo.SYS1 {
		return fmt.Errorf("transition report from %s: %w", element, domain.ErrInvalidCaller)
	}

	c.mu.Lock()
	sys0, err := c.sys0.GetState(c.topo.SYS0)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("reading %s: %w", c.topo.SYS0, err)
	}
	sys1, err := c.sys1.GetState(c.topo.SYS1)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("reading %s: %w", c.topo.SYS1, err)
	}

	state := domain.InferState(sys0, sys1)
	c.commitLocked(state, domain.TriggerReport)
	orchestrator := c.orchestrator
	systemDomain := c.systemDomain
	c.mu.Unlock()

	if orchestrator == nil {
		c.log.Warn("transition report dropped: orchestrator not attached",
			"rail", element.String(), "state", state.String())
		observability.RecordNotifyFailure()
		return nil
	}
	if err := orchestrator.ReportPowerStateTransition(systemDomain, state); err != nil {
		c.log.Warn("transition notification failed",
			"rail", element.String(), "state", state.String(), "err", err)
		observability.RecordNotifyFailure()
	}
	return nil
}
