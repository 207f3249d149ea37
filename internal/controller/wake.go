package controller

import (
	"github.com/rahel-ahmed/SCP-firmware/internal/observability"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

// handleWakeInterrupt runs in interrupt context and may preempt any
// cooperative-path call. It takes no lock: the only state it touches is the
// restricted orchestrator handle, which is immutable after construction. The
// deep power-up request is fire-and-forget; a failure is logged at debug and
// counted, nothing more.
func (c *Controller) handleWakeInterrupt() {
	observability.RecordWakeEvent()
	if c.hooks.OnWakeEvent != nil {
		c.hooks.OnWakeEvent()
	}

	err := c.restricted.SetCompositeStateAsync(c.topo.SoCWakeDomain, false, domain.SoCWakeComposite())
	if err != nil {
		c.log.Debug("wake request dropped", "domain", c.topo.SoCWakeDomain.String(), "err", err)
		observability.RecordWakeDropped()
	}
}
