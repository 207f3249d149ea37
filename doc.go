/*
Package syspower implements the system-level power-state controller of a
System-on-Chip.

The controller owns the canonical power state of the whole chip (on, sleep0,
off), derives it from the states of the two primary rails SYS0 and SYS1,
drives transitions across the rails and a set of auxiliary power-gated units
in a glitch-free order, and reports transitions to a parent power-domain-tree
orchestrator. A wake interrupt fast path requests a deep power-up without
touching controller state.

# Architecture

The package follows Hexagonal Architecture: the core state machine in
internal/controller talks only to the capability interfaces in pkg/ports, and
platform integrations (real rail hardware, the in-memory simulator, the HTTP
control surface) are adapters around those interfaces.

Wiring is two-phase, because the orchestrator cannot be known before it has
bound to this controller:

	sys, err := syspower.New(topology, deps)        // phase 0: outbound binds
	drv, err := sys.BindDriver(orchestratorElement) // orchestrator binds in
	err = sys.AttachOrchestrator(orchestrator)      // phase 1: bind back
	err = sys.Start()                               // seed state from rails

# Usage

	topo := domain.Topology{
		SYS0:               domain.NewElementID("ppu", "sys0"),
		SYS1:               domain.NewElementID("ppu", "sys1"),
		OrchestratorModule: "power-domain",
		WakeInterrupt:      domain.WakeInterruptNone,
	}
	sys, err := syspower.New(topo, syspower.Dependencies{
		SYS0:       railHW,
		SYS1:       railHW,
		Shutdown:   psci,
		Restricted: orchestrator,
	})
*/
package syspower
