package syspower_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	syspower "github.com/rahel-ahmed/SCP-firmware"
	"github.com/rahel-ahmed/SCP-firmware/internal/adapters/memory"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// TestSystemLifecycle walks the full wiring sequence the platform framework
// would drive: phase-0 construction, the orchestrator binding in, the phase-1
// bind-back, startup inference, and then a sleep/wake round trip.
func TestSystemLifecycle(t *testing.T) {
	sys0 := domain.NewElementID("ppu", "sys0")
	sys1 := domain.NewElementID("ppu", "sys1")
	dbg := domain.NewElementID("ppu", "dbgtop")
	topo := domain.Topology{
		SYS0:               sys0,
		SYS1:               sys1,
		AuxUnits:           []domain.AuxUnit{{ID: dbg}},
		WakeInterrupt:      96,
		ShutdownDriver:     domain.NewElementID("psci", "driver"),
		OrchestratorModule: "power-domain",
		SoCWakeDomain:      domain.NewElementID("power-domain", "soc"),
	}

	rails := memory.NewRailBank(sys0, sys1, dbg)
	rails.Seed(sys0, domain.RailOff)
	rails.Seed(sys1, domain.RailOn)
	orchestrator := memory.NewOrchestrator()
	shutdown := memory.NewShutdownRecorder()
	wakeLine := memory.NewInterruptLine()

	sys, err := syspower.New(topo, syspower.Dependencies{
		SYS0:       rails,
		SYS1:       rails,
		Aux:        []ports.RailDriver{rails},
		Shutdown:   shutdown,
		Restricted: orchestrator,
		Wake:       wakeLine,
	})
	require.NoError(t, err)

	// The orchestrator binds in; its identity becomes the system element.
	systemElement := domain.NewElementID("power-domain", "system")
	drv, err := sys.BindDriver(systemElement)
	require.NoError(t, err)
	require.NoError(t, sys.AttachOrchestrator(orchestrator))

	// The rails bind the driver-input capability.
	input, err := sys.BindDriverInput(sys0)
	require.NoError(t, err)

	// Startup inference: SYS1 up, SYS0 down is retention.
	require.NoError(t, sys.Start())
	assert.Equal(t, domain.StateSleep0, sys.GetState())

	// Orchestrator commands full power through its driver handle.
	require.NoError(t, drv.SetState(systemElement, domain.StateOn))
	state, err := drv.GetState(systemElement)
	require.NoError(t, err)
	assert.Equal(t, domain.StateOn, state)

	// Back to retention; the wake interrupt now requests a deep power-up.
	require.NoError(t, sys.SetState(domain.StateSleep0))
	wakeLine.Fire()
	requests := orchestrator.WakeRequests()
	require.Len(t, requests, 1)
	assert.Equal(t, topo.SoCWakeDomain, requests[0].Domain)

	// The orchestrator grants the wake: rails come up and SYS0 reports.
	rails.Seed(sys0, domain.RailOn)
	rails.Seed(sys1, domain.RailOn)
	require.NoError(t, input.ReportPowerStateTransition(sys0, domain.RailOn))
	assert.Equal(t, domain.StateOn, sys.GetState())

	reports := orchestrator.Reports()
	require.NotEmpty(t, reports)
	assert.Equal(t, memory.Report{Domain: systemElement, State: domain.StateOn}, reports[len(reports)-1])

	// Reset stays unsupported, shutdown reaches the platform driver.
	require.ErrorIs(t, sys.Reset(), domain.ErrNotSupported)
	require.NoError(t, sys.Shutdown(domain.ShutdownOff))
	require.Len(t, shutdown.Calls(), 1)
	assert.Equal(t, domain.StateOff, sys.GetState())
}

func TestNew_InvalidTopology(t *testing.T) {
	_, err := syspower.New(domain.Topology{}, syspower.Dependencies{})
	require.ErrorIs(t, err, domain.ErrInvalidTopology)
}
