package main

import (
	"fmt"
	"log/slog"

	syspower "github.com/rahel-ahmed/SCP-firmware"
	"github.com/rahel-ahmed/SCP-firmware/internal/adapters/memory"
	"github.com/rahel-ahmed/SCP-firmware/internal/config"
	"github.com/rahel-ahmed/SCP-firmware/internal/logging"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
)

// simulation bundles the controller with the simulated platform behind it.
type simulation struct {
	system       *syspower.System
	rails        *memory.RailBank
	orchestrator *memory.Orchestrator
	shutdown     *memory.ShutdownRecorder
	wakeLine     *memory.InterruptLine
	log          *slog.Logger
}

// newSimulation wires the controller to in-memory adapters, walks both bind
// phases with the orchestrator's first element, and runs startup inference
// with the rails seeded fully on.
func newSimulation(topoPath string, verbose bool) (*simulation, error) {
	topo, err := config.Load(topoPath)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := logging.New(level)

	ids := []domain.ElementID{topo.SYS0, topo.SYS1}
	for _, unit := range topo.AuxUnits {
		ids = append(ids, unit.ID)
	}
	rails := memory.NewRailBank(ids...)
	rails.Seed(topo.SYS0, domain.RailOn)
	rails.Seed(topo.SYS1, domain.RailOn)

	orchestrator := memory.NewOrchestrator()
	shutdown := memory.NewShutdownRecorder()

	deps := syspower.Dependencies{
		SYS0:       rails,
		SYS1:       rails,
		Shutdown:   shutdown,
		Restricted: orchestrator,
	}
	for range topo.AuxUnits {
		deps.Aux = append(deps.Aux, rails)
	}

	var wakeLine *memory.InterruptLine
	if topo.HasWakeInterrupt() {
		wakeLine = memory.NewInterruptLine()
		deps.Wake = wakeLine
	}

	sys, err := syspower.New(topo, deps, syspower.WithLogger(log))
	if err != nil {
		return nil, err
	}

	systemElement := domain.NewElementID(topo.OrchestratorModule, "system")
	if _, err := sys.BindDriver(systemElement); err != nil {
		return nil, fmt.Errorf("binding orchestrator: %w", err)
	}
	if err := sys.AttachOrchestrator(orchestrator); err != nil {
		return nil, err
	}
	if err := sys.Start(); err != nil {
		return nil, fmt.Errorf("startup inference: %w", err)
	}

	return &simulation{
		system:       sys,
		rails:        rails,
		orchestrator: orchestrator,
		shutdown:     shutdown,
		wakeLine:     wakeLine,
		log:          log,
	}, nil
}
