package syspower_test

import (
	"fmt"
	"log"

	syspower "github.com/rahel-ahmed/SCP-firmware"
	"github.com/rahel-ahmed/SCP-firmware/internal/adapters/memory"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// ExampleNew demonstrates wiring the controller against in-memory adapters
// and walking it through a sleep/wake-style transition pair.
func ExampleNew() {
	// 1. Describe the platform: two primary rails and one auxiliary unit.
	sys0 := domain.NewElementID("ppu", "sys0")
	sys1 := domain.NewElementID("ppu", "sys1")
	dbg := domain.NewElementID("ppu", "debug")

	topo := domain.Topology{
		SYS0:               sys0,
		SYS1:               sys1,
		AuxUnits:           []domain.AuxUnit{{ID: dbg}},
		WakeInterrupt:      domain.WakeInterruptNone,
		ShutdownDriver:     domain.NewElementID("psu", "board"),
		OrchestratorModule: "power-domain",
	}

	// 2. Stand in for the hardware with simulated drivers. The rails start
	// fully powered, as a boot firmware would leave them.
	rails := memory.NewRailBank(sys0, sys1, dbg)
	rails.Seed(sys0, domain.RailOn)
	rails.Seed(sys1, domain.RailOn)

	sys, err := syspower.New(topo, syspower.Dependencies{
		SYS0:       rails,
		SYS1:       rails,
		Aux:        []ports.RailDriver{rails},
		Shutdown:   memory.NewShutdownRecorder(),
		Restricted: memory.NewOrchestrator(),
	})
	if err != nil {
		log.Fatal(err)
	}

	// 3. Seed the canonical state from the rails' physical states.
	if err := sys.Start(); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Inferred: %s\n", sys.GetState())

	// 4. Drive a suspend and a resume.
	if err := sys.SetState(domain.StateSleep0); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Suspended: %s\n", sys.GetState())

	if err := sys.SetState(domain.StateOn); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Resumed: %s\n", sys.GetState())
	// Output:
	// Inferred: on
	// Suspended: sleep0
	// Resumed: on
}
