/*
Package ports defines the capability interfaces for the system power
controller.

These interfaces decouple the core state machine from the platform it runs
on, allowing the controller to drive real rail hardware, simulated rails, or
test doubles through the same surface.

# Key Interfaces

  - RailDriver: Per-rail set/get primitives for the primary rails and
    auxiliary units.
  - ShutdownDriver: The platform's terminal shutdown hook.
  - OrchestratorRestricted / OrchestratorDriverInput: The two upward-facing
    capabilities of the power-domain-tree orchestrator.
  - Driver / DriverInput: The two capabilities this controller itself exposes.
*/
package ports
