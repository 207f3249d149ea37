package syspower

import (
	"log/slog"

	"github.com/rahel-ahmed/SCP-firmware/internal/controller"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// Version is the module version, stamped by the release process.
var Version = "0.1.0-dev"

// Dependencies carries the outbound capabilities bound during phase-0
// wiring. Aux is parallel to Topology.AuxUnits. Wake may be nil when the
// topology has no wake interrupt source.
type Dependencies struct {
	SYS0       ports.RailDriver
	SYS1       ports.RailDriver
	Aux        []ports.RailDriver
	Shutdown   ports.ShutdownDriver
	Restricted ports.OrchestratorRestricted
	Wake       ports.WakeInterrupt
}

// System is the high-level entry point for the controller. It wraps the
// internal state machine and provides a simplified API for embedders.
type System struct {
	controller *controller.Controller
	logger     *slog.Logger
	hooks      domain.Hooks
}

// Option defines a functional option for configuring the System.
type Option func(*System)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *System) {
		s.hooks = hooks
	}
}

// New performs phase-0 wiring: it validates the topology, binds the outbound
// capabilities and installs the wake interrupt handler when one is
// configured. It issues no rail command; call Start to seed the canonical
// state from the rails' physical states.
func New(topo domain.Topology, deps Dependencies, opts ...Option) (*System, error) {
	sys := &System{}
	for _, opt := range opts {
		opt(sys)
	}

	ctrlOpts := []controller.Option{controller.WithHooks(sys.hooks)}
	if sys.logger != nil {
		ctrlOpts = append(ctrlOpts, controller.WithLogger(sys.logger))
	}

	ctrl, err := controller.New(topo, controller.Dependencies{
		SYS0:       deps.SYS0,
		SYS1:       deps.SYS1,
		Aux:        deps.Aux,
		Shutdown:   deps.Shutdown,
		Restricted: deps.Restricted,
		Wake:       deps.Wake,
	}, ctrlOpts...)
	if err != nil {
		return nil, err
	}

	sys.controller = ctrl
	return sys, nil
}

// Start runs the startup inference pass, seeding the canonical state without
// issuing any rail command.
func (s *System) Start() error {
	return s.controller.Start()
}

// SetState executes a transition to the requested canonical state.
func (s *System) SetState(target domain.PowerState) error {
	return s.controller.SetState(target)
}

// GetState returns the cached canonical state.
func (s *System) GetState() domain.PowerState {
	return s.controller.GetState()
}

// Reset always fails: the capability is not implemented by the hardware.
func (s *System) Reset() error {
	return s.controller.Reset()
}

// Shutdown drives the system off and delegates to the shutdown driver.
func (s *System) Shutdown(reason domain.ShutdownReason) error {
	return s.controller.Shutdown(reason)
}

// ReportRailTransition is the driver-input surface invoked when a primary
// rail reports its own state change.
func (s *System) ReportRailTransition(element domain.ElementID, state domain.RailState) error {
	return s.controller.ReportRailTransition(element, state)
}

// BindDriver answers a bind request for the driver capability, enforcing
// that the requester belongs to the orchestrator module.
func (s *System) BindDriver(requester domain.ElementID) (ports.Driver, error) {
	return s.controller.BindDriver(requester)
}

// BindDriverInput answers a bind request for the driver-input capability,
// restricted to the two primary rails.
func (s *System) BindDriverInput(requester domain.ElementID) (ports.DriverInput, error) {
	return s.controller.BindDriverInput(requester)
}

// AttachOrchestrator completes phase-1 wiring once the orchestrator's
// identity is known from its driver bind.
func (s *System) AttachOrchestrator(input ports.OrchestratorDriverInput) error {
	return s.controller.AttachOrchestrator(input)
}

// Topology returns the static wiring the system was built with.
func (s *System) Topology() domain.Topology {
	return s.controller.Topology()
}
