package controller

import (
	"fmt"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// BindDriver answers a bind request for the driver capability. Only elements
// of the orchestrator module are accepted; the accepted requester is recorded
// as the system power-domain element so later driver calls and upward reports
// can be checked and addressed against it.
func (c *Controller) BindDriver(requester domain.ElementID) (ports.Driver, error) {
	if !requester.SameModule(c.topo.OrchestratorModule) {
		return nil, fmt.Errorf("driver bind from %s: %w", requester, domain.ErrAccessDenied)
	}

	c.mu.Lock()
	c.systemDomain = requester
	c.mu.Unlock()

	c.log.Debug("driver capability bound", "requester", requester.String())
	return driverHandle{c: c}, nil
}

// BindDriverInput answers a bind request for the driver-input capability.
// Only the two primary rails recorded in the topology may report transitions.
func (c *Controller) BindDriverInput(requester domain.ElementID) (ports.DriverInput, error) {
	if requester != c.topo.SYS0 && requester != c.topo.SYS1 {
		return nil, fmt.Errorf("driver-input bind from %s: %w", requester, domain.ErrAccessDenied)
	}
	return driverInputHandle{c: c}, nil
}

// AttachOrchestrator completes phase 1 of the wiring: once the orchestrator
// has bound to the driver capability (and is therefore known), the controller
// binds back to its driver-input capability so transition reports can flow
// upward. Calling it before BindDriver has recorded an orchestrator fails.
func (c *Controller) AttachOrchestrator(input ports.OrchestratorDriverInput) error {
	if input == nil {
		return fmt.Errorf("attach orchestrator: %w", domain.ErrOrchestratorNotBound)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.systemDomain.IsNone() {
		return fmt.Errorf("attach orchestrator: %w", domain.ErrOrchestratorNotBound)
	}
	c.orchestrator = input
	return nil
}

// checkCall validates the domain identity carried on a driver-surface call
// against the element recorded at bind time.
func (c *Controller) checkCall(id domain.ElementID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.systemDomain.IsNone() || id != c.systemDomain {
		return fmt.Errorf("call for %s: %w", id, domain.ErrInvalidCaller)
	}
	return nil
}

// driverHandle adapts the controller to the exposed Driver capability.
type driverHandle struct {
	c *Controller
}

func (d driverHandle) SetState(id domain.ElementID, target domain.PowerState) error {
	if err := d.c.checkCall(id); err != nil {
		return err
	}
	return d.c.SetState(target)
}

func (d driverHandle) GetState(id domain.ElementID) (domain.PowerState, error) {
	if err := d.c.checkCall(id); err != nil {
		return 0, err
	}
	return d.c.GetState(), nil
}

func (d driverHandle) Reset(id domain.ElementID) error {
	if err := d.c.checkCall(id); err != nil {
		return err
	}
	return d.c.Reset()
}

func (d driverHandle) Shutdown(id domain.ElementID, reason domain.ShutdownReason) error {
	if err := d.c.checkCall(id); err != nil {
		return err
	}
	return d.c.Shutdown(reason)
}

// driverInputHandle adapts the controller to the exposed DriverInput
// capability.
type driverInputHandle struct {
	c *Controller
}

func (d driverInputHandle) ReportPowerStateTransition(element domain.ElementID, state domain.RailState) error {
	return d.c.ReportRailTransition(element, state)
}
