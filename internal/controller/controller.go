package controller

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/rahel-ahmed/SCP-firmware/internal/observability"
	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// Dependencies carries the phase-0 outbound capabilities. Aux is parallel to
// Topology.AuxUnits: Aux[i] drives AuxUnits[i].
type Dependencies struct {
	SYS0       ports.RailDriver
	SYS1       ports.RailDriver
	Aux        []ports.RailDriver
	Shutdown   ports.ShutdownDriver
	Restricted ports.OrchestratorRestricted
	Wake       ports.WakeInterrupt
}

// Controller owns the canonical power state of the chip. All driver-surface
// operations serialize on an internal mutex, which is the in-process stand-in
// for the framework's cooperative thread; the wake interrupt handler is the
// one path that never touches it.
type Controller struct {
	topo domain.Topology

	sys0       ports.RailDriver
	sys1       ports.RailDriver
	aux        []ports.RailDriver
	shutdown   ports.ShutdownDriver
	restricted ports.OrchestratorRestricted
	wake       ports.WakeInterrupt

	log   *slog.Logger
	hooks domain.Hooks

	mu           sync.Mutex
	state        domain.PowerState
	systemDomain domain.ElementID
	orchestrator ports.OrchestratorDriverInput
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Controller) {
		c.hooks = hooks
	}
}

// New wires the controller to its outbound capabilities and installs the wake
// interrupt handler when the topology names a wake source. It does not touch
// the rails; call Start to seed the canonical state.
func New(topo domain.Topology, deps Dependencies, opts ...Option) (*Controller, error) {
	if err := topo.Validate(); err != nil {
		return nil, err
	}
	if deps.SYS0 == nil || deps.SYS1 == nil {
		return nil, fmt.Errorf("%w: rail drivers are required", domain.ErrInvalidTopology)
	}
	if deps.Shutdown == nil {
		return nil, fmt.Errorf("%w: shutdown driver is required", domain.ErrInvalidTopology)
	}
	if deps.Restricted == nil {
		return nil, fmt.Errorf("%w: orchestrator restricted capability is required", domain.ErrInvalidTopology)
	}
	if len(deps.Aux) != len(topo.AuxUnits) {
		return nil, fmt.Errorf("%w: %d auxiliary drivers for %d units",
			domain.ErrInvalidTopology, len(deps.Aux), len(topo.AuxUnits))
	}
	for i, drv := range deps.Aux {
		if drv == nil {
			return nil, fmt.Errorf("%w: auxiliary driver %s is nil", domain.ErrInvalidTopology, topo.AuxUnits[i].ID)
		}
	}

	c := &Controller{
		topo:       topo,
		sys0:       deps.SYS0,
		sys1:       deps.SYS1,
		aux:        deps.Aux,
		shutdown:   deps.Shutdown,
		restricted: deps.Restricted,
		wake:       deps.Wake,
		log:        slog.New(slog.NewJSONHandler(io.Discard, nil)),
		state:      domain.StateOff,
	}
	for _, opt := range opts {
		opt(c)
	}

	if topo.HasWakeInterrupt() {
		if deps.Wake == nil {
			return nil, fmt.Errorf("%w: wake line %d configured without an interrupt controller",
				domain.ErrInvalidTopology, topo.WakeInterrupt)
		}
		if err := deps.Wake.SetHandler(c.handleWakeInterrupt); err != nil {
			return nil, fmt.Errorf("installing wake handler: %w", err)
		}
	}

	return c, nil
}

// Start seeds the canonical state from the rails' physical states without
// issuing any rail command. SYS1 down means the whole system is down
// regardless of SYS0; otherwise SYS0 separates full-on from retention.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	sys1, err := c.sys1.GetState(c.topo.SYS1)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.topo.SYS1, err)
	}
	if sys1 == domain.RailOff {
		c.commitLocked(domain.StateOff, domain.TriggerStartup)
		return nil
	}

	sys0, err := c.sys0.GetState(c.topo.SYS0)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.topo.SYS0, err)
	}
	c.commitLocked(domain.InferState(sys0, sys1), domain.TriggerStartup)
	return nil
}

// SetState executes a transition to the requested canonical state, issuing
// rail commands in the fixed order that keeps the wake interrupt quiet while
// rails move and de-powers auxiliary units before the rails gating them.
//
// A mid-sequence rail failure aborts the sequence and is returned verbatim;
// already-issued commands are not rolled back (undoing them would itself
// violate the ordering rules) and the cached state keeps reporting the last
// fully-applied state.
func (c *Controller) SetState(target domain.PowerState) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.setStateLocked(target)
}

func (c *Controller) setStateLocked(target domain.PowerState) error {
	var err error
	switch target {
	case domain.StateOn:
		c.wakeDisable()
		if err = c.sys0.SetState(c.topo.SYS0, domain.RailOn); err == nil {
			if err = c.sys1.SetState(c.topo.SYS1, domain.RailOn); err == nil {
				err = c.auxSetState(domain.RailOn)
			}
		}

	case domain.StateSleep0:
		if err = c.auxSetState(domain.RailOff); err == nil {
			c.wakeClearPending()
			if err = c.sys0.SetState(c.topo.SYS0, domain.RailOff); err == nil {
				if err = c.sys1.SetState(c.topo.SYS1, domain.RailOn); err == nil {
					c.wakeEnable()
				}
			}
		}

	case domain.StateOff:
		c.wakeDisable()
		if err = c.auxSetState(domain.RailOff); err == nil {
			if err = c.sys0.SetState(c.topo.SYS0, domain.RailOff); err == nil {
				err = c.sys1.SetState(c.topo.SYS1, domain.RailOff)
			}
		}

	default:
		observability.RecordTransitionFailure(target.String())
		return fmt.Errorf("transition to %s: %w", target, domain.ErrNotSupported)
	}

	if err != nil {
		observability.RecordTransitionFailure(target.String())
		return fmt.Errorf("transition to %s: %w", target, err)
	}

	c.commitLocked(target, domain.TriggerRequest)
	return nil
}

// GetState returns the cached canonical state. The cache reflects the last
// commanded or last observed rail states; it is never refreshed here.
func (c *Controller) GetState() domain.PowerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Reset is not implemented by the hardware.
func (c *Controller) Reset() error {
	return domain.ErrNotSupported
}

// Shutdown drives the system off and, only if the OFF transition fully
// applied, hands the reason to the shutdown driver, returning its status
// verbatim.
func (c *Controller) Shutdown(reason domain.ShutdownReason) error {
	if err := c.SetState(domain.StateOff); err != nil {
		return err
	}
	c.log.Info("system shutdown", "reason", reason.String())
	return c.shutdown.SystemShutdown(reason)
}

// Topology returns the static wiring the controller was built with.
func (c *Controller) Topology() domain.Topology {
	return c.topo
}

func (c *Controller) auxSetState(state domain.RailState) error {
	for i, drv := range c.aux {
		id := c.topo.AuxUnits[i].ID
		if err := drv.SetState(id, state); err != nil {
			return fmt.Errorf("auxiliary unit %s: %w", id, err)
		}
	}
	return nil
}

func (c *Controller) wakeEnable() {
	if c.wake != nil && c.topo.HasWakeInterrupt() {
		c.wake.Enable()
	}
}

func (c *Controller) wakeDisable() {
	if c.wake != nil && c.topo.HasWakeInterrupt() {
		c.wake.Disable()
	}
}

func (c *Controller) wakeClearPending() {
	if c.wake != nil && c.topo.HasWakeInterrupt() {
		c.wake.ClearPending()
	}
}

// commitLocked records a canonical-state change. Caller holds c.mu.
func (c *Controller) commitLocked(state domain.PowerState, trigger domain.TransitionTrigger) {
	from := c.state
	c.state = state
	observability.RecordTransition(state.String(), string(trigger))
	observability.SetCanonicalState(uint32(state))
	c.log.Debug("canonical state", "from", from.String(), "to", state.String(), "trigger", string(trigger))
	if c.hooks.OnTransition != nil {
		c.hooks.OnTransition(domain.TransitionEvent{
			Timestamp: time.Now(),
			From:      from,
			To:        state,
			Trigger:   trigger,
		})
	}
}
