package domain

import "fmt"

// PowerState is the canonical system-level power state. It is the single
// source of truth for "what is the chip doing", decoupled from the raw
// per-rail states that produce it.
type PowerState uint32

const (
	// StateOff means both primary rails are down.
	StateOff PowerState = iota
	// StateOn means the system is fully powered.
	StateOn
	// StateSleep0 is the retention state: SYS0 down, SYS1 held up.
	StateSleep0
)

// Valid reports whether s is a transition target the controller supports.
func (s PowerState) Valid() bool {
	return s == StateOff || s == StateOn || s == StateSleep0
}

func (s PowerState) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateOn:
		return "on"
	case StateSleep0:
		return "sleep0"
	default:
		return fmt.Sprintf("powerstate(%d)", uint32(s))
	}
}

// ParsePowerState converts the textual form produced by String back into a
// PowerState. Used by the config loader and the HTTP surface.
func ParsePowerState(s string) (PowerState, error) {
	switch s {
	case "off":
		return StateOff, nil
	case "on":
		return StateOn, nil
	case "sleep0":
		return StateSleep0, nil
	default:
		return 0, fmt.Errorf("unknown power state %q: %w", s, ErrNotSupported)
	}
}

// RailState is the physical state of a single power rail. It is owned by the
// rail's driver and only observed by the controller.
type RailState uint32

const (
	RailOff RailState = iota
	RailOn
)

func (s RailState) String() string {
	switch s {
	case RailOff:
		return "off"
	case RailOn:
		return "on"
	default:
		return fmt.Sprintf("railstate(%d)", uint32(s))
	}
}

// ParseRailState converts "on"/"off" into a RailState.
func ParseRailState(s string) (RailState, error) {
	switch s {
	case "off":
		return RailOff, nil
	case "on":
		return RailOn, nil
	default:
		return 0, fmt.Errorf("unknown rail state %q: %w", s, ErrNotSupported)
	}
}

// InferState computes the canonical state from the two primary rail readbacks.
// SYS1 down implies the whole system is down regardless of SYS0; with SYS1 up,
// SYS0 distinguishes fully-on from retention. Startup inference and the
// transition reporter share this table.
func InferState(sys0, sys1 RailState) PowerState {
	if sys1 == RailOff {
		return StateOff
	}
	if sys0 == RailOn {
		return StateOn
	}
	return StateSleep0
}
