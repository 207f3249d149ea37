package domain

import "fmt"

// ShutdownReason qualifies a system shutdown request and is handed verbatim
// to the shutdown driver.
type ShutdownReason uint32

const (
	// ShutdownOff powers the system down without restart.
	ShutdownOff ShutdownReason = iota
	// ShutdownReboot powers down and restarts.
	ShutdownReboot
	// ShutdownForced is an ungraceful power-off after a fatal condition.
	ShutdownForced
)

func (r ShutdownReason) String() string {
	switch r {
	case ShutdownOff:
		return "off"
	case ShutdownReboot:
		return "reboot"
	case ShutdownForced:
		return "forced"
	default:
		return fmt.Sprintf("shutdown(%d)", uint32(r))
	}
}

// ParseShutdownReason converts the textual form back into a reason.
func ParseShutdownReason(s string) (ShutdownReason, error) {
	switch s {
	case "off":
		return ShutdownOff, nil
	case "reboot":
		return ShutdownReboot, nil
	case "forced":
		return ShutdownForced, nil
	default:
		return 0, fmt.Errorf("unknown shutdown reason %q: %w", s, ErrNotSupported)
	}
}
