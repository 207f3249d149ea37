package ports

import "github.com/rahel-ahmed/SCP-firmware/pkg/domain"

// ShutdownDriver is the platform hook that actually powers the system off.
// On real hardware SystemShutdown does not return on success.
type ShutdownDriver interface {
	SystemShutdown(reason domain.ShutdownReason) error
}
