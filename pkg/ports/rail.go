package ports

import "github.com/rahel-ahmed/SCP-firmware/pkg/domain"

// RailDriver exposes the set/get primitives of a power rail or auxiliary
// unit. Implementations are expected to be register-style and non-blocking;
// there is no suspension point anywhere behind this interface.
type RailDriver interface {
	// SetState drives the identified rail to the requested physical state.
	SetState(id domain.ElementID, state domain.RailState) error

	// GetState reads back the identified rail's physical state.
	GetState(id domain.ElementID) (domain.RailState, error)
}
