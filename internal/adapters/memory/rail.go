package memory

import (
	"fmt"
	"sync"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// Command is one journaled rail command.
type Command struct {
	ID    domain.ElementID
	State domain.RailState
}

func (c Command) String() string {
	return fmt.Sprintf("%s=%s", c.ID, c.State)
}

// RailBank implements ports.RailDriver over a map of simulated rails.
// Safe for concurrent use.
type RailBank struct {
	mu      sync.RWMutex
	states  map[domain.ElementID]domain.RailState
	journal []Command
	failSet map[domain.ElementID]error
	failGet map[domain.ElementID]error
}

var _ ports.RailDriver = (*RailBank)(nil)

// NewRailBank creates a bank with all known rails off.
func NewRailBank(ids ...domain.ElementID) *RailBank {
	states := make(map[domain.ElementID]domain.RailState, len(ids))
	for _, id := range ids {
		states[id] = domain.RailOff
	}
	return &RailBank{
		states:  states,
		failSet: make(map[domain.ElementID]error),
		failGet: make(map[domain.ElementID]error),
	}
}

// SetState drives a simulated rail and journals the command.
func (b *RailBank) SetState(id domain.ElementID, state domain.RailState) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.failSet[id]; err != nil {
		return err
	}
	if _, ok := b.states[id]; !ok {
		return fmt.Errorf("unknown rail %s", id)
	}
	b.states[id] = state
	b.journal = append(b.journal, Command{ID: id, State: state})
	return nil
}

// GetState reads back a simulated rail.
func (b *RailBank) GetState(id domain.ElementID) (domain.RailState, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if err := b.failGet[id]; err != nil {
		return 0, err
	}
	state, ok := b.states[id]
	if !ok {
		return 0, fmt.Errorf("unknown rail %s", id)
	}
	return state, nil
}

// Seed places a rail in a physical state without journaling, as if hardware
// moved it on its own.
func (b *RailBank) Seed(id domain.ElementID, state domain.RailState) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.states[id] = state
}

// FailSetState programs SetState for the given rail to fail with err.
// A nil err clears the fault.
func (b *RailBank) FailSetState(id domain.ElementID, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.failSet, id)
		return
	}
	b.failSet[id] = err
}

// FailGetState programs GetState for the given rail to fail with err.
func (b *RailBank) FailGetState(id domain.ElementID, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		delete(b.failGet, id)
		return
	}
	b.failGet[id] = err
}

// Journal returns a copy of the commands issued so far, in order.
func (b *RailBank) Journal() []Command {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]Command, len(b.journal))
	copy(out, b.journal)
	return out
}

// ClearJournal drops the recorded commands, keeping rail states.
func (b *RailBank) ClearJournal() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.journal = nil
}
