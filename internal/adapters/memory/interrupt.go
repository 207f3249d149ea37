package memory

import (
	"sync"

	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// InterruptLine simulates the SoC wake interrupt line. Fire delivers the
// interrupt on the caller's goroutine when the line is enabled, and latches a
// pending bit otherwise, matching interrupt-controller semantics closely
// enough for ordering tests.
type InterruptLine struct {
	mu      sync.Mutex
	enabled bool
	pending bool
	handler func()
	fired   int
}

var _ ports.WakeInterrupt = (*InterruptLine)(nil)

// NewInterruptLine creates a disabled line with no handler.
func NewInterruptLine() *InterruptLine {
	return &InterruptLine{}
}

func (l *InterruptLine) Enable() {
	l.mu.Lock()
	l.enabled = true
	deliver := l.pending
	l.pending = false
	handler := l.handler
	l.mu.Unlock()

	// A pending interrupt fires as soon as the line is enabled.
	if deliver && handler != nil {
		l.count()
		handler()
	}
}

func (l *InterruptLine) Disable() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = false
}

func (l *InterruptLine) ClearPending() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pending = false
}

func (l *InterruptLine) SetHandler(handler func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = handler
	return nil
}

// Fire simulates the wake source asserting the line.
func (l *InterruptLine) Fire() {
	l.mu.Lock()
	if !l.enabled || l.handler == nil {
		l.pending = true
		l.mu.Unlock()
		return
	}
	handler := l.handler
	l.mu.Unlock()

	l.count()
	handler()
}

// Enabled reports whether the line is currently enabled.
func (l *InterruptLine) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Pending reports whether an interrupt is latched.
func (l *InterruptLine) Pending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.pending
}

// Fired returns how many times the handler ran.
func (l *InterruptLine) Fired() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fired
}

func (l *InterruptLine) count() {
	l.mu.Lock()
	l.fired++
	l.mu.Unlock()
}
