package memory

import (
	"sync"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// ShutdownRecorder implements ports.ShutdownDriver by recording each request
// instead of powering anything off.
type ShutdownRecorder struct {
	mu    sync.Mutex
	calls []domain.ShutdownReason
	fail  error
}

var _ ports.ShutdownDriver = (*ShutdownRecorder)(nil)

// NewShutdownRecorder creates an empty recorder.
func NewShutdownRecorder() *ShutdownRecorder {
	return &ShutdownRecorder{}
}

// SystemShutdown records the reason and returns the programmed result.
func (s *ShutdownRecorder) SystemShutdown(reason domain.ShutdownReason) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.calls = append(s.calls, reason)
	return nil
}

// Fail programs SystemShutdown to fail with err; nil clears the fault.
func (s *ShutdownRecorder) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// Calls returns the recorded shutdown reasons in order.
func (s *ShutdownRecorder) Calls() []domain.ShutdownReason {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ShutdownReason, len(s.calls))
	copy(out, s.calls)
	return out
}
