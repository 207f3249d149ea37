package memory

import (
	"sync"

	"github.com/rahel-ahmed/SCP-firmware/pkg/domain"
	"github.com/rahel-ahmed/SCP-firmware/pkg/ports"
)

// WakeRequest is one recorded deep power-up request.
type WakeRequest struct {
	Domain  domain.ElementID
	Respond bool
	State   domain.CompositeState
}

// Report is one recorded canonical-state notification.
type Report struct {
	Domain domain.ElementID
	State  domain.PowerState
}

// Orchestrator implements both orchestrator-side capabilities by recording
// what the controller pushes into them.
type Orchestrator struct {
	mu           sync.Mutex
	wakeRequests []WakeRequest
	reports      []Report
	failAsync    error
	failReport   error
}

var (
	_ ports.OrchestratorRestricted  = (*Orchestrator)(nil)
	_ ports.OrchestratorDriverInput = (*Orchestrator)(nil)
)

// NewOrchestrator creates an empty recording orchestrator.
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{}
}

// SetCompositeStateAsync records a deep power-up request.
func (o *Orchestrator) SetCompositeStateAsync(id domain.ElementID, respond bool, state domain.CompositeState) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failAsync != nil {
		return o.failAsync
	}
	o.wakeRequests = append(o.wakeRequests, WakeRequest{Domain: id, Respond: respond, State: state})
	return nil
}

// ReportPowerStateTransition records a canonical-state notification.
func (o *Orchestrator) ReportPowerStateTransition(id domain.ElementID, state domain.PowerState) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.failReport != nil {
		return o.failReport
	}
	o.reports = append(o.reports, Report{Domain: id, State: state})
	return nil
}

// FailAsync programs SetCompositeStateAsync to fail with err.
func (o *Orchestrator) FailAsync(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failAsync = err
}

// FailReport programs ReportPowerStateTransition to fail with err.
func (o *Orchestrator) FailReport(err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.failReport = err
}

// WakeRequests returns the recorded deep power-up requests in order.
func (o *Orchestrator) WakeRequests() []WakeRequest {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]WakeRequest, len(o.wakeRequests))
	copy(out, o.wakeRequests)
	return out
}

// Reports returns the recorded notifications in order.
func (o *Orchestrator) Reports() []Report {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Report, len(o.reports))
	copy(out, o.reports)
	return out
}
