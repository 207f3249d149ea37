package domain

import "time"

// TransitionTrigger describes what caused a canonical-state change.
type TransitionTrigger string

const (
	// TriggerRequest is a commanded transition through the driver surface.
	TriggerRequest TransitionTrigger = "request"
	// TriggerReport is a recomputation after a rail reported its own change.
	TriggerReport TransitionTrigger = "report"
	// TriggerStartup is the initial inference pass.
	TriggerStartup TransitionTrigger = "startup"
)

// TransitionEvent is a record of one canonical-state change.
type TransitionEvent struct {
	Timestamp time.Time         `json:"timestamp"`
	From      PowerState        `json:"from"`
	To        PowerState        `json:"to"`
	Trigger   TransitionTrigger `json:"trigger"`
}

// Hooks defines optional callbacks for observing the controller. Callbacks
// run on the calling goroutine and must not call back into the controller.
type Hooks struct {
	OnTransition func(TransitionEvent)
	OnWakeEvent  func()
}
