package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "syspower",
			Subsystem: "controller",
			Name:      "transitions_total",
			Help:      "Canonical state transitions committed.",
		},
		[]string{"state", "trigger"},
	)
	transitionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "syspower",
			Subsystem: "controller",
			Name:      "transition_failures_total",
			Help:      "Transition requests that aborted before commit.",
		},
		[]string{"target"},
	)
	canonicalState = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "syspower",
			Subsystem: "controller",
			Name:      "canonical_state",
			Help:      "Current canonical state (0=off, 1=on, 2=sleep0).",
		},
	)
	notifyFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "syspower",
			Subsystem: "reporter",
			Name:      "notify_failures_total",
			Help:      "Best-effort orchestrator notifications dropped.",
		},
	)
	wakeEvents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "syspower",
			Subsystem: "wake",
			Name:      "events_total",
			Help:      "Wake interrupt firings.",
		},
	)
	wakeDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "syspower",
			Subsystem: "wake",
			Name:      "dropped_total",
			Help:      "Wake power-up requests the orchestrator refused.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			transitions,
			transitionFailures,
			canonicalState,
			notifyFailures,
			wakeEvents,
			wakeDropped,
		)
	})
}

func RecordTransition(state, trigger string) {
	RegisterMetrics()
	transitions.WithLabelValues(state, trigger).Inc()
}

func RecordTransitionFailure(target string) {
	RegisterMetrics()
	transitionFailures.WithLabelValues(target).Inc()
}

func SetCanonicalState(state uint32) {
	RegisterMetrics()
	canonicalState.Set(float64(state))
}

func RecordNotifyFailure() {
	RegisterMetrics()
	notifyFailures.Inc()
}

func RecordWakeEvent() {
	RegisterMetrics()
	wakeEvents.Inc()
}

func RecordWakeDropped() {
	RegisterMetrics()
	wakeDropped.Inc()
}
