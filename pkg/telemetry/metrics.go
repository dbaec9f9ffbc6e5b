package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Transition outcome label values.
const (
	OutcomeApplied = "applied"
	OutcomeNoop    = "noop"
	OutcomeRaced   = "raced"
)

var (
	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Subsystem: "lifecycle",
		Name:      "transitions_total",
		Help:      "Task status transitions by target status and outcome.",
	}, []string{"target", "outcome"})

	NextOccurrencesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "momentum",
		Subsystem: "lifecycle",
		Name:      "next_occurrences_total",
		Help:      "Next occurrences spawned, by the status that triggered them.",
	}, []string{"trigger"})

	RemindersDismissedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "momentum",
		Subsystem: "lifecycle",
		Name:      "reminders_dismissed_total",
		Help:      "Reminders dismissed by the completion cascade.",
	})

	RateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "momentum",
		Subsystem: "http",
		Name:      "rate_limited_total",
		Help:      "Requests rejected by the rate limiter.",
	})
)
