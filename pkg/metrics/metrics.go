package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Status is the sequencer's current lifecycle status, exported as
	// 0=Starting, 1=CaughtUp, 2=Leader, 3=Activated so it can be graphed
	// alongside a "status changed" alert rule.
	Status = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "evseq_sequencer_status",
			Help: "Current sequencer lifecycle status (0=Starting, 1=CaughtUp, 2=Leader, 3=Activated)",
		},
	)

	EventsPublishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evseq_events_published_total",
			Help: "Total number of events published, by kind (command, activation, heartbeat)",
		},
		[]string{"kind"},
	)

	CommandsProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evseq_commands_processed_total",
			Help: "Total number of commands processed, by outcome (accepted, rejected)",
		},
		[]string{"outcome"},
	)

	InboxClearedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "evseq_inbox_cleared_total",
			Help: "Total number of times the inbox was cleared while Starting",
		},
	)

	ElectionAttemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evseq_election_attempts_total",
			Help: "Total number of Elect() calls, by outcome (won, lost)",
		},
		[]string{"outcome"},
	)

	LeaseRenewalsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "evseq_lease_renewals_total",
			Help: "Total number of Renew() calls, by outcome (ok, lost)",
		},
		[]string{"outcome"},
	)

	ActivationPublishesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "evseq_activation_publishes_total",
			Help: "Total number of activation events published while waiting to observe our own",
		},
	)

	ReplayLag = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "evseq_replay_lag_offset",
			Help: "Difference between the log's tip offset and the last offset replayed, as last observed",
		},
	)

	CommandProcessDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "evseq_command_process_duration_seconds",
			Help:    "Time taken by Sequencer.Process for a single command",
			Buckets: prometheus.DefBuckets,
		},
	)

	PublishDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "evseq_publish_duration_seconds",
			Help:    "Time taken by Publisher.Publish to return (blocks until durable)",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(
		Status,
		EventsPublishedTotal,
		CommandsProcessedTotal,
		InboxClearedTotal,
		ElectionAttemptsTotal,
		LeaseRenewalsTotal,
		ActivationPublishesTotal,
		ReplayLag,
		CommandProcessDuration,
		PublishDuration,
	)
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Timer is a helper for timing operations against a histogram.
type Timer struct {
	start time.Time
}

// NewTimer creates a new timer, starting now.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// ObserveDuration records the elapsed duration to a histogram.
func (t *Timer) ObserveDuration(histogram prometheus.Histogram) {
	histogram.Observe(time.Since(t.start).Seconds())
}

// ObserveDurationVec records the elapsed duration to a histogram vec
// with the given label values.
func (t *Timer) ObserveDurationVec(histogram prometheus.ObserverVec, labels ...string) {
	histogram.WithLabelValues(labels...).Observe(time.Since(t.start).Seconds())
}

// Duration returns the elapsed time since the timer started.
func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
