package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle results.
const (
	CycleCompleted = "completed"
	CycleAborted   = "aborted"
)

var cyclesTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskmetrics_cycles_total",
		Help: "Total number of observation cycles per agent, by result.",
	},
	[]string{"target", "result"},
)

var cycleDurationSeconds = promauto.With(prometheus.DefaultRegisterer).NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "taskmetrics_cycle_duration_seconds",
		Help:    "Duration of one observation cycle per agent.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"target"},
)

var unresolvedTasksTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskmetrics_unresolved_tasks_total",
		Help: "Total number of task statistics dropped because the task " +
			"was missing in the agent state.",
	},
	[]string{"target"},
)

var skippedContainersTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskmetrics_skipped_containers_total",
		Help: "Total number of containers skipped while sampling, by reason.",
	},
	[]string{"reason"},
)

var sinkFailuresTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "taskmetrics_sink_failures_total",
		Help: "Total number of failed deliveries per sink.",
	},
	[]string{"sink"},
)

// RecordCycle counts a finished or aborted cycle of target.
func RecordCycle(target, result string) {
	cyclesTotal.WithLabelValues(target, result).Inc()
}

// ObserveCycleDuration records how long one cycle of target took.
func ObserveCycleDuration(target string, d time.Duration) {
	cycleDurationSeconds.WithLabelValues(target).Observe(d.Seconds())
}

// RecordUnresolvedTask counts statistics that could not be attributed to a task.
func RecordUnresolvedTask(target string) {
	unresolvedTasksTotal.WithLabelValues(target).Inc()
}

// RecordSkippedContainer counts a container left out of a sample set.
func RecordSkippedContainer(reason string) {
	skippedContainersTotal.WithLabelValues(reason).Inc()
}

// RecordSinkFailure counts a failed delivery to sink.
func RecordSinkFailure(sink string) {
	sinkFailuresTotal.WithLabelValues(sink).Inc()
}

var pingerUp = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "taskmetrics_pinger_up",
		Help: "Whether the last health ping of a component succeeded.",
	},
	[]string{"name"},
)

// SetPingerUp records the outcome of the last ping of name.
func SetPingerUp(name string, up bool) {
	value := 0.0
	if up {
		value = 1
	}

	pingerUp.WithLabelValues(name).Set(value)
}
