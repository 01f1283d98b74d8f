package bootstrap

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	taskRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devctl",
			Subsystem: "bootstrap",
			Name:      "task_runs_total",
			Help:      "Total number of task executions by result",
		},
		[]string{"task", "result"},
	)

	taskDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "devctl",
			Subsystem: "bootstrap",
			Name:      "task_duration_seconds",
			Help:      "Duration of task executions in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.5min
		},
		[]string{"task"},
	)
)

func init() {
	prometheus.MustRegister(taskRunsTotal, taskDuration)
}

// recordTaskRun records the outcome and duration of one task execution.
func recordTaskRun(task, result string, d time.Duration) {
	taskRunsTotal.WithLabelValues(task, result).Inc()
	taskDuration.WithLabelValues(task).Observe(d.Seconds())
}
