package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OptimizerMetrics records per-run metadata for the shift optimizer service.
type OptimizerMetrics struct {
	duration        *prometheus.HistogramVec
	success         *prometheus.CounterVec
	failure         *prometheus.CounterVec
	shiftsScheduled prometheus.Counter
}

// NewOptimizerMetrics registers the optimizer metrics on the provided registerer.
func NewOptimizerMetrics(reg prometheus.Registerer) *OptimizerMetrics {
	if reg == nil {
		return &OptimizerMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "optimizer_run_duration_seconds",
		Help:    "Duration of optimization runs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_run_success",
		Help: "Successful optimization runs.",
	}, []string{"endpoint"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_run_failure",
		Help: "Failed optimization runs.",
	}, []string{"endpoint"})
	shifts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "optimizer_shifts_scheduled_total",
		Help: "Total shifts produced across all optimization runs.",
	})
	reg.MustRegister(duration, success, failure, shifts)
	return &OptimizerMetrics{
		duration:        duration,
		success:         success,
		failure:         failure,
		shiftsScheduled: shifts,
	}
}

// ObserveRun records one run's duration under the given outcome label.
func (m *OptimizerMetrics) ObserveRun(outcome string, d time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(outcome)).Observe(d.Seconds())
}

// IncSuccess increments the success counter for the named endpoint.
func (m *OptimizerMetrics) IncSuccess(endpoint string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

// IncFailure increments the failure counter for the named endpoint.
func (m *OptimizerMetrics) IncFailure(endpoint string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(endpoint)).Inc()
}

// AddShifts adds to the scheduled-shift total.
func (m *OptimizerMetrics) AddShifts(n int) {
	if m == nil || m.shiftsScheduled == nil || n <= 0 {
		return
	}
	m.shiftsScheduled.Add(float64(n))
}

func normalizeLabel(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
