package streamfft

import "github.com/prometheus/client_golang/prometheus"

// Metrics collects per-engine transform counters for Prometheus. One
// Metrics value may be shared by several engines; the collectors are
// safe for concurrent use.
type Metrics struct {
	framesTotal      prometheus.Counter
	framingErrors    prometheus.Counter
	transportErrors  prometheus.Counter
	transformSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		framesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamfft_frames_total",
			Help: "Frames transformed successfully",
		}),
		framingErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamfft_framing_errors_total",
			Help: "Frames rejected for a misplaced end-of-frame marker",
		}),
		transportErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "streamfft_transport_errors_total",
			Help: "Frames aborted by channel read/write failures",
		}),
		transformSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "streamfft_transform_seconds",
			Help:    "Wall time per frame transform",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	reg.MustRegister(m.framesTotal, m.framingErrors, m.transportErrors, m.transformSeconds)

	return m
}
