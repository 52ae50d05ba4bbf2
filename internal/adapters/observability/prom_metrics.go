// Package observability wires the core's logging and metrics calls to
// slog and Prometheus.
package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/j143/geomag-algorithms/internal/ports"
)

type PromObs struct {
	logger   *slog.Logger
	counters map[string]prometheus.Counter
	gauges   map[string]prometheus.Gauge
	histos   map[string]prometheus.Observer
}

// NewPromObs registers the geomag metric set on the default registry.
// A nil logger falls back to slog.Default.
func NewPromObs(logger *slog.Logger) *PromObs {
	if logger == nil {
		logger = slog.Default()
	}

	samplesRead := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomag_samples_read_total",
		Help: "Samples fetched from the wave server, before gap padding.",
	})
	samplesWritten := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomag_samples_written_total",
		Help: "Samples sent to the Edge node.",
	})
	windowsSent := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomag_windows_sent_total",
		Help: "Protocol windows sent to the Edge node.",
	})
	gapPadded := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomag_gap_samples_padded_total",
		Help: "NaN samples inserted to cover server-side gaps.",
	})
	missingChannels := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomag_missing_channels_total",
		Help: "Channels requested for writing but absent from the input stream.",
	})
	archiveFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "geomag_archive_failures_total",
		Help: "Archive writes that failed after a successful read.",
	})
	sessionsOpen := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "geomag_write_sessions_open",
		Help: "Raw input sessions currently open.",
	})
	queryLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "geomag_query_latency_seconds",
		Help:    "Wave server query latency per channel.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
	sendLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "geomag_send_latency_seconds",
		Help:    "Raw input send latency per window.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})

	prometheus.MustRegister(samplesRead, samplesWritten, windowsSent, gapPadded,
		missingChannels, archiveFailures, sessionsOpen, queryLatency, sendLatency)

	return &PromObs{
		logger: logger,
		counters: map[string]prometheus.Counter{
			"geomag_samples_read_total":       samplesRead,
			"geomag_samples_written_total":    samplesWritten,
			"geomag_windows_sent_total":       windowsSent,
			"geomag_gap_samples_padded_total": gapPadded,
			"geomag_missing_channels_total":   missingChannels,
			"geomag_archive_failures_total":   archiveFailures,
		},
		gauges: map[string]prometheus.Gauge{
			"geomag_write_sessions_open": sessionsOpen,
		},
		histos: map[string]prometheus.Observer{
			"geomag_query_latency_seconds": queryLatency,
			"geomag_send_latency_seconds":  sendLatency,
		},
	}
}

func (p *PromObs) LogInfo(msg string, fields ...ports.Field) {
	p.logger.Info(msg, slogArgs(fields)...)
}

func (p *PromObs) LogWarn(msg string, fields ...ports.Field) {
	p.logger.Warn(msg, slogArgs(fields)...)
}

func (p *PromObs) LogError(msg string, err error, fields ...ports.Field) {
	args := slogArgs(fields)
	if err != nil {
		args = append(args, "error", err)
	}
	p.logger.Error(msg, args...)
}

func (p *PromObs) IncCounter(name string, v float64) {
	if c, ok := p.counters[name]; ok {
		c.Add(v)
	}
}

func (p *PromObs) ObserveLatency(name string, seconds float64) {
	if h, ok := p.histos[name]; ok {
		h.Observe(seconds)
	}
}

func (p *PromObs) SetGauge(name string, v float64) {
	if g, ok := p.gauges[name]; ok {
		g.Set(v)
	}
}

func slogArgs(fields []ports.Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

var _ ports.Observability = (*PromObs)(nil)
