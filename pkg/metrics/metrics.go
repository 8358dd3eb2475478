package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// total de previsões por status (ok, bad_request, error)
	ForecastRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_requests_total",
			Help: "Total performance forecast requests",
		},
		[]string{"status"},
	)

	ForecastDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forecast_duration_seconds",
			Help:    "Histogram of forecast pipeline latencies",
			Buckets: prometheus.DefBuckets,
		},
	)

	// origem da estimativa de alcance (meta ou heuristic)
	ReachEstimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_reach_estimates_total",
			Help: "Reach estimates produced, labelled by source",
		},
		[]string{"source"},
	)

	UpstreamFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forecast_upstream_failures_total",
			Help: "Reach estimate upstream failures, labelled by reason",
		},
		[]string{"reason"},
	)
)

// Register registra os coletores no registry informado
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{ForecastRequests, ForecastDuration, ReachEstimates, UpstreamFailures} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Recorder abstrai o registro de métricas do motor de previsão
type Recorder interface {
	IncrementForecast(status string)
	ObserveForecastDuration(d time.Duration)
	IncrementReachSource(source string)
	IncrementUpstreamFailure(reason string)
}

// PrometheusRecorder usa os coletores globais do pacote
type PrometheusRecorder struct{}

func NewPrometheusRecorder() *PrometheusRecorder {
	return &PrometheusRecorder{}
}

func (PrometheusRecorder) IncrementForecast(status string) {
	ForecastRequests.WithLabelValues(status).Inc()
}

func (PrometheusRecorder) ObserveForecastDuration(d time.Duration) {
	ForecastDuration.Observe(d.Seconds())
}

func (PrometheusRecorder) IncrementReachSource(source string) {
	ReachEstimates.WithLabelValues(source).Inc()
}

func (PrometheusRecorder) IncrementUpstreamFailure(reason string) {
	UpstreamFailures.WithLabelValues(reason).Inc()
}

// NoopRecorder descarta as métricas; usado em testes
type NoopRecorder struct{}

func (NoopRecorder) IncrementForecast(string)              {}
func (NoopRecorder) ObserveForecastDuration(time.Duration) {}
func (NoopRecorder) IncrementReachSource(string)           {}
func (NoopRecorder) IncrementUpstreamFailure(string)       {}
