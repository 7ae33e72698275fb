package core

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vagledaren/vagledaren/pkg/metrics"
)

type Metrics struct {
	apiResponseTime   *prometheus.HistogramVec
	apiErrorCounter   *prometheus.CounterVec
	modelResponseTime *prometheus.HistogramVec
	modelError        *prometheus.CounterVec
	composeTime       *prometheus.HistogramVec
	retrievalHits     *prometheus.CounterVec
}

func NewMetrics(ns, system string) *Metrics {
	metrics.SetupMetricsManager(ns, system, prometheus.DefaultRegisterer.(*prometheus.Registry))

	m := &Metrics{
		apiResponseTime:   metrics.NewHistogramVec("api_response_time", []string{"api"}),
		apiErrorCounter:   metrics.NewCounterVec("api_error", []string{"method", "api", "status"}),
		modelResponseTime: metrics.NewHistogramVec("model_response_time", []string{"model"}),
		modelError:        metrics.NewCounterVec("model_error", []string{"type"}),
		composeTime:       metrics.NewHistogramVec("compose_prompt_time", []string{"mode"}),
		retrievalHits:     metrics.NewCounterVec("knowledge_retrieval_hits", []string{"relevant"}),
	}

	return m
}

func (m *Metrics) ApiErrorInc(method, api string, status int) {
	m.apiErrorCounter.WithLabelValues(method, api, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ApiResponseTimer(api string) *prometheus.Timer {
	return prometheus.NewTimer(m.apiResponseTime.WithLabelValues(api))
}

func (m *Metrics) ModelResponseTimer(model string) *prometheus.Timer {
	return prometheus.NewTimer(m.modelResponseTime.WithLabelValues(model))
}

func (m *Metrics) ModelErrorInc(kind string) {
	m.modelError.WithLabelValues(kind).Inc()
}

func (m *Metrics) ComposeObserve(mode string, elapsed time.Duration) {
	m.composeTime.WithLabelValues(mode).Observe(elapsed.Seconds())
}

func (m *Metrics) RetrievalHitInc(relevant bool) {
	m.retrievalHits.WithLabelValues(strconv.FormatBool(relevant)).Inc()
}
