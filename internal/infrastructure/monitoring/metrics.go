// Package monitoring exposes Prometheus metrics for the shopping
// reconciliation engine and its HTTP surface.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects engine- and request-level metrics
type Metrics struct {
	registry *prometheus.Registry

	reconciliationRuns     *prometheus.CounterVec
	reconciliationDuration prometheus.Histogram
	shoppingListItems      prometheus.Histogram
	pantryCoverage         prometheus.Histogram
	aiGenerations          *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewMetrics creates a metrics collector backed by its own registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		reconciliationRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "shopping_reconciliation_runs_total",
			Help: "Total shopping list reconciliation runs by outcome",
		}, []string{"outcome"}),
		reconciliationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopping_reconciliation_duration_seconds",
			Help:    "Duration of a full reconciliation run including repository reads",
			Buckets: prometheus.DefBuckets,
		}),
		shoppingListItems: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopping_list_items",
			Help:    "Items emitted per generated shopping list",
			Buckets: []float64{0, 5, 10, 20, 40, 80},
		}),
		pantryCoverage: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "shopping_pantry_coverage_percentage",
			Help:    "Pantry coverage percentage per reconciliation run",
			Buckets: []float64{0, 10, 25, 50, 75, 90, 100},
		}),
		aiGenerations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "meal_plan_ai_generations_total",
			Help: "Total AI meal plan generations by provider and outcome",
		}, []string{"provider", "outcome"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration by method and path",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// RecordReconciliation records one engine run
func (m *Metrics) RecordReconciliation(outcome string, duration time.Duration, items, coverage int) {
	m.reconciliationRuns.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.reconciliationDuration.Observe(duration.Seconds())
		m.shoppingListItems.Observe(float64(items))
		m.pantryCoverage.Observe(float64(coverage))
	}
}

// RecordAIGeneration records one meal plan generation attempt
func (m *Metrics) RecordAIGeneration(provider, outcome string) {
	m.aiGenerations.WithLabelValues(provider, outcome).Inc()
}

// RecordRequest records one HTTP request
func (m *Metrics) RecordRequest(method, path string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler returns the /metrics scrape handler for this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
