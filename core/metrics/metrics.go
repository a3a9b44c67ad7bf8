// Package metrics defines the Prometheus collectors of the dataset server and
// exposes them for scraping.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search outcomes recorded in SearchQueriesTotal.
const (
	ResultHit     = "hit"
	ResultZero    = "zero_result"
	ResultSkipped = "skipped"
	ResultError   = "error"
)

// StatsSource reports cumulative cache hits and misses.
type StatsSource interface {
	Stats() (hits, misses int64)
}

// Metrics holds all Prometheus collectors.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SearchQueriesTotal  *prometheus.CounterVec
	SearchLatency       prometheus.Histogram
	SearchResultsCount  prometheus.Histogram
	DatasetLoadErrors   *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates the collectors on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, route, and status.",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total pokemon searches by result type (hit, zero_result, skipped, error).",
			},
			[]string{"result_type"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_latency_seconds",
				Help:    "Pokemon search latency in seconds, including projection.",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of records returned per search.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500, 1000},
			},
		),
		DatasetLoadErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_load_errors_total",
				Help: "Dataset documents that failed to load, by kind.",
			},
			[]string{"kind"},
		),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SearchQueriesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
		m.DatasetLoadErrors,
	)

	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RegisterCache exposes the hit and miss counters of a cache.
func (m *Metrics) RegisterCache(src StatsSource) {
	m.registry.MustRegister(
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits.",
		}, func() float64 {
			hits, _ := src.Stats()
			return float64(hits)
		}),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses.",
		}, func() float64 {
			_, misses := src.Stats()
			return float64(misses)
		}),
	)
}

// ObserveSearch records one search.
func (m *Metrics) ObserveSearch(elapsed time.Duration, results int, skipped bool, err error) {
	switch {
	case err != nil:
		m.SearchQueriesTotal.WithLabelValues(ResultError).Inc()
		return
	case skipped:
		m.SearchQueriesTotal.WithLabelValues(ResultSkipped).Inc()
	case results == 0:
		m.SearchQueriesTotal.WithLabelValues(ResultZero).Inc()
	default:
		m.SearchQueriesTotal.WithLabelValues(ResultHit).Inc()
	}
	m.SearchLatency.Observe(elapsed.Seconds())
	m.SearchResultsCount.Observe(float64(results))
}

// ObserveLoadError counts a dataset document that failed to load.
func (m *Metrics) ObserveLoadError(kind string) {
	m.DatasetLoadErrors.WithLabelValues(kind).Inc()
}

// Middleware records request counts and latency per matched route.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.HTTPRequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.HTTPRequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler returns the Prometheus scrape endpoint as a fiber handler.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}
