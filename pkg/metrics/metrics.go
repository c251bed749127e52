package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Ingestion metrics
	ScrapeRunsTotal     *prometheus.CounterVec
	BusinessesIngested  *prometheus.CounterVec
	ScrapeRunDuration   prometheus.Histogram

	// Outreach metrics
	OutreachSends *prometheus.CounterVec

	// Export metrics
	ExportsCreated prometheus.Counter

	// Cache metrics
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New() *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		ScrapeRunsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scrape_runs_total",
				Help: "Total number of ingestion runs",
			},
			[]string{"status"}, // done, failed
		),
		BusinessesIngested: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "businesses_ingested_total",
				Help: "Businesses processed by ingestion runs",
			},
			[]string{"outcome"}, // inserted, updated, duplicate, failed
		),
		ScrapeRunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "scrape_run_duration_seconds",
			Help:    "End-to-end ingestion run duration in seconds",
			Buckets: []float64{10, 30, 60, 120, 300, 600, 1200, 3600},
		}),

		OutreachSends: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "outreach_sends_total",
				Help: "Outreach messages attempted",
			},
			[]string{"channel", "status"}, // email|sms, sent|failed
		),

		ExportsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "exports_created_total",
			Help: "Total number of exports created",
		}),

		CacheHits: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_hits_total",
				Help: "Total number of cache hits",
			},
			[]string{"cache_type"},
		),
		CacheMisses: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cache_misses_total",
				Help: "Total number of cache misses",
			},
			[]string{"cache_type"},
		),
	}

	return m
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // route pattern, not the raw URL

			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordScrapeRun records a finished ingestion run with its outcome counts.
func (m *Metrics) RecordScrapeRun(success bool, duration time.Duration, inserted, updated, duplicates, failed int) {
	status := "failed"
	if success {
		status = "done"
	}
	m.ScrapeRunsTotal.WithLabelValues(status).Inc()
	m.ScrapeRunDuration.Observe(duration.Seconds())
	m.BusinessesIngested.WithLabelValues("inserted").Add(float64(inserted))
	m.BusinessesIngested.WithLabelValues("updated").Add(float64(updated))
	m.BusinessesIngested.WithLabelValues("duplicate").Add(float64(duplicates))
	m.BusinessesIngested.WithLabelValues("failed").Add(float64(failed))
}

// RecordOutreach records a bulk outreach outcome for one channel.
func (m *Metrics) RecordOutreach(channel string, sent, failed int) {
	m.OutreachSends.WithLabelValues(channel, "sent").Add(float64(sent))
	m.OutreachSends.WithLabelValues(channel, "failed").Add(float64(failed))
}

// RecordExportCreated increments the exports counter.
func (m *Metrics) RecordExportCreated() {
	m.ExportsCreated.Inc()
}

// RecordCacheHit increments cache hits counter
func (m *Metrics) RecordCacheHit(cacheType string) {
	m.CacheHits.WithLabelValues(cacheType).Inc()
}

// RecordCacheMiss increments cache misses counter
func (m *Metrics) RecordCacheMiss(cacheType string) {
	m.CacheMisses.WithLabelValues(cacheType).Inc()
}
