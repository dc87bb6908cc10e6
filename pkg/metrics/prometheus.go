// Package metrics provides Prometheus metrics for the podium analytics service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// rowBuckets bucket result sizes of aggregations.
var rowBuckets = []float64{0, 1, 5, 10, 25, 50, 100, 250, 500, 1000} //nolint:gochecknoglobals // fixed bucket layout

// Manager manages all Prometheus metrics for the podium service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	registry         prometheus.Registerer

	// Dataset Metrics - What was loaded at startup
	datasetRows       prometheus.Gauge
	datasetRegions    prometheus.Gauge
	datasetDuplicates prometheus.Gauge
	datasetUnresolved prometheus.Gauge
	loadDuration      prometheus.Histogram
	loadErrors        prometheus.Counter

	// Aggregation Metrics - Per aggregation call
	aggregationRequests *prometheus.CounterVec
	aggregationLatency  *prometheus.HistogramVec
	aggregationRows     *prometheus.HistogramVec

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLimited         *prometheus.CounterVec

	// Error Metrics
	errorRateByComponent *prometheus.CounterVec
	errorRateByEndpoint  *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "analytics",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// RefreshInterval is how often the serve loop refreshes system gauges.
func (m *Manager) RefreshInterval() time.Duration { return m.refreshInterval }

// Enabled reports whether recording is on.
func (m *Manager) Enabled() bool { return m.enabled }

func (m *Manager) gauge(name, help string) prometheus.Gauge {
	return promauto.With(m.registry).NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	})
}

func (m *Manager) counterVec(name, help string, labels ...string) *prometheus.CounterVec {
	return promauto.With(m.registry).NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.customLabels,
	}, labels)
}

func (m *Manager) histogramVec(name, help string, buckets []float64, labels ...string) *prometheus.HistogramVec {
	return promauto.With(m.registry).NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		Buckets:     buckets,
		ConstLabels: m.customLabels,
	}, labels)
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.datasetRows = m.gauge("dataset_rows", "Number of event rows in the loaded table")
	m.datasetRegions = m.gauge("dataset_regions", "Number of distinct resolved regions in the loaded table")
	m.datasetDuplicates = m.gauge("dataset_duplicates", "Exact duplicate rows dropped at load")
	m.datasetUnresolved = m.gauge("dataset_unresolved_rows", "Rows whose NOC has no region mapping")

	m.loadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_duration_milliseconds",
		Help:        "Time taken to read and normalize the dataset files",
		Buckets:     prometheus.ExponentialBuckets(10, 2, 12),
		ConstLabels: m.customLabels,
	})

	m.loadErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "dataset_load_errors_total",
		Help:        "Total number of failed dataset loads",
		ConstLabels: m.customLabels,
	})

	m.aggregationRequests = m.counterVec("aggregation_requests_total",
		"Total number of aggregation calls by aggregation", "aggregation")
	m.aggregationLatency = m.histogramVec("aggregation_latency_milliseconds",
		"Aggregation latency in milliseconds", m.histogramBuckets, "aggregation")
	m.aggregationRows = m.histogramVec("aggregation_result_rows",
		"Number of rows returned by an aggregation", rowBuckets, "aggregation")

	m.httpRequests = m.counterVec("http_requests_total",
		"Total number of HTTP requests by endpoint and method", "endpoint", "method", "status_code")
	m.httpRequestDuration = m.histogramVec("http_request_duration_milliseconds",
		"HTTP request duration in milliseconds (user experience)", m.histogramBuckets, "endpoint", "method", "status_code")
	m.rateLimited = m.counterVec("http_rate_limited_total",
		"Total number of requests rejected by the rate limiter", "endpoint")

	m.errorRateByComponent = m.counterVec("errors_by_component_total",
		"Total number of errors by component", "component", "error_type")
	m.errorRateByEndpoint = m.counterVec("errors_by_endpoint_total",
		"Total number of errors by endpoint", "endpoint", "method", "error_type")

	m.systemMemoryUsage = m.gauge("system_memory_usage_bytes", "System memory usage in bytes")
	m.systemGoroutineCount = m.gauge("system_goroutine_count", "Number of goroutines")
}

// Get returns the global manager.
func Get() *Manager { return globalManager }

// Dataset Metrics Functions.

// UpdateDataset sets the gauges describing the loaded table.
func UpdateDataset(rows, regions, duplicates, unresolved int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetRows.Set(float64(rows))
	globalManager.datasetRegions.Set(float64(regions))
	globalManager.datasetDuplicates.Set(float64(duplicates))
	globalManager.datasetUnresolved.Set(float64(unresolved))
}

// RecordLoadDuration records how long a dataset load took.
func RecordLoadDuration(d time.Duration) {
	if !globalManager.enabled {
		return
	}
	globalManager.loadDuration.Observe(float64(d.Milliseconds()))
}

// RecordLoadError increments the failed load counter.
func RecordLoadError() {
	if !globalManager.enabled {
		return
	}
	globalManager.loadErrors.Inc()
}

// Aggregation Metrics Functions.

// RecordAggregation records one aggregation call, its latency and result size.
func RecordAggregation(name string, latency time.Duration, rows int) {
	if !globalManager.enabled {
		return
	}
	globalManager.aggregationRequests.WithLabelValues(name).Inc()
	globalManager.aggregationLatency.WithLabelValues(name).Observe(float64(latency.Microseconds()) / 1000)
	globalManager.aggregationRows.WithLabelValues(name).Observe(float64(rows))
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordRateLimited increments the rate limited counter for endpoint.
func RecordRateLimited(endpoint string) {
	if !globalManager.enabled {
		return
	}
	globalManager.rateLimited.WithLabelValues(endpoint).Inc()
}

// Error Metrics Functions.

// RecordErrorByComponent records an error with component and type labels.
func RecordErrorByComponent(component, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
