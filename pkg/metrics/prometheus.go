// Package metrics provides Prometheus metrics for the songbook service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the songbook service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Catalog Metrics - The dataset the service serves
	datasetRows         prometheus.Gauge
	titleIndexSize      prometheus.Gauge
	duplicateTitles     prometheus.Counter
	untitledSongs       prometheus.Counter
	datasetLoadDuration prometheus.Histogram

	// Lookup Metrics - Title query outcomes
	titleLookupHits     prometheus.Counter
	titleLookupMisses   prometheus.Counter
	catalogQueryLatency prometheus.Histogram

	// Serving Metrics - What leaves the process
	songsServed prometheus.Counter
	pagesServed prometheus.Counter

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorsByEndpoint *prometheus.CounterVec
	errorsByType     *prometheus.CounterVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "songbook",
		subsystem:        "catalog",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Register on the configured registry (custom by default).
	auto := promauto.With(m.registry)

	// Catalog Metrics - Shape and quality of the loaded dataset
	m.datasetRows = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_rows",
		Help:      "Number of song records in the loaded dataset",
	})

	m.titleIndexSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "title_index_size",
		Help:      "Number of distinct case-folded titles in the lookup index",
	})

	m.duplicateTitles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_titles_total",
		Help:      "Rows dropped from the title index because an earlier row claimed the title (data quality)",
	})

	m.untitledSongs = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "untitled_songs_total",
		Help:      "Rows skipped by the title index for having no usable title (data quality)",
	})

	m.datasetLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dataset_load_duration_milliseconds",
		Help:      "Time to read, normalize, and index the dataset at startup",
		Buckets:   m.histogramBuckets,
	})

	// Lookup Metrics - Title query outcomes
	m.titleLookupHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "title_lookup_hits_total",
		Help:      "Title lookups that found a song",
	})

	m.titleLookupMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "title_lookup_misses_total",
		Help:      "Title lookups that found nothing",
	})

	m.catalogQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_query_latency_milliseconds",
		Help:      "Latency of catalog read operations in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Serving Metrics
	m.songsServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "songs_served_total",
		Help:      "Song records returned across all list and lookup endpoints",
	})

	m.pagesServed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pages_served_total",
		Help:      "Paginated responses served",
	})

	// HTTP Performance Metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Error Metrics
	m.errorsByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of error responses by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorsByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of error responses by type",
		},
		[]string{"error_type", "severity"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// Catalog Metrics Functions.

// UpdateDatasetRows sets the number of loaded song records.
func UpdateDatasetRows(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetRows.Set(float64(count))
}

// UpdateTitleIndexSize sets the number of distinct indexed titles.
func UpdateTitleIndexSize(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.titleIndexSize.Set(float64(count))
}

// RecordDuplicateTitle counts a row dropped for a duplicate title.
func RecordDuplicateTitle() {
	if !globalManager.enabled {
		return
	}
	globalManager.duplicateTitles.Inc()
}

// RecordUntitledSong counts a row skipped for a missing or empty title.
func RecordUntitledSong() {
	if !globalManager.enabled {
		return
	}
	globalManager.untitledSongs.Inc()
}

// RecordDatasetLoadDuration records the startup load duration in milliseconds.
func RecordDatasetLoadDuration(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.datasetLoadDuration.Observe(latencyMs)
}

// Lookup Metrics Functions.

// RecordTitleLookupHit counts a successful title lookup.
func RecordTitleLookupHit() {
	if !globalManager.enabled {
		return
	}
	globalManager.titleLookupHits.Inc()
}

// RecordTitleLookupMiss counts a failed title lookup.
func RecordTitleLookupMiss() {
	if !globalManager.enabled {
		return
	}
	globalManager.titleLookupMisses.Inc()
}

// RecordCatalogQueryLatency records a catalog read latency in milliseconds.
func RecordCatalogQueryLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.catalogQueryLatency.Observe(latencyMs)
}

// Serving Metrics Functions.

// RecordSongsServed adds to the served-records counter.
func RecordSongsServed(count int) {
	if !globalManager.enabled || count <= 0 {
		return
	}
	globalManager.songsServed.Add(float64(count))
}

// RecordPageServed counts a paginated response.
func RecordPageServed() {
	if !globalManager.enabled {
		return
	}
	globalManager.pagesServed.Inc()
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

// Error Metrics Functions.

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorsByType.WithLabelValues(errorType, severity).Inc()
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
