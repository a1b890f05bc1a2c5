package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Round outcomes used as label values.
const (
	OutcomeCorrect = "correct"
	OutcomeWrong   = "wrong"
	OutcomeSkipped = "skipped"
)

// Manager manages all Prometheus metrics for the quiz service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      map[string]string
	registry         prometheus.Registerer

	// Quiz
	roundsTotal      *prometheus.CounterVec
	wordsServed      prometheus.Counter
	activeSessions   prometheus.Gauge
	duplicateAnswers prometheus.Counter
	detections       *prometheus.CounterVec

	// Repository
	repositoryWords  prometheus.Gauge
	wordsAdded       prometheus.Counter
	lookupMisses     prometheus.Counter
	repositoryErrors *prometheus.CounterVec

	// Persistence pipeline
	queueSize        prometheus.Gauge
	queueCapacity    prometheus.Gauge
	queueEnqueued    prometheus.Counter
	queueCoalesced   prometheus.Counter
	persistWrites    prometheus.Counter
	persistErrors    prometheus.Counter
	persistLatency   prometheus.Histogram
	persistLastUnix  prometheus.Gauge
	wordStoreWrites  *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "accent",
		subsystem:        "quiz",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     buckets,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every metric
	auto := promauto.With(m.registry)

	m.roundsTotal = auto.NewCounterVec(m.counterOpts("rounds_total", "Judged quiz rounds by outcome"), []string{"outcome"})
	m.wordsServed = auto.NewCounter(m.counterOpts("words_served_total", "Words served to quiz sessions"))
	m.activeSessions = auto.NewGauge(m.gaugeOpts("active_sessions", "Quiz sessions currently held in memory"))
	m.duplicateAnswers = auto.NewCounter(m.counterOpts("duplicate_answers_total", "Answers rejected as duplicate submissions"))
	m.detections = auto.NewCounterVec(m.counterOpts("detections_total", "Features found by the detector"), []string{"feature"})

	m.repositoryWords = auto.NewGauge(m.gaugeOpts("repository_words", "Words in the repository"))
	m.wordsAdded = auto.NewCounter(m.counterOpts("repository_words_added_total", "Words added to the repository"))
	m.lookupMisses = auto.NewCounter(m.counterOpts("repository_lookup_misses_total", "Word lookups that found nothing"))
	m.repositoryErrors = auto.NewCounterVec(m.counterOpts("repository_errors_total", "Repository errors by type"), []string{"error_type"})

	m.queueSize = auto.NewGauge(m.gaugeOpts("persist_queue_size", "Pending persist requests"))
	m.queueCapacity = auto.NewGauge(m.gaugeOpts("persist_queue_capacity", "Capacity of the persist request queue"))
	m.queueEnqueued = auto.NewCounter(m.counterOpts("persist_enqueued_total", "Persist requests accepted by the queue"))
	m.queueCoalesced = auto.NewCounter(m.counterOpts("persist_coalesced_total", "Persist requests folded into an already pending write"))
	m.persistWrites = auto.NewCounter(m.counterOpts("persist_writes_total", "Statistics snapshots written"))
	m.persistErrors = auto.NewCounter(m.counterOpts("persist_errors_total", "Statistics snapshots that failed to write"))
	m.persistLatency = auto.NewHistogram(m.histogramOpts("persist_latency_milliseconds", "Statistics write latency in milliseconds", m.histogramBuckets))
	m.persistLastUnix = auto.NewGauge(m.gaugeOpts("persist_last_success_unix", "Unix time of the last successful statistics write"))
	m.wordStoreWrites = auto.NewCounterVec(m.counterOpts("word_store_writes_total", "Word store writes by result"), []string{"result"})

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorsByEndpoint = auto.NewCounterVec(
		m.counterOpts("errors_by_endpoint_total", "Total number of errors by endpoint"),
		[]string{"endpoint", "method", "error_type"},
	)

	m.systemMemoryUsage = auto.NewGauge(m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"))
	m.systemGoroutineCount = auto.NewGauge(m.gaugeOpts("system_goroutine_count", "Number of goroutines"))
	m.systemGCPauseTime = auto.NewHistogram(m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
		[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}))
}

// RecordRound counts one judged round.
func RecordRound(outcome string) error {
	switch outcome {
	case OutcomeCorrect, OutcomeWrong, OutcomeSkipped:
		globalManager.roundsTotal.WithLabelValues(outcome).Inc()
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownOutcome, outcome)
}

// RecordWordServed counts a word handed to a session.
func RecordWordServed() {
	globalManager.wordsServed.Inc()
}

// UpdateActiveSessions sets the number of live sessions.
func UpdateActiveSessions(n int) {
	globalManager.activeSessions.Set(float64(n))
}

// RecordDuplicateAnswer counts an answer dropped by request-id dedupe.
func RecordDuplicateAnswer() {
	globalManager.duplicateAnswers.Inc()
}

// RecordDetection counts a feature found by the detector.
func RecordDetection(feature string) {
	globalManager.detections.WithLabelValues(feature).Inc()
}

// UpdateRepositoryWords sets the repository size.
func UpdateRepositoryWords(n int) {
	globalManager.repositoryWords.Set(float64(n))
}

// RecordWordAdded counts a successful repository add.
func RecordWordAdded() {
	globalManager.wordsAdded.Inc()
}

// RecordLookupMiss counts a failed word lookup.
func RecordLookupMiss() {
	globalManager.lookupMisses.Inc()
}

// RecordRepositoryError counts a repository error by type.
func RecordRepositoryError(errorType string) {
	globalManager.repositoryErrors.WithLabelValues(errorType).Inc()
}

// UpdateQueueSize sets the number of pending persist requests.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the persist queue capacity.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// RecordQueueEnqueue counts an accepted persist request.
func RecordQueueEnqueue() {
	globalManager.queueEnqueued.Inc()
}

// RecordQueueCoalesced counts a request folded into a pending write.
func RecordQueueCoalesced() {
	globalManager.queueCoalesced.Inc()
}

// RecordPersist records the result and latency of one statistics write.
func RecordPersist(latencyMs float64, unixNow int64, err error) {
	globalManager.persistLatency.Observe(latencyMs)
	if err != nil {
		globalManager.persistErrors.Inc()
		return
	}
	globalManager.persistWrites.Inc()
	globalManager.persistLastUnix.Set(float64(unixNow))
}

// RecordWordStoreWrite counts a word store write.
func RecordWordStoreWrite(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	globalManager.wordStoreWrites.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
