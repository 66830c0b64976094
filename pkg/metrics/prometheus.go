// Package metrics provides Prometheus metrics for the campusgen dataset generator.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default score histogram buckets cover the 0-10 rating scale.
const (
	scoreBucketStart = 1.0
	scoreBucketWidth = 1.0
	scoreBucketCount = 10
)

// Manager manages all Prometheus metrics for the campusgen generator.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Allocation Metrics - enrollment assignment and repair
	enrollmentsAssigned  prometheus.Counter
	repairIterations     prometheus.Counter
	repairSwaps          prometheus.Counter
	underEnrolledCourses prometheus.Gauge

	// Session Metrics - tutoring session synthesis
	sessionsGenerated   prometheus.Counter
	sessionPairsSkipped prometheus.Counter
	bulkDrawsSkipped    prometheus.Counter

	// Rating Metrics - score synthesis quality
	ratingsGenerated prometheus.Counter
	ratingTotalScore prometheus.Histogram

	// Queue Metrics - session queue feeding rating workers
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueueRate   prometheus.Counter
	queueDequeueRate   prometheus.Counter
	queueEnqueueErrors prometheus.Counter

	// Worker Metrics - rating worker pool
	workerActiveCount       prometheus.Gauge
	workerProcessingLatency prometheus.Histogram
	workerErrors            prometheus.Counter

	// Ranking Store Metrics
	rankedTeachers      prometheus.Gauge
	rankingStoreUpdates prometheus.Counter

	// Error Metrics - detailed error tracking
	errorRateByComponent *prometheus.CounterVec
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
		namespace:        "campusgen",
		subsystem:        "dataset",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
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

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Allocation Metrics
	m.enrollmentsAssigned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "enrollments_assigned_total",
		Help:      "Total number of (student, course) enrollments assigned",
	})

	m.repairIterations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repair_iterations_total",
		Help:      "Total number of enrollment repair-loop iterations executed",
	})

	m.repairSwaps = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "repair_swaps_total",
		Help:      "Total number of course swaps applied by the repair loop",
	})

	m.underEnrolledCourses = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "under_enrolled_courses",
		Help:      "Courses below the minimum enrollment after the last repair run",
	})

	// Session Metrics
	m.sessionsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_generated_total",
		Help:      "Total number of tutoring sessions generated",
	})

	m.sessionPairsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "session_pairs_skipped_total",
		Help:      "Enrollment pairs skipped because no eligible teacher exists",
	})

	m.bulkDrawsSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "bulk_draws_skipped_total",
		Help:      "Bulk session draws discarded because the teacher has no eligible course",
	})

	// Rating Metrics
	m.ratingsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ratings_generated_total",
		Help:      "Total number of session ratings synthesized",
	})

	m.ratingTotalScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rating_total_score",
		Help:      "Distribution of weighted total scores across generated ratings",
		Buckets:   prometheus.LinearBuckets(scoreBucketStart, scoreBucketWidth, scoreBucketCount),
	})

	// Queue Metrics
	m.queueSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_size",
		Help:      "Current size of the session queue (backlog indicator)",
	})

	m.queueCapacity = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_capacity",
		Help:      "Maximum queue capacity",
	})

	m.queueUtilization = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_utilization_ratio",
		Help:      "Queue utilization ratio (current size / capacity)",
	})

	m.queueEnqueueRate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_total",
		Help:      "Total number of sessions enqueued",
	})

	m.queueDequeueRate = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_dequeue_total",
		Help:      "Total number of sessions dequeued",
	})

	m.queueEnqueueErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queue_enqueue_errors_total",
		Help:      "Total number of failed enqueue attempts",
	})

	// Worker Metrics
	m.workerActiveCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_active_count",
		Help:      "Number of active rating workers",
	})

	m.workerProcessingLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_processing_latency_milliseconds",
		Help:      "Rating worker per-session processing latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.workerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "worker_errors_total",
		Help:      "Total number of rating worker errors",
	})

	// Ranking Store Metrics
	m.rankedTeachers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranked_teachers",
		Help:      "Number of teachers tracked in the ranking store",
	})

	m.rankingStoreUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "ranking_store_updates_total",
		Help:      "Total number of ranking store aggregate updates",
	})

	// Error Metrics
	m.errorRateByComponent = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_component_total",
			Help:      "Total number of errors by component and error type",
		},
		[]string{"component", "error_type"},
	)
}

// RecordEnrollmentAssigned increments the assigned-enrollment counter.
func RecordEnrollmentAssigned() {
	globalManager.enrollmentsAssigned.Inc()
}

// RecordRepairIteration increments the repair-iteration counter.
func RecordRepairIteration() {
	globalManager.repairIterations.Inc()
}

// RecordRepairSwap increments the applied-swap counter.
func RecordRepairSwap() {
	globalManager.repairSwaps.Inc()
}

// UpdateUnderEnrolledCourses sets the under-enrolled course gauge.
func UpdateUnderEnrolledCourses(count int) {
	globalManager.underEnrolledCourses.Set(float64(count))
}

// RecordSessionGenerated increments the generated-session counter.
func RecordSessionGenerated() {
	globalManager.sessionsGenerated.Inc()
}

// RecordSessionPairSkipped increments the skipped-pair counter.
func RecordSessionPairSkipped() {
	globalManager.sessionPairsSkipped.Inc()
}

// RecordBulkDrawSkipped increments the discarded bulk-draw counter.
func RecordBulkDrawSkipped() {
	globalManager.bulkDrawsSkipped.Inc()
}

// RecordRatingGenerated increments the rating counter and observes the total score.
func RecordRatingGenerated(totalScore float64) {
	globalManager.ratingsGenerated.Inc()
	globalManager.ratingTotalScore.Observe(totalScore)
}

// UpdateQueueSize sets the current queue size gauge.
func UpdateQueueSize(size int) {
	globalManager.queueSize.Set(float64(size))
}

// UpdateQueueCapacity sets the queue capacity gauge.
func UpdateQueueCapacity(capacity int) {
	globalManager.queueCapacity.Set(float64(capacity))
}

// UpdateQueueUtilization sets the queue utilization gauge.
func UpdateQueueUtilization(utilization float64) {
	globalManager.queueUtilization.Set(utilization)
}

// RecordQueueEnqueue increments the enqueue counter.
func RecordQueueEnqueue() {
	globalManager.queueEnqueueRate.Inc()
}

// RecordQueueDequeue increments the dequeue counter.
func RecordQueueDequeue() {
	globalManager.queueDequeueRate.Inc()
}

// RecordQueueEnqueueError increments the enqueue error counter.
func RecordQueueEnqueueError() {
	globalManager.queueEnqueueErrors.Inc()
}

// UpdateWorkerActiveCount sets the active worker gauge.
func UpdateWorkerActiveCount(count int) {
	globalManager.workerActiveCount.Set(float64(count))
}

// RecordWorkerProcessingLatency observes per-session worker latency.
func RecordWorkerProcessingLatency(latencyMs float64) {
	globalManager.workerProcessingLatency.Observe(latencyMs)
}

// RecordWorkerError increments the worker error counter.
func RecordWorkerError() {
	globalManager.workerErrors.Inc()
}

// UpdateRankedTeachers sets the ranking store teacher gauge.
func UpdateRankedTeachers(count int) {
	globalManager.rankedTeachers.Set(float64(count))
}

// RecordRankingStoreUpdate increments the ranking store update counter.
func RecordRankingStoreUpdate() {
	globalManager.rankingStoreUpdates.Inc()
}

// RecordErrorByComponent increments the per-component error counter.
func RecordErrorByComponent(component, errorType string) {
	globalManager.errorRateByComponent.WithLabelValues(component, errorType).Inc()
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
