package types

import "context"

const (
	MetricMapStartedCount       = "map_started_total_count"
	MetricMapCompletedCount     = "map_completed_total_count"
	MetricMapCancelCount        = "map_cancel_total_count"
	MetricNodeTransformedCount  = "node_transformed_total_count"
	MetricTransformErrorCount   = "transform_error_total_count"
	MetricInsulatorAttemptCount = "insulator_attempt_total_count"
	MetricInsulatorSuccessCount = "insulator_success_total_count"
	MetricInsulatorFailureCount = "insulator_failure_total_count"
	MetricCurrentCpuPercentage  = "current_cpu_percentage"
	MetricCurrentRamPercentage  = "current_ram_percentage"
)

// MapSampleSummary aggregates the per-operation node counts a meter has recorded.
type MapSampleSummary struct {
	Count int     // Number of map operations sampled.
	Sum   float64 // Total nodes transformed across all sampled operations.
	Min   float64 // Smallest node count observed in a single operation.
	Max   float64 // Largest node count observed in a single operation.
	Mean  float64 // Mean node count per operation.
}

// Meter defines the interface for metric collection across the library. Meters accumulate
// monotonic counters keyed by metric name, record per-operation samples for aggregate
// reporting, and can monitor system resource usage during long mapping workloads.
type Meter interface {
	ConnectLogger(...Logger)

	GetComponentMetadata() ComponentMetadata

	SetComponentMetadata(name string, id string)

	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	IncrementCount(metric string) uint64

	AddCount(metric string, delta uint64) uint64

	GetMetricCount(metric string) uint64

	SetMetricTimestamp(metric string, timestamp int64)

	GetMetricTimestamp(metric string) int64

	SetGauge(metric string, value float64)

	GetGauge(metric string) float64

	RecordMapSample(nodes float64)

	SummarizeMapSamples() MapSampleSummary

	Monitor(ctx context.Context)
}
