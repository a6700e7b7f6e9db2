package builder

import (
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/meter"
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

type MetricName string

// MapSampleSummary aggregates the recorded node counts of completed runs.
type MapSampleSummary = types.MapSampleSummary

// Metric names tracked by the standard meter.
const (
	MetricMapStartedCount       MetricName = MetricName(types.MetricMapStartedCount)
	MetricMapCompletedCount     MetricName = MetricName(types.MetricMapCompletedCount)
	MetricMapCancelCount        MetricName = MetricName(types.MetricMapCancelCount)
	MetricNodeTransformedCount  MetricName = MetricName(types.MetricNodeTransformedCount)
	MetricTransformErrorCount   MetricName = MetricName(types.MetricTransformErrorCount)
	MetricInsulatorAttemptCount MetricName = MetricName(types.MetricInsulatorAttemptCount)
	MetricInsulatorSuccessCount MetricName = MetricName(types.MetricInsulatorSuccessCount)
	MetricInsulatorFailureCount MetricName = MetricName(types.MetricInsulatorFailureCount)
	MetricCurrentCpuPercentage  MetricName = MetricName(types.MetricCurrentCpuPercentage)
	MetricCurrentRamPercentage  MetricName = MetricName(types.MetricCurrentRamPercentage)
)

// NewMeter creates a new Meter with specified options.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	return meter.NewMeter(options...)
}

// MeterWithLogger adds a logger to the Meter.
func MeterWithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return meter.WithLogger(logger...)
}

// MeterWithComponentMetadata adds component metadata overrides.
func MeterWithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return meter.WithComponentMetadata(name, id)
}

// MeterWithSampleInterval sets how often Monitor samples system usage.
func MeterWithSampleInterval(interval time.Duration) types.Option[types.Meter] {
	return meter.WithSampleInterval(interval)
}
