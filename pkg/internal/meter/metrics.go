package meter

import (
	"sync/atomic"

	"gonum.org/v1/gonum/floats"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

func (m *Meter) counter(metric string) *uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.counts[metric]
	if !ok {
		c = new(uint64)
		m.counts[metric] = c
	}
	return c
}

// IncrementCount adds one to the metric and returns the new value.
func (m *Meter) IncrementCount(metric string) uint64 {
	return atomic.AddUint64(m.counter(metric), 1)
}

// AddCount adds delta to the metric and returns the new value.
func (m *Meter) AddCount(metric string, delta uint64) uint64 {
	return atomic.AddUint64(m.counter(metric), delta)
}

// GetMetricCount returns the metric's current value.
func (m *Meter) GetMetricCount(metric string) uint64 {
	return atomic.LoadUint64(m.counter(metric))
}

// SetMetricTimestamp records a unix timestamp for the metric.
func (m *Meter) SetMetricTimestamp(metric string, timestamp int64) {
	m.mu.Lock()
	m.timestamps[metric] = timestamp
	m.mu.Unlock()
}

// GetMetricTimestamp returns the recorded unix timestamp, zero if unset.
func (m *Meter) GetMetricTimestamp(metric string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timestamps[metric]
}

// SetGauge records an instantaneous value for the metric.
func (m *Meter) SetGauge(metric string, value float64) {
	m.mu.Lock()
	m.gauges[metric] = value
	m.mu.Unlock()
}

// GetGauge returns the gauge's current value, zero if unset.
func (m *Meter) GetGauge(metric string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gauges[metric]
}

// RecordMapSample stores the node count of one completed map operation.
func (m *Meter) RecordMapSample(nodes float64) {
	m.mu.Lock()
	m.samples = append(m.samples, nodes)
	m.mu.Unlock()
}

// SummarizeMapSamples aggregates all recorded samples.
func (m *Meter) SummarizeMapSamples() types.MapSampleSummary {
	m.mu.Lock()
	samples := make([]float64, len(m.samples))
	copy(samples, m.samples)
	m.mu.Unlock()

	if len(samples) == 0 {
		return types.MapSampleSummary{}
	}

	sum := floats.Sum(samples)
	return types.MapSampleSummary{
		Count: len(samples),
		Sum:   sum,
		Min:   floats.Min(samples),
		Max:   floats.Max(samples),
		Mean:  sum / float64(len(samples)),
	}
}
