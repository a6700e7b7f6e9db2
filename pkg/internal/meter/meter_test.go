package meter_test

import (
	"sync"
	"testing"

	"github.com/joeydtaylor/canopy/pkg/internal/meter"
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

func TestMeter_Counters(t *testing.T) {
	m := meter.NewMeter()

	if got := m.IncrementCount(types.MetricMapStartedCount); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	if got := m.AddCount(types.MetricNodeTransformedCount, 5); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := m.GetMetricCount(types.MetricNodeTransformedCount); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
	if got := m.GetMetricCount("never_touched"); got != 0 {
		t.Fatalf("expected 0 for untouched metric, got %d", got)
	}
}

func TestMeter_ConcurrentIncrements(t *testing.T) {
	m := meter.NewMeter()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncrementCount(types.MetricNodeTransformedCount)
			}
		}()
	}
	wg.Wait()

	if got := m.GetMetricCount(types.MetricNodeTransformedCount); got != 5000 {
		t.Fatalf("expected 5000, got %d", got)
	}
}

func TestMeter_SampleSummary(t *testing.T) {
	m := meter.NewMeter()

	m.RecordMapSample(3)
	m.RecordMapSample(7)
	m.RecordMapSample(5)

	summary := m.SummarizeMapSamples()
	if summary.Count != 3 {
		t.Fatalf("expected 3 samples, got %d", summary.Count)
	}
	if summary.Sum != 15 || summary.Min != 3 || summary.Max != 7 || summary.Mean != 5 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestMeter_EmptySampleSummary(t *testing.T) {
	m := meter.NewMeter()

	summary := m.SummarizeMapSamples()
	if summary.Count != 0 || summary.Sum != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}

func TestMeter_GaugesAndTimestamps(t *testing.T) {
	m := meter.NewMeter()

	m.SetGauge(types.MetricCurrentCpuPercentage, 12.5)
	if got := m.GetGauge(types.MetricCurrentCpuPercentage); got != 12.5 {
		t.Fatalf("expected 12.5, got %f", got)
	}

	m.SetMetricTimestamp(types.MetricMapCompletedCount, 1700000000)
	if got := m.GetMetricTimestamp(types.MetricMapCompletedCount); got != 1700000000 {
		t.Fatalf("expected 1700000000, got %d", got)
	}
}

func TestMeter_Metadata(t *testing.T) {
	m := meter.NewMeter(meter.WithComponentMetadata("map-meter", "meter-1"))

	meta := m.GetComponentMetadata()
	if meta.Name != "map-meter" || meta.ID != "meter-1" || meta.Type != "METER" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}
