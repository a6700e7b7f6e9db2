package meter

import (
	"context"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// Monitor samples system resource usage on the configured interval until ctx is
// cancelled. Intended for long mapping workloads; sampled values are exposed as
// gauges on the meter.
func (m *Meter) Monitor(ctx context.Context) {
	ticker := time.NewTicker(m.sampleInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.sampleSystem()
		}
	}
}

func (m *Meter) sampleSystem() {
	if percentages, err := cpu.Percent(0, false); err == nil && len(percentages) > 0 {
		m.SetGauge(types.MetricCurrentCpuPercentage, percentages[0])
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		m.SetGauge(types.MetricCurrentRamPercentage, vm.UsedPercent)
	}

	m.NotifyLoggers(types.DebugLevel, "system sample",
		"component", m.componentMetadata,
		"event", "Monitor",
		"cpuPercentage", m.GetGauge(types.MetricCurrentCpuPercentage),
		"ramPercentage", m.GetGauge(types.MetricCurrentRamPercentage),
	)
}
