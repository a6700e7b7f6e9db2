// Package meter provides metric collection for mapping workloads. A Meter
// accumulates monotonic counters keyed by metric name, records one sample per
// completed map operation for aggregate reporting, and can periodically sample
// system resource usage while long mapping workloads run.
package meter

import (
	"sync"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
	"github.com/joeydtaylor/canopy/pkg/internal/utils"
)

type Meter struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	mu         sync.Mutex
	counts     map[string]*uint64
	timestamps map[string]int64
	gauges     map[string]float64
	samples    []float64

	loggers     []types.Logger
	loggersLock sync.Mutex

	sampleInterval time.Duration
}

// NewMeter creates a meter and applies the provided options.
func NewMeter(options ...types.Option[types.Meter]) types.Meter {
	m := &Meter{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "METER",
		},
		counts:         make(map[string]*uint64),
		timestamps:     make(map[string]int64),
		gauges:         make(map[string]float64),
		sampleInterval: 1 * time.Second,
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

func (m *Meter) ConnectLogger(logger ...types.Logger) {
	m.loggersLock.Lock()
	m.loggers = append(m.loggers, logger...)
	m.loggersLock.Unlock()
}

func (m *Meter) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

func (m *Meter) SetComponentMetadata(name string, id string) {
	m.metadataLock.Lock()
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
	m.metadataLock.Unlock()
}
