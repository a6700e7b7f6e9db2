package mapper

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// ConnectTransform sets the leaf transform the mapper applies.
// Configuration should be finalized before Map is first called.
func (m *Mapper[A, B]) ConnectTransform(transform types.Transform[A, B]) {
	m.transform = transform
	m.NotifyLoggers(
		types.DebugLevel,
		"ConnectTransform",
		"component", m.componentMetadata,
		"event", "ConnectTransform",
		"result", "SUCCESS",
	)
}

// ConnectLogger attaches loggers that record mapper lifecycle events.
func (m *Mapper[A, B]) ConnectLogger(loggers ...types.Logger) {
	n := 0
	for _, l := range loggers {
		if l != nil {
			loggers[n] = l
			n++
		}
	}
	if n == 0 {
		return
	}
	m.loggers = append(m.loggers, loggers[:n]...)
	atomic.AddInt32(&m.loggerCount, int32(n))
}

// ConnectSensor attaches sensors that receive mapping lifecycle callbacks.
func (m *Mapper[A, B]) ConnectSensor(sensors ...types.Sensor[A]) {
	n := 0
	for _, s := range sensors {
		if s != nil {
			sensors[n] = s
			n++
		}
	}
	if n == 0 {
		return
	}
	m.sensors = append(m.sensors, sensors[:n]...)
	atomic.AddInt32(&m.sensorCount, int32(n))

	for _, s := range sensors[:n] {
		m.NotifyLoggers(
			types.DebugLevel,
			"ConnectSensor",
			"component", m.componentMetadata,
			"event", "ConnectSensor",
			"result", "SUCCESS",
			"sensorComponentMetadata", s.GetComponentMetadata(),
		)
	}
}

// SetInsulator configures the retry policy for failed transforms.
func (m *Mapper[A, B]) SetInsulator(retryFunc func(ctx context.Context, value A, err error) (B, error), threshold int, interval time.Duration) {
	m.insulatorFunc = retryFunc
	m.retryThreshold = threshold
	m.retryInterval = interval
}

// GetComponentMetadata returns the mapper's identifying metadata.
func (m *Mapper[A, B]) GetComponentMetadata() types.ComponentMetadata {
	return m.componentMetadata
}

// SetComponentMetadata overrides the mapper's name and ID.
func (m *Mapper[A, B]) SetComponentMetadata(name string, id string) {
	m.componentMetadata.Name = name
	m.componentMetadata.ID = id
}
