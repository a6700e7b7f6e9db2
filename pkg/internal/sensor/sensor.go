// Package sensor provides callback hooks for observing container mapping
// operations. A Sensor is attached to a mapper and is invoked as the mapper
// walks a container: once at the start, once per transformed node, once on
// completion, and on every error or retry. Connected meters receive count
// updates as the events fire.
package sensor

import (
	"sync"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
	"github.com/joeydtaylor/canopy/pkg/internal/utils"
)

// Sensor provides callback hooks for mapper telemetry.
type Sensor[A any] struct {
	componentMetadata types.ComponentMetadata
	metadataLock      sync.Mutex

	loggers     []types.Logger
	loggersLock sync.Mutex
	meters      []types.Meter

	onMapStart         []func(types.ComponentMetadata)
	onNodeTransformed  []func(types.ComponentMetadata, A)
	onMapComplete      []func(types.ComponentMetadata, types.MapSummary)
	onCancel           []func(types.ComponentMetadata, A)
	onError            []func(types.ComponentMetadata, error, A)
	onInsulatorAttempt []func(types.ComponentMetadata, A, error, int, int)
	onInsulatorSuccess []func(types.ComponentMetadata, A, error, int, int)
	onInsulatorFailure []func(types.ComponentMetadata, A, error, int, int)
}

// NewSensor creates a sensor and applies the provided options.
func NewSensor[A any](options ...types.Option[types.Sensor[A]]) types.Sensor[A] {
	s := &Sensor[A]{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "SENSOR",
		},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// InvokeOnMapStart fires the map-start callbacks and counts the operation.
func (s *Sensor[A]) InvokeOnMapStart(meta types.ComponentMetadata) {
	s.incrementMeterCounters(types.MetricMapStartedCount)
	for _, cb := range s.onMapStart {
		cb(meta)
	}
}

// InvokeOnNodeTransformed fires the per-node callbacks and counts the node.
func (s *Sensor[A]) InvokeOnNodeTransformed(meta types.ComponentMetadata, value A) {
	s.incrementMeterCounters(types.MetricNodeTransformedCount)
	for _, cb := range s.onNodeTransformed {
		cb(meta, value)
	}
}

// InvokeOnMapComplete fires the completion callbacks with the operation summary.
func (s *Sensor[A]) InvokeOnMapComplete(meta types.ComponentMetadata, summary types.MapSummary) {
	s.incrementMeterCounters(types.MetricMapCompletedCount)
	s.recordMeterSample(float64(summary.Nodes))
	for _, cb := range s.onMapComplete {
		cb(meta, summary)
	}
}

// InvokeOnCancel fires the cancellation callbacks.
func (s *Sensor[A]) InvokeOnCancel(meta types.ComponentMetadata, value A) {
	s.incrementMeterCounters(types.MetricMapCancelCount)
	for _, cb := range s.onCancel {
		cb(meta, value)
	}
}

// InvokeOnError fires the error callbacks and counts the failure.
func (s *Sensor[A]) InvokeOnError(meta types.ComponentMetadata, err error, value A) {
	s.incrementMeterCounters(types.MetricTransformErrorCount)
	for _, cb := range s.onError {
		cb(meta, err, value)
	}
}

// InvokeOnInsulatorAttempt fires the retry-attempt callbacks.
func (s *Sensor[A]) InvokeOnInsulatorAttempt(meta types.ComponentMetadata, value A, err error, attempt int, threshold int) {
	s.incrementMeterCounters(types.MetricInsulatorAttemptCount)
	for _, cb := range s.onInsulatorAttempt {
		cb(meta, value, err, attempt, threshold)
	}
}

// InvokeOnInsulatorSuccess fires the retry-success callbacks.
func (s *Sensor[A]) InvokeOnInsulatorSuccess(meta types.ComponentMetadata, value A, err error, attempt int, threshold int) {
	s.incrementMeterCounters(types.MetricInsulatorSuccessCount)
	for _, cb := range s.onInsulatorSuccess {
		cb(meta, value, err, attempt, threshold)
	}
}

// InvokeOnInsulatorFailure fires the retry-exhausted callbacks.
func (s *Sensor[A]) InvokeOnInsulatorFailure(meta types.ComponentMetadata, value A, err error, attempt int, threshold int) {
	s.incrementMeterCounters(types.MetricInsulatorFailureCount)
	for _, cb := range s.onInsulatorFailure {
		cb(meta, value, err, attempt, threshold)
	}
}
