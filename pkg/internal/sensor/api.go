package sensor

import (
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

func (s *Sensor[A]) ConnectLogger(logger ...types.Logger) {
	s.loggersLock.Lock()
	s.loggers = append(s.loggers, logger...)
	s.loggersLock.Unlock()
}

func (s *Sensor[A]) ConnectMeter(meter ...types.Meter) {
	s.meters = append(s.meters, meter...)
}

func (s *Sensor[A]) GetComponentMetadata() types.ComponentMetadata {
	return s.componentMetadata
}

func (s *Sensor[A]) GetMeters() []types.Meter {
	return s.meters
}

func (s *Sensor[A]) SetComponentMetadata(name string, id string) {
	s.metadataLock.Lock()
	oldMetadata := s.componentMetadata
	s.componentMetadata.Name = name
	s.componentMetadata.ID = id
	newMetadata := s.componentMetadata
	s.metadataLock.Unlock()
	s.NotifyLoggers(types.DebugLevel, "SetComponentMetadata",
		"component", newMetadata,
		"event", "SetComponentMetadata",
		"result", "SUCCESS",
		"old", oldMetadata,
	)
}

func (s *Sensor[A]) RegisterOnMapStart(callback ...func(types.ComponentMetadata)) {
	s.onMapStart = append(s.onMapStart, callback...)
}

func (s *Sensor[A]) RegisterOnNodeTransformed(callback ...func(types.ComponentMetadata, A)) {
	s.onNodeTransformed = append(s.onNodeTransformed, callback...)
}

func (s *Sensor[A]) RegisterOnMapComplete(callback ...func(types.ComponentMetadata, types.MapSummary)) {
	s.onMapComplete = append(s.onMapComplete, callback...)
}

func (s *Sensor[A]) RegisterOnCancel(callback ...func(types.ComponentMetadata, A)) {
	s.onCancel = append(s.onCancel, callback...)
}

func (s *Sensor[A]) RegisterOnError(callback ...func(types.ComponentMetadata, error, A)) {
	s.onError = append(s.onError, callback...)
}

func (s *Sensor[A]) RegisterOnInsulatorAttempt(callback ...func(types.ComponentMetadata, A, error, int, int)) {
	s.onInsulatorAttempt = append(s.onInsulatorAttempt, callback...)
}

func (s *Sensor[A]) RegisterOnInsulatorSuccess(callback ...func(types.ComponentMetadata, A, error, int, int)) {
	s.onInsulatorSuccess = append(s.onInsulatorSuccess, callback...)
}

func (s *Sensor[A]) RegisterOnInsulatorFailure(callback ...func(types.ComponentMetadata, A, error, int, int)) {
	s.onInsulatorFailure = append(s.onInsulatorFailure, callback...)
}
