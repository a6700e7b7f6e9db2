// Package sensor provides options for configuring Sensor components.
//
// This file defines the options used to customize Sensor behavior: attaching
// loggers and meters, and registering callbacks for the mapping lifecycle
// events a mapper emits.
package sensor

import (
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Sensor.
func WithLogger[A any](logger ...types.Logger) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.ConnectLogger(logger...)
	}
}

// WithMeter creates an option to connect meters to a Sensor.
func WithMeter[A any](meter ...types.Meter) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.ConnectMeter(meter...)
	}
}

// WithComponentMetadata creates an option to override the Sensor's name and ID.
func WithComponentMetadata[A any](name string, id string) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.SetComponentMetadata(name, id)
	}
}

// WithOnMapStartFunc registers callbacks for the start of a mapping operation.
func WithOnMapStartFunc[A any](callback ...func(types.ComponentMetadata)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnMapStart(callback...)
	}
}

// WithOnNodeTransformedFunc registers callbacks fired once per transformed leaf.
func WithOnNodeTransformedFunc[A any](callback ...func(types.ComponentMetadata, A)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnNodeTransformed(callback...)
	}
}

// WithOnMapCompleteFunc registers callbacks for the completion of a mapping operation.
func WithOnMapCompleteFunc[A any](callback ...func(types.ComponentMetadata, types.MapSummary)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnMapComplete(callback...)
	}
}

// WithOnCancelFunc registers callbacks fired when a mapping operation is cancelled.
func WithOnCancelFunc[A any](callback ...func(types.ComponentMetadata, A)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnCancel(callback...)
	}
}

// WithOnErrorFunc registers callbacks fired when a transform fails.
func WithOnErrorFunc[A any](callback ...func(types.ComponentMetadata, error, A)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnError(callback...)
	}
}

// WithOnInsulatorAttemptFunc registers callbacks fired on each retry attempt.
func WithOnInsulatorAttemptFunc[A any](callback ...func(types.ComponentMetadata, A, error, int, int)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnInsulatorAttempt(callback...)
	}
}

// WithOnInsulatorSuccessFunc registers callbacks fired when a retry recovers a value.
func WithOnInsulatorSuccessFunc[A any](callback ...func(types.ComponentMetadata, A, error, int, int)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnInsulatorSuccess(callback...)
	}
}

// WithOnInsulatorFailureFunc registers callbacks fired when retries are exhausted.
func WithOnInsulatorFailureFunc[A any](callback ...func(types.ComponentMetadata, A, error, int, int)) types.Option[types.Sensor[A]] {
	return func(s types.Sensor[A]) {
		s.RegisterOnInsulatorFailure(callback...)
	}
}
