package builder

import (
	"github.com/joeydtaylor/canopy/pkg/internal/sensor"
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// ComponentMetadata identifies a component by id, type and name.
type ComponentMetadata = types.ComponentMetadata

// NewSensor creates a new Sensor with specified options.
func NewSensor[A any](options ...types.Option[types.Sensor[A]]) types.Sensor[A] {
	return sensor.NewSensor[A](options...)
}

// SensorWithLogger adds a logger to the Sensor.
func SensorWithLogger[A any](logger ...types.Logger) types.Option[types.Sensor[A]] {
	return sensor.WithLogger[A](logger...)
}

// SensorWithMeter attaches a meter that the sensor updates on every event.
func SensorWithMeter[A any](meter ...types.Meter) types.Option[types.Sensor[A]] {
	return sensor.WithMeter[A](meter...)
}

// SensorWithComponentMetadata adds component metadata overrides.
func SensorWithComponentMetadata[A any](name string, id string) types.Option[types.Sensor[A]] {
	return sensor.WithComponentMetadata[A](name, id)
}

// SensorWithOnMapStartFunc registers a callback for the OnMapStart event.
func SensorWithOnMapStartFunc[A any](callback ...func(ComponentMetadata)) types.Option[types.Sensor[A]] {
	return sensor.WithOnMapStartFunc[A](callback...)
}

// SensorWithOnNodeTransformedFunc registers a callback for the OnNodeTransformed event.
func SensorWithOnNodeTransformedFunc[A any](callback ...func(ComponentMetadata, A)) types.Option[types.Sensor[A]] {
	return sensor.WithOnNodeTransformedFunc[A](callback...)
}

// SensorWithOnMapCompleteFunc registers a callback for the OnMapComplete event.
func SensorWithOnMapCompleteFunc[A any](callback ...func(ComponentMetadata, MapSummary)) types.Option[types.Sensor[A]] {
	return sensor.WithOnMapCompleteFunc[A](callback...)
}

// SensorWithOnCancelFunc registers a callback for the OnCancel event.
func SensorWithOnCancelFunc[A any](callback ...func(ComponentMetadata, A)) types.Option[types.Sensor[A]] {
	return sensor.WithOnCancelFunc[A](callback...)
}

// SensorWithOnErrorFunc registers a callback for the OnError event.
func SensorWithOnErrorFunc[A any](callback ...func(ComponentMetadata, error, A)) types.Option[types.Sensor[A]] {
	return sensor.WithOnErrorFunc[A](callback...)
}

// SensorWithOnInsulatorAttemptFunc registers a callback for the OnInsulatorAttempt event.
func SensorWithOnInsulatorAttemptFunc[A any](callback ...func(ComponentMetadata, A, error, int, int)) types.Option[types.Sensor[A]] {
	return sensor.WithOnInsulatorAttemptFunc[A](callback...)
}

// SensorWithOnInsulatorSuccessFunc registers a callback for the OnInsulatorSuccess event.
func SensorWithOnInsulatorSuccessFunc[A any](callback ...func(ComponentMetadata, A, error, int, int)) types.Option[types.Sensor[A]] {
	return sensor.WithOnInsulatorSuccessFunc[A](callback...)
}

// SensorWithOnInsulatorFailureFunc registers a callback for the OnInsulatorFailure event.
func SensorWithOnInsulatorFailureFunc[A any](callback ...func(ComponentMetadata, A, error, int, int)) types.Option[types.Sensor[A]] {
	return sensor.WithOnInsulatorFailureFunc[A](callback...)
}
