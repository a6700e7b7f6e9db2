// Package mapper offers functional options for configuring Mapper components,
// mirroring the construction pattern used across the toolkit: settings are
// applied at instantiation via NewMapper and connect loggers, sensors, the
// transform, and the retry insulator.
package mapper

import (
	"context"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// WithTransform sets the leaf transform the mapper applies.
func WithTransform[A, B any](transform types.Transform[A, B]) types.Option[*Mapper[A, B]] {
	return func(m *Mapper[A, B]) {
		m.ConnectTransform(transform)
	}
}

// WithLogger attaches one or more logger instances to the mapper.
func WithLogger[A, B any](logger ...types.Logger) types.Option[*Mapper[A, B]] {
	return func(m *Mapper[A, B]) {
		m.ConnectLogger(logger...)
	}
}

// WithSensor attaches one or more sensor instances to the mapper.
func WithSensor[A, B any](sensor ...types.Sensor[A]) types.Option[*Mapper[A, B]] {
	return func(m *Mapper[A, B]) {
		m.ConnectSensor(sensor...)
	}
}

// WithInsulator sets the retry function for failed transforms.
// Parameters:
//   - retryFunc: The function to invoke for retrying a failed leaf transform.
//   - threshold: The maximum number of retry attempts.
//   - interval: The duration to wait between retry attempts.
func WithInsulator[A, B any](retryFunc func(ctx context.Context, value A, err error) (B, error), threshold int, interval time.Duration) types.Option[*Mapper[A, B]] {
	return func(m *Mapper[A, B]) {
		m.SetInsulator(retryFunc, threshold, interval)
	}
}

// WithComponentMetadata sets custom metadata for the mapper component.
func WithComponentMetadata[A, B any](name string, id string) types.Option[*Mapper[A, B]] {
	return func(m *Mapper[A, B]) {
		m.SetComponentMetadata(name, id)
	}
}
