package meter

import (
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// WithLogger creates an option to add a logger to a Meter.
func WithLogger(logger ...types.Logger) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.ConnectLogger(logger...)
	}
}

// WithComponentMetadata creates an option to override the Meter's name and ID.
func WithComponentMetadata(name string, id string) types.Option[types.Meter] {
	return func(m types.Meter) {
		m.SetComponentMetadata(name, id)
	}
}

// WithSampleInterval sets how often Monitor samples system resource usage.
func WithSampleInterval(interval time.Duration) types.Option[types.Meter] {
	return func(m types.Meter) {
		if mm, ok := m.(*Meter); ok && interval > 0 {
			mm.sampleInterval = interval
		}
	}
}
