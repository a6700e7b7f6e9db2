package builder

import (
	"context"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/mapper"
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

// MapSummary describes one completed mapper run.
type MapSummary = types.MapSummary

// NewMapper creates an instrumented mapper with the provided configuration options.
func NewMapper[A, B any](options ...types.Option[*mapper.Mapper[A, B]]) *mapper.Mapper[A, B] {
	return mapper.NewMapper[A, B](options...)
}

// MapperWithTransform sets the leaf transformation function of the mapper.
func MapperWithTransform[A, B any](transform types.Transform[A, B]) types.Option[*mapper.Mapper[A, B]] {
	return mapper.WithTransform[A, B](transform)
}

// MapperWithLogger adds one or more loggers to the mapper.
func MapperWithLogger[A, B any](logger ...types.Logger) types.Option[*mapper.Mapper[A, B]] {
	return mapper.WithLogger[A, B](logger...)
}

// MapperWithSensor adds one or more sensors to the mapper to monitor its events.
func MapperWithSensor[A, B any](sensor ...types.Sensor[A]) types.Option[*mapper.Mapper[A, B]] {
	return mapper.WithSensor[A, B](sensor...)
}

// MapperWithInsulator adds a retry function for failed leaf transformations.
func MapperWithInsulator[A, B any](retryFunc func(ctx context.Context, value A, err error) (B, error), threshold int, interval time.Duration) types.Option[*mapper.Mapper[A, B]] {
	return mapper.WithInsulator[A, B](retryFunc, threshold, interval)
}

// MapperWithComponentMetadata adds component metadata overrides.
func MapperWithComponentMetadata[A, B any](name string, id string) types.Option[*mapper.Mapper[A, B]] {
	return mapper.WithComponentMetadata[A, B](name, id)
}
