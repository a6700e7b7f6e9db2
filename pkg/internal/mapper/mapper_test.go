package mapper_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/mapper"
	"github.com/joeydtaylor/canopy/pkg/internal/meter"
	"github.com/joeydtaylor/canopy/pkg/internal/sensor"
	"github.com/joeydtaylor/canopy/pkg/internal/tree"
	"github.com/joeydtaylor/canopy/pkg/internal/types"
)

func TestMapper_TransformsTree(t *testing.T) {
	ctx := context.Background()

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return v * 2, nil }),
	)

	src := tree.NewBranch[int](tree.NewLeaf(10), tree.NewLeaf(20))
	got, err := m.Map(ctx, src)
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if !tree.Equal[int](got, tree.NewBranch[int](tree.NewLeaf(20), tree.NewLeaf(40))) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMapper_ChangesElementType(t *testing.T) {
	ctx := context.Background()

	m := mapper.NewMapper(
		mapper.WithTransform[int, string](func(v int) (string, error) {
			return fmt.Sprintf("v=%d", v), nil
		}),
	)

	got, err := m.Map(ctx, tree.NewLeaf(5))
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if !tree.Equal[string](got, tree.NewLeaf("v=5")) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMapper_NoTransformConnected(t *testing.T) {
	m := mapper.NewMapper[int, int]()

	if _, err := m.Map(context.Background(), tree.NewLeaf(1)); err == nil {
		t.Fatalf("expected error when no transform is connected")
	}
}

func TestMapper_FailFastNoPartialStructure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) {
			if v == 2 {
				return 0, boom
			}
			return v, nil
		}),
	)

	src := tree.NewBranch[int](tree.NewLeaf(1), tree.NewBranch[int](tree.NewLeaf(2), tree.NewLeaf(3)))
	got, err := m.Map(ctx, src)

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial structure, got %+v", got)
	}
}

func TestMapper_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return v, nil }),
	)

	_, err := m.Map(ctx, tree.NewLeaf(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMapper_InsulatorRecovers(t *testing.T) {
	ctx := context.Background()
	flaky := errors.New("transient")

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) {
			if v == 7 {
				return 0, flaky
			}
			return v * 10, nil
		}),
		mapper.WithInsulator[int, int](func(_ context.Context, v int, _ error) (int, error) {
			return v * 10, nil
		}, 3, 0),
	)

	src := tree.NewBranch[int](tree.NewLeaf(7), tree.NewLeaf(2))
	got, err := m.Map(ctx, src)
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if !tree.Equal[int](got, tree.NewBranch[int](tree.NewLeaf(70), tree.NewLeaf(20))) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMapper_InsulatorExhausted(t *testing.T) {
	ctx := context.Background()
	flaky := errors.New("permanent")

	attempts := 0
	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return 0, flaky }),
		mapper.WithInsulator[int, int](func(_ context.Context, v int, _ error) (int, error) {
			attempts++
			return 0, flaky
		}, 3, 0),
	)

	_, err := m.Map(ctx, tree.NewLeaf(1))
	if err == nil {
		t.Fatalf("expected error after retries exhausted")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 retry attempts, got %d", attempts)
	}
}

func TestMapper_InsulatorHonorsInterval(t *testing.T) {
	ctx := context.Background()
	flaky := errors.New("transient")

	calls := 0
	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return 0, flaky }),
		mapper.WithInsulator[int, int](func(_ context.Context, v int, _ error) (int, error) {
			calls++
			if calls < 2 {
				return 0, flaky
			}
			return 42, nil
		}, 3, 5*time.Millisecond),
	)

	start := time.Now()
	got, err := m.Map(ctx, tree.NewLeaf(1))
	if err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if !tree.Equal[int](got, tree.NewLeaf(42)) {
		t.Fatalf("unexpected result: %+v", got)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Fatalf("expected at least one interval wait, elapsed %v", elapsed)
	}
}

func TestMapper_InsulatorCancelledMidRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	flaky := errors.New("transient")

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return 0, flaky }),
		mapper.WithInsulator[int, int](func(_ context.Context, v int, _ error) (int, error) {
			cancel()
			return 0, flaky
		}, 5, time.Minute),
	)

	_, err := m.Map(ctx, tree.NewLeaf(1))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestMapper_SensorReceivesLifecycle(t *testing.T) {
	ctx := context.Background()

	var started, transformed int
	var summary types.MapSummary
	s := sensor.NewSensor(
		sensor.WithOnMapStartFunc[int](func(types.ComponentMetadata) { started++ }),
		sensor.WithOnNodeTransformedFunc(func(_ types.ComponentMetadata, _ int) { transformed++ }),
		sensor.WithOnMapCompleteFunc[int](func(_ types.ComponentMetadata, got types.MapSummary) { summary = got }),
	)

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return v + 1, nil }),
		mapper.WithSensor[int, int](s),
	)

	src := tree.NewBranch[int](
		tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2)),
		tree.NewLeaf(3),
	)
	if _, err := m.Map(ctx, src); err != nil {
		t.Fatalf("Map() error: %v", err)
	}

	if started != 1 {
		t.Fatalf("expected 1 start event, got %d", started)
	}
	if transformed != 3 {
		t.Fatalf("expected 3 node events, got %d", transformed)
	}
	if summary.Nodes != 5 || summary.Leaves != 3 || summary.Depth != 3 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestMapper_MeterCountsViaSensor(t *testing.T) {
	ctx := context.Background()

	mtr := meter.NewMeter()
	s := sensor.NewSensor(sensor.WithMeter[int](mtr))

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return v, nil }),
		mapper.WithSensor[int, int](s),
	)

	src := tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2))
	if _, err := m.Map(ctx, src); err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if _, err := m.Map(ctx, src); err != nil {
		t.Fatalf("Map() error: %v", err)
	}

	if got := mtr.GetMetricCount(types.MetricMapStartedCount); got != 2 {
		t.Fatalf("map started: expected 2, got %d", got)
	}
	if got := mtr.GetMetricCount(types.MetricNodeTransformedCount); got != 4 {
		t.Fatalf("nodes transformed: expected 4, got %d", got)
	}

	summary := mtr.SummarizeMapSamples()
	if summary.Count != 2 || summary.Mean != 3 {
		t.Fatalf("unexpected sample summary: %+v", summary)
	}
}

func TestMapper_ErrorReachesSensor(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	var gotErr error
	var gotValue int
	s := sensor.NewSensor(
		sensor.WithOnErrorFunc(func(_ types.ComponentMetadata, err error, v int) {
			gotErr = err
			gotValue = v
		}),
	)

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return 0, boom }),
		mapper.WithSensor[int, int](s),
	)

	if _, err := m.Map(ctx, tree.NewLeaf(13)); err == nil {
		t.Fatalf("expected transform error")
	}
	if !errors.Is(gotErr, boom) || gotValue != 13 {
		t.Fatalf("sensor saw (%v, %d), expected (boom, 13)", gotErr, gotValue)
	}
}

func TestMapper_SourceUnmodified(t *testing.T) {
	ctx := context.Background()

	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return v * 100, nil }),
	)

	src := tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2))
	pristine := tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2))

	if _, err := m.Map(ctx, src); err != nil {
		t.Fatalf("Map() error: %v", err)
	}
	if !tree.Equal[int](src, pristine) {
		t.Fatalf("source tree was modified: %+v", src)
	}
}

func TestMapper_ComponentMetadata(t *testing.T) {
	m := mapper.NewMapper(
		mapper.WithTransform[int, int](func(v int) (int, error) { return v, nil }),
		mapper.WithComponentMetadata[int, int]("doubler", "mapper-1"),
	)

	meta := m.GetComponentMetadata()
	if meta.Name != "doubler" || meta.ID != "mapper-1" || meta.Type != "MAPPER" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}
