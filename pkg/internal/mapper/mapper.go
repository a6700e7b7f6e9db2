// Package mapper provides an instrumented mapping engine for the tree container.
// A Mapper wraps the pure structural transform with the observability surface of
// the Canopy toolkit: attached loggers record lifecycle events, sensors receive
// per-node and per-operation callbacks, and a configurable insulator retries
// failed transforms before the operation is abandoned.
//
// The mapping semantics are unchanged from the pure form: the result tree has
// the shape of the source, branches are rebuilt left before right, and the
// source is never modified. A transform error aborts the walk and propagates to
// the caller with no partial structure returned.
package mapper

import (
	"context"
	"fmt"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/tree"
	"github.com/joeydtaylor/canopy/pkg/internal/types"
	"github.com/joeydtaylor/canopy/pkg/internal/utils"
)

// Mapper applies a transform over every leaf of a tree while reporting progress
// to attached loggers and sensors.
type Mapper[A, B any] struct {
	componentMetadata types.ComponentMetadata

	transform types.Transform[A, B]

	loggers     []types.Logger
	loggerCount int32

	sensors     []types.Sensor[A]
	sensorCount int32

	insulatorFunc  func(ctx context.Context, value A, err error) (B, error)
	retryThreshold int
	retryInterval  time.Duration
}

// walkState accumulates the per-operation counters the completion summary reports.
type walkState struct {
	nodes  int
	leaves int
	depth  int
}

// NewMapper creates a mapper and applies the provided options.
func NewMapper[A, B any](options ...types.Option[*Mapper[A, B]]) *Mapper[A, B] {
	m := &Mapper[A, B]{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "MAPPER",
		},
	}

	for _, opt := range options {
		opt(m)
	}

	return m
}

// Map walks t, applying the connected transform to every leaf, and returns the
// structure-preserving result. Cancellation of ctx aborts the walk between
// nodes. The first unrecovered transform error aborts the walk; no partial
// structure is returned.
func (m *Mapper[A, B]) Map(ctx context.Context, t tree.Tree[A]) (tree.Tree[B], error) {
	if m.transform == nil {
		return nil, fmt.Errorf("mapper %s: no transform connected", m.componentMetadata.ID)
	}
	if t == nil {
		return nil, fmt.Errorf("mapper %s: nil tree", m.componentMetadata.ID)
	}

	m.notifyMapStart()
	start := time.Now()

	state := &walkState{}
	result, err := m.walk(ctx, t, state, 1)
	if err != nil {
		return nil, err
	}

	summary := types.MapSummary{
		Nodes:    state.nodes,
		Leaves:   state.leaves,
		Depth:    state.depth,
		Duration: time.Since(start),
	}
	m.notifyMapComplete(summary)

	return result, nil
}

func (m *Mapper[A, B]) walk(ctx context.Context, t tree.Tree[A], state *walkState, depth int) (tree.Tree[B], error) {
	if err := ctx.Err(); err != nil {
		m.notifyCancel()
		return nil, err
	}

	state.nodes++
	if depth > state.depth {
		state.depth = depth
	}

	switch n := t.(type) {
	case tree.Branch[A]:
		left, err := m.walk(ctx, n.Left, state, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := m.walk(ctx, n.Right, state, depth+1)
		if err != nil {
			return nil, err
		}
		return tree.Branch[B]{Left: left, Right: right}, nil
	case tree.Leaf[A]:
		value, err := m.transformLeaf(ctx, n.Value)
		if err != nil {
			return nil, err
		}
		state.leaves++
		return tree.Leaf[B]{Value: value}, nil
	default:
		panic(fmt.Sprintf("mapper: unhandled variant %T", t))
	}
}
