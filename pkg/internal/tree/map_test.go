package tree_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/joeydtaylor/canopy/pkg/internal/tree"
)

func TestMap_Leaf(t *testing.T) {
	got := tree.Map(tree.NewLeaf(100), func(v int) int { return v * 2 })

	if !tree.Equal[int](got, tree.NewLeaf(200)) {
		t.Fatalf("expected leaf(200), got %+v", got)
	}
}

func TestMap_Branch(t *testing.T) {
	src := tree.NewBranch[int](tree.NewLeaf(10), tree.NewLeaf(20))

	got := tree.Map(src, func(v int) int { return v * 2 })

	want := tree.NewBranch[int](tree.NewLeaf(20), tree.NewLeaf(40))
	if !tree.Equal[int](got, want) {
		t.Fatalf("expected branch(leaf(20), leaf(40)), got %+v", got)
	}
}

func TestMap_BranchDecomposes(t *testing.T) {
	l := tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2))
	r := tree.NewLeaf(3)
	double := func(v int) int { return v * 2 }

	whole := tree.Map(tree.NewBranch[int](l, r), double)
	parts := tree.NewBranch[int](tree.Map(l, double), tree.Map(r, double))

	if !tree.Equal[int](whole, parts) {
		t.Fatalf("map(branch(l, r)) != branch(map(l), map(r)): %+v vs %+v", whole, parts)
	}
}

func TestMap_ChangesElementType(t *testing.T) {
	src := tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2))

	got := tree.Map(src, func(v int) string { return fmt.Sprintf("#%d", v) })

	want := tree.NewBranch[string](tree.NewLeaf("#1"), tree.NewLeaf("#2"))
	if !tree.Equal[string](got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestMap_DoesNotMutateSource(t *testing.T) {
	src := tree.NewBranch[int](tree.NewLeaf(10), tree.NewLeaf(20))
	pristine := tree.NewBranch[int](tree.NewLeaf(10), tree.NewLeaf(20))

	_ = tree.Map(src, func(v int) int { return v * 1000 })

	if !tree.Equal[int](src, pristine) {
		t.Fatalf("source tree was modified: %+v", src)
	}
}

func TestMap_DeepTreePreservesDepth(t *testing.T) {
	const depth = 10000

	src := tree.NewLeaf(1)
	for i := 1; i < depth; i++ {
		src = tree.NewBranch[int](src, tree.NewLeaf(i))
	}
	if got := tree.Depth[int](src); got != depth {
		t.Fatalf("setup: expected depth %d, got %d", depth, got)
	}

	mapped := tree.Map(src, func(v int) int { return v + 1 })

	if got := tree.Depth[int](mapped); got != depth {
		t.Fatalf("expected depth %d after map, got %d", depth, got)
	}
	if !tree.SameShape[int, int](src, mapped) {
		t.Fatalf("shape changed on deep tree")
	}
}

func TestMap_ConcurrentOverSharedSource(t *testing.T) {
	src := tree.NewBranch[int](
		tree.NewBranch[int](tree.NewLeaf(1), tree.NewLeaf(2)),
		tree.NewBranch[int](tree.NewLeaf(3), tree.NewLeaf(4)),
	)
	want := tree.Map(src, func(v int) int { return v * 3 })

	var wg sync.WaitGroup
	results := make([]tree.Tree[int], 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = tree.Map(src, func(v int) int { return v * 3 })
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !tree.Equal[int](got, want) {
			t.Fatalf("goroutine %d produced %+v, expected %+v", i, got, want)
		}
	}
}

func TestMapE_Success(t *testing.T) {
	src := tree.NewBranch[int](tree.NewLeaf(10), tree.NewLeaf(20))

	got, err := tree.MapE(src, func(v int) (int, error) { return v * 2, nil })
	if err != nil {
		t.Fatalf("MapE() error: %v", err)
	}
	if !tree.Equal[int](got, tree.NewBranch[int](tree.NewLeaf(20), tree.NewLeaf(40))) {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestMapE_FailFast(t *testing.T) {
	src := tree.NewBranch[int](
		tree.NewLeaf(1),
		tree.NewBranch[int](tree.NewLeaf(2), tree.NewLeaf(3)),
	)
	boom := errors.New("boom")

	visited := 0
	got, err := tree.MapE(src, func(v int) (int, error) {
		visited++
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})

	if !errors.Is(err, boom) {
		t.Fatalf("expected boom error, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected no partial structure, got %+v", got)
	}
	if visited != 2 {
		t.Fatalf("expected traversal to stop at failing leaf, visited %d", visited)
	}
}
