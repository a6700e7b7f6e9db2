package seq_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/joeydtaylor/canopy/pkg/internal/seq"
)

func TestMap_SameLengthSameOrder(t *testing.T) {
	got := seq.Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Fatalf("expected [2 4 6], got %v", got)
	}

	empty := seq.Map([]int{}, func(v int) int { return v })
	if len(empty) != 0 {
		t.Fatalf("expected empty result, got %v", empty)
	}
}

func TestMap_ChangesElementType(t *testing.T) {
	got := seq.Map([]int{1, 2}, strconv.Itoa)
	if !reflect.DeepEqual(got, []string{"1", "2"}) {
		t.Fatalf("expected [\"1\" \"2\"], got %v", got)
	}
}

func TestMap_Laws(t *testing.T) {
	src := []int{3, 1, 4, 1, 5}
	f := func(v int) int { return v + 2 }
	g := func(v int) int { return v * v }

	identity := seq.Map(src, func(v int) int { return v })
	if !reflect.DeepEqual(identity, src) {
		t.Fatalf("identity law failed: %v", identity)
	}

	twice := seq.Map(seq.Map(src, f), g)
	once := seq.Map(src, func(v int) int { return g(f(v)) })
	if !reflect.DeepEqual(twice, once) {
		t.Fatalf("composition law failed: %v vs %v", twice, once)
	}
}

func TestFilter(t *testing.T) {
	got := seq.Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("expected [2 4], got %v", got)
	}
}

func TestFlatMap(t *testing.T) {
	got := seq.FlatMap([]int{1, 2}, func(v int) []int { return []int{v, v * 10} })
	if !reflect.DeepEqual(got, []int{1, 10, 2, 20}) {
		t.Fatalf("expected [1 10 2 20], got %v", got)
	}
}

func TestFold(t *testing.T) {
	got := seq.Fold([]int{1, 2, 3}, 10, func(acc, v int) int { return acc + v })
	if got != 16 {
		t.Fatalf("expected 16, got %d", got)
	}
}

func TestContains(t *testing.T) {
	if !seq.Contains([]string{"a", "b"}, "b") {
		t.Fatalf("expected to find b")
	}
	if seq.Contains([]string{"a", "b"}, "c") {
		t.Fatalf("did not expect to find c")
	}
}
