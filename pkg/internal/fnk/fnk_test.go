package fnk_test

import (
	"strconv"
	"testing"

	"github.com/joeydtaylor/canopy/pkg/internal/fnk"
)

func TestMap_IsPostComposition(t *testing.T) {
	double := fnk.Func[int, int](func(v int) int { return v * 2 })

	show := fnk.Map(double, strconv.Itoa)

	if got := show(21); got != "42" {
		t.Fatalf("expected \"42\", got %q", got)
	}
}

func TestCompose_Order(t *testing.T) {
	addOne := func(v int) int { return v + 1 }
	times10 := func(v int) int { return v * 10 }

	// g after f: times10(addOne(v))
	got := fnk.Compose(times10, addOne)(4)
	if got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestMap_IdentityLaw(t *testing.T) {
	f := fnk.Func[int, int](func(v int) int { return v + 3 })

	mapped := fnk.Map(f, fnk.Identity[int])

	for _, v := range []int{-1, 0, 7} {
		if mapped(v) != f(v) {
			t.Fatalf("identity law failed at %d", v)
		}
	}
}

func TestMap_CompositionLaw(t *testing.T) {
	f := fnk.Func[int, int](func(v int) int { return v * 2 })
	g := func(v int) int { return v + 5 }
	h := func(v int) int { return v * v }

	twice := fnk.Map(fnk.Map(f, g), h)
	once := fnk.Map(f, func(v int) int { return h(g(v)) })

	for _, v := range []int{-2, 0, 9} {
		if twice(v) != once(v) {
			t.Fatalf("composition law failed at %d: %d vs %d", v, twice(v), once(v))
		}
	}
}

func TestConst(t *testing.T) {
	always := fnk.Const[string](7)
	if got := always("anything"); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
}
