package main

import (
	"fmt"
	"strconv"

	"github.com/joeydtaylor/canopy/pkg/builder"
)

func main() {
	// Build a small tree of prices in cents.
	prices := builder.Branch[int](
		builder.Branch[int](builder.Leaf(199), builder.Leaf(499)),
		builder.Leaf(1299),
	)

	// Apply a discount to every leaf. The shape never changes.
	discounted := builder.Map(prices, func(cents int) int { return cents * 90 / 100 })
	fmt.Printf("Discounted prices: %v\n", builder.Flatten[int](discounted))

	// Map can change the element type.
	labels := builder.Map(discounted, func(cents int) string {
		return "$" + strconv.FormatFloat(float64(cents)/100, 'f', 2, 64)
	})
	fmt.Printf("Labels: %v\n", builder.Flatten[string](labels))

	if !builder.SameShape[int, string](prices, labels) {
		fmt.Println("Shape changed, something is wrong!")
		return
	}

	// Fold collapses the tree into a single value.
	total := builder.Fold(discounted,
		func(cents int) int { return cents },
		func(left, right int) int { return left + right },
	)
	fmt.Printf("Total: %d cents across %d items (depth %d)\n",
		total, builder.Leaves[int](discounted), builder.Depth[int](discounted))

	// The same mapping behavior is available for slices, optionals and functions.
	fmt.Printf("Doubled slice: %v\n", builder.SliceMap([]int{1, 2, 3}, func(v int) int { return v * 2 }))

	found := builder.MaybeMap(builder.Some(21), func(v int) int { return v * 2 })
	if v, ok := found.Get(); ok {
		fmt.Printf("Maybe holds: %d\n", v)
	}

	parseAndDouble := builder.FuncMap(
		builder.Func[string, int](func(s string) int { n, _ := strconv.Atoi(s); return n }),
		func(v int) int { return v * 2 },
	)
	fmt.Printf("Composed function: %d\n", parseAndDouble("21"))
}
