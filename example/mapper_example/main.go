package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/joeydtaylor/canopy/pkg/builder"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	meter := builder.NewMeter(
		builder.MeterWithComponentMetadata("ExampleMeter", "meter-1"),
	)

	// The sensor forwards mapper events to callbacks and updates the meter.
	sensor := builder.NewSensor(
		builder.SensorWithMeter[string](meter),
		builder.SensorWithOnMapStartFunc[string](func(c builder.ComponentMetadata) {
			fmt.Printf("%v -> Map started\n", c)
		}),
		builder.SensorWithOnNodeTransformedFunc(func(c builder.ComponentMetadata, value string) {
			fmt.Printf("%v -> Transformed leaf: %v\n", c, value)
		}),
		builder.SensorWithOnErrorFunc(func(c builder.ComponentMetadata, err error, value string) {
			fmt.Printf("%v -> Error on %v: %v\n", c, value, err)
		}),
		builder.SensorWithOnMapCompleteFunc[string](func(c builder.ComponentMetadata, s builder.MapSummary) {
			fmt.Printf("%v -> Map complete: %d nodes, %d leaves, depth %d in %v\n",
				c, s.Nodes, s.Leaves, s.Depth, s.Duration)
		}),
	)

	// Transform leaves to uppercase, failing on a sentinel value. The
	// insulator retries the failed leaf with a fallback.
	transform := func(input string) (string, error) {
		if input == "bad" {
			return "", fmt.Errorf("simulated transform error")
		}
		return strings.ToUpper(input), nil
	}

	m := builder.NewMapper(
		builder.MapperWithTransform[string, string](transform),
		builder.MapperWithLogger[string, string](logger),
		builder.MapperWithSensor[string, string](sensor),
		builder.MapperWithInsulator[string, string](
			func(ctx context.Context, value string, err error) (string, error) {
				return "RECOVERED", nil
			},
			3,
			100*time.Millisecond,
		),
		builder.MapperWithComponentMetadata[string, string]("ExampleMapper", "mapper-1"),
	)

	src := builder.Branch[string](
		builder.Branch[string](builder.Leaf("hello"), builder.Leaf("bad")),
		builder.Leaf("world"),
	)

	result, err := m.Map(ctx, src)
	if err != nil {
		fmt.Printf("Map failed: %v\n", err)
		return
	}

	fmt.Printf("Result: %v\n", builder.Flatten[string](result))
	fmt.Printf("Leaves transformed so far: %d\n",
		meter.GetMetricCount(string(builder.MetricNodeTransformedCount)))
}
