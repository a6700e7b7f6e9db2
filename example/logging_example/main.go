package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeydtaylor/canopy/pkg/builder"
)

func main() {
	ctx := context.Background()

	logger := builder.NewLogger(
		builder.LoggerWithLevel("debug"),
		builder.LoggerWithFields(map[string]interface{}{
			"service": "canopy-demo",
		}),
	)
	defer logger.Flush()

	// Add a file sink
	fileSinkConfig := builder.SinkConfig{
		Type: string(builder.FileSink),
		Config: map[string]interface{}{
			"path": "logs/output.log",
		},
	}
	if err := logger.AddSink("fileSink", fileSinkConfig); err != nil {
		fmt.Printf("Failed to add file sink: %v\n", err)
		return
	}

	// Add a console sink (stdout)
	consoleSinkConfig := builder.SinkConfig{Type: string(builder.StdoutSink)}
	if err := logger.AddSink("consoleSink", consoleSinkConfig); err != nil {
		fmt.Printf("Failed to add console sink: %v\n", err)
		return
	}

	sinks, _ := logger.ListSinks()
	fmt.Printf("Active sinks: %v\n", sinks)

	// Every mapper event lands in both sinks as structured JSON.
	m := builder.NewMapper(
		builder.MapperWithTransform[string, string](func(input string) (string, error) {
			return strings.ToUpper(input), nil
		}),
		builder.MapperWithLogger[string, string](logger),
		builder.MapperWithComponentMetadata[string, string]("LoggingMapper", "logging-mapper-1"),
	)

	src := builder.Branch[string](builder.Leaf("hello"), builder.Leaf("world"))
	result, err := m.Map(ctx, src)
	if err != nil {
		fmt.Printf("Map failed: %v\n", err)
		return
	}
	fmt.Printf("Result: %v\n", builder.Flatten[string](result))

	// Raising the level silences the per-leaf debug events.
	logger.SetLevel(builder.WarnLevel)
	if _, err := m.Map(ctx, src); err != nil {
		fmt.Printf("Map failed: %v\n", err)
		return
	}
	fmt.Println("Second run logged nothing below warn.")
}
