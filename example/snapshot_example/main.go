package main

import (
	"fmt"

	"github.com/joeydtaylor/canopy/pkg/builder"
)

func main() {
	src := builder.Branch[string](
		builder.Branch[string](builder.Leaf("alpha"), builder.Leaf("beta")),
		builder.Leaf("gamma"),
	)

	// Raw encoding without compression.
	raw, err := builder.EncodeTree[string](src, builder.FormatJSON)
	if err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		return
	}
	fmt.Printf("JSON payload: %s\n", raw)

	// Snapshots bundle the payload with restore metadata and compression.
	algorithms := map[string]builder.CompressionAlgorithm{
		"none":   builder.CompressNone,
		"snappy": builder.CompressSnappy,
		"zstd":   builder.CompressZstd,
		"brotli": builder.CompressBrotli,
		"lz4":    builder.CompressLZ4,
	}

	for name, algorithm := range algorithms {
		snap, err := builder.WrapSnapshot[string](src, builder.FormatGOB, algorithm)
		if err != nil {
			fmt.Printf("Snapshot with %s failed: %v\n", name, err)
			return
		}

		restored, err := builder.UnwrapSnapshot[string](snap)
		if err != nil {
			fmt.Printf("Restore with %s failed: %v\n", name, err)
			return
		}

		fmt.Printf("%s: %d payload bytes, %d leaves, depth %d, restored equal: %v\n",
			name, len(snap.Payload), snap.Leaves, snap.Depth, builder.Equal[string](restored, src))
	}
}
