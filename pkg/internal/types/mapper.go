package types

import "time"

// MapSummary describes one completed mapping operation over a container.
type MapSummary struct {
	Nodes    int           // Total nodes visited, branches included.
	Leaves   int           // Leaf values transformed.
	Depth    int           // Structural depth of the source container.
	Duration time.Duration // Wall time the operation took.
}
