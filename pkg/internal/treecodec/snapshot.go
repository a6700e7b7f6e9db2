package treecodec

import (
	"fmt"
	"time"

	"github.com/joeydtaylor/canopy/pkg/internal/tree"
)

// Snapshot holds an encoded tree plus the metadata needed to restore it.
type Snapshot struct {
	ID        string
	Timestamp time.Time
	Format    string
	Algorithm CompressionAlgorithm
	Leaves    int
	Depth     int
	Payload   []byte
}

// WrapSnapshot encodes a tree into a Snapshot with compression applied.
func WrapSnapshot[T any](t tree.Tree[T], format string, algorithm CompressionAlgorithm) (*Snapshot, error) {
	payload, err := EncodeTree[T](t, format)
	if err != nil {
		return nil, err
	}

	if algorithm != CompressNone {
		compressed, err := compressData(payload, algorithm)
		if err != nil {
			return nil, fmt.Errorf("compression failed: %w", err)
		}
		payload = compressed
	}

	timestamp := time.Now()
	return &Snapshot{
		ID:        timestamp.UTC().Format(time.RFC3339Nano),
		Timestamp: timestamp,
		Format:    format,
		Algorithm: algorithm,
		Leaves:    tree.Leaves[T](t),
		Depth:     tree.Depth[T](t),
		Payload:   payload,
	}, nil
}

// UnwrapSnapshot restores the tree a Snapshot holds.
func UnwrapSnapshot[T any](s *Snapshot) (tree.Tree[T], error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}

	payload := s.Payload
	if s.Algorithm != CompressNone {
		buf, err := decompressData(payload, s.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("decompression failed: %w", err)
		}
		payload = buf.Bytes()
	}

	return DecodeTree[T](payload, s.Format)
}
