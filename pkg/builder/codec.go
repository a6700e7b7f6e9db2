package builder

import (
	"github.com/joeydtaylor/canopy/pkg/internal/tree"
	"github.com/joeydtaylor/canopy/pkg/internal/treecodec"
)

type CompressionAlgorithm = treecodec.CompressionAlgorithm

// Snapshot is an encoded, optionally compressed tree plus restore metadata.
type Snapshot = treecodec.Snapshot

const (
	CompressNone    CompressionAlgorithm = treecodec.CompressNone
	CompressDeflate CompressionAlgorithm = treecodec.CompressDeflate
	CompressSnappy  CompressionAlgorithm = treecodec.CompressSnappy
	CompressZstd    CompressionAlgorithm = treecodec.CompressZstd
	CompressBrotli  CompressionAlgorithm = treecodec.CompressBrotli
	CompressLZ4     CompressionAlgorithm = treecodec.CompressLZ4
)

const (
	FormatJSON = treecodec.FormatJSON
	FormatGOB  = treecodec.FormatGOB
)

// EncodeTree marshals a tree into the named format.
func EncodeTree[T any](t tree.Tree[T], format string) ([]byte, error) {
	return treecodec.EncodeTree[T](t, format)
}

// DecodeTree restores a tree from the named format.
func DecodeTree[T any](data []byte, format string) (tree.Tree[T], error) {
	return treecodec.DecodeTree[T](data, format)
}

// WrapSnapshot encodes a tree into a Snapshot with compression applied.
func WrapSnapshot[T any](t tree.Tree[T], format string, algorithm CompressionAlgorithm) (*Snapshot, error) {
	return treecodec.WrapSnapshot[T](t, format, algorithm)
}

// UnwrapSnapshot restores the tree a Snapshot holds.
func UnwrapSnapshot[T any](s *Snapshot) (tree.Tree[T], error) {
	return treecodec.UnwrapSnapshot[T](s)
}
