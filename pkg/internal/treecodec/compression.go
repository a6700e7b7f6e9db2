package treecodec

import (
	"bytes"
	"compress/gzip"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// CompressionAlgorithm selects how a snapshot payload is compressed.
type CompressionAlgorithm int32

const (
	CompressNone CompressionAlgorithm = iota
	CompressDeflate
	CompressSnappy
	CompressZstd
	CompressBrotli
	CompressLZ4
)

func compressData(data []byte, algorithm CompressionAlgorithm) ([]byte, error) {
	var b bytes.Buffer
	var w io.WriteCloser

	switch algorithm {
	case CompressDeflate:
		w = gzip.NewWriter(&b)
	case CompressSnappy:
		w = snappy.NewBufferedWriter(&b)
	case CompressZstd:
		var err error
		w, err = zstd.NewWriter(&b)
		if err != nil {
			return nil, err
		}
	case CompressBrotli:
		w = brotli.NewWriterLevel(&b, brotli.BestCompression)
	case CompressLZ4:
		w = lz4.NewWriter(&b)
	default:
		return data, nil
	}

	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func decompressData(data []byte, algorithm CompressionAlgorithm) (*bytes.Buffer, error) {
	var b bytes.Buffer
	var r io.Reader

	switch algorithm {
	case CompressDeflate:
		var err error
		r, err = gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
	case CompressSnappy:
		r = snappy.NewReader(bytes.NewReader(data))
	case CompressZstd:
		zr, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case CompressBrotli:
		r = brotli.NewReader(bytes.NewReader(data))
	case CompressLZ4:
		r = lz4.NewReader(bytes.NewReader(data))
	default:
		r = bytes.NewReader(data)
	}

	if _, err := io.Copy(&b, r); err != nil {
		return nil, err
	}
	return &b, nil
}
