// Package treecodec serializes tree containers for storage or transport by the
// caller. The codec stops at bytes: it encodes a tree into a tagged node
// payload (JSON or gob), optionally compressed, and restores an equal tree from
// that payload. No I/O is performed here.
package treecodec

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/joeydtaylor/canopy/pkg/internal/tree"
)

const (
	FormatJSON = "json"
	FormatGOB  = "gob"
)

// node is the self-describing intermediate form both formats share. Exactly one
// of Leaf or Branch is set on a well-formed node.
type node[T any] struct {
	Leaf   *leafNode[T]   `json:"leaf,omitempty"`
	Branch *branchNode[T] `json:"branch,omitempty"`
}

type leafNode[T any] struct {
	Value T `json:"value"`
}

type branchNode[T any] struct {
	Left  node[T] `json:"left"`
	Right node[T] `json:"right"`
}

func toNode[T any](t tree.Tree[T]) node[T] {
	switch n := t.(type) {
	case tree.Branch[T]:
		return node[T]{Branch: &branchNode[T]{
			Left:  toNode[T](n.Left),
			Right: toNode[T](n.Right),
		}}
	case tree.Leaf[T]:
		return node[T]{Leaf: &leafNode[T]{Value: n.Value}}
	default:
		panic(fmt.Sprintf("treecodec: unhandled variant %T", t))
	}
}

func fromNode[T any](n node[T]) (tree.Tree[T], error) {
	switch {
	case n.Leaf != nil && n.Branch == nil:
		return tree.Leaf[T]{Value: n.Leaf.Value}, nil
	case n.Branch != nil && n.Leaf == nil:
		left, err := fromNode(n.Branch.Left)
		if err != nil {
			return nil, err
		}
		right, err := fromNode(n.Branch.Right)
		if err != nil {
			return nil, err
		}
		return tree.Branch[T]{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("malformed snapshot node: exactly one of leaf or branch must be set")
	}
}

// EncodeTree marshals a tree into the named format.
func EncodeTree[T any](t tree.Tree[T], format string) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("cannot encode nil tree")
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		return json.Marshal(toNode[T](t))
	case FormatGOB, "":
		var buf bytes.Buffer
		enc := gob.NewEncoder(&buf)
		root := toNode[T](t)
		if err := enc.Encode(&root); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}
}

// DecodeTree restores a tree from the named format.
func DecodeTree[T any](data []byte, format string) (tree.Tree[T], error) {
	var root node[T]

	switch strings.ToLower(format) {
	case FormatJSON:
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, err
		}
	case FormatGOB, "":
		dec := gob.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&root); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %q", format)
	}

	return fromNode(root)
}
