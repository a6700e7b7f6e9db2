package tree

import "fmt"

// Map applies fn to every leaf value in t and returns a new tree with an identical
// shape. Branches are rebuilt with recursively mapped children, left before right;
// leaves are rebuilt from the transformed value. The source tree is never modified.
//
// Recursion terminates because trees are finite and acyclic; depth of the call stack
// equals the structural depth of the input.
func Map[A, B any](t Tree[A], fn func(A) B) Tree[B] {
	switch n := t.(type) {
	case Branch[A]:
		return Branch[B]{Left: Map(n.Left, fn), Right: Map(n.Right, fn)}
	case Leaf[A]:
		return Leaf[B]{Value: fn(n.Value)}
	default:
		panic(fmt.Sprintf("tree: unhandled variant %T", t))
	}
}

// MapE is Map for fallible transforms. The first error aborts the traversal and
// propagates to the caller unmodified; no partial structure is returned.
func MapE[A, B any](t Tree[A], fn func(A) (B, error)) (Tree[B], error) {
	switch n := t.(type) {
	case Branch[A]:
		left, err := MapE(n.Left, fn)
		if err != nil {
			return nil, err
		}
		right, err := MapE(n.Right, fn)
		if err != nil {
			return nil, err
		}
		return Branch[B]{Left: left, Right: right}, nil
	case Leaf[A]:
		value, err := fn(n.Value)
		if err != nil {
			return nil, err
		}
		return Leaf[B]{Value: value}, nil
	default:
		panic(fmt.Sprintf("tree: unhandled variant %T", t))
	}
}
