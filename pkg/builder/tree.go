package builder

import (
	"github.com/joeydtaylor/canopy/pkg/internal/tree"
)

// Tree is the immutable binary container exported for consumers of the
// builder package. A Tree value is always either a leaf or a branch.
type Tree[A any] = tree.Tree[A]

// Leaf wraps a single value in a tree.
func Leaf[A any](value A) Tree[A] {
	return tree.NewLeaf(value)
}

// Branch joins two subtrees into a larger tree.
func Branch[A any](left, right Tree[A]) Tree[A] {
	return tree.NewBranch[A](left, right)
}

// Map applies fn to every leaf value and returns a tree of identical shape.
// The input tree is never modified.
func Map[A, B any](t Tree[A], fn func(A) B) Tree[B] {
	return tree.Map(t, fn)
}

// MapE is Map for fallible functions. The first leaf error aborts the walk.
func MapE[A, B any](t Tree[A], fn func(A) (B, error)) (Tree[B], error) {
	return tree.MapE(t, fn)
}

// Fold collapses a tree bottom-up: leaf converts each value, branch merges
// two collapsed subtrees.
func Fold[A, B any](t Tree[A], leaf func(A) B, branch func(B, B) B) B {
	return tree.Fold(t, leaf, branch)
}

// Size returns the total node count, branches included.
func Size[A any](t Tree[A]) int {
	return tree.Size[A](t)
}

// Leaves returns the number of leaf nodes.
func Leaves[A any](t Tree[A]) int {
	return tree.Leaves[A](t)
}

// Depth returns the longest root-to-leaf path. A lone leaf has depth 1.
func Depth[A any](t Tree[A]) int {
	return tree.Depth[A](t)
}

// Flatten collects leaf values in left-to-right order.
func Flatten[A any](t Tree[A]) []A {
	return tree.Flatten[A](t)
}

// Equal reports whether two trees have the same shape and leaf values.
func Equal[A comparable](a, b Tree[A]) bool {
	return tree.Equal[A](a, b)
}

// EqualFunc compares two trees using a caller-supplied leaf comparison.
func EqualFunc[A, B any](a Tree[A], b Tree[B], eq func(A, B) bool) bool {
	return tree.EqualFunc(a, b, eq)
}

// SameShape reports whether two trees branch identically, ignoring values.
func SameShape[A, B any](a Tree[A], b Tree[B]) bool {
	return tree.SameShape[A, B](a, b)
}
