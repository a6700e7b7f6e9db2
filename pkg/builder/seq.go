package builder

import (
	"github.com/joeydtaylor/canopy/pkg/internal/seq"
)

// SliceMap applies fn to every element and returns a new slice of the results.
func SliceMap[A, B any](elems []A, fn func(A) B) []B {
	return seq.Map(elems, fn)
}

// SliceFilter returns the elements fn accepts, preserving order.
func SliceFilter[A any](elems []A, fn func(A) bool) []A {
	return seq.Filter(elems, fn)
}

// SliceFlatMap maps each element to a slice and concatenates the results.
func SliceFlatMap[A, B any](elems []A, fn func(A) []B) []B {
	return seq.FlatMap(elems, fn)
}

// SliceFold reduces a slice left-to-right from an initial accumulator.
func SliceFold[A, B any](elems []A, init B, fn func(B, A) B) B {
	return seq.Fold(elems, init, fn)
}

// SliceContains reports whether element occurs in the slice.
func SliceContains[A comparable](elems []A, element A) bool {
	return seq.Contains(elems, element)
}
