// Package tree provides the binary tree container at the core of the Canopy toolkit.
// A Tree is a closed sum of exactly two variants: a Leaf holding a single value, and a
// Branch owning a left and a right subtree. Trees are immutable once constructed; every
// operation in this package allocates a new structure and leaves its input untouched.
//
// The package exposes the structural toolkit for the container: mapping (structure-preserving
// value transformation), folding (catamorphism), and derived queries such as size, depth,
// and flattening. Mapping obeys the functor laws: mapping the identity function yields an
// equal tree, and mapping f then g is equivalent to mapping their composition.
//
// Because trees are immutable and operations share no state, any number of goroutines may
// map or fold the same tree concurrently without synchronization.
package tree

// Tree is the container type, sealed over the variant set {Leaf, Branch}.
// Client code constructs trees via NewLeaf and NewBranch (or the variant literals)
// and inspects them with a type switch over the two variants.
type Tree[A any] interface {
	// sealed restricts the variant set to this package.
	sealed()
}

// Leaf holds exactly one value. Terminal node.
type Leaf[A any] struct {
	Value A
}

// Branch holds two subtrees of the same element type. Recursive node; owns both
// children exclusively.
type Branch[A any] struct {
	Left  Tree[A]
	Right Tree[A]
}

func (Leaf[A]) sealed() {}

func (Branch[A]) sealed() {}

// NewLeaf constructs a single-value tree, returned as the abstract container type.
func NewLeaf[A any](value A) Tree[A] {
	return Leaf[A]{Value: value}
}

// NewBranch constructs a two-child tree, returned as the abstract container type.
func NewBranch[A any](left, right Tree[A]) Tree[A] {
	return Branch[A]{Left: left, Right: right}
}
