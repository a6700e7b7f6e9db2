package tree

import "fmt"

// Fold collapses a tree bottom-up: leaf is applied to every leaf value, branch
// combines the folded results of the two children, left result first. Map, Size,
// Depth, and Flatten are all expressible through Fold.
func Fold[A, B any](t Tree[A], leaf func(A) B, branch func(B, B) B) B {
	switch n := t.(type) {
	case Branch[A]:
		return branch(Fold(n.Left, leaf, branch), Fold(n.Right, leaf, branch))
	case Leaf[A]:
		return leaf(n.Value)
	default:
		panic(fmt.Sprintf("tree: unhandled variant %T", t))
	}
}

// Size returns the total node count, branches included.
func Size[A any](t Tree[A]) int {
	return Fold(t,
		func(A) int { return 1 },
		func(l, r int) int { return 1 + l + r },
	)
}

// Leaves returns the number of leaf values in the tree.
func Leaves[A any](t Tree[A]) int {
	return Fold(t,
		func(A) int { return 1 },
		func(l, r int) int { return l + r },
	)
}

// Depth returns the structural depth of the tree. A lone leaf has depth 1.
func Depth[A any](t Tree[A]) int {
	return Fold(t,
		func(A) int { return 1 },
		func(l, r int) int {
			if l > r {
				return 1 + l
			}
			return 1 + r
		},
	)
}

// Flatten returns the leaf values in left-to-right order.
func Flatten[A any](t Tree[A]) []A {
	out := make([]A, 0, Leaves[A](t))
	var walk func(Tree[A])
	walk = func(t Tree[A]) {
		switch n := t.(type) {
		case Branch[A]:
			walk(n.Left)
			walk(n.Right)
		case Leaf[A]:
			out = append(out, n.Value)
		default:
			panic(fmt.Sprintf("tree: unhandled variant %T", t))
		}
	}
	walk(t)
	return out
}
