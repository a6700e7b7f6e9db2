package tree

// Equal reports structural and value equality for trees of comparable elements.
func Equal[A comparable](a, b Tree[A]) bool {
	return EqualFunc(a, b, func(x, y A) bool { return x == y })
}

// EqualFunc reports structural equality with a caller-supplied value comparison.
func EqualFunc[A, B any](a Tree[A], b Tree[B], eq func(A, B) bool) bool {
	switch an := a.(type) {
	case Branch[A]:
		bn, ok := b.(Branch[B])
		if !ok {
			return false
		}
		return EqualFunc(an.Left, bn.Left, eq) && EqualFunc(an.Right, bn.Right, eq)
	case Leaf[A]:
		bn, ok := b.(Leaf[B])
		if !ok {
			return false
		}
		return eq(an.Value, bn.Value)
	default:
		return false
	}
}

// SameShape reports whether two trees have identical topology, regardless of values.
func SameShape[A, B any](a Tree[A], b Tree[B]) bool {
	return EqualFunc(a, b, func(A, B) bool { return true })
}
