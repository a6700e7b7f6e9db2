// Package fnk provides the function instance of the mapping contract. For a
// function viewed as a container of its eventual result, mapping is
// post-composition: Map(f, g) runs f and feeds its result through g.
package fnk

// Func is a unary function from A to B.
type Func[A, B any] func(A) B

// Map post-composes g onto f: the result computes g(f(a)).
func Map[A, B, C any](f Func[A, B], g func(B) C) Func[A, C] {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose is g after f, identical to Map with the arguments named for readers
// who think in composition order.
func Compose[A, B, C any](g func(B) C, f func(A) B) Func[A, C] {
	return Map(Func[A, B](f), g)
}

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return a
}

// Const ignores its argument and always returns value.
func Const[A, B any](value B) Func[A, B] {
	return func(A) B {
		return value
	}
}
