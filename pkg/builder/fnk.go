package builder

import (
	"github.com/joeydtaylor/canopy/pkg/internal/fnk"
)

// Func is a single-argument function treated as a mappable container of its
// eventual result.
type Func[A, B any] = fnk.Func[A, B]

// FuncMap post-composes g onto f: the result computes g(f(a)).
func FuncMap[A, B, C any](f Func[A, B], g func(B) C) Func[A, C] {
	return fnk.Map(f, g)
}

// Compose returns g after f.
func Compose[A, B, C any](g func(B) C, f func(A) B) Func[A, C] {
	return fnk.Compose(g, f)
}

// Identity returns its argument unchanged.
func Identity[A any](a A) A {
	return fnk.Identity(a)
}

// Const returns a function that ignores its argument and yields value.
func Const[A, B any](value B) Func[A, B] {
	return fnk.Const[A](value)
}
