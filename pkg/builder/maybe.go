package builder

import (
	"github.com/joeydtaylor/canopy/pkg/internal/maybe"
)

// Maybe is an optional value: either Some(value) or None.
type Maybe[A any] = maybe.Maybe[A]

// Some wraps a present value.
func Some[A any](value A) Maybe[A] {
	return maybe.Some(value)
}

// None returns the absent value.
func None[A any]() Maybe[A] {
	return maybe.None[A]()
}

// MaybeMap applies fn to the held value when present; None stays None.
func MaybeMap[A, B any](m Maybe[A], fn func(A) B) Maybe[B] {
	return maybe.Map(m, fn)
}

// MaybeFlatMap chains an operation that may itself produce None.
func MaybeFlatMap[A, B any](m Maybe[A], fn func(A) Maybe[B]) Maybe[B] {
	return maybe.FlatMap(m, fn)
}

// MaybeFilter drops the held value when pred rejects it.
func MaybeFilter[A any](m Maybe[A], pred func(A) bool) Maybe[A] {
	return maybe.Filter(m, pred)
}
