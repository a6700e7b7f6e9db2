// Package maybe provides an optional-value container with the same mapping
// contract as the tree container: transforming the held value never changes
// the container's shape. Some maps to Some, None maps to None.
package maybe

// Maybe holds either one value of type A or nothing.
// The zero value is None.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Some wraps a present value.
func Some[A any](value A) Maybe[A] {
	return Maybe[A]{value: value, ok: true}
}

// None is the absent value.
func None[A any]() Maybe[A] {
	return Maybe[A]{}
}

// IsSome reports whether a value is present.
func (m Maybe[A]) IsSome() bool {
	return m.ok
}

// IsNone reports whether the container is empty.
func (m Maybe[A]) IsNone() bool {
	return !m.ok
}

// Get returns the held value and whether it is present.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.ok
}

// GetOrElse returns the held value, or fallback when empty.
func (m Maybe[A]) GetOrElse(fallback A) A {
	if m.ok {
		return m.value
	}
	return fallback
}

// OrElse returns m when present, otherwise alternative.
func (m Maybe[A]) OrElse(alternative Maybe[A]) Maybe[A] {
	if m.ok {
		return m
	}
	return alternative
}

// Map applies fn to the held value, preserving presence: Some(v) becomes
// Some(fn(v)) and None stays None.
func Map[A, B any](m Maybe[A], fn func(A) B) Maybe[B] {
	if !m.ok {
		return None[B]()
	}
	return Some(fn(m.value))
}

// FlatMap applies a Maybe-producing fn to the held value, flattening the result.
func FlatMap[A, B any](m Maybe[A], fn func(A) Maybe[B]) Maybe[B] {
	if !m.ok {
		return None[B]()
	}
	return fn(m.value)
}

// Filter keeps the value only when pred holds.
func Filter[A any](m Maybe[A], pred func(A) bool) Maybe[A] {
	if m.ok && pred(m.value) {
		return m
	}
	return None[A]()
}
