// Package seq provides the slice instance of the mapping contract: transforming
// elements produces a slice of the same length in the same order.
package seq

// Map applies fn to each element, returning a new slice of equal length.
func Map[A, B any](elems []A, fn func(A) B) []B {
	result := make([]B, len(elems))
	for i, v := range elems {
		result[i] = fn(v)
	}
	return result
}

// Filter returns a new slice holding only the elements of elems that satisfy fn().
func Filter[A any](elems []A, fn func(A) bool) []A {
	var result []A
	for _, v := range elems {
		if fn(v) {
			result = append(result, v)
		}
	}
	return result
}

// FlatMap applies a slice-producing fn to each element and concatenates the results.
func FlatMap[A, B any](elems []A, fn func(A) []B) []B {
	var result []B
	for _, v := range elems {
		result = append(result, fn(v)...)
	}
	return result
}

// Fold reduces elems left-to-right starting from init.
func Fold[A, B any](elems []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range elems {
		acc = fn(acc, v)
	}
	return acc
}

func Contains[A comparable](slice []A, element A) bool {
	for _, v := range slice {
		if v == element {
			return true
		}
	}
	return false
}
