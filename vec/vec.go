// Package vec builds slices from literal element lists.
package vec

// Of returns a new slice holding elems in order. The result never shares
// storage with a slice passed as elems..., and Of() returns an empty,
// non-nil slice.
func Of[T any](elems ...T) []T {
	return append(make([]T, 0, len(elems)), elems...)
}

// Repeat returns a slice of n copies of elem. It panics if n is negative.
func Repeat[T any](elem T, n int) []T {
	vs := make([]T, n)
	for i := range vs {
		vs[i] = elem
	}
	return vs
}
