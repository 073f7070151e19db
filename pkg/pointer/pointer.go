// Copyright (c) 2026 The BGList Authors. All rights reserved.

/*
Package pointer provides generic pointer helpers.

Optional request fields are modeled as pointers; these helpers remove the
boilerplate of taking addresses and nil-checking dereferences.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
