// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Listing columns such as website or seeking_description are nullable and map to
pointer fields; these helpers keep call sites free of temporary variables.
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

// NonEmpty returns nil for an empty string and a pointer to s otherwise.
// Optional form fields are stored as NULL rather than "".
func NonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return To(s)
}
