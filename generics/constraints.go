// Package generics holds the type-parameterised pieces of the traits demo:
// a two-field Point[X, Y] and the Largest family of max-by-order functions.
//
// Run the demo from the module root:
//
//	go run .
package generics

// ── Ordered — union constraint ────────────────────────────────────────────────
// The | operator creates a union: T must be one of the listed types.
// Every member supports < > <= >=, which is all Largest needs.
//
// The ~ prefix lets defined types through as well, e.g. `type Score int`.
//
// Floats make this a partial order: NaN is neither greater nor smaller than
// anything, so a > comparison involving NaN is always false.

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}
