package generics

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there is no element to pick a maximum from.
// Callers check it with errors.Is.
var ErrEmptyInput = errors.New("empty input")

// ── Largest[T Ordered] ────────────────────────────────────────────────────────
// Linear scan keeping the running maximum. Only a strictly greater element
// replaces it, so ties keep the earliest one and incomparable values (NaN)
// never win unless they come first.
//
// The result points into items: no copy is made, and writes through the
// pointer are visible in the caller's slice.

// Largest returns a pointer to the largest element of items.
func Largest[T Ordered](items []T) (*T, error) {
	return LargestFunc(items, func(a, b T) bool { return a > b })
}

// ── LargestFunc — caller-supplied order ───────────────────────────────────────
// For element types outside Ordered (structs, versions, …). greater(a, b)
// must report whether a is strictly greater than b; returning false for
// incomparable pairs gives partial-order semantics for free.

// LargestFunc is Largest with the > relation supplied by the caller.
func LargestFunc[T any](items []T, greater func(a, b T) bool) (*T, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("largest: %w", ErrEmptyInput)
	}

	largest := &items[0]
	for i := range items[1:] {
		if item := &items[i+1]; greater(*item, *largest) {
			largest = item
		}
	}
	return largest, nil
}
