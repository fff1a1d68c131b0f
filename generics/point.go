package generics

import "fmt"

// ── Point[X, Y] — two independent type parameters ─────────────────────────────
// X and Y are unrelated: Point[int, float64], Point[string, bool], … are all
// distinct instantiations. The fields are unexported so a Point cannot change
// after NewPoint; the accessors hand back copies, never the field itself.

type Point[X, Y any] struct {
	x X
	y Y
}

func NewPoint[X, Y any](x X, y Y) Point[X, Y] { return Point[X, Y]{x: x, y: y} }

func (p Point[X, Y]) X() X { return p.x }
func (p Point[X, Y]) Y() Y { return p.y }

func (p Point[X, Y]) String() string { return fmt.Sprintf("(%v, %v)", p.x, p.y) }
