// Package engine implements the truck floor packing engine: free-space
// bookkeeping, bottom-left placement, multi-strategy selection, second-layer
// stacking and result aggregation. It is a pure computation with no state
// shared between calls.
package engine

import (
	"fmt"
	"math"
)

// eps is the tolerance used for every floating point comparison on lengths.
const eps = 1e-6

// Rect is an axis-aligned rectangle on the truck floor. X runs across the
// truck width, Y runs along the truck length.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Top returns the Y coordinate of the far edge.
func (r Rect) Top() float64 {
	return r.Y + r.H
}

// Area returns W * H.
func (r Rect) Area() float64 {
	return r.W * r.H
}

// Degenerate reports whether either side is empty within tolerance.
func (r Rect) Degenerate() bool {
	return r.W <= eps || r.H <= eps
}

// Fits reports whether a w x h box fits inside the rectangle.
func (r Rect) Fits(w, h float64) bool {
	return r.W+eps >= w && r.H+eps >= h
}

// Contains reports whether o lies completely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X-eps &&
		o.Y >= r.Y-eps &&
		o.Right() <= r.Right()+eps &&
		o.Top() <= r.Top()+eps
}

// Intersects reports whether the interiors of r and o overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right()-eps &&
		o.X < r.Right()-eps &&
		r.Y < o.Top()-eps &&
		o.Y < r.Top()-eps
}

// String returns a compact representation used in error messages.
func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.W, r.H)
}

// validLength reports whether v is a usable positive, finite length.
func validLength(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
