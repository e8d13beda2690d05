package gamemath

import (
	stdmath "math"

	"github.com/yohamta/donburi/features/math"
)

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Overlaps reports whether the two rectangles share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b math.Vec2) float64 {
	return stdmath.Hypot(a.X-b.X, a.Y-b.Y)
}

// WithinRadius reports whether b lies inside or on the circle of radius r
// centred on a. Squared distances keep the boundary case exact.
func WithinRadius(a, b math.Vec2, r float64) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx+dy*dy <= r*r
}

func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
