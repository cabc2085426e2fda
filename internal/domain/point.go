package domain

import "math"

// Immutable planar coordinate pair.
type Point struct {
	X float64
	Y float64
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Distance is the nil-checked form of DistanceTo for callers holding
// optional locations.
func Distance(a, b *Point) (float64, error) {
	if a == nil || b == nil {
		return 0, ErrInvalidPoint
	}
	return a.DistanceTo(*b), nil
}
