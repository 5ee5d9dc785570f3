package connectivity

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceDRC/pkg/circuit"
)

// pointSegmentDistance returns the perpendicular distance from p to the
// segment a-b, clamped to the nearest endpoint when the projection falls
// outside the segment.
func pointSegmentDistance(p, a, b circuit.Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		// Degenerate zero-length segment
		return p.DistanceTo(a)
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	closest := circuit.Position{X: a.X + t*dx, Y: a.Y + t*dy}
	return p.DistanceTo(closest)
}

// rotateOffset rotates an (x, y) offset by the given angle in degrees
func rotateOffset(x, y, degrees float64) (float64, float64) {
	if degrees == 0 {
		return x, y
	}
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	return x*cos - y*sin, x*sin + y*cos
}
