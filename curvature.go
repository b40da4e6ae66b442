package gears

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// flankCenter returns the center of the arc forming the flank on the +x side
// of a tooth whose tip points up the +y axis. The arc has radius
// FlankRadius*Module and passes through both the tooth tip and the point
// where the flank crosses the pitch circle, so its center lies on the
// perpendicular bisector of that chord, offset to the -x side (the mirrored
// flank center is the x-negation).
func flankCenter(s Spec) r2.Vec {
	m := s.Module
	fr := s.FlankRadius * m
	R := s.PitchRadius()
	tip := r2.Vec{Y: R + s.Addendum*m}
	sin, cos := math.Sincos(s.thickness() / float64(s.Teeth))
	pitch := r2.Vec{X: R * sin, Y: R * cos}
	chord := r2.Sub(tip, pitch)
	half := 0.5 * r2.Norm(chord)
	if fr <= half {
		// Arc too small to bridge tip and pitch point. Collapse the
		// center onto the pitch circle, which flattens the tip but
		// keeps the profile closed. Table proportions never get here.
		return r2.Vec{Y: R}
	}
	q := math.Sqrt(fr*fr - half*half)
	mid := r2.Scale(0.5, r2.Add(tip, pitch))
	normal := r2.Unit(r2.Vec{X: -chord.Y, Y: chord.X})
	return r2.Add(mid, r2.Scale(q, normal))
}

// FlankCenters returns the arc centers of the two flanks of a tooth, mirror
// images of one another across the tooth's radial axis.
func FlankCenters(s Spec) (right, left r2.Vec) {
	right = flankCenter(s)
	left = r2.Vec{X: -right.X, Y: right.Y}
	return right, left
}

// Degenerate reports whether the flank arc radius is too short to span from
// tooth tip to pitch circle, in which case the builders fall back to a flat
// degenerate flank.
func Degenerate(s Spec) bool {
	m := s.Module
	R := s.PitchRadius()
	tip := r2.Vec{Y: R + s.Addendum*m}
	sin, cos := math.Sincos(s.thickness() / float64(s.Teeth))
	pitch := r2.Vec{X: R * sin, Y: R * cos}
	return s.FlankRadius*m <= 0.5*r2.Norm(r2.Sub(tip, pitch))
}
