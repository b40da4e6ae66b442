package gears

import (
	"fmt"
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Wheel returns the full 2D profile of a gear wheel: Teeth copies of the
// tooth at uniform angular spacing joined to the root. One tooth is centered
// on the +y axis.
func Wheel(s Spec, style RootStyle) (sdf.SDF2, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	if squareRootRadius(s) <= 0 {
		return nil, fmt.Errorf("gears: %d teeth at module %g leave no root circle", s.Teeth, s.Module)
	}
	teeth := rotateTeeth(tooth(s), s.Teeth)
	switch style {
	case RootSquare:
		return sdf.Union2D(teeth, form2.Circle(squareRootRadius(s))), nil
	case RootRounded:
		root, err := roundedRoot(s)
		if err != nil {
			return nil, err
		}
		return sdf.Union2D(teeth, root), nil
	}
	return nil, fmt.Errorf("gears: cannot build wheel with root style %q", style)
}

// WheelSolid extrudes the wheel profile to the given axial width.
func WheelSolid(s Spec, style RootStyle, width float64) (sdf.SDF3, error) {
	if width <= 0 {
		return nil, fmt.Errorf("gears: wheel width must be positive, got %g", width)
	}
	profile, err := Wheel(s, style)
	if err != nil {
		return nil, err
	}
	return sdf.Extrude3D(profile, width), nil
}

// rotateTeeth replicates a +y-centered tooth n times around the origin.
// RotateCopy2D works on a sector centered about +x, so the tooth is rotated
// into that frame and the ring rotated back.
func rotateTeeth(t sdf.SDF2, n int) sdf.SDF2 {
	ring := sdf.RotateCopy2D(sdf.Transform2D(t, sdf.Rotate2D(-math.Pi/2)), n)
	return sdf.Transform2D(ring, sdf.Rotate2D(math.Pi/2))
}

// squareRootRadius is the plain root circle: a half-pitch (pi/2 modules)
// below the pitch circle.
func squareRootRadius(s Spec) float64 {
	return s.PitchRadius() - 0.5*math.Pi*s.Module
}

// roundedRoot builds the scalloped root: the root circle grown by the fillet
// radius rho, with a disc of radius rho removed at the center of every tooth
// gap. The fillet radius makes the scallop tangent to both neighboring
// flanks.
func roundedRoot(s Spec) (sdf.SDF2, error) {
	T := float64(s.Teeth)
	q := flankCenter(s)
	r1 := r2.Norm(q)
	fr := s.FlankRadius * s.Module
	beta := math.Pi/T - math.Asin(fr/r1) + math.Asin(-q.X/r1)
	sb := math.Sin(beta)
	rho := (T - math.Pi) * s.Module * sb / (2 * (1 - sb))
	if rho <= 0 {
		return nil, fmt.Errorf("gears: root fillet collapses for %d teeth, use the square root style", s.Teeth)
	}
	rootR := squareRootRadius(s) + rho

	gap := sdf.Transform2D(form2.Circle(rho), sdf.Translate2D(r2.Vec{X: rootR}))
	gaps := sdf.RotateCopy2D(gap, s.Teeth)
	// Gap centers sit halfway between teeth, offset from the +y tooth.
	gaps = sdf.Transform2D(gaps, sdf.Rotate2D(math.Pi/2+math.Pi/T))
	return sdf.Difference2D(form2.Circle(rootR), gaps), nil
}
