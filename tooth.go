package gears

import (
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Tooth returns the closed 2D profile of a single tooth, tip up along the
// +y axis, root at the origin. The profile runs from wheel center to tip so
// that unioning with a root circle closes the wheel.
func Tooth(s Spec) (sdf.SDF2, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	return tooth(s), nil
}

func tooth(s Spec) sdf.SDF2 {
	fr := s.FlankRadius * s.Module
	q, qm := FlankCenters(s)

	// Ogive tip: the lens where the two flank discs overlap. Each disc
	// boundary passes through the tip and the opposite pitch point, so the
	// lens carries the full arc thickness at the pitch circle.
	cap := sdf.Intersect2D(
		sdf.Transform2D(form2.Circle(fr), sdf.Translate2D(q)),
		sdf.Transform2D(form2.Circle(fr), sdf.Translate2D(qm)),
	)

	// Below the flank arcs the tooth continues radially. The wedge apex
	// sits at the wheel center and its sides are tangent to the flank
	// discs, meeting them at radius rad from the center.
	d := r2.Norm(q)
	phi := math.Atan(-q.X / q.Y)
	psi := math.Asin(fr/d) - phi
	rad := math.Sqrt(d*d - fr*fr)
	sin, cos := math.Sincos(psi)
	wedge := form2.Polygon([]r2.Vec{
		{},
		{X: rad * sin, Y: rad * cos},
		{X: -rad * sin, Y: rad * cos},
	})
	return sdf.Union2D(cap, wedge)
}
