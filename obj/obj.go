// Package obj decorates gear solids and assembles solved train layouts.
// Wheels come in from package gears as extruded solids; this package cuts
// the traditional clockmaking features (crossing out, arbor bores) and
// places parts at the arbor positions computed by package train.
package obj

import (
	"errors"
	"fmt"
	"math"

	"github.com/soypat/sdf"
	form2 "github.com/soypat/sdf/form2/must2"
	form3 "github.com/soypat/sdf/form3/must3"
	"github.com/watchmakers/gears"
	"github.com/watchmakers/gears/train"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Crossing describes crossing out a wheel: the annulus between hub and rim
// is removed except for the spokes left standing.
type Crossing struct {
	// Spokes left standing. Two or more.
	Spokes int
	// RimDiameter is the outer limit of the cut, inside the toothed rim.
	RimDiameter float64
	// HubDiameter is the solid hub left around the arbor.
	HubDiameter float64
	// SpokeWidth is the flat width of each spoke.
	SpokeWidth float64
}

func (c Crossing) validate() error {
	switch {
	case c.Spokes < 2:
		return fmt.Errorf("obj: need at least 2 spokes, got %d", c.Spokes)
	case c.HubDiameter <= 0:
		return errors.New("obj: hub diameter must be positive")
	case c.RimDiameter <= c.HubDiameter:
		return errors.New("obj: rim diameter must exceed hub diameter")
	case c.SpokeWidth <= 0:
		return errors.New("obj: spoke width must be positive")
	}
	return nil
}

// CrossOut removes the web of a wheel solid, leaving hub, spokes and the
// toothed rim. The wheel is assumed centered at the origin in the xy plane.
func CrossOut(s sdf.SDF3, c Crossing) (sdf.SDF3, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	ring := sdf.Difference2D(
		form2.Circle(0.5*c.RimDiameter),
		form2.Circle(0.5*c.HubDiameter),
	)
	// One spoke as a half bar from the center out, copied around. Bars
	// merge at the hub, which the ring's inner circle masks off anyway.
	bar := sdf.Transform2D(
		form2.Box(r2.Vec{X: 0.5 * c.RimDiameter, Y: c.SpokeWidth}, 0),
		sdf.Translate2D(r2.Vec{X: 0.25 * c.RimDiameter}),
	)
	openings := sdf.Difference2D(ring, sdf.RotateCopy2D(bar, c.Spokes))
	cutter := sdf.Extrude3D(openings, 2*thickness(s))
	return sdf.Difference3D(s, cutter), nil
}

// Bore drills the arbor hole through the center of a solid.
func Bore(s sdf.SDF3, diameter float64) (sdf.SDF3, error) {
	if diameter <= 0 {
		return nil, fmt.Errorf("obj: bore diameter must be positive, got %g", diameter)
	}
	drill := form3.Cylinder(2*thickness(s), 0.5*diameter, 0)
	return sdf.Difference3D(s, drill), nil
}

func thickness(s sdf.SDF3) float64 {
	bb := s.Bounds()
	return bb.Max.Z - bb.Min.Z
}

// Parts are the solids carried by one arbor: either may be nil when the
// arbor has no such part or the caller wants it skipped.
type Parts struct {
	Wheel  sdf.SDF3
	Pinion sdf.SDF3
}

// Assemble places part solids at the arbor positions and meshing angles of
// a solved layout. Parts index 0 belongs to arbor 1.
func Assemble(l *train.Layout, parts [4]Parts) (sdf.SDF3, error) {
	var placed []sdf.SDF3
	for i, node := range l.Nodes {
		if node.HasWheel && parts[i].Wheel != nil {
			placed = append(placed, place(parts[i].Wheel, node.Pos, node.WheelAngle))
		}
		if node.HasPinion && parts[i].Pinion != nil {
			placed = append(placed, place(parts[i].Pinion, node.Pos, node.PinionAngle))
		}
	}
	if len(placed) == 0 {
		return nil, errors.New("obj: no parts to assemble")
	}
	return sdf.Union3D(placed...), nil
}

// PitchPreview builds the layout as plain pitch-diameter disks, the quick
// way to eyeball a train before committing to toothed solids.
func PitchPreview(l *train.Layout, width float64) (sdf.SDF3, error) {
	if width <= 0 {
		return nil, fmt.Errorf("obj: preview width must be positive, got %g", width)
	}
	c := l.Counts
	teeth := [4]struct{ wheel, pinion int }{
		{0, c.InputPinion},
		{c.SecondWheel, c.SecondPinion},
		{c.ThirdWheel, c.ThirdPinion},
		{c.FourthWheel, 0},
	}
	var disks []sdf.SDF3
	for i, node := range l.Nodes {
		if node.HasWheel {
			r := 0.5 * gears.PitchDiameter(teeth[i].wheel, l.Module)
			disks = append(disks, place(form3.Cylinder(width, r, 0), node.Pos, 0))
		}
		if node.HasPinion {
			r := 0.5 * gears.PitchDiameter(teeth[i].pinion, l.Module)
			disks = append(disks, place(form3.Cylinder(width, r, 0), node.Pos, 0))
		}
	}
	return sdf.Union3D(disks...), nil
}

// Scene builds the renderable train: toothed parts, or pitch-circle disks
// when the config asks for a preview.
func Scene(l *train.Layout, parts [4]Parts, width float64, cfg gears.Config) (sdf.SDF3, error) {
	if cfg.PitchCirclesOnly {
		return PitchPreview(l, width)
	}
	return Assemble(l, parts)
}

// place moves a part to pos, spun about +z by angle degrees.
func place(s sdf.SDF3, pos r2.Vec, angle float64) sdf.SDF3 {
	m := sdf.Translate3D(r3.Vec{X: pos.X, Y: pos.Y}).Mul(sdf.RotateZ(angle * (math.Pi / 180)))
	return sdf.Transform3D(s, m)
}
