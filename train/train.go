// Package train lays out four-wheel clock gear trains on a plane. Given the
// tooth counts of the train, the gear module, the distance between the first
// and last arbors and the angle of the first meshing pair, it places the
// four arbors so that all three meshing pairs sit exactly one center
// distance apart, and computes the rotation each wheel and pinion needs for
// its teeth to face its mate's gaps.
package train

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Counts holds the tooth counts of a four-wheel train, in power-flow order.
// The first arbor carries only a pinion and the last only a wheel.
type Counts struct {
	InputPinion  int // t1, on arbor 1
	SecondWheel  int // T2, meshes with t1
	SecondPinion int // t2, on arbor 2
	ThirdWheel   int // T3, meshes with t2
	ThirdPinion  int // t3, on arbor 3
	FourthWheel  int // T4, meshes with t3
}

func (c Counts) validate() error {
	for _, n := range []int{
		c.InputPinion, c.SecondWheel, c.SecondPinion,
		c.ThirdWheel, c.ThirdPinion, c.FourthWheel,
	} {
		if n < 3 {
			return fmt.Errorf("train: tooth counts must be at least 3, got %d", n)
		}
	}
	return nil
}

// Node is one placed arbor of the train. Angles are in degrees about +z;
// a part is present only when its Has flag is set.
type Node struct {
	Pos         r2.Vec
	WheelAngle  float64
	HasWheel    bool
	PinionAngle float64
	HasPinion   bool
}

// Layout is a solved train: four arbors with meshing orientations, plus the
// inputs that produced them. Node 1 sits at the origin and node 4 at
// (Span, 0).
type Layout struct {
	Nodes  [4]Node
	Span   float64
	Module float64
	Counts Counts
}

// ConfigError reports train inputs whose arbors cannot be placed: the
// second and third center distances cannot reach from the second arbor to
// the last one.
type ConfigError struct {
	Reach float64 // distance from arbor 2 to arbor 4
	R2    float64 // center distance of the second meshing pair
	R3    float64 // center distance of the third meshing pair
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"train: cannot close train: arbors 2 and 4 are %.4g apart, center distances are %.4g and %.4g",
		e.Reach, e.R2, e.R3)
}

// Solve places the four arbors of a train. initialAngle (degrees) is the
// direction from arbor 1 to arbor 2, span the distance from arbor 1 to
// arbor 4, module the gear module shared by the whole train. Infeasible
// geometry returns a *ConfigError.
func Solve(initialAngle, span, module float64, c Counts) (*Layout, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	if span <= 0 {
		return nil, errors.New("train: span must be positive")
	}
	if module <= 0 {
		return nil, errors.New("train: module must be positive")
	}
	// Center distances of the three meshing pairs. Two gears mesh when
	// their pitch circles touch, so centers sit one pitch-radius sum apart.
	r1 := 0.5 * module * float64(c.InputPinion+c.SecondWheel)
	r2c := 0.5 * module * float64(c.SecondPinion+c.ThirdWheel)
	r3c := 0.5 * module * float64(c.ThirdPinion+c.FourthWheel)

	a := d2r(initialAngle)
	sin, cos := math.Sincos(a)
	n1 := r2.Vec{}
	n2 := r2.Vec{X: r1 * cos, Y: r1 * sin}
	n4 := r2.Vec{X: span}

	// Arbor 3 closes the triangle n2-n3-n4 with sides r2c and r3c.
	reach := r2.Norm(r2.Sub(n4, n2))
	const tol = 1e-9
	// Coincident arbors 2 and 4 leave arbor 3 underdetermined: every
	// direction closes the triangle, or none does.
	if reach < tol || r2c+r3c < reach-tol || math.Abs(r2c-r3c) > reach+tol {
		return nil, &ConfigError{Reach: reach, R2: r2c, R3: r3c}
	}
	phi := math.Acos(clamp((reach*reach+r3c*r3c-r2c*r2c)/(2*r3c*reach), -1, 1))
	gamma := math.Atan2(n2.Y-n4.Y, n2.X-n4.X)
	// Swing arbor 3 off the arbor-4-to-arbor-2 direction, toward the
	// anchor axis, staying in arbor 2's half plane.
	theta := gamma - math.Copysign(phi, n2.Y)
	sin, cos = math.Sincos(theta)
	n3 := r2.Add(n4, r2.Vec{X: r3c * cos, Y: r3c * sin})

	l := &Layout{Span: span, Module: module, Counts: c}
	l.Nodes[0] = Node{
		Pos:         n1,
		HasPinion:   true,
		PinionAngle: meshAngle(n1, n2, c.InputPinion),
	}
	l.Nodes[1] = Node{
		Pos:         n2,
		HasWheel:    true,
		WheelAngle:  meshAngle(n2, n1, c.SecondWheel),
		HasPinion:   true,
		PinionAngle: meshAngle(n2, n3, c.SecondPinion),
	}
	l.Nodes[2] = Node{
		Pos:         n3,
		HasWheel:    true,
		WheelAngle:  meshAngle(n3, n2, c.ThirdWheel),
		HasPinion:   true,
		PinionAngle: meshAngle(n3, n4, c.ThirdPinion),
	}
	l.Nodes[3] = Node{
		Pos:        n4,
		HasWheel:   true,
		WheelAngle: meshAngle(n4, n3, c.FourthWheel),
	}
	return l, nil
}

// meshAngle returns the rotation (degrees) for a gear at from whose mate
// sits at to, turning a tooth gap onto the center line: the tooth that
// would point at the mate is backed off by half an angular pitch.
func meshAngle(from, to r2.Vec, teeth int) float64 {
	aim := r2d(math.Atan2(to.Y-from.Y, to.X-from.X))
	return aim + 90 + 180/float64(teeth)
}

func d2r(deg float64) float64 { return deg * math.Pi / 180 }
func r2d(rad float64) float64 { return rad * 180 / math.Pi }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
