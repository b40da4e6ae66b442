// Package gears builds cycloidal (ogive form) clock gear wheels and pinions
// as signed distance functions on top of github.com/soypat/sdf.
//
// Tooth flanks are single circular arcs in the gothic-arch approximation of
// BS 978 Part 2, sized by dimensionless factors applied to the gear module.
// The package produces 2D wheel profiles and extruded 3D solids; rendering
// to STL is the caller's concern (see the render package of the engine).
package gears

import (
	"errors"
	"fmt"
	"math"
)

// Spec describes one gear wheel or pinion. All linear dimensions derive from
// Module; the remaining fields are the dimensionless proportions of the
// standard tables (see package bs978).
type Spec struct {
	// Teeth is the tooth (or leaf) count. Must be 3 or more.
	Teeth int
	// Module is the pitch diameter divided by the tooth count.
	Module float64
	// Addendum factor. The tooth tip lies Addendum*Module beyond the
	// pitch circle.
	Addendum float64
	// FlankRadius factor. Each flank is a circular arc of radius
	// FlankRadius*Module.
	FlankRadius float64
	// Thickness is the tooth arc thickness factor: the tooth spans
	// Thickness*Module of circumference at the pitch circle. Zero selects
	// pi/2, the standard half-pitch tooth.
	Thickness float64
}

func (s Spec) validate() error {
	switch {
	case s.Teeth < 3:
		return fmt.Errorf("gears: need at least 3 teeth, got %d", s.Teeth)
	case s.Module <= 0:
		return errors.New("gears: module must be positive")
	case s.Addendum <= 0:
		return errors.New("gears: addendum factor must be positive")
	case s.FlankRadius <= 0:
		return errors.New("gears: flank radius factor must be positive")
	case s.Thickness < 0 || s.Thickness >= math.Pi:
		return errors.New("gears: thickness factor out of range")
	}
	return nil
}

// thickness returns the tooth arc thickness factor with the default applied.
func (s Spec) thickness() float64 {
	if s.Thickness == 0 {
		return math.Pi / 2
	}
	return s.Thickness
}

// PitchDiameter returns teeth times module, the diameter of the pitch
// circle on which two mating gears roll.
func PitchDiameter(teeth int, module float64) float64 {
	return float64(teeth) * module
}

// PitchDiameter returns the pitch circle diameter of the spec.
func (s Spec) PitchDiameter() float64 { return PitchDiameter(s.Teeth, s.Module) }

// PitchRadius returns half the pitch diameter.
func (s Spec) PitchRadius() float64 { return 0.5 * s.PitchDiameter() }

// RootStyle selects the shape of the wheel between the teeth.
type RootStyle int

const (
	_ RootStyle = iota
	// RootSquare leaves a plain root circle between the teeth.
	RootSquare
	// RootRounded scallops the root with a fillet arc in each tooth gap.
	RootRounded
)

func (r RootStyle) String() string {
	switch r {
	case RootSquare:
		return "square"
	case RootRounded:
		return "rounded"
	}
	return "unknown"
}

// ParseRootStyle parses "square" or "rounded".
func ParseRootStyle(s string) (RootStyle, error) {
	switch s {
	case "square":
		return RootSquare, nil
	case "rounded":
		return RootRounded, nil
	}
	return 0, fmt.Errorf("gears: unknown root style %q", s)
}

// Config carries rendering and preview options through builders that emit
// solids. The zero value is usable.
type Config struct {
	// MeshCells is the octree renderer resolution along the longest axis.
	// Zero selects a sensible default.
	MeshCells int
	// PitchCirclesOnly replaces toothed solids with plain pitch-diameter
	// disks, for fast train layout previews.
	PitchCirclesOnly bool
}

// Cells returns the mesh cell count with the default applied.
func (c Config) Cells() int {
	if c.MeshCells <= 0 {
		return 200
	}
	return c.MeshCells
}
