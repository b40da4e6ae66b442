// Package bs978 provides the tooth proportions of BS 978 Part 2, the
// British Standard for horological gearing. The standard tabulates
// dimensionless factors (addendum, flank radius, tooth thickness) that scale
// with the gear module; this package exposes them as pure selector
// functions over package-level tables.
//
// Wheels that always drive take their factors from a table indexed by the
// mating pinion's leaf count and the gear ratio. Driven pinions use one of
// three fixed proportion families. Pinions that are sometimes driven and
// sometimes driving (motion work) have their own table.
package bs978

import (
	"fmt"
	"math"

	"github.com/watchmakers/gears"
)

// Proportions are the dimensionless tooth factors of one table entry,
// applied to a gear module to produce a gears.Spec.
type Proportions struct {
	// Addendum factor f.
	Addendum float64
	// FlankRadius factor fr.
	FlankRadius float64
	// Thickness is the tooth arc thickness factor w.
	Thickness float64
}

// Spec applies the proportions to a tooth count and module.
func (p Proportions) Spec(teeth int, module float64) gears.Spec {
	return gears.Spec{
		Teeth:       teeth,
		Module:      module,
		Addendum:    p.Addendum,
		FlankRadius: p.FlankRadius,
		Thickness:   p.Thickness,
	}
}

// Family selects a driven pinion proportion family. The standard's family A
// has the tallest leaves, C the stubbiest.
type Family int

const (
	// FamilyAuto picks a family from the leaf count: C up to 7 leaves,
	// B for 8 or 9, A from 10 up.
	FamilyAuto Family = iota
	FamilyA
	FamilyB
	FamilyC
)

func (f Family) String() string {
	switch f {
	case FamilyAuto:
		return "auto"
	case FamilyA:
		return "A"
	case FamilyB:
		return "B"
	case FamilyC:
		return "C"
	}
	return "unknown"
}

// ParseFamily parses "A", "B" or "C". The empty string selects FamilyAuto.
func ParseFamily(s string) (Family, error) {
	switch s {
	case "":
		return FamilyAuto, nil
	case "A":
		return FamilyA, nil
	case "B":
		return FamilyB, nil
	case "C":
		return FamilyC, nil
	}
	return 0, fmt.Errorf("bs978: unknown pinion family %q", s)
}

// DrivingWheel returns the proportions for a wheel of wheelTeeth teeth
// driving a pinion of pinionLeaves leaves. The standard tabulates columns
// only for certain leaf counts; other counts use the nearest tabulated
// column (11 reads the 10-leaf column, 13 the 12-leaf, 15 the 14-leaf,
// more than 16 the 16-leaf). Within a column the factors are interpolated
// linearly over the gear ratio and held flat beyond the tabulated range.
func DrivingWheel(wheelTeeth, pinionLeaves int) Proportions {
	if pinionLeaves < 1 {
		pinionLeaves = 1
	}
	col := drivingWheelColumn(pinionLeaves)
	ratio := float64(wheelTeeth) / float64(pinionLeaves)
	f, fr := col.lookup(ratio)
	return Proportions{Addendum: f, FlankRadius: fr, Thickness: math.Pi / 2}
}

// DrivenPinion returns the proportions for a pinion that is always driven.
// FamilyAuto selects the family customary for the leaf count.
func DrivenPinion(leaves int, fam Family) (Proportions, error) {
	if fam == FamilyAuto {
		switch {
		case leaves <= 7:
			fam = FamilyC
		case leaves <= 9:
			fam = FamilyB
		default:
			fam = FamilyA
		}
	}
	profiles, ok := pinionFamilies[fam]
	if !ok {
		return Proportions{}, fmt.Errorf("bs978: invalid pinion family %v", fam)
	}
	if leaves <= 10 {
		return profiles[0], nil
	}
	return profiles[1], nil
}

// SometimesDriven returns the proportions for motion-work pinions that both
// drive and are driven, interpolated over the leaf count.
func SometimesDriven(leaves int) Proportions {
	f, fr := sometimesDrivenTable.lookup(float64(leaves))
	return Proportions{Addendum: f, FlankRadius: fr, Thickness: 1.41}
}
