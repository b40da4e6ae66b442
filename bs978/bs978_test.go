package bs978

import (
	"math"
	"testing"
)

func TestDrivingWheelBreakpoints(t *testing.T) {
	// Exact table entries must come back untouched.
	for _, test := range []struct {
		teeth, leaves int
		f, fr         float64
	}{
		{teeth: 40, leaves: 10, f: 1.530, fr: 2.258}, // ratio 4
		{teeth: 50, leaves: 10, f: 1.560, fr: 2.298}, // ratio 5
		{teeth: 12, leaves: 6, f: 1.480, fr: 2.180},  // ratio 2, first row
		{teeth: 72, leaves: 6, f: 1.620, fr: 2.352},  // ratio 12, last row
	} {
		p := DrivingWheel(test.teeth, test.leaves)
		if p.Addendum != test.f || p.FlankRadius != test.fr {
			t.Errorf("DrivingWheel(%d, %d) = (%g, %g), want (%g, %g)",
				test.teeth, test.leaves, p.Addendum, p.FlankRadius, test.f, test.fr)
		}
		if p.Thickness != math.Pi/2 {
			t.Errorf("DrivingWheel(%d, %d) thickness = %g, want pi/2",
				test.teeth, test.leaves, p.Thickness)
		}
	}
}

func TestDrivingWheelInterpolation(t *testing.T) {
	// Ratio 48/10 = 4.8 sits 80% of the way from the ratio-4 row to the
	// ratio-5 row of the 10-leaf column.
	p := DrivingWheel(48, 10)
	const tol = 1e-12
	if math.Abs(p.Addendum-1.554) > tol {
		t.Errorf("addendum = %.15g, want 1.554", p.Addendum)
	}
	if math.Abs(p.FlankRadius-2.290) > tol {
		t.Errorf("flank radius = %.15g, want 2.290", p.FlankRadius)
	}
}

func TestDrivingWheelFlatExtrapolation(t *testing.T) {
	first := DrivingWheel(12, 8) // ratio 1.5, below the table
	if want := DrivingWheel(16, 8); first != want {
		t.Errorf("below-range lookup = %+v, want first row %+v", first, want)
	}
	last := DrivingWheel(200, 8) // ratio 25, above the table
	if want := DrivingWheel(96, 8); last != want {
		t.Errorf("above-range lookup = %+v, want last row %+v", last, want)
	}
}

// Leaf counts without a column of their own read the nearest tabulated
// column; the ratio still uses the true leaf count.
func TestDrivingWheelColumnClamping(t *testing.T) {
	for _, test := range []struct {
		leaves, column int
	}{
		{leaves: 11, column: 10},
		{leaves: 13, column: 12},
		{leaves: 15, column: 14},
		{leaves: 20, column: 16},
		{leaves: 4, column: 6},
	} {
		got := DrivingWheel(6*test.leaves, test.leaves)
		want := DrivingWheel(6*test.column, test.column) // same ratio 6
		if got != want {
			t.Errorf("%d leaves = %+v, want %d-leaf column values %+v",
				test.leaves, got, test.column, want)
		}
	}
}

func TestDrivenPinionFamilies(t *testing.T) {
	for _, test := range []struct {
		leaves int
		fam    Family
		want   Proportions
	}{
		{leaves: 8, fam: FamilyA, want: Proportions{0.855, 1.050, 1.05}},
		{leaves: 12, fam: FamilyA, want: Proportions{0.805, 0.900, 1.25}},
		{leaves: 10, fam: FamilyB, want: Proportions{0.670, 0.700, 1.05}},
		{leaves: 11, fam: FamilyB, want: Proportions{0.625, 0.650, 1.25}},
		{leaves: 6, fam: FamilyC, want: Proportions{0.525, 0.525, 1.05}},
		{leaves: 16, fam: FamilyC, want: Proportions{0.500, 0.500, 1.25}},
		// Auto family thresholds.
		{leaves: 6, fam: FamilyAuto, want: Proportions{0.525, 0.525, 1.05}},
		{leaves: 7, fam: FamilyAuto, want: Proportions{0.525, 0.525, 1.05}},
		{leaves: 8, fam: FamilyAuto, want: Proportions{0.670, 0.700, 1.05}},
		{leaves: 9, fam: FamilyAuto, want: Proportions{0.670, 0.700, 1.05}},
		{leaves: 10, fam: FamilyAuto, want: Proportions{0.855, 1.050, 1.05}},
		{leaves: 12, fam: FamilyAuto, want: Proportions{0.805, 0.900, 1.25}},
	} {
		got, err := DrivenPinion(test.leaves, test.fam)
		if err != nil {
			t.Fatalf("DrivenPinion(%d, %v): %v", test.leaves, test.fam, err)
		}
		if got != test.want {
			t.Errorf("DrivenPinion(%d, %v) = %+v, want %+v", test.leaves, test.fam, got, test.want)
		}
	}
}

func TestDrivenPinionInvalidFamily(t *testing.T) {
	if _, err := DrivenPinion(8, Family(42)); err == nil {
		t.Fatal("expected error for invalid family")
	}
}

func TestSometimesDriven(t *testing.T) {
	p := SometimesDriven(10)
	if p.Addendum != 0.885 || p.FlankRadius != 1.455 {
		t.Errorf("SometimesDriven(10) = %+v, want (0.885, 1.455)", p)
	}
	if p.Thickness != 1.41 {
		t.Errorf("thickness = %g, want 1.41", p.Thickness)
	}
	// Between the 10 and 12 leaf rows.
	p = SometimesDriven(11)
	const tol = 1e-12
	if math.Abs(p.Addendum-0.8725) > tol || math.Abs(p.FlankRadius-1.435) > tol {
		t.Errorf("SometimesDriven(11) = %+v, want (0.8725, 1.435)", p)
	}
}

func TestParseFamily(t *testing.T) {
	for _, test := range []struct {
		in      string
		want    Family
		wantErr bool
	}{
		{in: "", want: FamilyAuto},
		{in: "A", want: FamilyA},
		{in: "B", want: FamilyB},
		{in: "C", want: FamilyC},
		{in: "a", wantErr: true},
		{in: "D", wantErr: true},
	} {
		got, err := ParseFamily(test.in)
		if test.wantErr {
			if err == nil {
				t.Errorf("ParseFamily(%q) expected error", test.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseFamily(%q): %v", test.in, err)
		}
		if got != test.want {
			t.Errorf("ParseFamily(%q) = %v, want %v", test.in, got, test.want)
		}
	}
}

func TestProportionsSpec(t *testing.T) {
	p := Proportions{Addendum: 1.554, FlankRadius: 2.290, Thickness: math.Pi / 2}
	spec := p.Spec(48, 0.5)
	if spec.Teeth != 48 || spec.Module != 0.5 {
		t.Errorf("Spec carries wrong counts: %+v", spec)
	}
	if spec.Addendum != p.Addendum || spec.FlankRadius != p.FlankRadius || spec.Thickness != p.Thickness {
		t.Errorf("Spec drops proportions: %+v", spec)
	}
	if spec.PitchDiameter() != 24 {
		t.Errorf("pitch diameter = %g, want 24", spec.PitchDiameter())
	}
}
