package bs978

import "sort"

// table holds one tabulated column of the standard: factor pairs over an
// increasing abscissa (gear ratio or leaf count). Lookups interpolate
// linearly between breakpoints and hold the end values flat outside the
// tabulated range.
type table struct {
	x  []float64
	f  []float64 // addendum factor
	fr []float64 // flank radius factor
}

func (t *table) lookup(x float64) (f, fr float64) {
	n := len(t.x)
	switch {
	case x <= t.x[0]:
		return t.f[0], t.fr[0]
	case x >= t.x[n-1]:
		return t.f[n-1], t.fr[n-1]
	}
	i := sort.SearchFloat64s(t.x, x)
	if t.x[i] == x {
		return t.f[i], t.fr[i]
	}
	k := (x - t.x[i-1]) / (t.x[i] - t.x[i-1])
	f = t.f[i-1] + k*(t.f[i]-t.f[i-1])
	fr = t.fr[i-1] + k*(t.fr[i]-t.fr[i-1])
	return f, fr
}

// drivingWheelRatios are the gear ratio breakpoints shared by every
// driving-wheel column.
var drivingWheelRatios = []float64{2, 3, 4, 5, 6, 8, 10, 12}

// drivingWheelColumns maps tabulated pinion leaf counts to their column.
var drivingWheelColumns = map[int]*table{
	6: {
		x:  drivingWheelRatios,
		f:  []float64{1.480, 1.500, 1.520, 1.540, 1.557, 1.585, 1.605, 1.620},
		fr: []float64{2.180, 2.205, 2.230, 2.255, 2.276, 2.310, 2.335, 2.352},
	},
	7: {
		x:  drivingWheelRatios,
		f:  []float64{1.490, 1.511, 1.532, 1.553, 1.570, 1.598, 1.618, 1.633},
		fr: []float64{2.195, 2.221, 2.247, 2.273, 2.294, 2.328, 2.353, 2.370},
	},
	8: {
		x:  drivingWheelRatios,
		f:  []float64{1.500, 1.522, 1.544, 1.566, 1.583, 1.611, 1.631, 1.646},
		fr: []float64{2.210, 2.237, 2.264, 2.291, 2.312, 2.346, 2.371, 2.388},
	},
	9: {
		x:  drivingWheelRatios,
		f:  []float64{1.508, 1.530, 1.552, 1.574, 1.592, 1.620, 1.640, 1.655},
		fr: []float64{2.222, 2.249, 2.276, 2.303, 2.325, 2.359, 2.384, 2.401},
	},
	10: {
		x:  drivingWheelRatios,
		f:  []float64{1.470, 1.500, 1.530, 1.560, 1.584, 1.622, 1.648, 1.664},
		fr: []float64{2.178, 2.218, 2.258, 2.298, 2.330, 2.380, 2.414, 2.434},
	},
	12: {
		x:  drivingWheelRatios,
		f:  []float64{1.482, 1.513, 1.544, 1.575, 1.600, 1.639, 1.666, 1.682},
		fr: []float64{2.195, 2.236, 2.277, 2.318, 2.351, 2.402, 2.437, 2.458},
	},
	14: {
		x:  drivingWheelRatios,
		f:  []float64{1.493, 1.525, 1.557, 1.589, 1.615, 1.655, 1.683, 1.699},
		fr: []float64{2.211, 2.253, 2.295, 2.337, 2.371, 2.423, 2.459, 2.480},
	},
	16: {
		x:  drivingWheelRatios,
		f:  []float64{1.503, 1.536, 1.569, 1.602, 1.629, 1.670, 1.698, 1.715},
		fr: []float64{2.226, 2.269, 2.312, 2.355, 2.390, 2.443, 2.479, 2.501},
	},
}

// drivingWheelColumn clamps a leaf count to the nearest tabulated column.
// Odd counts between columns read downward (11 reads the 10-leaf column),
// matching the standard's published sheets.
func drivingWheelColumn(leaves int) *table {
	switch {
	case leaves < 6:
		leaves = 6
	case leaves == 11:
		leaves = 10
	case leaves == 13:
		leaves = 12
	case leaves == 15:
		leaves = 14
	case leaves > 16:
		leaves = 16
	}
	return drivingWheelColumns[leaves]
}

// pinionFamilies holds the driven pinion proportion triples: index 0 for
// 10 leaves or fewer, index 1 for more than 10.
var pinionFamilies = map[Family][2]Proportions{
	FamilyA: {
		{Addendum: 0.855, FlankRadius: 1.050, Thickness: 1.05},
		{Addendum: 0.805, FlankRadius: 0.900, Thickness: 1.25},
	},
	FamilyB: {
		{Addendum: 0.670, FlankRadius: 0.700, Thickness: 1.05},
		{Addendum: 0.625, FlankRadius: 0.650, Thickness: 1.25},
	},
	FamilyC: {
		{Addendum: 0.525, FlankRadius: 0.525, Thickness: 1.05},
		{Addendum: 0.500, FlankRadius: 0.500, Thickness: 1.25},
	},
}

// sometimesDrivenTable covers motion-work pinions, indexed by leaf count.
var sometimesDrivenTable = table{
	x:  []float64{6, 7, 8, 9, 10, 12, 14, 16, 20, 24},
	f:  []float64{0.960, 0.940, 0.920, 0.900, 0.885, 0.860, 0.840, 0.825, 0.805, 0.790},
	fr: []float64{1.580, 1.545, 1.510, 1.480, 1.455, 1.415, 1.385, 1.360, 1.330, 1.310},
}
