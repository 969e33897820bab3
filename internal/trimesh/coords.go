package trimesh

import "math"

// Root3By2 is the row spacing of an equilateral triangular lattice with
// unit edge length.
var Root3By2 = math.Sqrt(3.0) / 2.0

// RowShift returns the x offset, in edge lengths, of row j relative to
// an even row. Odd rows sit half a column to the right of even rows.
func RowShift(j int) float64 {
	if j%2 != 0 {
		return 0.5
	}
	return 0.0
}

// ParityAdjust returns the extra column offset needed when a stencil row
// jp steps away from lattice row j. Rows an odd number of steps apart
// have opposite column phase, so when both jp and j are odd the tap
// columns shift one slot to the right.
func ParityAdjust(jp, j int) int {
	if jp%2 != 0 && j%2 != 0 {
		return 1
	}
	return 0
}
