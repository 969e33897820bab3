package trimesh

import (
	"log"
	"math"

	"gonum.org/v1/gonum/floats"
)

// maxReasonablePattern is the radial profile length above which stencil
// construction still succeeds but logs a size warning: cost of applying
// the stencil grows with the square of this length.
const maxReasonablePattern = 50

// Stencil is a regular hexagonal, radially symmetric weighting kernel
// for TriMesh smoothing, built from a 1-D radial weight profile.
//
// Only the lower half of the hexagon is stored (row offsets jp >= 0);
// the upper half is recovered at apply time by mirroring, since the
// kernel is symmetric about its centre row. Row jp holds rowLength[jp]
// taps starting at column offset startIP[jp] relative to the centre
// column. Tap iteration is always bounded by rowLength; there are no
// sentinel slots to skip.
//
// A Stencil is immutable once built and may be shared across concurrent
// Apply calls without locking.
type Stencil struct {
	n         int       // profile length, including the centre element
	pattern   []float64 // radial profile after any normalisation
	startIP   []int     // column offset of first tap, per row offset jp
	rowLength []int     // tap count per row offset jp
	weights   [][]float64
}

// NewStencil builds a stencil from a radial weight profile: pattern[0]
// is the centre weight and pattern[k] the weight shared by every vertex
// in hex ring k. The profile must hold at least two entries and no NaN.
func NewStencil(pattern []float64) (*Stencil, error) {
	return buildStencil(pattern, false, 0.0)
}

// NewNormalisedStencil builds a stencil whose full kernel sums to the
// given nonzero target: the profile is scaled to sum to normalise, then
// each ring weight is divided by the ring's vertex count 6k, so
// centre + sum over rings of (per-vertex weight * 6k) == normalise.
// A profile with zero raw sum cannot be scaled to a nonzero target and
// is rejected; callers must pre-offset their profile instead.
func NewNormalisedStencil(pattern []float64, normalise float64) (*Stencil, error) {
	return buildStencil(pattern, true, normalise)
}

func buildStencil(pattern []float64, normalised bool, normalise float64) (*Stencil, error) {
	if len(pattern) < 2 {
		return nil, validationErrorf("stencil pattern must contain at least two elements, got %d", len(pattern))
	}
	for k, v := range pattern {
		if math.IsNaN(v) {
			return nil, validationErrorf("stencil pattern may not contain NaN (element %d)", k)
		}
	}
	n := len(pattern)
	if n > maxReasonablePattern {
		log.Printf("warning: very large stencil pattern length: %d", n)
	}

	p := make([]float64, n)
	copy(p, pattern)

	if normalised {
		if normalise == 0.0 {
			return nil, validationErrorf("stencil normalise target must be nonzero")
		}
		t := floats.Sum(p)
		if t == 0.0 {
			return nil, validationErrorf("stencil pattern sums to zero and cannot be normalised to another value")
		}
		floats.Scale(normalise/t, p)
		for k := 1; k < n; k++ {
			p[k] /= float64(6 * k)
		}
	}

	s := &Stencil{
		n:         n,
		pattern:   p,
		startIP:   make([]int, n),
		rowLength: make([]int, n),
		weights:   make([][]float64, n),
	}

	// Centre row: the mirrored profile laid out symmetrically about the
	// centre column.
	rowLength := 2*n - 1
	row := make([]float64, rowLength)
	for k := 0; k < n; k++ {
		row[(n-1)+k] = p[k]
		row[(n-1)-k] = p[k]
	}
	s.startIP[0] = -(n - 1)
	s.rowLength[0] = rowLength
	s.weights[0] = row

	// Rows below the centre: one tap shorter each step, shifted half a
	// column every other row to track the lattice phase. The row is the
	// ring weight for jp throughout, except the outer (n-1-jp) taps at
	// each end, where the hexagon boundary crosses the outer rings and
	// the mirrored profile tail takes over.
	for jp := 1; jp < n; jp++ {
		rowLength--
		row = make([]float64, rowLength)
		for k := range row {
			row[k] = p[jp]
		}
		if jp < n-1 {
			tail := p[jp+1:]
			for k, v := range tail {
				row[rowLength-len(tail)+k] = v
				row[len(tail)-1-k] = v
			}
		}
		s.startIP[jp] = -(n - 1) + jp/2
		s.rowLength[jp] = rowLength
		s.weights[jp] = row
	}

	return s, nil
}

// N returns the radial profile length, including the centre element.
func (s *Stencil) N() int { return s.n }

// Pattern returns a copy of the radial profile, after any normalisation.
func (s *Stencil) Pattern() []float64 {
	out := make([]float64, len(s.pattern))
	copy(out, s.pattern)
	return out
}

// Row returns the column offset of the first tap and a copy of the tap
// weights for row offset jp in [0, N-1].
func (s *Stencil) Row(jp int) (startIP int, weights []float64) {
	weights = make([]float64, len(s.weights[jp]))
	copy(weights, s.weights[jp])
	return s.startIP[jp], weights
}

// ConstantPattern returns a flat radial profile of n ones, suitable for
// an unweighted local mean after normalisation.
func ConstantPattern(n int) []float64 {
	p := make([]float64, n)
	for k := range p {
		p[k] = 1.0
	}
	return p
}

// LinearPattern returns a radial profile tapering linearly from 1 at
// the centre to 1/n at the outermost ring.
func LinearPattern(n int) []float64 {
	p := make([]float64, n)
	for k := range p {
		p[k] = float64(n-k) / float64(n)
	}
	return p
}

// GaussianPattern returns a radial profile following exp(-k²/2σ²) with
// sigma expressed in rings.
func GaussianPattern(n int, sigma float64) []float64 {
	p := make([]float64, n)
	for k := range p {
		d := float64(k) / sigma
		p[k] = math.Exp(-0.5 * d * d)
	}
	return p
}
