package trimesh

import (
	"log"
	"math"
	"runtime"
	"sync"
)

// ApplyOptions controls a single stencil application.
type ApplyOptions struct {
	// HandleNaN selects the smoothing-style weighted mean over valid
	// samples. The alternative exact convolution (NaN anywhere under
	// the stencil poisons the output cell) is reserved and requesting
	// it fails with ErrExactUnsupported.
	HandleNaN bool

	// Title for the output mesh; inherited from the input when empty.
	Title string

	// Workers bounds the row-parallel fan-out; <= 0 means GOMAXPROCS.
	Workers int
}

// DefaultApplyOptions returns the standard smoothing configuration.
func DefaultApplyOptions() ApplyOptions {
	return ApplyOptions{HandleNaN: true}
}

// Apply convolves the stencil with the mesh z values and returns a new
// mesh of identical geometry holding the smoothed heights. Each output
// vertex is the weighted mean of the valid (non-NaN) samples under the
// stencil, renormalised by the weight actually gathered, so sparse
// coverage still yields a value; a vertex with no valid coverage at all
// stays NaN. The input mesh is never mutated.
func (s *Stencil) Apply(tm *TriMesh, opts ApplyOptions) (*TriMesh, error) {
	if !opts.HandleNaN {
		return nil, ErrExactUnsupported
	}

	log.Printf("applying stencil to tri mesh: %s", tm.Title)

	// The border must be even so padded row indices keep the column
	// phase of the original rows; the parity adjustment in the tap loop
	// depends on that.
	border := s.n
	if border%2 != 0 {
		border++
	}
	eni := tm.Ni + 2*border
	enj := tm.Nj + 2*border

	padded := make([]float64, enj*eni)
	for i := range padded {
		padded[i] = math.NaN()
	}
	for j := 0; j < tm.Nj; j++ {
		copy(padded[(j+border)*eni+border:(j+border)*eni+border+tm.Ni], tm.z[j*tm.Ni:(j+1)*tm.Ni])
	}

	out := make([]float64, tm.Nj*tm.Ni)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > tm.Nj {
		workers = tm.Nj
	}

	// Output rows are independent: workers share the immutable padded
	// input and write disjoint row ranges of out.
	var wg sync.WaitGroup
	chunk := (tm.Nj + workers - 1) / workers
	for w := 0; w < workers; w++ {
		j0 := w * chunk
		j1 := j0 + chunk
		if j1 > tm.Nj {
			j1 = tm.Nj
		}
		if j0 >= j1 {
			break
		}
		wg.Add(1)
		go func(j0, j1 int) {
			defer wg.Done()
			s.applyRows(padded, out, border, eni, tm.Ni, j0, j1)
		}(j0, j1)
	}
	wg.Wait()

	return tm.derive(opts.Title, out), nil
}

// applyRows computes output rows [j0, j1) in original mesh coordinates.
func (s *Stencil) applyRows(padded, out []float64, border, eni, ni, j0, j1 int) {
	for j := j0; j < j1; j++ {
		pj := j + border
		for i := 0; i < ni; i++ {
			pi := i + border
			var sum, weight float64
			for jp := 0; jp < s.n; jp++ {
				adjust := ParityAdjust(jp, pj)
				base := pi + s.startIP[jp] + adjust
				above := (pj - jp) * eni
				below := (pj + jp) * eni
				for ip, w := range s.weights[jp] {
					is := base + ip
					if v := padded[above+is]; !math.IsNaN(v) {
						weight += w
						sum += v * w
					}
					if jp > 0 {
						// Mirrored half of the hexagon; jp = 0 is its
						// own mirror and is read once only.
						if v := padded[below+is]; !math.IsNaN(v) {
							weight += w
							sum += v * w
						}
					}
				}
			}
			if weight != 0.0 {
				out[j*ni+i] = sum / weight
			} else {
				out[j*ni+i] = math.NaN()
			}
		}
	}
}
