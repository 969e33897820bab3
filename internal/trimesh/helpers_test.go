package trimesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func nan() float64 { return math.NaN() }

// makeTestMesh builds an nj x ni mesh with z values from f.
func makeTestMesh(t *testing.T, nj, ni int, f func(j, i int) float64) *TriMesh {
	t.Helper()
	z := make([]float64, nj*ni)
	for j := 0; j < nj; j++ {
		for i := 0; i < ni; i++ {
			z[j*ni+i] = f(j, i)
		}
	}
	tm, err := NewTriMesh(MeshParams{
		Title: "test-surface",
		TSide: 10.0,
		Nj:    nj,
		Ni:    ni,
		ZUom:  "m",
		Z:     z,
	})
	require.NoError(t, err)
	return tm
}

// meshesEqual asserts two meshes carry the same z values within tol,
// treating NaN as equal to NaN.
func meshesEqual(t *testing.T, want, got *TriMesh, tol float64) {
	t.Helper()
	require.Equal(t, want.Nj, got.Nj)
	require.Equal(t, want.Ni, got.Ni)
	for j := 0; j < want.Nj; j++ {
		for i := 0; i < want.Ni; i++ {
			wv, gv := want.ZAt(j, i), got.ZAt(j, i)
			if math.IsNaN(wv) {
				require.True(t, math.IsNaN(gv), "cell (%d,%d): want NaN, got %g", j, i, gv)
				continue
			}
			require.InDelta(t, wv, gv, tol, "cell (%d,%d)", j, i)
		}
	}
}
