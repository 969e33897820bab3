package trimesh

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTriMesh_Validation(t *testing.T) {
	t.Parallel()

	valid := func() MeshParams {
		return MeshParams{Title: "t", TSide: 5.0, Nj: 3, Ni: 4, ZUom: "m"}
	}

	tests := []struct {
		name   string
		mutate func(*MeshParams)
		wantOK bool
	}{
		{"valid", func(p *MeshParams) {}, true},
		{"unitless ok", func(p *MeshParams) { p.ZUom = "" }, true},
		{"one row", func(p *MeshParams) { p.Nj = 1 }, false},
		{"one column", func(p *MeshParams) { p.Ni = 1 }, false},
		{"zero edge", func(p *MeshParams) { p.TSide = 0 }, false},
		{"negative edge", func(p *MeshParams) { p.TSide = -2 }, false},
		{"bad unit", func(p *MeshParams) { p.ZUom = "cubit" }, false},
		{"short z", func(p *MeshParams) { p.Z = make([]float64, 5) }, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid()
			tt.mutate(&p)
			tm, err := NewTriMesh(p)
			if tt.wantOK {
				require.NoError(t, err)
				require.NotNil(t, tm)
				assert.NotEqual(t, uuid.Nil, tm.UUID)
			} else {
				require.Error(t, err)
				assert.Nil(t, tm)
				var verr *ValidationError
				assert.ErrorAs(t, err, &verr)
			}
		})
	}
}

func TestNewTriMesh_NilZStartsMissing(t *testing.T) {
	t.Parallel()

	tm, err := NewTriMesh(MeshParams{TSide: 1.0, Nj: 2, Ni: 3})
	require.NoError(t, err)
	for j := 0; j < tm.Nj; j++ {
		for i := 0; i < tm.Ni; i++ {
			assert.True(t, tm.IsNaNAt(j, i), "cell (%d,%d)", j, i)
		}
	}

	tm.SetZ(1, 2, 4.5)
	assert.False(t, tm.IsNaNAt(1, 2))
	assert.Equal(t, 4.5, tm.ZAt(1, 2))
}

func TestNewTriMesh_ZCopiedNotRetained(t *testing.T) {
	t.Parallel()

	z := []float64{1, 2, 3, 4, 5, 6}
	tm, err := NewTriMesh(MeshParams{TSide: 1.0, Nj: 2, Ni: 3, Z: z})
	require.NoError(t, err)

	z[0] = 99
	assert.Equal(t, 1.0, tm.ZAt(0, 0))

	full := tm.FullArray()
	full[1] = 99
	assert.Equal(t, 2.0, tm.ZAt(0, 1))
}

func TestNewTriMesh_SuppliedUUIDKept(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	tm, err := NewTriMesh(MeshParams{UUID: id, TSide: 1.0, Nj: 2, Ni: 2})
	require.NoError(t, err)
	assert.Equal(t, id, tm.UUID)
}

func TestTriMesh_PointAt(t *testing.T) {
	t.Parallel()

	tm, err := NewTriMesh(MeshParams{
		TSide:  2.0,
		Nj:     4,
		Ni:     4,
		Origin: [3]float64{10.0, 20.0, 5.0},
		Z:      make([]float64, 16),
	})
	require.NoError(t, err)
	tm.SetZ(1, 1, 3.0)

	x, y, z := tm.PointAt(0, 0)
	assert.InDelta(t, 10.0, x, 1e-12)
	assert.InDelta(t, 20.0, y, 1e-12)
	assert.InDelta(t, 5.0, z, 1e-12)

	// Odd row: shifted half a column in x, root(3)/2 edge lengths up.
	x, y, z = tm.PointAt(1, 1)
	assert.InDelta(t, 10.0+2.0*1.5, x, 1e-12)
	assert.InDelta(t, 20.0+2.0*math.Sqrt(3.0)/2.0, y, 1e-12)
	assert.InDelta(t, 8.0, z, 1e-12)

	// Even row two: no shift again.
	x, _, _ = tm.PointAt(2, 1)
	assert.InDelta(t, 12.0, x, 1e-12)
}
