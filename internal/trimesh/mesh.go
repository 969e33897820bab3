package trimesh

import (
	"math"

	"github.com/google/uuid"

	"github.com/geomesh/trimesh/internal/units"
)

// TriMesh is a height field over an equilateral triangular lattice.
// Vertices are addressed by (row j, column i); odd rows are shifted half
// a column in x relative to even rows, and rows are spaced root(3)/2
// edge lengths apart in y. The z channel holds one float64 per vertex,
// with NaN marking a missing sample (distinct from a legitimate zero).
type TriMesh struct {
	UUID        uuid.UUID
	Title       string
	TSide       float64    // triangle edge length
	Nj, Ni      int        // row and column counts
	Origin      [3]float64 // world position of vertex (0, 0)
	ZUom        string     // length unit of the z channel, "" for unitless
	SurfaceRole string     // e.g. "map", "pick"
	CRSUUID     uuid.UUID  // coordinate reference system this mesh is in

	// z is the flat Nj*Ni row-major height buffer.
	z []float64
}

// MeshParams collects the arguments for NewTriMesh. Z is optional: when
// nil every vertex starts as missing (NaN); otherwise it must hold
// exactly Nj*Ni values and is copied, not retained. UUID is optional
// and only supplied when rehydrating a stored mesh; when uuid.Nil a
// fresh one is minted.
type MeshParams struct {
	UUID        uuid.UUID
	Title       string
	TSide       float64
	Nj, Ni      int
	Origin      [3]float64
	ZUom        string
	SurfaceRole string
	CRSUUID     uuid.UUID
	Z           []float64
}

// NewTriMesh validates the lattice definition and returns a mesh with a
// freshly minted UUID. Fails fast with a *ValidationError; no partially
// constructed mesh is ever returned.
func NewTriMesh(p MeshParams) (*TriMesh, error) {
	if p.Nj < 2 || p.Ni < 2 {
		return nil, validationErrorf("tri mesh must have at least 2 rows and 2 columns, got %dx%d", p.Nj, p.Ni)
	}
	if !(p.TSide > 0.0) {
		return nil, validationErrorf("tri mesh edge length must be positive, got %g", p.TSide)
	}
	if p.ZUom != "" && !units.IsValid(p.ZUom) {
		return nil, validationErrorf("unrecognised z length unit %q (valid: %s)", p.ZUom, units.GetValidUnitsString())
	}
	if p.Z != nil && len(p.Z) != p.Nj*p.Ni {
		return nil, validationErrorf("z values length %d does not match %dx%d lattice", len(p.Z), p.Nj, p.Ni)
	}

	z := make([]float64, p.Nj*p.Ni)
	if p.Z == nil {
		for i := range z {
			z[i] = math.NaN()
		}
	} else {
		copy(z, p.Z)
	}

	id := p.UUID
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &TriMesh{
		UUID:        id,
		Title:       p.Title,
		TSide:       p.TSide,
		Nj:          p.Nj,
		Ni:          p.Ni,
		Origin:      p.Origin,
		ZUom:        p.ZUom,
		SurfaceRole: p.SurfaceRole,
		CRSUUID:     p.CRSUUID,
		z:           z,
	}, nil
}

// ZAt returns the height at vertex (j, i). NaN means missing.
func (tm *TriMesh) ZAt(j, i int) float64 {
	return tm.z[j*tm.Ni+i]
}

// SetZ stores a height at vertex (j, i).
func (tm *TriMesh) SetZ(j, i int, z float64) {
	tm.z[j*tm.Ni+i] = z
}

// IsNaNAt reports whether the sample at vertex (j, i) is missing.
func (tm *TriMesh) IsNaNAt(j, i int) bool {
	return math.IsNaN(tm.z[j*tm.Ni+i])
}

// PointAt returns the world (x, y, z) of vertex (j, i), honouring the
// half-column shift of odd rows.
func (tm *TriMesh) PointAt(j, i int) (x, y, z float64) {
	x = tm.Origin[0] + tm.TSide*(float64(i)+RowShift(j))
	y = tm.Origin[1] + tm.TSide*Root3By2*float64(j)
	z = tm.Origin[2] + tm.z[j*tm.Ni+i]
	return x, y, z
}

// FullArray returns a copy of the flat row-major z buffer.
func (tm *TriMesh) FullArray() []float64 {
	out := make([]float64, len(tm.z))
	copy(out, tm.z)
	return out
}

// derive builds a new mesh sharing this mesh's geometry with the given
// title and z buffer (retained, not copied). The result gets its own
// UUID.
func (tm *TriMesh) derive(title string, z []float64) *TriMesh {
	if title == "" {
		title = tm.Title
	}
	return &TriMesh{
		UUID:        uuid.New(),
		Title:       title,
		TSide:       tm.TSide,
		Nj:          tm.Nj,
		Ni:          tm.Ni,
		Origin:      tm.Origin,
		ZUom:        tm.ZUom,
		SurfaceRole: tm.SurfaceRole,
		CRSUUID:     tm.CRSUUID,
		z:           z,
	}
}
