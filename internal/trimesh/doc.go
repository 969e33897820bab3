// Package trimesh owns the triangular-lattice surface model and the
// hexagonal smoothing stencil applied to it.
//
// Responsibilities: mesh geometry (equilateral lattice with alternating
// row phase), radially symmetric stencil construction from a 1-D weight
// profile, and NaN-tolerant weighted convolution of mesh z values.
// Key types: TriMesh, Stencil.
//
// No SQL/database code is allowed in this package; persistence lives in
// internal/store.
package trimesh
