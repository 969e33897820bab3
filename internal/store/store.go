// Package store persists tri meshes and frontier features in a local
// SQLite database. Mesh geometry metadata lives in columns; the z
// channel is stored as a compressed blob.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/geomesh/trimesh/internal/organize"
	"github.com/geomesh/trimesh/internal/trimesh"
)

type Store struct {
	*sql.DB
}

// Open opens (creating if needed) the store at path and bootstraps the
// schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS meshes (
			mesh_uuid         TEXT PRIMARY KEY,
			title             TEXT,
			t_side            DOUBLE,
			nj                BIGINT,
			ni                BIGINT,
			origin_x          DOUBLE,
			origin_y          DOUBLE,
			origin_z          DOUBLE,
			z_uom             TEXT,
			surface_role      TEXT,
			crs_uuid          TEXT,
			z_blob            BLOB,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE IF NOT EXISTS features (
			feature_uuid      TEXT PRIMARY KEY,
			feature_name      TEXT,
			extra_json        TEXT,
			timestamp         TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		);
	`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db}, nil
}

// SaveMesh inserts or replaces a mesh keyed by its UUID.
func (s *Store) SaveMesh(tm *trimesh.TriMesh) error {
	blob, err := serializeZ(tm.FullArray())
	if err != nil {
		return fmt.Errorf("failed to serialize z values: %w", err)
	}
	_, err = s.Exec(`
		INSERT OR REPLACE INTO meshes
			(mesh_uuid, title, t_side, nj, ni, origin_x, origin_y, origin_z, z_uom, surface_role, crs_uuid, z_blob)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tm.UUID.String(), tm.Title, tm.TSide, tm.Nj, tm.Ni,
		tm.Origin[0], tm.Origin[1], tm.Origin[2],
		tm.ZUom, tm.SurfaceRole, tm.CRSUUID.String(), blob)
	if err != nil {
		return fmt.Errorf("failed to insert mesh %s: %w", tm.UUID, err)
	}
	return nil
}

func (s *Store) scanMesh(row *sql.Row) (*trimesh.TriMesh, error) {
	var (
		meshUUID, title, zUom, role, crsUUID string
		tSide                                float64
		nj, ni                               int
		origin                               [3]float64
		blob                                 []byte
	)
	err := row.Scan(&meshUUID, &title, &tSide, &nj, &ni,
		&origin[0], &origin[1], &origin[2], &zUom, &role, &crsUUID, &blob)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(meshUUID)
	if err != nil {
		return nil, fmt.Errorf("bad mesh uuid %q: %w", meshUUID, err)
	}
	crs, err := uuid.Parse(crsUUID)
	if err != nil {
		return nil, fmt.Errorf("bad crs uuid %q: %w", crsUUID, err)
	}
	z, err := deserializeZ(blob)
	if err != nil {
		return nil, err
	}

	return trimesh.NewTriMesh(trimesh.MeshParams{
		UUID:        id,
		Title:       title,
		TSide:       tSide,
		Nj:          nj,
		Ni:          ni,
		Origin:      origin,
		ZUom:        zUom,
		SurfaceRole: role,
		CRSUUID:     crs,
		Z:           z,
	})
}

const meshColumns = `mesh_uuid, title, t_side, nj, ni, origin_x, origin_y, origin_z, z_uom, surface_role, crs_uuid, z_blob`

// MeshByUUID loads the mesh with the given UUID.
func (s *Store) MeshByUUID(id string) (*trimesh.TriMesh, error) {
	return s.scanMesh(s.QueryRow(`SELECT `+meshColumns+` FROM meshes WHERE mesh_uuid = ?`, id))
}

// MeshByTitle loads the most recently stored mesh with the given title.
func (s *Store) MeshByTitle(title string) (*trimesh.TriMesh, error) {
	return s.scanMesh(s.QueryRow(
		`SELECT `+meshColumns+` FROM meshes WHERE title = ? ORDER BY timestamp DESC, rowid DESC LIMIT 1`, title))
}

// MeshInfo summarises a stored mesh for listings.
type MeshInfo struct {
	UUID  string
	Title string
	Nj    int
	Ni    int
	ZUom  string
}

// ListMeshes returns summaries of all stored meshes, newest first.
func (s *Store) ListMeshes() ([]MeshInfo, error) {
	rows, err := s.Query(`SELECT mesh_uuid, title, nj, ni, z_uom FROM meshes ORDER BY timestamp DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var infos []MeshInfo
	for rows.Next() {
		var info MeshInfo
		if err := rows.Scan(&info.UUID, &info.Title, &info.Nj, &info.Ni, &info.ZUom); err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// SaveFeature inserts or replaces a frontier feature keyed by its UUID.
func (s *Store) SaveFeature(f *organize.FrontierFeature) error {
	extra, err := json.Marshal(f.ExtraMetadata)
	if err != nil {
		return fmt.Errorf("failed to marshal extra metadata: %w", err)
	}
	_, err = s.Exec(`
		INSERT OR REPLACE INTO features (feature_uuid, feature_name, extra_json)
		VALUES (?, ?, ?)`,
		f.UUID.String(), f.FeatureName, string(extra))
	if err != nil {
		return fmt.Errorf("failed to insert feature %s: %w", f.UUID, err)
	}
	return nil
}

// FeatureByUUID loads the frontier feature with the given UUID.
func (s *Store) FeatureByUUID(id string) (*organize.FrontierFeature, error) {
	var (
		featureUUID, name, extraJSON string
	)
	err := s.QueryRow(
		`SELECT feature_uuid, feature_name, extra_json FROM features WHERE feature_uuid = ?`, id).
		Scan(&featureUUID, &name, &extraJSON)
	if err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(featureUUID)
	if err != nil {
		return nil, fmt.Errorf("bad feature uuid %q: %w", featureUUID, err)
	}
	var extra map[string]string
	if err := json.Unmarshal([]byte(extraJSON), &extra); err != nil {
		return nil, fmt.Errorf("failed to unmarshal extra metadata: %w", err)
	}

	return &organize.FrontierFeature{
		UUID:          parsed,
		FeatureName:   name,
		ExtraMetadata: extra,
	}, nil
}
