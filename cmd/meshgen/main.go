// Command meshgen synthesises a tri mesh test surface (a ridged
// sinusoid with optional missing-sample holes) and stores it, so that
// smooth can be exercised end to end without field data.
package main

import (
	"flag"
	"log"
	"math"
	"math/rand"

	"github.com/geomesh/trimesh/internal/organize"
	"github.com/geomesh/trimesh/internal/store"
	"github.com/geomesh/trimesh/internal/trimesh"
	"github.com/geomesh/trimesh/internal/units"
)

func main() {
	dbPath := flag.String("db", "meshes.db", "Path to the mesh database")
	title := flag.String("title", "synthetic-surface", "Title for the generated mesh")
	nj := flag.Int("nj", 120, "Row count")
	ni := flag.Int("ni", 160, "Column count")
	tSide := flag.Float64("tside", 50.0, "Triangle edge length")
	uom := flag.String("uom", units.M, "Length unit for z values")
	depth := flag.Float64("depth", -1850.0, "Base depth of the surface")
	amp := flag.Float64("amp", 25.0, "Amplitude of the synthetic relief")
	holes := flag.Float64("holes", 0.05, "Fraction of samples to mark missing")
	seed := flag.Int64("seed", 1, "Random seed for hole placement")
	feature := flag.String("feature", "", "Optional frontier feature name to register alongside the mesh")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	z := make([]float64, (*nj)*(*ni))
	for j := 0; j < *nj; j++ {
		for i := 0; i < *ni; i++ {
			x := float64(i) + trimesh.RowShift(j)
			y := float64(j) * trimesh.Root3By2
			relief := math.Sin(x*0.11)*math.Cos(y*0.07) + 0.3*math.Sin(x*0.31+y*0.17)
			z[j*(*ni)+i] = *depth + *amp*relief
		}
	}
	missing := 0
	for k := range z {
		if rng.Float64() < *holes {
			z[k] = math.NaN()
			missing++
		}
	}

	tm, err := trimesh.NewTriMesh(trimesh.MeshParams{
		Title:       *title,
		TSide:       *tSide,
		Nj:          *nj,
		Ni:          *ni,
		ZUom:        *uom,
		SurfaceRole: "map",
		Z:           z,
	})
	if err != nil {
		log.Fatalf("failed to build mesh: %v", err)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store %s: %v", *dbPath, err)
	}
	defer db.Close()

	if err := db.SaveMesh(tm); err != nil {
		log.Fatalf("failed to save mesh: %v", err)
	}
	log.Printf("saved mesh %q (%dx%d, %d missing samples) as %s", tm.Title, tm.Nj, tm.Ni, missing, tm.UUID)

	if *feature != "" {
		f := organize.NewFrontierFeature(*feature, map[string]string{"source": "meshgen"})
		if err := db.SaveFeature(f); err != nil {
			log.Fatalf("failed to save feature: %v", err)
		}
		log.Printf("registered frontier feature %q as %s", f.FeatureName, f.UUID)
	}
}
