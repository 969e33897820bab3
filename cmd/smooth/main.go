// Command smooth applies a hexagonal smoothing stencil to a stored tri
// mesh and saves the result as a new mesh.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/geomesh/trimesh/internal/store"
	"github.com/geomesh/trimesh/internal/trimesh"
)

func main() {
	dbPath := flag.String("db", "meshes.db", "Path to the mesh database")
	meshTitle := flag.String("mesh", "", "Title of the mesh to smooth (latest with that title)")
	meshUUID := flag.String("uuid", "", "UUID of the mesh to smooth (overrides -mesh)")
	patternArg := flag.String("pattern", "", "Comma-separated radial weight profile, centre first (e.g. 1.0,0.5,0.25)")
	normalise := flag.Float64("normalise", 0, "Normalise the full kernel to sum to this nonzero value (0 = no normalisation)")
	outTitle := flag.String("out", "", "Title for the smoothed mesh (default: inherit input title)")
	plotPath := flag.String("plot", "", "Optional PNG path for a heatmap of the smoothed surface")
	showStencil := flag.Bool("show-stencil", false, "Log the built stencil as a text picture")
	workers := flag.Int("workers", 0, "Worker goroutines for the row loop (0 = GOMAXPROCS)")
	flag.Parse()

	if *patternArg == "" {
		fmt.Fprintln(os.Stderr, "smooth: -pattern is required")
		flag.Usage()
		os.Exit(2)
	}
	if *meshTitle == "" && *meshUUID == "" {
		fmt.Fprintln(os.Stderr, "smooth: one of -mesh or -uuid is required")
		flag.Usage()
		os.Exit(2)
	}

	pattern, err := parsePattern(*patternArg)
	if err != nil {
		log.Fatalf("bad -pattern: %v", err)
	}

	var stencil *trimesh.Stencil
	if *normalise != 0 {
		stencil, err = trimesh.NewNormalisedStencil(pattern, *normalise)
	} else {
		stencil, err = trimesh.NewStencil(pattern)
	}
	if err != nil {
		log.Fatalf("failed to build stencil: %v", err)
	}
	if *showStencil {
		stencil.DebugLog()
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open store %s: %v", *dbPath, err)
	}
	defer db.Close()

	var tm *trimesh.TriMesh
	if *meshUUID != "" {
		tm, err = db.MeshByUUID(*meshUUID)
	} else {
		tm, err = db.MeshByTitle(*meshTitle)
	}
	if err != nil {
		log.Fatalf("failed to load mesh: %v", err)
	}

	smoothed, err := stencil.Apply(tm, trimesh.ApplyOptions{
		HandleNaN: true,
		Title:     *outTitle,
		Workers:   *workers,
	})
	if err != nil {
		log.Fatalf("failed to apply stencil: %v", err)
	}

	if err := db.SaveMesh(smoothed); err != nil {
		log.Fatalf("failed to save smoothed mesh: %v", err)
	}
	log.Printf("saved smoothed mesh %q as %s", smoothed.Title, smoothed.UUID)

	if *plotPath != "" {
		if err := saveHeatmap(smoothed, *plotPath); err != nil {
			log.Fatalf("failed to plot smoothed mesh: %v", err)
		}
		log.Printf("wrote heatmap to %s", *plotPath)
	}
}

// parsePattern splits a comma-separated float list.
func parsePattern(arg string) ([]float64, error) {
	parts := strings.Split(arg, ",")
	pattern := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", part, err)
		}
		pattern = append(pattern, v)
	}
	return pattern, nil
}

// meshGrid adapts a TriMesh for plotter.NewHeatMap. The half-column
// shift of odd rows cannot be expressed on a rectangular raster, so the
// heatmap is a diagnostic approximation; missing cells are drawn at the
// valid minimum.
type meshGrid struct {
	tm  *trimesh.TriMesh
	min float64
}

func newMeshGrid(tm *trimesh.TriMesh) meshGrid {
	min := math.Inf(1)
	for _, v := range tm.FullArray() {
		if !math.IsNaN(v) && v < min {
			min = v
		}
	}
	if math.IsInf(min, 1) {
		min = 0
	}
	return meshGrid{tm: tm, min: min}
}

func (g meshGrid) Dims() (c, r int) { return g.tm.Ni, g.tm.Nj }
func (g meshGrid) X(c int) float64  { return g.tm.TSide * float64(c) }
func (g meshGrid) Y(r int) float64  { return g.tm.TSide * trimesh.Root3By2 * float64(r) }

func (g meshGrid) Z(c, r int) float64 {
	v := g.tm.ZAt(r, c)
	if math.IsNaN(v) {
		return g.min
	}
	return v
}

func saveHeatmap(tm *trimesh.TriMesh, path string) error {
	hm := plotter.NewHeatMap(newMeshGrid(tm), palette.Heat(16, 1))

	p := plot.New()
	p.Title.Text = tm.Title
	p.X.Label.Text = "x (" + tm.ZUom + ")"
	p.Y.Label.Text = "y (" + tm.ZUom + ")"
	p.Add(hm)

	return p.Save(10*vg.Inch, 8*vg.Inch, path)
}
