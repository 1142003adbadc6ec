// Package grid provides a 2D value grid over histogram bin edges, together
// with the numeric post-processing steps used before rendering: non-finite
// masking, zero replacement for log scales, and axis-wise overdensity
// averaging.
package grid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid holds values over a rectangular binning. Values are stored x-major:
// the cell at x-bin ix and y-bin iy is vals[ix*ny+iy]. Grid implements
// gonum/plot's plotter.GridXYZ, with X and Y reporting bin centers.
type Grid struct {
	vals   []float64
	xEdges []float64 // len nx+1, ascending
	yEdges []float64 // len ny+1, ascending
}

// New creates a zero-valued grid over the given bin edges.
// Edge slices must each contain at least two ascending values.
func New(xEdges, yEdges []float64) (*Grid, error) {
	if len(xEdges) < 2 || len(yEdges) < 2 {
		return nil, fmt.Errorf("grid: need at least 2 edges per axis, got %d x %d", len(xEdges), len(yEdges))
	}
	nx := len(xEdges) - 1
	ny := len(yEdges) - 1
	return &Grid{
		vals:   make([]float64, nx*ny),
		xEdges: xEdges,
		yEdges: yEdges,
	}, nil
}

// FromValues creates a grid from an x-major flat value slice.
// len(vals) must equal (len(xEdges)-1)*(len(yEdges)-1).
func FromValues(vals, xEdges, yEdges []float64) (*Grid, error) {
	g, err := New(xEdges, yEdges)
	if err != nil {
		return nil, err
	}
	if len(vals) != len(g.vals) {
		return nil, fmt.Errorf("grid: %d values do not fill a %dx%d grid",
			len(vals), len(xEdges)-1, len(yEdges)-1)
	}
	copy(g.vals, vals)
	return g, nil
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

// Centers returns the midpoints of consecutive edge pairs.
func Centers(edges []float64) []float64 {
	centers := make([]float64, len(edges)-1)
	for i := range centers {
		centers[i] = (edges[i] + edges[i+1]) / 2
	}
	return centers
}

// Dims returns the number of x-bins and y-bins.
func (g *Grid) Dims() (c, r int) {
	return len(g.xEdges) - 1, len(g.yEdges) - 1
}

// Z returns the value at x-bin c and y-bin r.
func (g *Grid) Z(c, r int) float64 {
	return g.vals[c*(len(g.yEdges)-1)+r]
}

// X returns the center of x-bin c.
func (g *Grid) X(c int) float64 {
	return (g.xEdges[c] + g.xEdges[c+1]) / 2
}

// Y returns the center of y-bin r.
func (g *Grid) Y(r int) float64 {
	return (g.yEdges[r] + g.yEdges[r+1]) / 2
}

// Set stores a value at x-bin ix and y-bin iy.
func (g *Grid) Set(ix, iy int, v float64) {
	g.vals[ix*(len(g.yEdges)-1)+iy] = v
}

// XEdges returns the x bin edges.
func (g *Grid) XEdges() []float64 { return g.xEdges }

// YEdges returns the y bin edges.
func (g *Grid) YEdges() []float64 { return g.yEdges }

// Values returns the backing x-major value slice.
func (g *Grid) Values() []float64 { return g.vals }

// Total returns the sum of all cell values.
func (g *Grid) Total() float64 {
	return floats.Sum(g.vals)
}

// MinMax returns the minimum and maximum finite cell values.
// ok is false when no cell is finite.
func (g *Grid) MinMax() (min, max float64, ok bool) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range g.vals {
		if !isFinite(v) {
			continue
		}
		ok = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max, ok
}

// MaskNonFinite replaces NaN and infinite cells with the minimum finite value.
// Non-finite cells arise from degenerate bins, e.g. empty rows divided by a
// zero row mean. A grid with no finite cells is left unchanged.
func (g *Grid) MaskNonFinite() {
	min, _, ok := g.MinMax()
	if !ok {
		return
	}
	for i, v := range g.vals {
		if !isFinite(v) {
			g.vals[i] = min
		}
	}
}

// ReplaceZeros replaces zero cells with the minimum non-zero value, so the
// grid can feed a logarithmic color scale. A grid with no non-zero cells is
// left unchanged.
func (g *Grid) ReplaceZeros() {
	min := math.Inf(1)
	found := false
	for _, v := range g.vals {
		if v != 0 && isFinite(v) && v < min {
			min = v
			found = true
		}
	}
	if !found {
		return
	}
	for i, v := range g.vals {
		if v == 0 {
			g.vals[i] = min
		}
	}
}

// AverageX divides every x-row of the grid by that row's mean across y,
// turning raw counts into a relative overdensity along y. Rows whose mean is
// zero produce non-finite cells; callers mask those afterwards.
func (g *Grid) AverageX() {
	nx, ny := g.Dims()
	for ix := 0; ix < nx; ix++ {
		row := g.vals[ix*ny : (ix+1)*ny]
		mean := floats.Sum(row) / float64(ny)
		for i := range row {
			row[i] /= mean
		}
	}
}

// AverageY divides every y-column of the grid by that column's mean across x,
// the transpose counterpart of AverageX.
func (g *Grid) AverageY() {
	nx, ny := g.Dims()
	for iy := 0; iy < ny; iy++ {
		var sum float64
		for ix := 0; ix < nx; ix++ {
			sum += g.vals[ix*ny+iy]
		}
		mean := sum / float64(nx)
		for ix := 0; ix < nx; ix++ {
			g.vals[ix*ny+iy] /= mean
		}
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
