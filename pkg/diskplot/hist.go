package diskplot

import (
	"fmt"
	"math"

	"go-hep.org/x/hep/hbook"
	"gonum.org/v1/gonum/floats"

	"disk-plotter/pkg/grid"
)

// Hist2D bins equal-length x and y sample slices into a bins-by-bins count
// grid. When r is nil the observed data extent is used; with an explicit
// range, samples outside it are excluded from the counts. A sample lying
// exactly on the upper edge of an axis is counted in the last bin.
func Hist2D(x, y []float64, bins int, r *Range) (*grid.Grid, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length: %d vs %d", len(x), len(y))
	}
	if bins < 2 {
		return nil, fmt.Errorf("need at least 2 bins per axis, got %d", bins)
	}
	if r != nil && !r.Valid() {
		return nil, fmt.Errorf("empty histogram range [%g, %g] x [%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
	}
	if len(x) == 0 && r == nil {
		return nil, fmt.Errorf("cannot derive a histogram range from zero samples")
	}

	var xlo, xhi, ylo, yhi float64
	if r != nil {
		xlo, xhi = r.XMin, r.XMax
		ylo, yhi = r.YMin, r.YMax
	} else {
		xlo, xhi = span(x)
		ylo, yhi = span(y)
	}

	// hbook bins are half-open on the right; widen the top edge by one ulp
	// so the maximum sample lands in the last bin instead of the overflow.
	h := hbook.NewH2D(bins, xlo, nextUp(xhi), bins, ylo, nextUp(yhi))
	for i := range x {
		h.Fill(x[i], y[i], 1)
	}

	g, err := grid.New(grid.Linspace(xlo, xhi, bins+1), grid.Linspace(ylo, yhi, bins+1))
	if err != nil {
		return nil, err
	}
	counts := h.GridXYZ()
	nx, ny := counts.Dims()
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			g.Set(ix, iy, counts.Z(ix, iy))
		}
	}
	return g, nil
}

// span returns the observed min and max, widened symmetrically when all
// samples share one value so the binning domain has area.
func span(vals []float64) (lo, hi float64) {
	lo = floats.Min(vals)
	hi = floats.Max(vals)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	return lo, hi
}

func nextUp(v float64) float64 {
	return math.Nextafter(v, math.Inf(1))
}
