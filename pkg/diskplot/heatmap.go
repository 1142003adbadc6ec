package diskplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"disk-plotter/pkg/grid"
)

// Heatmap bundles the handles created by CartesianHeatmap.
type Heatmap struct {
	// Figure owns the canvas layout and rasterization.
	Figure *Figure
	// Plot holds the axes the heatmap was drawn on.
	Plot *plot.Plot
	// Map is the heatmap plotter.
	Map *plotter.HeatMap
	// Bar is the attached colorbar.
	Bar *plotter.ColorBar
	// Grid is the post-processed histogram that was rendered.
	Grid *grid.Grid
	// VMin and VMax are the resolved color-scale bounds.
	VMin, VMax float64
	// Log reports whether a logarithmic color scale was used.
	Log bool
}

// CartesianHeatmap bins equal-length (x, y) samples into a 2D histogram and
// renders it as an image-style heatmap with a labeled colorbar. Optional
// axis-wise averaging turns raw counts into a relative-overdensity map, and
// the color scale can be linear over explicit bounds or logarithmic with
// explicit or data-derived bounds. Non-finite cells are masked with the
// minimum finite value, and zero cells feeding a log scale are replaced with
// the minimum non-zero value.
//
// When opts.Range is set it clips the binning domain and fixes both the
// displayed extent and the axis limits; otherwise the observed data extent is
// used for all three.
func CartesianHeatmap(x, y []float64, opts HeatmapOptions) (*Heatmap, error) {
	opts = opts.withDefaults()

	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length: %d vs %d", len(x), len(y))
	}
	if (opts.Plot == nil) != (opts.Figure == nil) {
		return nil, fmt.Errorf("plot and figure must be supplied together or not at all")
	}
	if opts.ColorBarRect != nil && opts.ColorBarRect.IsEmpty() {
		return nil, fmt.Errorf("colorbar rectangle has no area")
	}

	g, err := Hist2D(x, y, opts.Bins, opts.Range)
	if err != nil {
		return nil, err
	}

	switch opts.Average {
	case AverageNone:
	case AverageX:
		g.AverageX()
	case AverageY:
		g.AverageY()
	default:
		return nil, fmt.Errorf("unknown averaging axis %v", opts.Average)
	}

	g.MaskNonFinite()

	useLog := opts.Norm == NormLog
	if useLog {
		g.ReplaceZeros()
	}
	vmin, vmax, err := resolveBounds(g, opts, useLog)
	if err != nil {
		return nil, err
	}
	if useLog && vmin <= 0 {
		// All cells are zero or negative, so a log scale has nothing to
		// show; fall back to linear scaling over the data.
		useLog = false
	}

	pal, err := PaletteByName(opts.ColorMap, 255)
	if err != nil {
		return nil, err
	}

	var cells plotter.GridXYZ = g
	hmMin, hmMax := vmin, vmax
	if useLog {
		cells = logGrid{g}
		hmMin, hmMax = math.Log10(vmin), math.Log10(vmax)
	}
	hm := plotter.NewHeatMap(cells, pal)
	hm.Min, hm.Max = hmMin, hmMax
	cols := pal.Colors()
	hm.Underflow = cols[0]
	hm.Overflow = cols[len(cols)-1]

	ext := displayExtent(x, y, opts.Range)
	fig := opts.Figure
	p := opts.Plot
	if fig == nil {
		fig = newExtentFigure(ext, opts.Width)
		fig.DPI = opts.DPI
		p = fig.Plot
	}

	p.Add(hm)
	p.X.Label.Text = opts.Labels[0]
	p.Y.Label.Text = opts.Labels[1]
	p.X.Min, p.X.Max = ext.XMin, ext.XMax
	p.Y.Min, p.Y.Max = ext.YMin, ext.YMax

	norm := NormLinear
	if useLog {
		norm = NormLog
	}
	cm, err := NewColorMap(pal, norm, vmin, vmax)
	if err != nil {
		return nil, err
	}
	bar := &plotter.ColorBar{ColorMap: cm, Vertical: true}
	fig.addColorBar(bar, opts.Labels[2], useLog)
	if opts.ColorBarRect != nil {
		fig.BarRect = *opts.ColorBarRect
	}

	return &Heatmap{
		Figure: fig,
		Plot:   p,
		Map:    hm,
		Bar:    bar,
		Grid:   g,
		VMin:   vmin,
		VMax:   vmax,
		Log:    useLog,
	}, nil
}

// resolveBounds applies the color-normalization policy: explicit bounds win,
// log mode derives missing bounds from the zero-replaced grid, and anything
// else scales linearly over the data extent.
func resolveBounds(g *grid.Grid, opts HeatmapOptions, useLog bool) (vmin, vmax float64, err error) {
	dataMin, dataMax, ok := g.MinMax()
	if !ok {
		return 0, 0, fmt.Errorf("histogram has no finite cells")
	}
	if dataMin == dataMax {
		dataMin -= 0.5
		dataMax += 0.5
	}

	explicit := isFinite(opts.VMin) && isFinite(opts.VMax) && opts.VMin < opts.VMax
	switch {
	case useLog:
		vmin, vmax = dataMin, dataMax
		if isFinite(opts.VMin) {
			vmin = opts.VMin
		}
		if isFinite(opts.VMax) {
			vmax = opts.VMax
		}
		if vmin >= vmax {
			return 0, 0, fmt.Errorf("invalid color bounds [%g, %g]", vmin, vmax)
		}
	case explicit:
		vmin, vmax = opts.VMin, opts.VMax
	default:
		vmin, vmax = dataMin, dataMax
	}
	return vmin, vmax, nil
}

// displayExtent is the rendered extent: the explicit range when given, else
// the observed data extent.
func displayExtent(x, y []float64, r *Range) Range {
	if r != nil {
		return *r
	}
	xlo, xhi := span(x)
	ylo, yhi := span(y)
	return Range{XMin: xlo, XMax: xhi, YMin: ylo, YMax: yhi}
}

// newExtentFigure sizes a figure so the rendered plot area keeps the
// extent's aspect ratio, within sane bounds.
func newExtentFigure(ext Range, width vg.Length) *Figure {
	aspect := (ext.YMax - ext.YMin) / (ext.XMax - ext.XMin)
	if aspect < 0.25 {
		aspect = 0.25
	}
	if aspect > 4 {
		aspect = 4
	}
	height := vg.Length(float64(width) * defaultMainRect.Width * aspect)
	return NewFigure(width, height)
}

// logGrid exposes a grid in log10 space so plotter.HeatMap's linear palette
// lookup matches the logarithmic color normalization.
type logGrid struct {
	*grid.Grid
}

func (g logGrid) Z(c, r int) float64 {
	return math.Log10(g.Grid.Z(c, r))
}
