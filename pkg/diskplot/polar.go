package diskplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"disk-plotter/pkg/geometry"
	"disk-plotter/pkg/grid"
)

// PolarPlot bundles the handles created by PolarContour and PolarHeatmap.
type PolarPlot struct {
	// Figure owns the canvas layout and rasterization.
	Figure *Figure
	// Plot holds the polar axes.
	Plot *plot.Plot
	// Field is the filled-sector plotter drawing the value grid.
	Field *SectorField
	// Bar is the attached colorbar.
	Bar *plotter.ColorBar
}

// SectorField renders a polar value grid as filled annular sectors, with
// values quantized into a fixed number of contour levels. Zero degrees lies
// on the positive x-axis and angles increase counter-clockwise. It implements
// plot.Plotter and plot.DataRanger on Cartesian axes spanning the outer
// radius in every direction.
type SectorField struct {
	thetas []float64     // radians, ascending
	radii  []float64     // ascending, non-negative
	values []float64     // angle-major: values[i*len(radii)+j]
	levels []float64     // level boundaries, len(colors)+1
	colors []color.Color // one per level

	// GridColor strokes the radial rings and spokes standing in for the
	// polar axes. Nil disables them.
	GridColor color.Color
	// Rings is the number of radial grid rings.
	Rings int
	// SpokeStep is the angular spacing of grid spokes in degrees.
	SpokeStep float64
}

// Levels returns the contour level boundaries.
func (sf *SectorField) Levels() []float64 { return sf.levels }

// DataRange implements plot.DataRanger.
func (sf *SectorField) DataRange() (xmin, xmax, ymin, ymax float64) {
	rmax := sf.radii[len(sf.radii)-1]
	return -rmax, rmax, -rmax, rmax
}

// Plot implements plot.Plotter.
func (sf *SectorField) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	toCanvas := func(p geometry.Point2D) vg.Point {
		return vg.Point{X: trX(p.X), Y: trY(p.Y)}
	}

	nr := len(sf.radii)
	for i := 0; i < len(sf.thetas)-1; i++ {
		for j := 0; j < nr-1; j++ {
			v := sf.values[i*nr+j]
			if math.IsNaN(v) {
				continue
			}
			pts := sectorOutline(sf.thetas[i], sf.thetas[i+1], sf.radii[j], sf.radii[j+1])
			poly := make([]vg.Point, len(pts))
			for k, p := range pts {
				poly[k] = toCanvas(p)
			}
			c.FillPolygon(sf.levelColor(v), poly)
		}
	}

	if sf.GridColor != nil {
		sf.drawPolarGrid(c, toCanvas)
	}
}

// levelColor returns the color of the contour level containing v.
func (sf *SectorField) levelColor(v float64) color.Color {
	n := len(sf.colors)
	lo := sf.levels[0]
	hi := sf.levels[n]
	t := (v - lo) / (hi - lo)
	return sf.colors[colorIndex(t, n)]
}

// drawPolarGrid strokes radial rings and angular spokes over the sectors.
func (sf *SectorField) drawPolarGrid(c draw.Canvas, toCanvas func(geometry.Point2D) vg.Point) {
	sty := draw.LineStyle{Color: sf.GridColor, Width: vg.Points(0.5)}
	rmax := sf.radii[len(sf.radii)-1]

	for k := 1; k <= sf.Rings; k++ {
		r := rmax * float64(k) / float64(sf.Rings)
		const segments = 90
		ring := make([]vg.Point, segments+1)
		for s := 0; s <= segments; s++ {
			theta := 2 * math.Pi * float64(s) / segments
			ring[s] = toCanvas(geometry.Point2D{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
		}
		c.StrokeLines(sty, ring)
	}

	for deg := 0.0; deg < 360; deg += sf.SpokeStep {
		spoke := []vg.Point{
			toCanvas(geometry.Point2D{}),
			toCanvas(geometry.FromPolar(rmax, deg)),
		}
		c.StrokeLines(sty, spoke)
	}
}

// sectorOutline builds the closed outline of an annular sector, subdividing
// the arcs so wide sectors stay curved.
func sectorOutline(theta0, theta1, r0, r1 float64) []geometry.Point2D {
	span := theta1 - theta0
	steps := int(math.Ceil(math.Abs(span) / (3 * math.Pi / 180)))
	if steps < 1 {
		steps = 1
	}

	pts := make([]geometry.Point2D, 0, 2*(steps+1))
	for s := 0; s <= steps; s++ {
		theta := theta0 + span*float64(s)/float64(steps)
		pts = append(pts, geometry.Point2D{X: r1 * math.Cos(theta), Y: r1 * math.Sin(theta)})
	}
	for s := steps; s >= 0; s-- {
		theta := theta0 + span*float64(s)/float64(steps)
		pts = append(pts, geometry.Point2D{X: r0 * math.Cos(theta), Y: r0 * math.Sin(theta)})
	}
	return pts
}

// PolarContour renders a pre-binned value grid over an angle/radius mesh as a
// filled polar contour plot with a labeled colorbar. values must hold one
// value per (angle, radius) pair, angle-major, so that
// len(values) == len(anglesDeg)*len(radii).
func PolarContour(values, anglesDeg, radii []float64, opts PolarOptions) (*PolarPlot, error) {
	opts = opts.withDefaults()

	if len(anglesDeg) < 2 || len(radii) < 2 {
		return nil, fmt.Errorf("need at least 2 angles and 2 radii, got %d and %d", len(anglesDeg), len(radii))
	}
	if len(values) != len(anglesDeg)*len(radii) {
		return nil, fmt.Errorf("values length %d does not reshape into %d angles x %d radii",
			len(values), len(anglesDeg), len(radii))
	}
	for _, r := range radii {
		if r < 0 {
			return nil, fmt.Errorf("radii must be non-negative, got %g", r)
		}
	}

	pal, err := PaletteByName(opts.ColorMap, opts.Levels)
	if err != nil {
		return nil, err
	}

	vmin, vmax := finiteSpan(values)
	if vmin == vmax {
		vmin -= 0.5
		vmax += 0.5
	}

	thetas := make([]float64, len(anglesDeg))
	for i, deg := range anglesDeg {
		thetas[i] = geometry.DegToRad(deg)
	}

	field := &SectorField{
		thetas:    thetas,
		radii:     radii,
		values:    values,
		levels:    grid.Linspace(vmin, vmax, len(pal.Colors())+1),
		colors:    pal.Colors(),
		GridColor: color.Gray{Y: 0xb0},
		Rings:     4,
		SpokeStep: 45,
	}

	p := plot.New()
	p.HideAxes()
	p.Add(field)

	cm, err := NewColorMap(pal, NormLinear, vmin, vmax)
	if err != nil {
		return nil, err
	}
	bar := &plotter.ColorBar{ColorMap: cm, Vertical: true}

	fig := NewFigure(opts.Width, opts.Width)
	fig.Plot = p
	fig.DPI = opts.DPI
	fig.addColorBar(bar, opts.Label, false)

	return &PolarPlot{Figure: fig, Plot: p, Field: field, Bar: bar}, nil
}

// PolarHeatmap bins (radius, angle-in-degrees) samples into a 2D histogram
// and renders it through PolarContour.
//
// By default the samples are mapped to Cartesian coordinates before binning
// and the displayed angle/radius axes are reconstructed as even spans over
// the observed polar extents. Those reconstructed radial positions do not
// correspond to the radial geometry of the Cartesian-binned histogram; the
// behavior is kept for backward compatibility. Set
// opts.BinPolar to bin directly in (angle, radius) space, which makes the
// displayed axes exact.
func PolarHeatmap(radii, anglesDeg []float64, opts PolarOptions) (*PolarPlot, error) {
	opts = opts.withDefaults()

	if len(radii) != len(anglesDeg) {
		return nil, fmt.Errorf("radius and angle samples must have the same length: %d vs %d",
			len(radii), len(anglesDeg))
	}
	if len(radii) == 0 {
		return nil, fmt.Errorf("cannot bin zero samples")
	}

	if opts.BinPolar {
		g, err := Hist2D(anglesDeg, radii, opts.Bins, nil)
		if err != nil {
			return nil, err
		}
		return PolarContour(g.Values(), grid.Centers(g.XEdges()), grid.Centers(g.YEdges()), opts)
	}

	xs := make([]float64, len(radii))
	ys := make([]float64, len(radii))
	for i := range radii {
		p := geometry.FromPolar(radii[i], anglesDeg[i])
		xs[i] = p.X
		ys[i] = p.Y
	}

	g, err := Hist2D(xs, ys, opts.Bins, nil)
	if err != nil {
		return nil, err
	}

	angles := grid.Linspace(floats.Min(anglesDeg), floats.Max(anglesDeg), opts.Bins)
	rads := grid.Linspace(floats.Min(radii), floats.Max(radii), opts.Bins)
	return PolarContour(g.Values(), angles, rads, opts)
}

// finiteSpan returns the min and max of the finite entries of vals, or
// (0, 0) when none are finite.
func finiteSpan(vals []float64) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
