// Package diskplot provides plotting helpers for 2D astrophysical disk data,
// such as circumbinary disk density fields. It wraps gonum/plot and go-hep's
// histogram binning behind three convenience calls: PolarContour,
// PolarHeatmap, and CartesianHeatmap.
package diskplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"disk-plotter/pkg/geometry"
)

// AverageAxis selects the axis a histogram is averaged along to produce a
// relative-overdensity map.
type AverageAxis int

const (
	// AverageNone leaves the histogram counts untouched.
	AverageNone AverageAxis = iota
	// AverageX divides each x-row by its mean across y.
	AverageX
	// AverageY divides each y-column by its mean across x.
	AverageY
)

func (a AverageAxis) String() string {
	switch a {
	case AverageNone:
		return "none"
	case AverageX:
		return "x"
	case AverageY:
		return "y"
	default:
		return fmt.Sprintf("AverageAxis(%d)", int(a))
	}
}

// ParseAverageAxis converts a string such as "x" or "y" to an AverageAxis.
func ParseAverageAxis(s string) (AverageAxis, error) {
	switch s {
	case "", "none":
		return AverageNone, nil
	case "x":
		return AverageX, nil
	case "y":
		return AverageY, nil
	default:
		return AverageNone, fmt.Errorf("unknown averaging axis %q (want none, x, or y)", s)
	}
}

// Normalization selects how grid values map onto the color scale.
type Normalization int

const (
	// NormNone uses linear scaling over the data extent.
	NormNone Normalization = iota
	// NormLinear uses linear scaling over explicit bounds.
	NormLinear
	// NormLog uses logarithmic scaling; bounds must be strictly positive
	// and are derived from the data when not supplied.
	NormLog
)

func (n Normalization) String() string {
	switch n {
	case NormNone:
		return "none"
	case NormLinear:
		return "linear"
	case NormLog:
		return "log"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization converts a string such as "log" to a Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "", "none":
		return NormNone, nil
	case "linear":
		return NormLinear, nil
	case "log":
		return NormLog, nil
	default:
		return NormNone, fmt.Errorf("unknown normalization %q (want none, linear, or log)", s)
	}
}

// Range is an explicit histogram and display range. It both clips the binning
// domain and sets the rendered extent and axis limits.
type Range struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Valid reports whether both spans are non-empty.
func (r Range) Valid() bool {
	return r.XMin < r.XMax && r.YMin < r.YMax
}

// PolarOptions configure PolarContour and PolarHeatmap.
type PolarOptions struct {
	// Levels is the number of filled contour levels.
	Levels int
	// Bins is the number of histogram bins per axis (PolarHeatmap only).
	Bins int
	// Label is the colorbar label.
	Label string
	// ColorMap names a registered colormap, see PaletteByName.
	ColorMap string
	// BinPolar makes PolarHeatmap bin directly in (angle, radius) space
	// instead of Cartesian space, so the displayed axes match the bin
	// geometry exactly.
	BinPolar bool
	// Width is the rendered figure width; polar figures are square.
	Width vg.Length
	// DPI is the raster resolution used when saving.
	DPI int
}

// DefaultPolarOptions returns the option values used when a zero field is
// encountered: 30 levels, 50 bins, a rainbow colormap, and a number-density
// colorbar label.
func DefaultPolarOptions() PolarOptions {
	return PolarOptions{
		Levels:   30,
		Bins:     50,
		Label:    "Number Density",
		ColorMap: "rainbow",
		Width:    6 * vg.Inch,
		DPI:      96,
	}
}

func (o PolarOptions) withDefaults() PolarOptions {
	def := DefaultPolarOptions()
	if o.Levels <= 0 {
		o.Levels = def.Levels
	}
	if o.Bins <= 0 {
		o.Bins = def.Bins
	}
	if o.Label == "" {
		o.Label = def.Label
	}
	if o.ColorMap == "" {
		o.ColorMap = def.ColorMap
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	return o
}

// HeatmapOptions configure CartesianHeatmap.
type HeatmapOptions struct {
	// Labels holds the x-axis, y-axis, and colorbar labels, in that order.
	// A missing or wrong-length slice falls back to default labels.
	Labels []string
	// Bins is the number of histogram bins per axis.
	Bins int
	// Average selects optional axis-wise overdensity averaging.
	Average AverageAxis
	// ColorMap names a registered colormap, see PaletteByName.
	ColorMap string
	// Norm selects the color normalization policy.
	Norm Normalization
	// VMin and VMax are explicit color-scale bounds. NaN means unset.
	VMin, VMax float64
	// Range optionally clips the histogram domain and fixes the displayed
	// extent and axis limits.
	Range *Range
	// ColorBarRect optionally places the colorbar at an explicit rectangle
	// in normalized figure coordinates.
	ColorBarRect *geometry.Rect
	// Plot and Figure attach the heatmap to existing axes. They must be
	// supplied together or not at all.
	Plot   *plot.Plot
	Figure *Figure
	// Width is the rendered figure width; the height follows the extent's
	// aspect ratio.
	Width vg.Length
	// DPI is the raster resolution used when saving.
	DPI int
}

// DefaultHeatmapOptions returns the option values used when a zero field is
// encountered: 50 bins, a hot colormap, unset color bounds, and no averaging.
func DefaultHeatmapOptions() HeatmapOptions {
	return HeatmapOptions{
		Bins:     50,
		ColorMap: "hot",
		VMin:     math.NaN(),
		VMax:     math.NaN(),
		Width:    7 * vg.Inch,
		DPI:      96,
	}
}

func (o HeatmapOptions) withDefaults() HeatmapOptions {
	def := DefaultHeatmapOptions()
	if o.Bins <= 0 {
		o.Bins = def.Bins
	}
	if o.ColorMap == "" {
		o.ColorMap = def.ColorMap
	}
	if o.Width <= 0 {
		o.Width = def.Width
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if len(o.Labels) != 3 {
		o.Labels = []string{"x axis", "y axis", "Number"}
	}
	return o
}
