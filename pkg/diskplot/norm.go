package diskplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
)

// NewColorMap wraps a palette in a value-space color mapping implementing
// palette.ColorMap, so the same object can drive both heatmap cells and a
// plotter.ColorBar. NormLog requires strictly positive bounds; NormNone is
// treated as linear over the given bounds.
func NewColorMap(pal palette.Palette, norm Normalization, vmin, vmax float64) (palette.ColorMap, error) {
	if !isFinite(vmin) || !isFinite(vmax) || vmin >= vmax {
		return nil, fmt.Errorf("invalid color bounds [%g, %g]", vmin, vmax)
	}
	cols := pal.Colors()
	if len(cols) == 0 {
		return nil, fmt.Errorf("palette has no colors")
	}
	switch norm {
	case NormNone, NormLinear:
		return &linearMap{cols: cols, min: vmin, max: vmax, alpha: 1}, nil
	case NormLog:
		if vmin <= 0 {
			return nil, fmt.Errorf("log color bounds must be positive, got [%g, %g]", vmin, vmax)
		}
		return &logMap{cols: cols, min: vmin, max: vmax, alpha: 1}, nil
	default:
		return nil, fmt.Errorf("unknown normalization %v", norm)
	}
}

// linearMap maps values linearly between its bounds onto a fixed palette.
type linearMap struct {
	cols     []color.Color
	min, max float64
	alpha    float64
}

func (m *linearMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	t := (v - m.min) / (m.max - m.min)
	return m.cols[colorIndex(t, len(m.cols))], nil
}

func (m *linearMap) Min() float64     { return m.min }
func (m *linearMap) SetMin(v float64) { m.min = v }
func (m *linearMap) Max() float64     { return m.max }
func (m *linearMap) SetMax(v float64) { m.max = v }
func (m *linearMap) Alpha() float64   { return m.alpha }
func (m *linearMap) SetAlpha(v float64) {
	if v < 0 || v > 1 {
		panic("diskplot: alpha out of range")
	}
	m.alpha = v
}

func (m *linearMap) Palette(colors int) palette.Palette {
	return resample(m.cols, colors)
}

// logMap maps values logarithmically between its strictly positive bounds.
type logMap struct {
	cols     []color.Color
	min, max float64
	alpha    float64
}

func (m *logMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}
	t := (math.Log10(v) - math.Log10(m.min)) / (math.Log10(m.max) - math.Log10(m.min))
	return m.cols[colorIndex(t, len(m.cols))], nil
}

func (m *logMap) Min() float64     { return m.min }
func (m *logMap) SetMin(v float64) { m.min = v }
func (m *logMap) Max() float64     { return m.max }
func (m *logMap) SetMax(v float64) { m.max = v }
func (m *logMap) Alpha() float64   { return m.alpha }
func (m *logMap) SetAlpha(v float64) {
	if v < 0 || v > 1 {
		panic("diskplot: alpha out of range")
	}
	m.alpha = v
}

func (m *logMap) Palette(colors int) palette.Palette {
	return resample(m.cols, colors)
}

// colorIndex maps t in [0, 1] to a palette index.
func colorIndex(t float64, n int) int {
	i := int(t * float64(n))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// fixedPalette is a palette over a precomputed color slice.
type fixedPalette []color.Color

func (p fixedPalette) Colors() []color.Color { return p }

// resample picks n evenly spaced colors from cols.
func resample(cols []color.Color, n int) palette.Palette {
	if n <= 0 || len(cols) == 0 {
		return fixedPalette(nil)
	}
	out := make([]color.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = cols[colorIndex(t, len(cols))]
	}
	return fixedPalette(out)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
