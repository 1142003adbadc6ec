package diskplot

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disk-plotter/pkg/geometry"
)

func clusteredSamples(n int) (x, y []float64) {
	rng := rand.New(rand.NewSource(42))
	x = make([]float64, n)
	y = make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()*2 + 5
		y[i] = rng.NormFloat64() + 1
	}
	return x, y
}

func TestCartesianHeatmapLengthMismatch(t *testing.T) {
	_, err := CartesianHeatmap([]float64{1, 2, 3}, []float64{1, 2}, HeatmapOptions{})
	assert.ErrorContains(t, err, "same length")
}

func TestCartesianHeatmapPlotFigurePairing(t *testing.T) {
	x, y := clusteredSamples(100)

	fig := NewFigure(400, 300)
	_, err := CartesianHeatmap(x, y, HeatmapOptions{Figure: fig})
	assert.ErrorContains(t, err, "supplied together")

	opts := DefaultHeatmapOptions()
	opts.Plot = fig.Plot
	opts.Figure = fig
	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)
	assert.Same(t, fig, hm.Figure, "caller-supplied figure is reused")
	assert.Same(t, fig.Plot, hm.Plot)
}

func TestCartesianHeatmapUnknownAverageAxis(t *testing.T) {
	x, y := clusteredSamples(100)
	opts := DefaultHeatmapOptions()
	opts.Average = AverageAxis(7)
	_, err := CartesianHeatmap(x, y, opts)
	assert.ErrorContains(t, err, "unknown averaging axis")
}

func TestCartesianHeatmapHandles(t *testing.T) {
	x, y := clusteredSamples(500)
	hm, err := CartesianHeatmap(x, y, HeatmapOptions{})
	require.NoError(t, err)

	assert.NotNil(t, hm.Figure)
	assert.NotNil(t, hm.Plot)
	assert.NotNil(t, hm.Map)
	assert.NotNil(t, hm.Bar)
	require.NotNil(t, hm.Grid)
	assert.InDelta(t, 500, hm.Grid.Total(), 1e-9)
	assert.Equal(t, "x axis", hm.Plot.X.Label.Text, "default labels")
	assert.Equal(t, "y axis", hm.Plot.Y.Label.Text)
}

func TestCartesianHeatmapRangeSetsExtentAndLimits(t *testing.T) {
	x, y := clusteredSamples(300)
	opts := DefaultHeatmapOptions()
	opts.Range = &Range{XMin: 0, XMax: 10, YMin: -2, YMax: 4}

	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)

	assert.Equal(t, 0.0, hm.Plot.X.Min)
	assert.Equal(t, 10.0, hm.Plot.X.Max)
	assert.Equal(t, -2.0, hm.Plot.Y.Min)
	assert.Equal(t, 4.0, hm.Plot.Y.Max)

	xe := hm.Grid.XEdges()
	assert.Equal(t, 0.0, xe[0], "binning domain follows the explicit range")
	assert.Equal(t, 10.0, xe[len(xe)-1])
}

func TestCartesianHeatmapLogBoundsStayPositive(t *testing.T) {
	// Sparse samples guarantee empty (zero-count) histogram cells.
	x := []float64{0, 0.1, 9.9, 10}
	y := []float64{0, 0.1, 9.9, 10}
	opts := DefaultHeatmapOptions()
	opts.Norm = NormLog

	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)

	assert.True(t, hm.Log)
	assert.Greater(t, hm.VMin, 0.0, "log bounds never include zero")
	assert.Greater(t, hm.VMax, hm.VMin)

	for _, v := range hm.Grid.Values() {
		assert.Greater(t, v, 0.0, "zero cells replaced before log scaling")
	}
}

func TestCartesianHeatmapExplicitLinearBounds(t *testing.T) {
	x, y := clusteredSamples(300)
	opts := DefaultHeatmapOptions()
	opts.VMin, opts.VMax = 0, 12

	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, hm.VMin)
	assert.Equal(t, 12.0, hm.VMax)
	assert.False(t, hm.Log)
	assert.Equal(t, 0.0, hm.Map.Min)
	assert.Equal(t, 12.0, hm.Map.Max)
}

func TestCartesianHeatmapOverdensity(t *testing.T) {
	x, y := clusteredSamples(2000)
	opts := DefaultHeatmapOptions()
	opts.Average = AverageX
	opts.Bins = 10

	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)

	// Each x-row of the overdensity map averages to 1, except rows that
	// were empty: those were masked to a constant.
	nx, ny := hm.Grid.Dims()
	rowsNearOne := 0
	for ix := 0; ix < nx; ix++ {
		var sum float64
		constant := true
		for iy := 0; iy < ny; iy++ {
			sum += hm.Grid.Z(ix, iy)
			if hm.Grid.Z(ix, iy) != hm.Grid.Z(ix, 0) {
				constant = false
			}
		}
		mean := sum / float64(ny)
		if constant {
			continue
		}
		assert.InDelta(t, 1.0, mean, 1e-9, "row %d", ix)
		rowsNearOne++
	}
	assert.Greater(t, rowsNearOne, nx/2, "most rows carry samples")
}

func TestCartesianHeatmapColorBarRect(t *testing.T) {
	x, y := clusteredSamples(100)
	rect := geometry.NewRect(0.8, 0.1, 0.08, 0.8)
	opts := DefaultHeatmapOptions()
	opts.ColorBarRect = &rect

	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)
	assert.Equal(t, rect, hm.Figure.BarRect)

	bad := geometry.NewRect(0.8, 0.1, 0, 0.8)
	opts.ColorBarRect = &bad
	_, err = CartesianHeatmap(x, y, opts)
	assert.ErrorContains(t, err, "no area")
}

func TestCartesianHeatmapRendersAndSaves(t *testing.T) {
	x, y := clusteredSamples(400)
	opts := DefaultHeatmapOptions()
	opts.Norm = NormLog

	hm, err := CartesianHeatmap(x, y, opts)
	require.NoError(t, err)

	img := hm.Figure.Image()
	require.NotNil(t, img)
	assert.Positive(t, img.Bounds().Dx())

	out := filepath.Join(t.TempDir(), "heatmap.png")
	require.NoError(t, hm.Figure.Save(out))

	assert.ErrorContains(t, hm.Figure.Save(filepath.Join(t.TempDir(), "heatmap.bmp")),
		"unsupported figure format")
}
