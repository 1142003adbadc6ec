package style

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"disk-plotter/pkg/diskplot"
	"disk-plotter/pkg/geometry"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	vmin := 0.1
	sty := New("density")
	sty.ColorMap = "bluered"
	sty.Bins = 80
	sty.Normalization = "log"
	sty.VMin = &vmin
	sty.Labels = []string{"x [au]", "y [au]", "Surface Density"}
	sty.Range = &[4]float64{-10, 10, -10, 10}

	path := filepath.Join(t.TempDir(), "density.diskstyle")
	require.NoError(t, sty.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "density", got.Name)
	assert.Equal(t, "bluered", got.ColorMap)
	assert.Equal(t, 80, got.Bins)
	require.NotNil(t, got.VMin)
	assert.Equal(t, vmin, *got.VMin)
	assert.Nil(t, got.VMax)
	assert.Equal(t, sty.Labels, got.Labels)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.diskstyle"))
	assert.Error(t, err)
}

func TestHeatmapOptions(t *testing.T) {
	vmax := 50.0
	sty := New("")
	sty.ColorMap = "gray"
	sty.Bins = 32
	sty.Normalization = "log"
	sty.Average = "x"
	sty.VMax = &vmax
	sty.Range = &[4]float64{0, 5, 0, 2}
	rect := geometry.NewRect(0.85, 0.1, 0.06, 0.8)
	sty.ColorBarRect = &rect

	opts, err := sty.HeatmapOptions()
	require.NoError(t, err)
	assert.Equal(t, "gray", opts.ColorMap)
	assert.Equal(t, 32, opts.Bins)
	assert.Equal(t, diskplot.NormLog, opts.Norm)
	assert.Equal(t, diskplot.AverageX, opts.Average)
	assert.Equal(t, 50.0, opts.VMax)
	require.NotNil(t, opts.Range)
	assert.Equal(t, diskplot.Range{XMin: 0, XMax: 5, YMin: 0, YMax: 2}, *opts.Range)
	require.NotNil(t, opts.ColorBarRect)
	assert.Equal(t, rect, *opts.ColorBarRect)
}

func TestHeatmapOptionsDefaults(t *testing.T) {
	opts, err := New("").HeatmapOptions()
	require.NoError(t, err)
	def := diskplot.DefaultHeatmapOptions()
	assert.Equal(t, def.ColorMap, opts.ColorMap)
	assert.Equal(t, def.Bins, opts.Bins)
	assert.Equal(t, diskplot.NormNone, opts.Norm)
}

func TestHeatmapOptionsInvalid(t *testing.T) {
	sty := New("")
	sty.Normalization = "sqrt"
	_, err := sty.HeatmapOptions()
	assert.Error(t, err)

	sty = New("")
	sty.Range = &[4]float64{5, 5, 0, 1}
	_, err = sty.HeatmapOptions()
	assert.ErrorContains(t, err, "empty")
}

func TestPolarOptions(t *testing.T) {
	sty := New("")
	sty.ColorMap = "hot"
	sty.Levels = 12
	sty.Bins = 40
	sty.BarLabel = "Counts"
	sty.BinPolar = true

	opts := sty.PolarOptions()
	assert.Equal(t, "hot", opts.ColorMap)
	assert.Equal(t, 12, opts.Levels)
	assert.Equal(t, 40, opts.Bins)
	assert.Equal(t, "Counts", opts.Label)
	assert.True(t, opts.BinPolar)
}
