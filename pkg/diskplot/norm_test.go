package diskplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
)

func TestNewColorMapValidation(t *testing.T) {
	pal, err := PaletteByName("gray", 16)
	require.NoError(t, err)

	_, err = NewColorMap(pal, NormLinear, 5, 5)
	assert.ErrorContains(t, err, "invalid color bounds")

	_, err = NewColorMap(pal, NormLinear, math.NaN(), 1)
	assert.ErrorContains(t, err, "invalid color bounds")

	_, err = NewColorMap(pal, NormLog, 0, 10)
	assert.ErrorContains(t, err, "must be positive")

	_, err = NewColorMap(pal, NormLog, -1, 10)
	assert.ErrorContains(t, err, "must be positive")
}

func TestLinearColorMapAt(t *testing.T) {
	pal, err := PaletteByName("gray", 64)
	require.NoError(t, err)
	cm, err := NewColorMap(pal, NormLinear, 0, 10)
	require.NoError(t, err)

	_, err = cm.At(-0.01)
	assert.ErrorIs(t, err, palette.ErrUnderflow)
	_, err = cm.At(10.01)
	assert.ErrorIs(t, err, palette.ErrOverflow)
	_, err = cm.At(math.NaN())
	assert.ErrorIs(t, err, palette.ErrNaN)

	lo, err := cm.At(0)
	require.NoError(t, err)
	hi, err := cm.At(10)
	require.NoError(t, err)
	cols := pal.Colors()
	assert.Equal(t, cols[0], lo)
	assert.Equal(t, cols[len(cols)-1], hi)
}

func TestLogColorMapMidpoint(t *testing.T) {
	pal, err := PaletteByName("gray", 101)
	require.NoError(t, err)
	cm, err := NewColorMap(pal, NormLog, 1, 100)
	require.NoError(t, err)

	// The geometric midpoint of [1, 100] maps to the middle of the
	// palette under a log scale.
	mid, err := cm.At(10)
	require.NoError(t, err)
	assert.Equal(t, pal.Colors()[50], mid)

	// The arithmetic midpoint sits far above the palette middle.
	arith, err := cm.At(50.5)
	require.NoError(t, err)
	assert.NotEqual(t, pal.Colors()[50], arith)
}

func TestColorMapBoundsAccessors(t *testing.T) {
	pal, err := PaletteByName("hot", 8)
	require.NoError(t, err)
	cm, err := NewColorMap(pal, NormLinear, 2, 8)
	require.NoError(t, err)

	assert.Equal(t, 2.0, cm.Min())
	assert.Equal(t, 8.0, cm.Max())
	cm.SetMin(1)
	cm.SetMax(9)
	assert.Equal(t, 1.0, cm.Min())
	assert.Equal(t, 9.0, cm.Max())

	assert.Equal(t, 1.0, cm.Alpha())
	assert.Panics(t, func() { cm.SetAlpha(2) })

	sub := cm.Palette(4)
	assert.Len(t, sub.Colors(), 4)
}

func TestParseNormalization(t *testing.T) {
	cases := []struct {
		in   string
		want Normalization
		ok   bool
	}{
		{"", NormNone, true},
		{"none", NormNone, true},
		{"linear", NormLinear, true},
		{"log", NormLog, true},
		{"logarithmic", NormNone, false},
	}
	for _, tc := range cases {
		got, err := ParseNormalization(tc.in)
		if tc.ok {
			assert.NoError(t, err, tc.in)
			assert.Equal(t, tc.want, got, tc.in)
		} else {
			assert.Error(t, err, tc.in)
		}
	}
}

func TestParseAverageAxis(t *testing.T) {
	got, err := ParseAverageAxis("x")
	require.NoError(t, err)
	assert.Equal(t, AverageX, got)

	got, err = ParseAverageAxis("")
	require.NoError(t, err)
	assert.Equal(t, AverageNone, got)

	_, err = ParseAverageAxis("z")
	assert.Error(t, err)
}
