package dataio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "samples.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadColumnsByName(t *testing.T) {
	path := writeTemp(t, "radius,angle_deg\n1.5,90\n2.25,180\n")

	x, y, err := LoadColumns(path, "radius", "angle_deg")
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.25}, x)
	assert.Equal(t, []float64{90, 180}, y)
}

func TestLoadColumnsByIndexHeaderless(t *testing.T) {
	path := writeTemp(t, "7,70\n8,80\n9,90\n")

	x, y, err := LoadColumns(path, "0", "1")
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 8, 9}, x)
	assert.Equal(t, []float64{70, 80, 90}, y)
}

func TestLoadColumnsMixedSpec(t *testing.T) {
	// One column by name, one by index: the header row is still skipped.
	path := writeTemp(t, "x,y\n5,6\n")

	x, y, err := LoadColumns(path, "x", "1")
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, x)
	assert.Equal(t, []float64{6}, y)
}

func TestLoadColumnsErrors(t *testing.T) {
	path := writeTemp(t, "x,y\n1,2\n")

	_, _, err := LoadColumns(path, "missing", "y")
	assert.ErrorContains(t, err, "not found")

	_, _, err = LoadColumns(path, "x", "5")
	assert.ErrorContains(t, err, "row 1 has 2 fields")

	bad := writeTemp(t, "x,y\n1,notanumber\n")
	_, _, err = LoadColumns(bad, "x", "y")
	assert.Error(t, err)

	_, _, err = LoadColumns(filepath.Join(t.TempDir(), "absent.csv"), "x", "y")
	assert.Error(t, err)
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	x := []float64{1, 2.5, -3}
	y := []float64{0.125, 7, 9}

	require.NoError(t, WriteColumns(path, "a", "b", x, y))

	gotX, gotY, err := LoadColumns(path, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, x, gotX)
	assert.Equal(t, y, gotY)
}

func TestWriteColumnsLengthMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteColumns(path, "a", "b", []float64{1}, []float64{1, 2})
	assert.ErrorContains(t, err, "same length")
}
