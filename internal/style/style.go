// Package style provides plot style file handling and persistence. A style
// file captures the reusable presentation knobs of a plot (colormap, bins,
// labels, normalization, ranges) as JSON, so the same look can be applied
// across data sets.
package style

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"disk-plotter/pkg/diskplot"
	"disk-plotter/pkg/geometry"
)

// File represents a plot style file (.diskstyle).
type File struct {
	Version  int       `json:"version"`
	Name     string    `json:"name,omitempty"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`

	// Shared knobs
	ColorMap string `json:"colormap,omitempty"`
	Bins     int    `json:"bins,omitempty"`

	// Cartesian heatmap knobs
	Labels        []string       `json:"labels,omitempty"` // x, y, colorbar
	Normalization string         `json:"normalization,omitempty"`
	Average       string         `json:"average,omitempty"`
	VMin          *float64       `json:"vmin,omitempty"`
	VMax          *float64       `json:"vmax,omitempty"`
	Range         *[4]float64    `json:"range,omitempty"` // xmin, xmax, ymin, ymax
	ColorBarRect  *geometry.Rect `json:"colorbar_rect,omitempty"`

	// Polar knobs
	Levels   int    `json:"levels,omitempty"`
	BarLabel string `json:"bar_label,omitempty"`
	BinPolar bool   `json:"bin_polar"`
}

// New creates a style file with default settings.
func New(name string) *File {
	now := time.Now()
	return &File{
		Version:  1,
		Name:     name,
		Created:  now,
		Modified: now,
	}
}

// Load loads a style from a .diskstyle file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sty File
	if err := json.Unmarshal(data, &sty); err != nil {
		return nil, fmt.Errorf("parse style %s: %w", path, err)
	}
	return &sty, nil
}

// Save saves the style to a file.
func (f *File) Save(path string) error {
	f.Modified = time.Now()

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// HeatmapOptions builds CartesianHeatmap options from the style, starting
// from the library defaults.
func (f *File) HeatmapOptions() (diskplot.HeatmapOptions, error) {
	opts := diskplot.DefaultHeatmapOptions()
	if f.ColorMap != "" {
		opts.ColorMap = f.ColorMap
	}
	if f.Bins > 0 {
		opts.Bins = f.Bins
	}
	if len(f.Labels) == 3 {
		opts.Labels = f.Labels
	}
	if f.Normalization != "" {
		norm, err := diskplot.ParseNormalization(f.Normalization)
		if err != nil {
			return opts, err
		}
		opts.Norm = norm
	}
	if f.Average != "" {
		avg, err := diskplot.ParseAverageAxis(f.Average)
		if err != nil {
			return opts, err
		}
		opts.Average = avg
	}
	if f.VMin != nil {
		opts.VMin = *f.VMin
	}
	if f.VMax != nil {
		opts.VMax = *f.VMax
	}
	if f.Range != nil {
		r := diskplot.Range{XMin: f.Range[0], XMax: f.Range[1], YMin: f.Range[2], YMax: f.Range[3]}
		if !r.Valid() {
			return opts, fmt.Errorf("style range [%g, %g] x [%g, %g] is empty", r.XMin, r.XMax, r.YMin, r.YMax)
		}
		opts.Range = &r
	}
	if f.ColorBarRect != nil {
		rect := *f.ColorBarRect
		opts.ColorBarRect = &rect
	}
	return opts, nil
}

// PolarOptions builds PolarContour/PolarHeatmap options from the style,
// starting from the library defaults.
func (f *File) PolarOptions() diskplot.PolarOptions {
	opts := diskplot.DefaultPolarOptions()
	if f.ColorMap != "" {
		opts.ColorMap = f.ColorMap
	}
	if f.Bins > 0 {
		opts.Bins = f.Bins
	}
	if f.Levels > 0 {
		opts.Levels = f.Levels
	}
	if f.BarLabel != "" {
		opts.Label = f.BarLabel
	}
	opts.BinPolar = f.BinPolar
	return opts
}
