// Command disk-plotter renders CSV sample sets of 2D disk data as polar or
// Cartesian heatmaps.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"disk-plotter/internal/dataio"
	"disk-plotter/internal/style"
	"disk-plotter/internal/version"
	"disk-plotter/pkg/diskplot"
)

func main() {
	input := flag.String("input", "", "Path to the sample CSV file")
	mode := flag.String("mode", "cartesian", "Plot mode: cartesian or polar")
	xcol := flag.String("x", "x", "x (or radius) column name or index")
	ycol := flag.String("y", "y", "y (or angle-in-degrees) column name or index")
	bins := flag.Int("bins", 0, "Histogram bins per axis (0 uses the style or default)")
	levels := flag.Int("levels", 0, "Polar contour levels (0 uses the style or default)")
	cmap := flag.String("cmap", "", "Colormap name (rainbow, hot, gray, bluered, ...)")
	norm := flag.String("norm", "", "Color normalization: none, linear, or log")
	vmin := flag.Float64("vmin", math.NaN(), "Lower color bound")
	vmax := flag.Float64("vmax", math.NaN(), "Upper color bound")
	average := flag.String("average", "", "Overdensity averaging axis: none, x, or y")
	histRange := flag.String("range", "", "Histogram/display range as xmin,xmax,ymin,ymax")
	binPolar := flag.Bool("binpolar", false, "Bin polar heatmaps directly in (angle, radius) space")
	styPath := flag.String("style", "", "Path to a .diskstyle file")
	output := flag.String("o", "disk.png", "Output image path (.png, .tif, or .tiff)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("disk-plotter %s (commit %s, built %s)\n",
			version.Version, version.GitCommit, version.BuildTime)
		return
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()

	if *input == "" {
		fmt.Println("Usage: disk-plotter -input <samples.csv> [-mode cartesian|polar] [-o out.png]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	a, b, err := dataio.LoadColumns(*input, *xcol, *ycol)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("loading samples failed")
	}
	log.Info().Int("samples", len(a)).Str("input", *input).Msg("samples loaded")

	sty := style.New("")
	if *styPath != "" {
		sty, err = style.Load(*styPath)
		if err != nil {
			log.Fatal().Err(err).Str("style", *styPath).Msg("loading style failed")
		}
		log.Debug().Str("style", *styPath).Msg("style loaded")
	}

	var fig interface{ Save(string) error }
	switch *mode {
	case "cartesian":
		opts, err := sty.HeatmapOptions()
		if err != nil {
			log.Fatal().Err(err).Msg("invalid style")
		}
		if err := applyHeatmapFlags(&opts, *bins, *cmap, *norm, *average, *vmin, *vmax, *histRange); err != nil {
			log.Fatal().Err(err).Msg("invalid flags")
		}
		hm, err := diskplot.CartesianHeatmap(a, b, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("building heatmap failed")
		}
		log.Debug().
			Float64("vmin", hm.VMin).
			Float64("vmax", hm.VMax).
			Bool("log", hm.Log).
			Msg("heatmap built")
		fig = hm.Figure

	case "polar":
		opts := sty.PolarOptions()
		if *bins > 0 {
			opts.Bins = *bins
		}
		if *levels > 0 {
			opts.Levels = *levels
		}
		if *cmap != "" {
			opts.ColorMap = *cmap
		}
		if *binPolar {
			opts.BinPolar = true
		}
		// In polar mode the x column holds radii and the y column angles.
		pp, err := diskplot.PolarHeatmap(a, b, opts)
		if err != nil {
			log.Fatal().Err(err).Msg("building polar heatmap failed")
		}
		fig = pp.Figure

	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode (want cartesian or polar)")
	}

	if err := fig.Save(*output); err != nil {
		log.Fatal().Err(err).Str("output", *output).Msg("saving figure failed")
	}
	log.Info().Str("output", *output).Msg("figure saved")
}

// applyHeatmapFlags overlays explicitly set command-line flags on top of the
// style-derived options.
func applyHeatmapFlags(opts *diskplot.HeatmapOptions, bins int, cmap, norm, average string, vmin, vmax float64, histRange string) error {
	if bins > 0 {
		opts.Bins = bins
	}
	if cmap != "" {
		opts.ColorMap = cmap
	}
	if norm != "" {
		n, err := diskplot.ParseNormalization(norm)
		if err != nil {
			return err
		}
		opts.Norm = n
	}
	if average != "" {
		a, err := diskplot.ParseAverageAxis(average)
		if err != nil {
			return err
		}
		opts.Average = a
	}
	if !math.IsNaN(vmin) {
		opts.VMin = vmin
	}
	if !math.IsNaN(vmax) {
		opts.VMax = vmax
	}
	if histRange != "" {
		r, err := parseRange(histRange)
		if err != nil {
			return err
		}
		opts.Range = r
	}
	return nil
}

// parseRange parses "xmin,xmax,ymin,ymax".
func parseRange(s string) (*diskplot.Range, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("range %q must have 4 comma-separated values", s)
	}
	var vals [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("range value %q: %w", part, err)
		}
		vals[i] = v
	}
	r := diskplot.Range{XMin: vals[0], XMax: vals[1], YMin: vals[2], YMax: vals[3]}
	if !r.Valid() {
		return nil, fmt.Errorf("range %q is empty", s)
	}
	return &r, nil
}
