package diskplot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"disk-plotter/pkg/geometry"
)

// defaultMainRect is the normalized canvas region of the main axes, leaving a
// strip on the right for the colorbar.
var defaultMainRect = geometry.NewRect(0, 0, 0.86, 1)

// defaultBarRect is the normalized canvas region of the colorbar when no
// explicit location is given.
var defaultBarRect = geometry.NewRect(0.87, 0.06, 0.1, 0.88)

// Figure lays out a plot and an optional colorbar on a single canvas.
// Each plotting call creates a fresh Figure unless the caller passes one in.
type Figure struct {
	// Plot holds the main axes.
	Plot *plot.Plot
	// Bar holds the colorbar axes; nil when the figure has no colorbar.
	Bar *plot.Plot
	// MainRect and BarRect position the two plots in normalized canvas
	// coordinates, origin at the bottom-left.
	MainRect geometry.Rect
	BarRect  geometry.Rect
	// Width and Height give the canvas size.
	Width, Height vg.Length
	// DPI is the raster resolution used by Image and Save.
	DPI int
}

// NewFigure creates a figure of the given size with fresh main axes and no
// colorbar.
func NewFigure(width, height vg.Length) *Figure {
	return &Figure{
		Plot:     plot.New(),
		MainRect: defaultMainRect,
		BarRect:  defaultBarRect,
		Width:    width,
		Height:   height,
		DPI:      96,
	}
}

// Draw renders the figure onto a drawing canvas.
func (f *Figure) Draw(dc draw.Canvas) {
	f.Plot.Draw(f.crop(dc, f.MainRect))
	if f.Bar != nil {
		f.Bar.Draw(f.crop(dc, f.BarRect))
	}
}

// crop restricts the canvas to a normalized sub-rectangle.
func (f *Figure) crop(dc draw.Canvas, r geometry.Rect) draw.Canvas {
	size := dc.Rectangle.Size()
	w, h := size.X, size.Y
	left := vg.Length(r.X) * w
	right := vg.Length(r.X+r.Width-1) * w
	bottom := vg.Length(r.Y) * h
	top := vg.Length(r.Y+r.Height-1) * h
	return draw.Crop(dc, left, right, bottom, top)
}

// Image rasterizes the figure.
func (f *Figure) Image() image.Image {
	dpi := f.DPI
	if dpi <= 0 {
		dpi = 96
	}
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(dpi))
	f.Draw(draw.New(c))
	return c.Image()
}

// Save rasterizes the figure and writes it to path. The encoding follows the
// file extension: .png, .tif, or .tiff.
func (f *Figure) Save(path string) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save figure: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("save figure: %w", cerr)
		}
	}()

	img := f.Image()
	switch ext := filepath.Ext(path); ext {
	case ".png":
		err = png.Encode(out, img)
	case ".tif", ".tiff":
		err = tiff.Encode(out, img, nil)
	default:
		err = fmt.Errorf("unsupported figure format %q (want .png, .tif, or .tiff)", ext)
	}
	return err
}

// addColorBar attaches a labeled colorbar to the figure. The bar gets its own
// axes so it can be positioned independently of the main plot.
func (f *Figure) addColorBar(bar *plotter.ColorBar, label string, log bool) {
	bp := plot.New()
	bp.Add(bar)
	bp.HideX()
	bp.Y.Padding = 0
	bp.Y.Label.Text = label
	if log {
		bp.Y.Scale = plot.LogScale{}
		bp.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	f.Bar = bp
}
