package diskplot

import (
	"fmt"
	"image/color"
	"strings"

	"disk-plotter/pkg/colorutil"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/palette/moreland"
)

// PaletteByName returns a named colormap with the requested number of colors.
// Recognized names are "rainbow", "hot", "gray", "bluered", "kindlmann", and
// any ColorBrewer sequential palette name (e.g. "YlGnBu"). Brewer palettes
// ship at most 9 base colors; larger requests are met by interpolating
// between them.
func PaletteByName(name string, colors int) (palette.Palette, error) {
	if colors < 2 {
		return nil, fmt.Errorf("colormap %q needs at least 2 colors, got %d", name, colors)
	}
	switch strings.ToLower(name) {
	case "rainbow":
		return palette.Rainbow(colors, palette.Blue, palette.Red, 1, 1, 1), nil
	case "hot":
		return palette.Heat(colors, 1), nil
	case "gray", "grey":
		return grayScale(colors), nil
	case "bluered", "coolwarm":
		return moreland.SmoothBlueRed().Palette(colors), nil
	case "kindlmann":
		return moreland.Kindlmann().Palette(colors), nil
	}

	n := colors
	if n < 3 {
		n = 3
	}
	if n > 9 {
		n = 9
	}
	pal, err := brewer.GetPalette(brewer.TypeSequential, name, n)
	if err != nil {
		return nil, fmt.Errorf("unknown colormap %q (want rainbow, hot, gray, bluered, kindlmann, or a ColorBrewer sequential name)", name)
	}
	if colors <= n {
		return pal, nil
	}
	return fixedPalette(colorutil.Gradient(pal.Colors(), colors)), nil
}

// grayScale is a linear grayscale palette.
type grayScale int

func (g grayScale) Colors() []color.Color {
	cols := make([]color.Color, int(g))
	for i := range cols {
		v := uint8(255 * i / (int(g) - 1))
		cols[i] = color.Gray{Y: v}
	}
	return cols
}
