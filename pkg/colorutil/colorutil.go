// Package colorutil provides shared color utilities for building colormaps.
package colorutil

import (
	"image/color"
	"math"
)

// HSVToRGB converts HSV (H in degrees 0-360, S and V in 0-1) to RGB in 0-1.
func HSVToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}

	h = math.Mod(h/60, 6)
	if h < 0 {
		h += 6
	}
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch int(i) {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}

// RGBToHSV converts RGB in 0-1 to HSV (H in degrees 0-360, S and V in 0-1).
func RGBToHSV(r, g, b float64) (h, s, v float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	diff := maxC - minC

	v = maxC

	if maxC == 0 {
		s = 0
	} else {
		s = diff / maxC
	}

	if diff == 0 {
		h = 0
	} else if maxC == r {
		h = 60 * math.Mod((g-b)/diff, 6)
	} else if maxC == g {
		h = 60 * ((b-r)/diff + 2)
	} else {
		h = 60 * ((r-g)/diff + 4)
	}

	if h < 0 {
		h += 360
	}

	return h, s, v
}

// Lerp linearly interpolates between two colors, t in [0, 1].
func Lerp(c1, c2 color.Color, t float64) color.Color {
	if t <= 0 {
		return c1
	}
	if t >= 1 {
		return c2
	}

	r1, g1, b1, a1 := c1.RGBA()
	r2, g2, b2, a2 := c2.RGBA()
	mix := func(a, b uint32) uint8 {
		return uint8((float64(a)*(1-t) + float64(b)*t) / 257)
	}
	return color.RGBA{
		R: mix(r1, r2),
		G: mix(g1, g2),
		B: mix(b1, b2),
		A: mix(a1, a2),
	}
}

// Gradient expands a sequence of anchor colors to n colors by linear
// interpolation between neighbours.
func Gradient(anchors []color.Color, n int) []color.Color {
	if n <= 0 || len(anchors) == 0 {
		return nil
	}
	out := make([]color.Color, n)
	if len(anchors) == 1 || n == 1 {
		for i := range out {
			out[i] = anchors[0]
		}
		return out
	}

	segments := float64(len(anchors) - 1)
	for i := range out {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(anchors)-1 {
			seg = len(anchors) - 2
		}
		out[i] = Lerp(anchors[seg], anchors[seg+1], pos-float64(seg))
	}
	return out
}
