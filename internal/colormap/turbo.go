// Package colormap renders scalar values in [0,1] as display colors using
// a polynomial approximation of the turbo colormap. Catalog entries for
// one diameter block share a hue ramp so neighbouring variants are easy
// to tell apart in the simulation tool's network view.
package colormap

import (
	"fmt"
	"math"
)

// Turbo returns the turbo colormap value at x as r, g, b components in
// [0,1]. x is clamped to [0,1]. Fifth-order polynomial fit of the
// original turbo lookup table.
func Turbo(x float64) (r, g, b float64) {
	x = clamp(x)

	r = 0.13572138 + x*(4.61539260+x*(-42.66032258+x*(132.13108234+x*(-152.94239396+x*59.28637943))))
	g = 0.09140261 + x*(2.19418839+x*(4.84296658+x*(-14.18503333+x*(4.27729857+x*2.82956604))))
	b = 0.10667330 + x*(12.64194608+x*(-60.58204836+x*(110.36276771+x*(-89.90310912+x*27.34824973))))

	return clamp(r), clamp(g), clamp(b)
}

// Hex formats r, g, b components in [0,1] as a "#rrggbb" string.
func Hex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(r), toByte(g), toByte(b))
}

// TurboHex is the composition of Turbo and Hex.
func TurboHex(x float64) string {
	return Hex(Turbo(x))
}

func clamp(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v) * 255))
}
