// pkg/render/color.go
package render

import (
	"image/color"
	"math"
)

// Fade returns c as a non-premultiplied color with alpha scaled by k.
func Fade(c color.RGBA, k float64) color.NRGBA {
	k = math.Max(0, math.Min(1, k))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * k)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Channels returns c in [0, 1] with alpha scaled by k.
func Channels(c color.RGBA, k float64) (r, g, b, a float32) {
	f := Fade(c, k)
	return float32(f.R) / 255, float32(f.G) / 255, float32(f.B) / 255, float32(f.A) / 255
}
