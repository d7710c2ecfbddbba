package colour

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// YIQ coefficients (FCC NTSC), same matrix as Python's colorsys
const (
	yiqYR, yiqYG, yiqYB = 0.30, 0.59, 0.11
	yiqIR, yiqIB        = 0.74, -0.27
	yiqQR, yiqQB        = 0.48, 0.41
)

// Colorful returns the entry as a go-colorful value with channels in [0,1]
func (e Entry) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(e.Red) / 255.0,
		G: float64(e.Green) / 255.0,
		B: float64(e.Blue) / 255.0,
	}
}

// RGB returns the components as ints
func (e Entry) RGB() (r, g, b int) {
	return int(e.Red), int(e.Green), int(e.Blue)
}

// HSV returns hue, saturation and value, each in [0,1]. Greys have hue 0.
func (e Entry) HSV() (h, s, v float64) {
	h, s, v = e.Colorful().Hsv()
	return h / 360.0, s, v
}

// HLS returns hue, lightness and saturation, each in [0,1]
func (e Entry) HLS() (h, l, s float64) {
	h, s, l = e.Colorful().Hsl()
	return h / 360.0, l, s
}

// YIQ returns luma and the two chroma components for channels in [0,1].
// Y is in [0,1]; I and Q are signed.
func (e Entry) YIQ() (y, i, q float64) {
	c := e.Colorful()
	y = yiqYR*c.R + yiqYG*c.G + yiqYB*c.B
	i = yiqIR*(c.R-y) + yiqIB*(c.B-y)
	q = yiqQR*(c.R-y) + yiqQB*(c.B-y)
	return y, i, q
}

// RGBText formats as "R: 255  G: 0  B: 0"
func (e Entry) RGBText() string {
	return fmt.Sprintf("R: %d  G: %d  B: %d", e.Red, e.Green, e.Blue)
}

func (e Entry) HSVText() string {
	h, s, v := e.HSV()
	return fmt.Sprintf("H: %.4f  S: %.4f  V: %.4f", h, s, v)
}

func (e Entry) YIQText() string {
	y, i, q := e.YIQ()
	return fmt.Sprintf("Y: %.4f  I: %.4f  Q: %.4f", y, i, q)
}

func (e Entry) HLSText() string {
	h, l, s := e.HLS()
	return fmt.Sprintf("H: %.4f  L: %.4f  S: %.4f", h, l, s)
}
