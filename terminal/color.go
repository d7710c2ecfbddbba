package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// ParseColorMode accepts "auto", "256", "truecolor" and its aliases "true", "24bit".
// "auto" and the empty string run detection.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return DetectColorMode(), nil
	case "256":
		return ColorMode256, nil
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor, nil
	default:
		return ColorMode256, fmt.Errorf("unknown color mode %q (want auto, 256 or truecolor)", s)
	}
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// cubeIndex maps 0-255 to the nearest cube level 0-5
func cubeIndex(v int) int {
	best := 0
	for j := 1; j < len(cubeValues); j++ {
		if abs(v-cubeValues[j]) < abs(v-cubeValues[best]) {
			best = j
		}
	}
	return best
}

// RGBTo256 finds the nearest xterm-256 palette index.
// Near-neutral colours are checked against the grayscale ramp as well as the cube.
func RGBTo256(r, g, b uint8) uint8 {
	ri, gi, bi := int(r), int(g), int(b)
	cr, cg, cb := cubeIndex(ri), cubeIndex(gi), cubeIndex(bi)
	cube := 16 + 36*cr + 6*cg + cb

	gray := (ri + gi + bi) / 3
	if max(abs(ri-gray), abs(gi-gray), abs(bi-gray)) >= 10 {
		return uint8(cube)
	}

	// Ramp 232-255 covers levels 8, 18, ..., 238; black and white live in the cube
	if gray < 4 || gray > 243 {
		return uint8(cube)
	}
	grayIdx := min(grayscaleStart+(gray-8)/10, 255)
	if grayIdx < grayscaleStart {
		grayIdx = grayscaleStart
	}
	level := 8 + (grayIdx-grayscaleStart)*10

	grayDist := abs(ri-level) + abs(gi-level) + abs(bi-level)
	cubeDist := abs(ri-cubeValues[cr]) + abs(gi-cubeValues[cg]) + abs(bi-cubeValues[cb])
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return uint8(cube)
}

// Color converts an RGB triple into a tcell colour suited to the mode
func Color(mode ColorMode, r, g, b uint8) tcell.Color {
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(RGBTo256(r, g, b)))
}
