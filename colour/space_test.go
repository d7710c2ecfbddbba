package colour

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func mustEntry(t *testing.T, r, g, b int) Entry {
	t.Helper()
	e, err := FromComponents(r, g, b, "test")
	if err != nil {
		t.Fatalf("FromComponents(%d,%d,%d): %v", r, g, b, err)
	}
	return e
}

func near(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		h, s, v float64
	}{
		{"Red", 255, 0, 0, 0, 1, 1},
		{"Yellow", 255, 255, 0, 1.0 / 6, 1, 1},
		{"Green", 0, 255, 0, 1.0 / 3, 1, 1},
		{"Blue", 0, 0, 255, 2.0 / 3, 1, 1},
		{"Magenta", 255, 0, 255, 5.0 / 6, 1, 1},
		{"Black", 0, 0, 0, 0, 0, 0},
		{"White", 255, 255, 255, 0, 0, 1},
		{"Grey", 128, 128, 128, 0, 0, 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := mustEntry(t, tt.r, tt.g, tt.b).HSV()
			if !near(h, tt.h) || !near(s, tt.s) || !near(v, tt.v) {
				t.Errorf("HSV() = (%f,%f,%f), want (%f,%f,%f)", h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestHSVBounds(t *testing.T) {
	for r := 0; r < 256; r += 17 {
		for g := 0; g < 256; g += 17 {
			for b := 0; b < 256; b += 17 {
				h, s, v := mustEntry(t, r, g, b).HSV()
				for _, x := range []float64{h, s, v} {
					if x < 0 || x > 1 {
						t.Fatalf("HSV of (%d,%d,%d) = (%f,%f,%f) outside [0,1]", r, g, b, h, s, v)
					}
				}
				if h >= 1 {
					t.Fatalf("hue of (%d,%d,%d) = %f, want < 1", r, g, b, h)
				}
			}
		}
	}
}

// HLS is a real HLS transform and must not repeat the HSV values
func TestHLS(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		h, l, s float64
	}{
		{"Red", 255, 0, 0, 0, 0.5, 1},
		{"Green", 0, 255, 0, 1.0 / 3, 0.5, 1},
		{"Blue", 0, 0, 255, 2.0 / 3, 0.5, 1},
		{"Black", 0, 0, 0, 0, 0, 0},
		{"White", 255, 255, 255, 0, 1, 0},
		{"Dark red", 128, 0, 0, 0, 64.0 / 255, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, l, s := mustEntry(t, tt.r, tt.g, tt.b).HLS()
			if !near(h, tt.h) || !near(l, tt.l) || !near(s, tt.s) {
				t.Errorf("HLS() = (%f,%f,%f), want (%f,%f,%f)", h, l, s, tt.h, tt.l, tt.s)
			}
		})
	}
}

func TestYIQ(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		y, i, q float64
	}{
		{"Black", 0, 0, 0, 0, 0, 0},
		{"White", 255, 255, 255, 1, 0, 0},
		{"Red", 255, 0, 0, 0.30, 0.599, 0.213},
		{"Green", 0, 255, 0, 0.59, -0.2773, -0.5251},
		{"Blue", 0, 0, 255, 0.11, -0.3217, 0.3121},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, i, q := mustEntry(t, tt.r, tt.g, tt.b).YIQ()
			if math.Abs(y-tt.y) > 1e-4 || math.Abs(i-tt.i) > 1e-4 || math.Abs(q-tt.q) > 1e-4 {
				t.Errorf("YIQ() = (%f,%f,%f), want (%f,%f,%f)", y, i, q, tt.y, tt.i, tt.q)
			}
		})
	}
}

func TestTextForms(t *testing.T) {
	red := mustEntry(t, 255, 0, 0)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"RGB", red.RGBText(), "R: 255  G: 0  B: 0"},
		{"HSV", red.HSVText(), "H: 0.0000  S: 1.0000  V: 1.0000"},
		{"HLS", red.HLSText(), "H: 0.0000  L: 0.5000  S: 1.0000"},
		{"YIQ", red.YIQText(), "Y: 0.3000  I: 0.5990  Q: 0.2130"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
