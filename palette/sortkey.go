package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/palette/colour"
)

// SortMode selects how the grid is ordered
type SortMode uint8

const (
	SortHSV SortMode = iota // hue, then saturation, then value
	SortHex                 // ascending "#rrggbb"
)

// hsvScale quantises each HSV channel to [0, hsvScale-1]
const hsvScale = 1000

func (m SortMode) String() string {
	switch m {
	case SortHSV:
		return "hsv"
	case SortHex:
		return "hex"
	default:
		return fmt.Sprintf("SortMode(%d)", uint8(m))
	}
}

// Toggle returns the other mode
func (m SortMode) Toggle() SortMode {
	if m == SortHSV {
		return SortHex
	}
	return SortHSV
}

// ParseSortMode accepts "hsv", "hex" and "rgb" (same ordering as hex)
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hsv", "":
		return SortHSV, nil
	case "hex", "rgb":
		return SortHex, nil
	default:
		return SortHSV, fmt.Errorf("unknown sort mode %q (want hsv or hex)", s)
	}
}

// HSVKey builds a 12-character key: H, S and V each scaled to [0,999]
// and written as 4 hex digits, so string order equals (H,S,V) tuple order
func HSVKey(e colour.Entry) string {
	h, s, v := e.HSV()
	return fmt.Sprintf("%04x%04x%04x", quantise(h), quantise(s), quantise(v))
}

// HexKey is the entry's own hex string
func HexKey(e colour.Entry) string {
	return e.Hex()
}

// Key returns the sort key of e under mode
func Key(mode SortMode, e colour.Entry) string {
	if mode == SortHex {
		return HexKey(e)
	}
	return HSVKey(e)
}

// Sort returns a new slice ordered by Key. Equal keys keep their input order.
func Sort(entries []colour.Entry, mode SortMode) []colour.Entry {
	type keyed struct {
		key string
		e   colour.Entry
	}
	ks := make([]keyed, len(entries))
	for i, e := range entries {
		ks[i] = keyed{Key(mode, e), e}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		return strings.Compare(a.key, b.key)
	})

	out := make([]colour.Entry, len(ks))
	for i, k := range ks {
		out[i] = k.e
	}
	return out
}

func quantise(x float64) int {
	n := int(x * hsvScale)
	if n < 0 {
		return 0
	}
	if n > hsvScale-1 {
		return hsvScale - 1
	}
	return n
}
