// @focus: #model { colour }
package colour

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var (
	// ErrComponentRange is returned when a component is outside [0,255]
	ErrComponentRange = errors.New("colour component out of range")
	// ErrHexDigits is returned when a hex component is not one or two hex digits
	ErrHexDigits = errors.New("invalid hex digits")
	// ErrNoName is returned when an entry would be created without any name
	ErrNoName = errors.New("colour has no name")
)

// Entry is one distinct RGB triple and every name that maps to it.
// The zero value is black with no names; entries are built through
// FromComponents or FromHexDigits and never modified afterwards.
type Entry struct {
	Red, Green, Blue uint8

	// kept in display order, see sortNames
	names []string
}

// FromComponents builds an entry from decimal components in [0,255]
func FromComponents(r, g, b int, names ...string) (Entry, error) {
	for _, c := range [3]int{r, g, b} {
		if c < 0 || c > 255 {
			return Entry{}, fmt.Errorf("%w: %d", ErrComponentRange, c)
		}
	}
	return newEntry(uint8(r), uint8(g), uint8(b), names)
}

// FromHexDigits builds an entry from three hex strings of one or two digits each, e.g. "ff", "0", "9A"
func FromHexDigits(rh, gh, bh string, names ...string) (Entry, error) {
	var c [3]uint8
	for i, s := range [3]string{rh, gh, bh} {
		v, err := hexComponent(s)
		if err != nil {
			return Entry{}, err
		}
		c[i] = v
	}
	return newEntry(c[0], c[1], c[2], names)
}

// ParseHex decodes a canonical "#rrggbb" string, the inverse of Entry.Hex
func ParseHex(s string) (r, g, b uint8, err error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrHexDigits, s)
	}
	if r, err = hexComponent(s[1:3]); err != nil {
		return 0, 0, 0, err
	}
	if g, err = hexComponent(s[3:5]); err != nil {
		return 0, 0, 0, err
	}
	if b, err = hexComponent(s[5:7]); err != nil {
		return 0, 0, 0, err
	}
	return r, g, b, nil
}

func hexComponent(s string) (uint8, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrHexDigits, s)
	}
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrHexDigits, s)
	}
	return uint8(v), nil
}

func newEntry(r, g, b uint8, names []string) (Entry, error) {
	e := Entry{Red: r, Green: g, Blue: b}
	for _, n := range names {
		e.names = appendName(e.names, n)
	}
	if len(e.names) == 0 {
		return Entry{}, fmt.Errorf("%w: %s", ErrNoName, e.Hex())
	}
	return e, nil
}

// Hex returns the lowercase "#rrggbb" form, which also serves as the table key
func (e Entry) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", e.Red, e.Green, e.Blue)
}

// String implements fmt.Stringer
func (e Entry) String() string {
	return e.Hex()
}

// Names returns a copy of the name set, ordered case-insensitively
func (e Entry) Names() []string {
	return slices.Clone(e.names)
}

// HasName reports whether name is in the set, compared exactly
func (e Entry) HasName(name string) bool {
	return slices.Contains(e.names, name)
}

// WithName returns a copy of e with name added to its name set.
// e itself is left untouched.
func (e Entry) WithName(name string) Entry {
	out := e
	out.names = appendName(slices.Clone(e.names), name)
	return out
}

// SameRGB reports whether both entries describe the same triple
func (e Entry) SameRGB(o Entry) bool {
	return e.Red == o.Red && e.Green == o.Green && e.Blue == o.Blue
}

// appendName inserts name keeping the slice deduplicated and in display order
func appendName(names []string, name string) []string {
	name = strings.TrimSpace(name)
	if name == "" || slices.Contains(names, name) {
		return names
	}
	names = append(names, name)
	sortNames(names)
	return names
}

// sortNames orders names by case-folded form, falling back to byte order
// so "Red" and "red" always land in the same relative position
func sortNames(names []string) {
	fold := cases.Fold()
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(fold.String(a), fold.String(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}
