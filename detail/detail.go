// Package detail builds the per-colour information view: every representation
// of one entry as labelled rows, each with its own clipboard payload.
package detail

import "github.com/lixenwraith/palette/colour"

// Field is one row of the detail view
type Field struct {
	Label string // empty for continuation rows of the name list
	Text  string
	Copy  string // clipboard payload when the row is activated
}

// Labels used by the representation rows
const (
	LabelNames = "Names:"
	LabelHex   = "HTML colour:"
	LabelRGB   = "RGB:"
	LabelHSV   = "HSV:"
	LabelYIQ   = "YIQ:"
	LabelHLS   = "HLS:"
)

// Title is the popup caption, e.g. "#ff0000 - Info"
func Title(e colour.Entry) string {
	return e.Hex() + " - Info"
}

// Fields lists the names first, then hex, RGB, HSV, YIQ and HLS
func Fields(e colour.Entry) []Field {
	names := e.Names()
	out := make([]Field, 0, len(names)+5)

	for i, n := range names {
		label := ""
		if i == 0 {
			label = LabelNames
		}
		out = append(out, Field{Label: label, Text: n, Copy: n})
	}

	hex := e.Hex()
	out = append(out,
		Field{Label: LabelHex, Text: hex, Copy: hex},
		textField(LabelRGB, e.RGBText()),
		textField(LabelHSV, e.HSVText()),
		textField(LabelYIQ, e.YIQText()),
		textField(LabelHLS, e.HLSText()),
	)
	return out
}

func textField(label, text string) Field {
	return Field{Label: label, Text: text, Copy: text}
}

// LabelWidth is the widest label, used to align the text column
func LabelWidth(fields []Field) int {
	w := 0
	for _, f := range fields {
		w = max(w, len(f.Label))
	}
	return w
}
