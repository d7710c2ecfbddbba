package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/lixenwraith/palette/palette"
)

// dump writes "#rrggbb<TAB>name, name" per entry in sort order
func dump(w io.Writer, table *palette.Table, mode palette.SortMode) error {
	bw := bufio.NewWriter(w)
	for _, e := range palette.Sort(table.Entries(), mode) {
		bw.WriteString(e.Hex())
		bw.WriteByte('\t')
		bw.WriteString(strings.Join(e.Names(), ", "))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
