package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/width"

	"regexnfa/regexlib"
)

var header = []string{"#", "kind", "symbol", "next"}

// Table writes one aligned row per state. Columns are padded by terminal cell
// width so that wide literals keep the table straight.
func Table(w io.Writer, a *regexlib.Automaton) error {
	rows := [][]string{header}
	for i, s := range a.States {
		rows = append(rows, []string{
			strconv.Itoa(i),
			s.Kind.String(),
			regexlib.Label(s),
			regexlib.Target(s.Next),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], cellWidth(cell))
		}
	}

	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for c, cell := range row {
			if c > 0 {
				bw.WriteString("  ")
			}
			bw.WriteString(cell)
			if c < len(row)-1 {
				bw.WriteString(strings.Repeat(" ", widths[c]-cellWidth(cell)))
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// cellWidth is the number of monospace cells s occupies.
func cellWidth(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsGraphic(r) {
			continue
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianWide:
			n += 2
		default:
			n++
		}
	}
	return n
}
