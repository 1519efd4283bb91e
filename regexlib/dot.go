package regexlib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ExportDOT writes a Graphviz representation of a to w.
func ExportDOT(w io.Writer, a *Automaton) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	fmt.Fprintf(bw, "    label=%s;\n", strconv.Quote(a.Pattern))
	fmt.Fprintln(bw, "    accept [shape=doublecircle];")

	for i, s := range a.States {
		shape := "circle"
		if s.Kind == Jump {
			shape = "point"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", i, shape)

		to := "accept"
		if s.Next != Accept {
			to = "q" + strconv.Itoa(s.Next)
		}
		fmt.Fprintf(bw, "    q%d -> %s [label=%s];\n", i, to, strconv.Quote(Label(s)))

		// jumps of one run share a branch point
		if s.Kind == Jump && i+1 < len(a.States) && a.States[i+1].Kind == Jump {
			fmt.Fprintf(bw, "    q%d -> q%d [style=dotted, arrowhead=none];\n", i, i+1)
		}
	}
	if len(a.States) > 0 {
		fmt.Fprintln(bw, "    _start [shape=point]; _start -> q0;")
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
