package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"regexnfa/regexlib"
)

func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <pattern>",
		Short: "Print the symbols of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			syms, err := regexlib.Scan(args[0])
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, sym := range syms {
				line := fmt.Sprintf("%d\t%s\t%s", sym.Pos, sym.Type, strconv.QuoteRune(sym.Ch))
				if sym.Star {
					line += "\tstarred"
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
