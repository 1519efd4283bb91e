package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"regexnfa/internal/render"
	"regexnfa/regexlib"
)

func newBuildCmd() *cobra.Command {
	var (
		formatName string
		output     string
		nfc        bool
	)

	cmd := &cobra.Command{
		Use:   "build <pattern>",
		Short: "Build the automaton of a pattern",
		Long: `Build the automaton of a single pattern and print it.

The default output is a table with one row per state. Use --format dot for a
Graphviz digraph and --format json for a machine readable document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatName)
			if err != nil {
				return err
			}

			pattern := args[0]
			if nfc {
				pattern = norm.NFC.String(pattern)
			}

			a, err := regexlib.Build(pattern)
			if err != nil {
				return fmt.Errorf("build: %w", err)
			}
			log.Infof("%q: %d states", pattern, len(a.States))

			return writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
				return render.Write(w, a, format)
			})
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "table", "output format (table, dot, json)")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&nfc, "nfc", false, "normalise the pattern to NFC before building")

	return cmd
}
