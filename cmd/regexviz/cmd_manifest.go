package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"regexnfa/internal/manifest"
	"regexnfa/internal/render"
)

func newManifestCmd() *cobra.Command {
	var (
		formatName string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "manifest <file>",
		Short: "Build every pattern named in a manifest file",
		Long: `Build every pattern of a manifest file. Each entry has the form

    name = "pattern";

and // comments are allowed. With --out-dir every automaton is written to
<out-dir>/<name>.<ext>; otherwise all of them are printed in turn.

Entries that fail are reported and the remaining ones are still built. The
command fails if any entry failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(formatName)
			if err != nil {
				return err
			}

			f, err := manifest.Load(args[0])
			if err != nil {
				return err
			}

			if outDir != "" {
				if err := os.MkdirAll(outDir, 0o755); err != nil {
					return fmt.Errorf("create out dir: %w", err)
				}
			}

			results := f.Compile()
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), r.Err)
					continue
				}
				write := func(w io.Writer) error { return render.Write(w, r.Automaton, format) }
				if outDir != "" {
					path := filepath.Join(outDir, r.Entry.Name+"."+format.Ext())
					if err := writeOutput(out, path, write); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintf(out, "# %s = %q\n", r.Entry.Name, r.Entry.Pattern)
				if err := write(out); err != nil {
					return err
				}
			}

			if n := manifest.Failed(results); n > 0 {
				return fmt.Errorf("%d of %d entries failed", n, len(results))
			}
			log.Infof("%s: %d entries built", args[0], len(results))
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "table", "output format (table, dot, json)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write one file per entry into this directory")

	return cmd
}
