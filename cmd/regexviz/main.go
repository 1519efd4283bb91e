package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("regexviz")

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "regexviz",
		Short: "Build and inspect flat NFAs for regular expressions",
		Long: `regexviz compiles patterns into a flat NFA and prints it as a table,
a Graphviz digraph or JSON.

Pattern syntax: any rune is a literal, \ escapes the next rune, ε matches the
empty string, · matches any rune, ( ) group, | separates alternatives and a
postfix * repeats the preceding literal, wildcard or group.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity (repeatable)")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newManifestCmd())

	return rootCmd
}

func main() {
	// errors raised before PersistentPreRun still need a configured backend
	commonlog.Configure(0, nil)

	if err := newRootCmd().Execute(); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}
