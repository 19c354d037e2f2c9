/*
Command ropestat loads a text file as a rope and reports statistics about the
text and the shape of its tree.

	ropestat [flags] FILE

Optionally the text is wrapped to a line width and printed, and the tree
structure is written as a Graphviz DOT file.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"os"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

var opts statOptions

var rootCmd = &cobra.Command{
	Use:   "ropestat [flags] FILE",
	Short: "Report statistics of a text file loaded as a rope",
	Args:  cobra.ExactArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		gtrace.CoreTracer = gologadapter.New()
		if opts.debug {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
		} else {
			gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStat(cmd.OutOrStdout(), args[0], opts)
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVarP(&opts.wrap, "wrap", "w", 0, "print the text wrapped to a line width (-1: terminal width)")
	flags.StringVar(&opts.dot, "dot", "", "write the rope's tree in Graphviz DOT format to a file")
	flags.IntVar(&opts.fragment, "fragment", 0, "fragment size in bytes for loading (0: automatic)")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug tracing")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rope.T().P("cmd", "ropestat").Errorf("%v", err)
		os.Exit(1)
	}
}
