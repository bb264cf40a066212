// Command sbbf builds, probes and sizes Parquet-compatible split block
// bloom filters.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sbbf"
)

type rootT struct {
	backend string
	verbose bool
}

func newRootCmd() *cobra.Command {
	r := &rootT{}
	root := &cobra.Command{
		Use:           "sbbf [command] (flags)",
		Short:         "split block bloom filter tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(
		&r.backend, "backend", "", "force a backend (generic, sse4.1, avx2, neon)")
	root.PersistentFlags().BoolVarP(
		&r.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newWhichCmd(r),
		newSizeCmd(),
		newFPRCmd(r),
		newBuildCmd(r),
		newProbeCmd(r),
	)
	return root
}

// filter returns the Filter selected by the global flags.
func (r *rootT) filter() (*sbbf.Filter, error) {
	var opts []sbbf.Option
	if r.verbose {
		opts = append(opts, sbbf.WithLogLevel(slog.LevelDebug))
	}
	if r.backend == "" {
		return sbbf.New(opts...), nil
	}
	return sbbf.NewWithBackend(r.backend, opts...)
}

func main() {
	cobra.EnableCommandSorting = false
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sbbf:", err)
		os.Exit(1)
	}
}
