package main

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"
)

func newProbeCmd(r *rootT) *cobra.Command {
	return &cobra.Command{
		Use:   "probe <filter-file> <keys>",
		Short: "look up keys in a filter file",
		Long: `
Look up keys in a filter written by "sbbf build" or taken from a Parquet
file. Prints "maybe" for keys that may be present and "absent" for keys
that are definitely not.
`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := r.filter()
			if err != nil {
				return err
			}
			b, err := readFilter(args[0])
			if err != nil {
				return err
			}

			for _, key := range args[1:] {
				result := "absent"
				if f.ContainsBuffer(b, xxhash.Sum64String(key)) {
					result = "maybe"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", key, result)
			}
			return nil
		},
	}
}
