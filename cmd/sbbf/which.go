package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/sbbf"
)

func newWhichCmd(r *rootT) *cobra.Command {
	return &cobra.Command{
		Use:   "which",
		Short: "print the selected and available backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := r.filter()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "selected:  %s\n", f.Which())
			fmt.Fprintf(cmd.OutOrStdout(), "available: %s\n", strings.Join(sbbf.Backends(), " "))
			return nil
		},
	}
}
