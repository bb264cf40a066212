package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/hupe1980/sbbf"
	"github.com/hupe1980/sbbf/internal/mem"
)

func newSizeCmd() *cobra.Command {
	var (
		ndv uint64
		fpp float64
	)
	cmd := &cobra.Command{
		Use:   "size",
		Short: "compute the filter size for a distinct value count and target fpp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := sbbf.OptimalNumBytes(ndv, fpp)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "bytes:    %d\n", n)
			fmt.Fprintf(out, "buckets:  %d\n", n/sbbf.BucketSize)
			fmt.Fprintf(out, "bits/key: %.2f\n", float64(n)*8/float64(max(ndv, 1)))
			fmt.Fprintf(out, "fpr:      %.6f\n", sbbf.FalsePositiveRate(n, int(min(ndv, uint64(math.MaxInt)))))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&ndv, "ndv", 1_000_000, "number of distinct values")
	cmd.Flags().Float64Var(&fpp, "fpp", 0.01, "target false positive probability")
	return cmd
}

func newFPRCmd(r *rootT) *cobra.Command {
	var (
		keys    int
		measure bool
	)
	cmd := &cobra.Command{
		Use:   "fpr",
		Short: "print the false positive rate for a range of bits per key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := r.filter()
			if err != nil {
				return err
			}

			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			header := []string{"Bits/Key", "Bytes", "Model"}
			if measure {
				header = append(header, "Measured")
			}
			tbl.SetHeader(header)
			tbl.SetAlignment(tablewriter.ALIGN_RIGHT)

			for bpk := 4; bpk <= 32; bpk += 4 {
				n := sbbf.NumBytes(bpk, keys)
				row := []string{
					strconv.Itoa(bpk),
					strconv.Itoa(n),
					fmt.Sprintf("%.6f", sbbf.FalsePositiveRate(n, keys)),
				}
				if measure {
					rate, err := measureFPR(f, n, keys)
					if err != nil {
						return err
					}
					row = append(row, fmt.Sprintf("%.6f", rate))
				}
				tbl.Append(row)
			}
			tbl.Render()
			return nil
		},
	}
	cmd.Flags().IntVarP(&keys, "keys", "n", 100_000, "number of inserted keys")
	cmd.Flags().BoolVar(&measure, "measure", false, "also build a filter and measure the rate")
	return cmd
}

// measureFPR inserts numKeys synthetic keys and probes as many others.
func measureFPR(f *sbbf.Filter, numBytes, numKeys int) (float64, error) {
	b, err := sbbf.NewBuffer(mem.AllocAligned(numBytes))
	if err != nil {
		return 0, err
	}

	var key [8]byte
	hash := func(prefix byte, i int) uint64 {
		key[0] = prefix
		for j := 1; j < 8; j++ {
			key[j] = byte(i >> (8 * (j - 1)))
		}
		return xxhash.Sum64(key[:])
	}

	for i := 0; i < numKeys; i++ {
		f.InsertBuffer(b, hash('m', i))
	}
	hits := 0
	for i := 0; i < numKeys; i++ {
		if f.ContainsBuffer(b, hash('p', i)) {
			hits++
		}
	}
	return float64(hits) / float64(max(numKeys, 1)), nil
}
