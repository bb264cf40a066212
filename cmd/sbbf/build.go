package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/hupe1980/sbbf"
	"github.com/hupe1980/sbbf/internal/mem"
)

type buildT struct {
	root       *rootT
	output     string
	fpp        float64
	bitsPerKey int
	workers    int
}

func newBuildCmd(r *rootT) *cobra.Command {
	b := &buildT{root: r}
	cmd := &cobra.Command{
		Use:   "build [key-files]",
		Short: "build a filter from newline separated keys",
		Long: `
Build a filter from newline separated keys read from the given files, or
from stdin when no file is given. Each key is hashed with 64-bit xxHash, as
Parquet writers do, and the raw filter bitset is written to --output.
`,
		RunE: b.run,
	}
	cmd.Flags().StringVarP(&b.output, "output", "o", "", "output file (required)")
	cmd.Flags().Float64Var(&b.fpp, "fpp", 0.01, "target false positive probability")
	cmd.Flags().IntVar(&b.bitsPerKey, "bits-per-key", 0, "size by bits per key instead of --fpp")
	cmd.Flags().IntVarP(&b.workers, "workers", "w", 0, "insert goroutines (0 means GOMAXPROCS)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func (b *buildT) run(cmd *cobra.Command, args []string) error {
	f, err := b.root.filter()
	if err != nil {
		return err
	}

	var hashes []uint64
	if len(args) == 0 {
		if hashes, err = readHashes(cmd.InOrStdin(), hashes); err != nil {
			return err
		}
	}
	for _, name := range args {
		if hashes, err = readHashesFile(name, hashes); err != nil {
			return err
		}
	}

	size := sbbf.OptimalNumBytes(uint64(len(hashes)), b.fpp)
	if b.bitsPerKey > 0 {
		size = sbbf.NumBytes(b.bitsPerKey, len(hashes))
	}
	buf, err := sbbf.NewBuffer(mem.AllocAligned(size))
	if err != nil {
		return err
	}

	present, err := f.InsertParallel(context.Background(), buf, hashes, b.workers)
	if err != nil {
		return err
	}
	if err := os.WriteFile(b.output, buf.Bytes(), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d keys (%d already present), %d bytes, %d buckets, backend %s\n",
		b.output, len(hashes), present, buf.Len(), buf.NumBuckets(), f.Which())
	return nil
}

func readHashesFile(name string, hashes []uint64) ([]uint64, error) {
	file, err := os.Open(name)
	if err != nil {
		return hashes, err
	}
	defer file.Close()
	return readHashes(file, hashes)
}

// readHashes appends the xxHash of every line in r.
func readHashes(r io.Reader, hashes []uint64) ([]uint64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64<<10), 16<<20)
	for sc.Scan() {
		hashes = append(hashes, xxhash.Sum64(sc.Bytes()))
	}
	return hashes, sc.Err()
}

// readFilter loads a filter file into a 64-byte aligned buffer.
func readFilter(name string) (sbbf.Buffer, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return sbbf.Buffer{}, err
	}
	buf := mem.AllocAligned(len(data))
	copy(buf, data)

	b, err := sbbf.NewBuffer(buf)
	if err != nil {
		return sbbf.Buffer{}, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
