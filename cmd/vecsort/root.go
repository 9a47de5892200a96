package main

import (
	"fmt"
	"strconv"

	"github.com/kabu1204/go-vector/arraylist"
	"github.com/kabu1204/go-vector/quicksort"
	"github.com/kabu1204/go-vector/types"
	"github.com/spf13/cobra"
)

type flags struct {
	reverse   bool
	distinct  bool
	parallel  int
	threshold int
	capacity  int
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "vecsort [flags] N...",
		Short:         "Sorts integers with an in-place quicksort",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(args, f.capacity)
			if err != nil {
				return err
			}
			a, err = sortInts(a, f)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), a)
			return err
		},
	}
	cmd.Flags().BoolVarP(&f.reverse, "reverse", "r", false, "sort descending")
	cmd.Flags().BoolVarP(&f.distinct, "distinct", "d", false, "drop repeated values before sorting")
	cmd.Flags().IntVarP(&f.parallel, "parallel", "p", 0, "number of workers sorting partitions")
	cmd.Flags().IntVar(&f.threshold, "threshold", 0, "smallest range split for parallel workers")
	cmd.Flags().IntVar(&f.capacity, "capacity", 0, "initial capacity of the array")
	return cmd
}

func load(args []string, capacity int) (*arraylist.Array[int], error) {
	a, err := arraylist.NewWithCapacity(capacity, arraylist.WithComparator(types.Natural[int]()))
	if err != nil {
		return nil, err
	}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %v", arg, err)
		}
		a.Append(n)
	}
	return a, nil
}

func sortInts(a *arraylist.Array[int], f flags) (*arraylist.Array[int], error) {
	opts := []quicksort.Option{quicksort.WithParallelism(f.parallel)}
	if f.threshold > 0 {
		opts = append(opts, quicksort.WithThreshold(f.threshold))
	}
	if f.distinct {
		a = a.Distinct(func(n int) int { return n })
	}
	if f.reverse {
		return a, a.SortFunc(types.Reverse(a.Comparator()), opts...)
	}
	return a, a.Sort(opts...)
}
