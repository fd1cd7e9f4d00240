// Command ndrand-example prints lazily generated pseudorandom arrays.
//
//	ndrand-example uniform --shape 2,3 --seed 42 --lower 0 --upper 1
//	ndrand-example randint --shape 4,4 --seed 42 --lower 0 --upper 100
//	ndrand-example normal --shape 10 --seed 42 --mean 0 --stddev 1
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tilograf/ndrand"
)

var (
	shape []int
	seed  uint64
)

func main() {
	root := &cobra.Command{
		Use:           "ndrand-example",
		Short:         "generate pseudorandom arrays of a given shape",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntSliceVar(&shape, "shape", []int{2, 3}, "array shape, e.g. 2,3")
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "engine seed")

	root.AddCommand(uniformCmd(), randintCmd(), normalCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func uniformCmd() *cobra.Command {
	var lower, upper float64
	cmd := &cobra.Command{
		Use:   "uniform",
		Short: "uniformly distributed values in [lower, upper)",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ndrand.Rand(shape, lower, upper, ndrand.NewPCG(seed))
			if err != nil {
				return err
			}
			printRows(g.Materialize(), shape, "%.6f")
			return nil
		},
	}
	cmd.Flags().Float64Var(&lower, "lower", 0, "lower bound (inclusive)")
	cmd.Flags().Float64Var(&upper, "upper", 1, "upper bound (exclusive)")
	return cmd
}

func randintCmd() *cobra.Command {
	var lower, upper int64
	cmd := &cobra.Command{
		Use:   "randint",
		Short: "uniformly distributed integers in [lower, upper)",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ndrand.RandInt(shape, lower, upper, ndrand.NewPCG(seed))
			if err != nil {
				return err
			}
			printRows(g.Materialize(), shape, "%d")
			return nil
		},
	}
	cmd.Flags().Int64Var(&lower, "lower", 0, "lower bound (inclusive)")
	cmd.Flags().Int64Var(&upper, "upper", 100, "upper bound (exclusive)")
	return cmd
}

func normalCmd() *cobra.Command {
	var mean, stddev float64
	cmd := &cobra.Command{
		Use:   "normal",
		Short: "normally distributed values with given mean and stddev",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := ndrand.RandN(shape, mean, stddev, ndrand.NewPCG(seed))
			if err != nil {
				return err
			}
			printRows(g.Materialize(), shape, "%.6f")
			return nil
		},
	}
	cmd.Flags().Float64Var(&mean, "mean", 0, "mean")
	cmd.Flags().Float64Var(&stddev, "stddev", 1, "standard deviation")
	return cmd
}

// printRows prints a row-major materialized array one innermost row per line.
func printRows[T any](vals []T, shape []int, format string) {
	rowLen := 1
	if len(shape) > 0 {
		rowLen = shape[len(shape)-1]
	}
	for i := 0; i < len(vals); i += rowLen {
		cells := make([]string, 0, rowLen)
		for _, v := range vals[i : i+rowLen] {
			cells = append(cells, fmt.Sprintf(format, v))
		}
		fmt.Println(strings.Join(cells, " "))
	}
}
