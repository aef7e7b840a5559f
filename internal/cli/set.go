package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
	"github.com/spf13/cobra"
)

func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [number...]",
		Short: "Print numbers in rank order",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := readNumbers(args)
			if err != nil {
				return err
			}
			set := fuzzy.NewSet(nums...)
			return writeNumbers(cmd.OutOrStdout(), set.Values())
		},
	}
}

func newMeanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mean [number...]",
		Short: "Print the component-wise arithmetic mean",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := readNumbers(args)
			if err != nil {
				return err
			}

			set := fuzzy.NewSet(nums...)
			mean, err := set.ArithmeticMean()
			if errors.Is(err, fuzzy.ErrEmptySet) {
				return fmt.Errorf("no numbers given: %w", err)
			}
			if err != nil {
				return err
			}

			debugf("mean of %s numbers", humanize.Comma(int64(set.Len())))
			return writeResult(cmd.OutOrStdout(), result{Result: mean, Count: set.Len()})
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <target> [number...]",
		Short: "Remove one number ranked equal to target and print the rest",
		Long: `Build a set from the numbers, remove one element whose rank equals the
rank of target, and print the remaining numbers in rank order. A target
that is not present leaves the set unchanged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := fuzzy.Parse(args[0])
			if err != nil {
				return err
			}
			nums, err := readNumbers(args[1:])
			if err != nil {
				return err
			}

			set := fuzzy.NewSet(nums...)
			if !set.Contains(target) {
				debugf("%s not present, set unchanged", target)
			}
			set.Remove(target)
			return writeNumbers(cmd.OutOrStdout(), set.Values())
		},
	}
}
