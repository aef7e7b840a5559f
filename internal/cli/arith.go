package cli

import (
	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
	"github.com/spf13/cobra"
)

// arithOp is a binary fuzzy number operation exposed as a subcommand.
type arithOp struct {
	name  string
	short string
	apply func(a, b fuzzy.TriFuzzyNum) fuzzy.TriFuzzyNum
}

var (
	opAdd = arithOp{
		name:  "add",
		short: "Sum numbers component-wise",
		apply: fuzzy.TriFuzzyNum.Add,
	}
	opSub = arithOp{
		name:  "sub",
		short: "Subtract the following numbers from the first using interval bounds",
		apply: fuzzy.TriFuzzyNum.Sub,
	}
	opMul = arithOp{
		name:  "mul",
		short: "Multiply numbers component-wise",
		apply: fuzzy.TriFuzzyNum.Mul,
	}
)

func newArithCmd(op arithOp) *cobra.Command {
	return &cobra.Command{
		Use:   op.name + " <a> <b> [number...]",
		Short: op.short,
		Long:  "Fold the numbers from left to right: ((a " + op.name + " b) " + op.name + " c) ...",
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := requireNumbers(args, 2)
			if err != nil {
				return err
			}

			acc := nums[0]
			for _, n := range nums[1:] {
				next := op.apply(acc, n)
				log.Tracef("%s %s %s = %s", acc, op.name, n, next)
				acc = next
			}
			return writeResult(cmd.OutOrStdout(), result{Result: acc})
		},
	}
}
