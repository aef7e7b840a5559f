package cli

import (
	"fmt"

	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
	"github.com/spf13/cobra"
)

func newRankCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rank [number...]",
		Short: "Print the ranking index of each number",
		Long: `Print each number followed by its rank (centroid, precision, modal).
Numbers are compared by their ranks, first component first. Crisp numbers
are marked; their rank is (v, 1, v).`,
		Example: `  trifuzzy rank "(0, 1, 2)" 3`,
		RunE:    runRank,
	}
}

func runRank(cmd *cobra.Command, args []string) error {
	nums, err := requireNumbers(args, 1)
	if err != nil {
		return err
	}

	ranked := make([]rankedNumber, len(nums))
	for i, n := range nums {
		ranked[i] = rankedNumber{Number: n, Rank: fuzzy.RankOf(n), Crisp: n.IsCrisp()}
	}

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(out, ranked)
	}
	for _, r := range ranked {
		if r.Crisp {
			fmt.Fprintf(out, "%s\t%s\tcrisp\n", r.Number, r.Rank)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", r.Number, r.Rank)
	}
	return nil
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "compare <a> <b>",
		Short:   "Compare two numbers by rank",
		Example: `  trifuzzy compare "(1, 2, 3)" "(2, 3, 4)"`,
		Args:    cobra.ExactArgs(2),
		RunE:    runCompare,
	}
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := fuzzy.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := fuzzy.Parse(args[1])
	if err != nil {
		return err
	}

	c := comparison{Left: a, Right: b, Ordering: a.Compare(b).String()}
	debugf("rank %s vs %s", fuzzy.RankOf(a), fuzzy.RankOf(b))

	out := cmd.OutOrStdout()
	if flags.jsonMode {
		return writeJSON(out, c)
	}
	fmt.Fprintf(out, "%s %s %s\n", c.Left, c.Ordering, c.Right)
	return nil
}
