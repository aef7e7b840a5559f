package cli

import (
	"fmt"

	"github.com/mesh-intelligence/trifuzzy/pkg/fuzzy"
	"github.com/spf13/cobra"
)

const modulePath = "github.com/mesh-intelligence/trifuzzy"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the trifuzzy version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "trifuzzy v%s\nmodule: %s\n", fuzzy.Version, modulePath)
			return nil
		},
	}
}
