package root

import (
	"github.com/spf13/cobra"

	"github.com/proof-framework/entail/cmd/check"

	"github.com/proof-framework/entail/cmd/prove"

	"github.com/proof-framework/entail/cmd/table"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "entail",
		Short: "Entail is a propositional logic proof engine",
		Long: `A deterministic propositional logic engine written in Go.
It checks whether a conclusion follows from a set of premises and
produces either a step-by-step derivation or a countermodel.`,
	}

	// add sub-commands
	rootCmd.AddCommand(prove.NewProveCommand())
	rootCmd.AddCommand(table.NewTableCommand())
	rootCmd.AddCommand(check.NewCheckCommand())

	return rootCmd
}
