package table

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/parse"
)

func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "table <formula>",
		Short: "Prints the truth table of a formula",
		Long: `Prints the truth table of a formula, rows in the engine's
enumeration order: atoms ordered by first occurrence, false before
true. For instance:

  entail table "P -> Q"
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func run(input string) error {
	f, err := parse.Formula(input)
	if err != nil {
		return fmt.Errorf("could not interpret formula: %w", err)
	}

	atoms := logic.Atoms(f)
	w := tabwriter.NewWriter(os.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", strings.Join(atoms, "\t"), f)

	n := len(atoms)
	asg := make(logic.Assignment, n)
	for row := uint64(0); row < 1<<uint(n); row++ {
		cells := make([]string, n)
		for i, name := range atoms {
			v := row&(1<<uint(n-1-i)) != 0
			asg[name] = v
			cells[i] = cell(v)
		}
		v, err := f.Eval(asg)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", strings.Join(cells, "\t"), cell(v))
	}
	return w.Flush()
}

func cell(v bool) string {
	if v {
		return "T"
	}
	return "F"
}
