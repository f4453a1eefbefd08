package prove

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/parse"
	"github.com/proof-framework/entail/pkg/logic/prover"
)

type options struct {
	premises      []string
	conclusion    string
	verbose       bool
	timeout       time.Duration
	maxIterations int
}

func NewProveCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "prove -p <premise> [-p <premise> ...] -c <conclusion>",
		Short: "Checks whether a conclusion follows from a set of premises",
		Long: `Checks whether a conclusion follows from a set of premises and
prints either a step-by-step derivation citing named inference rules
or a countermodel. Formulas use the connectives:

  negation       ¬ or ~
  conjunction    ∧ or &
  disjunction    ∨ or |
  implication    → or ->
  biconditional  ↔ or <->

For instance:

  entail prove -p "P -> Q" -p "P" -c "Q"
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().StringArrayVarP(&opts.premises, "premise", "p", nil, "a premise formula (repeatable)")
	cmd.Flags().StringVarP(&opts.conclusion, "conclusion", "c", "", "the conclusion formula")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "trace the search phases")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "wall-clock budget for the search")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", 0, "derivation search iteration budget")
	_ = cmd.MarkFlagRequired("conclusion")
	return cmd
}

func run(opts *options) error {
	arg, err := parse.Argument(opts.premises, opts.conclusion)
	if err != nil {
		var terr logic.TranslationError
		if errors.As(err, &terr) {
			return fmt.Errorf("could not interpret argument: %w", err)
		}
		return err
	}

	proverOpts := []prover.Option{
		prover.WithBudget(prover.SearchBudget{
			MaxIterations: opts.maxIterations,
			Timeout:       opts.timeout,
		}),
	}
	if opts.verbose {
		proverOpts = append(proverOpts, prover.WithTracer(prover.LoggingTracer{Writer: os.Stderr}))
	}
	p, err := prover.New(proverOpts...)
	if err != nil {
		return err
	}

	result, err := p.Validate(context.Background(), arg)
	if err != nil {
		var timeout logic.SearchTimeoutError
		if errors.As(err, &timeout) {
			return fmt.Errorf("argument too complex to analyze within limits: %w", err)
		}
		return err
	}

	Render(os.Stdout, arg, result)
	return nil
}
