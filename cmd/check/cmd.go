package check

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/parse"
	"github.com/proof-framework/entail/pkg/logic/prover"
)

// Case is one catalog entry: an argument together with its expected
// verdict, and optionally the rule expected on the final derivation
// step or atom bindings expected in the countermodel.
type Case struct {
	Name         string          `yaml:"name"`
	Premises     []string        `yaml:"premises"`
	Conclusion   string          `yaml:"conclusion"`
	Valid        bool            `yaml:"valid"`
	Rule         string          `yaml:"rule,omitempty"`
	Countermodel map[string]bool `yaml:"countermodel,omitempty"`
}

// Catalog is the file format consumed by the check command.
type Catalog struct {
	Cases []Case `yaml:"cases"`
}

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
)

func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <catalog.yaml>",
		Short: "Runs a YAML catalog of arguments against the engine",
		Long: `Runs every argument in a YAML catalog and compares the engine's
verdict against the expected one. The catalog format:

  cases:
    - name: modus ponens
      premises: ["P -> Q", "P"]
      conclusion: "Q"
      valid: true
      rule: "Modus Ponens"        # optional, expected rule of the last step
    - name: affirming the consequent
      premises: ["P -> Q", "Q"]
      conclusion: "P"
      valid: false
      countermodel: {P: false, Q: true}   # optional, expected bindings
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func run(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading catalog (%s): %w", path, err)
	}
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("error parsing catalog (%s): %w", path, err)
	}
	if len(catalog.Cases) == 0 {
		return fmt.Errorf("catalog (%s) has no cases", path)
	}

	p, err := prover.New()
	if err != nil {
		return err
	}

	failures := 0
	for _, c := range catalog.Cases {
		if reason := runCase(p, c); reason != "" {
			failColor.Printf("FAIL  %s: %s\n", c.Name, reason)
			failures++
		} else {
			passColor.Printf("PASS  %s\n", c.Name)
		}
	}
	fmt.Printf("%d/%d cases passed\n", len(catalog.Cases)-failures, len(catalog.Cases))
	if failures > 0 {
		return fmt.Errorf("%d case(s) failed", failures)
	}
	return nil
}

// runCase returns an empty string when the case passes, otherwise the
// reason it failed.
func runCase(p *prover.Prover, c Case) string {
	arg, err := parse.Argument(c.Premises, c.Conclusion)
	if err != nil {
		return fmt.Sprintf("could not interpret argument: %v", err)
	}
	result, err := p.Validate(context.Background(), arg)
	if err != nil {
		return err.Error()
	}
	if result.Valid != c.Valid {
		return fmt.Sprintf("expected valid=%t, got valid=%t", c.Valid, result.Valid)
	}
	if c.Valid {
		if err := result.Derivation.Check(arg.Premises, arg.Conclusion); err != nil {
			return fmt.Sprintf("derivation does not check: %v", err)
		}
		if c.Rule != "" {
			last := result.Derivation[len(result.Derivation)-1]
			if last.Rule != c.Rule {
				return fmt.Sprintf("expected final rule %q, got %q", c.Rule, last.Rule)
			}
		}
		return ""
	}
	for atom, want := range c.Countermodel {
		got, ok := result.Countermodel[atom]
		if !ok {
			return fmt.Sprintf("countermodel has no binding for %s", atom)
		}
		if got != want {
			return fmt.Sprintf("expected countermodel %s=%t, got %t", atom, want, got)
		}
	}
	if !c.Valid {
		if err := checkCountermodel(arg, result.Countermodel); err != nil {
			return err.Error()
		}
	}
	return ""
}

// checkCountermodel re-verifies that the countermodel makes every
// premise true and the conclusion false.
func checkCountermodel(arg logic.Argument, counter logic.Assignment) error {
	for i, premise := range arg.Premises {
		v, err := premise.Eval(counter)
		if err != nil {
			return err
		}
		if !v {
			return fmt.Errorf("countermodel does not satisfy premise %d (%s)", i+1, premise)
		}
	}
	v, err := arg.Conclusion.Eval(counter)
	if err != nil {
		return err
	}
	if v {
		return fmt.Errorf("countermodel satisfies the conclusion (%s)", arg.Conclusion)
	}
	return nil
}
