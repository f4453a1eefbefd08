package rules

import (
	"context"

	"github.com/proof-framework/entail/pkg/logic"
)

// Engine performs forward-chaining derivation search over the rule
// catalog.
type Engine struct {
	catalog []Rule
}

// NewEngine returns an Engine over the standard catalog.
func NewEngine() *Engine {
	return &Engine{catalog: Catalog()}
}

// Derive searches for a derivation of conclusion from premises using
// only the named rules. maxSteps bounds the number of formulas the
// search may add to the pool; exhausting it, or saturating the pool
// without reaching the conclusion, returns found=false. That outcome
// is not a verdict on validity, only a signal that no named-rule path
// was found within the bound. A context deadline surfaces as a
// SearchTimeoutError.
func (e *Engine) Derive(ctx context.Context, premises []logic.Formula, conclusion logic.Formula, maxSteps int) (logic.Derivation, bool, error) {
	steps := make(logic.Derivation, 0, len(premises))
	pool := make([]logic.Formula, 0, len(premises))
	visited := make(map[logic.Formula]struct{}, len(premises))
	for i, p := range premises {
		steps = append(steps, logic.ProofStep{Index: i, Formula: p, Rule: logic.RulePremise})
		pool = append(pool, p)
		visited[p] = struct{}{}
	}

	// A conclusion that restates a premise needs no rule application.
	for i, p := range premises {
		if p == conclusion {
			return concludeFromPremise(steps, i), true, nil
		}
	}

	derived := 0
	for {
		select {
		case <-ctx.Done():
			return nil, false, logic.SearchTimeoutError{Phase: "derivation search", Iterations: derived}
		default:
		}
		progress := false
		for _, rule := range e.catalog {
			for _, inf := range rule.Apply(pool, conclusion) {
				if _, ok := visited[inf.Formula]; ok {
					continue
				}
				if derived >= maxSteps {
					return nil, false, nil
				}
				derived++
				step := logic.ProofStep{
					Index:   len(steps),
					Formula: inf.Formula,
					Rule:    rule.Name,
					Refs:    inf.Refs,
				}
				steps = append(steps, step)
				pool = append(pool, inf.Formula)
				visited[inf.Formula] = struct{}{}
				progress = true
				if inf.Formula == conclusion {
					return steps.Pruned(len(premises)), true, nil
				}
			}
		}
		if !progress {
			return nil, false, nil
		}
	}
}

// concludeFromPremise builds the trivial derivation for a conclusion
// that already appears among the premises.
func concludeFromPremise(premiseSteps logic.Derivation, i int) logic.Derivation {
	if i == len(premiseSteps)-1 {
		return premiseSteps
	}
	d := make(logic.Derivation, len(premiseSteps), len(premiseSteps)+1)
	copy(d, premiseSteps)
	return append(d, logic.ProofStep{
		Index:   len(premiseSteps),
		Formula: premiseSteps[i].Formula,
		Rule:    Reiteration,
		Refs:    []int{i},
	})
}
