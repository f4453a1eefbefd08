// Package prover ties the engine together: the satisfiability oracle
// decides validity, forward chaining (with a resolution fallback)
// produces the derivation for valid arguments, and the countermodel is
// handed back for invalid ones.
package prover

import (
	"context"
	"time"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/resolution"
	"github.com/proof-framework/entail/pkg/logic/rules"
	"github.com/proof-framework/entail/pkg/logic/sat"
)

// SearchBudget bounds a single validation. Exceeding it yields a
// SearchTimeoutError, never a silent wrong answer.
type SearchBudget struct {
	// MaxIterations caps the number of formulas forward chaining may
	// derive. Zero means a bound proportional to the square of the
	// premise count.
	MaxIterations int

	// Timeout is the wall-clock limit for the whole validation. Zero
	// means no limit beyond the caller's context.
	Timeout time.Duration
}

// DefaultBudget is used when no budget option is supplied.
var DefaultBudget = SearchBudget{Timeout: 10 * time.Second}

// iterationFactor scales the default MaxIterations bound.
const iterationFactor = 64

func (b SearchBudget) maxIterations(numPremises int) int {
	if b.MaxIterations > 0 {
		return b.MaxIterations
	}
	n := numPremises + 1
	return iterationFactor * n * n
}

// Prover validates propositional arguments. It holds no per-request
// state and is safe for concurrent use.
type Prover struct {
	oracle *sat.Oracle
	engine *rules.Engine
	budget SearchBudget
	tracer Tracer

	oracleOptions []sat.Option
}

// Option configures a Prover.
type Option func(p *Prover) error

// WithBudget sets the search budget applied to every validation.
func WithBudget(b SearchBudget) Option {
	return func(p *Prover) error {
		p.budget = b
		return nil
	}
}

// WithTracer installs a tracer observing each validation phase.
func WithTracer(t Tracer) Option {
	return func(p *Prover) error {
		p.tracer = t
		return nil
	}
}

// WithOracleOptions forwards options to the satisfiability oracle.
func WithOracleOptions(options ...sat.Option) Option {
	return func(p *Prover) error {
		p.oracleOptions = append(p.oracleOptions, options...)
		return nil
	}
}

var defaults = []Option{
	func(p *Prover) error {
		if p.tracer == nil {
			p.tracer = DefaultTracer{}
		}
		if p.budget == (SearchBudget{}) {
			p.budget = DefaultBudget
		}
		return nil
	},
}

// New returns a Prover configured by the given options.
func New(options ...Option) (*Prover, error) {
	p := &Prover{}
	for _, option := range append(options, defaults...) {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	oracle, err := sat.New(p.oracleOptions...)
	if err != nil {
		return nil, err
	}
	p.oracle = oracle
	p.engine = rules.NewEngine()
	return p, nil
}

// Validate decides whether the argument's conclusion follows from its
// premises. A valid argument yields a derivation, an invalid one the
// lexicographically first countermodel. The result is deterministic for
// structurally identical arguments.
func (p *Prover) Validate(ctx context.Context, arg logic.Argument) (logic.ValidationResult, error) {
	if err := arg.Validate(); err != nil {
		return logic.ValidationResult{}, err
	}

	if p.budget.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.budget.Timeout)
		defer cancel()
	}

	// Validity is exactly unsatisfiability of premises ∧ ¬conclusion;
	// a witnessing assignment is a countermodel as-is.
	check := make([]logic.Formula, 0, len(arg.Premises)+1)
	check = append(check, arg.Premises...)
	check = append(check, logic.Not{F: arg.Conclusion})

	countermodel, found, err := p.oracle.FirstModel(ctx, check)
	if err != nil {
		return logic.ValidationResult{}, err
	}
	if found {
		p.tracer.OracleDecided(false, countermodel)
		return logic.InvalidResult(countermodel), nil
	}
	p.tracer.OracleDecided(true, nil)

	d, ok, err := p.engine.Derive(ctx, arg.Premises, arg.Conclusion, p.budget.maxIterations(len(arg.Premises)))
	if err != nil {
		return logic.ValidationResult{}, err
	}
	if !ok {
		// Saturation or bound exhaustion is not a verdict; the
		// argument is already known valid, so refutation closes.
		p.tracer.ChainingFailed()
		d, err = resolution.Derive(ctx, arg.Premises, arg.Conclusion)
		if err != nil {
			return logic.ValidationResult{}, err
		}
	}
	p.tracer.DerivationFound(d)
	return logic.ValidResult(d), nil
}
