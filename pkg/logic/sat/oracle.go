// Package sat decides satisfiability of formula sets and produces
// witnessing assignments.
//
// The externally observable contract is deterministic: the model
// returned is always the first satisfying assignment in lexicographic
// order over the atoms sorted by first occurrence, false before true.
// Small atom counts are decided by direct enumeration; beyond a
// configurable limit the search switches to a CNF encoding on the gini
// solver, steered so that it lands on the same model enumeration would
// find.
package sat

import (
	"context"
	"sync"

	"github.com/proof-framework/entail/pkg/logic"
)

// DefaultEnumerationLimit is the largest atom count decided by direct
// truth-table enumeration before the search switches to the CNF solver.
const DefaultEnumerationLimit = 16

// ctxCheckInterval is how many assignments are evaluated between
// context deadline checks during enumeration.
const ctxCheckInterval = 1 << 10

// Oracle decides satisfiability of formula sets. The zero value is not
// usable; construct with New.
type Oracle struct {
	enumerationLimit int
	parallelism      int
}

// Option configures an Oracle.
type Option func(o *Oracle) error

// WithEnumerationLimit sets the atom count above which the oracle uses
// the CNF solver instead of direct enumeration.
func WithEnumerationLimit(n int) Option {
	return func(o *Oracle) error {
		o.enumerationLimit = n
		return nil
	}
}

// WithParallelism sets the number of workers used to scan the
// assignment space during enumeration. The deterministic first-model
// contract holds regardless: workers scan disjoint ranges and the
// lowest-index model wins.
func WithParallelism(n int) Option {
	return func(o *Oracle) error {
		o.parallelism = n
		return nil
	}
}

var defaults = []Option{
	func(o *Oracle) error {
		if o.enumerationLimit == 0 {
			o.enumerationLimit = DefaultEnumerationLimit
		}
		if o.parallelism == 0 {
			o.parallelism = 1
		}
		return nil
	},
}

// New returns an Oracle configured by the given options.
func New(options ...Option) (*Oracle, error) {
	o := &Oracle{}
	for _, option := range append(options, defaults...) {
		if err := option(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// FirstModel returns the lexicographically first assignment satisfying
// every formula in fs, or found=false if the set is unsatisfiable. The
// assignment is total over the atoms of fs. A context deadline surfaces
// as a SearchTimeoutError.
func (o *Oracle) FirstModel(ctx context.Context, fs []logic.Formula) (model logic.Assignment, found bool, err error) {
	if len(fs) == 0 {
		// Vacuously satisfiable.
		return logic.Assignment{}, true, nil
	}
	atoms := logic.Atoms(fs...)
	if len(atoms) > o.enumerationLimit {
		return o.firstModelCNF(ctx, fs, atoms)
	}
	return o.firstModelEnum(ctx, fs, atoms)
}

// firstModelEnum scans all 2^n assignments in lexicographic order.
func (o *Oracle) firstModelEnum(ctx context.Context, fs []logic.Formula, atoms []string) (logic.Assignment, bool, error) {
	total := uint64(1) << uint(len(atoms))
	workers := o.parallelism
	if workers <= 1 || total < 4*ctxCheckInterval {
		idx, found, err := scanRange(ctx, fs, atoms, 0, total)
		if err != nil || !found {
			return nil, false, err
		}
		return assignmentAt(atoms, idx), true, nil
	}

	// Split the space into one contiguous range per worker; each
	// reports the lowest satisfying index in its range and the global
	// minimum wins, which is exactly the assignment sequential
	// enumeration would return.
	chunk := total / uint64(workers)
	type result struct {
		idx   uint64
		found bool
		err   error
	}
	results := make([]result, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := uint64(w) * chunk
		hi := lo + chunk
		if w == workers-1 {
			hi = total
		}
		wg.Add(1)
		go func(w int, lo, hi uint64) {
			defer wg.Done()
			idx, found, err := scanRange(ctx, fs, atoms, lo, hi)
			results[w] = result{idx: idx, found: found, err: err}
		}(w, lo, hi)
	}
	wg.Wait()

	best := uint64(0)
	bestFound := false
	for _, r := range results {
		if r.err != nil {
			return nil, false, r.err
		}
		if r.found && (!bestFound || r.idx < best) {
			best = r.idx
			bestFound = true
		}
	}
	if !bestFound {
		return nil, false, nil
	}
	return assignmentAt(atoms, best), true, nil
}

// scanRange evaluates assignments lo (inclusive) to hi (exclusive) and
// returns the first index satisfying every formula.
func scanRange(ctx context.Context, fs []logic.Formula, atoms []string, lo, hi uint64) (uint64, bool, error) {
	asg := make(logic.Assignment, len(atoms))
	for idx := lo; idx < hi; idx++ {
		if (idx-lo)%ctxCheckInterval == 0 {
			select {
			case <-ctx.Done():
				return 0, false, logic.SearchTimeoutError{Phase: "satisfiability search"}
			default:
			}
		}
		bindAt(asg, atoms, idx)
		ok := true
		for _, f := range fs {
			v, err := f.Eval(asg)
			if err != nil {
				return 0, false, err
			}
			if !v {
				ok = false
				break
			}
		}
		if ok {
			return idx, true, nil
		}
	}
	return 0, false, nil
}

// bindAt writes the idx-th lexicographic assignment into asg: the first
// atom is the most significant bit, a zero bit means false.
func bindAt(asg logic.Assignment, atoms []string, idx uint64) {
	n := len(atoms)
	for i, name := range atoms {
		asg[name] = idx&(1<<uint(n-1-i)) != 0
	}
}

func assignmentAt(atoms []string, idx uint64) logic.Assignment {
	asg := make(logic.Assignment, len(atoms))
	bindAt(asg, atoms, idx)
	return asg
}
