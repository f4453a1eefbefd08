// Package resolution derives a proof by refutation when forward
// chaining over the named rules fails. The premises and the negated
// conclusion are converted to clause form and resolved pairwise until
// the empty clause appears; the refutation is then folded back into a
// derivation whose steps stay within the premises' own consequences, so
// the result re-checks like any other proof.
package resolution

import (
	"context"
	"fmt"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/cnf"
	"github.com/proof-framework/entail/pkg/logic/rules"
)

// node is one clause in the refutation arena: an input clause tagged
// with the premise it came from (or the negated conclusion), or a
// resolvent tagged with its two parents.
type node struct {
	clause  cnf.Clause
	premise int  // source premise index; -1 for resolvents and negated-conclusion clauses
	fromNeg bool // descends from the negated conclusion
	parents [2]int
}

// Derive builds a derivation of conclusion from premises by resolution
// refutation. It must only be called once the argument is known valid:
// on a valid argument the refutation always closes, and failure to
// close is reported as an internal error rather than a verdict.
func Derive(ctx context.Context, premises []logic.Formula, conclusion logic.Formula) (logic.Derivation, error) {
	arena, err := refute(ctx, premises, conclusion)
	if err != nil {
		return nil, err
	}
	return buildDerivation(arena, premises, conclusion)
}

// refute saturates the clause arena until the empty clause appears. The
// returned slice ends with the empty clause.
func refute(ctx context.Context, premises []logic.Formula, conclusion logic.Formula) ([]node, error) {
	var arena []node
	seen := make(map[string]int)

	addInput := func(c cnf.Clause, premise int, fromNeg bool) {
		if _, ok := seen[c.Key()]; ok {
			return
		}
		seen[c.Key()] = len(arena)
		arena = append(arena, node{clause: c, premise: premise, fromNeg: fromNeg, parents: [2]int{-1, -1}})
	}

	for i, p := range premises {
		for _, c := range cnf.Convert(p) {
			addInput(c, i, false)
		}
	}
	for _, c := range cnf.Convert(logic.Not{F: conclusion}) {
		addInput(c, -1, true)
	}

	for {
		select {
		case <-ctx.Done():
			return nil, logic.SearchTimeoutError{Phase: "resolution refutation"}
		default:
		}
		grew := false
		// Pairwise pass over the arena as it stood at the start of
		// the round; resolvents join the next round.
		size := len(arena)
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				for _, r := range resolve(arena[i].clause, arena[j].clause) {
					if r.IsTautology() {
						continue
					}
					if _, ok := seen[r.Key()]; ok {
						continue
					}
					seen[r.Key()] = len(arena)
					arena = append(arena, node{
						clause:  r,
						premise: -1,
						fromNeg: arena[i].fromNeg || arena[j].fromNeg,
						parents: [2]int{i, j},
					})
					grew = true
					if r.IsEmpty() {
						return arena, nil
					}
				}
			}
		}
		if !grew {
			return nil, fmt.Errorf("resolution saturated without refutation; argument was not valid")
		}
	}
}

// resolve returns every resolvent of a and b, one per complementary
// literal pair.
func resolve(a, b cnf.Clause) []cnf.Clause {
	var out []cnf.Clause
	for _, la := range a {
		if !b.Contains(la.Complement()) {
			continue
		}
		merged := make([]cnf.Literal, 0, len(a)+len(b)-2)
		for _, l := range a {
			if l != la {
				merged = append(merged, l)
			}
		}
		comp := la.Complement()
		for _, l := range b {
			if l != comp {
				merged = append(merged, l)
			}
		}
		out = append(out, cnf.NewClause(merged...))
	}
	return out
}

// buildDerivation folds the refutation into a derivation. Only clauses
// untouched by the negated conclusion can appear as proof steps; they
// are consequences of the premises alone. The final step asserts the
// conclusion and cites them: together with the negated conclusion they
// resolved to the empty clause, so they entail the conclusion.
func buildDerivation(arena []node, premises []logic.Formula, conclusion logic.Formula) (logic.Derivation, error) {
	empty := len(arena) - 1

	support := make([]bool, len(arena))
	var mark func(int)
	mark = func(i int) {
		if support[i] {
			return
		}
		support[i] = true
		if arena[i].parents[0] >= 0 {
			mark(arena[i].parents[0])
			mark(arena[i].parents[1])
		}
	}
	mark(empty)

	steps := make(logic.Derivation, 0, len(premises))
	for i, p := range premises {
		steps = append(steps, logic.ProofStep{Index: i, Formula: p, Rule: logic.RulePremise})
	}

	// stepOf maps arena indices of premise-descended support clauses to
	// derivation step indices.
	stepOf := make(map[int]int)
	appendStep := func(f logic.Formula, refs []int) int {
		idx := len(steps)
		steps = append(steps, logic.ProofStep{Index: idx, Formula: f, Rule: rules.Resolution, Refs: refs})
		return idx
	}

	for i, n := range arena {
		if !support[i] || n.fromNeg || i == empty {
			continue
		}
		f := n.clause.Formula()
		if n.premise >= 0 {
			// An input clause restating its premise verbatim needs no
			// step of its own.
			if f == premises[n.premise] {
				stepOf[i] = n.premise
				continue
			}
			stepOf[i] = appendStep(f, []int{n.premise})
		} else {
			stepOf[i] = appendStep(f, []int{stepOf[n.parents[0]], stepOf[n.parents[1]]})
		}
		// A premise-descended clause equal to the conclusion already
		// finishes the proof.
		if f == conclusion {
			return steps.Pruned(len(premises)), nil
		}
	}

	var finalRefs []int
	if e := arena[empty]; !e.fromNeg {
		// The premises alone are contradictory; the conclusion follows
		// from the two clauses that closed the refutation.
		finalRefs = []int{stepOf[e.parents[0]], stepOf[e.parents[1]]}
	} else {
		seen := make(map[int]struct{})
		for i, n := range arena {
			if !support[i] || n.fromNeg {
				continue
			}
			ref := stepOf[i]
			if _, ok := seen[ref]; ok {
				continue
			}
			seen[ref] = struct{}{}
			finalRefs = append(finalRefs, ref)
		}
		if len(finalRefs) == 0 {
			// The conclusion is a tautology; any premise entails it.
			finalRefs = []int{0}
		}
	}

	appendStep(conclusion, finalRefs)
	return steps.Pruned(len(premises)), nil
}
