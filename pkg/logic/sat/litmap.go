package sat

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/cnf"
)

// Solver outcomes reported by gini.
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// litMapping translates between the argument's named atoms and the
// literals of the underlying CNF solver.
type litMapping struct {
	order []string
	lits  map[string]z.Lit
}

func newLitMapping(atoms []string) *litMapping {
	m := &litMapping{
		order: atoms,
		lits:  make(map[string]z.Lit, len(atoms)),
	}
	for i, name := range atoms {
		// gini variables are numbered from 1.
		m.lits[name] = z.Var(i + 1).Pos()
	}
	return m
}

// LitOf returns the positive solver literal for the named atom.
func (m *litMapping) LitOf(atom string) z.Lit {
	return m.lits[atom]
}

// AddClauses teaches the clause set to the solver.
func (m *litMapping) AddClauses(g *gini.Gini, clauses []cnf.Clause) {
	for _, c := range clauses {
		for _, l := range c {
			lit := m.LitOf(l.Atom)
			if l.Negated {
				lit = lit.Not()
			}
			g.Add(lit)
		}
		g.Add(z.LitNull)
	}
}

// firstModelCNF decides satisfiability on the gini solver, then fixes
// atoms one at a time in enumeration order, preferring false, so the
// model handed back is the same one direct enumeration would produce.
func (o *Oracle) firstModelCNF(ctx context.Context, fs []logic.Formula, atoms []string) (logic.Assignment, bool, error) {
	clauses := cnf.ConvertAll(fs...)
	for _, c := range clauses {
		if c.IsEmpty() {
			return nil, false, nil
		}
	}

	m := newLitMapping(atoms)
	g := gini.New()
	m.AddClauses(g, clauses)

	switch g.Solve() {
	case satisfiable:
	case unsatisfiable:
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("unexpected solver outcome")
	}

	// Walk the atoms in lexicographic order, pinning each to false
	// when some model extends the pinned prefix that way, otherwise to
	// true. Satisfiability of each extension is already known from the
	// previous round's check, so every Solve call below is consistent.
	fixed := make([]z.Lit, 0, len(atoms))
	asg := make(logic.Assignment, len(atoms))
	for _, name := range atoms {
		select {
		case <-ctx.Done():
			return nil, false, logic.SearchTimeoutError{Phase: "satisfiability search"}
		default:
		}
		lit := m.LitOf(name)
		g.Assume(fixed...)
		g.Assume(lit.Not())
		if g.Solve() == satisfiable {
			fixed = append(fixed, lit.Not())
			asg[name] = false
		} else {
			fixed = append(fixed, lit)
			asg[name] = true
		}
	}
	return asg, true, nil
}
