// Package cnf converts formulas to conjunctive normal form. The clause
// representation is shared by the satisfiability search and the
// resolution refutation engine.
//
// Conversion eliminates ↔ and →, pushes negation to the atoms, and
// distributes ∨ over ∧ directly. No auxiliary variables are introduced:
// arguments in this domain are small, and keeping every clause a plain
// disjunction of the argument's own atoms keeps resolution traces
// readable.
package cnf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/proof-framework/entail/pkg/logic"
)

// Literal is an atom or its negation.
type Literal struct {
	Atom    string
	Negated bool
}

// Complement returns the literal with the opposite sign.
func (l Literal) Complement() Literal {
	return Literal{Atom: l.Atom, Negated: !l.Negated}
}

func (l Literal) String() string {
	if l.Negated {
		return "¬" + l.Atom
	}
	return l.Atom
}

// Formula returns the literal as a logic.Formula.
func (l Literal) Formula() logic.Formula {
	if l.Negated {
		return logic.Not{F: logic.Atom(l.Atom)}
	}
	return logic.Atom(l.Atom)
}

// Clause is a disjunction of literals, kept normalized: sorted by atom
// name with the positive literal first, duplicates removed. The empty
// clause is unsatisfiable.
type Clause []Literal

// NewClause returns the normalized clause over the given literals.
func NewClause(lits ...Literal) Clause {
	c := make(Clause, len(lits))
	copy(c, lits)
	sort.Slice(c, func(i, j int) bool {
		if c[i].Atom != c[j].Atom {
			return c[i].Atom < c[j].Atom
		}
		return !c[i].Negated && c[j].Negated
	})
	out := c[:0]
	for i, l := range c {
		if i > 0 && l == c[i-1] {
			continue
		}
		out = append(out, l)
	}
	return out
}

// IsEmpty reports whether the clause has no literals.
func (c Clause) IsEmpty() bool { return len(c) == 0 }

// IsTautology reports whether the clause contains an atom together with
// its negation.
func (c Clause) IsTautology() bool {
	for i := 1; i < len(c); i++ {
		if c[i].Atom == c[i-1].Atom && c[i].Negated != c[i-1].Negated {
			return true
		}
	}
	return false
}

// Contains reports whether the clause holds the given literal.
func (c Clause) Contains(l Literal) bool {
	for _, m := range c {
		if m == l {
			return true
		}
	}
	return false
}

// Key returns a canonical string usable for clause deduplication.
// Normalization makes it injective over distinct clauses.
func (c Clause) Key() string {
	return c.String()
}

func (c Clause) String() string {
	if len(c) == 0 {
		return "⊥"
	}
	parts := make([]string, len(c))
	for i, l := range c {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ∨ ")
}

// Formula renders the clause back into the formula model as a
// right-nested disjunction. It panics on the empty clause, which has no
// formula rendering.
func (c Clause) Formula() logic.Formula {
	if len(c) == 0 {
		panic("empty clause has no formula form")
	}
	f := c[len(c)-1].Formula()
	for i := len(c) - 2; i >= 0; i-- {
		f = logic.Or{L: c[i].Formula(), R: f}
	}
	return f
}

// Convert returns the CNF clause set of f. Tautological clauses are
// dropped; a contradiction converts to the single empty clause.
func Convert(f logic.Formula) []Clause {
	raw := distribute(nnf(f, false))
	out := make([]Clause, 0, len(raw))
	for _, c := range raw {
		if !c.IsTautology() {
			out = append(out, c)
		}
	}
	return out
}

// ConvertAll converts each formula and concatenates the clause sets,
// deduplicating identical clauses while preserving first-occurrence
// order.
func ConvertAll(fs ...logic.Formula) []Clause {
	seen := make(map[string]struct{})
	var out []Clause
	for _, f := range fs {
		for _, c := range Convert(f) {
			key := c.Key()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, c)
		}
	}
	return out
}

// nnfNode is negation normal form: literals at the leaves, only ∧ and ∨
// above them.
type nnfNode interface{ isNNF() }

type nnfLit Literal

type nnfAnd struct{ l, r nnfNode }

type nnfOr struct{ l, r nnfNode }

func (nnfLit) isNNF() {}
func (nnfAnd) isNNF() {}
func (nnfOr) isNNF()  {}

// nnf rewrites f into negation normal form; neg tracks whether f occurs
// under an odd number of negations.
func nnf(f logic.Formula, neg bool) nnfNode {
	switch f := f.(type) {
	case logic.Atom:
		return nnfLit{Atom: string(f), Negated: neg}
	case logic.Not:
		return nnf(f.F, !neg)
	case logic.And:
		if neg {
			return nnfOr{nnf(f.L, true), nnf(f.R, true)}
		}
		return nnfAnd{nnf(f.L, false), nnf(f.R, false)}
	case logic.Or:
		if neg {
			return nnfAnd{nnf(f.L, true), nnf(f.R, true)}
		}
		return nnfOr{nnf(f.L, false), nnf(f.R, false)}
	case logic.Implies:
		// L → R ≡ ¬L ∨ R
		if neg {
			return nnfAnd{nnf(f.L, false), nnf(f.R, true)}
		}
		return nnfOr{nnf(f.L, true), nnf(f.R, false)}
	case logic.Iff:
		// L ↔ R ≡ (L → R) ∧ (R → L)
		if neg {
			return nnfOr{
				nnfAnd{nnf(f.L, false), nnf(f.R, true)},
				nnfAnd{nnf(f.L, true), nnf(f.R, false)},
			}
		}
		return nnfAnd{
			nnfOr{nnf(f.L, true), nnf(f.R, false)},
			nnfOr{nnf(f.L, false), nnf(f.R, true)},
		}
	default:
		panic(fmt.Sprintf("unknown formula variant %T", f))
	}
}

// distribute turns an NNF tree into clauses by distributing ∨ over ∧.
func distribute(n nnfNode) []Clause {
	switch n := n.(type) {
	case nnfLit:
		return []Clause{NewClause(Literal(n))}
	case nnfAnd:
		return append(distribute(n.l), distribute(n.r)...)
	case nnfOr:
		left := distribute(n.l)
		right := distribute(n.r)
		out := make([]Clause, 0, len(left)*len(right))
		for _, cl := range left {
			for _, cr := range right {
				merged := make([]Literal, 0, len(cl)+len(cr))
				merged = append(merged, cl...)
				merged = append(merged, cr...)
				out = append(out, NewClause(merged...))
			}
		}
		return out
	default:
		panic(fmt.Sprintf("unknown nnf node %T", n))
	}
}
