package logic

import (
	"fmt"
	"strings"
)

// Formula is a propositional formula over named atoms. Implementations
// are immutable value types: two formulas are structurally equal exactly
// when they compare equal with ==, which makes Formula usable as a map
// key for deduplication during proof search.
type Formula interface {
	// Eval returns the truth value of the formula under a, or an
	// UnboundAtomError if a omits an atom occurring in the formula.
	Eval(a Assignment) (bool, error)

	// String returns a canonical rendering using the connectives
	// ¬ ∧ ∨ → ↔. It is intended for display and debugging only;
	// equality is structural, never textual.
	String() string

	appendAtoms(order []string, seen map[string]struct{}) []string
	precedence() int
}

// Connective precedence, loosest first. Used only for rendering.
const (
	precIff = iota + 1
	precImplies
	precOr
	precAnd
	precNot
	precAtom
)

// Atom is a single named boolean variable. Names are case-sensitive and
// denote the same variable everywhere they appear within an argument.
type Atom string

// Not is the negation of a formula.
type Not struct {
	F Formula
}

// And is the conjunction of two formulas.
type And struct {
	L, R Formula
}

// Or is the disjunction of two formulas.
type Or struct {
	L, R Formula
}

// Implies is the material conditional L → R.
type Implies struct {
	L, R Formula
}

// Iff is the biconditional L ↔ R.
type Iff struct {
	L, R Formula
}

var (
	_ Formula = Atom("")
	_ Formula = Not{}
	_ Formula = And{}
	_ Formula = Or{}
	_ Formula = Implies{}
	_ Formula = Iff{}
)

func (a Atom) String() string { return string(a) }

func (n Not) String() string {
	return "¬" + renderSub(n.F, precNot)
}

func (c And) String() string {
	return renderBin(c.L, c.R, "∧", precAnd, false)
}

func (d Or) String() string {
	return renderBin(d.L, d.R, "∨", precOr, false)
}

func (i Implies) String() string {
	return renderBin(i.L, i.R, "→", precImplies, true)
}

func (i Iff) String() string {
	return renderBin(i.L, i.R, "↔", precIff, true)
}

func (a Atom) precedence() int    { return precAtom }
func (n Not) precedence() int     { return precNot }
func (c And) precedence() int     { return precAnd }
func (d Or) precedence() int      { return precOr }
func (i Implies) precedence() int { return precImplies }
func (i Iff) precedence() int     { return precIff }

// renderSub parenthesizes sub when it binds looser than the context.
func renderSub(sub Formula, ctx int) string {
	if sub.precedence() < ctx {
		return "(" + sub.String() + ")"
	}
	return sub.String()
}

func renderBin(l, r Formula, op string, prec int, rightAssoc bool) string {
	var sb strings.Builder
	lctx, rctx := prec, prec
	if rightAssoc {
		// a → b → c renders without parentheses on the right.
		lctx = prec + 1
	} else {
		rctx = prec + 1
	}
	sb.WriteString(renderSub(l, lctx))
	sb.WriteString(" ")
	sb.WriteString(op)
	sb.WriteString(" ")
	sb.WriteString(renderSub(r, rctx))
	return sb.String()
}

func (a Atom) appendAtoms(order []string, seen map[string]struct{}) []string {
	if _, ok := seen[string(a)]; !ok {
		seen[string(a)] = struct{}{}
		order = append(order, string(a))
	}
	return order
}

func (n Not) appendAtoms(order []string, seen map[string]struct{}) []string {
	return n.F.appendAtoms(order, seen)
}

func (c And) appendAtoms(order []string, seen map[string]struct{}) []string {
	return c.R.appendAtoms(c.L.appendAtoms(order, seen), seen)
}

func (d Or) appendAtoms(order []string, seen map[string]struct{}) []string {
	return d.R.appendAtoms(d.L.appendAtoms(order, seen), seen)
}

func (i Implies) appendAtoms(order []string, seen map[string]struct{}) []string {
	return i.R.appendAtoms(i.L.appendAtoms(order, seen), seen)
}

func (i Iff) appendAtoms(order []string, seen map[string]struct{}) []string {
	return i.R.appendAtoms(i.L.appendAtoms(order, seen), seen)
}

// Atoms returns the distinct atom names occurring in the given formulas,
// ordered by first occurrence. This ordering is a contract: the
// satisfiability search enumerates assignments lexicographically over it,
// so the first countermodel found is deterministic.
func Atoms(fs ...Formula) []string {
	seen := make(map[string]struct{})
	var order []string
	for _, f := range fs {
		order = f.appendAtoms(order, seen)
	}
	return order
}

// Subformulas returns every subformula of f, including f itself, in
// depth-first order without duplicates.
func Subformulas(f Formula) []Formula {
	seen := make(map[Formula]struct{})
	var out []Formula
	var walk func(Formula)
	walk = func(g Formula) {
		if _, ok := seen[g]; ok {
			return
		}
		seen[g] = struct{}{}
		out = append(out, g)
		switch g := g.(type) {
		case Atom:
		case Not:
			walk(g.F)
		case And:
			walk(g.L)
			walk(g.R)
		case Or:
			walk(g.L)
			walk(g.R)
		case Implies:
			walk(g.L)
			walk(g.R)
		case Iff:
			walk(g.L)
			walk(g.R)
		default:
			panic(fmt.Sprintf("unknown formula variant %T", g))
		}
	}
	walk(f)
	return out
}
