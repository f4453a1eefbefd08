// Package rules implements derivation search over a fixed catalog of
// named inference rules: forward chaining from the premises until the
// conclusion is produced or the space of derivable formulas saturates.
package rules

import "github.com/proof-framework/entail/pkg/logic"

// Rule names as they appear in derivation steps.
const (
	ModusPonens           = "Modus Ponens"
	ModusTollens          = "Modus Tollens"
	HypotheticalSyllogism = "Hypothetical Syllogism"
	DisjunctiveSyllogism  = "Disjunctive Syllogism"
	Conjunction           = "Conjunction"
	Simplification        = "Simplification"
	Addition              = "Addition"
	Resolution            = "Resolution"
	Reiteration           = "Reiteration"
)

// Inference is one candidate derivation: a formula plus the pool
// indices of the established formulas it was inferred from.
type Inference struct {
	Formula logic.Formula
	Refs    []int
}

// Rule pairs a name with a pure producer function. Given the pool of
// established formulas (premises plus everything derived so far) and
// the target conclusion, the producer returns every formula the rule
// can derive in one application. Producers never mutate the pool.
type Rule struct {
	Name  string
	Apply func(pool []logic.Formula, target logic.Formula) []Inference
}

// Catalog returns the fixed rule table in application order. Adding a
// rule means adding one entry here and one producer below.
func Catalog() []Rule {
	return []Rule{
		{Name: ModusPonens, Apply: applyModusPonens},
		{Name: ModusTollens, Apply: applyModusTollens},
		{Name: HypotheticalSyllogism, Apply: applyHypotheticalSyllogism},
		{Name: DisjunctiveSyllogism, Apply: applyDisjunctiveSyllogism},
		{Name: Simplification, Apply: applySimplification},
		{Name: Conjunction, Apply: applyConjunction},
		{Name: Addition, Apply: applyAddition},
		{Name: Resolution, Apply: applyResolution},
	}
}

// negate returns the negation of f, collapsing a double negation.
func negate(f logic.Formula) logic.Formula {
	if n, ok := f.(logic.Not); ok {
		return n.F
	}
	return logic.Not{F: f}
}

// complements reports whether a and b are negations of each other.
func complements(a, b logic.Formula) bool {
	if n, ok := a.(logic.Not); ok && n.F == b {
		return true
	}
	if n, ok := b.(logic.Not); ok && n.F == a {
		return true
	}
	return false
}

// applyModusPonens derives Q from P→Q and P.
func applyModusPonens(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		imp, ok := f.(logic.Implies)
		if !ok {
			continue
		}
		for j, g := range pool {
			if g == imp.L {
				out = append(out, Inference{Formula: imp.R, Refs: []int{i, j}})
			}
		}
	}
	return out
}

// applyModusTollens derives ¬P from P→Q and ¬Q.
func applyModusTollens(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		imp, ok := f.(logic.Implies)
		if !ok {
			continue
		}
		for j, g := range pool {
			if complements(g, imp.R) {
				out = append(out, Inference{Formula: negate(imp.L), Refs: []int{i, j}})
			}
		}
	}
	return out
}

// applyHypotheticalSyllogism derives P→R from P→Q and Q→R.
func applyHypotheticalSyllogism(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		ab, ok := f.(logic.Implies)
		if !ok {
			continue
		}
		for j, g := range pool {
			if i == j {
				continue
			}
			bc, ok := g.(logic.Implies)
			if !ok || ab.R != bc.L {
				continue
			}
			out = append(out, Inference{Formula: logic.Implies{L: ab.L, R: bc.R}, Refs: []int{i, j}})
		}
	}
	return out
}

// applyDisjunctiveSyllogism derives Q from P∨Q and ¬P, in either
// orientation of the disjunction.
func applyDisjunctiveSyllogism(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		d, ok := f.(logic.Or)
		if !ok {
			continue
		}
		for j, g := range pool {
			if complements(g, d.L) {
				out = append(out, Inference{Formula: d.R, Refs: []int{i, j}})
			}
			if complements(g, d.R) {
				out = append(out, Inference{Formula: d.L, Refs: []int{i, j}})
			}
		}
	}
	return out
}

// applySimplification derives P and Q from P∧Q.
func applySimplification(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		c, ok := f.(logic.And)
		if !ok {
			continue
		}
		out = append(out,
			Inference{Formula: c.L, Refs: []int{i}},
			Inference{Formula: c.R, Refs: []int{i}},
		)
	}
	return out
}

// applyConjunction derives P∧Q from P and Q.
func applyConjunction(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		for j, g := range pool {
			if i == j {
				continue
			}
			out = append(out, Inference{Formula: logic.And{L: f, R: g}, Refs: []int{i, j}})
		}
	}
	return out
}

// applyAddition derives P∨Q from P. Q ranges over the subformulas of
// the target conclusion only; unrestricted instantiation would make the
// search space infinite.
func applyAddition(pool []logic.Formula, target logic.Formula) []Inference {
	subs := logic.Subformulas(target)
	var out []Inference
	for i, f := range pool {
		for _, q := range subs {
			if q == f {
				continue
			}
			out = append(out,
				Inference{Formula: logic.Or{L: f, R: q}, Refs: []int{i}},
				Inference{Formula: logic.Or{L: q, R: f}, Refs: []int{i}},
			)
		}
	}
	return out
}

// applyResolution derives Q∨R from P∨Q and ¬P∨R.
func applyResolution(pool []logic.Formula, _ logic.Formula) []Inference {
	var out []Inference
	for i, f := range pool {
		a, ok := f.(logic.Or)
		if !ok {
			continue
		}
		for j, g := range pool {
			if i == j {
				continue
			}
			b, ok := g.(logic.Or)
			if !ok {
				continue
			}
			for _, p := range resolvents(a, b) {
				out = append(out, Inference{Formula: p, Refs: []int{i, j}})
			}
		}
	}
	return out
}

// resolvents returns the formulas obtainable by resolving two binary
// disjunctions on a complementary pair of disjuncts.
func resolvents(a, b logic.Or) []logic.Formula {
	var out []logic.Formula
	for _, al := range [][2]logic.Formula{{a.L, a.R}, {a.R, a.L}} {
		for _, bl := range [][2]logic.Formula{{b.L, b.R}, {b.R, b.L}} {
			if complements(al[0], bl[0]) {
				out = append(out, logic.Or{L: al[1], R: bl[1]})
			}
		}
	}
	return out
}
