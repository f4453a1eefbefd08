package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proof-framework/entail/pkg/logic"
)

func lit(atom string) Literal    { return Literal{Atom: atom} }
func notLit(atom string) Literal { return Literal{Atom: atom, Negated: true} }

func TestNewClauseNormalizes(t *testing.T) {
	c := NewClause(notLit("Q"), lit("P"), lit("Q"), lit("P"))
	assert.Equal(t, Clause{lit("P"), lit("Q"), notLit("Q")}, c)
}

func TestClausePredicates(t *testing.T) {
	assert.True(t, NewClause().IsEmpty())
	assert.False(t, NewClause(lit("P")).IsEmpty())
	assert.True(t, NewClause(lit("P"), notLit("P")).IsTautology())
	assert.False(t, NewClause(lit("P"), notLit("Q")).IsTautology())
	assert.True(t, NewClause(lit("P"), notLit("Q")).Contains(notLit("Q")))
	assert.False(t, NewClause(lit("P")).Contains(notLit("P")))
}

func TestClauseFormula(t *testing.T) {
	c := NewClause(notLit("P"), lit("Q"))
	assert.Equal(t, logic.Formula(logic.Or{L: logic.Not{F: logic.Atom("P")}, R: logic.Atom("Q")}), c.Formula())

	unit := NewClause(lit("P"))
	assert.Equal(t, logic.Formula(logic.Atom("P")), unit.Formula())

	assert.Panics(t, func() { NewClause().Formula() })
}

func TestConvert(t *testing.T) {
	type tc struct {
		Name     string
		Formula  logic.Formula
		Expected []Clause
	}

	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	for _, tt := range []tc{
		{
			Name:     "atom",
			Formula:  p,
			Expected: []Clause{NewClause(lit("P"))},
		},
		{
			Name:     "implication",
			Formula:  logic.Implies{L: p, R: q},
			Expected: []Clause{NewClause(notLit("P"), lit("Q"))},
		},
		{
			Name:     "negated implication splits",
			Formula:  logic.Not{F: logic.Implies{L: p, R: q}},
			Expected: []Clause{NewClause(lit("P")), NewClause(notLit("Q"))},
		},
		{
			Name:    "disjunction over conjunction distributes",
			Formula: logic.Or{L: p, R: logic.And{L: q, R: r}},
			Expected: []Clause{
				NewClause(lit("P"), lit("Q")),
				NewClause(lit("P"), lit("R")),
			},
		},
		{
			Name:    "biconditional",
			Formula: logic.Iff{L: p, R: q},
			Expected: []Clause{
				NewClause(notLit("P"), lit("Q")),
				NewClause(lit("P"), notLit("Q")),
			},
		},
		{
			Name:     "double negation",
			Formula:  logic.Not{F: logic.Not{F: p}},
			Expected: []Clause{NewClause(lit("P"))},
		},
		{
			Name:     "tautology drops out",
			Formula:  logic.Or{L: p, R: logic.Not{F: p}},
			Expected: []Clause{},
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, Convert(tt.Formula))
		})
	}
}

func TestConvertAllDeduplicates(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	clauses := ConvertAll(
		logic.Implies{L: p, R: q},
		logic.Or{L: logic.Not{F: p}, R: q},
	)
	require.Len(t, clauses, 1)
	assert.Equal(t, NewClause(notLit("P"), lit("Q")), clauses[0])
}

// Conversion preserves satisfiability witnesses: any assignment
// satisfies the formula exactly when it satisfies every clause.
func TestConvertEquisatisfiable(t *testing.T) {
	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	formulas := []logic.Formula{
		logic.Iff{L: p, R: logic.And{L: q, R: logic.Not{F: r}}},
		logic.Implies{L: logic.Or{L: p, R: q}, R: logic.And{L: r, R: p}},
		logic.Not{F: logic.Iff{L: logic.Implies{L: p, R: q}, R: r}},
	}
	atoms := []string{"P", "Q", "R"}
	for _, f := range formulas {
		clauses := Convert(f)
		for bits := 0; bits < 8; bits++ {
			asg := logic.Assignment{}
			for i, name := range atoms {
				asg[name] = bits&(1<<uint(i)) != 0
			}
			want, err := f.Eval(asg)
			require.NoError(t, err)
			got := true
			for _, c := range clauses {
				sat := false
				for _, l := range c {
					if asg[l.Atom] != l.Negated {
						sat = true
						break
					}
				}
				if !sat {
					got = false
					break
				}
			}
			assert.Equal(t, want, got, "formula %s under %s", f, asg)
		}
	}
}
