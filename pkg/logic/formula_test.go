package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	type tc struct {
		Name     string
		Formula  Formula
		Expected string
	}

	p, q, r := Atom("P"), Atom("Q"), Atom("R")
	for _, tt := range []tc{
		{
			Name:     "atom",
			Formula:  p,
			Expected: "P",
		},
		{
			Name:     "negation",
			Formula:  Not{F: p},
			Expected: "¬P",
		},
		{
			Name:     "negated compound",
			Formula:  Not{F: And{L: p, R: q}},
			Expected: "¬(P ∧ Q)",
		},
		{
			Name:     "implication",
			Formula:  Implies{L: p, R: q},
			Expected: "P → Q",
		},
		{
			Name:     "right-associated implication without parentheses",
			Formula:  Implies{L: p, R: Implies{L: q, R: r}},
			Expected: "P → Q → R",
		},
		{
			Name:     "left-nested implication keeps parentheses",
			Formula:  Implies{L: Implies{L: p, R: q}, R: r},
			Expected: "(P → Q) → R",
		},
		{
			Name:     "conjunction binds tighter than disjunction",
			Formula:  Or{L: And{L: p, R: q}, R: r},
			Expected: "P ∧ Q ∨ R",
		},
		{
			Name:     "disjunction under conjunction needs parentheses",
			Formula:  And{L: Or{L: p, R: q}, R: r},
			Expected: "(P ∨ Q) ∧ R",
		},
		{
			Name:     "biconditional",
			Formula:  Iff{L: p, R: Not{F: q}},
			Expected: "P ↔ ¬Q",
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Formula.String())
		})
	}
}

func TestStructuralEquality(t *testing.T) {
	a := Implies{L: Atom("P"), R: And{L: Atom("Q"), R: Not{F: Atom("R")}}}
	b := Implies{L: Atom("P"), R: And{L: Atom("Q"), R: Not{F: Atom("R")}}}
	assert.True(t, a == b)

	// And is ordered: P ∧ Q and Q ∧ P are distinct formulas.
	assert.False(t, Formula(And{L: Atom("P"), R: Atom("Q")}) == Formula(And{L: Atom("Q"), R: Atom("P")}))

	// Formulas work as map keys.
	m := map[Formula]int{a: 1}
	_, ok := m[b]
	assert.True(t, ok)
}

func TestAtomsFirstOccurrenceOrder(t *testing.T) {
	f1 := Implies{L: Atom("Q"), R: Atom("P")}
	f2 := And{L: Atom("R"), R: Atom("Q")}
	assert.Equal(t, []string{"Q", "P", "R"}, Atoms(f1, f2))
}

func TestSubformulas(t *testing.T) {
	f := Implies{L: Atom("P"), R: Or{L: Atom("P"), R: Atom("Q")}}
	subs := Subformulas(f)
	require.Len(t, subs, 4)
	assert.Equal(t, Formula(f), subs[0])
	assert.Contains(t, subs, Formula(Atom("P")))
	assert.Contains(t, subs, Formula(Or{L: Atom("P"), R: Atom("Q")}))
	assert.Contains(t, subs, Formula(Atom("Q")))
}

func TestArgumentValidate(t *testing.T) {
	type tc struct {
		Name     string
		Argument Argument
		Wrong    bool
	}

	for _, tt := range []tc{
		{
			Name:     "well formed",
			Argument: NewArgument([]Formula{Atom("P")}, Atom("P")),
		},
		{
			Name:     "no premises",
			Argument: NewArgument(nil, Atom("P")),
			Wrong:    true,
		},
		{
			Name:     "nil premise",
			Argument: NewArgument([]Formula{Atom("P"), nil}, Atom("P")),
			Wrong:    true,
		},
		{
			Name:     "no conclusion",
			Argument: NewArgument([]Formula{Atom("P")}, nil),
			Wrong:    true,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			err := tt.Argument.Validate()
			if tt.Wrong {
				var merr MalformedArgumentError
				require.ErrorAs(t, err, &merr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
