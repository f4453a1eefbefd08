package rules

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proof-framework/entail/pkg/logic"
)

func derive(t *testing.T, premises []logic.Formula, conclusion logic.Formula) (logic.Derivation, bool) {
	t.Helper()
	d, ok, err := NewEngine().Derive(context.Background(), premises, conclusion, 4096)
	require.NoError(t, err)
	if ok {
		require.NoError(t, d.Check(premises, conclusion))
	}
	return d, ok
}

func TestDeriveNamedRules(t *testing.T) {
	type tc struct {
		Name       string
		Premises   []logic.Formula
		Conclusion logic.Formula
		FinalRule  string
	}

	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	for _, tt := range []tc{
		{
			Name:       "modus ponens",
			Premises:   []logic.Formula{logic.Implies{L: p, R: q}, p},
			Conclusion: q,
			FinalRule:  ModusPonens,
		},
		{
			Name:       "modus tollens",
			Premises:   []logic.Formula{logic.Implies{L: p, R: q}, logic.Not{F: q}},
			Conclusion: logic.Not{F: p},
			FinalRule:  ModusTollens,
		},
		{
			Name: "modus tollens against negated consequent",
			// P → ¬Q with Q concludes ¬P.
			Premises:   []logic.Formula{logic.Implies{L: p, R: logic.Not{F: q}}, q},
			Conclusion: logic.Not{F: p},
			FinalRule:  ModusTollens,
		},
		{
			Name:       "hypothetical syllogism",
			Premises:   []logic.Formula{logic.Implies{L: p, R: q}, logic.Implies{L: q, R: r}},
			Conclusion: logic.Implies{L: p, R: r},
			FinalRule:  HypotheticalSyllogism,
		},
		{
			Name:       "disjunctive syllogism",
			Premises:   []logic.Formula{logic.Or{L: p, R: q}, logic.Not{F: p}},
			Conclusion: q,
			FinalRule:  DisjunctiveSyllogism,
		},
		{
			Name:       "disjunctive syllogism symmetric",
			Premises:   []logic.Formula{logic.Or{L: p, R: q}, logic.Not{F: q}},
			Conclusion: p,
			FinalRule:  DisjunctiveSyllogism,
		},
		{
			Name:       "simplification",
			Premises:   []logic.Formula{logic.And{L: p, R: q}},
			Conclusion: q,
			FinalRule:  Simplification,
		},
		{
			Name:       "conjunction",
			Premises:   []logic.Formula{p, q},
			Conclusion: logic.And{L: p, R: q},
			FinalRule:  Conjunction,
		},
		{
			Name:       "addition",
			Premises:   []logic.Formula{p},
			Conclusion: logic.Or{L: p, R: q},
			FinalRule:  Addition,
		},
		{
			Name:       "resolution",
			Premises:   []logic.Formula{logic.Or{L: p, R: q}, logic.Or{L: logic.Not{F: p}, R: r}},
			Conclusion: logic.Or{L: q, R: r},
			FinalRule:  Resolution,
		},
		{
			Name: "chained derivation",
			// P∧Q, P→R concludes R through simplification then modus ponens.
			Premises:   []logic.Formula{logic.And{L: p, R: q}, logic.Implies{L: p, R: r}},
			Conclusion: r,
			FinalRule:  ModusPonens,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			d, ok := derive(t, tt.Premises, tt.Conclusion)
			require.True(t, ok)
			last := d[len(d)-1]
			assert.Equal(t, tt.Conclusion, last.Formula)
			assert.Equal(t, tt.FinalRule, last.Rule)
		})
	}
}

func TestDeriveModusPonensCitesBothPremises(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	d, ok := derive(t, []logic.Formula{logic.Implies{L: p, R: q}, p}, q)
	require.True(t, ok)
	require.Len(t, d, 3)
	assert.Equal(t, ModusPonens, d[2].Rule)
	assert.ElementsMatch(t, []int{0, 1}, d[2].Refs)
}

func TestDeriveConclusionIsPremise(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")

	// Conclusion restates the last premise.
	d, ok := derive(t, []logic.Formula{q, p}, p)
	require.True(t, ok)
	assert.Len(t, d, 2)

	// Conclusion restates an earlier premise.
	d, ok = derive(t, []logic.Formula{p, q}, p)
	require.True(t, ok)
	require.Len(t, d, 3)
	assert.Equal(t, Reiteration, d[2].Rule)
	assert.Equal(t, []int{0}, d[2].Refs)
}

func TestDerivePrunesDeadEnds(t *testing.T) {
	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	// The irrelevant premise R spawns derivable noise that must not be
	// cited by the final proof.
	premises := []logic.Formula{logic.Implies{L: p, R: q}, r, p}
	d, ok := derive(t, premises, q)
	require.True(t, ok)
	// Premise steps plus the single modus ponens step.
	require.Len(t, d, 4)
	assert.Equal(t, ModusPonens, d[3].Rule)
}

func TestDeriveFailsWithoutPath(t *testing.T) {
	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	// Valid argument, but not reachable with the named rules: naming R
	// requires resolving three clauses pairwise.
	premises := []logic.Formula{
		logic.Or{L: p, R: q},
		logic.Or{L: logic.Not{F: p}, R: r},
		logic.Or{L: logic.Not{F: q}, R: r},
	}
	_, ok, err := NewEngine().Derive(context.Background(), premises, r, 4096)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeriveRespectsIterationBound(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	// Requires two steps; a bound of one forces failure, not an error.
	premises := []logic.Formula{logic.And{L: p, R: logic.Implies{L: p, R: q}}}
	_, ok, err := NewEngine().Derive(context.Background(), premises, q, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeriveTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p, q := logic.Atom("P"), logic.Atom("Q")
	_, _, err := NewEngine().Derive(ctx, []logic.Formula{logic.Implies{L: p, R: q}, p}, q, 4096)
	var terr logic.SearchTimeoutError
	require.ErrorAs(t, err, &terr)
}

func TestDeriveDeterminism(t *testing.T) {
	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	premises := []logic.Formula{
		logic.Implies{L: p, R: q},
		logic.Implies{L: q, R: r},
		p,
	}
	first, ok := derive(t, premises, r)
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := derive(t, premises, r)
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}
