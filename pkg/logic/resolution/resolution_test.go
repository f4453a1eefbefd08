package resolution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proof-framework/entail/pkg/logic"
	"github.com/proof-framework/entail/pkg/logic/rules"
)

func mustDerive(t *testing.T, premises []logic.Formula, conclusion logic.Formula) logic.Derivation {
	t.Helper()
	d, err := Derive(context.Background(), premises, conclusion)
	require.NoError(t, err)
	require.NoError(t, d.Check(premises, conclusion))
	return d
}

func TestDeriveRefutation(t *testing.T) {
	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")

	// Not reachable by single applications of the named rules.
	premises := []logic.Formula{
		logic.Or{L: p, R: q},
		logic.Or{L: logic.Not{F: p}, R: r},
		logic.Or{L: logic.Not{F: q}, R: r},
	}
	d := mustDerive(t, premises, r)

	last := d[len(d)-1]
	assert.Equal(t, logic.Formula(r), last.Formula)
	assert.Equal(t, rules.Resolution, last.Rule)
	assert.NotEmpty(t, last.Refs)

	// Every non-premise step is a resolution step.
	for _, s := range d[len(premises):] {
		assert.Equal(t, rules.Resolution, s.Rule)
	}
}

func TestDeriveModusPonensShape(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	premises := []logic.Formula{logic.Implies{L: p, R: q}, p}
	d := mustDerive(t, premises, q)
	assert.Equal(t, logic.Formula(q), d[len(d)-1].Formula)
}

func TestDeriveContradictoryPremises(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	// From P and ¬P anything follows, including an unrelated atom.
	premises := []logic.Formula{p, logic.Not{F: p}}
	d := mustDerive(t, premises, q)
	assert.Equal(t, logic.Formula(q), d[len(d)-1].Formula)
}

func TestDeriveTautologicalConclusion(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	premises := []logic.Formula{q}
	conclusion := logic.Or{L: p, R: logic.Not{F: p}}
	d := mustDerive(t, premises, conclusion)
	assert.Equal(t, logic.Formula(conclusion), d[len(d)-1].Formula)
}

func TestDeriveComplexArgument(t *testing.T) {
	p, q, r, s := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R"), logic.Atom("S")
	premises := []logic.Formula{
		logic.Implies{L: p, R: logic.And{L: q, R: r}},
		logic.Implies{L: logic.Or{L: q, R: s}, R: logic.Not{F: r}},
	}
	conclusion := logic.Not{F: p}
	d := mustDerive(t, premises, conclusion)
	assert.Equal(t, logic.Formula(conclusion), d[len(d)-1].Formula)
}

func TestDeriveFailsOnInvalidArgument(t *testing.T) {
	p, q := logic.Atom("P"), logic.Atom("Q")
	// P→Q with Q does not entail P; refutation must saturate and the
	// failure is an internal error, not a verdict.
	_, err := Derive(context.Background(), []logic.Formula{logic.Implies{L: p, R: q}, q}, p)
	require.Error(t, err)
}

func TestDeriveTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := logic.Atom("P")
	_, err := Derive(ctx, []logic.Formula{p}, p)
	var terr logic.SearchTimeoutError
	require.ErrorAs(t, err, &terr)
}

func TestDeriveDeterminism(t *testing.T) {
	p, q, r := logic.Atom("P"), logic.Atom("Q"), logic.Atom("R")
	premises := []logic.Formula{
		logic.Or{L: p, R: q},
		logic.Or{L: logic.Not{F: p}, R: r},
		logic.Or{L: logic.Not{F: q}, R: r},
	}
	first := mustDerive(t, premises, r)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, mustDerive(t, premises, r))
	}
}
