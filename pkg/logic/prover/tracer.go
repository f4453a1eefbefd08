package prover

import (
	"fmt"
	"io"

	"github.com/proof-framework/entail/pkg/logic"
)

// Tracer observes the phases of a validation. Implementations must not
// retain the values they are handed beyond the call.
type Tracer interface {
	// OracleDecided reports the satisfiability verdict on the premises
	// plus negated conclusion. countermodel is nil when the argument is
	// valid.
	OracleDecided(valid bool, countermodel logic.Assignment)

	// ChainingFailed reports that forward chaining over the named rules
	// found no derivation and the resolution fallback is taking over.
	ChainingFailed()

	// DerivationFound reports the completed derivation of a valid
	// argument.
	DerivationFound(d logic.Derivation)
}

// DefaultTracer observes nothing.
type DefaultTracer struct{}

func (DefaultTracer) OracleDecided(_ bool, _ logic.Assignment) {}
func (DefaultTracer) ChainingFailed()                          {}
func (DefaultTracer) DerivationFound(_ logic.Derivation)       {}

// LoggingTracer writes each phase to Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) OracleDecided(valid bool, countermodel logic.Assignment) {
	if valid {
		fmt.Fprintf(t.Writer, "oracle: premises ∧ ¬conclusion unsatisfiable, argument is valid\n")
		return
	}
	fmt.Fprintf(t.Writer, "oracle: countermodel %s\n", countermodel)
}

func (t LoggingTracer) ChainingFailed() {
	fmt.Fprintf(t.Writer, "chaining: no named-rule derivation, falling back to resolution\n")
}

func (t LoggingTracer) DerivationFound(d logic.Derivation) {
	fmt.Fprintf(t.Writer, "derivation (%d steps):\n", len(d))
	for _, s := range d {
		fmt.Fprintf(t.Writer, "  %s\n", s)
	}
}
