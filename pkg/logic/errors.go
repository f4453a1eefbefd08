package logic

import "fmt"

// UnboundAtomError reports evaluation of a formula under an assignment
// that omits one of its atoms. It indicates an internal contract
// violation: the engine always derives assignments from the atom set of
// the argument being checked, so this error should never surface to
// callers.
type UnboundAtomError struct {
	Atom string
}

func (e UnboundAtomError) Error() string {
	return fmt.Sprintf("assignment has no binding for atom %q", e.Atom)
}

// MalformedArgumentError rejects an argument before any search begins,
// for instance one with no premises or no conclusion.
type MalformedArgumentError struct {
	Reason string
}

func (e MalformedArgumentError) Error() string {
	return fmt.Sprintf("malformed argument: %s", e.Reason)
}

// SearchTimeoutError reports that the validity or derivation search
// exhausted its budget before reaching a verdict. It is recoverable:
// retrying with a larger budget may succeed. It is never returned in
// place of a definite Valid or Invalid answer.
type SearchTimeoutError struct {
	Phase      string
	Iterations int
}

func (e SearchTimeoutError) Error() string {
	if e.Iterations > 0 {
		return fmt.Sprintf("search budget exhausted during %s after %d iterations", e.Phase, e.Iterations)
	}
	return fmt.Sprintf("search budget exhausted during %s", e.Phase)
}

// TranslationError reports that free text could not be translated into a
// symbolic formula. The engine core never produces it; it originates at
// the translation boundary (the parser, or an upstream translation
// service) and is surfaced to callers unchanged.
type TranslationError struct {
	Input  string
	Reason string
}

func (e TranslationError) Error() string {
	return fmt.Sprintf("cannot interpret %q: %s", e.Input, e.Reason)
}
