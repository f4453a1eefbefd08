package logic

import "fmt"

// Argument is an ordered sequence of premises together with a single
// conclusion. It is built once per validation request and never mutated.
type Argument struct {
	Premises   []Formula
	Conclusion Formula
}

// NewArgument returns an Argument over the given premises and conclusion.
func NewArgument(premises []Formula, conclusion Formula) Argument {
	return Argument{Premises: premises, Conclusion: conclusion}
}

// Validate rejects structurally unusable arguments. It is the only gate
// before search: an argument that passes here is safe to hand to the
// oracle and the rule engine.
func (arg Argument) Validate() error {
	if len(arg.Premises) == 0 {
		return MalformedArgumentError{Reason: "no premises"}
	}
	for i, p := range arg.Premises {
		if p == nil {
			return MalformedArgumentError{Reason: fmt.Sprintf("nil premise at index %d", i)}
		}
	}
	if arg.Conclusion == nil {
		return MalformedArgumentError{Reason: "no conclusion"}
	}
	return nil
}

// Atoms returns the distinct atoms of the whole argument in first
// occurrence order, premises before conclusion.
func (arg Argument) Atoms() []string {
	fs := make([]Formula, 0, len(arg.Premises)+1)
	fs = append(fs, arg.Premises...)
	if arg.Conclusion != nil {
		fs = append(fs, arg.Conclusion)
	}
	return Atoms(fs...)
}
