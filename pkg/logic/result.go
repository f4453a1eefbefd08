package logic

// ValidationResult is the engine's verdict on an argument. Exactly one
// of Derivation and Countermodel is populated: a valid argument carries
// the proof and no countermodel, an invalid one carries a countermodel
// and no proof.
type ValidationResult struct {
	Valid        bool
	Derivation   Derivation
	Countermodel Assignment
}

// ValidResult packages a derivation as a positive verdict.
func ValidResult(d Derivation) ValidationResult {
	return ValidationResult{Valid: true, Derivation: d}
}

// InvalidResult packages a countermodel as a negative verdict.
func InvalidResult(counter Assignment) ValidationResult {
	return ValidationResult{Valid: false, Countermodel: counter}
}
