package logic

import "fmt"

// RulePremise is the rule name carried by the leading steps of a
// derivation that restate the argument's premises.
const RulePremise = "Premise"

// ProofStep is one line of a derivation: a formula, the name of the
// inference rule that produced it, and the indices of the earlier steps
// it cites. Steps are stored in an append-only sequence and reference
// each other by index only, so a derivation can be re-checked without
// chasing pointers.
type ProofStep struct {
	Index   int
	Formula Formula
	Rule    string
	Refs    []int
}

func (s ProofStep) String() string {
	if len(s.Refs) == 0 {
		return fmt.Sprintf("%d. %s  [%s]", s.Index+1, s.Formula, s.Rule)
	}
	refs := make([]int, len(s.Refs))
	for i, r := range s.Refs {
		refs[i] = r + 1
	}
	return fmt.Sprintf("%d. %s  [%s %v]", s.Index+1, s.Formula, s.Rule, refs)
}

// Derivation is an ordered proof: premise steps first, derived steps
// after, the last step structurally equal to the conclusion.
type Derivation []ProofStep

// Check re-verifies a derivation against the argument it claims to
// prove. It confirms the structural invariants (premise steps restate
// the premises in order, every reference points strictly backwards, the
// final step is the conclusion) and the semantic one: each derived
// step's formula is entailed by the steps it cites, established by
// enumerating all assignments over their atoms.
func (d Derivation) Check(premises []Formula, conclusion Formula) error {
	if len(d) == 0 {
		return fmt.Errorf("empty derivation")
	}
	if len(d) < len(premises) {
		return fmt.Errorf("derivation has %d steps but the argument has %d premises", len(d), len(premises))
	}
	for i, step := range d {
		if step.Index != i {
			return fmt.Errorf("step %d carries index %d", i, step.Index)
		}
		if i < len(premises) {
			if step.Rule != RulePremise {
				return fmt.Errorf("step %d should restate a premise, has rule %q", i, step.Rule)
			}
			if step.Formula != premises[i] {
				return fmt.Errorf("premise step %d is %s, want %s", i, step.Formula, premises[i])
			}
			continue
		}
		if len(step.Refs) == 0 {
			return fmt.Errorf("derived step %d cites nothing", i)
		}
		for _, r := range step.Refs {
			if r < 0 || r >= i {
				return fmt.Errorf("step %d cites step %d", i, r)
			}
		}
		if err := checkEntailed(d, step); err != nil {
			return err
		}
	}
	if last := d[len(d)-1]; last.Formula != conclusion {
		return fmt.Errorf("derivation ends with %s, want conclusion %s", last.Formula, conclusion)
	}
	return nil
}

// Pruned returns the derivation with every derived step that the final
// step does not cite, directly or transitively, removed and the rest
// renumbered. The first numPremises steps are always kept so that step
// numbering stays aligned with the argument's premises.
func (d Derivation) Pruned(numPremises int) Derivation {
	if len(d) == 0 {
		return d
	}
	needed := make([]bool, len(d))
	var mark func(int)
	mark = func(i int) {
		if needed[i] {
			return
		}
		needed[i] = true
		for _, r := range d[i].Refs {
			mark(r)
		}
	}
	mark(len(d) - 1)

	remap := make([]int, len(d))
	out := make(Derivation, 0, len(d))
	for i, s := range d {
		if i >= numPremises && !needed[i] {
			continue
		}
		remap[i] = len(out)
		var refs []int
		if len(s.Refs) > 0 {
			refs = make([]int, len(s.Refs))
			for k, r := range s.Refs {
				refs[k] = remap[r]
			}
		}
		out = append(out, ProofStep{
			Index:   len(out),
			Formula: s.Formula,
			Rule:    s.Rule,
			Refs:    refs,
		})
	}
	return out
}

// checkEntailed verifies that step.Formula holds under every assignment
// satisfying all of the step's cited formulas.
func checkEntailed(d Derivation, step ProofStep) error {
	fs := make([]Formula, 0, len(step.Refs)+1)
	for _, r := range step.Refs {
		fs = append(fs, d[r].Formula)
	}
	fs = append(fs, step.Formula)
	atoms := Atoms(fs...)

	asg := make(Assignment, len(atoms))
	n := len(atoms)
	for bits := 0; bits < 1<<uint(n); bits++ {
		for i, name := range atoms {
			asg[name] = bits&(1<<uint(n-1-i)) != 0
		}
		all := true
		for _, r := range step.Refs {
			v, err := d[r].Formula.Eval(asg)
			if err != nil {
				return err
			}
			if !v {
				all = false
				break
			}
		}
		if !all {
			continue
		}
		v, err := step.Formula.Eval(asg)
		if err != nil {
			return err
		}
		if !v {
			return fmt.Errorf("step %d (%s by %s) does not follow from its citations under %s",
				step.Index, step.Formula, step.Rule, asg)
		}
	}
	return nil
}
