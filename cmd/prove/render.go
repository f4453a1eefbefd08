package prove

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/proof-framework/entail/pkg/logic"
)

var (
	validColor   = color.New(color.FgGreen, color.Bold)
	invalidColor = color.New(color.FgRed, color.Bold)
	ruleColor    = color.New(color.FgCyan)
)

// Render writes the argument and its verdict: the derivation for a
// valid argument, the countermodel for an invalid one.
func Render(w io.Writer, arg logic.Argument, result logic.ValidationResult) {
	fmt.Fprintln(w, "Premises:")
	for i, p := range arg.Premises {
		fmt.Fprintf(w, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintf(w, "Conclusion: %s\n\n", arg.Conclusion)

	if result.Valid {
		validColor.Fprintln(w, "VALID")
		fmt.Fprintln(w, "Derivation:")
		for _, step := range result.Derivation {
			renderStep(w, step)
		}
		return
	}

	invalidColor.Fprintln(w, "INVALID")
	fmt.Fprintln(w, "Countermodel:")
	names := make([]string, 0, len(result.Countermodel))
	for name := range result.Countermodel {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %s = %t\n", name, result.Countermodel[name])
	}
}

func renderStep(w io.Writer, step logic.ProofStep) {
	fmt.Fprintf(w, "  %d. %s  ", step.Index+1, step.Formula)
	if len(step.Refs) == 0 {
		ruleColor.Fprintf(w, "[%s]", step.Rule)
	} else {
		refs := make([]string, len(step.Refs))
		for i, r := range step.Refs {
			refs[i] = fmt.Sprintf("%d", r+1)
		}
		ruleColor.Fprintf(w, "[%s %s]", step.Rule, strings.Join(refs, ","))
	}
	fmt.Fprintln(w)
}
