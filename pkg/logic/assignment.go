package logic

import (
	"fmt"
	"sort"
	"strings"
)

// Assignment maps atom names to truth values. It is expected to be total
// over the atoms of whatever formula it is evaluated against; a missing
// atom surfaces as an UnboundAtomError during evaluation.
type Assignment map[string]bool

// Clone returns an independent copy of a.
func (a Assignment) Clone() Assignment {
	c := make(Assignment, len(a))
	for k, v := range a {
		c[k] = v
	}
	return c
}

// String renders the assignment with atoms in sorted order, e.g.
// "{P: false, Q: true}".
func (a Assignment) String() string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %t", name, a[name])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
