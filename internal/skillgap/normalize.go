package skillgap

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the comparison key for a skill or role name. Two names are
// the same when their folded forms are equal.
//
// A Caser keeps internal state, so a fresh one is built per call.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// foldSet indexes names by their folded form.
func foldSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[Fold(n)] = struct{}{}
	}
	return set
}

// SplitSkills turns "React, node.js ,, Git" into its non-blank, trimmed parts.
func SplitSkills(list string) []string {
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
