package skillgap

// SuggestLearningOrder orders missingSkills by targetRole's prerequisite
// list. The result is that list filtered to the missing skills, so a missing
// skill the list does not mention is left out; Unsequenced reports those.
// A role without a prerequisite list keeps missingSkills as given.
func SuggestLearningOrder(c *Catalog, missingSkills []string, targetRole string) []string {
	order, ok := c.LearningOrder(targetRole)
	if !ok {
		return append(make([]string, 0, len(missingSkills)), missingSkills...)
	}

	pending := foldSet(missingSkills)
	out := make([]string, 0, len(missingSkills))
	for _, skill := range order {
		key := Fold(skill)
		if _, ok := pending[key]; ok {
			out = append(out, skill)
			delete(pending, key)
		}
	}
	return out
}

// Unsequenced returns the missing skills, in their given order, that
// targetRole's prerequisite list does not cover.
func Unsequenced(c *Catalog, missingSkills []string, targetRole string) []string {
	out := make([]string, 0)
	order, ok := c.LearningOrder(targetRole)
	if !ok {
		return out
	}

	known := foldSet(order)
	for _, skill := range missingSkills {
		if _, ok := known[Fold(skill)]; !ok {
			out = append(out, skill)
		}
	}
	return out
}
