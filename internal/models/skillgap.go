// internal/models/skillgap.go
package models

// SkillGapResult is the outcome of matching a user's skills against a role.
// MatchedSkills and MissingSkills follow the role's required-skill order and
// keep catalog casing.
type SkillGapResult struct {
	TargetRole     string   `json:"targetRole"`
	RequiredSkills []string `json:"requiredSkills"`
	MatchedSkills  []string `json:"matchedSkills"`
	MissingSkills  []string `json:"missingSkills"`
	GapPercentage  int      `json:"gapPercentage"`
	Recommendation string   `json:"recommendation"`
}

type RoleSummary struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Category           string `json:"category"`
	RequiredSkillCount int    `json:"requiredSkillCount"`
}
