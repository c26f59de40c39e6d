// internal/workers/career/analyze-skill-gap/models.go
package analyzeskillgap

type Input struct {
	TargetRole    string   `json:"targetRole"`
	CurrentSkills []string `json:"currentSkills"`
}

// Output is merged into the process instance variables.
type Output struct {
	TargetRole        string   `json:"targetRole"`
	RequiredSkills    []string `json:"requiredSkills"`
	MatchedSkills     []string `json:"matchedSkills"`
	MissingSkills     []string `json:"missingSkills"`
	GapPercentage     int      `json:"gapPercentage"`
	Recommendation    string   `json:"recommendation"`
	LearningOrder     []string `json:"learningOrder"`
	UnsequencedSkills []string `json:"unsequencedSkills"`
	IsReady           bool     `json:"isReady"`
}
