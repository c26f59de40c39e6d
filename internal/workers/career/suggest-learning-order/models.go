// internal/workers/career/suggest-learning-order/models.go
package suggestlearningorder

type Input struct {
	TargetRole    string   `json:"targetRole"`
	MissingSkills []string `json:"missingSkills"`
}

type Output struct {
	TargetRole        string   `json:"targetRole"`
	LearningOrder     []string `json:"learningOrder"`
	UnsequencedSkills []string `json:"unsequencedSkills"`
	HasPrerequisites  bool     `json:"hasPrerequisites"`
}
