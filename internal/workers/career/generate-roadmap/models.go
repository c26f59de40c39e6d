// internal/workers/career/generate-roadmap/models.go
package generateroadmap

import "skillgap-analyzer/internal/models"

// Input selects the roadmap mode: with missingSkills set the job builds one
// phase per skill, otherwise it returns the role's three-phase curriculum.
type Input struct {
	TargetRole    string   `json:"targetRole"`
	MissingSkills []string `json:"missingSkills"`
	Timeframe     string   `json:"timeframe,omitempty"`
}

type Output struct {
	TargetRole   string                `json:"targetRole"`
	Phases       []models.RoadmapPhase `json:"roadmapPhases,omitempty"`
	SkillRoadmap *models.SkillRoadmap  `json:"skillRoadmap,omitempty"`
	Generic      bool                  `json:"genericRoadmap"`
}
