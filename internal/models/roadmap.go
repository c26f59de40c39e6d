// internal/models/roadmap.go
package models

// RoadmapPhase is one step of a role curriculum.
type RoadmapPhase struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Items    []string `json:"items"`
}

// SkillPhase is one step of a per-skill roadmap.
type SkillPhase struct {
	Phase             int      `json:"phase"`
	Skill             string   `json:"skill"`
	Duration          string   `json:"duration"`
	Resources         []string `json:"resources"`
	AdvancedResources []string `json:"advancedResources"`
	Milestones        []string `json:"milestones"`
}

type SkillRoadmap struct {
	TargetRole        string       `json:"targetRole"`
	Timeframe         string       `json:"timeframe,omitempty"`
	TotalSkills       int          `json:"totalSkills"`
	EstimatedDuration string       `json:"estimatedDuration"`
	Roadmap           []SkillPhase `json:"roadmap"`
	Tips              []string     `json:"tips"`
}

type TemplatePhase struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type RoadmapTemplate struct {
	Role     string          `json:"role"`
	Duration string          `json:"duration"`
	Phases   []TemplatePhase `json:"phases"`
}
