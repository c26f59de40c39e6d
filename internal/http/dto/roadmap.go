package dto

import "skillgap-analyzer/internal/models"

type RoadmapRequest struct {
	Role string `json:"role"`
}

const RoadmapRequestSchema = `{
	"type": "object",
	"required": ["role"],
	"properties": {
		"role": {"type": "string", "minLength": 1}
	}
}`

type RoadmapResponse struct {
	Role    string                `json:"role"`
	Roadmap []models.RoadmapPhase `json:"roadmap"`
}

type GenerateRoadmapRequest struct {
	MissingSkills []string `json:"missingSkills"`
	TargetRole    string   `json:"targetRole"`
	Timeframe     string   `json:"timeframe"`
}

const GenerateRoadmapRequestSchema = `{
	"type": "object",
	"required": ["missingSkills", "targetRole"],
	"properties": {
		"missingSkills": {"type": "array", "items": {"type": "string", "minLength": 1}},
		"targetRole": {"type": "string", "minLength": 1},
		"timeframe": {"type": "string"}
	}
}`
