package dto

import (
	"encoding/json"
	"fmt"

	"skillgap-analyzer/internal/models"
	"skillgap-analyzer/internal/skillgap"
)

// SkillList accepts either a JSON array of skills or one comma-separated
// string, the form the frontend's text field produces.
type SkillList []string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var csv string
	if err := json.Unmarshal(data, &csv); err != nil {
		return fmt.Errorf("currentSkills must be an array of strings or a comma-separated string")
	}
	*s = skillgap.SplitSkills(csv)
	return nil
}

type AnalyzeRequest struct {
	TargetRole    string    `json:"targetRole"`
	CurrentSkills SkillList `json:"currentSkills"`
}

const AnalyzeRequestSchema = `{
	"type": "object",
	"required": ["targetRole", "currentSkills"],
	"properties": {
		"targetRole": {"type": "string", "minLength": 1},
		"currentSkills": {
			"oneOf": [
				{"type": "array", "minItems": 1, "items": {"type": "string"}},
				{"type": "string", "minLength": 1}
			]
		}
	}
}`

type SkillGapResponse struct {
	TargetRole        string   `json:"targetRole"`
	RequiredSkills    []string `json:"requiredSkills"`
	CurrentSkills     []string `json:"currentSkills"`
	MatchedSkills     []string `json:"matchedSkills"`
	MissingSkills     []string `json:"missingSkills"`
	GapPercentage     int      `json:"gapPercentage"`
	Recommendation    string   `json:"recommendation"`
	LearningOrder     []string `json:"learningOrder"`
	UnsequencedSkills []string `json:"unsequencedSkills"`
}

func ToSkillGapResponse(res *models.SkillGapResult, current, order, unsequenced []string) *SkillGapResponse {
	return &SkillGapResponse{
		TargetRole:        res.TargetRole,
		RequiredSkills:    res.RequiredSkills,
		CurrentSkills:     current,
		MatchedSkills:     res.MatchedSkills,
		MissingSkills:     res.MissingSkills,
		GapPercentage:     res.GapPercentage,
		Recommendation:    res.Recommendation,
		LearningOrder:     order,
		UnsequencedSkills: unsequenced,
	}
}
