// Package roadmap builds study plans: a fixed three-phase curriculum per
// role, or one phase per missing skill.
package roadmap

import (
	"fmt"
	"strings"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/models"
	"skillgap-analyzer/internal/skillgap"
)

// ForRole returns the three-phase curriculum for role. Roles without their
// own curriculum get the generic one; this never fails.
func ForRole(role string) []models.RoadmapPhase {
	src, ok := roleCurricula[skillgap.Fold(role)]
	if !ok {
		src = genericCurriculum
	}
	return clonePhases(src)
}

// HasCurriculum reports whether role has a curriculum of its own.
func HasCurriculum(role string) bool {
	_, ok := roleCurricula[skillgap.Fold(role)]
	return ok
}

// ForSkills builds one phase per missing skill, in the given order.
func ForSkills(targetRole string, missingSkills []string, timeframe string) (*models.SkillRoadmap, error) {
	if strings.TrimSpace(targetRole) == "" {
		return nil, apperrors.NewInvalidInputError("targetRole", "Please provide a target role")
	}
	if missingSkills == nil {
		return nil, apperrors.NewInvalidInputError("missingSkills", "Please provide missing skills as an array")
	}

	out := &models.SkillRoadmap{
		TargetRole:  strings.TrimSpace(targetRole),
		Timeframe:   timeframe,
		TotalSkills: len(missingSkills),
		Roadmap:     make([]models.SkillPhase, 0, len(missingSkills)),
		Tips:        append([]string(nil), studyTips...),
	}

	for i, skill := range missingSkills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			return nil, apperrors.NewInvalidInputError("missingSkills",
				fmt.Sprintf("missingSkills[%d] must not be blank", i))
		}

		res, ok := skillResourceTable[skillgap.Fold(skill)]
		if !ok {
			res = genericResources
		}
		out.Roadmap = append(out.Roadmap, models.SkillPhase{
			Phase:             i + 1,
			Skill:             skill,
			Duration:          res.duration,
			Resources:         append([]string(nil), res.beginner...),
			AdvancedResources: append([]string(nil), res.intermediate...),
			Milestones: []string{
				fmt.Sprintf("Understand %s fundamentals", skill),
				fmt.Sprintf("Build a project using %s", skill),
				fmt.Sprintf("Contribute to open source using %s", skill),
			},
		})
	}

	out.EstimatedDuration = fmt.Sprintf("%d weeks", weeksPerSkill*len(out.Roadmap))
	return out, nil
}

// Templates returns the multi-phase role templates.
func Templates() []models.RoadmapTemplate {
	out := make([]models.RoadmapTemplate, len(templates))
	for i, t := range templates {
		phases := make([]models.TemplatePhase, len(t.Phases))
		for j, p := range t.Phases {
			phases[j] = models.TemplatePhase{Name: p.Name, Skills: append([]string(nil), p.Skills...)}
		}
		out[i] = models.RoadmapTemplate{Role: t.Role, Duration: t.Duration, Phases: phases}
	}
	return out
}

func clonePhases(src []models.RoadmapPhase) []models.RoadmapPhase {
	out := make([]models.RoadmapPhase, len(src))
	for i, p := range src {
		out[i] = models.RoadmapPhase{
			Phase:    p.Phase,
			Duration: p.Duration,
			Items:    append([]string(nil), p.Items...),
		}
	}
	return out
}
