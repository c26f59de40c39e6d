package skillgap

import (
	"fmt"
	"math"
	"strings"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/models"
)

const (
	recommendReady        = "You are well-prepared for this role!"
	recommendFundamentals = "Consider starting with fundamentals and building up gradually"
)

// ComputeSkillGap compares currentSkills against the skills targetRole
// requires. Membership ignores case and surrounding whitespace; the returned
// skill names keep the catalog's spelling and order.
//
// An unknown role is a ROLE_NOT_FOUND error listing the catalog's roles.
func ComputeSkillGap(c *Catalog, targetRole string, currentSkills []string) (*models.SkillGapResult, error) {
	if err := validateInput(targetRole, currentSkills); err != nil {
		return nil, err
	}

	role, ok := c.Resolve(targetRole)
	if !ok {
		return nil, apperrors.NewRoleNotFoundError(strings.TrimSpace(targetRole), c.Roles())
	}
	required, _ := c.RequiredSkills(role)

	have := foldSet(currentSkills)
	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, skill := range required {
		if _, ok := have[Fold(skill)]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	return &models.SkillGapResult{
		TargetRole:     role,
		RequiredSkills: required,
		MatchedSkills:  matched,
		MissingSkills:  missing,
		GapPercentage:  GapPercentage(len(missing), len(required)),
		Recommendation: Recommendation(missing, len(required)),
	}, nil
}

func validateInput(targetRole string, currentSkills []string) error {
	if strings.TrimSpace(targetRole) == "" {
		return apperrors.NewInvalidInputError("targetRole", "Please provide a target role")
	}
	if len(currentSkills) == 0 {
		return apperrors.NewInvalidInputError("currentSkills", "Please provide current skills as a non-empty list")
	}
	for i, s := range currentSkills {
		if strings.TrimSpace(s) == "" {
			return apperrors.NewInvalidInputError("currentSkills",
				fmt.Sprintf("currentSkills[%d] must not be blank", i))
		}
	}
	return nil
}

// GapPercentage is the share of required skills still missing, rounded to
// the nearest integer. A role with no requirements has no gap.
func GapPercentage(missing, required int) int {
	if required == 0 {
		return 0
	}
	return int(math.Round(100 * float64(missing) / float64(required)))
}

// Recommendation picks the advice text for a result. The checks run in a
// fixed order: nothing missing, everything missing, at most two missing,
// then the general progress message.
func Recommendation(missing []string, required int) string {
	switch n := len(missing); {
	case n == 0:
		return recommendReady
	case n == required:
		return recommendFundamentals
	case n <= 2:
		return fmt.Sprintf("You're almost there! Focus on learning %s", strings.Join(missing, " and "))
	default:
		return fmt.Sprintf("You have %d of %d required skills. Focus on the missing skills to close the gap",
			required-n, required)
	}
}
