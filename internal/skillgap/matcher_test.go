package skillgap

import (
	"strings"
	"testing"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/pkg/tablefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSkillGap_Frontend(t *testing.T) {
	c := defaultCatalog(t)

	res, err := ComputeSkillGap(c, "Frontend Developer", []string{"HTML", "css", "Javascript"})
	require.NoError(t, err)

	assert.Equal(t, "Frontend Developer", res.TargetRole)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript"}, res.MatchedSkills)
	assert.Equal(t, []string{"React", "TypeScript", "Redux", "Webpack"}, res.MissingSkills)
	assert.Equal(t, 57, res.GapPercentage)
	assert.Equal(t, "You have 3 of 7 required skills. Focus on the missing skills to close the gap", res.Recommendation)
}

func TestComputeSkillGap_UnknownRole(t *testing.T) {
	c := defaultCatalog(t)

	_, err := ComputeSkillGap(c, "Nonexistent Role", []string{"X"})
	require.ErrorIs(t, err, apperrors.ErrRoleNotFound)

	std := apperrors.AsStandardError(err)
	assert.Equal(t, c.Roles(), std.Metadata["validRoles"])
	assert.Equal(t, "Nonexistent Role", std.Metadata["role"])
}

func TestComputeSkillGap_InvalidInput(t *testing.T) {
	c := defaultCatalog(t)

	tests := []struct {
		name   string
		role   string
		skills []string
		field  string
	}{
		{"empty role", "", []string{"Go"}, "targetRole"},
		{"blank role", "   ", []string{"Go"}, "targetRole"},
		{"nil skills", "Data Analyst", nil, "currentSkills"},
		{"empty skills", "Data Analyst", []string{}, "currentSkills"},
		{"blank skill", "Data Analyst", []string{"SQL", " "}, "currentSkills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeSkillGap(c, tt.role, tt.skills)
			require.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.field, apperrors.AsStandardError(err).Metadata["field"])
		})
	}
}

func TestComputeSkillGap_RoleCaseInsensitive(t *testing.T) {
	c := defaultCatalog(t)

	res, err := ComputeSkillGap(c, " data scientist", []string{"python"})
	require.NoError(t, err)
	assert.Equal(t, "Data Scientist", res.TargetRole)
	assert.Equal(t, []string{"Python"}, res.MatchedSkills)
}

func TestComputeSkillGap_PartitionsRequiredSkills(t *testing.T) {
	c := defaultCatalog(t)
	skillSets := [][]string{
		{"nothing relevant"},
		{"git", "DOCKER", "  aws "},
		{"JavaScript", "React", "Node.js", "Express", "MongoDB", "REST API", "Git", "Python", "SQL"},
	}

	for _, role := range c.Roles() {
		required, _ := c.RequiredSkills(role)
		for _, skills := range skillSets {
			res, err := ComputeSkillGap(c, role, skills)
			require.NoError(t, err)

			assert.ElementsMatch(t, required, append(append([]string{}, res.MatchedSkills...), res.MissingSkills...),
				"%s %v", role, skills)
			for _, m := range res.MatchedSkills {
				assert.NotContains(t, res.MissingSkills, m)
			}

			if len(res.MissingSkills) == 0 {
				assert.Equal(t, 0, res.GapPercentage)
			}
			if len(res.MatchedSkills) == 0 {
				assert.Equal(t, 100, res.GapPercentage)
			}
		}
	}
}

func TestComputeSkillGap_CaseAndSpaceInvariance(t *testing.T) {
	c := defaultCatalog(t)
	skills := []string{"Python", "Pandas", "SQL"}
	mangled := make([]string, len(skills))
	for i, s := range skills {
		mangled[i] = "  " + strings.ToUpper(s) + "\t"
	}

	a, err := ComputeSkillGap(c, "Data Analyst", skills)
	require.NoError(t, err)
	b, err := ComputeSkillGap(c, "Data Analyst", mangled)
	require.NoError(t, err)

	assert.Equal(t, a.MatchedSkills, b.MatchedSkills)
	assert.Equal(t, a.MissingSkills, b.MissingSkills)
}

func TestRecommendationTiers(t *testing.T) {
	c, err := NewCatalog(tablefile.Table{
		"Pair":  {"Go", "SQL"},
		"Large": {"A", "B", "C", "D", "E"},
	}, nil)
	require.NoError(t, err)

	tests := []struct {
		name   string
		role   string
		skills []string
		want   string
	}{
		{"nothing missing", "Pair", []string{"go", "sql"}, recommendReady},
		{"all missing beats two-or-fewer", "Pair", []string{"Rust"}, recommendFundamentals},
		{"one missing", "Pair", []string{"Go"}, "You're almost there! Focus on learning SQL"},
		{"two missing", "Large", []string{"A", "B", "C"}, "You're almost there! Focus on learning D and E"},
		{"progress", "Large", []string{"A", "B"}, "You have 2 of 5 required skills. Focus on the missing skills to close the gap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ComputeSkillGap(c, tt.role, tt.skills)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Recommendation)
		})
	}
}

func TestGapPercentage(t *testing.T) {
	assert.Equal(t, 0, GapPercentage(0, 0))
	assert.Equal(t, 57, GapPercentage(4, 7))
	assert.Equal(t, 43, GapPercentage(3, 7))
	assert.Equal(t, 50, GapPercentage(1, 2))
	assert.Equal(t, 100, GapPercentage(6, 6))
}
