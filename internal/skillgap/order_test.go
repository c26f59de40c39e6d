package skillgap

import (
	"testing"

	"skillgap-analyzer/pkg/tablefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestLearningOrder(t *testing.T) {
	c := defaultCatalog(t)

	tests := []struct {
		name    string
		role    string
		missing []string
		want    []string
	}{
		{
			name:    "reordered by prerequisites",
			role:    "Frontend Developer",
			missing: []string{"React", "TypeScript", "Redux", "Webpack"},
			want:    []string{"TypeScript", "React", "Redux", "Webpack"},
		},
		{
			name:    "skills without an entry are dropped",
			role:    "Data Scientist",
			missing: []string{"Machine Learning", "TensorFlow", "Python"},
			want:    []string{"Python", "Machine Learning"},
		},
		{
			name:    "matching ignores case",
			role:    "backend developer",
			missing: []string{"aws", "git"},
			want:    []string{"Git", "AWS"},
		},
		{
			name:    "role without a list keeps input order",
			role:    "DevOps Engineer",
			missing: []string{"Terraform", "Linux"},
			want:    []string{"Terraform", "Linux"},
		},
		{
			name:    "nothing missing",
			role:    "Data Analyst",
			missing: nil,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SuggestLearningOrder(c, tt.missing, tt.role))
		})
	}
}

func TestSuggestLearningOrder_IsSubsequenceOfPrerequisites(t *testing.T) {
	c := defaultCatalog(t)

	for _, role := range c.Roles() {
		order, ok := c.LearningOrder(role)
		if !ok {
			continue
		}
		required, _ := c.RequiredSkills(role)

		got := SuggestLearningOrder(c, required, role)
		i := 0
		for _, s := range order {
			if i < len(got) && got[i] == s {
				i++
			}
		}
		assert.Equal(t, len(got), i, "%s: %v is not a subsequence of %v", role, got, order)
	}
}

func TestSuggestLearningOrder_DuplicateCasingAppearsOnce(t *testing.T) {
	c, err := NewCatalog(
		tablefile.Table{"Role": {"Go"}},
		tablefile.Table{"Role": {"Go", "go"}},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"Go"}, SuggestLearningOrder(c, []string{"GO"}, "Role"))
}

func TestUnsequenced(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, []string{"TensorFlow"},
		Unsequenced(c, []string{"Machine Learning", "TensorFlow"}, "Data Scientist"))
	assert.Empty(t, Unsequenced(c, []string{"Linux"}, "DevOps Engineer"))
}
