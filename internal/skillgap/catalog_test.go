package skillgap

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/pkg/tablefile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog(t *testing.T) {
	c := defaultCatalog(t)

	assert.Equal(t, []string{
		"Backend Developer",
		"Data Analyst",
		"Data Scientist",
		"DevOps Engineer",
		"Frontend Developer",
		"Full Stack Developer",
		"Mobile Developer",
	}, c.Roles())

	skills, ok := c.RequiredSkills("Frontend Developer")
	require.True(t, ok)
	assert.Equal(t, []string{"HTML", "CSS", "JavaScript", "React", "TypeScript", "Redux", "Webpack"}, skills)

	_, ok = c.LearningOrder("DevOps Engineer")
	assert.False(t, ok, "DevOps has no prerequisite list")
}

func TestCatalog_LookupIgnoresCaseAndSpace(t *testing.T) {
	c := defaultCatalog(t)

	name, ok := c.Resolve("  data ANALYST ")
	require.True(t, ok)
	assert.Equal(t, "Data Analyst", name)

	_, ok = c.RequiredSkills("Astronaut")
	assert.False(t, ok)
}

func TestCatalog_ReturnsCopies(t *testing.T) {
	c := defaultCatalog(t)

	skills, _ := c.RequiredSkills("Backend Developer")
	skills[0] = "COBOL"
	roles := c.Roles()
	roles[0] = "Astronaut"

	again, _ := c.RequiredSkills("Backend Developer")
	assert.Equal(t, "Node.js", again[0])
	assert.Equal(t, "Backend Developer", c.Roles()[0])
}

func TestNewCatalog_CopiesInput(t *testing.T) {
	required := tablefile.Table{"QA Engineer": {"Selenium"}}
	c, err := NewCatalog(required, nil)
	require.NoError(t, err)

	required["QA Engineer"][0] = "changed"
	skills, _ := c.RequiredSkills("QA Engineer")
	assert.Equal(t, []string{"Selenium"}, skills)
}

func TestNewCatalog_RejectsCaseCollisions(t *testing.T) {
	_, err := NewCatalog(tablefile.Table{
		"Data Analyst": {"SQL"},
		"data analyst": {"Excel"},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "differ only in case")
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	skillsPath := filepath.Join(dir, "role_skills.json")
	require.NoError(t, os.WriteFile(skillsPath, []byte(`{"SRE": ["Linux", "Go"]}`), 0o644))

	t.Run("file for skills, built-in order", func(t *testing.T) {
		c, err := LoadCatalog(skillsPath, "")
		require.NoError(t, err)
		assert.Equal(t, []string{"SRE"}, c.Roles())
		_, ok := c.LearningOrder("Frontend Developer")
		assert.True(t, ok)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(dir, "nope.json"), "")
		assert.ErrorIs(t, err, apperrors.ErrDataLoadFailure)
	})

	t.Run("unparsable file", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"SRE": "Linux"}`), 0o644))
		_, err := LoadCatalog(skillsPath, bad)
		assert.ErrorIs(t, err, apperrors.ErrDataLoadFailure)
	})
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"React", "node.js", "Git"}, SplitSkills("React, node.js ,, Git "))
	assert.Empty(t, SplitSkills(" , "))
}

func TestFold(t *testing.T) {
	assert.Equal(t, Fold("JavaScript"), Fold("  javascript "))
	assert.NotEqual(t, Fold("Java"), Fold("JavaScript"))
}
