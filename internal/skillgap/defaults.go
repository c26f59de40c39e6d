package skillgap

import (
	_ "embed"
	"fmt"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/pkg/tablefile"
)

var (
	//go:embed data/role_skills.json
	defaultRoleSkills []byte

	//go:embed data/learning_order.json
	defaultLearningOrder []byte
)

// DefaultCatalog returns the built-in role tables.
func DefaultCatalog() (*Catalog, error) {
	required, err := tablefile.Decode(defaultRoleSkills)
	if err != nil {
		return nil, fmt.Errorf("built-in role skills: %w", err)
	}
	order, err := tablefile.Decode(defaultLearningOrder)
	if err != nil {
		return nil, fmt.Errorf("built-in learning order: %w", err)
	}
	return NewCatalog(required, order)
}

// LoadCatalog reads both tables from disk. An empty path selects the
// built-in copy of that table. Failures are DATA_LOAD_FAILURE errors.
func LoadCatalog(roleSkillsPath, learningOrderPath string) (*Catalog, error) {
	required, err := loadTable("role_skills", roleSkillsPath, defaultRoleSkills)
	if err != nil {
		return nil, err
	}
	order, err := loadTable("learning_order", learningOrderPath, defaultLearningOrder)
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(required, order)
	if err != nil {
		return nil, apperrors.NewDataLoadFailureError("catalog", err)
	}
	return catalog, nil
}

func loadTable(resource, path string, fallback []byte) (tablefile.Table, error) {
	var (
		table tablefile.Table
		err   error
	)
	if path == "" {
		table, err = tablefile.Decode(fallback)
	} else {
		table, err = tablefile.LoadFile(path)
	}
	if err != nil {
		return nil, apperrors.NewDataLoadFailureError(resource, err)
	}
	return table, nil
}
