// pkg/tablefile/tablefile.go
package tablefile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"skillgap-analyzer/internal/common/validation"
)

// Table maps a role name to an ordered list of skill names. It is the format
// of both the required-skills file and the learning-order file.
type Table map[string][]string

var tableSchema = validation.MustCompile("role-table", `{
	"type": "object",
	"minProperties": 1,
	"propertyNames": {"minLength": 1},
	"additionalProperties": {
		"type": "array",
		"uniqueItems": true,
		"items": {"type": "string", "minLength": 1}
	}
}`)

// Decode validates data against the role-table schema and decodes it.
// Duplicate role keys are rejected, which encoding/json alone would not do.
func Decode(data []byte) (Table, error) {
	res, err := tableSchema.ValidateBytes(data)
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, fmt.Errorf("invalid role table: %s", res.Summary())
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("read role table: %w", err)
	}

	table := Table{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read role table: %w", err)
		}
		role, _ := tok.(string)
		if _, dup := table[role]; dup {
			return nil, fmt.Errorf("invalid role table: duplicate role %q", role)
		}

		var skills []string
		if err := dec.Decode(&skills); err != nil {
			return nil, fmt.Errorf("read skills of %q: %w", role, err)
		}
		table[role] = skills
	}

	return table, nil
}

// Load reads and decodes a table from r.
func Load(r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read role table: %w", err)
	}
	return Decode(data)
}

// LoadFile reads and decodes the table stored at path.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	table, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// SaveFile writes the table as indented JSON, creating parent directories.
func SaveFile(path string, table Table) error {
	data, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal role table: %w", err)
	}

	if _, err := Decode(data); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write role table: %w", err)
	}
	return nil
}

// Roles returns the table's keys in lexical order.
func (t Table) Roles() []string {
	roles := make([]string, 0, len(t))
	for role := range t {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for role, skills := range t {
		out[role] = append([]string(nil), skills...)
	}
	return out
}
