// Package skillgap holds the role catalog and the pure functions that
// compare a user's skills against it.
package skillgap

import (
	"fmt"

	"skillgap-analyzer/pkg/tablefile"
)

// Catalog is an immutable pair of role tables: the skills each role
// requires and the order in which they are best learned. The two tables
// are independent; a role may appear in one and not the other.
type Catalog struct {
	required   tablefile.Table
	order      tablefile.Table
	roleIndex  map[string]string // folded name -> key in required
	orderIndex map[string]string // folded name -> key in order
	roles      []string
}

// NewCatalog copies both tables. Role lookups are case-insensitive, so two
// keys that fold to the same name are rejected.
func NewCatalog(required, order tablefile.Table) (*Catalog, error) {
	roleIndex, err := indexRoles(required)
	if err != nil {
		return nil, fmt.Errorf("role skills: %w", err)
	}
	orderIndex, err := indexRoles(order)
	if err != nil {
		return nil, fmt.Errorf("learning order: %w", err)
	}

	return &Catalog{
		required:   required.Clone(),
		order:      order.Clone(),
		roleIndex:  roleIndex,
		orderIndex: orderIndex,
		roles:      required.Roles(),
	}, nil
}

func indexRoles(table tablefile.Table) (map[string]string, error) {
	index := make(map[string]string, len(table))
	for role := range table {
		key := Fold(role)
		if prev, ok := index[key]; ok {
			// map iteration order is random; report the pair sorted
			a, b := prev, role
			if b < a {
				a, b = b, a
			}
			return nil, fmt.Errorf("roles %q and %q differ only in case", a, b)
		}
		index[key] = role
	}
	return index, nil
}

// Roles returns the known role names, sorted.
func (c *Catalog) Roles() []string {
	out := make([]string, len(c.roles))
	copy(out, c.roles)
	return out
}

// Resolve returns the catalog spelling of role.
func (c *Catalog) Resolve(role string) (string, bool) {
	name, ok := c.roleIndex[Fold(role)]
	return name, ok
}

// RequiredSkills returns the skills role requires, in catalog order.
func (c *Catalog) RequiredSkills(role string) ([]string, bool) {
	return lookup(c.required, c.roleIndex, role)
}

// LearningOrder returns the prerequisite ordering for role, if it has one.
func (c *Catalog) LearningOrder(role string) ([]string, bool) {
	return lookup(c.order, c.orderIndex, role)
}

func lookup(table tablefile.Table, index map[string]string, role string) ([]string, bool) {
	name, ok := index[Fold(role)]
	if !ok {
		return nil, false
	}
	skills := table[name]
	out := make([]string, len(skills))
	copy(out, skills)
	return out, true
}

// Len is the number of roles with required skills.
func (c *Catalog) Len() int {
	return len(c.roles)
}
