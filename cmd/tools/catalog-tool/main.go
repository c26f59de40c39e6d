// cmd/tools/catalog-tool/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"skillgap-analyzer/internal/common/config"
	"skillgap-analyzer/internal/common/database"
	"skillgap-analyzer/internal/skillgap"
	"skillgap-analyzer/pkg/tablefile"
)

const (
	defaultRoleSkillsPath    = "configs/role_skills.json"
	defaultLearningOrderPath = "configs/learning_order.json"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			help(os.Stderr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		roles := fs.String("roles", defaultRoleSkillsPath, "Path to the role skills table")
		order := fs.String("order", defaultLearningOrderPath, "Path to the learning order table")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return validateTables(out, *roles, *order)

	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		path := fs.String("path", defaultRoleSkillsPath, "Path to a role table")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return listRoles(out, *path)

	case "add":
		fs := flag.NewFlagSet("add", flag.ContinueOnError)
		path := fs.String("path", defaultRoleSkillsPath, "Path to a role table")
		role := fs.String("role", "", "Role name (e.g., Cloud Engineer)")
		skills := fs.String("skills", "", "Comma-separated skills (e.g., \"Linux, AWS, Terraform\")")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if strings.TrimSpace(*role) == "" || strings.TrimSpace(*skills) == "" {
			return fmt.Errorf("role and skills are required for add")
		}
		if err := addRole(*path, *role, skillgap.SplitSkills(*skills)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Added role: %s\n", strings.TrimSpace(*role))
		return nil

	case "remove":
		fs := flag.NewFlagSet("remove", flag.ContinueOnError)
		path := fs.String("path", defaultRoleSkillsPath, "Path to a role table")
		role := fs.String("role", "", "Role name to remove")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		removed, err := removeRole(*path, *role)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Removed role: %s\n", removed)
		return nil

	case "seed":
		fs := flag.NewFlagSet("seed", flag.ContinueOnError)
		roles := fs.String("roles", defaultRoleSkillsPath, "Path to the role skills table")
		order := fs.String("order", defaultLearningOrderPath, "Path to the learning order table")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		return seed(out, *roles, *order)

	case "help", "-h", "--help":
		help(out)
		return nil

	default:
		return errUsage
	}
}

// validateTables loads both tables the way the server does and reports
// learning-order entries for roles the skills table does not define.
func validateTables(out io.Writer, rolesPath, orderPath string) error {
	catalog, err := skillgap.LoadCatalog(rolesPath, orderPath)
	if err != nil {
		return err
	}

	order, err := tablefile.LoadFile(orderPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", orderPath, err)
	}
	for _, role := range order.Roles() {
		if _, ok := catalog.Resolve(role); !ok {
			fmt.Fprintf(out, "Warning: learning order defines unknown role %q\n", role)
		}
	}

	fmt.Fprintf(out, "Catalog validation passed. Found %d roles.\n", catalog.Len())
	return nil
}

func listRoles(out io.Writer, path string) error {
	table, err := tablefile.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	for _, role := range table.Roles() {
		fmt.Fprintf(out, "%s (%d): %s\n", role, len(table[role]), strings.Join(table[role], ", "))
	}
	return nil
}

// addRole appends a role, creating the table file if it does not exist.
func addRole(path, role string, skills []string) error {
	table, err := tablefile.LoadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		table = tablefile.Table{}
	}

	role = strings.TrimSpace(role)
	for _, existing := range table.Roles() {
		if skillgap.Fold(existing) == skillgap.Fold(role) {
			return fmt.Errorf("role %q already exists", existing)
		}
	}

	table[role] = skills
	return tablefile.SaveFile(path, table)
}

func removeRole(path, role string) (string, error) {
	table, err := tablefile.LoadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to load %s: %w", path, err)
	}

	for _, existing := range table.Roles() {
		if skillgap.Fold(existing) == skillgap.Fold(role) {
			delete(table, existing)
			return existing, tablefile.SaveFile(path, table)
		}
	}
	return "", fmt.Errorf("role %q not found", role)
}

// seed replaces the Postgres role tables with the file contents, using the
// database settings from the service configuration.
func seed(out io.Writer, rolesPath, orderPath string) error {
	required, err := tablefile.LoadFile(rolesPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", rolesPath, err)
	}
	order, err := tablefile.LoadFile(orderPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", orderPath, err)
	}
	if _, err := skillgap.NewCatalog(required, order); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		return err
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := pg.Ping(ctx); err != nil {
		return err
	}
	if err := skillgap.SeedPostgres(ctx, pg.DB, required, order); err != nil {
		return err
	}

	fmt.Fprintf(out, "Seeded %d roles and %d learning orders.\n", len(required), len(order))
	return nil
}

func help(w io.Writer) {
	fmt.Fprint(w, `
Usage: catalog-tool <command> [flags]

Commands:
  validate  Load both role tables and check them
  list      Print the roles of a table
  add       Add a role to a table
  remove    Remove a role from a table
  seed      Replace the Postgres role tables with the file contents
  help      Show this help message

Examples:
  catalog-tool validate -roles configs/role_skills.json -order configs/learning_order.json
  catalog-tool add -path configs/role_skills.json -role "Cloud Engineer" -skills "Linux, AWS, Terraform"
  catalog-tool remove -path configs/role_skills.json -role "Cloud Engineer"
  catalog-tool seed

Use 'catalog-tool <command> -h' for more information about a command.
`)
}
