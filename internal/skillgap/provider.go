package skillgap

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/common/logger"
	"skillgap-analyzer/pkg/tablefile"

	"github.com/redis/go-redis/v9"
)

// Provider hands out the catalog a request should use.
type Provider interface {
	Catalog(ctx context.Context) (*Catalog, error)
}

// StaticProvider serves one catalog loaded at startup.
type StaticProvider struct {
	catalog *Catalog
}

func NewStaticProvider(c *Catalog) *StaticProvider {
	return &StaticProvider{catalog: c}
}

func (p *StaticProvider) Catalog(context.Context) (*Catalog, error) {
	return p.catalog, nil
}

const (
	queryRoleSkills    = `SELECT role, skills FROM role_skills ORDER BY role`
	queryLearningOrder = `SELECT role, skills FROM role_learning_order ORDER BY role`

	cacheKeyPrefix = "catalog:"
)

// PostgresProvider reads both role tables from Postgres on every lookup,
// keeping a copy of each in Redis for ttl when a client is configured.
type PostgresProvider struct {
	db     *sql.DB
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewPostgresProvider builds the provider. redisClient may be nil.
func NewPostgresProvider(db *sql.DB, redisClient *redis.Client, ttl time.Duration, log logger.Logger) *PostgresProvider {
	return &PostgresProvider{
		db:     db,
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "catalog-postgres"}),
	}
}

func (p *PostgresProvider) Catalog(ctx context.Context) (*Catalog, error) {
	required, err := p.table(ctx, "role_skills", queryRoleSkills)
	if err != nil {
		return nil, err
	}
	if len(required) == 0 {
		return nil, apperrors.NewDataLoadFailureError("role_skills", fmt.Errorf("table is empty"))
	}

	order, err := p.table(ctx, "role_learning_order", queryLearningOrder)
	if err != nil {
		return nil, err
	}

	catalog, err := NewCatalog(required, order)
	if err != nil {
		return nil, apperrors.NewDataLoadFailureError("catalog", err)
	}
	return catalog, nil
}

func (p *PostgresProvider) table(ctx context.Context, name, query string) (tablefile.Table, error) {
	if cached, ok := p.getCached(ctx, name); ok {
		return cached, nil
	}

	table, err := p.queryTable(ctx, query)
	if err != nil {
		return nil, apperrors.NewDataLoadFailureError(name, err)
	}

	p.setCached(ctx, name, table)
	return table, nil
}

func (p *PostgresProvider) queryTable(ctx context.Context, query string) (tablefile.Table, error) {
	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	table := tablefile.Table{}
	for rows.Next() {
		var (
			role string
			raw  []byte
		)
		if err := rows.Scan(&role, &raw); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		var skills []string
		if err := json.Unmarshal(raw, &skills); err != nil {
			return nil, fmt.Errorf("skills of %q: %w", role, err)
		}
		table[role] = skills
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	if len(table) == 0 {
		return table, nil
	}

	// Same checks as a table file: no blank or repeated skills.
	data, err := json.Marshal(table)
	if err != nil {
		return nil, err
	}
	return tablefile.Decode(data)
}

func (p *PostgresProvider) getCached(ctx context.Context, name string) (tablefile.Table, bool) {
	if p.redis == nil {
		return nil, false
	}

	data, err := p.redis.Get(ctx, cacheKeyPrefix+name).Bytes()
	if err != nil {
		if err != redis.Nil {
			p.logger.Warn("catalog cache read failed", map[string]interface{}{
				"table": name,
				"error": err,
			})
		}
		return nil, false
	}

	var table tablefile.Table
	if err := json.Unmarshal(data, &table); err != nil {
		p.logger.Warn("discarding corrupt catalog cache entry", map[string]interface{}{
			"table": name,
			"error": err,
		})
		return nil, false
	}
	return table, true
}

func (p *PostgresProvider) setCached(ctx context.Context, name string, table tablefile.Table) {
	if p.redis == nil || p.ttl <= 0 {
		return
	}

	data, err := json.Marshal(table)
	if err != nil {
		return
	}
	if err := p.redis.Set(ctx, cacheKeyPrefix+name, data, p.ttl).Err(); err != nil {
		p.logger.Warn("catalog cache write failed", map[string]interface{}{
			"table": name,
			"error": err,
		})
	}
}

const (
	createRoleSkills    = `CREATE TABLE IF NOT EXISTS role_skills (role TEXT PRIMARY KEY, skills JSONB NOT NULL)`
	createLearningOrder = `CREATE TABLE IF NOT EXISTS role_learning_order (role TEXT PRIMARY KEY, skills JSONB NOT NULL)`
	insertRoleSkills    = `INSERT INTO role_skills (role, skills) VALUES ($1, $2)`
	insertLearningOrder = `INSERT INTO role_learning_order (role, skills) VALUES ($1, $2)`
)

// SeedPostgres replaces both role tables in one transaction, creating them
// if needed.
func SeedPostgres(ctx context.Context, db *sql.DB, required, order tablefile.Table) error {
	if _, err := NewCatalog(required, order); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	steps := []struct {
		create, insert, table string
		rows                  tablefile.Table
	}{
		{createRoleSkills, insertRoleSkills, "role_skills", required},
		{createLearningOrder, insertLearningOrder, "role_learning_order", order},
	}
	for _, s := range steps {
		if _, err := tx.ExecContext(ctx, s.create); err != nil {
			return fmt.Errorf("create %s: %w", s.table, err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.table); err != nil {
			return fmt.Errorf("clear %s: %w", s.table, err)
		}
		for _, role := range s.rows.Roles() {
			skills, err := json.Marshal(s.rows[role])
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, s.insert, role, skills); err != nil {
				return fmt.Errorf("insert %s/%s: %w", s.table, role, err)
			}
		}
	}

	return tx.Commit()
}
