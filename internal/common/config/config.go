// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Server   ServerConfig            `mapstructure:"server"`
	Catalog  CatalogConfig           `mapstructure:"catalog"`
	News     NewsConfig              `mapstructure:"news"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Logging  LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// IsDevelopment reports whether error responses may carry internal details.
func (a AppConfig) IsDevelopment() bool {
	return a.Environment == "" || a.Environment == "development"
}

type ServerConfig struct {
	Port            int      `mapstructure:"port"`
	ReadTimeout     int      `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int      `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"` // milliseconds
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	GinMode         string   `mapstructure:"gin_mode"`
}

// Address returns the listen address for the HTTP server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf(":%d", s.Port)
}

// CatalogConfig selects where the role tables come from.
type CatalogConfig struct {
	Source            string `mapstructure:"source"` // "file" or "postgres"
	RoleSkillsPath    string `mapstructure:"role_skills_path"`
	LearningOrderPath string `mapstructure:"learning_order_path"`
	CacheTTL          int    `mapstructure:"cache_ttl"` // milliseconds
}

const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type NewsConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	Timeout      int    `mapstructure:"timeout"` // milliseconds
	DefaultLimit int    `mapstructure:"default_limit"`
	MaxLimit     int    `mapstructure:"max_limit"`
	CacheEnabled bool   `mapstructure:"cache_enabled"`
	CacheTTL     int    `mapstructure:"cache_ttl"` // milliseconds
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	Plaintext      bool   `mapstructure:"plaintext"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every job worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
	// AllowUnknownRole lets role-keyed workers pass input through for roles
	// missing from the catalog instead of failing the job.
	AllowUnknownRole bool `mapstructure:"allow_unknown_role"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
