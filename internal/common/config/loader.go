// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configs/config.yaml, merges configs/config.<env>.yaml on top and
// applies environment overrides. A missing base file is not an error: every
// setting has a default and the service runs on the embedded role tables.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	v.SetConfigName(fmt.Sprintf("config.%s", environment()))
	_ = v.MergeInConfig() // ignore error if not found

	return build(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return build(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// server.port can be overridden with SERVER_PORT, and so on.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Keys must be known to viper for AutomaticEnv to reach Unmarshal.
	v.SetDefault("app.name", "skillgap-analyzer")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.environment", environment())
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.gin_mode", "")
	v.SetDefault("catalog.source", CatalogSourceFile)
	v.SetDefault("catalog.role_skills_path", "")
	v.SetDefault("catalog.learning_order_path", "")
	v.SetDefault("news.base_url", "https://hacker-news.firebaseio.com/v0")
	v.SetDefault("news.cache_enabled", true)
	v.SetDefault("camunda.enabled", false)
	v.SetDefault("camunda.broker_address", "")
	v.SetDefault("camunda.plaintext", true)
	v.SetDefault("database.redis.enabled", false)
	v.SetDefault("database.redis.address", "")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.postgres.host", "")
	v.SetDefault("database.postgres.database", "")
	v.SetDefault("database.postgres.user", "")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	return v
}

func build(v *viper.Viper) (*Config, error) {
	expandEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func environment() string {
	if env := os.Getenv("APP_ENVIRONMENT"); env != "" {
		return env
	}
	if env := os.Getenv("NODE_ENV"); env != "" {
		return env
	}
	return "development"
}

// loadEnvFile loads the first .env found walking up from the working directory.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders left in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal && expanded != "" {
				v.Set(key, expanded)
			}
		}
	}
}

// overrideEmptyConfig honours the plain variable names used by the Node
// deployment (PORT, REDIS_URL, DB_USER, ...).
func overrideEmptyConfig(cfg *Config) {
	if val := os.Getenv("PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}

	if cfg.Database.Redis.Address == "" {
		if val := os.Getenv("REDIS_URL"); val != "" {
			cfg.Database.Redis.Address = strings.TrimPrefix(val, "redis://")
			cfg.Database.Redis.Enabled = true
		}
	}

	if cfg.Database.Postgres.User == "" {
		if val := os.Getenv("DB_USER"); val != "" {
			cfg.Database.Postgres.User = val
		}
	}
	if cfg.Database.Postgres.Password == "" {
		if val := os.Getenv("DB_PASSWORD"); val != "" {
			cfg.Database.Postgres.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "skillgap-analyzer"
	}
	if cfg.App.Version == "" {
		cfg.App.Version = "1.0.0"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}

	// Server defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 5000
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30000
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	// Catalog defaults
	if cfg.Catalog.Source == "" {
		cfg.Catalog.Source = CatalogSourceFile
	}
	if cfg.Catalog.CacheTTL == 0 {
		cfg.Catalog.CacheTTL = 600000
	}

	// News defaults
	if cfg.News.BaseURL == "" {
		cfg.News.BaseURL = "https://hacker-news.firebaseio.com/v0"
	}
	if cfg.News.Timeout == 0 {
		cfg.News.Timeout = 10000
	}
	if cfg.News.DefaultLimit == 0 {
		cfg.News.DefaultLimit = 10
	}
	if cfg.News.MaxLimit == 0 {
		cfg.News.MaxLimit = 30
	}
	if cfg.News.CacheTTL == 0 {
		cfg.News.CacheTTL = 300000
	}

	// Camunda defaults
	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}

	// Database defaults
	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 10
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 2
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}

	if cfg.Workers == nil {
		cfg.Workers = map[string]WorkerConfig{}
	}
	for key, worker := range cfg.Workers {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = cfg.Camunda.MaxJobsActive
		}
		if worker.Timeout == 0 {
			worker.Timeout = cfg.Camunda.Timeout
		}
		if worker.MaxRetries == 0 {
			worker.MaxRetries = 3
		}
		cfg.Workers[key] = worker
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	switch cfg.Catalog.Source {
	case CatalogSourceFile:
	case CatalogSourcePostgres:
		if cfg.Database.Postgres.Host == "" {
			return fmt.Errorf("database.postgres.host is required when catalog.source is postgres")
		}
		if cfg.Database.Postgres.Database == "" {
			return fmt.Errorf("database.postgres.database is required when catalog.source is postgres")
		}
		if cfg.Database.Postgres.User == "" {
			return fmt.Errorf("database.postgres.user is required when catalog.source is postgres")
		}
	default:
		return fmt.Errorf("catalog.source must be %q or %q, got %q",
			CatalogSourceFile, CatalogSourcePostgres, cfg.Catalog.Source)
	}

	if cfg.News.DefaultLimit > cfg.News.MaxLimit {
		return fmt.Errorf("news.default_limit (%d) exceeds news.max_limit (%d)",
			cfg.News.DefaultLimit, cfg.News.MaxLimit)
	}

	if cfg.Camunda.Enabled && cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required when camunda.enabled is true")
	}

	if cfg.Database.Redis.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when database.redis.enabled is true")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig retrieves worker-specific configuration with fallback to defaults
func GetWorkerConfig(cfg *Config, workerName string) WorkerConfig {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker
	}

	return WorkerConfig{
		Enabled:       true,
		MaxJobsActive: cfg.Camunda.MaxJobsActive,
		Timeout:       cfg.Camunda.Timeout,
		MaxRetries:    3,
	}
}

// IsWorkerEnabled checks if a specific worker is enabled
func IsWorkerEnabled(cfg *Config, workerName string) bool {
	if worker, exists := cfg.Workers[workerName]; exists {
		return worker.Enabled
	}
	return true
}
