package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaultSearchPaths = []string{"./configs", "../configs", "../../configs", "."}

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml over it and applies
// environment overrides such as SERVER_ADDRESS or DATABASE_POSTGRES_HOST.
func Load() (*Config, error) {
	return load(defaultSearchPaths...)
}

func load(paths ...string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = v.GetString("app.environment")
	}
	v.SetConfigName("config." + env)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading %s config: %w", env, err)
		}
	}

	return finish(v)
}

// LoadFromFile reads one explicit config file. Environment overrides still apply.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func finish(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideLegacyEnv(&cfg)
	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	candidates := []string{".env", "../.env", "../../.env"}
	if root := findProjectRoot(); root != "" {
		candidates = append(candidates, filepath.Join(root, ".env"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

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
			return ""
		}
		dir = parent
	}
}

// setDefaults registers every key so AutomaticEnv can override keys absent from the files.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "transparencia-judicial")
	v.SetDefault("app.version", "dev")
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("catalog.source", SourceBundled)
	v.SetDefault("catalog.file", "")

	v.SetDefault("database.postgres.url", "")
	v.SetDefault("database.postgres.host", "")
	v.SetDefault("database.postgres.port", 5432)
	v.SetDefault("database.postgres.database", "")
	v.SetDefault("database.postgres.user", "")
	v.SetDefault("database.postgres.password", "")
	v.SetDefault("database.postgres.max_connections", 10)
	v.SetDefault("database.postgres.max_idle", 2)
	v.SetDefault("database.postgres.sslmode", "disable")

	v.SetDefault("database.redis.address", "")
	v.SetDefault("database.redis.password", "")
	v.SetDefault("database.redis.db", 0)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", time.Minute)
	v.SetDefault("cache.prefix", "transparency:")

	v.SetDefault("query.strict", true)
	v.SetDefault("query.default_page_size", 6)
	v.SetDefault("query.max_page_size", 100)
	v.SetDefault("query.search_limit", 20)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// overrideLegacyEnv honours the variables the first deployment used.
func overrideLegacyEnv(cfg *Config) {
	if val := os.Getenv("SERVER_ADDRESS"); val != "" {
		cfg.Server.Address = val
	}
	if val := os.Getenv("POSTGRES_CONN"); val != "" {
		cfg.Database.Postgres.URL = val
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Query.DefaultPageSize <= 0 {
		cfg.Query.DefaultPageSize = 6
	}
	if cfg.Query.MaxPageSize < cfg.Query.DefaultPageSize {
		cfg.Query.MaxPageSize = cfg.Query.DefaultPageSize
	}
	if cfg.Query.SearchLimit < 0 {
		cfg.Query.SearchLimit = 0
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = time.Minute
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	switch cfg.Catalog.Source {
	case SourceBundled:
	case SourceFile:
		if cfg.Catalog.File == "" {
			return fmt.Errorf("catalog.file is required when catalog.source is %q", SourceFile)
		}
	case SourcePostgres:
		if !cfg.Database.Postgres.configured() {
			return fmt.Errorf("database.postgres url or host/database/user is required when catalog.source is %q", SourcePostgres)
		}
	default:
		return fmt.Errorf("catalog.source must be one of %s, %s, %s; got %q",
			SourceBundled, SourceFile, SourcePostgres, cfg.Catalog.Source)
	}

	if cfg.Cache.Enabled && cfg.Database.Redis.Address == "" {
		return fmt.Errorf("database.redis.address is required when cache.enabled is true")
	}

	switch cfg.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console; got %q", cfg.Logging.Format)
	}
	return nil
}
