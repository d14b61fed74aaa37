// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"cloudops-workers/internal/common/aws"
)

func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	// base config
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// environment overlay, optional
	v.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = v.MergeInConfig()

	return finish(v)
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return finish(v)
}

// Env overrides use the key path with dots replaced: CAMUNDA_BROKER_ADDRESS.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func finish(v *viper.Viper) (*Config, error) {
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

func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				fmt.Printf("Loaded .env from: %s\n", path)
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

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		strVal, ok := v.Get(key).(string)
		if !ok {
			continue
		}
		if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
			expanded := os.ExpandEnv(strVal)
			if expanded != strVal {
				v.Set(key, expanded)
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.Camunda.BrokerAddress == "" {
		if val := os.Getenv("ZEEBE_ADDRESS"); val != "" {
			cfg.Camunda.BrokerAddress = val
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
	if cfg.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Redis.Password = val
		}
	}
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "cloudops-workers"
	}

	if cfg.Host.Mode == "" {
		cfg.Host.Mode = HostModeZeebe
	}

	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Camunda.Timeout == 0 {
		cfg.Camunda.Timeout = 30000
	}
	if cfg.Camunda.RequestTimeout == 0 {
		cfg.Camunda.RequestTimeout = 30000
	}

	if cfg.Operations.Defaults.MaxJobsActive == 0 {
		cfg.Operations.Defaults.MaxJobsActive = 5
	}
	if cfg.Operations.Defaults.Timeout == 0 {
		cfg.Operations.Defaults.Timeout = 30000
	}

	if cfg.Redis.RequestKey == "" {
		cfg.Redis.RequestKey = "cloudops:requests"
	}
	if cfg.Redis.ResultPrefix == "" {
		cfg.Redis.ResultPrefix = "cloudops:results"
	}
	if cfg.Redis.PollTimeout == 0 {
		cfg.Redis.PollTimeout = 5000
	}

	if cfg.Audit.Backend == "" {
		cfg.Audit.Backend = AuditBackendNone
	}
	if cfg.Audit.Table == "" {
		cfg.Audit.Table = "operation_invocations"
	}
	if cfg.Audit.Index == "" {
		cfg.Audit.Index = "operation-invocations"
	}

	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 25
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Elasticsearch.URL == "" && len(cfg.Database.Elasticsearch.Addresses) > 0 {
		cfg.Database.Elasticsearch.URL = cfg.Database.Elasticsearch.Addresses[0]
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Observability.MetricsAddress == "" {
		cfg.Observability.MetricsAddress = ":8080"
	}
	if cfg.Observability.Tracing.Exporter == "" {
		cfg.Observability.Tracing.Exporter = "none"
	}

	for key, worker := range cfg.Operations.Overrides {
		if worker.MaxJobsActive == 0 {
			worker.MaxJobsActive = cfg.Operations.Defaults.MaxJobsActive
		}
		if worker.Timeout == 0 {
			worker.Timeout = cfg.Operations.Defaults.Timeout
		}
		cfg.Operations.Overrides[key] = worker
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	switch cfg.Host.Mode {
	case HostModeZeebe:
		if cfg.Camunda.BrokerAddress == "" {
			return fmt.Errorf("camunda.broker_address is required")
		}
	case HostModeRedis:
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis.address is required")
		}
	default:
		return fmt.Errorf("host.mode must be %q or %q, got %q", HostModeZeebe, HostModeRedis, cfg.Host.Mode)
	}

	if cfg.AWS.HTTPTimeout < 0 {
		return fmt.Errorf("aws.http_timeout must not be negative")
	}

	for _, s := range cfg.Operations.Services {
		if _, err := aws.ParseService(s); err != nil {
			return fmt.Errorf("operations.services: %w", err)
		}
	}

	switch cfg.Audit.Backend {
	case AuditBackendNone:
	case AuditBackendPostgres:
		pg := cfg.Database.Postgres
		if pg.Host == "" {
			return fmt.Errorf("database.postgres.host is required")
		}
		if pg.Database == "" {
			return fmt.Errorf("database.postgres.database is required")
		}
		if pg.User == "" {
			return fmt.Errorf("database.postgres.user is required")
		}
	case AuditBackendElasticsearch:
		if cfg.Database.Elasticsearch.GetURL() == "" {
			return fmt.Errorf("database.elasticsearch.addresses or url is required")
		}
	default:
		return fmt.Errorf("audit.backend %q is not supported", cfg.Audit.Backend)
	}

	switch cfg.Observability.Tracing.Exporter {
	case "none", "stdout":
	case "otlp":
		if cfg.Observability.Tracing.Endpoint == "" {
			return fmt.Errorf("observability.tracing.endpoint is required for otlp")
		}
	default:
		return fmt.Errorf("observability.tracing.exporter %q is not supported", cfg.Observability.Tracing.Exporter)
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// GetWorkerConfig returns the per-operation override or the defaults.
func GetWorkerConfig(cfg *Config, operation string) WorkerConfig {
	if worker, exists := cfg.Operations.Overrides[operation]; exists {
		return worker
	}
	return cfg.Operations.Defaults
}

// IsOperationEnabled applies the service filter, then the enable list,
// then the disable list.
func IsOperationEnabled(cfg *Config, operation string, service aws.Service) bool {
	ops := cfg.Operations
	if len(ops.Services) > 0 && !containsFold(ops.Services, string(service)) {
		return false
	}
	if len(ops.Enabled) > 0 && !contains(ops.Enabled, operation) {
		return false
	}
	return !contains(ops.Disabled, operation)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(strings.TrimSpace(v), s) {
			return true
		}
	}
	return false
}
