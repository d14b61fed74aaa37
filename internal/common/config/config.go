// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig           `mapstructure:"app"`
	Camunda       CamundaConfig       `mapstructure:"camunda"`
	Host          HostConfig          `mapstructure:"host"`
	AWS           AWSConfig           `mapstructure:"aws"`
	Operations    OperationsConfig    `mapstructure:"operations"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Audit         AuditConfig         `mapstructure:"audit"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
	Plaintext      bool   `mapstructure:"plaintext"`
}

const (
	HostModeZeebe = "zeebe"
	HostModeRedis = "redis"
)

// HostConfig selects which orchestrator feeds the engine.
type HostConfig struct {
	Mode string `mapstructure:"mode"`
}

// AWSConfig holds process-wide transport settings. Region and credentials
// are per invocation and deliberately absent here.
type AWSConfig struct {
	HTTPTimeout int    `mapstructure:"http_timeout"` // milliseconds, 0 = none
	UserAgent   string `mapstructure:"user_agent"`
}

// OperationsConfig picks which catalog operations get a worker.
// Empty Services and Enabled lists mean everything.
type OperationsConfig struct {
	Services       []string                `mapstructure:"services"`
	Enabled        []string                `mapstructure:"enabled"`
	Disabled       []string                `mapstructure:"disabled"`
	ResultVariable string                  `mapstructure:"result_variable"`
	Defaults       WorkerConfig            `mapstructure:"defaults"`
	Overrides      map[string]WorkerConfig `mapstructure:"overrides"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	MaxJobsActive int `mapstructure:"max_jobs_active"`
	Timeout       int `mapstructure:"timeout"` // milliseconds
}

type RedisConfig struct {
	Address      string `mapstructure:"address"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	RequestKey   string `mapstructure:"request_key"`
	ResultPrefix string `mapstructure:"result_prefix"`
	PollTimeout  int    `mapstructure:"poll_timeout"` // milliseconds
	ResultTTL    int    `mapstructure:"result_ttl"`   // milliseconds, 0 = keep
}

const (
	AuditBackendNone          = "none"
	AuditBackendPostgres      = "postgres"
	AuditBackendElasticsearch = "elasticsearch"
)

type AuditConfig struct {
	Backend string `mapstructure:"backend"`
	Table   string `mapstructure:"table"`
	Index   string `mapstructure:"index"`
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
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

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ObservabilityConfig struct {
	MetricsAddress string        `mapstructure:"metrics_address"`
	Tracing        TracingConfig `mapstructure:"tracing"`
}

type TracingConfig struct {
	Exporter    string  `mapstructure:"exporter"` // none | stdout | otlp
	Endpoint    string  `mapstructure:"endpoint"`
	Insecure    bool    `mapstructure:"insecure"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}
