package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissing is returned by Validate when a required value is absent.
var ErrMissing = errors.New("missing required configuration")

type Config struct {
	Env       string          `yaml:"env"`
	Backend   BackendConfig   `yaml:"backend"`
	SportsAPI SportsAPIConfig `yaml:"sports_api"`
	RabbitMQ  RabbitMQConfig  `yaml:"rabbitmq"`
	Sync      SyncConfig      `yaml:"sync"`
	Checks    ChecksConfig    `yaml:"checks"`
	LogLevel  string          `yaml:"log_level"`
}

// BackendConfig describes the hosted Postgres backend. URL is a postgres://
// connection URL; Key is the access key and is used as the password when the
// URL does not carry one.
type BackendConfig struct {
	URL     string `yaml:"url"`
	Key     string `yaml:"key"`
	SSLMode string `yaml:"sslmode"`
}

// DSN returns the connection string with the key applied.
func (b BackendConfig) DSN() (string, error) {
	u, err := url.Parse(b.URL)
	if err != nil {
		return "", fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return "", fmt.Errorf("unsupported backend url scheme %q", u.Scheme)
	}

	user := "postgres"
	if u.User != nil && u.User.Username() != "" {
		user = u.User.Username()
	}
	if _, hasPassword := u.User.Password(); !hasPassword {
		u.User = url.UserPassword(user, b.Key)
	}

	q := u.Query()
	if q.Get("sslmode") == "" && b.SSLMode != "" {
		q.Set("sslmode", b.SSLMode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

type SportsAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Key     string        `yaml:"key"`
	Host    string        `yaml:"host"`
	Timeout time.Duration `yaml:"timeout"`
	Retry   RetryConfig   `yaml:"retry"`
}

type RetryConfig struct {
	MaxAttempts    int           `yaml:"max_attempts"`
	InitialBackoff time.Duration `yaml:"initial_backoff"`
	MaxBackoff     time.Duration `yaml:"max_backoff"`
}

type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

// Enabled reports whether sync events should be published.
func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

type SyncConfig struct {
	// Interval of zero means a single run.
	Interval   time.Duration `yaml:"interval"`
	RunTimeout time.Duration `yaml:"run_timeout"`
	Tables     []string      `yaml:"tables"`
	Season     int           `yaml:"season"`
	LeagueIDs  []int         `yaml:"league_ids"`
}

type ChecksConfig struct {
	ProbeTable   string `yaml:"probe_table"`
	SmallSyncMax int    `yaml:"small_sync_max"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// environment only
	default:
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg.applyEnv()
	cfg.setDefaults()

	return &cfg, nil
}

// Validate checks values that must be present before any network call.
func (c *Config) Validate() error {
	var missing []string
	if c.Backend.URL == "" {
		missing = append(missing, "BACKEND_URL")
	}
	if c.Backend.Key == "" {
		missing = append(missing, "BACKEND_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissing, strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction reports whether the configured mode is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) applyEnv() {
	overrides := []struct {
		key string
		dst *string
	}{
		{"BACKEND_URL", &c.Backend.URL},
		{"BACKEND_KEY", &c.Backend.Key},
		{"SPORTS_API_KEY", &c.SportsAPI.Key},
		{"SPORTS_API_BASE_URL", &c.SportsAPI.BaseURL},
		{"APP_ENV", &c.Env},
		{"RABBITMQ_URL", &c.RabbitMQ.URL},
		{"LOG_LEVEL", &c.LogLevel},
	}
	for _, o := range overrides {
		if v, ok := os.LookupEnv(o.key); ok && v != "" {
			*o.dst = v
		}
	}
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "development"
	}
	if c.Backend.SSLMode == "" {
		c.Backend.SSLMode = "require"
	}
	if c.SportsAPI.BaseURL == "" {
		c.SportsAPI.BaseURL = "https://v3.football.api-sports.io"
	}
	if c.SportsAPI.Host == "" {
		if u, err := url.Parse(c.SportsAPI.BaseURL); err == nil && u.Host != "" {
			c.SportsAPI.Host = u.Host
		}
	}
	if c.SportsAPI.Timeout == 0 {
		c.SportsAPI.Timeout = 30 * time.Second
	}
	if c.SportsAPI.Retry.MaxAttempts == 0 {
		c.SportsAPI.Retry.MaxAttempts = 1
	}
	if c.SportsAPI.Retry.InitialBackoff == 0 {
		c.SportsAPI.Retry.InitialBackoff = 1 * time.Second
	}
	if c.SportsAPI.Retry.MaxBackoff == 0 {
		c.SportsAPI.Retry.MaxBackoff = 30 * time.Second
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "sports_syncer"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "sync_logs"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "sync_reports"
	}
	if c.Sync.RunTimeout == 0 {
		c.Sync.RunTimeout = 5 * time.Minute
	}
	if len(c.Sync.Tables) == 0 {
		c.Sync.Tables = []string{"countries", "leagues", "teams"}
	}
	if c.Sync.Season == 0 {
		c.Sync.Season = time.Now().Year()
	}
	if len(c.Sync.LeagueIDs) == 0 {
		c.Sync.LeagueIDs = []int{39, 140, 135, 78, 61}
	}
	if c.Checks.ProbeTable == "" {
		c.Checks.ProbeTable = "sync_logs"
	}
	if c.Checks.SmallSyncMax == 0 {
		c.Checks.SmallSyncMax = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
