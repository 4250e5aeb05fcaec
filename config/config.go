package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Oracle     OracleConfig     `yaml:"oracle"`
	JobStore   JobStoreConfig   `yaml:"job_store"`
	Cache      CacheConfig      `yaml:"cache"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	BasePath        string   `yaml:"base_path"`
	RateLimitPerSec float64  `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int      `yaml:"rate_limit_burst"`
	CORSOrigins     []string `yaml:"cors_origins"`
}

// OracleConfig describes how to reach the schema that owns the PL/SQL routines.
// DSN wins when set; otherwise the URL is built from the discrete fields.
type OracleConfig struct {
	DSN                    string `yaml:"dsn"`
	Host                   string `yaml:"host"`
	Port                   int    `yaml:"port"`
	Service                string `yaml:"service"`
	User                   string `yaml:"user"`
	Password               string `yaml:"password"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// JobStoreConfig holds the connection for the batch job ledger.
type JobStoreConfig struct {
	Driver                 string `yaml:"driver"` // postgres or sqlite
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// CacheConfig configures the dashboard result cache.
type CacheConfig struct {
	TTLSeconds             int           `yaml:"ttl_seconds"` // 0 keeps entries for the process lifetime
	CleanupIntervalSeconds int           `yaml:"cleanup_interval_seconds"`
	MaxEntries             int           `yaml:"max_entries"` // 0 is unbounded
	TTL                    time.Duration `yaml:"-"`
	CleanupInterval        time.Duration `yaml:"-"`
}

// WorkerPoolConfig holds the configuration for the batch job worker pool.
type WorkerPoolConfig struct {
	Size      int `yaml:"size"`
	QueueSize int `yaml:"queue_size"`
}

// SchedulerConfig lists batch jobs fired on a cron schedule.
type SchedulerConfig struct {
	Enabled bool             `yaml:"enabled"`
	Entries []ScheduledEntry `yaml:"entries"`
}

// ScheduledEntry binds a cron expression to a batch job type.
type ScheduledEntry struct {
	Spec    string `yaml:"spec"`
	JobType string `yaml:"job_type"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyEnv lets deployment secrets live outside the YAML file.
func applyEnv(cfg *Config) error {
	if v := os.Getenv("ORACLE_DSN"); v != "" {
		cfg.Oracle.DSN = v
	}
	if v := os.Getenv("ORACLE_PASSWORD"); v != "" {
		cfg.Oracle.Password = v
	}
	if v := os.Getenv("JOB_STORE_DSN"); v != "" {
		cfg.JobStore.DSN = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = port
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.BasePath == "" {
		cfg.Server.BasePath = "/api/v1"
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}

	if cfg.Oracle.Port <= 0 {
		cfg.Oracle.Port = 1521
	}

	if cfg.JobStore.Driver == "" {
		log.Printf("job_store.driver is not set; defaulting to sqlite")
		cfg.JobStore.Driver = "sqlite"
	}
	if cfg.JobStore.Driver == "sqlite" && cfg.JobStore.DSN == "" {
		cfg.JobStore.DSN = "metamorfose-jobs.db"
	}

	if cfg.Cache.TTLSeconds < 0 {
		cfg.Cache.TTLSeconds = 0
	}
	if cfg.Cache.CleanupIntervalSeconds <= 0 {
		cfg.Cache.CleanupIntervalSeconds = 600
	}
	cfg.Cache.TTL = time.Duration(cfg.Cache.TTLSeconds) * time.Second
	cfg.Cache.CleanupInterval = time.Duration(cfg.Cache.CleanupIntervalSeconds) * time.Second

	if cfg.WorkerPool.Size <= 0 {
		log.Printf("worker_pool.size is not set or invalid; defaulting to 2")
		cfg.WorkerPool.Size = 2
	}
	if cfg.WorkerPool.QueueSize <= 0 {
		cfg.WorkerPool.QueueSize = cfg.WorkerPool.Size * 4
	}
}
