package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"creditscoring/internal/pkg/logger"
	"creditscoring/internal/pkg/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ServerConfig holds server-level config
type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	LogLevel string `yaml:"level"`
}

// MongoDB connection config
type MongoConfig struct {
	Username        string        `yaml:"username"`
	Password        string        `yaml:"password"`
	URI             string        `yaml:"uri"`
	DBName          string        `yaml:"db_name"`
	MaxPoolSize     uint64        `yaml:"max_pool_size"`
	MinPoolSize     uint64        `yaml:"min_pool_size"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_minutes"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout_seconds"`
}

// Redis connection config
type RedisConfig struct {
	Addr           string        `yaml:"addr"`
	Password       string        `yaml:"password"`
	DB             int           `yaml:"db"`
	EnableTLS      bool          `yaml:"enable_tls"`
	ConnectTimeout time.Duration `yaml:"connect_timeout_seconds"`
	CertContent    string        `yaml:"cert_content"`
}

// ScoringConfig holds engine policy inputs: how long computed results may be
// cached, how many workers the batch analytics map uses, and the externally
// supplied population-average table used by score comparison.
type ScoringConfig struct {
	CacheTTLMinutes    int                       `yaml:"cache_ttl_minutes"`
	AnalyticsWorkers   int                       `yaml:"analytics_workers"`
	PopulationAverages models.PopulationAverages `yaml:"population_averages"`
}

// AppConfig is the main config struct that holds all configs
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Redis   RedisConfig   `yaml:"redis"`
	Scoring ScoringConfig `yaml:"scoring"`
	Logging LogConfig     `yaml:"logging"`
}

func assignDefaultConfigValues(cfg *AppConfig) *AppConfig {

	// server config defaults
	cfg.Server.Port = GetEnvOrDefaultAsInt("SERVER_PORT", cfg.Server.Port)

	// log config defaults
	cfg.Logging.LogLevel = GetEnvOrDefaultAsString("LOGGING_LEVEL", "info")

	// MongoDB config defaults
	cfg.Mongo.URI = GetEnvOrDefaultAsString("MONGO_URI", cfg.Mongo.URI)
	cfg.Mongo.DBName = GetEnvOrDefaultAsString("MONGO_DB_NAME", cfg.Mongo.DBName)
	cfg.Mongo.Username = GetEnvOrDefaultAsString("MONGO_USERNAME", cfg.Mongo.Username)
	cfg.Mongo.Password = GetEnvOrDefaultAsString("MONGO_PASSWORD", cfg.Mongo.Password)
	cfg.Mongo.MaxPoolSize = GetEnvOrDefaultAsUint64("MONGO_MAX_POOL_SIZE", cfg.Mongo.MaxPoolSize)
	cfg.Mongo.MinPoolSize = GetEnvOrDefaultAsUint64("MONGO_MIN_POOL_SIZE", cfg.Mongo.MinPoolSize)
	cfg.Mongo.MaxConnIdleTime = time.Duration(GetEnvOrDefaultAsInt("MONGO_MAX_CONN_IDLE_MINUTES", 30)) * time.Minute
	cfg.Mongo.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("MONGO_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second

	// Redis config defaults
	cfg.Redis.Addr = GetEnvOrDefaultAsString("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = GetEnvOrDefaultAsString("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.Redis.DB = GetEnvOrDefaultAsInt("REDIS_DB", cfg.Redis.DB)
	cfg.Redis.EnableTLS = GetEnvOrDefaultAsInt("REDIS_ENABLE_TLS", 0) == 1
	cfg.Redis.ConnectTimeout = time.Duration(GetEnvOrDefaultAsInt("REDIS_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second
	cfg.Redis.CertContent = GetEnvOrDefaultAsString("REDIS_TLS_CERT", cfg.Redis.CertContent)

	// Scoring config defaults
	cfg.Scoring.CacheTTLMinutes = GetEnvOrDefaultAsInt("SCORE_CACHE_TTL_MINUTES", defaultInt(cfg.Scoring.CacheTTLMinutes, 15))
	cfg.Scoring.AnalyticsWorkers = GetEnvOrDefaultAsInt("ANALYTICS_WORKERS", defaultInt(cfg.Scoring.AnalyticsWorkers, 8))
	if cfg.Scoring.PopulationAverages == (models.PopulationAverages{}) {
		cfg.Scoring.PopulationAverages = models.PopulationAverages{
			Overall:              650,
			NewCustomers:         580,
			EstablishedCustomers: 720,
			ActiveBorrowers:      680,
			Savers:               740,
		}
	}

	return cfg

}

func defaultInt(v, fallback int) int {
	if v == 0 {
		return fallback
	}
	return v
}

// LoadFromConfigFilePath loads and parses a config file into AppConfig
func LoadFromConfigFilePath(configPath string) (*AppConfig, error) {

	// #nosec G304: configPath comes from CONFIG_PATH, not request input
	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read config file", err, slog.String("path", configPath))
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("Failed to unmarshal config", err)
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	defaultCfg := assignDefaultConfigValues(&cfg)

	if err := validateConfig(defaultCfg); err != nil {
		logger.Error("Config validation failed", err)
		return nil, err
	}

	logger.Info("Configuration loaded successfully", slog.String("path", configPath))

	return defaultCfg, nil
}

func validateConfig(cfg *AppConfig) error {
	// Validate MongoConfig
	mongo := cfg.Mongo
	if mongo.MinPoolSize < 5 || mongo.MinPoolSize > 10 {
		return fmt.Errorf("mongo.min_pool_size must be between 5 and 10, got %d", mongo.MinPoolSize)
	}
	if mongo.MaxPoolSize < 10 || mongo.MaxPoolSize > 50 {
		return fmt.Errorf("mongo.max_pool_size must be between 10 and 50, got %d", mongo.MaxPoolSize)
	}

	minIdle := 20 * time.Minute
	maxIdle := 30 * time.Minute
	if mongo.MaxConnIdleTime < minIdle || mongo.MaxConnIdleTime > maxIdle {
		return fmt.Errorf("mongo.max_conn_idle_minutes must be between %v and %v, got %v",
			minIdle,
			maxIdle,
			mongo.MaxConnIdleTime)
	}

	// Validate ScoringConfig
	scoring := cfg.Scoring
	if scoring.CacheTTLMinutes < 1 || scoring.CacheTTLMinutes > 1440 {
		return fmt.Errorf("scoring.cache_ttl_minutes must be between 1 and 1440, got %d", scoring.CacheTTLMinutes)
	}
	if scoring.AnalyticsWorkers < 1 || scoring.AnalyticsWorkers > 64 {
		return fmt.Errorf("scoring.analytics_workers must be between 1 and 64, got %d", scoring.AnalyticsWorkers)
	}
	avg := scoring.PopulationAverages
	for name, v := range map[string]int{
		"overall":               avg.Overall,
		"new_customers":         avg.NewCustomers,
		"established_customers": avg.EstablishedCustomers,
		"active_borrowers":      avg.ActiveBorrowers,
		"savers":                avg.Savers,
	} {
		if v < 300 || v > 850 {
			return fmt.Errorf("scoring.population_averages.%s must be between 300 and 850, got %d", name, v)
		}
	}

	return nil
}

// GetEnvOrDefaultAsInt returns the value of the given env variable
// as an int or the default value if not set or invalid.
func GetEnvOrDefaultAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return int(value)
}

// GetEnvOrDefaultAsUint64 returns the value of the env variable
// as uint64 or the default value if not set or invalid.
func GetEnvOrDefaultAsUint64(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func GetEnvOrDefaultAsString(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		if strings.TrimSpace(val) != "" {
			return val
		}
	}
	return defaultVal
}

// LoadFromConfig loads environment variables from an optional .env file and
// then the config file referenced by CONFIG_PATH.
func LoadFromConfig() (*AppConfig, error) {
	// .env is optional; env vars win over file values either way
	_ = godotenv.Load()

	configPath := GetEnvOrDefaultAsString("CONFIG_PATH", "configs/config.yaml")

	cfg, err := LoadFromConfigFilePath(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	return cfg, nil
}
