package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Store backends
const (
	StoreBackendMemory   = "memory"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
)

// Environment variables that override secrets from the config file
const (
	EnvDatabasePassword = "GATEWAY_DATABASE_PASSWORD"
	EnvRedisPassword    = "GATEWAY_REDIS_PASSWORD"
	EnvJWTSecret        = "GATEWAY_JWT_SECRET"
)

// Config represents the gateway process configuration
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Store      StoreConfig      `yaml:"store"`
	Database   DatabaseConfig   `yaml:"database"`
	Redis      RedisConfig      `yaml:"redis"`
	Verifier   VerifierConfig   `yaml:"verifier"`
	Gateway    GatewayConfig    `yaml:"gateway"`
	ITS        ITSConfig        `yaml:"its"`
	Auth       AuthConfig       `yaml:"auth"`
	Monitoring MonitoringConfig `yaml:"monitoring"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host           string        `yaml:"host" default:"0.0.0.0"`
	Port           int           `yaml:"port" default:"8080" validate:"min=1,max=65535"`
	ReadTimeout    time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" default:"15s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" default:"60s"`
	RequestTimeout time.Duration `yaml:"request_timeout" default:"60s"`
}

// StoreConfig selects where gateway and ledger state is kept
type StoreConfig struct {
	Backend string `yaml:"backend" default:"memory" validate:"oneof=memory postgres redis"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"gateway"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`

	MaxOpenConns       int           `yaml:"max_open_conns" default:"10" validate:"min=0"`
	ConnMaxIdleTime    time.Duration `yaml:"conn_max_idle_time" default:"5m"`
	SlowQueryThreshold time.Duration `yaml:"slow_query_threshold" default:"200ms"`
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr      string `yaml:"addr" default:"localhost:6379"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db" default:"0"`
	KeyPrefix string `yaml:"key_prefix" default:"gateway"`
}

// VerifierConfig contains the verification oracle client settings
type VerifierConfig struct {
	RPCURL  string        `yaml:"rpc_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" default:"10s"`
}

// GatewayConfig holds the addresses the gateway is instantiated with.
// When both are set they are written to the store on startup.
type GatewayConfig struct {
	VerifierAddress string `yaml:"verifier_address"`
	RouterAddress   string `yaml:"router_address"`
}

// ITSConfig contains interchain token service settings
type ITSConfig struct {
	AxelarnetGateway string `yaml:"axelarnet_gateway"`
	AdminAddress     string `yaml:"admin_address" validate:"required"`
}

// AuthConfig contains settings for caller authentication
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	Issuer    string        `yaml:"issuer" default:"interchain-gateway"`
	TokenTTL  time.Duration `yaml:"token_ttl" default:"1h"`
}

// MonitoringConfig contains monitoring and metrics settings
type MonitoringConfig struct {
	Enabled bool `yaml:"enabled" default:"true"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// ShutdownConfig contains graceful shutdown settings
type ShutdownConfig struct {
	Timeout time.Duration `yaml:"timeout" default:"30s"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	raw, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Config from YAML bytes, applying defaults and environment overrides.
func Parse(raw []byte) (*Config, error) {
	var config Config
	if err := defaults.Set(&config); err != nil {
		return nil, fmt.Errorf("failed to set config defaults: %w", err)
	}

	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyEnvOverrides(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func applyEnvOverrides(config *Config) {
	if v, ok := os.LookupEnv(EnvDatabasePassword); ok {
		config.Database.Password = v
	}
	if v, ok := os.LookupEnv(EnvRedisPassword); ok {
		config.Redis.Password = v
	}
	if v, ok := os.LookupEnv(EnvJWTSecret); ok {
		config.Auth.JWTSecret = v
	}
}

func validate(config *Config) error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return err
	}
	if config.Store.Backend == StoreBackendPostgres && config.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if config.Store.Backend == StoreBackendRedis && config.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required")
	}
	if config.Auth.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required (or set %s)", EnvJWTSecret)
	}
	if (config.Gateway.VerifierAddress == "") != (config.Gateway.RouterAddress == "") {
		return fmt.Errorf("gateway.verifier_address and gateway.router_address must be set together")
	}
	return nil
}
