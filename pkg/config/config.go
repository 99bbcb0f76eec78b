package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Parser   ParserConfig
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxRequestSize  int64
}

// SecurityConfig contains security-related settings
type SecurityConfig struct {
	EnableCORS      bool
	AllowedOrigins  []string
	RateLimitPerMin int
	MaxInputLength  int
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string
	Format string
}

// ParserConfig contains address-parsing settings
type ParserConfig struct {
	DefaultCountry string
	CacheSize      int
}

// Load loads configuration from environment variables (prefixed PARSEADDR_)
// and an optional config file, with sensible defaults for everything.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PARSEADDR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("parseaddr")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/parseaddr")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			ReadTimeout:     v.GetDuration("server.read_timeout"),
			WriteTimeout:    v.GetDuration("server.write_timeout"),
			ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
			MaxRequestSize:  v.GetInt64("server.max_request_size"),
		},
		Security: SecurityConfig{
			EnableCORS:      v.GetBool("security.enable_cors"),
			AllowedOrigins:  v.GetStringSlice("security.allowed_origins"),
			RateLimitPerMin: v.GetInt("security.rate_limit_per_min"),
			MaxInputLength:  v.GetInt("security.max_input_length"),
		},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		Parser: ParserConfig{
			DefaultCountry: v.GetString("parser.default_country"),
			CacheSize:      v.GetInt("parser.cache_size"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 15*time.Second)
	v.SetDefault("server.max_request_size", int64(1024*1024))

	v.SetDefault("security.enable_cors", true)
	v.SetDefault("security.allowed_origins", []string{"*"})
	v.SetDefault("security.rate_limit_per_min", 60)
	v.SetDefault("security.max_input_length", 10000)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	v.SetDefault("parser.default_country", "US")
	v.SetDefault("parser.cache_size", 256)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be 1-65535)", c.Server.Port)
	}

	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive")
	}

	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive")
	}

	if c.Security.MaxInputLength < 100 || c.Security.MaxInputLength > 100000 {
		return fmt.Errorf("max input length must be between 100 and 100000")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logging.Level)
	}

	if c.Parser.CacheSize < 0 {
		return fmt.Errorf("parser cache size must be non-negative")
	}

	return nil
}
