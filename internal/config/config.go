package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	AIGateway AIGatewayConfig
	Auth      AuthConfig
	Audit     AuditConfig
	CORS      CORSConfig
	Logger    LoggerConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Enabled    bool
	Addr       string
	Password   string
	DB         int
	SummaryTTL time.Duration
}

type AIGatewayConfig struct {
	Enabled    bool
	URL        string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

type AuthConfig struct {
	JWTSecret string
}

type AuditConfig struct {
	OverusedThreshold int
}

type CORSConfig struct {
	AllowOrigins []string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "planner")
	v.SetDefault("DB_PASSWORD", "planner")
	v.SetDefault("DB_NAME", "planner")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_SUMMARY_TTL", "2m")
	v.SetDefault("AI_GATEWAY_ENABLED", false)
	v.SetDefault("AI_GATEWAY_URL", "http://localhost:8085")
	v.SetDefault("AI_GATEWAY_API_KEY", "")
	v.SetDefault("AI_GATEWAY_TIMEOUT", "30s")
	v.SetDefault("AI_GATEWAY_MAX_RETRIES", 3)
	v.SetDefault("AI_GATEWAY_RETRY_DELAY", "500ms")
	v.SetDefault("AUTH_JWT_SECRET", "")
	v.SetDefault("AUDIT_OVERUSED_THRESHOLD", 3)
	v.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:5173")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: parseDuration(v.GetString("DB_CONN_MAX_LIFETIME"), 30*time.Minute),
		},
		Redis: RedisConfig{
			Enabled:    v.GetBool("REDIS_ENABLED"),
			Addr:       v.GetString("REDIS_ADDR"),
			Password:   v.GetString("REDIS_PASSWORD"),
			DB:         v.GetInt("REDIS_DB"),
			SummaryTTL: parseDuration(v.GetString("REDIS_SUMMARY_TTL"), 2*time.Minute),
		},
		AIGateway: AIGatewayConfig{
			Enabled:    v.GetBool("AI_GATEWAY_ENABLED"),
			URL:        v.GetString("AI_GATEWAY_URL"),
			APIKey:     v.GetString("AI_GATEWAY_API_KEY"),
			Timeout:    parseDuration(v.GetString("AI_GATEWAY_TIMEOUT"), 30*time.Second),
			MaxRetries: v.GetInt("AI_GATEWAY_MAX_RETRIES"),
			RetryDelay: parseDuration(v.GetString("AI_GATEWAY_RETRY_DELAY"), 500*time.Millisecond),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("AUTH_JWT_SECRET"),
		},
		Audit: AuditConfig{
			OverusedThreshold: v.GetInt("AUDIT_OVERUSED_THRESHOLD"),
		},
		CORS: CORSConfig{
			AllowOrigins: v.GetStringSlice("CORS_ALLOW_ORIGINS"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("AUTH_JWT_SECRET is required")
	}

	return cfg, nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
