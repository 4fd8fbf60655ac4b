package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported database drivers.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application level configuration.
type Config struct {
	ServerPort      string
	DBDriver        string
	DBDSN           string
	ResetDB         bool
	RedisAddr       string
	RedisDB         int
	RedisPass       string
	JWTSecret       string
	TokenTTL        time.Duration
	CatalogCacheTTL time.Duration
	SwaggerHost     string
	AdminUsername   string
	AdminPassword   string
	Log             LogConfig
}

// LogConfig controls the logger and its optional shipping hooks.
type LogConfig struct {
	Level        string
	Format       string
	LogstashAddr string
	ElasticURL   string
	ElasticIndex string
}

// Load builds Config from an optional .env file, an optional config.yml in the
// working directory and the environment, in increasing precedence.
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath(".")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverMySQL)
	v.SetDefault("DB_DSN", "user:password@tcp(localhost:3306)/dailyfood?charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("RESET_DB", false)
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("JWT_SECRET", "change-me")
	v.SetDefault("TOKEN_TTL", "24h")
	v.SetDefault("CATALOG_CACHE_TTL", "5m")
	v.SetDefault("SWAGGER_HOST", "")
	v.SetDefault("ADMIN_USERNAME", "")
	v.SetDefault("ADMIN_PASSWORD", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOGSTASH_ADDR", "")
	v.SetDefault("ELASTIC_URL", "")
	v.SetDefault("ELASTIC_INDEX", "dailyfood")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ServerPort:    v.GetString("SERVER_PORT"),
		DBDriver:      strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:         v.GetString("DB_DSN"),
		ResetDB:       v.GetBool("RESET_DB"),
		RedisAddr:     v.GetString("REDIS_ADDR"),
		RedisDB:       v.GetInt("REDIS_DB"),
		RedisPass:     v.GetString("REDIS_PASSWORD"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		SwaggerHost:   v.GetString("SWAGGER_HOST"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
		Log: LogConfig{
			Level:        v.GetString("LOG_LEVEL"),
			Format:       v.GetString("LOG_FORMAT"),
			LogstashAddr: v.GetString("LOGSTASH_ADDR"),
			ElasticURL:   v.GetString("ELASTIC_URL"),
			ElasticIndex: v.GetString("ELASTIC_INDEX"),
		},
	}

	var err error
	if cfg.TokenTTL, err = time.ParseDuration(v.GetString("TOKEN_TTL")); err != nil {
		return nil, fmt.Errorf("parse TOKEN_TTL: %w", err)
	}
	if cfg.CatalogCacheTTL, err = time.ParseDuration(v.GetString("CATALOG_CACHE_TTL")); err != nil {
		return nil, fmt.Errorf("parse CATALOG_CACHE_TTL: %w", err)
	}

	switch cfg.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive")
	}
	return cfg, nil
}
