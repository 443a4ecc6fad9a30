package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	StorageBackendFile   = "file"
	StorageBackendSQL    = "sql"
	StorageBackendRedis  = "redis"
	StorageBackendMemory = "memory"

	DatabaseDriverMySQL  = "mysql"
	DatabaseDriverSQLite = "sqlite"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Storage StorageConfig `mapstructure:"storage"`
	Log     LogConfig     `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL       string        `mapstructure:"base_url" validate:"required,endpoint"`
	Timeout       time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RetryAttempts uint          `mapstructure:"retry_attempts" validate:"lte=10"`
}

type StorageConfig struct {
	Backend   string         `mapstructure:"backend" validate:"oneof=file sql redis memory"`
	Directory string         `mapstructure:"directory" validate:"required_if=Backend file"`
	Database  DatabaseConfig `mapstructure:"database"`
	Redis     RedisConfig    `mapstructure:"redis"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=mysql sqlite"`
	Path            string            `mapstructure:"path"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/notebot")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("api.base_url", "https://ptec-notebot-server.vercel.app")
	v.SetDefault("api.timeout", 10*time.Second)
	v.SetDefault("api.retry_attempts", 0)
	v.SetDefault("storage.backend", StorageBackendFile)
	v.SetDefault("storage.directory", filepath.Join("$HOME", ".local", "share", "notebot"))
	v.SetDefault("storage.database.driver", DatabaseDriverSQLite)
	v.SetDefault("storage.database.path", "notebot.db")
	v.SetDefault("storage.database.host", "localhost")
	v.SetDefault("storage.database.port", 3306)
	v.SetDefault("storage.database.database", "notebot")
	v.SetDefault("storage.database.username", "notebot")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.prefix", "notebot:")
	v.SetDefault("log.level", "info")

	if err := v.BindEnv("api.base_url", "NOTEBOT_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind NOTEBOT_API_BASE_URL environment variable: %w", err)
	}
	// Secrets are only read from the environment
	if err := v.BindEnv("storage.database.password", "NOTEBOT_DATABASE_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind NOTEBOT_DATABASE_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("storage.redis.password", "NOTEBOT_REDIS_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind NOTEBOT_REDIS_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Storage.Directory = expandHome(cfg.Storage.Directory)

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "$HOME") && !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	path = strings.TrimPrefix(strings.TrimPrefix(path, "$HOME"), "~")
	return filepath.Join(home, path)
}
