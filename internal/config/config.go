// Package config loads the service configuration from the environment.
//
// Values are read with viper from environment variables. A `.env` file in
// the working directory, if present, is loaded into the process environment
// first.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Supported repository backends.
const (
	DriverUnimplemented = "unimplemented"
	DriverMemory        = "memory"
	DriverSQLite        = "sqlite"
	DriverPostgres      = "postgres"
)

// Config is the root configuration of the catalog service.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	Port             string        `validate:"required"`
	ReadTimeout      time.Duration `validate:"gt=0"`
	WriteTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout  time.Duration `validate:"gt=0"`
	CORSAllowOrigins string        `validate:"required"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `validate:"required,oneof=trace debug info warn error fatal panic disabled"`
	Format string `validate:"required,oneof=console json"`
}

// DatabaseConfig selects the product repository backend.
type DatabaseConfig struct {
	Driver string `validate:"required,oneof=unimplemented memory sqlite postgres"`
	DSN    string `validate:"required_if=Driver sqlite,required_if=Driver postgres"`
}

// RabbitMQConfig configures the product event publisher. An empty URL
// disables publishing.
type RabbitMQConfig struct {
	URL      string
	Exchange string `validate:"required_with=URL"`
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_READ_TIMEOUT", 10*time.Second)
	v.SetDefault("APP_WRITE_TIMEOUT", 10*time.Second)
	v.SetDefault("APP_SHUTDOWN_TIMEOUT", 15*time.Second)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("DATABASE_DRIVER", DriverUnimplemented)
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_EXCHANGE", "catalog")
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	return LoadFrom(v)
}

// LoadFrom builds a Config from v, filling in defaults for unset keys.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Port:             v.GetString("APP_PORT"),
			ReadTimeout:      v.GetDuration("APP_READ_TIMEOUT"),
			WriteTimeout:     v.GetDuration("APP_WRITE_TIMEOUT"),
			ShutdownTimeout:  v.GetDuration("APP_SHUTDOWN_TIMEOUT"),
			CORSAllowOrigins: v.GetString("CORS_ALLOW_ORIGINS"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Database: DatabaseConfig{
			Driver: v.GetString("DATABASE_DRIVER"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		RabbitMQ: RabbitMQConfig{
			URL:      v.GetString("RABBITMQ_URL"),
			Exchange: v.GetString("RABBITMQ_EXCHANGE"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
