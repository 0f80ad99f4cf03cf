// Package config loads service settings from configs/config.yml, an optional
// .env file and WINDOW_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "WINDOW"

type Config struct {
	Port      string          `mapstructure:"port" validate:"required"`
	LogLevel  string          `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	DB        DBConfig        `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Vent      VentConfig      `mapstructure:"vent"`
	Report    ReportConfig    `mapstructure:"report"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Server    ServerConfig    `mapstructure:"server"`
}

type DBConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type AuthConfig struct {
	SigningKey string        `mapstructure:"signing_key" validate:"required,min=8"`
	TokenTTL   time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
}

// VentConfig holds the favorable condition codes. An empty list means the
// built-in default set.
type VentConfig struct {
	FavorableCodes []int `mapstructure:"favorable_codes"`
}

type ReportConfig struct {
	UTCOffsetHours int `mapstructure:"utc_offset_hours" validate:"gte=-12,lte=14"`
}

type SimulatorConfig struct {
	Enabled            bool          `mapstructure:"enabled"`
	Tick               time.Duration `mapstructure:"tick" validate:"gt=0"`
	DesiredTempC       float64       `mapstructure:"desired_temp_c"`
	OutsideTempC       float64       `mapstructure:"outside_temp_c"`
	InitialInsideTempC float64       `mapstructure:"initial_inside_temp_c"`
	ConditionCode      int           `mapstructure:"condition_code"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" validate:"gt=0"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout" validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("auth.signing_key", "change-me-please")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("vent.favorable_codes", []int{})
	v.SetDefault("report.utc_offset_hours", 4)
	v.SetDefault("simulator.enabled", false)
	v.SetDefault("simulator.tick", time.Second)
	v.SetDefault("simulator.desired_temp_c", 21.0)
	v.SetDefault("simulator.outside_temp_c", 12.0)
	v.SetDefault("simulator.initial_inside_temp_c", 25.0)
	v.SetDefault("simulator.condition_code", 1003)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
}

// Load reads configuration. A missing config file is not an error; every key
// has a default. dir is the directory holding config.yml.
func Load(dir string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
