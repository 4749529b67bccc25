package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied before any config file or environment variable.
const (
	DefaultStoragePath = "flashcards.json"
	DefaultLogLevel    = "warn"
	DefaultLogFormat   = "json"
)

// EnvPrefix is prepended to every environment variable, e.g. SCRY_STORAGE_PATH.
const EnvPrefix = "SCRY"

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from config files. Returns a populated Config struct or an error if
// loading/validation fails.
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found; defaults and environment apply
	}

	return decode(v)
}

// LoadFromFile loads configuration from the given YAML file, with environment
// variables still taking precedence. The file must exist.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()

	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("storage.path", DefaultStoragePath)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func decode(v *viper.Viper) (*Config, error) {
	// AutomaticEnv only covers keys viper already knows about during Unmarshal,
	// so bind each one explicitly.
	bindEnvs := []struct {
		key    string
		envVar string
	}{
		{"storage.path", EnvPrefix + "_STORAGE_PATH"},
		{"log.level", EnvPrefix + "_LOG_LEVEL"},
		{"log.format", EnvPrefix + "_LOG_FORMAT"},
	}

	for _, env := range bindEnvs {
		if err := v.BindEnv(env.key, env.envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", env.envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Storage.Path = strings.TrimSpace(cfg.Storage.Path)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	cfg.Log.Format = strings.ToLower(cfg.Log.Format)

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
