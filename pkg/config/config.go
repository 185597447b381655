package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPHost string `mapstructure:"http_host"`
	HTTPPort int    `mapstructure:"http_port"`

	DBPath string `mapstructure:"db_path"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	ConfigPath string
}

const (
	DefaultConfigPath = "/etc/postboard/config.yml"
	DefaultHTTPHost   = "127.0.0.1"
	DefaultHTTPPort   = 8080
	DefaultDBPath     = "postboard.sqlite3"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Load reads the config file at configPath, falling back to defaults
// when the file does not exist. Environment variables prefixed with
// POSTBOARD_ override file values.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.SetDefault("http_host", DefaultHTTPHost)
	viper.SetDefault("http_port", DefaultHTTPPort)
	viper.SetDefault("db_path", DefaultDBPath)
	viper.SetDefault("log_level", DefaultLogLevel)
	viper.SetDefault("log_format", DefaultLogFormat)

	viper.AutomaticEnv()
	viper.SetEnvPrefix("POSTBOARD")

	if err := viper.ReadInConfig(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file: run on defaults and environment
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigPath = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port must be between 1 and 65535, got %d", c.HTTPPort)
	}

	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'text' or 'json'")
	}

	return nil
}

func (c *Config) IsDevMode() bool {
	return os.Getenv("POSTBOARD_DEV_MODE") == "1"
}
